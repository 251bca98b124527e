package schema

type Fdb struct {
	Address int    `json:"address"`
	Port    int    `json:"port"`
	Learned string `json:"learned"`
	Uptime  int64  `json:"uptime"`
}

type Expired struct {
	Age     string `json:"age"`
	Deleted []int  `json:"deleted"`
}

type Statistic struct {
	Port   int    `json:"port"`
	Frames uint64 `json:"frames"`
}
