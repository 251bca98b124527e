package schema

type Frame struct {
	Port        int `json:"port"`
	Source      int `json:"source"`
	Destination int `json:"destination"`
}

type Outcome struct {
	Action  string `json:"action"`
	Ingress int    `json:"ingress"`
	Port    int    `json:"port,omitempty"`
}
