package schema

type Switch struct {
	Ports   int     `json:"ports"`
	Entries int     `json:"entries"`
	Uptime  int64   `json:"uptime"`
	Version Version `json:"version"`
}
