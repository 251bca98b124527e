package libol

var (
	Version = "v1.0.0"
	Date    = "unknown"
)
