package schema

import "github.com/luscis/swengine/pkg/libol"

type Log struct {
	File     string          `json:"file"`
	Level    int             `json:"level"`
	Messages []libol.Message `json:"messages,omitempty"`
}

func NewLogSchema() Log {
	return Log{
		File:     libol.Logger.FileName,
		Level:    libol.Logger.Level,
		Messages: libol.Logger.List(),
	}
}
