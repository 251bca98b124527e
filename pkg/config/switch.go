package config

import (
	"github.com/luscis/swengine/pkg/libol"
)

const (
	FormatTable = "table"
	FormatJson  = "json"
	FormatYaml  = "yaml"
)

type Switch struct {
	File    string `json:"-" yaml:"-"`
	Ports   int    `json:"ports,omitempty" yaml:"ports,omitempty"`
	Format  string `json:"format,omitempty" yaml:"format,omitempty"`
	History string `json:"history,omitempty" yaml:"history,omitempty"`
	Log     Log    `json:"log" yaml:"log"`
	Http    *Http  `json:"http,omitempty" yaml:"http,omitempty"`
}

// NewSwitch loads file when it is given and fills in defaults.
func NewSwitch(file string) (*Switch, error) {
	s := &Switch{File: file}
	if err := s.Load(); err != nil {
		return nil, err
	}
	s.Correct()
	return s, nil
}

func (s *Switch) Load() error {
	if s.File == "" {
		return nil
	}
	if !libol.IsJson(s.File) && !libol.IsYaml(s.File) {
		return libol.NewErr("Switch.Load: %s is not json or yaml", s.File)
	}
	if err := libol.FileExist(s.File); err != nil {
		return libol.NewErr("Switch.Load: %s", err)
	}
	return libol.UnmarshalLoad(s, s.File)
}

func (s *Switch) Correct() {
	s.Log.Correct()
	switch s.Format {
	case FormatJson, FormatYaml:
	default:
		s.Format = FormatTable
	}
	if s.History == "" {
		s.History = ".swengine_history"
	}
	if s.Http == nil {
		s.Http = &Http{}
	}
	s.Http.Correct()
}
