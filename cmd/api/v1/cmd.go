package v1

import (
	"github.com/luscis/swengine/cmd/api"
)

type Cmd struct {
}

func (c Cmd) NewHttp() *api.Client {
	return api.NewClient()
}

func (c Cmd) Out(data interface{}, format string, tmpl string) error {
	return api.Out(data, format, tmpl)
}

func Commands(app *api.App) {
	Switch{}.Commands(app)
	Fdb{}.Commands(app)
	Frame{}.Commands(app)
	Statistics{}.Commands(app)
	Log{}.Commands(app)
}
