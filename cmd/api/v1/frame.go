package v1

import (
	"github.com/luscis/swengine/cmd/api"
	"github.com/luscis/swengine/pkg/schema"
	"github.com/urfave/cli/v2"
)

type Frame struct {
	Cmd
}

func (u Frame) Url(prefix string) string {
	return prefix + "/api/frame"
}

func (u Frame) Tmpl() string {
	return `{{ .Action }} on {{ .Ingress }}{{ if .Port }} to {{ .Port }}{{ end }}
`
}

func (u Frame) Add(c *cli.Context) error {
	frame := &schema.Frame{
		Port:        c.Int("port"),
		Source:      c.Int("source"),
		Destination: c.Int("destination"),
	}
	var item schema.Outcome
	if err := u.NewHttp().PostJSON(u.Url(c.String("url")), frame, &item); err != nil {
		return err
	}
	return u.Out(item, c.String("format"), u.Tmpl())
}

func (u Frame) Commands(app *api.App) {
	app.Command(&cli.Command{
		Name:  "frame",
		Usage: "Send a frame into the switch",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "port", Required: true, Usage: "ingress port"},
			&cli.IntFlag{Name: "source", Required: true, Usage: "source address: 1-254"},
			&cli.IntFlag{Name: "destination", Required: true, Usage: "destination address: 1-255"},
		},
		Action: u.Add,
	})
}
