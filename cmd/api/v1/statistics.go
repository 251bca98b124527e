package v1

import (
	"github.com/luscis/swengine/cmd/api"
	"github.com/luscis/swengine/pkg/schema"
	"github.com/urfave/cli/v2"
)

type Statistics struct {
	Cmd
}

func (u Statistics) Url(prefix string) string {
	return prefix + "/api/statistics"
}

func (u Statistics) Tmpl() string {
	return `{{ps 4 "Port"}} {{ps 8 "Frames"}}
{{- range . }}
{{pi 4 .Port}} {{pi 8 .Frames}}
{{- end }}
`
}

func (u Statistics) List(c *cli.Context) error {
	var items []schema.Statistic
	if err := u.NewHttp().GetJSON(u.Url(c.String("url")), &items); err != nil {
		return err
	}
	return u.Out(items, c.String("format"), u.Tmpl())
}

func (u Statistics) Reset(c *cli.Context) error {
	return u.NewHttp().DeleteJSON(u.Url(c.String("url")), nil)
}

func (u Statistics) Commands(app *api.App) {
	app.Command(&cli.Command{
		Name:    "statistics",
		Aliases: []string{"st"},
		Usage:   "Frames per port",
		Action:  u.List,
		Subcommands: []*cli.Command{
			{
				Name:   "reset",
				Usage:  "Clear all counters",
				Action: u.Reset,
			},
		},
	})
}
