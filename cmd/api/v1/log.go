package v1

import (
	"github.com/luscis/swengine/cmd/api"
	"github.com/luscis/swengine/pkg/schema"
	"github.com/urfave/cli/v2"
)

type Log struct {
	Cmd
}

func (v Log) Url(prefix string) string {
	return prefix + "/api/log"
}

func (v Log) Tmpl() string {
	return `File :  {{ .File }}
Level:  {{ .Level }}
{{- range .Messages }}
{{ .Date }} {{ ps -5 .Level }} {{ .Module }}|{{ .Message }}
{{- end }}
`
}

func (v Log) List(c *cli.Context) error {
	var item schema.Log
	if err := v.NewHttp().GetJSON(v.Url(c.String("url")), &item); err != nil {
		return err
	}
	return v.Out(item, c.String("format"), v.Tmpl())
}

func (v Log) Add(c *cli.Context) error {
	log := &schema.Log{
		Level: c.Int("level"),
	}
	return v.NewHttp().PostJSON(v.Url(c.String("url")), log, nil)
}

func (v Log) Commands(app *api.App) {
	app.Command(&cli.Command{
		Name:    "log",
		Aliases: []string{"v"},
		Usage:   "show log information",
		Action:  v.List,
		Subcommands: []*cli.Command{
			{
				Name:  "set",
				Usage: "set log level",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "level", Required: true},
				},
				Action: v.Add,
			},
		},
	})
}
