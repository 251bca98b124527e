package v1

import (
	"net/url"
	"strconv"

	"github.com/luscis/swengine/cmd/api"
	"github.com/luscis/swengine/pkg/libol"
	"github.com/luscis/swengine/pkg/schema"
	"github.com/urfave/cli/v2"
)

type Fdb struct {
	Cmd
}

func (u Fdb) Url(prefix, name string) string {
	if name == "" {
		return prefix + "/api/fdb"
	}
	return prefix + "/api/fdb/" + name
}

func (u Fdb) Tmpl() string {
	return `# total {{ len . }}
{{ps 7 "Address"}} {{ps 4 "Port"}} {{ps 8 "Time"}} {{ps -8 "Uptime"}}
{{- range . }}
{{pi 7 .Address}} {{pi 4 .Port}} {{ps 8 .Learned}} {{pt .Uptime}}
{{- end }}
`
}

func (u Fdb) List(c *cli.Context) error {
	var items []schema.Fdb
	if err := u.NewHttp().GetJSON(u.Url(c.String("url"), ""), &items); err != nil {
		return err
	}
	return u.Out(items, c.String("format"), u.Tmpl())
}

func (u Fdb) Expire(c *cli.Context) error {
	uri := u.Url(c.String("url"), "") + "?age=" + url.QueryEscape(c.String("age"))
	var item schema.Expired
	if err := u.NewHttp().DeleteJSON(uri, &item); err != nil {
		return err
	}
	tmpl := `{{ if .Deleted }}deleted: ` + libol.JoinInts(item.Deleted, ", ") + `{{ else }}none deleted{{ end }}
`
	return u.Out(item, c.String("format"), tmpl)
}

func (u Fdb) Remove(c *cli.Context) error {
	name := strconv.Itoa(c.Int("address"))
	return u.NewHttp().DeleteJSON(u.Url(c.String("url"), name), nil)
}

func (u Fdb) Commands(app *api.App) {
	app.Command(&cli.Command{
		Name:  "fdb",
		Usage: "Forwarding table",
		Subcommands: []*cli.Command{
			{
				Name:    "list",
				Usage:   "Display all learned addresses",
				Aliases: []string{"ls"},
				Action:  u.List,
			},
			{
				Name:  "expire",
				Usage: "Delete addresses older than an age",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "age", Required: true, Usage: "<N>s or <N>min"},
				},
				Action: u.Expire,
			},
			{
				Name:    "remove",
				Usage:   "Delete one address",
				Aliases: []string{"rm"},
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "address", Required: true},
				},
				Action: u.Remove,
			},
		},
	})
}
