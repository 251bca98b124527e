package v1

import (
	"github.com/luscis/swengine/cmd/api"
	"github.com/luscis/swengine/pkg/schema"
	"github.com/urfave/cli/v2"
)

type Switch struct {
	Cmd
}

func (u Switch) Url(prefix string) string {
	return prefix + "/api/switch"
}

func (u Switch) Tmpl() string {
	return `Ports  : {{ .Ports }}
Entries: {{ .Entries }}
Uptime : {{ pt .Uptime }}
Version: {{ .Version.Version }}
`
}

func (u Switch) List(c *cli.Context) error {
	var item schema.Switch
	if err := u.NewHttp().GetJSON(u.Url(c.String("url")), &item); err != nil {
		return err
	}
	return u.Out(item, c.String("format"), u.Tmpl())
}

func (u Switch) Commands(app *api.App) {
	app.Command(&cli.Command{
		Name:    "switch",
		Aliases: []string{"sw"},
		Usage:   "Display the switch",
		Action:  u.List,
	})
}
