package api

import (
	"github.com/luscis/swengine/pkg/libol"
	"github.com/urfave/cli/v2"
)

var (
	Url     = "http://localhost:10080"
	Verbose = false
)

type App struct {
	cli    *cli.App
	Before func(c *cli.Context) error
	After  func(c *cli.Context) error
}

func (a *App) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "output format: table|json|yaml",
			Value:   "table",
		},
		&cli.StringFlag{
			Name:    "url",
			Aliases: []string{"l"},
			Usage:   "switch api url",
			Value:   Url,
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "enable verbose",
			Value:   false,
		},
	}
}

func (a *App) New() *cli.App {
	app := &cli.App{
		Usage:    "learning switch utility",
		Version:  libol.Version,
		Flags:    a.Flags(),
		Commands: []*cli.Command{},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				Verbose = true
				libol.SetLogger("", libol.DEBUG)
			} else {
				Verbose = false
				libol.SetLogger("", libol.INFO)
			}
			if a.Before == nil {
				return nil
			}
			return a.Before(c)
		},
		After: func(c *cli.Context) error {
			if a.After == nil {
				return nil
			}
			return a.After(c)
		},
	}
	a.cli = app
	return a.cli
}

func (a *App) Command(cmd *cli.Command) {
	a.cli.Commands = append(a.cli.Commands, cmd)
}

func (a *App) Run(args []string) error {
	return a.cli.Run(args)
}
