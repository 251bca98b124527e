package main

import (
	"log"
	"os"

	"github.com/luscis/swengine/pkg/api"
	"github.com/luscis/swengine/pkg/config"
	"github.com/luscis/swengine/pkg/console"
	"github.com/luscis/swengine/pkg/libol"
	cswitch "github.com/luscis/swengine/pkg/switch"
	"github.com/urfave/cli/v2"
)

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "conf",
			Aliases: []string{"c"},
			Usage:   "configure file: *.json|*.yaml",
		},
		&cli.IntFlag{
			Name:    "ports",
			Aliases: []string{"p"},
			Usage:   "number of ports, ask when not given",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "output format: table|json|yaml",
		},
		&cli.StringFlag{
			Name:  "history",
			Usage: "console history file",
		},
		&cli.StringFlag{
			Name:  "http",
			Usage: "listen address of the api, disabled when empty",
		},
		&cli.IntFlag{
			Name:  "log:level",
			Usage: "log level: 10 debug, 20 info, 30 warn",
		},
		&cli.StringFlag{
			Name:  "log:file",
			Usage: "log file",
		},
		&cli.BoolFlag{
			Name:  "daemon",
			Usage: "serve the api only, without console",
		},
	}
}

func load(c *cli.Context) (*config.Switch, error) {
	cfg, err := config.NewSwitch(c.String("conf"))
	if err != nil {
		return nil, err
	}
	if c.IsSet("ports") {
		cfg.Ports = c.Int("ports")
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("history") {
		cfg.History = c.String("history")
	}
	if c.IsSet("http") {
		cfg.Http.Listen = c.String("http")
	}
	if c.IsSet("log:level") {
		cfg.Log.Verbose = c.Int("log:level")
	}
	if c.IsSet("log:file") {
		cfg.Log.File = c.String("log:file")
	}
	cfg.Correct()
	return cfg, nil
}

// portsGiven is false only when neither the flag nor the config file
// names a port count, so an explicit zero is still rejected.
func portsGiven(c *cli.Context, cfg *config.Switch) bool {
	return c.IsSet("ports") || cfg.Ports != 0
}

func serve(cfg *config.Switch, sw *cswitch.Switch) *api.Http {
	if cfg.Http.Listen == "" {
		return nil
	}
	h := api.NewHttp(cfg.Http.Listen, sw)
	h.Start()
	libol.SdNotify()
	return h
}

func daemon(cfg *config.Switch) error {
	sw, err := cswitch.NewSwitch(cfg.Ports)
	if err != nil {
		return cli.Exit(err, 2)
	}
	if cfg.Http.Listen == "" {
		return cli.Exit("daemon needs --http", 2)
	}
	h := serve(cfg, sw)
	libol.Wait()
	libol.SdStopping()
	h.Shutdown()
	return nil
}

func run(c *cli.Context) error {
	cfg, err := load(c)
	if err != nil {
		return cli.Exit(err, 2)
	}
	libol.SetLogger(cfg.Log.File, cfg.Log.Verbose)
	libol.Debug("main %v", cfg)

	if c.Bool("daemon") {
		return daemon(cfg)
	}

	out := console.NewPrinter(os.Stdout, cfg.Format)
	term, err := console.NewTerminal(cfg.History, out)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer term.Close()

	var sw *cswitch.Switch
	if portsGiven(c, cfg) {
		if sw, err = cswitch.NewSwitch(cfg.Ports); err != nil {
			return cli.Exit(err, 2)
		}
	} else if sw, err = term.NewSwitch(); err != nil {
		// input closed before a valid port count
		return nil
	}
	_ = out.Created(sw.Ports())

	if h := serve(cfg, sw); h != nil {
		defer h.Shutdown()
	}
	term.Loop(console.NewConsole(sw, out))
	libol.SdStopping()
	return nil
}

func main() {
	log.SetFlags(0)
	app := &cli.App{
		Name:    "swengine",
		Usage:   "Learning switch simulator",
		Version: libol.Version,
		Flags:   flags(),
		Action:  run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
