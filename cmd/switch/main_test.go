package main

import (
	"errors"
	"testing"

	"github.com/luscis/swengine/pkg/config"
	cswitch "github.com/luscis/swengine/pkg/switch"
	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v2"
)

func runLoad(t *testing.T, args ...string) (*config.Switch, bool) {
	var cfg *config.Switch
	var given bool
	app := &cli.App{
		Name:  "swengine",
		Flags: flags(),
		Action: func(c *cli.Context) error {
			var err error
			if cfg, err = load(c); err != nil {
				return err
			}
			given = portsGiven(c, cfg)
			return nil
		},
	}
	assert.Nil(t, app.Run(append([]string{"swengine"}, args...)))
	return cfg, given
}

func TestPortsGiven(t *testing.T) {
	cfg, given := runLoad(t)
	assert.False(t, given, "ask for ports.")
	assert.Equal(t, 0, cfg.Ports, "be the same.")

	cfg, given = runLoad(t, "--ports", "4", "--format", "json")
	assert.True(t, given)
	assert.Equal(t, 4, cfg.Ports, "be the same.")
	assert.Equal(t, config.FormatJson, cfg.Format, "be the same.")

	cfg, given = runLoad(t, "--ports", "0")
	assert.True(t, given, "explicit zero.")
	_, err := cswitch.NewSwitch(cfg.Ports)
	assert.True(t, errors.Is(err, cswitch.ErrInvalidPorts), "be the same.")
}
