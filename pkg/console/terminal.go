package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/luscis/swengine/pkg/libol"
	cswitch "github.com/luscis/swengine/pkg/switch"
)

type Terminal struct {
	Console *readline.Instance
	out     *Printer
}

func NewTerminal(history string, out *Printer) (*Terminal, error) {
	completer := readline.NewPrefixCompleter(
		readline.PcItem(CmdFrame),
		readline.PcItem(CmdTable),
		readline.PcItem(CmdStatistics),
		readline.PcItem(CmdDel),
		readline.PcItem(CmdExit),
	)
	config := &readline.Config{
		Prompt:            "switch> ",
		HistoryFile:       history,
		InterruptPrompt:   "^C",
		EOFPrompt:         CmdExit,
		HistorySearchFold: true,
		AutoComplete:      completer,
	}
	l, err := readline.NewEx(config)
	if err != nil {
		return nil, err
	}
	return &Terminal{Console: l, out: out}, nil
}

func (t *Terminal) readline() (string, error) {
	for {
		line, err := t.Console.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		return line, err
	}
}

// NewSwitch asks for the number of ports until a switch can be built.
func (t *Terminal) NewSwitch() (*cswitch.Switch, error) {
	old := t.Console.Config.Prompt
	defer t.Console.SetPrompt(old)

	t.Console.SetPrompt("ports> ")
	for {
		line, err := t.readline()
		if err != nil {
			return nil, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ports, err := strconv.Atoi(line)
		if err != nil {
			_ = t.out.Invalid(fmt.Errorf("%w: %s", cswitch.ErrInvalidPorts, line))
			continue
		}
		sw, err := cswitch.NewSwitch(ports)
		if err != nil {
			_ = t.out.Invalid(err)
			continue
		}
		return sw, nil
	}
}

func (t *Terminal) Loop(c *Console) {
	for {
		line, err := t.readline()
		if err == io.EOF {
			break
		} else if err != nil {
			libol.Error("Terminal.Loop: %s", err)
			break
		}
		if c.Execute(line) {
			break
		}
	}
	libol.Debug("Terminal.Loop quit")
}

func (t *Terminal) Close() error {
	return t.Console.Close()
}
