package console

import (
	"github.com/luscis/swengine/pkg/libol"
	cswitch "github.com/luscis/swengine/pkg/switch"
)

// Console runs parsed commands against one switch and prints the
// results.
type Console struct {
	sw  *cswitch.Switch
	out *Printer
	log *libol.SubLogger
}

func NewConsole(sw *cswitch.Switch, out *Printer) *Console {
	return &Console{
		sw:  sw,
		out: out,
		log: libol.NewSubLogger("console"),
	}
}

// Execute runs one line and reports whether the loop should stop.
func (c *Console) Execute(line string) bool {
	cmd, err := Parse(line)
	if err != nil {
		c.log.Debug("Console.Execute: %s", err)
		c.print(c.out.Invalid(err))
		return false
	}
	if cmd.Empty() {
		return false
	}
	c.log.Cmd("Console.Execute: %s", line)
	switch cmd.Name {
	case CmdExit:
		return true
	case CmdFrame:
		o, err := c.sw.Input(cmd.Args[0], cmd.Args[1], cmd.Args[2])
		if err != nil {
			c.print(c.out.Invalid(err))
			break
		}
		c.print(c.out.Outcome(o))
	case CmdTable:
		c.print(c.out.Fdb(c.sw.ListFdb(), c.sw.Now()))
	case CmdStatistics:
		c.print(c.out.Statistics(c.sw.Statistics()))
	case CmdDel:
		deleted, err := c.sw.Expire(cmd.Age)
		if err != nil {
			c.print(c.out.Invalid(err))
			break
		}
		c.print(c.out.Expired(cmd.Age, deleted))
	}
	return false
}

func (c *Console) print(err error) {
	if err != nil {
		c.log.Error("Console.print: %s", err)
	}
}
