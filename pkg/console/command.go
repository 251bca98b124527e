package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	CmdFrame      = "frame"
	CmdTable      = "table"
	CmdStatistics = "statistics"
	CmdDel        = "del"
	CmdExit       = "exit"
)

var ErrInvalidCommand = errors.New("invalid command")

// Command is one parsed console line. Args holds the frame's port,
// source and destination; Age holds the del argument.
type Command struct {
	Name string
	Args []int
	Age  string
}

func (c Command) Empty() bool {
	return c.Name == ""
}

func invalid(line, reason string) error {
	return fmt.Errorf("%w: %q %s", ErrInvalidCommand, line, reason)
}

// Parse splits line on white space and checks its shape. It never
// looks at the switch, so value ranges are left to the engine.
func Parse(line string) (Command, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return Command{}, nil
	}
	cmd := Command{Name: args[0]}
	switch cmd.Name {
	case CmdFrame:
		if len(args) != 4 {
			return Command{}, invalid(line, "wants 3 arguments")
		}
		for _, v := range args[1:] {
			n, err := strconv.Atoi(v)
			if err != nil {
				return Command{}, invalid(line, v+" is not a number")
			}
			cmd.Args = append(cmd.Args, n)
		}
	case CmdTable, CmdStatistics, CmdExit:
		if len(args) != 1 {
			return Command{}, invalid(line, "wants no argument")
		}
	case CmdDel:
		if len(args) != 2 {
			return Command{}, invalid(line, "wants 1 argument")
		}
		cmd.Age = args[1]
	default:
		return Command{}, invalid(line, "unknown")
	}
	return cmd, nil
}
