package game

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// CommandKind identifies a user request to the game
type CommandKind uint8

const (
	CmdTogglePause CommandKind = iota
	CmdStart
	CmdPause
	CmdStep
	CmdRestart
	CmdToggleCell
	CmdResize
	CmdQuit
)

// Command is one parsed line of user input
type Command struct {
	Kind CommandKind
	X, Y int // CmdToggleCell
	Size int // CmdResize
}

// ErrUnknownCommand is returned by ParseCommand for unrecognised input
var ErrUnknownCommand = errors.New("unknown command")

// Usage lists the commands ParseCommand accepts
const Usage = "[enter] start/pause | s start | p pause | n step | r restart | t X Y toggle cell | size N | q quit"

// ParseCommand parses a single line of input. An empty line toggles between
// running and paused.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{Kind: CmdTogglePause}, nil
	}

	name, args := fields[0], fields[1:]
	switch name {
	case "s", "start":
		return noArgs(CmdStart, name, args)
	case "p", "pause":
		return noArgs(CmdPause, name, args)
	case "n", "step":
		return noArgs(CmdStep, name, args)
	case "r", "restart":
		return noArgs(CmdRestart, name, args)
	case "q", "quit", "exit":
		return noArgs(CmdQuit, name, args)
	case "t", "toggle":
		nums, err := ints(name, args, 2)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CmdToggleCell, X: nums[0], Y: nums[1]}, nil
	case "size":
		nums, err := ints(name, args, 1)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CmdResize, Size: nums[0]}, nil
	}
	return Command{}, errors.Wrapf(ErrUnknownCommand, "[ParseCommand] %q", line)
}

func noArgs(kind CommandKind, name string, args []string) (Command, error) {
	if len(args) != 0 {
		return Command{}, errors.Wrapf(ErrUnknownCommand, "[ParseCommand] %s takes no arguments", name)
	}
	return Command{Kind: kind}, nil
}

func ints(name string, args []string, n int) ([]int, error) {
	if len(args) != n {
		return nil, errors.Wrapf(ErrUnknownCommand, "[ParseCommand] %s takes %d arguments, got %d", name, n, len(args))
	}
	out := make([]int, n)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, errors.Wrapf(ErrUnknownCommand, "[ParseCommand] %s: %q is not a number", name, a)
		}
		out[i] = v
	}
	return out, nil
}
