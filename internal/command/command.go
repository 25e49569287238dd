package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/BrevinJohnston/BrevinJohnston.github.io/internal/controller"
)

type Op string

const (
	Noop       Op = "g"
	Open       Op = "o"
	Flag       Op = "f"
	Tap        Op = "t"
	New        Op = "n"
	Difficulty Op = "d"
)

// Maps known commands to number of arguments
var opNargs = map[Op]int{
	Noop:       0,
	Open:       2,
	Flag:       2,
	Tap:        2,
	New:        3,
	Difficulty: 1,
}

var (
	ErrEmpty          = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArgs        = errors.New("invalid number of arguments")
)

type Command struct {
	Op   Op
	Args []int
	Name string
}

func (c Command) String() string {
	parts := []string{string(c.Op)}
	for _, a := range c.Args {
		parts = append(parts, strconv.Itoa(a))
	}
	if c.Name != "" {
		parts = append(parts, c.Name)
	}
	return strings.Join(parts, " ")
}

// Starts reports whether c replaces the board.
func (c Command) Starts() bool {
	return c.Op == New || c.Op == Difficulty
}

func parseInts(args []string) ([]int, error) {
	ints := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d must be an int", i+1)
		}
		ints[i] = n
	}
	return ints, nil
}

func Parse(line string) (Command, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Command{}, ErrEmpty
	}
	op, args := Op(strings.ToLower(tokens[0])), tokens[1:]
	nargs, ok := opNargs[op]
	if !ok {
		return Command{}, fmt.Errorf("%w %q", ErrUnknownCommand, tokens[0])
	}
	if nargs != len(args) {
		return Command{}, fmt.Errorf("%w: %q takes %d", ErrBadArgs, op, nargs)
	}
	if op == Difficulty {
		return Command{Op: op, Name: args[0]}, nil
	}
	ints, err := parseInts(args)
	if err != nil {
		return Command{}, err
	}
	return Command{Op: op, Args: ints}, nil
}

// Apply runs c against ctl. A refused move is not an error: it reports false
// and leaves the game as it was.
func (c Command) Apply(ctl *controller.Controller) (bool, error) {
	switch c.Op {
	case Noop:
		return true, nil
	case Open:
		return ctl.UncoverAt(c.Args[0], c.Args[1]), nil
	case Flag:
		return ctl.MarkAt(c.Args[0], c.Args[1]), nil
	case Tap:
		held := time.Duration(c.Args[1]) * time.Millisecond
		return ctl.Press(c.Args[0], held), nil
	case New:
		if err := ctl.NewGame(c.Args[0], c.Args[1], c.Args[2]); err != nil {
			return false, err
		}
		return true, nil
	case Difficulty:
		if err := ctl.SetDifficulty(c.Name); err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, ErrUnknownCommand
	}
}
