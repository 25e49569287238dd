package command

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrevinJohnston/BrevinJohnston.github.io/internal/controller"
	"github.com/BrevinJohnston/BrevinJohnston.github.io/internal/mines"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		input string
		want  Command
		err   error
	}{
		{"g", Command{Op: Noop, Args: []int{}}, nil},
		{"o 1 2", Command{Op: Open, Args: []int{1, 2}}, nil},
		{"  F 3   4 ", Command{Op: Flag, Args: []int{3, 4}}, nil},
		{"t 17 1200", Command{Op: Tap, Args: []int{17, 1200}}, nil},
		{"n 9 9 10", Command{Op: New, Args: []int{9, 9, 10}}, nil},
		{"d medium", Command{Op: Difficulty, Name: "medium"}, nil},
		{"", Command{}, ErrEmpty},
		{"x 1 2", Command{}, ErrUnknownCommand},
		{"o 1", Command{}, ErrBadArgs},
		{"g 1", Command{}, ErrBadArgs},
		{"n 1 2", Command{}, ErrBadArgs},
	}
	for _, test := range testCases {
		c, err := Parse(test.input)
		if test.err != nil {
			assert.ErrorIs(t, err, test.err, "input %q", test.input)
			continue
		}
		require.NoError(t, err, "input %q", test.input)
		assert.Equal(t, test.want, c, "input %q", test.input)
	}
}

func TestParseRejectsNonInts(t *testing.T) {
	_, err := Parse("o a 2")
	assert.EqualError(t, err, "argument 1 must be an int")
	_, err = Parse("t 2 long")
	assert.EqualError(t, err, "argument 2 must be an int")
}

func TestString(t *testing.T) {
	for _, line := range []string{"g", "o 1 2", "t 4 900", "n 3 3 1", "d easy"} {
		c, err := Parse(line)
		require.NoError(t, err)
		assert.Equal(t, line, c.String())
	}
}

type recorder struct {
	commands []Command
	accepted []bool
	finished int
}

func (r *recorder) Observe(c Command, accepted bool, before, after mines.Status) {
	r.commands = append(r.commands, c)
	r.accepted = append(r.accepted, accepted)
	if !before.Done && after.Done {
		r.finished++
	}
}

func newController() *controller.Controller {
	return controller.New(rand.New(rand.NewPCG(1, 2)))
}

func TestRun(t *testing.T) {
	ctl := newController()
	rec := &recorder{}

	err := Run(ctl, "n 2 2 1\n\nf 0 0\no 1 1\n", rec)
	require.NoError(t, err)

	assert.Len(t, rec.commands, 3)
	// flags need a started game
	assert.Equal(t, []bool{true, false, true}, rec.accepted)
	assert.Equal(t, 1, rec.finished)
	assert.True(t, ctl.Status().Done)
	assert.Equal(t, controller.Custom, ctl.Difficulty())
}

func TestRunStopsAfterGameEnds(t *testing.T) {
	ctl := newController()
	rec := &recorder{}

	require.NoError(t, Run(ctl, "n 2 2 1\no 0 0\no 1 1\ng", rec))
	assert.Len(t, rec.commands, 2)

	// a new game may follow in a later message
	require.NoError(t, Run(ctl, "d medium\ng", rec))
	assert.Len(t, rec.commands, 4)
	assert.Equal(t, mines.NotStarted, ctl.Status().Phase())
}

func TestRunAbortsOnError(t *testing.T) {
	ctl := newController()
	rec := &recorder{}

	err := Run(ctl, "d medium\nbogus\nd easy", rec)
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Len(t, rec.commands, 1)
	assert.Equal(t, "medium", ctl.Difficulty())

	err = Run(ctl, "n 0 0 0", nil)
	assert.ErrorIs(t, err, mines.ErrBadDimensions)

	err = Run(ctl, "d impossible", nil)
	assert.ErrorIs(t, err, controller.ErrUnknownDifficulty)
}
