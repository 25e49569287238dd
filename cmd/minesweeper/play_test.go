package main

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrevinJohnston/BrevinJohnston.github.io/internal/controller"
)

func TestPlay(t *testing.T) {
	ctl := controller.New(rand.New(rand.NewPCG(1, 2)))
	in := strings.NewReader("n 2 3 1\n\nbogus\nhelp\no 0 0\n")
	var out bytes.Buffer

	require.NoError(t, play(in, &out, ctl))

	text := out.String()
	assert.Contains(t, text, "easy  flags: 10  time: 0s  phase: not_started\n")
	assert.Contains(t, text, "error: unknown command")
	assert.Contains(t, text, "d easy|medium")
	assert.Contains(t, text, "    012\n  0 HHH\n  1 HHH\n")
	assert.Contains(t, text, "  0 000\n  1 000\n")
	assert.True(t, strings.HasSuffix(text, "you won\n"))
}

func TestPlayCmd(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader("g\n"))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"play", "--difficulty", "medium"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "medium  flags: 40")
	assert.Contains(t, out.String(), " 13 HHHHHHHHHHHHHHHHHH\n")
}

func TestPlayCmdUnknownDifficulty(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"play", "-d", "nightmare"})

	assert.ErrorIs(t, cmd.Execute(), controller.ErrUnknownDifficulty)
}
