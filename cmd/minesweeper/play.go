package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BrevinJohnston/BrevinJohnston.github.io/internal/command"
	"github.com/BrevinJohnston/BrevinJohnston.github.io/internal/controller"
	"github.com/BrevinJohnston/BrevinJohnston.github.io/internal/mines"
)

const playHelp = `commands:
  o ROW COL         uncover a square
  f ROW COL         toggle a flag
  t INDEX MILLIS    press a tile; a long press flags
  n ROWS COLS MINES start a custom game
  d easy|medium     start a preset game
  g                 redraw`

func newPlayCmd() *cobra.Command {
	var difficulty string
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal, reading commands from stdin",
		Long:  "Play in the terminal, reading commands from stdin.\n\n" + playHelp,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl := controller.New(mines.NewRand())
			if err := ctl.SetDifficulty(difficulty); err != nil {
				return err
			}
			return play(cmd.InOrStdin(), cmd.OutOrStdout(), ctl)
		},
	}
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", controller.Easy.Name, "starting preset")
	return cmd
}

func draw(out io.Writer, ctl *controller.Controller) {
	v := ctl.View()
	header := make([]string, v.Cols)
	for col := range v.Cols {
		header[col] = fmt.Sprint(col % 10)
	}
	fmt.Fprintf(out, "    %s\n", strings.Join(header, ""))
	for row, line := range v.Rendering {
		fmt.Fprintf(out, "%3d %s\n", row, line)
	}
	fmt.Fprintf(out, "%s  flags: %d  time: %ds  phase: %s\n",
		v.Difficulty, v.FlagsLeft, v.Elapsed, v.Phase)
	if v.Done {
		if v.Exploded {
			fmt.Fprintln(out, "you lost")
		} else {
			fmt.Fprintln(out, "you won")
		}
	}
}

// play reads one command per line until in is exhausted. Bad commands are
// reported and skipped.
func play(in io.Reader, out io.Writer, ctl *controller.Controller) error {
	draw(out, ctl)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "?" || line == "help" {
			fmt.Fprintln(out, playHelp)
			continue
		}
		if err := command.Run(ctl, line, nil); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		draw(out, ctl)
	}
	return scanner.Err()
}
