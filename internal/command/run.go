package command

import (
	"strings"

	"github.com/BrevinJohnston/BrevinJohnston.github.io/internal/controller"
	"github.com/BrevinJohnston/BrevinJohnston.github.io/internal/mines"
)

// Observer is told about every applied command.
type Observer interface {
	Observe(c Command, accepted bool, before, after mines.Status)
}

// Run applies text line by line. Blank lines are skipped; the first bad line
// aborts the rest. Lines following the move that ends a game are dropped.
// obs may be nil.
func Run(ctl *controller.Controller, text string, obs Observer) error {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		c, err := Parse(line)
		if err != nil {
			return err
		}
		before := ctl.Status()
		if _, err := Exec(ctl, c, obs); err != nil {
			return err
		}
		after := ctl.Status()
		if !c.Starts() && !before.Done && after.Done {
			break
		}
	}
	return nil
}

// Exec applies a single command and reports it to obs, which may be nil.
func Exec(ctl *controller.Controller, c Command, obs Observer) (bool, error) {
	before := ctl.Status()
	accepted, err := c.Apply(ctl)
	if err != nil {
		return false, err
	}
	if obs != nil {
		obs.Observe(c, accepted, before, ctl.Status())
	}
	return accepted, nil
}
