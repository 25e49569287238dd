package controller

import "github.com/BrevinJohnston/BrevinJohnston.github.io/internal/mines"

// View is everything a front end needs to draw the board and the counters.
type View struct {
	mines.Status
	Phase      mines.Phase `json:"phase"`
	Difficulty string      `json:"difficulty"`
	FlagsLeft  int         `json:"flags_left"`
	Elapsed    int         `json:"elapsed"`
	Rendering  []string    `json:"rendering"`
}

func (c *Controller) View() View {
	s := c.game.Status()
	return View{
		Status:     s,
		Phase:      s.Phase(),
		Difficulty: c.difficulty,
		FlagsLeft:  s.Mines - s.Marked,
		Elapsed:    int(c.Elapsed().Seconds()),
		Rendering:  c.game.Rendering(),
	}
}
