package controller

import (
	"math/rand/v2"
	"time"

	"github.com/BrevinJohnston/BrevinJohnston.github.io/internal/mines"
)

// DefaultPressThreshold separates a tap (uncover) from a long press (mark).
const DefaultPressThreshold = time.Second

// Controller applies the player-facing rules on top of a [mines.Game]: moves
// are addressed by tile index, flags are rationed, finished games are frozen
// and a clock runs from the first uncovered square until the game ends.
type Controller struct {
	game       *mines.Game
	difficulty string
	now        func() time.Time
	threshold  time.Duration
	startedAt  time.Time
	stoppedAt  time.Time
}

type Option func(*Controller)

func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

func WithPressThreshold(d time.Duration) Option {
	return func(c *Controller) {
		c.threshold = d
	}
}

// New returns a controller holding an [Easy] game. A nil rnd gets a randomly
// seeded source.
func New(rnd *rand.Rand, opts ...Option) *Controller {
	game, err := mines.NewGame(Easy.Rows, Easy.Cols, Easy.Mines, rnd)
	if err != nil {
		panic(err) // Easy is a valid preset
	}
	c := &Controller{
		game:       game,
		difficulty: Easy.Name,
		now:        time.Now,
		threshold:  DefaultPressThreshold,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewGame replaces the board with a custom one and resets the clock.
func (c *Controller) NewGame(rows, cols, mineCount int) error {
	return c.reset(Custom, rows, cols, mineCount)
}

func (c *Controller) SetDifficulty(name string) error {
	d, err := LookupDifficulty(name)
	if err != nil {
		return err
	}
	return c.reset(d.Name, d.Rows, d.Cols, d.Mines)
}

func (c *Controller) reset(name string, rows, cols, mineCount int) error {
	if err := c.game.Init(rows, cols, mineCount); err != nil {
		return err
	}
	c.difficulty = name
	c.startedAt = time.Time{}
	c.stoppedAt = time.Time{}
	return nil
}

func (c *Controller) Difficulty() string {
	return c.difficulty
}

func (c *Controller) Status() mines.Status {
	return c.game.Status()
}

// Locate maps a tile index, counted row by row, to board coordinates.
func (c *Controller) Locate(index int) (row, col int, ok bool) {
	cols := c.game.Cols()
	if index < 0 || index >= c.game.Rows()*cols {
		return 0, 0, false
	}
	return index / cols, index % cols, true
}

func (c *Controller) Uncover(index int) bool {
	row, col, ok := c.Locate(index)
	return ok && c.UncoverAt(row, col)
}

func (c *Controller) UncoverAt(row, col int) bool {
	if c.game.Status().Done {
		return false
	}
	if !c.game.Reveal(row, col) {
		return false
	}
	c.tick()
	return true
}

func (c *Controller) Mark(index int) bool {
	row, col, ok := c.Locate(index)
	return ok && c.MarkAt(row, col)
}

// MarkAt toggles a flag. Flags need a started, unfinished game, and once
// every mine has a flag the only allowed mark removes one.
func (c *Controller) MarkAt(row, col int) bool {
	s := c.game.Status()
	if s.Done || s.Revealed == 0 || !c.game.InBounds(row, col) {
		return false
	}
	if s.Mines-s.Marked <= 0 && c.game.Cell(row, col) != mines.Flagged {
		return false
	}
	return c.game.ToggleFlag(row, col)
}

// Press handles a tap or long press on a tile, told apart by how long it was
// held.
func (c *Controller) Press(index int, held time.Duration) bool {
	if held >= c.threshold {
		return c.Mark(index)
	}
	return c.Uncover(index)
}

// tick starts the clock on the first uncovered square and stops it when the
// game is over.
func (c *Controller) tick() {
	now := c.now()
	if c.startedAt.IsZero() {
		c.startedAt = now
	}
	if c.stoppedAt.IsZero() && c.game.Status().Done {
		c.stoppedAt = now
	}
}

func (c *Controller) Elapsed() time.Duration {
	if c.startedAt.IsZero() {
		return 0
	}
	end := c.stoppedAt
	if end.IsZero() {
		end = c.now()
	}
	return end.Sub(c.startedAt)
}
