package mines

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// exclusionRadius is the Chebyshev radius around the first revealed square
// that never receives a mine.
const exclusionRadius = 2

// Game is a single Minesweeper board. It is not safe for concurrent use;
// callers serialise access to one instance.
type Game struct {
	rows, cols  int
	mineCount   int
	grid        Grid
	marked      int
	revealed    int
	minesPlaced bool
	exploded    bool
	rnd         *rand.Rand
}

// NewGame allocates a game and initialises it with the given dimensions. Mine
// positions are drawn from rnd on the first reveal; a nil rnd gets a randomly
// seeded source.
func NewGame(rows, cols, mineCount int, rnd *rand.Rand) (*Game, error) {
	if rnd == nil {
		rnd = NewRand()
	}
	g := &Game{rnd: rnd}
	if err := g.Init(rows, cols, mineCount); err != nil {
		return nil, err
	}
	return g, nil
}

// Init discards the current board and starts a fresh one with every square
// hidden. On error the game is left untouched.
func (g *Game) Init(rows, cols, mineCount int) error {
	if rows <= 0 || cols <= 0 {
		return ErrBadDimensions
	}
	if mineCount < 0 {
		return ErrBadMineCount
	}
	g.rows = rows
	g.cols = cols
	g.mineCount = min(mineCount, rows*cols)
	g.grid = make(Grid, rows*cols)
	g.marked = 0
	g.revealed = 0
	g.minesPlaced = false
	g.exploded = false
	if g.rnd == nil {
		g.rnd = NewRand()
	}
	return nil
}

func (g *Game) InBounds(row, col int) bool {
	return 0 <= row && row < g.rows && 0 <= col && col < g.cols
}

// Cell reports the visibility of (row, col). Out-of-bounds squares read as
// Hidden.
func (g *Game) Cell(row, col int) Visibility {
	if !g.InBounds(row, col) {
		return Hidden
	}
	return g.grid[g.index(row, col)].State
}

func (g *Game) Rows() int { return g.rows }
func (g *Game) Cols() int { return g.cols }

func (g *Game) index(row, col int) int {
	return row*g.cols + col
}

// placeMines sprinkles the mines, keeping the squares within exclusionRadius
// of (row, col) clear. If too few squares lie outside that zone the mine count
// shrinks to fit.
func (g *Game) placeMines(row, col int) {
	eligible := make([]int, 0, len(g.grid))
	for r := range g.rows {
		for c := range g.cols {
			if chebyshev(row, col, r, c) > exclusionRadius {
				eligible = append(eligible, g.index(r, c))
			}
		}
	}
	g.mineCount = min(g.mineCount, len(eligible))

	// partial Fisher-Yates: the first mineCount entries end up a uniform sample
	for i := range g.mineCount {
		j := i + g.rnd.IntN(len(eligible)-i)
		eligible[i], eligible[j] = eligible[j], eligible[i]
		g.grid[eligible[i]].Mine = true
	}

	for i := range g.grid {
		if g.grid[i].State == Flagged {
			g.grid[i].State = Hidden
		}
	}
	g.marked = 0
	g.recount()
	g.minesPlaced = true

	if Log.IsLevelEnabled(logrus.DebugLevel) {
		log := Log.WithFields(logrus.Fields{
			"rows":  g.rows,
			"cols":  g.cols,
			"mines": g.mineCount,
			"first": [2]int{row, col},
		})
		log.Debug("mines placed")
		for _, line := range g.grid.layout(g.cols) {
			log.Debug(line)
		}
	}
}

// recount refreshes the adjacency count of every square.
func (g *Game) recount() {
	for r := range g.rows {
		for c := range g.cols {
			n := 0
			for j := range neighbors(g.rows, g.cols, r, c) {
				if g.grid[j].Mine {
					n++
				}
			}
			g.grid[g.index(r, c)].Adjacent = n
		}
	}
}

// Reveal opens (row, col). The first call of a game places the mines. A square
// with no adjacent mines opens its neighbours as well, spreading across the
// whole zero region and stopping at its numbered border. Reveal reports
// false, changing nothing, for out-of-bounds coordinates and squares that are
// not hidden. Hitting a mine is an accepted move.
func (g *Game) Reveal(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	if !g.minesPlaced {
		g.placeMines(row, col)
	}
	target := g.index(row, col)
	if g.grid[target].State != Hidden {
		return false
	}

	todo := []int{target}
	for len(todo) > 0 {
		i := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		cell := &g.grid[i]
		if cell.State != Hidden {
			continue
		}
		cell.State = Revealed
		g.revealed++
		if cell.Adjacent != 0 {
			continue
		}
		for j := range neighbors(g.rows, g.cols, i/g.cols, i%g.cols) {
			if g.grid[j].State == Hidden {
				todo = append(todo, j)
			}
		}
	}

	if g.grid[target].Mine {
		g.exploded = true
		Log.WithFields(logrus.Fields{"row": row, "col": col}).Debug("mine hit")
	}
	return true
}

// ToggleFlag flips a hidden square to flagged and back. Revealed squares and
// out-of-bounds coordinates are refused.
func (g *Game) ToggleFlag(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	cell := &g.grid[g.index(row, col)]
	switch cell.State {
	case Hidden:
		cell.State = Flagged
		g.marked++
	case Flagged:
		cell.State = Hidden
		g.marked--
	default:
		return false
	}
	return true
}
