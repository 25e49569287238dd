package mines

import "fmt"

type Phase uint8

const (
	NotStarted Phase = iota
	InProgress
	Done
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not_started"
	case InProgress:
		return "in_progress"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// [Phase] implements [encoding.TextMarshaler]
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

type Status struct {
	Done     bool `json:"done"`
	Exploded bool `json:"exploded"`
	Rows     int  `json:"rows"`
	Cols     int  `json:"cols"`
	Marked   int  `json:"marked"`
	Revealed int  `json:"revealed"`
	Mines    int  `json:"mines"`
}

// Phase derives the lifecycle stage. Mines are placed by the first accepted
// reveal, so a game with nothing revealed has not started yet.
func (s Status) Phase() Phase {
	switch {
	case s.Done:
		return Done
	case s.Revealed == 0:
		return NotStarted
	default:
		return InProgress
	}
}

func (g *Game) Status() Status {
	return Status{
		Done:     g.exploded || g.revealed == g.rows*g.cols-g.mineCount,
		Exploded: g.exploded,
		Rows:     g.rows,
		Cols:     g.cols,
		Marked:   g.marked,
		Revealed: g.revealed,
		Mines:    g.mineCount,
	}
}

func (g *Game) Phase() Phase {
	return g.Status().Phase()
}

// Rendering draws the board one string per row:
//
//	'M'      a mine, once the game exploded or the mine itself is revealed
//	'H'      hidden
//	'F'      flagged
//	'0'-'8'  revealed, with the number of adjacent mines
func (g *Game) Rendering() []string {
	rows := make([]string, g.rows)
	line := make([]byte, g.cols)
	for r := range g.rows {
		for c := range g.cols {
			cell := g.grid[g.index(r, c)]
			switch {
			case cell.Mine && (g.exploded || cell.State == Revealed):
				line[c] = 'M'
			case cell.State == Hidden:
				line[c] = 'H'
			case cell.State == Flagged:
				line[c] = 'F'
			default:
				line[c] = byte('0' + cell.Adjacent)
			}
		}
		rows[r] = string(line)
	}
	return rows
}
