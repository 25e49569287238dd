package mines

import "strings"

type Visibility int8

const (
	Hidden Visibility = iota
	Revealed
	Flagged
)

func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	default:
		return "invalid"
	}
}

// Cell is a single square of the board. Adjacent is only meaningful once
// mines have been placed.
type Cell struct {
	Mine     bool
	State    Visibility
	Adjacent int
}

// Grid stores cells row-major.
type Grid []Cell

// layout draws the mine positions next to the adjacency counts, one line per
// row: "..B.  |  0121".
func (g Grid) layout(cols int) []string {
	lines := make([]string, 0, len(g)/cols)
	for row := range len(g) / cols {
		var b strings.Builder
		for col := range cols {
			if g[row*cols+col].Mine {
				b.WriteByte('B')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteString("  |  ")
		for col := range cols {
			b.WriteByte(byte('0' + g[row*cols+col].Adjacent))
		}
		lines = append(lines, b.String())
	}
	return lines
}
