package mines

import "iter"

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// chebyshev is the king-move distance between two squares.
func chebyshev(r0, c0, r1, c1 int) int {
	return max(abs(r0-r1), abs(c0-c1))
}

// neighbors yields the row-major indices of the up to 8 squares around
// (row, col), clipped to a rows x cols board.
func neighbors(rows, cols, row, col int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				r, c := row+dr, col+dc
				if r < 0 || r >= rows || c < 0 || c >= cols {
					continue
				}
				if !yield(r*cols + c) {
					return
				}
			}
		}
	}
}
