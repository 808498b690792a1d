// internal/game/playgrid.go
//
// PlayGrid is the mutable layer of marks the player edits during a
// session. It knows nothing about the solution except through
// IsComplete, which compares fills cell by cell.

package game

// PlayGrid holds the player's marks, row-major, same dimensions as the
// solution grid it is played against. All cells start Unknown.
type PlayGrid struct {
	rows, cols int
	marks      []Mark
}

// NewPlayGrid returns an all-Unknown grid of the given dimensions.
// Dimensions must be positive; the session guarantees that by
// constructing the play grid from a validated solution grid.
func NewPlayGrid(rows, cols int) *PlayGrid {
	return &PlayGrid{
		rows:  rows,
		cols:  cols,
		marks: make([]Mark, rows*cols),
	}
}

func (p *PlayGrid) Rows() int { return p.rows }
func (p *PlayGrid) Cols() int { return p.cols }

// Mark returns the current mark at (row, col), or a BoundsError for a
// coordinate outside the grid.
func (p *PlayGrid) Mark(row, col int) (Mark, error) {
	if !p.inBounds(row, col) {
		return Unknown, &BoundsError{Row: row, Col: col, Rows: p.rows, Cols: p.cols}
	}
	return p.marks[row*p.cols+col], nil
}

// SetMark overwrites the mark at (row, col).
func (p *PlayGrid) SetMark(row, col int, m Mark) error {
	if !p.inBounds(row, col) {
		return &BoundsError{Row: row, Col: col, Rows: p.rows, Cols: p.cols}
	}
	p.marks[row*p.cols+col] = m
	return nil
}

// Reset clears every cell back to Unknown.
func (p *PlayGrid) Reset() {
	for i := range p.marks {
		p.marks[i] = Unknown
	}
}

// IsComplete reports whether the marks reproduce the solution: every
// filled solution cell carries Filled and no empty cell does. Unknown
// and MarkedEmpty are interchangeable on empty cells; the player never
// has to x out the blanks to finish.
func (p *PlayGrid) IsComplete(solution Grid) bool {
	if solution.Rows() != p.rows || solution.Cols() != p.cols {
		return false
	}
	for r := 0; r < p.rows; r++ {
		for c := 0; c < p.cols; c++ {
			if solution.Filled(r, c) != (p.marks[r*p.cols+c] == Filled) {
				return false
			}
		}
	}
	return true
}

func (p *PlayGrid) inBounds(row, col int) bool {
	return row >= 0 && row < p.rows && col >= 0 && col < p.cols
}
