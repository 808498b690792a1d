// internal/game/hints.go
//
// Hint derivation: the run-length clues printed along the edges of the
// board. Derived once per puzzle from the solution grid; a row or
// column with no filled cells gets an empty (nil) sequence, which the
// renderer shows as "0".

package game

// Hints holds the clue sequences for every row and column of a puzzle.
// Rows[r] lists the lengths of the maximal filled runs in row r, left
// to right; Cols[c] does the same for column c, top to bottom.
type Hints struct {
	Rows [][]int
	Cols [][]int
}

// DeriveHints scans the solution grid and produces its clues.
func DeriveHints(g Grid) Hints {
	h := Hints{
		Rows: make([][]int, g.Rows()),
		Cols: make([][]int, g.Cols()),
	}
	for r := 0; r < g.Rows(); r++ {
		h.Rows[r] = runLengths(g.Cols(), func(c int) bool { return g.Filled(r, c) })
	}
	for c := 0; c < g.Cols(); c++ {
		h.Cols[c] = runLengths(g.Rows(), func(r int) bool { return g.Filled(r, c) })
	}
	return h
}

// runLengths walks one line of n cells and collects the lengths of the
// maximal consecutive filled runs, in order.
func runLengths(n int, filled func(i int) bool) []int {
	var runs []int
	run := 0
	for i := 0; i < n; i++ {
		if filled(i) {
			run++
			continue
		}
		if run > 0 {
			runs = append(runs, run)
			run = 0
		}
	}
	if run > 0 {
		runs = append(runs, run)
	}
	return runs
}
