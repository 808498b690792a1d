// internal/game/grid.go
//
// Grid is the immutable solution picture a puzzle is played against.
// Built once by the catalog loader, then only read.

package game

import (
	"errors"
	"fmt"
)

// Grid is a rectangular boolean picture stored row-major. The zero
// value is an empty 0x0 grid. Grids never change after NewGrid, so
// they are safe to share and to cache by value.
type Grid struct {
	rows, cols int
	cells      []bool
}

// NewGrid builds a grid from row-major cells (true = filled). The
// slice is copied, so the caller may reuse its buffer.
func NewGrid(rows, cols int, cells []bool) (Grid, error) {
	if rows <= 0 || cols <= 0 {
		return Grid{}, errors.New("game: grid dimensions must be positive")
	}
	if len(cells) != rows*cols {
		return Grid{}, fmt.Errorf("game: grid needs %d cells, got %d", rows*cols, len(cells))
	}
	c := make([]bool, len(cells))
	copy(c, cells)
	return Grid{rows: rows, cols: cols, cells: c}, nil
}

func (g Grid) Rows() int { return g.rows }
func (g Grid) Cols() int { return g.cols }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Filled reports whether the solution picture covers (row, col).
// The coordinate must be in bounds.
func (g Grid) Filled(row, col int) bool {
	return g.cells[row*g.cols+col]
}
