// internal/catalog/parse.go
//
// Puzzle source format: one text line per grid row, cells written as
// "0" (blank) or "1" (filled) separated by whitespace. Blank lines and
// lines starting with '#' are skipped, so files can carry a title
// comment. Every data row must have the same number of cells.

package catalog

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/GrgurDuj/nono-game/internal/game"
)

// MalformedPuzzleError reports a puzzle source that cannot be turned
// into a grid. Line is 1-based and counts every source line, skipped
// ones included; 0 means the file as a whole.
type MalformedPuzzleError struct {
	Line   int
	Reason string
}

func (e *MalformedPuzzleError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed puzzle: line %d: %s", e.Line, e.Reason)
	}
	return "malformed puzzle: " + e.Reason
}

// Parse reads one puzzle source into a solution grid.
func Parse(r io.Reader) (game.Grid, error) {
	var (
		cells []bool
		rows  int
		cols  int
	)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if rows == 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return game.Grid{}, &MalformedPuzzleError{
				Line:   line,
				Reason: fmt.Sprintf("row has %d cells, want %d", len(fields), cols),
			}
		}
		for _, f := range fields {
			switch f {
			case "0":
				cells = append(cells, false)
			case "1":
				cells = append(cells, true)
			default:
				return game.Grid{}, &MalformedPuzzleError{
					Line:   line,
					Reason: fmt.Sprintf("cell must be 0 or 1, got %q", f),
				}
			}
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return game.Grid{}, fmt.Errorf("read puzzle: %w", err)
	}
	if rows == 0 {
		return game.Grid{}, &MalformedPuzzleError{Reason: "no rows"}
	}
	return game.NewGrid(rows, cols, cells)
}
