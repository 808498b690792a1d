// internal/console/render.go
//
// Board rendering for the terminal, roughly:
//
//        1 2 1
//      ┌───────┐
//    2 │ ██ ██ │
//  1 1 │ ██  x │
//      └───────┘
//
// Column hints stack above their column, bottom-aligned; row hints sit
// right-aligned to the left of their row. Lines with no runs show "0".
// Every 5 rows/columns a divider splits the board, the usual nonogram
// reading aid. Colors are plain ANSI escapes; unknown color names (or
// empty ones) leave the text uncolored.

package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/GrgurDuj/nono-game/internal/config"
	"github.com/GrgurDuj/nono-game/internal/game"
)

// hintGroup is how many rows/columns sit between dividers.
const hintGroup = 5

const colorReset = "\033[0m"

var colorCodes = map[string]string{
	"black":          "\033[30m",
	"red":            "\033[31m",
	"green":          "\033[32m",
	"yellow":         "\033[33m",
	"blue":           "\033[34m",
	"magenta":        "\033[35m",
	"cyan":           "\033[36m",
	"white":          "\033[37m",
	"gray":           "\033[90m",
	"bright_red":     "\033[91m",
	"bright_green":   "\033[92m",
	"bright_yellow":  "\033[93m",
	"bright_blue":    "\033[94m",
	"bright_magenta": "\033[95m",
	"bright_cyan":    "\033[96m",
	"bright_white":   "\033[97m",
}

// colorize wraps s in the ANSI code for the named color. Unknown or
// empty names return s untouched.
func colorize(s, color string) string {
	code, ok := colorCodes[strings.ToLower(color)]
	if !ok {
		return s
	}
	return code + s + colorReset
}

// renderBoard writes the whole board: column hints, framed grid with
// row hints, and the tries line.
func renderBoard(w io.Writer, s *game.Session, d config.Display) {
	cw := d.CellWidth
	if cw < 1 {
		cw = 2
	}
	rows, cols := s.Rows(), s.Cols()

	// Row hint labels, right-aligned into a fixed-width gutter.
	labels := make([]string, rows)
	gutter := 0
	for r := 0; r < rows; r++ {
		labels[r] = hintLabel(s.RowHints()[r])
		if len(labels[r]) > gutter {
			gutter = len(labels[r])
		}
	}

	// Column hints, bottom-aligned; empty columns show a single 0.
	colNums := make([][]int, cols)
	depth := 0
	for c := 0; c < cols; c++ {
		colNums[c] = s.ColHints()[c]
		if len(colNums[c]) == 0 {
			colNums[c] = []int{0}
		}
		if len(colNums[c]) > depth {
			depth = len(colNums[c])
		}
	}
	for level := 0; level < depth; level++ {
		var b strings.Builder
		b.WriteString(strings.Repeat(" ", gutter+1))
		b.WriteString("  ")
		for c := 0; c < cols; c++ {
			pos := len(colNums[c]) - depth + level
			if pos >= 0 {
				fmt.Fprintf(&b, "%*d", cw, colNums[c][pos])
			} else {
				b.WriteString(strings.Repeat(" ", cw))
			}
			b.WriteString(" ")
			if divideAfter(c, cols) {
				b.WriteString("  ")
			}
		}
		fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}

	fmt.Fprintln(w, frameLine(gutter, cw, cols, "┌", "┬", "┐", d.LineColor))
	for r := 0; r < rows; r++ {
		var b strings.Builder
		fmt.Fprintf(&b, "%*s ", gutter, labels[r])
		b.WriteString(vert(d.LineColor) + " ")
		for c := 0; c < cols; c++ {
			m, _ := s.Mark(r, c)
			b.WriteString(cellString(m, d, cw))
			b.WriteString(" ")
			if divideAfter(c, cols) {
				b.WriteString(vert(d.LineColor) + " ")
			}
		}
		b.WriteString(vert(d.LineColor))
		fmt.Fprintln(w, b.String())

		if divideAfter(r, rows) {
			fmt.Fprintln(w, frameLine(gutter, cw, cols, "├", "┼", "┤", d.LineColor))
		}
	}
	fmt.Fprintln(w, frameLine(gutter, cw, cols, "└", "┴", "┘", d.LineColor))

	fmt.Fprintf(w, "Tries left: %d of %d\n", s.TriesLeft(), s.MaxTries())
}

// cellString renders one cell at the given width.
func cellString(m game.Mark, d config.Display, cw int) string {
	switch m {
	case game.Filled:
		return colorize(strings.Repeat("█", cw), d.SquareColor)
	case game.MarkedEmpty:
		return colorize(center("x", cw), d.XColor)
	}
	return center(".", cw)
}

// hintLabel formats one run sequence: "2 1", or "0" for no runs.
func hintLabel(runs []int) string {
	if len(runs) == 0 {
		return "0"
	}
	parts := make([]string, len(runs))
	for i, n := range runs {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}

// frameLine draws a horizontal border with divider junctions.
func frameLine(gutter, cw, cols int, left, junction, right, lineColor string) string {
	var b strings.Builder
	b.WriteString(left)
	run := 1 // the space after the border
	for c := 0; c < cols; c++ {
		run += cw + 1
		if divideAfter(c, cols) {
			b.WriteString(strings.Repeat("─", run))
			b.WriteString(junction)
			run = 1
		}
	}
	b.WriteString(strings.Repeat("─", run))
	b.WriteString(right)
	return strings.Repeat(" ", gutter+1) + colorize(b.String(), lineColor)
}

// vert is one frame upright, colored like the rest of the frame.
func vert(lineColor string) string {
	return colorize("│", lineColor)
}

// divideAfter reports whether a divider belongs after line i of n.
func divideAfter(i, n int) bool {
	return (i+1)%hintGroup == 0 && i+1 < n
}

// center pads s with spaces to width w, leaning right when uneven so
// marks line up under the right-aligned column hints.
func center(s string, w int) string {
	if len(s) >= w {
		return s
	}
	left := (w - len(s) + 1) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-left-len(s))
}
