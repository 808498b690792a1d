// internal/game/types.go
//
// Core type definitions for the nonogram game engine.
// Defines:
//   - Mark: the player's annotation on a single play-grid cell.
//   - Action: the two inputs a player can aim at a cell.
//   - Status: lifecycle of a session (playing/won/lost).
//   - Outcome: what a single applied action did.
//   - BoundsError: coordinate outside the grid.

package game

import "fmt"

// Mark is the player's annotation for a single cell of the play grid.
// Possible values:
//   - Unknown:     untouched, the starting state of every cell.
//   - Filled:      the player claims the cell is part of the picture.
//   - MarkedEmpty: the player claims the cell is blank (drawn as an "x").
type Mark uint8

const (
	Unknown Mark = iota
	Filled
	MarkedEmpty
)

func (m Mark) String() string {
	switch m {
	case Unknown:
		return "unknown"
	case Filled:
		return "filled"
	case MarkedEmpty:
		return "x"
	}
	return fmt.Sprintf("mark(%d)", uint8(m))
}

// Action is a player input aimed at a cell. The zero value is not a
// valid action, so an uninitialized Action is rejected by Apply.
type Action uint8

const (
	PlaceFill Action = iota + 1 // assert the cell is filled
	PlaceX                      // assert the cell is empty
)

func (a Action) String() string {
	switch a {
	case PlaceFill:
		return "fill"
	case PlaceX:
		return "x"
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

// target reports the mark an action places on a cell that does not
// already carry it. The bool is false for invalid actions.
func (a Action) target() (Mark, bool) {
	switch a {
	case PlaceFill:
		return Filled, true
	case PlaceX:
		return MarkedEmpty, true
	}
	return Unknown, false
}

// Status is the coarse lifecycle state of a session.
type Status uint8

const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return fmt.Sprintf("status(%d)", uint8(s))
}

// Outcome reports what a single applied action did to the session.
type Outcome struct {
	Changed bool // a mark actually changed (false when the action was ignored)
	Mistake bool // the action left a wrong fill on the grid and consumed a try
}

// BoundsError reports a cell coordinate outside the grid. Query methods
// return it so callers can tell a bad coordinate from an Unknown cell.
type BoundsError struct {
	Row, Col   int
	Rows, Cols int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("cell (%d,%d) outside %dx%d grid", e.Row, e.Col, e.Rows, e.Cols)
}
