// internal/game/session.go
//
// Core game session for a single nonogram puzzle.
// Responsibilities:
//   - Own the solution grid, its hints, and the player's play grid.
//   - Apply player actions with toggle semantics.
//   - Track the mistake budget and state transitions: playing → won/lost.
//
// Notes:
//   - Solution grids are produced by the catalog package; the session
//     never exposes the solution itself, only derived hints and marks.
//   - A terminal session (won or lost) ignores actions until Restart.
package game

// DefaultMaxTries is the mistake budget used when the caller passes a
// non-positive one.
const DefaultMaxTries = 3

// Session is the state of one puzzle being played. Not safe for
// concurrent use.
type Session struct {
	solution Grid
	hints    Hints
	play     *PlayGrid
	maxTries int
	mistakes int
	status   Status
}

// NewSession starts a fresh session for the given solution grid.
// maxTries is the number of wrong fills the player may confirm before
// losing; values < 1 fall back to DefaultMaxTries.
func NewSession(solution Grid, maxTries int) *Session {
	if maxTries <= 0 {
		maxTries = DefaultMaxTries
	}
	return &Session{
		solution: solution,
		hints:    DeriveHints(solution),
		play:     NewPlayGrid(solution.Rows(), solution.Cols()),
		maxTries: maxTries,
	}
}

// Apply performs one player action on one cell, mutating the session.
// Returns: what the action did, and the status after it.
//
// Ignored (Outcome zero, state unchanged):
//   - The session is already won or lost.
//   - (row, col) is outside the grid.
//   - The action is not PlaceFill or PlaceX.
//
// Toggle semantics:
//   - The action's mark replaces whatever the cell holds.
//   - If the cell already holds that mark, it reverts to Unknown.
//
// Mistakes and transitions:
//   - An action that leaves a wrong Filled mark consumes a try; when
//     the budget runs out the session is lost. PlaceX is never wrong.
//   - Any action that leaves the grid matching the solution wins,
//     including removing the last stray fill.
func (s *Session) Apply(row, col int, action Action) (Outcome, Status) {
	if s.status != InProgress {
		return Outcome{}, s.status
	}
	if !s.solution.InBounds(row, col) {
		return Outcome{}, s.status
	}
	target, ok := action.target()
	if !ok {
		return Outcome{}, s.status
	}

	cur, _ := s.play.Mark(row, col)
	next := target
	if cur == target {
		next = Unknown
	}
	_ = s.play.SetMark(row, col, next)

	out := Outcome{Changed: true}
	if next == Filled && !s.solution.Filled(row, col) {
		s.mistakes++
		out.Mistake = true
		if s.mistakes >= s.maxTries {
			s.status = Lost
			return out, s.status
		}
	}
	if s.play.IsComplete(s.solution) {
		s.status = Won
	}
	return out, s.status
}

// Restart clears the play grid and comes back to InProgress with a
// full mistake budget. The puzzle and its hints stay the same.
func (s *Session) Restart() {
	s.play.Reset()
	s.mistakes = 0
	s.status = InProgress
}

// ---- read-only queries (the rendering surface) ----

func (s *Session) Rows() int      { return s.solution.Rows() }
func (s *Session) Cols() int      { return s.solution.Cols() }
func (s *Session) Status() Status { return s.status }
func (s *Session) Mistakes() int  { return s.mistakes }
func (s *Session) MaxTries() int  { return s.maxTries }

// TriesLeft is the number of wrong fills the player can still afford.
func (s *Session) TriesLeft() int { return s.maxTries - s.mistakes }

// RowHints and ColHints return the derived clues. Callers must treat
// the returned slices as read-only.
func (s *Session) RowHints() [][]int { return s.hints.Rows }
func (s *Session) ColHints() [][]int { return s.hints.Cols }

// Mark returns the player's mark at (row, col), or a BoundsError.
func (s *Session) Mark(row, col int) (Mark, error) {
	return s.play.Mark(row, col)
}
