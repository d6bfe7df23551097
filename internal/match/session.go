// Package match orchestrates one sitting at the board: it wraps the
// engine with the bookkeeping the platform layers need (timing, outcome
// capture, rematch tally) and owns the parsing of player input into
// board coordinates. It knows nothing about terminals or storage
// schemas.
package match

import (
	"time"

	"github.com/rkoschmitzky/Terminal-Tic-Tac-Toe/internal/board"
)

// Result is the terminal outcome of one game, ready to be displayed or
// persisted. Winner is board.Empty for a draw.
type Result struct {
	Winner   board.Mark
	Axes     []board.Axis
	Size     int
	Moves    int
	Duration time.Duration
}

// Session runs a single game from the first move to its outcome.
type Session struct {
	board   *board.Board
	started time.Time
	result  *Result
}

// NewSession starts a game on a fresh n×n board.
func NewSession(n int) (*Session, error) {
	b, err := board.New(n)
	if err != nil {
		return nil, err
	}
	return &Session{
		board:   b,
		started: time.Now(),
	}, nil
}

// Board exposes the underlying engine for queries and rendering.
func (s *Session) Board() *board.Board {
	return s.board
}

// Place forwards a move to the engine and captures the outcome when the
// game ends. Engine errors pass through unchanged so callers can match
// them with errors.Is and re-prompt the same player.
func (s *Session) Place(mark board.Mark, cell board.Cell) (bool, []board.Axis, error) {
	won, axes, err := s.board.Place(mark, cell)
	if err != nil {
		return false, nil, err
	}
	if s.board.IsFinished() && s.result == nil {
		s.result = &Result{
			Winner:   s.board.Winner(),
			Axes:     axes,
			Size:     s.board.Size(),
			Moves:    s.board.Moves(),
			Duration: time.Since(s.started),
		}
	}
	return won, axes, nil
}

// Result returns the outcome once the game has finished, nil before.
func (s *Session) Result() *Result {
	return s.result
}

// Tally accumulates outcomes across rematches within one sitting.
type Tally struct {
	WinsA int
	WinsB int
	Draws int
}

// Record adds one finished game to the tally.
func (t *Tally) Record(r Result) {
	switch r.Winner {
	case board.PlayerA:
		t.WinsA++
	case board.PlayerB:
		t.WinsB++
	default:
		t.Draws++
	}
}

// Games returns the number of games recorded.
func (t *Tally) Games() int {
	return t.WinsA + t.WinsB + t.Draws
}
