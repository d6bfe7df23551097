// Package board implements the tic-tac-toe game engine: an n×n grid,
// turn enforcement, placement validation, and win detection. It contains
// no I/O and no rendering; presentation is the platform layer's job.
package board

import (
	"errors"
	"fmt"
)

// MinSize is the smallest playable board dimension.
const MinSize = 3

// Mark is a player's symbol occupying a cell.
type Mark uint8

const (
	Empty Mark = iota
	PlayerA
	PlayerB
)

// String returns a symbol-agnostic name. Display symbols (X/O or
// anything else) are chosen by the presentation layer.
func (m Mark) String() string {
	switch m {
	case PlayerA:
		return "player A"
	case PlayerB:
		return "player B"
	default:
		return "empty"
	}
}

// Other returns the opposing player's mark. Other(Empty) is Empty.
func (m Mark) Other() Mark {
	switch m {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return Empty
	}
}

// Cell is a (row, col) coordinate on the board, both in [0, n).
type Cell struct {
	Row, Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Axis is one of the four line directions checked for a win.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
	DiagonalDescending
	DiagonalAscending
)

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontally"
	case Vertical:
		return "vertically"
	case DiagonalDescending:
		return "diagonal descending"
	case DiagonalAscending:
		return "diagonal ascending"
	default:
		return "unknown"
	}
}

var (
	ErrInvalidDimension = errors.New("board size must be at least 3x3")
	ErrGameFinished     = errors.New("game already finished")
	ErrOutOfTurn        = errors.New("not allowed to move twice in a row")
	ErrOutOfBounds      = errors.New("coordinate outside the board")
	ErrCellOccupied     = errors.New("cell is not empty")
)

// Board holds the state of one game. Create it with New and mutate it
// only through Place. A failed Place leaves the board unchanged.
type Board struct {
	size     int
	cells    []Mark // row-major, len size*size
	lastMark Mark
	moves    int
	finished bool
	winner   Mark
	winAxes  []Axis
}

// New creates an empty n×n board. n must be at least MinSize.
func New(n int) (*Board, error) {
	if n < MinSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDimension, n)
	}
	return &Board{
		size:  n,
		cells: make([]Mark, n*n),
	}, nil
}

// Size returns the board dimension n.
func (b *Board) Size() int {
	return b.size
}

// Moves returns the number of successful placements so far.
func (b *Board) Moves() int {
	return b.moves
}

// At returns the mark at the given cell, or Empty for out-of-bounds
// coordinates.
func (b *Board) At(c Cell) Mark {
	if !b.inBounds(c) {
		return Empty
	}
	return b.cells[c.Row*b.size+c.Col]
}

// CurrentTurn returns the mark expected to move next. On an empty board
// either player may open; by convention this reports PlayerA.
func (b *Board) CurrentTurn() Mark {
	if b.lastMark == PlayerA {
		return PlayerB
	}
	return PlayerA
}

// IsFinished reports whether the game has ended, either through a
// detected win or a completely filled board (draw).
func (b *Board) IsFinished() bool {
	return b.finished || b.moves == len(b.cells)
}

// Winner returns the winning mark, or Empty while the game is running
// or ended in a draw.
func (b *Board) Winner() Mark {
	return b.winner
}

// WinAxes returns the axes that completed the win. Multiple axes can be
// reported when one placement finishes several lines at once.
func (b *Board) WinAxes() []Axis {
	if len(b.winAxes) == 0 {
		return nil
	}
	axes := make([]Axis, len(b.winAxes))
	copy(axes, b.winAxes)
	return axes
}

// Snapshot returns a copy of the grid in row-major order for rendering.
// Mutating the returned slices does not affect the board.
func (b *Board) Snapshot() [][]Mark {
	grid := make([][]Mark, b.size)
	for r := range grid {
		grid[r] = make([]Mark, b.size)
		copy(grid[r], b.cells[r*b.size:(r+1)*b.size])
	}
	return grid
}

// Place sets mark at cell and reports whether the placement won the
// game, together with every axis that completed. Preconditions are
// checked in order: finished game, out-of-turn mark, out-of-bounds
// coordinate, occupied cell. On error nothing is mutated and the same
// player may retry.
func (b *Board) Place(mark Mark, cell Cell) (bool, []Axis, error) {
	if b.IsFinished() {
		return false, nil, ErrGameFinished
	}
	if mark == Empty || mark == b.lastMark {
		return false, nil, fmt.Errorf("%s %w", mark, ErrOutOfTurn)
	}
	if !b.inBounds(cell) {
		return false, nil, fmt.Errorf("%w: %s is not on a %dx%d board", ErrOutOfBounds, cell, b.size, b.size)
	}
	if b.cells[cell.Row*b.size+cell.Col] != Empty {
		return false, nil, fmt.Errorf("%w: %s", ErrCellOccupied, cell)
	}

	b.cells[cell.Row*b.size+cell.Col] = mark
	b.lastMark = mark
	b.moves++

	// A line cannot be complete before the winner has placed n marks,
	// which takes 2n-1 moves with alternation.
	if b.moves < 2*b.size-1 {
		return false, nil, nil
	}

	axes := b.winningAxes(mark, cell)
	if len(axes) > 0 {
		b.finished = true
		b.winner = mark
		b.winAxes = axes
	}
	return len(axes) > 0, axes, nil
}

func (b *Board) inBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < b.size && c.Col >= 0 && c.Col < b.size
}

// winningAxes checks the four axes through the cell just played. Only
// lines containing that cell can have been completed by it, so each
// check scans a single line of n cells.
func (b *Board) winningAxes(mark Mark, cell Cell) []Axis {
	var axes []Axis

	row := true
	for col := 0; col < b.size; col++ {
		if b.cells[cell.Row*b.size+col] != mark {
			row = false
			break
		}
	}
	if row {
		axes = append(axes, Horizontal)
	}

	col := true
	for r := 0; r < b.size; r++ {
		if b.cells[r*b.size+cell.Col] != mark {
			col = false
			break
		}
	}
	if col {
		axes = append(axes, Vertical)
	}

	if cell.Row == cell.Col {
		diag := true
		for i := 0; i < b.size; i++ {
			if b.cells[i*b.size+i] != mark {
				diag = false
				break
			}
		}
		if diag {
			axes = append(axes, DiagonalDescending)
		}
	}

	if cell.Row+cell.Col == b.size-1 {
		diag := true
		for i := 0; i < b.size; i++ {
			if b.cells[(b.size-1-i)*b.size+i] != mark {
				diag = false
				break
			}
		}
		if diag {
			axes = append(axes, DiagonalAscending)
		}
	}

	return axes
}
