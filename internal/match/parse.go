package match

import (
	"errors"
	"regexp"
	"strconv"

	"github.com/rkoschmitzky/Terminal-Tic-Tac-Toe/internal/board"
)

var (
	// ErrBadCoordinate means the input did not contain exactly two
	// numbers.
	ErrBadCoordinate = errors.New("expected two numbers, e.g. \"1, 2\"")

	digits = regexp.MustCompile(`\d+`)
)

// ParseCell extracts a board coordinate from free-form player input.
// Any two numbers in the string are taken as row and column, so
// "1 2", "1,2" and "(1, 2)" all work. Bounds are not checked here;
// the engine rejects out-of-range cells itself.
func ParseCell(input string) (board.Cell, error) {
	nums := digits.FindAllString(input, -1)
	if len(nums) != 2 {
		return board.Cell{}, ErrBadCoordinate
	}
	row, err := strconv.Atoi(nums[0])
	if err != nil {
		return board.Cell{}, ErrBadCoordinate
	}
	col, err := strconv.Atoi(nums[1])
	if err != nil {
		return board.Cell{}, ErrBadCoordinate
	}
	return board.Cell{Row: row, Col: col}, nil
}

// ParseSize parses the board size prompt input. Empty input falls back
// to the given default; anything non-integer or below the minimum is
// rejected by the engine's dimension check.
func ParseSize(input string, fallback int) (int, error) {
	if input == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, errors.New("board size must be a whole number")
	}
	if n < board.MinSize {
		return 0, board.ErrInvalidDimension
	}
	return n, nil
}
