package match

import (
	"errors"
	"testing"

	"github.com/rkoschmitzky/Terminal-Tic-Tac-Toe/internal/board"
)

func TestParseCell(t *testing.T) {
	tests := []struct {
		input   string
		want    board.Cell
		wantErr bool
	}{
		{"1 2", board.Cell{Row: 1, Col: 2}, false},
		{"1,2", board.Cell{Row: 1, Col: 2}, false},
		{"1, 2", board.Cell{Row: 1, Col: 2}, false},
		{"(0, 0)", board.Cell{Row: 0, Col: 0}, false},
		{"  3 ;; 4  ", board.Cell{Row: 3, Col: 4}, false},
		{"10 11", board.Cell{Row: 10, Col: 11}, false},
		{"", board.Cell{}, true},
		{"1", board.Cell{}, true},
		{"1 2 3", board.Cell{}, true},
		{"one two", board.Cell{}, true},
	}
	for _, tt := range tests {
		got, err := ParseCell(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrBadCoordinate) {
				t.Errorf("ParseCell(%q) error = %v, want ErrBadCoordinate", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCell(%q) failed: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCell(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		input    string
		fallback int
		want     int
		wantErr  bool
	}{
		{"", 3, 3, false},
		{"3", 3, 3, false},
		{"5", 3, 5, false},
		{"2", 3, 0, true},
		{"0", 3, 0, true},
		{"-4", 3, 0, true},
		{"three", 3, 0, true},
		{"3.5", 3, 0, true},
	}
	for _, tt := range tests {
		got, err := ParseSize(tt.input, tt.fallback)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseSize(%q) succeeded, want error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSize(%q) failed: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSize(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
