// Package config provides YAML-based configuration for the game:
// board defaults, display symbols and the results database location.
package config

import (
	"fmt"

	"github.com/rkoschmitzky/Terminal-Tic-Tac-Toe/internal/board"
)

// Config is the full configuration tree.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Display DisplayConfig `yaml:"display"`
	Storage StorageConfig `yaml:"storage"`
}

// BoardConfig controls the game setup defaults.
type BoardConfig struct {
	// Size is the default board dimension offered on the setup
	// screen. Players can still pick another size per game.
	Size int `yaml:"size"`
}

// DisplayConfig controls how marks are presented. The engine itself is
// symbol-agnostic.
type DisplayConfig struct {
	MarkA     string `yaml:"mark_a"`
	MarkB     string `yaml:"mark_b"`
	ShowHints bool   `yaml:"show_hints"`
}

// StorageConfig controls result persistence.
type StorageConfig struct {
	// Path to the SQLite results database. Supports ~ expansion.
	Path string `yaml:"path"`
}

// Validate checks the configuration for values the game cannot run
// with.
func (c Config) Validate() error {
	if c.Board.Size < board.MinSize {
		return fmt.Errorf("config: board size %d is below the minimum of %d", c.Board.Size, board.MinSize)
	}
	if c.Display.MarkA == "" || c.Display.MarkB == "" {
		return fmt.Errorf("config: display marks must not be empty")
	}
	if c.Display.MarkA == c.Display.MarkB {
		return fmt.Errorf("config: both players use the mark %q", c.Display.MarkA)
	}
	return nil
}

// Symbol returns the display symbol for a mark, a space for Empty.
func (c Config) Symbol(m board.Mark) string {
	switch m {
	case board.PlayerA:
		return c.Display.MarkA
	case board.PlayerB:
		return c.Display.MarkB
	default:
		return " "
	}
}
