package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rkoschmitzky/Terminal-Tic-Tac-Toe/internal/config"
	"github.com/rkoschmitzky/Terminal-Tic-Tac-Toe/internal/storage"
	"github.com/rkoschmitzky/Terminal-Tic-Tac-Toe/internal/tui"
)

var flagSize int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game in the current terminal",
	Long: `Start a two-player game. Both players share the keyboard and take
turns.

Controls:
  Arrows/hjkl  - Move the cursor
  Enter/Space  - Place your mark at the cursor
  /            - Type a coordinate instead (e.g. "1, 2")
  R            - Rematch (after the game ends)
  Q/Ctrl+C     - Quit

Examples:
  tttt play
  tttt play --size 5
  tttt play --config ./my-config.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board size offered on the setup screen (overrides config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagSize > 0 {
		cfg.Board.Size = flagSize
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}

	// A board plus hints needs a reasonable terminal; warn early
	// instead of rendering garbage.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		needW := 4*cfg.Board.Size + 10
		needH := 2*cfg.Board.Size + 8
		if w < needW || h < needH {
			fmt.Fprintf(os.Stderr, "Warning: terminal %dx%d is small for a %dx%d board\n",
				w, h, cfg.Board.Size, cfg.Board.Size)
		}
	}

	var store *storage.Store
	if cfg.Storage.Path != "" {
		store, err = storage.Open(cfg.Storage.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
			// Continue without storage - the game still works
			store = nil
		}
	}

	runErr := tui.Run(cfg, store)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
