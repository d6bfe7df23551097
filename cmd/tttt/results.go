package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rkoschmitzky/Terminal-Tic-Tac-Toe/internal/board"
	"github.com/rkoschmitzky/Terminal-Tic-Tac-Toe/internal/config"
	"github.com/rkoschmitzky/Terminal-Tic-Tac-Toe/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show recorded match results",
	Long: `Display recent match results and the overall win/draw tally.

Examples:
  tttt results
  tttt results --limit 25
  tttt results --clear`,
	Run: runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of recent matches to list")
	resultsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded results")
}

func runResults(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	dbPath := cfg.Storage.Path
	if flagDBPath != "" {
		dbPath = flagDBPath
	}
	if dbPath == "" {
		fmt.Fprintln(os.Stderr, "Error: result storage is disabled (no database path configured)")
		os.Exit(1)
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All results cleared.")
		return
	}

	entries, err := store.RecentResults(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Match Results")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tttt play' to record the first one!")
		return
	}

	fmt.Printf("  %-7s  %-6s  %-5s  %-8s  %-22s  %s\n", "Winner", "Board", "Moves", "Duration", "Won", "Date")
	fmt.Printf("  %-7s  %-6s  %-5s  %-8s  %-22s  %s\n", "------", "-----", "-----", "--------", "---", "----")

	for _, e := range entries {
		winner := "draw"
		switch e.Winner {
		case board.PlayerA:
			winner = cfg.Display.MarkA
		case board.PlayerB:
			winner = cfg.Display.MarkB
		}
		axes := e.Axes
		if axes == "" {
			axes = "-"
		}
		fmt.Printf("  %-7s  %dx%-4d  %-5d  %-8s  %-22s  %s\n",
			winner, e.Size, e.Size, e.Moves,
			fmt.Sprintf("%ds", e.DurationSecs), axes,
			e.CreatedAt.Format("2006-01-02 15:04"))
	}

	tally, err := store.Tally(0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing tally: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("Tally: %s %d — %d %s, %d drawn (%d matches)\n",
		cfg.Display.MarkA, tally.WinsA, tally.WinsB, cfg.Display.MarkB, tally.Draws, tally.Games())
}
