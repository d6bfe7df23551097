// tttt is Terminal-Tic-Tac-Toe: a two-player tic-tac-toe for the
// terminal on boards of any size from 3x3 up.
//
// Usage:
//
//	tttt play               - Play a game in the current terminal
//	tttt results            - Show recorded match results
//	tttt serve              - Serve the game over SSH
//
// Global flags:
//
//	--config <path>  - Path to a config YAML
//	--db <path>      - Results database path (default: ~/.tttt/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tttt",
	Short: "Terminal Tic-Tac-Toe - n-in-a-row on an nxn board",
	Long: `Terminal-Tic-Tac-Toe (tttt) is a two-player tic-tac-toe played in
the terminal. The board isn't limited to 3x3: pick any size n and win
with n marks in a row, column or full diagonal.

Available commands:
  play     - Play a game in the current terminal
  results  - Show recorded match results and the overall tally
  serve    - Serve the game over SSH for remote terminals

Examples:
  tttt play
  tttt results --limit 20
  tttt serve --ssh :23235`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Results database path (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(serveCmd)
}
