// breakout is a TUI brick-breaker that runs locally or over SSH.
//
// Usage:
//
//	breakout play            - Play in the current terminal
//	breakout serve           - Start SSH server for remote play
//	breakout scores          - Show the high score table
//	breakout endgames        - Manage saved games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.breakout/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - brick-breaking in your terminal",
	Long: `Breakout is a terminal brick-breaker with powerups, combo scoring
and savable games, playable locally or over SSH.

Available commands:
  play       - Play in the current terminal
  serve      - Start SSH server for remote play
  scores     - View the high score table
  endgames   - List, inspect, and delete saved games

Examples:
  breakout play
  breakout play --difficulty hard
  breakout play --endgame my_save
  breakout serve --ssh :2222
  breakout scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", -1, "RNG seed (negative = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.breakout/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(endgamesCmd)
}
