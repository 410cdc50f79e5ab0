package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var endgamesCmd = &cobra.Command{
	Use:   "endgames",
	Short: "Manage saved games",
	Long: `List, inspect, and delete saved games.

Saved games are created in-game with F2 while paused, and resumed
with 'breakout play --endgame <name>'.

Examples:
  breakout endgames list
  breakout endgames show my_save
  breakout endgames delete my_save`,
}

var endgamesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved games",
	Args:  cobra.NoArgs,
	Run:   runEndgamesList,
}

var endgamesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a saved game's details",
	Args:  cobra.ExactArgs(1),
	Run:   runEndgamesShow,
}

var endgamesDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved game",
	Args:  cobra.ExactArgs(1),
	Run:   runEndgamesDelete,
}

func init() {
	endgamesCmd.AddCommand(endgamesListCmd)
	endgamesCmd.AddCommand(endgamesShowCmd)
	endgamesCmd.AddCommand(endgamesDeleteCmd)
}

func openEndgameStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runEndgamesList(cmd *cobra.Command, args []string) {
	store := openEndgameStore()
	defer store.Close()

	infos, err := store.ListEndgames()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing saved games: %v\n", err)
		os.Exit(1)
	}

	if len(infos) == 0 {
		fmt.Println("No saved games.")
		fmt.Println()
		fmt.Println("Pause a game and press F2 to save it.")
		return
	}

	fmt.Printf("  %-24s  %-10s  %-5s  %-10s  %-5s  %s\n", "Name", "Config", "Level", "Score", "Lives", "Saved")
	fmt.Printf("  %-24s  %-10s  %-5s  %-10s  %-5s  %s\n", "----", "------", "-----", "-----", "-----", "-----")
	for _, info := range infos {
		dateStr := info.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-24s  %-10s  %-5d  %-10d  %-5d  %s\n",
			info.Name, info.ConfigName, info.Level, info.Score, info.Lives, dateStr)
	}
}

func runEndgamesShow(cmd *cobra.Command, args []string) {
	store := openEndgameStore()
	defer store.Close()

	snap, err := store.LoadEndgame(args[0])
	if err != nil {
		if errors.Is(err, storage.ErrEndgameNotFound) {
			fmt.Fprintf(os.Stderr, "No saved game named %q\n", args[0])
		} else {
			fmt.Fprintf(os.Stderr, "Error loading saved game: %v\n", err)
		}
		os.Exit(1)
	}

	bricksLeft := 0
	for _, b := range snap.Bricks {
		if !b.Destroyed {
			bricksLeft++
		}
	}

	fmt.Printf("Name:     %s\n", snap.Name)
	fmt.Printf("Config:   %s\n", snap.ConfigName)
	fmt.Printf("Version:  %d\n", snap.Version)
	fmt.Printf("Level:    %d\n", snap.Level)
	fmt.Printf("Score:    %d\n", snap.Score)
	fmt.Printf("Lives:    %d\n", snap.Lives)
	fmt.Printf("Bricks:   %d remaining\n", bricksLeft)
	fmt.Printf("Pickups:  %d falling\n", len(snap.Powerups))
	if snap.BallAttached {
		fmt.Println("Ball:     attached to paddle")
	} else {
		fmt.Printf("Ball:     in flight at (%.0f, %.0f)\n", snap.BallPos.X, snap.BallPos.Y)
	}

	fmt.Println()
	fmt.Printf("Resume with: breakout play --endgame %s\n", snap.Name)
}

func runEndgamesDelete(cmd *cobra.Command, args []string) {
	store := openEndgameStore()
	defer store.Close()

	if err := store.DeleteEndgame(args[0]); err != nil {
		if errors.Is(err, storage.ErrEndgameNotFound) {
			fmt.Fprintf(os.Stderr, "No saved game named %q\n", args[0])
		} else {
			fmt.Fprintf(os.Stderr, "Error deleting saved game: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("Deleted %q\n", args[0])
}
