package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagConfig     string
	flagLevels     string
	flagDifficulty string
	flagLevel      int
	flagEndgame    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play breakout",
	Long: `Start a game in the current terminal.

Controls:
  A/D, Left/Right - Move paddle
  Space           - Launch the ball
  P/Esc           - Pause
  F2              - Save game (while paused)
  R               - Restart (after game over)
  Q/Ctrl+C        - Quit

Difficulty presets:
  easy   - 5 lives, slower ball
  normal - Config defaults
  hard   - 2 lives, faster ball

Examples:
  breakout play
  breakout play --difficulty hard
  breakout play --level 3
  breakout play --config ./my-config.yaml --levels ./my-levels.yaml
  breakout play --endgame my_save`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagLevels, "levels", "", "Path to custom level layouts YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Starting level (overrides config)")
	playCmd.Flags().StringVar(&flagEndgame, "endgame", "", "Resume a saved game by name")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The CLI flag wins over the config file's difficulty.
	difficulty := flagDifficulty
	if difficulty == "" {
		difficulty = gameCfg.Difficulty
	}
	if difficulty != "" {
		preset, presetErr := config.ParsePreset(difficulty)
		if presetErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", presetErr)
			os.Exit(1)
		}
		config.ApplyPreset(&gameCfg, preset)
	}

	if flagLevel > 0 {
		gameCfg.Gameplay.StartingLevel = flagLevel
	}

	// Terminal size for the screen buffer
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	engine := tui.BuildEngine(gameCfg, runtime.Seed)

	if flagLevels != "" {
		levels, levelsErr := config.LoadLevels(flagLevels)
		if levelsErr != nil {
			fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", levelsErr)
			os.Exit(1)
		}
		engine.SetLevels(levels.Layouts())
		engine.NewGame()
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	if flagEndgame != "" {
		if store == nil {
			fmt.Fprintln(os.Stderr, "Error: cannot resume a saved game without a database")
			os.Exit(1)
		}
		snap, loadErr := store.LoadEndgame(flagEndgame)
		if loadErr != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error loading saved game: %v\n", loadErr)
			os.Exit(1)
		}
		engine.Restore(snap)
	}

	runErr := tui.Run(engine, store, gameCfg, runtime)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
