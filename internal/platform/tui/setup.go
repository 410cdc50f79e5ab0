package tui

import (
	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// BuildEngine constructs a simulation engine wired from the game config.
// A non-negative seed overrides the config seed for reproducible runs.
func BuildEngine(cfg config.GameConfig, seed int64) *breakout.Engine {
	engine := breakout.NewEngine()

	engine.SetPlayfield(core.RectF{
		X: 0,
		Y: 0,
		W: cfg.Playfield.Width,
		H: cfg.Playfield.Height,
	})
	engine.SetBallSpeed(config.MapBallSpeed(cfg.Physics.BallSpeed))
	engine.SetPaddleSpeed(cfg.Physics.PaddleSpeed)
	engine.SetStartingLives(cfg.Gameplay.Lives)
	engine.SetStartingLevel(cfg.Gameplay.StartingLevel)

	if seed < 0 {
		seed = cfg.Gameplay.Seed
	}
	engine.SetRandomSeed(seed)

	engine.NewGame()
	return engine
}
