// Package config provides YAML-based game configuration loading, difficulty
// presets and level-file parsing for the breakout platform.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// DefaultConfigName is the protected built-in configuration name.
const DefaultConfigName = "default"

// Ball speed is configured on a 1-10 slider scale and mapped to px/s.
const (
	MinBallSpeed = 1
	MaxBallSpeed = 10
)

// GameConfig contains all tunable game parameters.
type GameConfig struct {
	Physics   PhysicsConfig   `yaml:"physics"`
	Gameplay  GameplayConfig  `yaml:"gameplay"`
	Playfield PlayfieldConfig `yaml:"playfield"`

	// Difficulty optionally names a preset applied on top of the file's
	// values. The CLI flag takes precedence over it.
	Difficulty string `yaml:"difficulty"`

	// Name is the config base name, set by the loader. Not serialized.
	Name string `yaml:"-"`
}

// PhysicsConfig defines the physics parameters.
type PhysicsConfig struct {
	BallSpeed   int     `yaml:"ball_speed"` // 1-10 slider scale
	PaddleSpeed float64 `yaml:"paddle_speed"`
}

// GameplayConfig defines the rule parameters.
type GameplayConfig struct {
	Lives         int    `yaml:"lives"`
	StartingLevel int    `yaml:"starting_level"`
	Seed          int64  `yaml:"seed"` // -1 = time-based
	PlayerName    string `yaml:"player_name"`
}

// PlayfieldConfig defines the simulation playfield size in pixels.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// MapBallSpeed converts the 1-10 slider scale to pixels per second.
func MapBallSpeed(slider int) float64 {
	return 160.0 + 20.0*float64(core.Clamp(slider, MinBallSpeed, MaxBallSpeed))
}

// Validate returns human-readable errors for out-of-range values, empty
// when the config is usable.
func (c *GameConfig) Validate() []string {
	var errs []string
	if c.Physics.BallSpeed < MinBallSpeed || c.Physics.BallSpeed > MaxBallSpeed {
		errs = append(errs, fmt.Sprintf("ball speed must be between %d and %d", MinBallSpeed, MaxBallSpeed))
	}
	if c.Physics.PaddleSpeed <= 0 {
		errs = append(errs, "paddle speed must be positive")
	}
	if c.Gameplay.Lives < 1 {
		errs = append(errs, "lives must be >= 1")
	}
	if c.Gameplay.StartingLevel < 1 {
		errs = append(errs, "starting level must be >= 1")
	}
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		errs = append(errs, "playfield dimensions must be positive")
	}
	if c.Difficulty != "" {
		if _, err := ParsePreset(c.Difficulty); err != nil {
			errs = append(errs, err.Error())
		}
	}
	return errs
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a difficulty name from the CLI.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (easy, normal, hard)", name)
	}
}

// ApplyPreset adjusts the gameplay parameters for a difficulty preset.
// Normal leaves the config untouched.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Physics.BallSpeed = 4
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Physics.BallSpeed = 7
	}
}
