package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the hardcoded default configuration, used when
// even the embedded YAML fails to parse.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Physics: PhysicsConfig{
			BallSpeed:   5, // 260 px/s
			PaddleSpeed: 280,
		},
		Gameplay: GameplayConfig{
			Lives:         3,
			StartingLevel: 1,
			Seed:          -1,
		},
		Playfield: PlayfieldConfig{
			Width:  640,
			Height: 480,
		},
		Name: DefaultConfigName,
	}
}
