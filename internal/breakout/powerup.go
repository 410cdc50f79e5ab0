package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// PowerupKind identifies a powerup effect.
type PowerupKind int

const (
	PowerupNone PowerupKind = iota - 1
	PowerupExpandPaddle
	PowerupExtraLife
	PowerupSpeedBoost
	PowerupPointMultiplier
	PowerupMultiBall
)

// PowerupKindCount is the number of concrete powerup kinds.
const PowerupKindCount = 5

// Tuning constants for pickups and their effects.
const (
	PowerupSize      = 14.0  // Pickup square side
	PowerupFallSpeed = 120.0 // Pickup fall speed, px/s

	ExpandPaddleAmount   = 70.0 // Extra paddle width per pickup
	ExpandPaddleDuration = 12.0
	SpeedBoostFactor     = 1.5
	SpeedBoostDuration   = 10.0
	PointMultiplierStep  = 2
	PointMultiplierCap   = 10
	PointMultiplierTime  = 15.0
	BigBallDuration      = 15.0 // Flat, never stacked
	BigBallRadiusFactor  = 2.0
	BigBallDestroyFactor = 2.5 // Destroys bricks within this many radii

	EffectDurationCap = 60.0 // Stacking cap for timed effects

	ExtraLifeCap = 5
)

func (k PowerupKind) String() string {
	switch k {
	case PowerupExpandPaddle:
		return "expand-paddle"
	case PowerupExtraLife:
		return "extra-life"
	case PowerupSpeedBoost:
		return "speed-boost"
	case PowerupPointMultiplier:
		return "point-multiplier"
	case PowerupMultiBall:
		return "multi-ball"
	default:
		return "none"
	}
}

// Powerup is a pickup falling toward the paddle. Pos is the pickup center.
type Powerup struct {
	Kind PowerupKind
	Pos  core.Vec2
	Vel  core.Vec2
	Size float64
}

// NewPowerup creates a pickup centered at pos, falling straight down.
func NewPowerup(kind PowerupKind, pos core.Vec2) Powerup {
	return Powerup{
		Kind: kind,
		Pos:  pos,
		Vel:  core.Vec2{X: 0, Y: PowerupFallSpeed},
		Size: PowerupSize,
	}
}

// Bounds returns the pickup's square centered on Pos.
func (p *Powerup) Bounds() core.RectF {
	return core.RectF{X: p.Pos.X - p.Size/2, Y: p.Pos.Y - p.Size/2, W: p.Size, H: p.Size}
}

// Fall advances the pickup along its velocity.
func (p *Powerup) Fall(deltaTime float64) {
	p.Pos = p.Pos.Add(p.Vel.Scale(deltaTime))
}
