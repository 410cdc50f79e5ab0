package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Ball is the moving ball. Pos is the center point.
// Invariant: Radius > 0.
type Ball struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64
}

// NewBall creates a ball with the given radius.
func NewBall(radius float64) Ball {
	return Ball{Radius: radius}
}

// Bounds returns the ball's axis-aligned bounding box.
func (b *Ball) Bounds() core.RectF {
	return core.RectF{
		X: b.Pos.X - b.Radius,
		Y: b.Pos.Y - b.Radius,
		W: b.Radius * 2,
		H: b.Radius * 2,
	}
}

// Speed returns the magnitude of the ball's velocity.
func (b *Ball) Speed() float64 {
	return b.Vel.Length()
}

// SetSpeed rescales the velocity to the given speed, preserving direction.
func (b *Ball) SetSpeed(speed float64) {
	b.Vel = b.Vel.Normalize().Scale(speed)
}

// Advance moves the ball along its velocity for deltaTime seconds.
func (b *Ball) Advance(deltaTime float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(deltaTime))
}
