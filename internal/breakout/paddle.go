package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Paddle is the player paddle. Pos is the top-left corner.
// The paddle is confined to the playfield's horizontal span by its move
// methods; width changes come from powerup effects.
type Paddle struct {
	Pos   core.Vec2
	W, H  float64
	Speed float64 // Horizontal speed in pixels per second
}

// NewPaddle creates a paddle with the given size and speed.
func NewPaddle(w, h, speed float64) Paddle {
	return Paddle{W: w, H: h, Speed: speed}
}

// Bounds returns the paddle's axis-aligned bounding box.
func (p *Paddle) Bounds() core.RectF {
	return core.RectF{X: p.Pos.X, Y: p.Pos.Y, W: p.W, H: p.H}
}

// CenterX returns the x-coordinate of the paddle's center.
func (p *Paddle) CenterX() float64 {
	return p.Pos.X + p.W*0.5
}

// MoveLeft moves the paddle left for deltaTime seconds, stopping at minX.
func (p *Paddle) MoveLeft(deltaTime, minX float64) {
	x := p.Pos.X - p.Speed*deltaTime
	if x < minX {
		x = minX
	}
	p.Pos.X = x
}

// MoveRight moves the paddle right for deltaTime seconds, keeping the
// right edge at or before maxX.
func (p *Paddle) MoveRight(deltaTime, maxX float64) {
	x := p.Pos.X + p.Speed*deltaTime
	if limit := maxX - p.W; x > limit {
		x = limit
	}
	p.Pos.X = x
}

// SetWidthKeepCenter resizes the paddle around its current center, then
// clamps the result into [minX, maxX].
func (p *Paddle) SetWidthKeepCenter(width, minX, maxX float64) {
	center := p.CenterX()
	p.W = width
	p.Pos.X = core.ClampF(center-width*0.5, minX, maxX-width)
}
