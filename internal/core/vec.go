package core

import "math"

// Vec2 is a 2D vector in playfield coordinates (pixels, y grows downward).
type Vec2 struct {
	X, Y float64
}

// Add returns the sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies the vector by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Length returns the magnitude of the vector.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to the zero vector.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Reflect mirrors the vector across the given surface normal.
// The normal does not need to be unit length.
func (v Vec2) Reflect(normal Vec2) Vec2 {
	n := normal.Normalize()
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// RectF is an axis-aligned box in playfield coordinates.
// X, Y is the top-left corner.
type RectF struct {
	X, Y, W, H float64
}

// Left returns the x-coordinate of the left edge.
func (r RectF) Left() float64 { return r.X }

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 { return r.X + r.W }

// Top returns the y-coordinate of the top edge.
func (r RectF) Top() float64 { return r.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 { return r.Y + r.H }

// Center returns the center point of the box.
func (r RectF) Center() Vec2 {
	return Vec2{X: r.X + r.W*0.5, Y: r.Y + r.H*0.5}
}
