// Package breakout implements the deterministic simulation core of a
// brick-breaker game: continuous collision detection, collision response
// and the game-rule state machine on top. It holds no terminal or storage
// dependencies; the platform layer drives it one fixed tick at a time.
package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// SweptResult describes the outcome of a swept-AABB query.
type SweptResult struct {
	Hit    bool
	Time   float64   // Time of impact as a fraction of deltaTime, in [0, 1]
	Normal core.Vec2 // Unit surface normal at the contact point
}

// Intersects reports whether two boxes strictly overlap.
// Boxes that merely touch along an edge do not intersect.
func Intersects(a, b core.RectF) bool {
	return a.Left() < b.Right() && a.Right() > b.Left() &&
		a.Top() < b.Bottom() && a.Bottom() > b.Top()
}

// SweptAABB computes the earliest time at which a box moving at constant
// velocity first touches a static box within deltaTime. It expands the
// static box by the moving box's extents and intersects the moving box's
// origin ray against the expanded box, axis by axis.
func SweptAABB(moving core.RectF, velocity core.Vec2, static core.RectF, deltaTime float64) SweptResult {
	result := SweptResult{Time: 1.0}
	if deltaTime <= 0 {
		return result
	}

	expanded := core.RectF{
		X: static.X - moving.W,
		Y: static.Y - moving.H,
		W: static.W + moving.W,
		H: static.H + moving.H,
	}

	// A zero-velocity axis can never produce an entry; no collision is
	// possible unless the origin already lies within the expanded span.
	if velocity.X == 0 {
		if moving.X < expanded.Left() || moving.X > expanded.Right() {
			return result
		}
	}
	if velocity.Y == 0 {
		if moving.Y < expanded.Top() || moving.Y > expanded.Bottom() {
			return result
		}
	}

	var invEntry, invExit core.Vec2

	if velocity.X > 0 {
		invEntry.X = expanded.Left() - moving.X
		invExit.X = expanded.Right() - moving.X
	} else {
		invEntry.X = expanded.Right() - moving.X
		invExit.X = expanded.Left() - moving.X
	}

	if velocity.Y > 0 {
		invEntry.Y = expanded.Top() - moving.Y
		invExit.Y = expanded.Bottom() - moving.Y
	} else {
		invEntry.Y = expanded.Bottom() - moving.Y
		invExit.Y = expanded.Top() - moving.Y
	}

	entryX := math.Inf(-1)
	exitX := math.Inf(1)
	if velocity.X != 0 {
		entryX = invEntry.X / (velocity.X * deltaTime)
		exitX = invExit.X / (velocity.X * deltaTime)
	}

	entryY := math.Inf(-1)
	exitY := math.Inf(1)
	if velocity.Y != 0 {
		entryY = invEntry.Y / (velocity.Y * deltaTime)
		exitY = invExit.Y / (velocity.Y * deltaTime)
	}

	entry := math.Max(entryX, entryY)
	exit := math.Min(exitX, exitY)

	if entry > exit || entry < 0 || entry > 1 {
		return result
	}

	result.Hit = true
	result.Time = entry

	// The axis with the later entry is the one we actually crossed; the
	// normal opposes the velocity on that axis.
	if entryX > entryY {
		if velocity.X < 0 {
			result.Normal = core.Vec2{X: 1}
		} else {
			result.Normal = core.Vec2{X: -1}
		}
	} else {
		if velocity.Y < 0 {
			result.Normal = core.Vec2{Y: 1}
		} else {
			result.Normal = core.Vec2{Y: -1}
		}
	}

	return result
}

// ClampVec limits a vector to maxLength, preserving direction.
// Vectors within the limit (and the zero vector) pass through unchanged.
func ClampVec(v core.Vec2, maxLength float64) core.Vec2 {
	l := v.Length()
	if l <= maxLength || l == 0 {
		return v
	}
	return v.Normalize().Scale(maxLength)
}
