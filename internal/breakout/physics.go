package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Paddle reflection tuning. The exit angle runs from 150 degrees at the
// paddle's left edge through 90 at the center down to 30 at the right edge.
const (
	reflectCenterAngle = math.Pi / 2
	reflectSpread      = math.Pi / 3
	reflectMinAngle    = math.Pi / 6
	reflectMaxAngle    = 5 * math.Pi / 6
)

// timeEpsilon is the threshold under which two swept collision times are
// considered simultaneous and the tie is broken by brick proximity.
const timeEpsilon = 0.0001

// PaddleReflection computes the outgoing velocity for a ball striking the
// paddle at hitRatio, where -1 is the left edge, 0 the center and +1 the
// right edge. Speed is preserved; only the direction changes. The ball
// always exits upward.
func PaddleReflection(incoming core.Vec2, hitRatio float64) core.Vec2 {
	// Negative hitRatio (left side) yields exit angles above 90 degrees.
	exitAngle := reflectCenterAngle - reflectSpread*hitRatio
	exitAngle = core.ClampF(exitAngle, reflectMinAngle, reflectMaxAngle)

	speed := incoming.Length()
	return core.Vec2{
		X: speed * math.Cos(exitAngle),
		Y: -speed * math.Sin(exitAngle),
	}
}

// ResolveWallCollision bounces the ball off the left, right and top edges
// of bounds, repositioning it flush against the wall it crossed. The bottom
// edge is left open; falling out is a life-loss condition handled upstream.
func ResolveWallCollision(ball *Ball, bounds core.RectF) {
	b := ball.Bounds()
	vel := ball.Vel

	if b.Left() < bounds.Left() {
		ball.Pos.X = bounds.Left() + ball.Radius
		vel.X = -vel.X
	} else if b.Right() > bounds.Right() {
		ball.Pos.X = bounds.Right() - ball.Radius
		vel.X = -vel.X
	}

	if b.Top() < bounds.Top() {
		ball.Pos.Y = bounds.Top() + ball.Radius
		vel.Y = -vel.Y

		// Break perfectly vertical bounces with a small horizontal component
		// so the ball cannot ping-pong between floor and ceiling forever.
		if math.Abs(vel.X) < 0.1 {
			speed := vel.Length()
			const minAngle = 0.1
			sign := 1.0
			if vel.X < 0 {
				sign = -1.0
			}
			vel.X = speed * minAngle * sign
			vel.Y = -math.Sqrt(speed*speed - vel.X*vel.X)
		}
	}

	ball.Vel = vel
}

// ResolvePaddleCollision bounces a descending ball off the paddle and
// reports whether a hit occurred. The ball is repositioned to rest on the
// paddle's top edge so it cannot tunnel through on the next tick.
func ResolvePaddleCollision(ball *Ball, paddle *Paddle) bool {
	if ball.Vel.Y <= 0 {
		return false
	}
	if !Intersects(ball.Bounds(), paddle.Bounds()) {
		return false
	}

	hitRatio := (ball.Pos.X - paddle.CenterX()) / (paddle.W / 2)
	hitRatio = core.ClampF(hitRatio, -1, 1)

	ball.Vel = PaddleReflection(ball.Vel, hitRatio)
	ball.Pos.Y = paddle.Pos.Y - ball.Radius
	return true
}

// ResolveBrickCollisions advances the ball through deltaTime, resolving up
// to three swept brick impacts along the way, and returns the number of
// bricks destroyed. When collision times tie within timeEpsilon, the brick
// whose center is nearest the ball wins. In big-ball mode each destruction
// also takes out breakable bricks within BigBallDestroyFactor radii of the
// impact point. Any leftover time budget is spent as straight-line motion,
// so this call owns the ball's integration for the tick.
func ResolveBrickCollisions(ball *Ball, bricks []Brick, deltaTime float64, bigBall bool) int {
	destroyed := 0
	remaining := 1.0
	velocity := ball.Vel

	for iteration := 0; iteration < 3 && remaining > 0; iteration++ {
		earliest := 1.0
		hitDistance := math.MaxFloat64
		hitIndex := -1
		var hitNormal core.Vec2

		for i := range bricks {
			if bricks[i].Destroyed {
				continue
			}
			box := bricks[i].Bounds
			result := SweptAABB(ball.Bounds(), velocity, box, deltaTime*remaining)
			if !result.Hit {
				continue
			}

			distance := box.Center().Sub(ball.Pos).Length()
			if result.Time < earliest-timeEpsilon {
				earliest = result.Time
				hitDistance = distance
				hitIndex = i
				hitNormal = result.Normal
			} else if math.Abs(result.Time-earliest) <= timeEpsilon && distance < hitDistance {
				earliest = result.Time
				hitDistance = distance
				hitIndex = i
				hitNormal = result.Normal
			}
		}

		if hitIndex < 0 {
			break
		}

		travelTime := earliest * deltaTime * remaining
		ball.Pos = ball.Pos.Add(velocity.Scale(travelTime))
		velocity = velocity.Reflect(hitNormal)
		// Nudge out along the normal so the ball does not stick where a
		// brick was just removed.
		ball.Pos = ball.Pos.Add(hitNormal.Scale(ball.Radius * 0.5))
		ball.Vel = velocity

		if bricks[hitIndex].ApplyHit() {
			destroyed++

			if bigBall {
				destructionRadius := ball.Radius * BigBallDestroyFactor
				for i := range bricks {
					if bricks[i].Destroyed {
						continue
					}
					distance := bricks[i].Bounds.Center().Sub(ball.Pos).Length()
					if distance <= destructionRadius && bricks[i].ApplyHit() {
						destroyed++
					}
				}
			}
		}

		remaining *= 1 - earliest
	}

	if remaining > 0 {
		ball.Pos = ball.Pos.Add(velocity.Scale(deltaTime * remaining))
	}

	return destroyed
}
