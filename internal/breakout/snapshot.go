package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// SnapshotVersion is the current save format version.
//
// Version history:
//
//	1 — original format; pickup kinds were not recorded, so every saved
//	    pickup restores as an expand-paddle drop.
//	2 — records pickup kinds, the big-ball timer, the RNG state and the
//	    base ball/paddle parameters.
const SnapshotVersion = 2

// SavedVec is a serialized 2D vector.
type SavedVec struct {
	X float64 `msgpack:"x" yaml:"x"`
	Y float64 `msgpack:"y" yaml:"y"`
}

// SavedRect is a serialized rectangle.
type SavedRect struct {
	X float64 `msgpack:"x" yaml:"x"`
	Y float64 `msgpack:"y" yaml:"y"`
	W float64 `msgpack:"w" yaml:"w"`
	H float64 `msgpack:"h" yaml:"h"`
}

// SavedBrick is the persisted state of one brick.
type SavedBrick struct {
	Kind      int       `msgpack:"kind" yaml:"kind"`
	Bounds    SavedRect `msgpack:"bounds" yaml:"bounds"`
	Hits      int       `msgpack:"hits" yaml:"hits"`
	Destroyed bool      `msgpack:"destroyed" yaml:"destroyed"`
	Powerup   int       `msgpack:"powerup" yaml:"powerup"`
}

// SavedPowerup is the persisted state of one in-flight pickup.
type SavedPowerup struct {
	Kind int      `msgpack:"kind" yaml:"kind"`
	Pos  SavedVec `msgpack:"pos" yaml:"pos"`
	Vel  SavedVec `msgpack:"vel" yaml:"vel"`
	Size float64  `msgpack:"size" yaml:"size"`
}

// Snapshot is a complete saved game. Restoring a snapshot into an engine
// with the same level set reproduces the run bit for bit.
type Snapshot struct {
	Version    int    `msgpack:"version" yaml:"version"`
	Name       string `msgpack:"name" yaml:"name"`
	ConfigName string `msgpack:"config_name" yaml:"config_name"`

	Level           int `msgpack:"level" yaml:"level"`
	Score           int `msgpack:"score" yaml:"score"`
	Lives           int `msgpack:"lives" yaml:"lives"`
	ComboStreak     int `msgpack:"combo_streak" yaml:"combo_streak"`
	ScoreMultiplier int `msgpack:"score_multiplier" yaml:"score_multiplier"`

	ExpandTimer          float64 `msgpack:"expand_timer" yaml:"expand_timer"`
	SpeedBoostTimer      float64 `msgpack:"speed_boost_timer" yaml:"speed_boost_timer"`
	PointMultiplier      int     `msgpack:"point_multiplier" yaml:"point_multiplier"`
	PointMultiplierTimer float64 `msgpack:"point_multiplier_timer" yaml:"point_multiplier_timer"`
	BigBallTimer         float64 `msgpack:"big_ball_timer" yaml:"big_ball_timer"`

	Bounds       SavedRect `msgpack:"bounds" yaml:"bounds"`
	BallPos      SavedVec  `msgpack:"ball_pos" yaml:"ball_pos"`
	BallVel      SavedVec  `msgpack:"ball_vel" yaml:"ball_vel"`
	BallRadius   float64   `msgpack:"ball_radius" yaml:"ball_radius"`
	PaddlePos    SavedVec  `msgpack:"paddle_pos" yaml:"paddle_pos"`
	PaddleW      float64   `msgpack:"paddle_w" yaml:"paddle_w"`
	PaddleH      float64   `msgpack:"paddle_h" yaml:"paddle_h"`
	PaddleSpeed  float64   `msgpack:"paddle_speed" yaml:"paddle_speed"`
	BallAttached bool      `msgpack:"ball_attached" yaml:"ball_attached"`

	BaseBallSpeed   float64 `msgpack:"base_ball_speed" yaml:"base_ball_speed"`
	BaseBallRadius  float64 `msgpack:"base_ball_radius" yaml:"base_ball_radius"`
	BasePaddleWidth float64 `msgpack:"base_paddle_width" yaml:"base_paddle_width"`

	RNGState uint64 `msgpack:"rng_state" yaml:"rng_state"`

	Bricks   []SavedBrick   `msgpack:"bricks" yaml:"bricks"`
	Powerups []SavedPowerup `msgpack:"powerups" yaml:"powerups"`
}

func savedVec(v core.Vec2) SavedVec   { return SavedVec{X: v.X, Y: v.Y} }
func savedRect(r core.RectF) SavedRect { return SavedRect{X: r.X, Y: r.Y, W: r.W, H: r.H} }

func (v SavedVec) vec() core.Vec2   { return core.Vec2{X: v.X, Y: v.Y} }
func (r SavedRect) rect() core.RectF { return core.RectF{X: r.X, Y: r.Y, W: r.W, H: r.H} }

// Snapshot captures the full engine state under the given save name.
func (e *Engine) Snapshot(name, configName string) Snapshot {
	snap := Snapshot{
		Version:    SnapshotVersion,
		Name:       name,
		ConfigName: configName,

		Level:           e.currentLevel,
		Score:           e.score,
		Lives:           e.lives,
		ComboStreak:     e.comboStreak,
		ScoreMultiplier: e.scoreMultiplier,

		ExpandTimer:          e.expandTimer,
		SpeedBoostTimer:      e.speedBoostTimer,
		PointMultiplier:      e.pointMultiplier,
		PointMultiplierTimer: e.pointMultiplierTimer,
		BigBallTimer:         e.bigBallTimer,

		Bounds:       savedRect(e.bounds),
		BallPos:      savedVec(e.ball.Pos),
		BallVel:      savedVec(e.ball.Vel),
		BallRadius:   e.ball.Radius,
		PaddlePos:    savedVec(e.paddle.Pos),
		PaddleW:      e.paddle.W,
		PaddleH:      e.paddle.H,
		PaddleSpeed:  e.paddle.Speed,
		BallAttached: e.ballAttached,

		BaseBallSpeed:   e.baseBallSpeed,
		BaseBallRadius:  e.baseBallRadius,
		BasePaddleWidth: e.levelBasePaddleWidth,

		RNGState: e.rng.State(),
	}

	snap.Bricks = make([]SavedBrick, 0, len(e.bricks))
	for i := range e.bricks {
		b := &e.bricks[i]
		snap.Bricks = append(snap.Bricks, SavedBrick{
			Kind:      int(b.Kind),
			Bounds:    savedRect(b.Bounds),
			Hits:      b.Hits,
			Destroyed: b.Destroyed,
			Powerup:   int(b.Powerup),
		})
	}

	snap.Powerups = make([]SavedPowerup, 0, len(e.powerups))
	for i := range e.powerups {
		p := &e.powerups[i]
		snap.Powerups = append(snap.Powerups, SavedPowerup{
			Kind: int(p.Kind),
			Pos:  savedVec(p.Pos),
			Vel:  savedVec(p.Vel),
			Size: p.Size,
		})
	}

	return snap
}

// Restore loads a snapshot into the engine. The level-complete latch is
// cleared; the caller keeps playing from the saved moment. Version 1
// snapshots did not record pickup kinds, so their pickups all come back as
// expand-paddle drops.
func (e *Engine) Restore(snap Snapshot) {
	e.bounds = snap.Bounds.rect()
	e.score = snap.Score
	e.lives = snap.Lives
	e.currentLevel = snap.Level
	e.levelComplete = false
	e.comboStreak = snap.ComboStreak
	e.scoreMultiplier = snap.ScoreMultiplier

	e.expandTimer = snap.ExpandTimer
	e.speedBoostTimer = snap.SpeedBoostTimer
	e.pointMultiplier = snap.PointMultiplier
	e.pointMultiplierTimer = snap.PointMultiplierTimer
	e.bigBallTimer = snap.BigBallTimer

	e.ball.Pos = snap.BallPos.vec()
	e.ball.Vel = snap.BallVel.vec()
	e.ball.Radius = snap.BallRadius
	e.paddle.Pos = snap.PaddlePos.vec()
	e.paddle.W = snap.PaddleW
	e.paddle.H = snap.PaddleH
	e.paddle.Speed = snap.PaddleSpeed
	e.ballAttached = snap.BallAttached

	if snap.Version >= 2 {
		e.baseBallSpeed = snap.BaseBallSpeed
		e.ballSpeed = snap.BaseBallSpeed
		e.baseBallRadius = snap.BaseBallRadius
		e.levelBasePaddleWidth = snap.BasePaddleWidth
		e.rng.SetState(snap.RNGState)
	} else {
		e.levelBasePaddleWidth = e.paddle.W
	}

	e.bricks = make([]Brick, 0, len(snap.Bricks))
	for _, sb := range snap.Bricks {
		e.bricks = append(e.bricks, Brick{
			Kind:      BrickKind(sb.Kind),
			Bounds:    sb.Bounds.rect(),
			Hits:      sb.Hits,
			Destroyed: sb.Destroyed,
			Powerup:   PowerupKind(sb.Powerup),
		})
	}

	e.powerups = make([]Powerup, 0, len(snap.Powerups))
	for _, sp := range snap.Powerups {
		kind := PowerupKind(sp.Kind)
		if snap.Version < 2 {
			kind = PowerupExpandPaddle
		}
		e.powerups = append(e.powerups, Powerup{
			Kind: kind,
			Pos:  sp.Pos.vec(),
			Vel:  sp.Vel.vec(),
			Size: sp.Size,
		})
	}
}
