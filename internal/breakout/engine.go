package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Gameplay tuning constants.
const (
	DefaultBallSpeed    = 260.0
	DefaultBallRadius   = 8.0
	DefaultPaddleWidth  = 110.0
	DefaultPaddleHeight = 20.0
	DefaultPaddleSpeed  = 280.0

	PowerupSpawnChance = 0.5
	BrickPoints        = 100

	basePaddleWidth = 200.0
	shrinkPerLevel  = 20.0
	minPaddleWidth  = 100.0
	maxPaddleWidth  = 320.0

	paddleBottomMargin = 12.0
	ballRestGap        = 1.0

	comboStep          = 3 // Streak hits per multiplier step
	maxComboMultiplier = 5

	startingLives = 3
)

// Engine is the deterministic breakout simulation. It owns the ball, the
// paddle, the brick field and all in-flight pickups, and advances them with
// fixed update ticks. Rendering and input live elsewhere; the engine only
// exposes state and commands.
type Engine struct {
	levels *LevelSet
	rng    *core.RNG

	ball     Ball
	paddle   Paddle
	bricks   []Brick
	powerups []Powerup

	bounds        core.RectF
	score         int
	lives         int
	startLives    int
	currentLevel  int
	startingLevel int
	ballSpeed     float64
	baseBallSpeed float64
	ballAttached  bool
	levelComplete bool

	comboStreak     int
	scoreMultiplier int

	expandTimer          float64
	speedBoostTimer      float64
	pointMultiplier      int
	pointMultiplierTimer float64
	bigBallTimer         float64

	levelBasePaddleWidth float64
	baseBallRadius       float64
}

// NewEngine creates an engine with the built-in levels and starts a new
// game on level 1.
func NewEngine() *Engine {
	e := &Engine{
		levels:               NewLevelSet(DefaultLayouts()),
		rng:                  core.NewRNG(-1),
		ball:                 NewBall(DefaultBallRadius),
		paddle:               NewPaddle(DefaultPaddleWidth, DefaultPaddleHeight, DefaultPaddleSpeed),
		bounds:               core.RectF{X: 0, Y: 0, W: 640, H: 480},
		startLives:           startingLives,
		currentLevel:         1,
		startingLevel:        1,
		ballSpeed:            DefaultBallSpeed,
		baseBallSpeed:        DefaultBallSpeed,
		levelBasePaddleWidth: DefaultPaddleWidth,
		baseBallRadius:       DefaultBallRadius,
	}
	e.NewGame()
	return e
}

// SetPlayfield replaces the playfield bounds. Takes effect on the next
// level reset.
func (e *Engine) SetPlayfield(bounds core.RectF) { e.bounds = bounds }

// SetLevels replaces the level layouts.
func (e *Engine) SetLevels(layouts [][]string) { e.levels = NewLevelSet(layouts) }

// SetBallSpeed sets the base ball speed, preserving the current direction.
func (e *Engine) SetBallSpeed(speed float64) {
	e.ballSpeed = speed
	e.baseBallSpeed = speed
	e.ball.SetSpeed(speed)
}

// SetPaddleSpeed sets the paddle's horizontal speed.
func (e *Engine) SetPaddleSpeed(speed float64) { e.paddle.Speed = speed }

// SetRandomSeed reseeds the powerup RNG. A negative seed selects a
// time-based seed, making runs non-reproducible.
func (e *Engine) SetRandomSeed(seed int64) { e.rng = core.NewRNG(seed) }

// SetStartingLevel sets the level NewGame begins on. Out-of-range values
// fall back to level 1.
func (e *Engine) SetStartingLevel(level int) { e.startingLevel = level }

// SetStartingLives sets the lives NewGame begins with, clamped to
// [1, ExtraLifeCap].
func (e *Engine) SetStartingLives(lives int) {
	e.startLives = core.Clamp(lives, 1, ExtraLifeCap)
}

// NewGame resets score, lives and effects, then starts on the configured
// starting level with the ball attached to the paddle.
func (e *Engine) NewGame() {
	e.score = 0
	e.lives = e.startLives
	e.levelComplete = false
	e.comboStreak = 0
	e.scoreMultiplier = 1
	e.clearEffects()
	e.powerups = nil

	start := core.Max(1, e.startingLevel)
	if !e.levels.HasLevel(start) {
		start = fallbackLevel
	}
	e.currentLevel = start

	e.ResetLevel(e.currentLevel)
	e.AttachBallToPaddle()
}

// ResetLevel rebuilds the brick field for levelIndex and repositions the
// paddle and ball. Score and lives carry over; combo and effects do not.
func (e *Engine) ResetLevel(levelIndex int) {
	e.currentLevel = levelIndex
	e.levelComplete = false
	e.comboStreak = 0
	e.scoreMultiplier = 1
	e.clearEffects()
	e.powerups = nil

	maxCols := e.levels.MaxColumns(levelIndex)
	if maxCols == 0 {
		maxCols = fallbackCols
	}

	brickWidth := (e.bounds.W - brickMarginX) / float64(maxCols)
	offsetX := e.bounds.X + brickOffset
	offsetY := e.bounds.Y + brickOffset

	// The paddle shrinks on later levels.
	width := math.Max(minPaddleWidth, basePaddleWidth-float64(levelIndex-1)*shrinkPerLevel)
	e.levelBasePaddleWidth = width
	e.paddle.W = width

	e.bricks = e.levels.Build(levelIndex, brickWidth, BrickHeight, offsetX, offsetY)
	e.positionPaddleAndBall()
	e.ballAttached = false
}

// RestartCurrentLevel rebuilds the current level and reattaches the ball.
func (e *Engine) RestartCurrentLevel() {
	e.ResetLevel(e.currentLevel)
	e.AttachBallToPaddle()
}

// AttachBallToPaddle parks the ball on the paddle with zero velocity.
func (e *Engine) AttachBallToPaddle() {
	e.ballAttached = true
	e.ball.Vel = core.Vec2{}
	e.ball.Pos = core.Vec2{
		X: e.paddle.CenterX(),
		Y: e.paddle.Pos.Y - e.ball.Radius - ballRestGap,
	}
}

// LaunchBall releases an attached ball straight up. A free ball is left
// untouched.
func (e *Engine) LaunchBall() {
	if !e.ballAttached {
		return
	}
	e.ballAttached = false
	e.ball.Vel = core.Vec2{X: 0, Y: -e.ballSpeed}
}

// IsBallAttached reports whether the ball is parked on the paddle.
func (e *Engine) IsBallAttached() bool { return e.ballAttached }

// MovePaddleLeft moves the paddle left, clamped to the playfield.
func (e *Engine) MovePaddleLeft(deltaTime float64) {
	e.paddle.MoveLeft(deltaTime, e.bounds.Left())
}

// MovePaddleRight moves the paddle right, clamped to the playfield.
func (e *Engine) MovePaddleRight(deltaTime float64) {
	e.paddle.MoveRight(deltaTime, e.bounds.Right())
}

func (e *Engine) positionPaddleAndBall() {
	e.paddle.Pos = core.Vec2{
		X: e.bounds.X + e.bounds.W/2 - e.paddle.W/2,
		Y: e.bounds.Bottom() - e.paddle.H - paddleBottomMargin,
	}
	e.ball.Pos = core.Vec2{
		X: e.paddle.CenterX(),
		Y: e.paddle.Pos.Y - e.ball.Radius - ballRestGap,
	}
	e.ball.Vel = core.Vec2{X: 0, Y: -e.ballSpeed}
}

func (e *Engine) breakableBrickCount() int {
	count := 0
	for i := range e.bricks {
		if e.bricks[i].Breakable() && !e.bricks[i].Destroyed {
			count++
		}
	}
	return count
}

// IsLevelComplete reports whether every breakable brick is destroyed.
func (e *Engine) IsLevelComplete() bool { return e.breakableBrickCount() == 0 }

// LevelComplete reports whether the level-complete latch is set. It stays
// set until the level changes, even across further Update calls.
func (e *Engine) LevelComplete() bool { return e.levelComplete }

// IsGameOver reports whether all lives are spent.
func (e *Engine) IsGameOver() bool { return e.lives <= 0 }

// HasNextLevel reports whether a level follows the current one.
func (e *Engine) HasNextLevel() bool { return e.levels.HasLevel(e.currentLevel + 1) }

// AdvanceToNextLevel moves to the next level if one exists.
func (e *Engine) AdvanceToNextLevel() bool {
	if !e.HasNextLevel() {
		return false
	}
	e.ResetLevel(e.currentLevel + 1)
	e.AttachBallToPaddle()
	e.levelComplete = false
	return true
}

func (e *Engine) resetCombo() {
	e.comboStreak = 0
	e.scoreMultiplier = 1
}

// Update advances the simulation by deltaTime seconds. It is a no-op when
// the game is over or the level-complete latch is set. The ordering is
// load-bearing: effect timers and pickups first, then the attached-ball
// follow, then the bottom-out check, then brick, wall and paddle
// collisions, then the level-complete check.
func (e *Engine) Update(deltaTime float64) {
	if e.IsGameOver() || e.levelComplete {
		return
	}

	e.updatePowerups(deltaTime)

	if e.ballAttached {
		e.ball.Pos = core.Vec2{
			X: e.paddle.CenterX(),
			Y: e.paddle.Pos.Y - e.ball.Radius - ballRestGap,
		}
		return
	}

	// Losing the ball preempts all collision work for the tick.
	if e.ball.Bounds().Bottom() >= e.bounds.Bottom() {
		e.lives--
		e.resetCombo()
		if !e.IsGameOver() {
			e.positionPaddleAndBall()
			e.AttachBallToPaddle()
		}
		return
	}

	wasDestroyed := make([]bool, len(e.bricks))
	for i := range e.bricks {
		wasDestroyed[i] = e.bricks[i].Destroyed
	}

	destroyed := ResolveBrickCollisions(&e.ball, e.bricks, deltaTime, e.bigBallTimer > 0)

	if destroyed > 0 {
		e.comboStreak += destroyed
		e.scoreMultiplier = core.Clamp(1+e.comboStreak/comboStep, 1, maxComboMultiplier)
		e.score += destroyed * BrickPoints * e.scoreMultiplier * e.pointMultiplier

		for i := range e.bricks {
			if wasDestroyed[i] || !e.bricks[i].Destroyed {
				continue
			}
			center := e.bricks[i].Bounds.Center()
			if e.bricks[i].Powerup != PowerupNone {
				e.spawnPowerupOfKind(center, e.bricks[i].Powerup)
			} else if e.rng.Float64() < PowerupSpawnChance {
				e.spawnPowerup(center)
			}
		}
	}

	ResolveWallCollision(&e.ball, e.bounds)

	if ResolvePaddleCollision(&e.ball, &e.paddle) {
		e.resetCombo()
	}

	if e.IsLevelComplete() {
		e.levelComplete = true
		e.AttachBallToPaddle()
	}
}

func (e *Engine) spawnPowerup(pos core.Vec2) {
	roll := e.rng.Float64()
	kind := PowerupMultiBall
	switch {
	case roll < 0.2:
		kind = PowerupExpandPaddle
	case roll < 0.4:
		kind = PowerupExtraLife
	case roll < 0.6:
		kind = PowerupSpeedBoost
	case roll < 0.8:
		kind = PowerupPointMultiplier
	}
	e.powerups = append(e.powerups, NewPowerup(kind, pos))
}

func (e *Engine) spawnPowerupOfKind(pos core.Vec2, kind PowerupKind) {
	e.powerups = append(e.powerups, NewPowerup(kind, pos))
}

func (e *Engine) applyPowerup(p Powerup) {
	switch p.Kind {
	case PowerupExpandPaddle:
		target := core.ClampF(e.levelBasePaddleWidth+ExpandPaddleAmount, e.levelBasePaddleWidth, maxPaddleWidth)
		e.paddle.SetWidthKeepCenter(target, e.bounds.Left(), e.bounds.Right())
		e.expandTimer = math.Min(e.expandTimer+ExpandPaddleDuration, EffectDurationCap)
	case PowerupExtraLife:
		e.lives = core.Min(e.lives+1, ExtraLifeCap)
	case PowerupSpeedBoost:
		e.speedBoostTimer = math.Min(e.speedBoostTimer+SpeedBoostDuration, EffectDurationCap)
		e.ball.SetSpeed(e.baseBallSpeed * SpeedBoostFactor)
	case PowerupPointMultiplier:
		e.pointMultiplier = core.Min(e.pointMultiplier+PointMultiplierStep, PointMultiplierCap)
		e.pointMultiplierTimer = math.Min(e.pointMultiplierTimer+PointMultiplierTime, EffectDurationCap)
	case PowerupMultiBall:
		// Big-ball variant; the duration is flat, never stacked.
		e.bigBallTimer = BigBallDuration
		e.ball.Radius = e.baseBallRadius * BigBallRadiusFactor
	}
}

func (e *Engine) updatePowerups(deltaTime float64) {
	if e.expandTimer > 0 {
		e.expandTimer -= deltaTime
		if e.expandTimer <= 0 {
			e.expandTimer = 0
			e.paddle.SetWidthKeepCenter(e.levelBasePaddleWidth, e.bounds.Left(), e.bounds.Right())
		}
	}
	if e.speedBoostTimer > 0 {
		e.speedBoostTimer -= deltaTime
		if e.speedBoostTimer <= 0 {
			e.speedBoostTimer = 0
			e.ball.SetSpeed(e.baseBallSpeed)
		}
	}
	if e.pointMultiplierTimer > 0 {
		e.pointMultiplierTimer -= deltaTime
		if e.pointMultiplierTimer <= 0 {
			e.pointMultiplierTimer = 0
			e.pointMultiplier = 1
		}
	}
	if e.bigBallTimer > 0 {
		e.bigBallTimer -= deltaTime
		if e.bigBallTimer <= 0 {
			e.bigBallTimer = 0
			e.ball.Radius = e.baseBallRadius
		}
	}

	if len(e.powerups) == 0 {
		return
	}

	next := e.powerups[:0]
	paddleRect := e.paddle.Bounds()
	for i := range e.powerups {
		p := e.powerups[i]
		p.Fall(deltaTime)
		if Intersects(p.Bounds(), paddleRect) {
			e.applyPowerup(p)
			continue
		}
		if p.Bounds().Top() > e.bounds.Bottom() {
			continue
		}
		next = append(next, p)
	}
	e.powerups = next
}

func (e *Engine) clearEffects() {
	e.expandTimer = 0
	e.speedBoostTimer = 0
	e.pointMultiplier = 1
	e.pointMultiplierTimer = 0
	e.bigBallTimer = 0
	e.paddle.SetWidthKeepCenter(e.levelBasePaddleWidth, e.bounds.Left(), e.bounds.Right())
	e.ball.SetSpeed(e.baseBallSpeed)
	e.ball.Radius = e.baseBallRadius
}

// Read accessors for rendering, persistence and tests.

func (e *Engine) Ball() Ball                           { return e.ball }
func (e *Engine) Paddle() Paddle                       { return e.paddle }
func (e *Engine) Bricks() []Brick                      { return e.bricks }
func (e *Engine) Powerups() []Powerup                  { return e.powerups }
func (e *Engine) PlayfieldBounds() core.RectF          { return e.bounds }
func (e *Engine) Score() int                           { return e.score }
func (e *Engine) Lives() int                           { return e.lives }
func (e *Engine) CurrentLevel() int                    { return e.currentLevel }
func (e *Engine) LevelCount() int                      { return e.levels.Count() }
func (e *Engine) ComboStreak() int                     { return e.comboStreak }
func (e *Engine) ScoreMultiplier() int                 { return e.scoreMultiplier }
func (e *Engine) ExpandTimeRemaining() float64         { return e.expandTimer }
func (e *Engine) SpeedBoostTimeRemaining() float64     { return e.speedBoostTimer }
func (e *Engine) PointMultiplier() int                 { return e.pointMultiplier }
func (e *Engine) PointMultiplierTimeRemaining() float64 { return e.pointMultiplierTimer }
func (e *Engine) BigBallTimeRemaining() float64        { return e.bigBallTimer }
func (e *Engine) IsBigBallActive() bool                { return e.bigBallTimer > 0 }
