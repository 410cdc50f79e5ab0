package breakout

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func newTestEngine(seed int64) *Engine {
	e := NewEngine()
	e.SetRandomSeed(seed)
	return e
}

func TestNewGameDefaults(t *testing.T) {
	e := newTestEngine(1)

	if e.Score() != 0 {
		t.Errorf("score = %d, want 0", e.Score())
	}
	if e.Lives() != 3 {
		t.Errorf("lives = %d, want 3", e.Lives())
	}
	if e.CurrentLevel() != 1 {
		t.Errorf("level = %d, want 1", e.CurrentLevel())
	}
	if !e.IsBallAttached() {
		t.Error("ball should start attached to the paddle")
	}
	if e.ScoreMultiplier() != 1 || e.PointMultiplier() != 1 {
		t.Error("multipliers should start at 1")
	}
	if len(e.Bricks()) == 0 {
		t.Error("level 1 should have bricks")
	}
	ball := e.Ball()
	if ball.Vel.X != 0 || ball.Vel.Y != 0 {
		t.Errorf("attached ball should be at rest, got %+v", ball.Vel)
	}
}

func TestStartingLevelFallback(t *testing.T) {
	e := newTestEngine(1)
	e.SetStartingLevel(99)
	e.NewGame()

	if e.CurrentLevel() != 1 {
		t.Errorf("out-of-range starting level should fall back to 1, got %d", e.CurrentLevel())
	}

	e.SetStartingLevel(2)
	e.NewGame()
	if e.CurrentLevel() != 2 {
		t.Errorf("starting level 2 should be honored, got %d", e.CurrentLevel())
	}
}

func TestLaunchBall(t *testing.T) {
	e := newTestEngine(1)

	e.LaunchBall()
	if e.IsBallAttached() {
		t.Fatal("ball should be free after launch")
	}
	ball := e.Ball()
	if ball.Vel.Y >= 0 {
		t.Errorf("launched ball should go up, got VY=%v", ball.Vel.Y)
	}
	if math.Abs(ball.Speed()-DefaultBallSpeed) > 1e-9 {
		t.Errorf("launch speed = %v, want %v", ball.Speed(), DefaultBallSpeed)
	}

	// A second launch on a free ball changes nothing.
	before := e.Ball()
	e.LaunchBall()
	if e.Ball() != before {
		t.Error("launching a free ball should be a no-op")
	}
}

func TestAttachedBallFollowsPaddle(t *testing.T) {
	e := newTestEngine(1)
	dt := 1.0 / 60.0

	for i := 0; i < 30; i++ {
		e.MovePaddleRight(dt)
		e.Update(dt)
	}

	ball := e.Ball()
	paddle := e.Paddle()
	if math.Abs(ball.Pos.X-paddle.CenterX()) > 1e-9 {
		t.Errorf("attached ball X = %v, want paddle center %v", ball.Pos.X, paddle.CenterX())
	}
}

func TestPaddleMovementClamped(t *testing.T) {
	e := newTestEngine(1)
	bounds := e.PlayfieldBounds()

	for i := 0; i < 1000; i++ {
		e.MovePaddleLeft(1.0 / 60.0)
	}
	if got := e.Paddle().Pos.X; got != bounds.Left() {
		t.Errorf("paddle should stop at the left edge, got X=%v", got)
	}

	for i := 0; i < 1000; i++ {
		e.MovePaddleRight(1.0 / 60.0)
	}
	paddle := e.Paddle()
	if got := paddle.Pos.X + paddle.W; got != bounds.Right() {
		t.Errorf("paddle right edge should stop at %v, got %v", bounds.Right(), got)
	}
}

func TestBottomOutLosesOneLife(t *testing.T) {
	e := newTestEngine(1)
	e.LaunchBall()

	// Drop the ball below the playfield.
	e.ball.Pos = core.Vec2{X: 320, Y: e.bounds.Bottom() + 10}
	e.ball.Vel = core.Vec2{X: 0, Y: 200}

	e.Update(1.0 / 60.0)

	if e.Lives() != 2 {
		t.Fatalf("lives = %d, want 2", e.Lives())
	}
	if !e.IsBallAttached() {
		t.Error("ball should reattach after a lost life")
	}
	if e.ComboStreak() != 0 || e.ScoreMultiplier() != 1 {
		t.Error("combo should reset on a lost life")
	}

	// The reattach happened inside the same tick; further updates must not
	// cost another life.
	e.Update(1.0 / 60.0)
	if e.Lives() != 2 {
		t.Errorf("lives = %d after follow-up tick, want 2", e.Lives())
	}
}

func TestGameOverFreezesEngine(t *testing.T) {
	e := newTestEngine(1)
	e.lives = 1
	e.LaunchBall()
	e.ball.Pos = core.Vec2{X: 320, Y: e.bounds.Bottom() + 10}

	e.Update(1.0 / 60.0)

	if !e.IsGameOver() {
		t.Fatal("game should be over on the last bottom-out")
	}
	if e.Lives() != 0 {
		t.Errorf("lives = %d, want 0", e.Lives())
	}

	// Updates after game over change nothing.
	ballBefore := e.Ball()
	scoreBefore := e.Score()
	e.Update(1.0 / 60.0)
	if e.Ball() != ballBefore || e.Score() != scoreBefore {
		t.Error("engine must not advance after game over")
	}
}

func TestBrickScoringWithCombo(t *testing.T) {
	e := newTestEngine(1)
	e.SetLevels([][]string{{"@@@@"}})
	e.NewGame()
	e.LaunchBall()

	dt := 1.0 / 60.0
	for i := 0; i < 20000 && !e.LevelComplete(); i++ {
		// Top up lives each tick; random speed boosts can cost a drop and
		// this test is about scoring, not survival.
		e.lives = 3
		// Chase the ball so it never bottoms out.
		paddle := e.Paddle()
		if e.Ball().Pos.X < paddle.CenterX() {
			e.MovePaddleLeft(dt)
		} else {
			e.MovePaddleRight(dt)
		}
		e.Update(dt)
		if e.IsBallAttached() {
			e.LaunchBall()
		}
	}

	if !e.LevelComplete() {
		t.Fatal("four plain bricks should be cleared within the tick budget")
	}
	// Four bricks at 100 points each; combo multipliers can only raise it.
	if e.Score() < 400 {
		t.Errorf("score = %d, want at least 400", e.Score())
	}
	if !e.IsBallAttached() {
		t.Error("ball should reattach when the level completes")
	}
}

func TestLevelCompleteLatch(t *testing.T) {
	e := newTestEngine(1)
	e.SetLevels([][]string{{"@"}, {"@@"}})
	e.NewGame()

	// Destroy the only brick directly and run one tick to latch.
	e.bricks[0].ApplyHit()
	e.LaunchBall()
	e.Update(1.0 / 60.0)

	if !e.LevelComplete() {
		t.Fatal("level-complete latch should be set")
	}

	// The latch freezes the simulation until the level changes.
	ballBefore := e.Ball()
	e.Update(1.0 / 60.0)
	if e.Ball() != ballBefore {
		t.Error("engine must not advance while level-complete is latched")
	}

	if !e.HasNextLevel() {
		t.Fatal("a second level exists")
	}
	if !e.AdvanceToNextLevel() {
		t.Fatal("advance should succeed")
	}
	if e.LevelComplete() {
		t.Error("latch should clear on level change")
	}
	if e.CurrentLevel() != 2 {
		t.Errorf("level = %d, want 2", e.CurrentLevel())
	}
	if len(e.Bricks()) != 2 {
		t.Errorf("level 2 should have 2 bricks, got %d", len(e.Bricks()))
	}

	// No third level.
	e.bricks[0].ApplyHit()
	e.bricks[1].ApplyHit()
	e.Update(1.0 / 60.0)
	if e.AdvanceToNextLevel() {
		t.Error("advance past the last level should fail")
	}
}

func TestIndestructibleBricksDoNotBlockCompletion(t *testing.T) {
	e := newTestEngine(1)
	e.SetLevels([][]string{{"@*"}})
	e.NewGame()

	e.bricks[0].ApplyHit()
	if !e.IsLevelComplete() {
		t.Error("a level with only indestructible bricks left is complete")
	}
}

func TestPaddleShrinksPerLevel(t *testing.T) {
	e := newTestEngine(1)

	widths := map[int]float64{
		1: 200,
		2: 180,
		3: 160,
	}
	for level, want := range widths {
		e.ResetLevel(level)
		if got := e.Paddle().W; got != want {
			t.Errorf("level %d paddle width = %v, want %v", level, got, want)
		}
	}

	// Far levels bottom out at the minimum width.
	e.SetLevels([][]string{{"@"}, {"@"}, {"@"}, {"@"}, {"@"}, {"@"}, {"@"}, {"@"}, {"@"}, {"@"}})
	e.ResetLevel(10)
	if got := e.Paddle().W; got != 100 {
		t.Errorf("level 10 paddle width = %v, want the 100 floor", got)
	}
}

func TestExpandPaddleStacksDuration(t *testing.T) {
	e := newTestEngine(1)

	base := e.Paddle().W
	e.applyPowerup(NewPowerup(PowerupExpandPaddle, core.Vec2{X: 320, Y: 100}))

	if got := e.Paddle().W; got != base+ExpandPaddleAmount {
		t.Errorf("expanded width = %v, want %v", got, base+ExpandPaddleAmount)
	}
	if e.ExpandTimeRemaining() != ExpandPaddleDuration {
		t.Errorf("expand timer = %v, want %v", e.ExpandTimeRemaining(), ExpandPaddleDuration)
	}

	// Repeated pickups stack the timer but not the width, capped at 60s.
	for i := 0; i < 10; i++ {
		e.applyPowerup(NewPowerup(PowerupExpandPaddle, core.Vec2{X: 320, Y: 100}))
	}
	if got := e.Paddle().W; got != base+ExpandPaddleAmount {
		t.Errorf("width after stacking = %v, want %v", got, base+ExpandPaddleAmount)
	}
	if e.ExpandTimeRemaining() != EffectDurationCap {
		t.Errorf("stacked timer = %v, want the %v cap", e.ExpandTimeRemaining(), EffectDurationCap)
	}

	// Expiry restores the base width.
	e.updatePowerups(EffectDurationCap + 1)
	if got := e.Paddle().W; got != base {
		t.Errorf("width after expiry = %v, want %v", got, base)
	}
}

func TestExtraLifeCapped(t *testing.T) {
	e := newTestEngine(1)

	for i := 0; i < 10; i++ {
		e.applyPowerup(NewPowerup(PowerupExtraLife, core.Vec2{}))
	}
	if e.Lives() != ExtraLifeCap {
		t.Errorf("lives = %d, want cap %d", e.Lives(), ExtraLifeCap)
	}
}

func TestSpeedBoostAppliesAndExpires(t *testing.T) {
	e := newTestEngine(1)
	e.LaunchBall()

	e.applyPowerup(NewPowerup(PowerupSpeedBoost, core.Vec2{}))
	ball := e.Ball()
	if got := ball.Speed(); math.Abs(got-DefaultBallSpeed*SpeedBoostFactor) > 1e-9 {
		t.Errorf("boosted speed = %v, want %v", got, DefaultBallSpeed*SpeedBoostFactor)
	}

	e.updatePowerups(SpeedBoostDuration + 1)
	ball = e.Ball()
	if got := ball.Speed(); math.Abs(got-DefaultBallSpeed) > 1e-9 {
		t.Errorf("speed after expiry = %v, want %v", got, DefaultBallSpeed)
	}
}

func TestPointMultiplierCapped(t *testing.T) {
	e := newTestEngine(1)

	for i := 0; i < 10; i++ {
		e.applyPowerup(NewPowerup(PowerupPointMultiplier, core.Vec2{}))
	}
	if e.PointMultiplier() != PointMultiplierCap {
		t.Errorf("point multiplier = %d, want cap %d", e.PointMultiplier(), PointMultiplierCap)
	}

	e.updatePowerups(EffectDurationCap + 1)
	if e.PointMultiplier() != 1 {
		t.Errorf("point multiplier after expiry = %d, want 1", e.PointMultiplier())
	}
}

func TestBigBallFlatDuration(t *testing.T) {
	e := newTestEngine(1)

	e.applyPowerup(NewPowerup(PowerupMultiBall, core.Vec2{}))
	if !e.IsBigBallActive() {
		t.Fatal("big ball should be active")
	}
	if got := e.Ball().Radius; got != DefaultBallRadius*BigBallRadiusFactor {
		t.Errorf("big ball radius = %v, want %v", got, DefaultBallRadius*BigBallRadiusFactor)
	}

	// The timer is flat; a second pickup resets rather than stacks.
	e.updatePowerups(5)
	e.applyPowerup(NewPowerup(PowerupMultiBall, core.Vec2{}))
	if got := e.BigBallTimeRemaining(); got != BigBallDuration {
		t.Errorf("big ball timer = %v, want flat %v", got, BigBallDuration)
	}

	e.updatePowerups(BigBallDuration + 1)
	if e.IsBigBallActive() {
		t.Error("big ball should expire")
	}
	if got := e.Ball().Radius; got != DefaultBallRadius {
		t.Errorf("radius after expiry = %v, want %v", got, DefaultBallRadius)
	}
}

func TestPickupFallAndCollect(t *testing.T) {
	e := newTestEngine(1)

	paddle := e.Paddle()
	e.powerups = append(e.powerups, NewPowerup(PowerupExtraLife, core.Vec2{
		X: paddle.CenterX(),
		Y: paddle.Pos.Y - 30,
	}))

	// At 120 px/s the pickup reaches the paddle within half a second.
	for i := 0; i < 60 && len(e.powerups) > 0; i++ {
		e.updatePowerups(1.0 / 60.0)
	}

	if len(e.powerups) != 0 {
		t.Fatal("pickup should be collected by the paddle")
	}
	if e.Lives() != 4 {
		t.Errorf("lives = %d, want 4 after an extra-life pickup", e.Lives())
	}
}

func TestPickupMissedFallsOut(t *testing.T) {
	e := newTestEngine(1)

	// Drop a pickup far from the paddle, just above the bottom edge.
	e.powerups = append(e.powerups, NewPowerup(PowerupExtraLife, core.Vec2{
		X: e.bounds.Left() + PowerupSize,
		Y: e.bounds.Bottom() - 1,
	}))
	livesBefore := e.Lives()

	for i := 0; i < 60 && len(e.powerups) > 0; i++ {
		e.updatePowerups(1.0 / 60.0)
	}

	if len(e.powerups) != 0 {
		t.Error("missed pickup should be dropped once below the playfield")
	}
	if e.Lives() != livesBefore {
		t.Error("missed pickup must not apply")
	}
}

func TestAssignedPowerupSpawnsOnDestruction(t *testing.T) {
	e := newTestEngine(1)
	e.SetLevels([][]string{{"@"}})
	e.NewGame()
	e.bricks[0].Powerup = PowerupExtraLife

	// Drive the ball straight into the brick from below.
	center := e.bricks[0].Bounds.Center()
	e.ballAttached = false
	e.ball.Pos = core.Vec2{X: center.X, Y: e.bricks[0].Bounds.Bottom() + e.ball.Radius + 20}
	e.ball.Vel = core.Vec2{X: 0, Y: -260}

	e.Update(0.5)

	if len(e.powerups) != 1 {
		t.Fatalf("assigned powerup should always spawn, got %d pickups", len(e.powerups))
	}
	if e.powerups[0].Kind != PowerupExtraLife {
		t.Errorf("spawned kind = %v, want extra-life", e.powerups[0].Kind)
	}
}

func TestDeterministicRuns(t *testing.T) {
	run := func() Snapshot {
		e := newTestEngine(12345)
		e.NewGame()
		e.LaunchBall()
		dt := 1.0 / 60.0
		for i := 0; i < 600; i++ {
			if i%5 < 3 {
				e.MovePaddleRight(dt)
			} else {
				e.MovePaddleLeft(dt)
			}
			e.Update(dt)
			if e.IsGameOver() {
				break
			}
		}
		return e.Snapshot("run", "default")
	}

	a := run()
	b := run()

	if a.Score != b.Score || a.Lives != b.Lives || a.Level != b.Level {
		t.Errorf("runs diverged: %+v vs %+v", a, b)
	}
	if a.BallPos != b.BallPos || a.BallVel != b.BallVel {
		t.Error("ball state diverged between identical runs")
	}
	if a.PaddlePos != b.PaddlePos {
		t.Error("paddle state diverged between identical runs")
	}
	if a.RNGState != b.RNGState {
		t.Error("RNG state diverged between identical runs")
	}
	if len(a.Bricks) != len(b.Bricks) {
		t.Fatal("brick counts diverged")
	}
	for i := range a.Bricks {
		if a.Bricks[i] != b.Bricks[i] {
			t.Errorf("brick %d diverged", i)
		}
	}
}
