package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// HUD occupies the top rows; the playfield is projected below it.
const hudRows = 2

// Minimum terminal size for a playable field.
const (
	minScreenW = 40
	minScreenH = 12
)

// gameView projects simulation coordinates onto the character screen.
// The simulation runs on a fixed-size pixel playfield; cells are scaled
// to whatever terminal the session has.
type gameView struct {
	bounds core.RectF
	scaleX float64
	scaleY float64
}

func newGameView(dst *core.Screen, bounds core.RectF) gameView {
	fieldH := dst.Height() - hudRows
	if fieldH < 1 {
		fieldH = 1
	}
	return gameView{
		bounds: bounds,
		scaleX: float64(dst.Width()) / bounds.W,
		scaleY: float64(fieldH) / bounds.H,
	}
}

func (v gameView) cellX(x float64) int {
	return int((x - v.bounds.X) * v.scaleX)
}

func (v gameView) cellY(y float64) int {
	return hudRows + int((y-v.bounds.Y)*v.scaleY)
}

// DrawGame renders the full engine state: HUD, bricks, pickups, paddle
// and ball. Overlay boxes (pause, game over) are the model's concern.
func DrawGame(dst *core.Screen, e *breakout.Engine) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	v := newGameView(dst, e.PlayfieldBounds())

	drawHUD(dst, e)
	drawBricks(dst, v, e.Bricks())
	drawPickups(dst, v, e.Powerups())
	drawPaddle(dst, v, e.Paddle())
	drawBall(dst, v, e.Ball(), e.IsBigBallActive())
}

// drawHUD draws the score, lives and level indicator, plus active effects.
func drawHUD(dst *core.Screen, e *breakout.Engine) {
	scoreText := fmt.Sprintf("Score: %d", e.Score())
	if mult := e.ScoreMultiplier(); mult > 1 {
		scoreText += fmt.Sprintf(" (combo x%d)", mult)
	}
	dst.DrawText(1, 0, scoreText)

	livesText := fmt.Sprintf("Lives: %d", e.Lives())
	dst.DrawTextCentered(0, livesText)

	levelText := fmt.Sprintf("Level: %d/%d", e.CurrentLevel(), e.LevelCount())
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)

	effects := buildEffectsString(e)
	if effects != "" {
		dst.DrawTextColor(1, 1, effects, core.ColorBrightYellow)
	} else {
		dst.DrawHLine(0, 1, dst.Width(), '─')
	}
}

// buildEffectsString creates a compact display of active powerup timers.
func buildEffectsString(e *breakout.Engine) string {
	result := ""
	add := func(label string, secs float64) {
		if result != "" {
			result += " "
		}
		result += fmt.Sprintf("%s(%ds)", label, int(secs))
	}

	if t := e.ExpandTimeRemaining(); t > 0 {
		add("WIDE", t)
	}
	if t := e.SpeedBoostTimeRemaining(); t > 0 {
		add("FAST", t)
	}
	if t := e.PointMultiplierTimeRemaining(); t > 0 {
		add(fmt.Sprintf("x%d", e.PointMultiplier()), t)
	}
	if t := e.BigBallTimeRemaining(); t > 0 {
		add("BIG", t)
	}
	return result
}

// drawBricks draws all surviving bricks as filled cell spans.
func drawBricks(dst *core.Screen, v gameView, bricks []breakout.Brick) {
	for i := range bricks {
		brick := &bricks[i]
		if brick.Destroyed {
			continue
		}

		glyph, color := brickAppearance(brick)

		x0 := v.cellX(brick.Bounds.Left())
		x1 := v.cellX(brick.Bounds.Right())
		y0 := v.cellY(brick.Bounds.Top())
		y1 := v.cellY(brick.Bounds.Bottom())
		if x1 <= x0 {
			x1 = x0 + 1
		}
		if y1 <= y0 {
			y1 = y0 + 1
		}

		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				dst.SetColor(x, y, glyph, color)
			}
		}
	}
}

// brickAppearance picks the glyph and color for a brick. Durable bricks
// change color as they take damage.
func brickAppearance(b *breakout.Brick) (rune, core.Color) {
	switch b.Kind {
	case breakout.BrickDurable:
		if b.Hits > 1 {
			return breakout.SymbolDurable, core.ColorYellow
		}
		return breakout.SymbolDurable, core.ColorOrange
	case breakout.BrickIndestructible:
		return breakout.SymbolIndestructible, core.ColorGray
	default:
		return breakout.SymbolNormal, core.ColorGreen
	}
}

// drawPickups draws falling powerup pickups.
func drawPickups(dst *core.Screen, v gameView, pickups []breakout.Powerup) {
	for _, p := range pickups {
		x := v.cellX(p.Pos.X)
		y := v.cellY(p.Pos.Y)
		dst.SetColor(x, y, pickupGlyph(p.Kind), core.ColorMagenta)
	}
}

// pickupGlyph maps a powerup kind to its falling glyph.
func pickupGlyph(kind breakout.PowerupKind) rune {
	switch kind {
	case breakout.PowerupExpandPaddle:
		return 'E'
	case breakout.PowerupExtraLife:
		return 'L'
	case breakout.PowerupSpeedBoost:
		return 'S'
	case breakout.PowerupPointMultiplier:
		return 'P'
	case breakout.PowerupMultiBall:
		return 'B'
	default:
		return '?'
	}
}

// drawPaddle draws the player's paddle.
func drawPaddle(dst *core.Screen, v gameView, paddle breakout.Paddle) {
	y := v.cellY(paddle.Pos.Y)
	x0 := v.cellX(paddle.Pos.X)
	x1 := v.cellX(paddle.Pos.X + paddle.W)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	for x := x0; x < x1; x++ {
		dst.SetColor(x, y, '=', core.ColorCyan)
	}
}

// drawBall draws the ball; the big-ball powerup renders it as a heavier glyph.
func drawBall(dst *core.Screen, v gameView, ball breakout.Ball, big bool) {
	x := v.cellX(ball.Pos.X)
	y := v.cellY(ball.Pos.Y)
	if big {
		dst.SetColor(x, y, '@', core.ColorOrange)
		return
	}
	dst.SetColor(x, y, 'O', core.ColorBrightWhite)
}
