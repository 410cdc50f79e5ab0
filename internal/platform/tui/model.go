package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// How long transient status messages stay on screen, in ticks.
const statusDuration = 180

// GameModel is the Bubble Tea model driving one breakout session.
// The engine is built and configured by the caller so the CLI can wire
// config files, difficulty presets and restored endgames into it.
type GameModel struct {
	engine     *breakout.Engine
	screen     *core.Screen
	store      *storage.Store
	gameCfg    config.GameConfig
	runtime    core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame

	paused      bool
	quitting    bool
	scoreSaved  bool
	statusMsg   string
	statusTicks int
}

// NewGameModel creates a model around an already-configured engine.
// A nil store disables score and endgame persistence.
func NewGameModel(engine *breakout.Engine, store *storage.Store, gameCfg config.GameConfig, runtime core.RuntimeConfig) GameModel {
	return GameModel{
		engine:     engine,
		screen:     core.NewScreen(runtime.ScreenW, runtime.ScreenH),
		store:      store,
		gameCfg:    gameCfg,
		runtime:    runtime,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick advances the simulation by one fixed step and applies the
// input collected since the previous tick.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.statusTicks > 0 {
		m.statusTicks--
	}

	gameOver := m.engine.IsGameOver()
	won := m.engine.LevelComplete() && !m.engine.HasNextLevel()

	// Score is recorded once per run when it ends.
	if (gameOver || won) && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	if m.inputFrame.Has(core.ActionPause) && !gameOver && !won {
		m.paused = !m.paused
	}

	switch {
	case m.paused:
		if m.inputFrame.Has(core.ActionSave) {
			m.saveEndgame()
		}

	case gameOver || won:
		if m.inputFrame.Has(core.ActionRestart) {
			if m.runtime.Seed < 0 {
				m.engine.SetRandomSeed(-1)
			}
			m.engine.NewGame()
			m.scoreSaved = false
		}

	case m.engine.LevelComplete():
		if m.inputFrame.Has(core.ActionConfirm) {
			m.engine.AdvanceToNextLevel()
		}

	default:
		deltaTime := 1.0 / float64(m.runtime.TickRate)
		if m.inputFrame.Has(core.ActionLeft) {
			m.engine.MovePaddleLeft(deltaTime)
		}
		if m.inputFrame.Has(core.ActionRight) {
			m.engine.MovePaddleRight(deltaTime)
		}
		if m.inputFrame.Has(core.ActionLaunch) {
			m.engine.LaunchBall()
		}
		m.engine.Update(deltaTime)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.runtime.TickRate)
}

// saveScore writes the finished run's score under the configured player name.
func (m *GameModel) saveScore() {
	if m.store == nil || m.engine.Score() <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveScore(m.playerName(), m.engine.Score(), m.engine.CurrentLevel())
}

// saveEndgame snapshots the paused game under a timestamped name.
func (m *GameModel) saveEndgame() {
	if m.store == nil {
		return
	}

	name := fmt.Sprintf("%s_%s", m.playerName(), time.Now().Format("20060102_150405"))
	configName := m.gameCfg.Name
	if configName == "" {
		configName = config.DefaultConfigName
	}

	snap := m.engine.Snapshot(name, configName)
	if err := m.store.SaveEndgame(snap, true); err != nil {
		m.setStatus(fmt.Sprintf("Save failed: %v", err))
		return
	}
	m.setStatus(fmt.Sprintf("Saved as %q", name))
}

// playerName returns the configured player name, defaulting to "player".
// The name doubles as the endgame name prefix, so it is kept to the
// characters the storage layer accepts.
func (m *GameModel) playerName() string {
	name := m.gameCfg.Gameplay.PlayerName
	if name == "" || !storage.ValidEndgameName(name) {
		return "player"
	}
	return name
}

func (m *GameModel) setStatus(msg string) {
	m.statusMsg = msg
	m.statusTicks = statusDuration
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	DrawGame(m.screen, m.engine)
	m.drawOverlay()

	return RenderScreen(m.screen)
}

// drawOverlay adds state messages on top of the rendered playfield.
func (m GameModel) drawOverlay() {
	switch {
	case m.engine.IsGameOver():
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", m.engine.Score())
		drawCenteredBox(m.screen, "GAME OVER", subtitle)

	case m.engine.LevelComplete() && !m.engine.HasNextLevel():
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", m.engine.Score())
		drawCenteredBox(m.screen, "YOU WIN!", subtitle)

	case m.engine.LevelComplete():
		drawCenteredBox(m.screen, "LEVEL CLEAR", "Press ENTER for the next level")

	case m.paused:
		drawCenteredBox(m.screen, "PAUSED", "P resume  |  F2 save game  |  Q quit")

	case m.engine.IsBallAttached():
		m.screen.DrawTextCentered(m.screen.Height()-1, "Press SPACE to launch")
	}

	if m.statusTicks > 0 {
		m.screen.DrawTextCentered(m.screen.Height()-2, m.statusMsg)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(engine *breakout.Engine, store *storage.Store, gameCfg config.GameConfig, runtime core.RuntimeConfig) error {
	model := NewGameModel(engine, store, gameCfg, runtime)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
