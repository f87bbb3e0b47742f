package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lunarcade/internal/core"
	"github.com/vovakirdan/lunarcade/internal/registry"
	"github.com/vovakirdan/lunarcade/internal/storage"
)

// runDetails is implemented by games that track progression beyond a
// plain score. The model records these with the run when available.
type runDetails interface {
	Level() int
	Landings() int
}

// GameModel is the Bubble Tea model for running a game.
// It drives the fixed tick loop, maps keys to actions, and persists
// finished runs.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	oneShot    core.InputFrame
	held       map[core.Action]int
	holdTicks  int
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	runSaved   bool
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	// Terminals deliver key repeats rather than press/release pairs, so
	// a "held" key is latched for roughly 150ms of ticks and refreshed
	// by each repeat event.
	holdTicks := cfg.TickRate * 150 / 1000
	if holdTicks < 1 {
		holdTicks = 1
	}

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		oneShot:   core.NewInputFrame(),
		held:      make(map[core.Action]int),
		holdTicks: holdTicks,
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
		}
	case m.keyMapper.IsHeldAction(action):
		m.held[action] = m.holdTicks
	case action != core.ActionNone:
		m.oneShot.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.oneShot.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.oneShot.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Combine tapped actions with currently latched held keys.
	frame := m.oneShot.Clone()
	for action, ticks := range m.held {
		if ticks > 0 {
			frame.Set(action)
			m.held[action] = ticks - 1
		}
	}

	result := m.game.Step(frame)
	m.gameState = result.State

	// Save run on game over (once)
	if m.gameState.GameOver && !m.runSaved && m.gameState.Score > 0 {
		m.saveRun()
		m.runSaved = true
	}

	// Clear tapped input for next frame
	m.oneShot.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveRun persists the finished run, best effort.
func (m *GameModel) saveRun() {
	if m.store == nil {
		return
	}

	level, landings := 0, 0
	if rd, ok := m.game.(runDetails); ok {
		level = rd.Level()
		landings = rd.Landings()
	}

	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(m.game.ID(), m.gameState.Score, level, landings)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".lunarcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	// Save screenshot
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
