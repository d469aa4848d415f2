package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blocks/internal/core"
	engine "github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
	"github.com/vovakirdan/tui-blocks/internal/registry"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

// resizer is implemented by games that can adapt to a new screen size
// without restarting.
type resizer interface {
	Resize(w, h int)
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	backend    *storage.Backend
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	inSession  bool // back returns to a menu instead of quitting
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the result has been recorded for the current game over
}

// NewModel creates a new Bubble Tea model for the given game. backend may be
// nil, in which case finished games are not recorded.
func NewModel(game registry.Game, backend *storage.Backend, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		backend:    backend,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// WithLogger returns a copy of m that logs recording failures to l.
func (m Model) WithLogger(l *log.Logger) Model {
	m.logger = l
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack {
		if m.inSession && (m.gameState.GameOver || m.gameState.Paused) {
			m.backToMenu = true
		}
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	switch {
	case m.gameState.GameOver && !m.scoreSaved:
		m.recordResult()
		m.scoreSaved = true
	case !m.gameState.GameOver:
		m.scoreSaved = false
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordResult stores the finished game in the score history.
func (m Model) recordResult() {
	if m.backend == nil || m.gameState.Score <= 0 {
		return
	}
	mode, err := engine.ParseMode(m.gameState.Mode)
	if err != nil {
		mode = engine.ModeNormal
	}
	err = m.backend.RecordGame(storage.GameResult{
		GameID: m.game.ID(),
		Mode:   mode,
		Score:  m.gameState.Score,
		Lines:  m.gameState.Lines,
		Level:  m.gameState.Level,
	})
	if err != nil && !errors.Is(err, storage.ErrNoHistory) && m.logger != nil {
		m.logger.Warn("could not record game", "game", m.game.ID(), "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, backend *storage.Backend, cfg core.RuntimeConfig) error {
	model := NewModel(game, backend, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
