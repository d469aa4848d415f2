// Package blocks adapts the falling-block engine to the arcade platform.
// The engine runs on a virtual clock derived from the tick counter, so a
// game replayed with the same seed and inputs ends in the same state.
package blocks

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	engine "github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

// Game ids, one per mode.
const (
	IDNormal    = "blocks"
	IDTimed     = "blocks_timed"
	IDBottomsUp = "blocks_bottomsup"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

var (
	highScoreStore engine.HighScoreStore
	logger         *log.Logger
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset by name. Unknown names
// fall back to normal.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		p = config.DifficultyNormal
	}
	difficultyPreset = p
}

// SetHighScoreStore sets the store new games persist high scores to.
// Without one each game keeps its highs in memory.
func SetHighScoreStore(s engine.HighScoreStore) {
	highScoreStore = s
}

// SetLogger sets the logger used for config fallbacks and swallowed
// persistence errors. A nil logger disables logging.
func SetLogger(l *log.Logger) {
	logger = l
}

func init() {
	registry.Register(IDNormal, func() registry.Game {
		return New(engine.ModeNormal)
	})
	registry.Register(IDTimed, func() registry.Game {
		return New(engine.ModeTimed)
	})
	registry.Register(IDBottomsUp, func() registry.Game {
		return New(engine.ModeBottomsUp)
	})
}

// epoch anchors the virtual clock.
var epoch = time.Unix(0, 0)

// Game implements registry.Game for one mode of the block puzzle.
type Game struct {
	mode  engine.Mode
	store engine.HighScoreStore

	cfg   config.BlocksConfig
	rules engine.Config

	ctrl  *engine.Controller
	modes *engine.ModeHandler
	drops *engine.DropScheduler

	tick     uint64
	tickRate int
	seed     int64

	screenW int
	screenH int

	gameOver  bool
	newHigh   bool
	timeUp    bool
	paused    bool
	tooSmall  bool
	lastClear int
}

// New creates a game for mode m.
func New(m engine.Mode) *Game {
	store := highScoreStore
	if store == nil {
		store = engine.NewMemoryStore()
	}
	return &Game{mode: m, store: store}
}

// NewWithStore creates a game for mode m that persists highs to store.
func NewWithStore(m engine.Mode, store engine.HighScoreStore) *Game {
	if store == nil {
		store = engine.NewMemoryStore()
	}
	return &Game{mode: m, store: store}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return IDForMode(g.mode)
}

// IDForMode maps a mode to its registry id.
func IDForMode(m engine.Mode) string {
	switch m {
	case engine.ModeTimed:
		return IDTimed
	case engine.ModeBottomsUp:
		return IDBottomsUp
	default:
		return IDNormal
	}
}

// ModeForID maps a registry id back to its mode.
func ModeForID(id string) (engine.Mode, bool) {
	switch id {
	case IDNormal:
		return engine.ModeNormal, true
	case IDTimed:
		return engine.ModeTimed, true
	case IDBottomsUp:
		return engine.ModeBottomsUp, true
	default:
		return engine.ModeNormal, false
	}
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.mode {
	case engine.ModeTimed:
		return "Blocks (Timed)"
	case engine.ModeBottomsUp:
		return "Blocks (Bottoms Up)"
	default:
		return "Blocks"
	}
}

// Description returns a one-line summary for listings.
func (g *Game) Description() string {
	switch g.mode {
	case engine.ModeTimed:
		return "Score as much as you can before the clock runs out"
	case engine.ModeBottomsUp:
		return "Classic rules, drawn upside down"
	default:
		return "Stack falling bricks and clear full lines"
	}
}

// Mode returns the game's mode.
func (g *Game) Mode() engine.Mode {
	return g.mode
}

// Reset loads the configuration and starts a fresh game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = loadConfig()
	g.rules = g.cfg.Engine()

	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.seed = cfg.Seed
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.newHigh = false
	g.timeUp = false
	g.paused = false
	g.tooSmall = false
	g.lastClear = 0

	g.drops = engine.NewDropScheduler(engine.FallInterval(1, g.rules.Timing))

	opts := []engine.ScoreOption{
		engine.WithLinesPerLevel(g.rules.LinesPerLevel),
		engine.WithLevelListener(g.onLevelChange),
	}
	if logger != nil {
		opts = append(opts, engine.WithLogger(logger))
	}
	score := engine.NewScore(g.store, opts...)

	gen := engine.NewBagGenerator(rand.New(rand.NewSource(cfg.Seed)))
	g.ctrl = engine.NewController(g.rules, gen, score)
	g.modes = engine.NewModeHandler(g.rules.Timing.TimedDuration, func(m engine.Mode) {
		g.ctrl.SetMode(m)
		g.ctrl.ClearHoldBox()
	})
	g.modes.Start(g.mode, g.now())
	g.drops.Start()

	g.checkSize()

	if g.ctrl.GameOver() {
		g.endGame(false)
	}
}

func loadConfig() config.BlocksConfig {
	cfg, err := config.Load(configPath, difficultyPreset)
	if err != nil {
		if logger != nil {
			logger.Warn("using default blocks config", "error", err)
		}
		return config.DefaultBlocksConfig()
	}
	return cfg
}

// Resize adapts the layout to a new screen size without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkSize()
}

// checkSize suspends play while the screen cannot fit the layout.
func (g *Game) checkSize() {
	l := g.layout()
	small := g.screenW < l.width || g.screenH < l.height
	if small == g.tooSmall {
		return
	}
	g.tooSmall = small
	g.syncClock(g.now())
}

// syncClock runs gravity and the countdown only while the game is live:
// not over, not paused and not squeezed into a too-small window.
func (g *Game) syncClock(now time.Time) {
	if g.drops == nil || g.modes == nil {
		return
	}
	if g.gameOver || g.paused || g.tooSmall {
		g.drops.Stop()
		g.modes.Pause(now)
		return
	}
	g.drops.Start()
	g.modes.Resume(now)
}

// now is the virtual time after the current tick.
func (g *Game) now() time.Time {
	return epoch.Add(time.Duration(g.tick) * g.tickDuration())
}

func (g *Game) tickDuration() time.Duration {
	return time.Second / time.Duration(g.tickRate)
}

func (g *Game) onLevelChange(_, newLevel int) {
	g.drops.SetInterval(engine.FallInterval(newLevel, g.rules.Timing))
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	now := g.now()

	if input.Has(core.ActionRestart) && g.gameOver {
		g.restart(now)
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.gameOver {
		g.togglePause(now)
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	locked := false
	for _, a := range input.Ordered() {
		switch a {
		case core.ActionLeft:
			g.ctrl.MoveLeft(engine.SourceUser)
		case core.ActionRight:
			g.ctrl.MoveRight(engine.SourceUser)
		case core.ActionRotate:
			g.ctrl.Rotate(engine.SourceUser)
		case core.ActionHold:
			g.ctrl.Hold(engine.SourceUser)
		case core.ActionSoftDrop:
			locked = g.handleDown(g.ctrl.MoveDown(engine.SourceUser)) || locked
		case core.ActionHardDrop:
			locked = g.handleDown(g.ctrl.HardDrop(engine.SourceUser)) || locked
		}
		if g.gameOver {
			break
		}
	}

	for n := g.drops.Advance(g.tickDuration()); n > 0 && !g.gameOver; n-- {
		locked = g.handleDown(g.ctrl.MoveDown(engine.SourceTimer)) || locked
	}

	if !g.gameOver && g.modes.TimeUp(now) {
		g.timeUp = true
		score := g.ctrl.Score()
		g.endGame(score.Value() > 0 && score.Value() == score.HighScore())
	}

	return core.StepResult{State: g.State(), Locked: locked}
}

// handleDown records the outcome of a downward move and reports whether
// the brick was locked.
func (g *Game) handleDown(d engine.DownData) bool {
	if !d.Locked {
		return false
	}
	if d.ClearRow != nil {
		g.lastClear = d.ClearRow.LinesRemoved
	}
	if d.GameOver {
		g.endGame(d.NewHigh)
	}
	return true
}

func (g *Game) endGame(newHigh bool) {
	g.gameOver = true
	g.newHigh = newHigh
	g.syncClock(g.now())
}

func (g *Game) togglePause(now time.Time) {
	g.paused = !g.paused
	g.syncClock(now)
}

// restart begins a new game with the same rules, continuing the brick
// sequence of the current generator.
func (g *Game) restart(now time.Time) {
	g.ctrl.CreateNewGame()
	g.gameOver = false
	g.newHigh = false
	g.timeUp = false
	g.paused = false
	g.lastClear = 0

	g.drops.Reset()
	g.drops.SetInterval(engine.FallInterval(1, g.rules.Timing))
	g.modes.RestartForNewGame(now)
	g.syncClock(now)

	if g.ctrl.GameOver() {
		g.endGame(false)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.ctrl == nil {
		return core.GameState{Mode: g.mode.String()}
	}
	score := g.ctrl.Score()
	return core.GameState{
		Score:    score.Value(),
		Lines:    score.Lines(),
		Level:    score.Level(),
		Mode:     g.mode.String(),
		GameOver: g.gameOver,
		NewHigh:  g.newHigh,
		Paused:   g.paused,
	}
}

// Remaining returns the timed-mode countdown remainder, or zero in the
// untimed modes.
func (g *Game) Remaining() time.Duration {
	if g.modes == nil || !g.modes.Timed() {
		return 0
	}
	return g.modes.Remaining(g.now())
}
