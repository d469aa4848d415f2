package blocks

import (
	"strings"
	"time"

	engine "github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StateTimeUp      GameStateType = "time_up"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	Seed         int64
	Mode         string
	Score        int
	HighScore    int
	Lines        int
	Level        int
	LastClear    int    // lines removed by the most recent lock
	Active       string // active brick letter, "" before the first spawn
	X, Y         int
	Rotation     int
	Held         string
	Next         []string
	Board        string // background rows joined by '/', one digit per cell
	FallInterval time.Duration
	Remaining    time.Duration
	State        GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver && g.timeUp:
		state = StateTimeUp
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	board := g.ctrl.Board()
	score := g.ctrl.Score()

	snap := Snapshot{
		Tick:         g.tick,
		Seed:         g.seed,
		Mode:         g.mode.String(),
		Score:        score.Value(),
		HighScore:    score.HighScore(),
		Lines:        score.Lines(),
		Level:        score.Level(),
		LastClear:    g.lastClear,
		X:            board.Offset().X,
		Y:            board.Offset().Y,
		Rotation:     board.Rotation(),
		Board:        encodeMatrix(board.Matrix()),
		FallInterval: g.drops.Interval(),
		Remaining:    g.Remaining(),
		State:        state,
	}
	if b := board.Active(); b != nil {
		snap.Active = b.Kind().String()
	}
	if b := board.Held(); b != nil {
		snap.Held = b.Kind().String()
	}
	for _, m := range g.ctrl.ViewData().Next {
		snap.Next = append(snap.Next, kindOf(m).String())
	}
	return snap
}

// kindOf returns the kind painted into a preview matrix.
func kindOf(m engine.Matrix) engine.Kind {
	for _, row := range m {
		for _, v := range row {
			if v != 0 {
				return engine.Kind(v)
			}
		}
	}
	return 0
}

func encodeMatrix(m engine.Matrix) string {
	var sb strings.Builder
	for r, row := range m {
		if r > 0 {
			sb.WriteByte('/')
		}
		for _, v := range row {
			sb.WriteByte(byte('0' + v))
		}
	}
	return sb.String()
}
