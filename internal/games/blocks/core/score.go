package core

import (
	"fmt"
	"maps"
	"sync"
)

// Mode selects the active high-score slot and whether a countdown runs.
type Mode int

const (
	ModeNormal Mode = iota
	ModeTimed
	ModeBottomsUp
)

// String returns the persisted key for the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeTimed:
		return "timed"
	case ModeBottomsUp:
		return "bottomsUp"
	default:
		return "unknown"
	}
}

// Modes returns every mode in display order.
func Modes() []Mode {
	return []Mode{ModeNormal, ModeTimed, ModeBottomsUp}
}

// ParseMode converts a persisted key back into a Mode.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes() {
		if m.String() == s {
			return m, nil
		}
	}
	return ModeNormal, fmt.Errorf("core: unknown mode %q", s)
}

// HighScoreStore persists one high score per mode. Save never lowers a
// stored score: implementations keep the per-mode maximum, so several Score
// values may share one store.
type HighScoreStore interface {
	Load() (map[Mode]int, error)
	Save(scores map[Mode]int) error
}

// Logger is the subset of a structured logger the engine uses to record
// swallowed persistence failures.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
}

// ScoreOption configures a Score.
type ScoreOption func(*Score)

// WithLinesPerLevel overrides how many cleared lines advance one level.
func WithLinesPerLevel(n int) ScoreOption {
	return func(s *Score) {
		if n > 0 {
			s.linesPerLevel = n
		}
	}
}

// WithLogger attaches a logger for persistence failures.
func WithLogger(l Logger) ScoreOption {
	return func(s *Score) {
		s.logger = l
	}
}

// WithLevelListener registers fn to be called whenever the level changes.
func WithLevelListener(fn func(oldLevel, newLevel int)) ScoreOption {
	return func(s *Score) {
		s.onLevelChange = fn
	}
}

// Score tracks the running score, cleared lines, level and per-mode highs.
// Persistence is best effort: load and save errors fall back to in-memory
// values and are never returned.
type Score struct {
	store         HighScoreStore
	logger        Logger
	onLevelChange func(oldLevel, newLevel int)
	linesPerLevel int

	score int
	lines int
	level int
	mode  Mode
	highs map[Mode]int
}

// NewScore creates a score tracker and loads high scores from store.
// A nil store keeps high scores in memory only.
func NewScore(store HighScoreStore, opts ...ScoreOption) *Score {
	s := &Score{
		store:         store,
		linesPerLevel: 10,
		level:         1,
		highs:         make(map[Mode]int, len(Modes())),
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, m := range Modes() {
		s.highs[m] = 0
	}
	s.load()
	return s
}

func (s *Score) load() {
	if s.store == nil {
		return
	}
	loaded, err := s.store.Load()
	if err != nil {
		s.debug("high score load failed", "error", err)
		return
	}
	for _, m := range Modes() {
		if v, ok := loaded[m]; ok && v > 0 {
			s.highs[m] = v
		}
	}
}

func (s *Score) save() {
	if s.store == nil {
		return
	}
	if err := s.store.Save(maps.Clone(s.highs)); err != nil {
		s.debug("high score save failed", "mode", s.mode, "error", err)
	}
}

func (s *Score) debug(msg string, keyvals ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, keyvals...)
	}
}

// Add increases the score. A new high for the active mode is stored and
// saved immediately.
func (s *Score) Add(points int) {
	s.score += points
	if s.score > s.highs[s.mode] {
		s.highs[s.mode] = s.score
		s.save()
	}
}

// AddLines adds cleared lines and recomputes the level. It reports whether
// the level changed. Non-positive counts are ignored.
func (s *Score) AddLines(n int) bool {
	if n <= 0 {
		return false
	}
	s.lines += n
	newLevel := 1 + s.lines/s.linesPerLevel
	if newLevel == s.level {
		return false
	}
	old := s.level
	s.level = newLevel
	if s.onLevelChange != nil {
		s.onLevelChange(old, newLevel)
	}
	return true
}

// Reset zeroes score and lines and returns to level 1. High scores are kept.
func (s *Score) Reset() {
	old := s.level
	s.score = 0
	s.lines = 0
	s.level = 1
	if old != 1 && s.onLevelChange != nil {
		s.onLevelChange(old, 1)
	}
}

// SetMode switches the exposed high-score slot. The running score is kept.
func (s *Score) SetMode(m Mode) {
	s.mode = m
}

// SetLevelListener replaces the level-change hook.
func (s *Score) SetLevelListener(fn func(oldLevel, newLevel int)) {
	s.onLevelChange = fn
}

// Mode returns the active mode.
func (s *Score) Mode() Mode {
	return s.mode
}

// Value returns the running score.
func (s *Score) Value() int {
	return s.score
}

// HighScore returns the high score of the active mode.
func (s *Score) HighScore() int {
	return s.highs[s.mode]
}

// HighScores returns a copy of every mode's high score.
func (s *Score) HighScores() map[Mode]int {
	return maps.Clone(s.highs)
}

// Lines returns the lines cleared this game.
func (s *Score) Lines() int {
	return s.lines
}

// Level returns the current level.
func (s *Score) Level() int {
	return s.level
}

// MemoryStore is an in-memory HighScoreStore. Hosts fall back to it when no
// persistent store is available. It is safe for concurrent use; the
// exported fields may be set before the store is shared.
type MemoryStore struct {
	mu      sync.Mutex
	Scores  map[Mode]int
	Saves   int
	LoadErr error
	SaveErr error
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{Scores: make(map[Mode]int)}
}

// Load returns a copy of the stored scores.
func (m *MemoryStore) Load() (map[Mode]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return maps.Clone(m.Scores), nil
}

// Save raises each stored score to the saved one and counts the write.
func (m *MemoryStore) Save(scores map[Mode]int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Saves++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	if m.Scores == nil {
		m.Scores = make(map[Mode]int, len(scores))
	}
	for mode, v := range scores {
		m.Scores[mode] = max(m.Scores[mode], v)
	}
	return nil
}
