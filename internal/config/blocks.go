// Package config loads the block game configuration from YAML files, the
// embedded defaults and environment overrides.
package config

import (
	"errors"
	"fmt"
	"time"

	blocks "github.com/vovakirdan/tui-blocks/internal/games/blocks/core"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

// BlocksConfig contains all configuration for the block game.
type BlocksConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Scoring ScoringConfig `yaml:"scoring"`
	Timing  TimingConfig  `yaml:"timing"`
	Storage StorageConfig `yaml:"storage"`
}

// BoardConfig defines the playfield.
type BoardConfig struct {
	Rows         int `yaml:"rows"`
	Cols         int `yaml:"cols"`
	SpawnX       int `yaml:"spawn_x"`
	SpawnY       int `yaml:"spawn_y"` // negative spawns partly above the board
	PreviewCount int `yaml:"preview_count"`
}

// ScoringConfig defines points and level progression.
type ScoringConfig struct {
	LinesPerLevel  int `yaml:"lines_per_level"`
	SoftDropPoints int `yaml:"soft_drop_points"`
	HardDropPoints int `yaml:"hard_drop_points"` // per row travelled
}

// TimingConfig defines the gravity curve and the timed-mode length.
type TimingConfig struct {
	FallIntervalMS    int     `yaml:"fall_interval_ms"`
	BaseTime          float64 `yaml:"base_time"`
	TimeDecrement     float64 `yaml:"time_decrement"`
	MinFallIntervalMS int     `yaml:"min_fall_interval_ms"`
	TimedModeSeconds  int     `yaml:"timed_mode_seconds"`
}

// StorageConfig selects where high scores and finished games are kept.
type StorageConfig struct {
	Backend       string `yaml:"backend"` // "sqlite", "file" or "memory"
	DBPath        string `yaml:"db_path"`
	HighScoreFile string `yaml:"highscore_file"`
}

// Storage backends.
const (
	BackendSQLite = storage.BackendSQLite
	BackendFile   = storage.BackendFile
	BackendMemory = storage.BackendMemory
)

// Validate reports every problem with the configuration at once.
func (c BlocksConfig) Validate() error {
	var errs []error
	if c.Board.Rows <= 0 || c.Board.Cols <= 0 {
		errs = append(errs, fmt.Errorf("board must be at least 1x1, got %dx%d", c.Board.Rows, c.Board.Cols))
	}
	if c.Board.SpawnX < 0 || c.Board.SpawnX+blocks.BrickSize > c.Board.Cols {
		errs = append(errs, fmt.Errorf("spawn_x %d leaves no room for a %d-wide brick on %d columns",
			c.Board.SpawnX, blocks.BrickSize, c.Board.Cols))
	}
	if c.Board.PreviewCount < 0 {
		errs = append(errs, fmt.Errorf("preview_count must not be negative, got %d", c.Board.PreviewCount))
	}
	if c.Scoring.LinesPerLevel <= 0 {
		errs = append(errs, fmt.Errorf("lines_per_level must be positive, got %d", c.Scoring.LinesPerLevel))
	}
	if c.Timing.FallIntervalMS <= 0 || c.Timing.MinFallIntervalMS <= 0 {
		errs = append(errs, errors.New("fall intervals must be positive"))
	}
	if c.Timing.BaseTime <= 0 {
		errs = append(errs, fmt.Errorf("base_time must be positive, got %g", c.Timing.BaseTime))
	}
	if c.Timing.TimedModeSeconds <= 0 {
		errs = append(errs, fmt.Errorf("timed_mode_seconds must be positive, got %d", c.Timing.TimedModeSeconds))
	}
	switch c.Storage.Backend {
	case BackendSQLite, BackendFile, BackendMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown storage backend %q", c.Storage.Backend))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid blocks config: %w", err)
	}
	return nil
}

// Engine converts the file configuration into the engine's Config.
func (c BlocksConfig) Engine() blocks.Config {
	return blocks.Config{
		Rows:           c.Board.Rows,
		Cols:           c.Board.Cols,
		Spawn:          blocks.Point{X: c.Board.SpawnX, Y: c.Board.SpawnY},
		PreviewCount:   c.Board.PreviewCount,
		LinesPerLevel:  c.Scoring.LinesPerLevel,
		SoftDropPoints: c.Scoring.SoftDropPoints,
		HardDropPoints: c.Scoring.HardDropPoints,
		Timing: blocks.TimingConfig{
			FallInterval:    time.Duration(c.Timing.FallIntervalMS) * time.Millisecond,
			BaseTime:        c.Timing.BaseTime,
			TimeDecrement:   c.Timing.TimeDecrement,
			MinFallInterval: time.Duration(c.Timing.MinFallIntervalMS) * time.Millisecond,
			TimedDuration:   time.Duration(c.Timing.TimedModeSeconds) * time.Second,
		},
	}
}

// OpenStorage opens the configured storage backend.
func (c BlocksConfig) OpenStorage() (*storage.Backend, error) {
	return storage.OpenBackend(c.Storage.Backend, c.Storage.DBPath, c.Storage.HighScoreFile)
}
