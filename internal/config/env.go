package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envOverrides lists the variables that may override file settings.
// Unset variables leave the pointer nil and the file value untouched.
type envOverrides struct {
	Rows           *int    `env:"BLOCKS_ROWS"`
	Cols           *int    `env:"BLOCKS_COLS"`
	PreviewCount   *int    `env:"BLOCKS_PREVIEW_COUNT"`
	LinesPerLevel  *int    `env:"BLOCKS_LINES_PER_LEVEL"`
	FallIntervalMS *int    `env:"BLOCKS_FALL_INTERVAL_MS"`
	TimedSeconds   *int    `env:"BLOCKS_TIMED_SECONDS"`
	Backend        *string `env:"BLOCKS_STORE"`
	DBPath         *string `env:"BLOCKS_DB_PATH"`
	HighScoreFile  *string `env:"BLOCKS_HIGHSCORE_FILE"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}

// ApplyEnv overrides cfg with any BLOCKS_* variables that are set.
func ApplyEnv(cfg *BlocksConfig) error {
	var o envOverrides
	if err := ParseEnv(&o); err != nil {
		return err
	}

	setInt(&cfg.Board.Rows, o.Rows)
	setInt(&cfg.Board.Cols, o.Cols)
	setInt(&cfg.Board.PreviewCount, o.PreviewCount)
	setInt(&cfg.Scoring.LinesPerLevel, o.LinesPerLevel)
	setInt(&cfg.Timing.FallIntervalMS, o.FallIntervalMS)
	setInt(&cfg.Timing.TimedModeSeconds, o.TimedSeconds)
	setString(&cfg.Storage.Backend, o.Backend)
	setString(&cfg.Storage.DBPath, o.DBPath)
	setString(&cfg.Storage.HighScoreFile, o.HighScoreFile)
	return nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
