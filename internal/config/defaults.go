package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the built-in configuration. It matches the
// embedded defaults/blocks.yaml and is used when that file cannot be parsed.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Board: BoardConfig{
			Rows:         20,
			Cols:         10,
			SpawnX:       3,
			SpawnY:       -3,
			PreviewCount: 3,
		},
		Scoring: ScoringConfig{
			LinesPerLevel:  10,
			SoftDropPoints: 1,
			HardDropPoints: 2,
		},
		Timing: TimingConfig{
			FallIntervalMS:    400,
			BaseTime:          0.9,
			TimeDecrement:     0.007,
			MinFallIntervalMS: 50,
			TimedModeSeconds:  120,
		},
		Storage: StorageConfig{
			Backend:       BackendSQLite,
			DBPath:        "~/.arcade/blocks.db",
			HighScoreFile: "~/.arcade/blocks_highscores.txt",
		},
	}
}
