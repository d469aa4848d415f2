package config

import "fmt"

// DifficultyPreset is a named adjustment of the gravity curve.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty accepts an empty string as normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyBlocksPreset adjusts the timing section for a difficulty preset.
// Normal keeps the configured values.
func ApplyBlocksPreset(cfg *BlocksConfig, preset DifficultyPreset) error {
	switch preset {
	case "", DifficultyNormal:
	case DifficultyEasy:
		cfg.Timing.FallIntervalMS = cfg.Timing.FallIntervalMS * 3 / 2
		cfg.Timing.TimeDecrement = cfg.Timing.TimeDecrement * 5 / 7
	case DifficultyHard:
		cfg.Timing.FallIntervalMS = cfg.Timing.FallIntervalMS * 5 / 8
		cfg.Timing.TimeDecrement = cfg.Timing.TimeDecrement * 10 / 7
	default:
		return fmt.Errorf("config: unknown difficulty %q", preset)
	}
	return nil
}
