package core

import "time"

// Config holds the rule constants for one board. Hosts build it from the
// YAML configuration; DefaultConfig matches the classic 10x20 layout.
type Config struct {
	Rows         int
	Cols         int
	Spawn        Point // offset of a freshly spawned brick
	PreviewCount int

	LinesPerLevel  int
	SoftDropPoints int // per successful user soft-drop step
	HardDropPoints int // per row travelled by a hard drop

	Timing TimingConfig
}

// TimingConfig parameterizes the fall-speed curve and the timed mode.
type TimingConfig struct {
	FallInterval    time.Duration // level 1 drop interval
	BaseTime        float64       // seconds, base of the decay curve
	TimeDecrement   float64       // seconds shaved off per level
	MinFallInterval time.Duration
	TimedDuration   time.Duration // countdown length in timed mode
}

// DefaultConfig returns the standard rules.
func DefaultConfig() Config {
	return Config{
		Rows:           20,
		Cols:           10,
		Spawn:          Point{X: 3, Y: -3},
		PreviewCount:   3,
		LinesPerLevel:  10,
		SoftDropPoints: 1,
		HardDropPoints: 2,
		Timing:         DefaultTimingConfig(),
	}
}

// DefaultTimingConfig returns the standard fall-speed curve.
func DefaultTimingConfig() TimingConfig {
	return TimingConfig{
		FallInterval:    400 * time.Millisecond,
		BaseTime:        0.9,
		TimeDecrement:   0.007,
		MinFallInterval: 50 * time.Millisecond,
		TimedDuration:   2 * time.Minute,
	}
}
