package core

// RuntimeConfig is handed to games on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the platform pick one from the clock
}

// DefaultConfig returns an 80x24 screen at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is what the platform needs to know about a running game.
type GameState struct {
	Score    int
	Lines    int
	Level    int
	Mode     string
	GameOver bool
	NewHigh  bool
	Paused   bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
	// Locked is set when a piece was locked into the board during this tick.
	Locked bool
}
