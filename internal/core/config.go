package core

// RuntimeConfig contains configuration passed to a session at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frame steps per second (default 60)
	Seed     int64 // Level generator seed
	Level    int   // 1-based level index
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
		Level:    1,
	}
}

// GameState is the snapshot a session exposes to the platform each tick.
type GameState struct {
	Level            int
	TimeLeft         float64 // Seconds remaining on the countdown
	MagnetsPlaced    int     // Successful spawns since the level started
	GameOver         bool
	Won              bool
	Reason           string // Outcome reason ("Time's Up!", ...)
	Paused           bool
	ShowInstructions bool
}

// Ended reports whether the level has a latched outcome.
func (s GameState) Ended() bool {
	return s.GameOver || s.Won
}

// StepResult is returned by Session.Step after each frame.
type StepResult struct {
	State GameState
}
