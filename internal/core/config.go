package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the read-only status a game reports to the platform.
type GameState struct {
	Score     int    // Current score
	HighScore int    // Best score this process has seen for the game
	Length    int    // Snake length, for run records
	Phase     string // Lifecycle phase name
	InMenu    bool   // Waiting for a start action
	GameOver  bool   // Session ended by a collision
	Reason    string // What ended the session, empty while running
}

// StepResult is returned by Game.Step() after each simulation frame.
type StepResult struct {
	State GameState
	// Ended is true only on the frame the session ended.
	Ended bool
}
