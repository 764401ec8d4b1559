package core

// RuntimeConfig contains configuration passed to the sandbox at initialization.
// The sandbox uses this to adapt to screen size and for deterministic worldgen.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic world generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState reports the sandbox status to the platform after each tick.
type GameState struct {
	Blocks  int  // Blocks currently in the world
	Placed  int  // Blocks placed this session
	Removed int  // Blocks removed this session
	Quit    bool // Whether the user requested to leave the sandbox
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState
}
