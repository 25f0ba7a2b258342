package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
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

// TickDuration is the simulated time covered by one Step.
func (c RuntimeConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	Phase    string // Name of the controller phase, for display and logs
	GameOver bool   // Whether the current run has ended
	Paused   bool   // Whether the game is paused
}

// RunLog describes one finished run: everything needed to replay it
// plus the outcome it produced.
type RunLog struct {
	Seed     int64         // Seed the run's session was built with
	TickRate int           // Ticks per second the run was simulated at
	Ticks    int           // Steps taken by the session up to and including the ending tick
	Jumps    []int         // Session tick indices at which jump was pressed
	Score    int           // Score when the run ended
	Reason   string        // Why the run ended
	Duration time.Duration // Run time from start press to end
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Ended *RunLog // Set only on the tick a run ends
}
