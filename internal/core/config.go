package core

import "time"

// RuntimeConfig contains configuration passed to hosts at startup.
// Hosts use this to size the viewport and seed the simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	// CellW and CellH are the world units covered by one terminal cell.
	// At the defaults an 80 column terminal is 1280 units wide and 24 rows
	// of world are 720 units tall.
	CellW float32
	CellH float32

	// HoldWindow is how long a key counts as held after its last key event.
	// Terminals report presses and auto-repeats but never releases.
	HoldWindow time.Duration

	// Bell rings the terminal bell when a sound effect plays.
	Bell bool
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		Seed:       0, // 0 means use current time in platform layer
		CellW:      16,
		CellH:      30,
		HoldWindow: 150 * time.Millisecond,
	}
}
