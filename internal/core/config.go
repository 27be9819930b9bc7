package core

// RuntimeConfig contains host-level settings passed to a play session.
type RuntimeConfig struct {
	TickRate int   // Frames per second for hosts that schedule their own ticks
	Seed     int64 // RNG seed for deterministic pipe placement (0 = time-based)
	Record   bool  // Save the session's replay when it ends
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0,
	}
}
