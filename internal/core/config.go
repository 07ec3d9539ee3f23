package core

// RuntimeConfig contains configuration passed to the platform at start.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default 10)
	Seed     int64 // RNG seed for apple placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 10,
		Seed:     0, // 0 means use current time in platform layer
	}
}
