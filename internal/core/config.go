package core

import "time"

// RuntimeConfig contains per-run settings passed to an engine session.
type RuntimeConfig struct {
	Seed int64 // RNG seed for deterministic color selection, 0 = time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Seed: 0, // 0 means use current time
	}
}

// ResolveSeed returns the configured seed, or a time-based one when unset.
func (c RuntimeConfig) ResolveSeed() int64 {
	if c.Seed == 0 {
		return time.Now().UnixNano()
	}
	return c.Seed
}
