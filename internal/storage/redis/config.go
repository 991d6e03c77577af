package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Profile namespaces the records of one device profile
	Profile string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// SessionTTL expires the game session record; zero keeps it forever.
	// The ledger never expires.
	SessionTTL time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		Profile:      "default",
		PoolSize:     4,
		MinIdleConns: 1,
		SessionTTL:   48 * time.Hour,
	}
}
