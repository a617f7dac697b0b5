package redisstore

import "time"

// Config holds Redis connection settings.
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379/0)
	URL string

	PoolSize     int
	MinIdleConns int

	// Timeout bounds every backend call.
	Timeout time.Duration

	// Prefix namespaces all keys so several deployments can share a server.
	Prefix string
}

// DefaultConfig returns sensible defaults for Redis configuration.
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379/0",
		PoolSize:     10,
		MinIdleConns: 2,
		Timeout:      3 * time.Second,
		Prefix:       "gridmatch",
	}
}
