package engine

// Config holds all engine configuration, injected from main.
type Config struct {
	APIKey            string
	APIKeyFallback    string // secondary key, tried when the primary is rejected
	SearchQPS         float64
	SearchBurst       int
	DefaultMaxResults int64
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages.
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	if c.SearchQPS <= 0 {
		c.SearchQPS = 8
	}
	if c.SearchBurst <= 0 {
		c.SearchBurst = 4
	}
	if c.DefaultMaxResults <= 0 {
		c.DefaultMaxResults = 10
	}
	cfg = c
	Cfg = &cfg
}
