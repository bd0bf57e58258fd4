package configs

import "time"

// Session controls the lifetime of in-memory wizard sessions.
type Session struct {
	// TTL is the idle time after which a session is evicted.
	TTL time.Duration `env:"TTL" envDefault:"2h"`
	// SweepInterval is how often idle sessions are looked for.
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"5m"`
}
