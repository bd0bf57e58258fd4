package config

import (
	"github.com/caarlos0/env/v11"

	"soundcamps/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// defaults. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log record.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP configs.HTTP   `envPrefix:"HTTP_"`
	Log  configs.Logger `envPrefix:"LOG_"`

	// Psql configures the optional PostgreSQL launch ledger.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	Spotify configs.Spotify `envPrefix:"SPOTIFY_"`
	Stripe  configs.Stripe  `envPrefix:"STRIPE_"`
	Webhook configs.Webhook `envPrefix:"WEBHOOK_"`
	Session configs.Session `envPrefix:"SESSION_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
