package configs

import "time"

// Spotify configures the music catalog client. Without ClientID and
// ClientSecret search is disabled.
type Spotify struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	TokenURL     string `env:"TOKEN_URL" envDefault:"https://accounts.spotify.com/api/token"`
	APIURL       string `env:"API_URL" envDefault:"https://api.spotify.com/v1"`
	// RateLimit is the sustained number of catalog requests per second.
	RateLimit float64       `env:"RATE_LIMIT" envDefault:"5"`
	RateBurst int           `env:"RATE_BURST" envDefault:"10"`
	Timeout   time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

// Configured reports whether credentials are present.
func (c Spotify) Configured() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}
