package configs

import "time"

// Webhook configures the campaign automation notification. An empty URL
// disables delivery.
type Webhook struct {
	URL     string        `env:"URL"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}
