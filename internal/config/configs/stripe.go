package configs

// Stripe configures the payment gateway. An empty SecretKey disables
// payments; requests then fail with a "not configured" error.
type Stripe struct {
	SecretKey string `env:"SECRET_KEY"`
	// APIURL overrides the API endpoint, e.g. for stripe-mock.
	APIURL string `env:"API_URL"`
}

// Configured reports whether a secret key is present.
func (c Stripe) Configured() bool {
	return c.SecretKey != ""
}
