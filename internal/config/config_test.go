package config

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soundcamps/internal/config/configs"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.False(t, cfg.Psql.Enabled)
	assert.False(t, cfg.Stripe.Configured())
	assert.False(t, cfg.Spotify.Configured())
	assert.Equal(t, "https://api.spotify.com/v1", cfg.Spotify.APIURL)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Empty(t, cfg.Webhook.URL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("PSQL_ENABLED", "true")
	t.Setenv("PSQL_ADDRESS", "postgres://u:p@db:5432/camps?sslmode=disable")
	t.Setenv("SPOTIFY_CLIENT_ID", "id")
	t.Setenv("SPOTIFY_CLIENT_SECRET", "secret")
	t.Setenv("SPOTIFY_RATE_LIMIT", "2.5")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("WEBHOOK_URL", "https://hooks.example.com/campaign")
	t.Setenv("SESSION_TTL", "30m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.True(t, cfg.Psql.Enabled)
	assert.Equal(t, "db:5432", cfg.Psql.Addr.Host)
	assert.True(t, cfg.Spotify.Configured())
	assert.Equal(t, 2.5, cfg.Spotify.RateLimit)
	assert.True(t, cfg.Stripe.Configured())
	assert.Equal(t, "https://hooks.example.com/campaign", cfg.Webhook.URL)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
}

func TestLoggerFallbacks(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")
	t.Setenv("LOG_FORMAT", "xml")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
	assert.Equal(t, "text", cfg.Log.SlogFormat())
}

func TestLoggerHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(configs.Logger{Level: "warn", Format: "json"}.Handler(&buf))

	logger.Info("dropped")
	logger.Warn("kept", slog.String("k", "v"))

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"msg":"kept"`)
	assert.Contains(t, buf.String(), `"k":"v"`)
}
