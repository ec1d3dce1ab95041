package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/potable")
	t.Setenv("TOKEN_KEY", "secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8443", cfg.Addr)
	assert.Equal(t, []byte("secret"), cfg.TokenKey)
	assert.Equal(t, 1.0, cfg.RateLimitRPS)
	assert.Equal(t, 3, cfg.RateLimitBurst)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.False(t, cfg.TLS())
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("POTABLE_ADDR", ":9000")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "10")
	t.Setenv("SHUTDOWN_TIMEOUT", "2s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TLS_CERT", "server.crt")
	t.Setenv("TLS_KEY", "server.key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.True(t, cfg.TLS())
}

func TestLoadRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("TOKEN_KEY", "secret")
	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingDatabaseURL)

	t.Setenv("DATABASE_URL", "postgres://localhost/potable")
	t.Setenv("TOKEN_KEY", "")
	_, err = Load()
	assert.ErrorIs(t, err, ErrMissingTokenKey)
}

func TestLoadInvalidNumbers(t *testing.T) {
	setRequired(t)
	t.Setenv("RATE_LIMIT_BURST", "many")
	_, err := Load()
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)
	_, err = ParseLevel("loud")
	assert.Error(t, err)
}
