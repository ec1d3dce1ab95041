package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	ErrMissingDatabaseURL = errors.New("DATABASE_URL is required")
	ErrMissingTokenKey    = errors.New("TOKEN_KEY is required")
)

// Config holds the environment-driven settings of the server.
type Config struct {
	Addr            string
	DatabaseURL     string
	TokenKey        []byte
	TLSCert         string
	TLSKey          string
	RateLimitRPS    float64
	RateLimitBurst  int
	LogLevel        slog.Level
	ShutdownTimeout time.Duration
	StaticDir       string
}

// Load reads configuration from environment variables, after loading .env
// when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Addr:            ":8443",
		RateLimitRPS:    1,
		RateLimitBurst:  3,
		LogLevel:        slog.LevelInfo,
		ShutdownTimeout: 5 * time.Second,
		StaticDir:       "./static",
	}

	if v := os.Getenv("POTABLE_ADDR"); v != "" {
		cfg.Addr = v
	}
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return cfg, ErrMissingDatabaseURL
	}
	key := os.Getenv("TOKEN_KEY")
	if key == "" {
		return cfg, ErrMissingTokenKey
	}
	cfg.TokenKey = []byte(key)
	cfg.TLSCert = os.Getenv("TLS_CERT")
	cfg.TLSKey = os.Getenv("TLS_KEY")
	if v := os.Getenv("STATIC_DIR"); v != "" {
		cfg.StaticDir = v
	}

	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil || rps <= 0 {
			return cfg, fmt.Errorf("invalid RATE_LIMIT_RPS: %s", v)
		}
		cfg.RateLimitRPS = rps
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		burst, err := strconv.Atoi(v)
		if err != nil || burst <= 0 {
			return cfg, fmt.Errorf("invalid RATE_LIMIT_BURST: %s", v)
		}
		cfg.RateLimitBurst = burst
	}
	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return cfg, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %s", v)
		}
		cfg.ShutdownTimeout = d
	}
	level, err := ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return cfg, err
	}
	cfg.LogLevel = level

	return cfg, nil
}

// ParseLevel maps a LOG_LEVEL value onto a slog level; empty means info.
func ParseLevel(v string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL: %s", v)
}

// TLS reports whether both certificate and key were configured.
func (c Config) TLS() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}

// NewLogger builds the process logger for the configured level.
func (c Config) NewLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.LogLevel}))
}
