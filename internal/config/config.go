package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/greethub/greeter/internal/domain"
)

// Config holds all runtime configuration loaded from environment variables.
// Every field has a default, so an empty environment is valid.
type Config struct {
	// Server
	HTTPPort        string
	OpsPort         string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// Rate limiting on the public listener; RateLimit == 0 disables it.
	RateLimit int
	RateBurst int
}

func Load() (*Config, error) {
	rateLimit := getInt("RATE_LIMIT", 0)

	cfg := &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		OpsPort:         getEnv("OPS_PORT", "9090"),
		ReadTimeout:     getDuration("READ_TIMEOUT", 5*time.Second),
		WriteTimeout:    getDuration("WRITE_TIMEOUT", 10*time.Second),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 30*time.Second),

		RateLimit: rateLimit,
		RateBurst: getInt("RATE_BURST", rateLimit),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects combinations the server cannot start with.
func (c *Config) Validate() error {
	switch {
	case c.RateLimit < 0:
		return fmt.Errorf("%w: RATE_LIMIT must not be negative", domain.ErrInvalidConfig)
	case c.RateLimit > 0 && c.RateBurst < 1:
		return fmt.Errorf("%w: RATE_BURST must be at least 1 when RATE_LIMIT is set", domain.ErrInvalidConfig)
	case c.HTTPPort == c.OpsPort:
		return fmt.Errorf("%w: HTTP_PORT and OPS_PORT must differ", domain.ErrInvalidConfig)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
