package config_test

import (
	"errors"
	"testing"
	"time"

	"github.com/greethub/greeter/internal/config"
	"github.com/greethub/greeter/internal/domain"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"HTTP_PORT", "OPS_PORT", "READ_TIMEOUT", "WRITE_TIMEOUT", "SHUTDOWN_TIMEOUT", "RATE_LIMIT", "RATE_BURST"} {
		t.Setenv(k, "")
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected HTTPPort=8080, got %s", cfg.HTTPPort)
	}
	if cfg.OpsPort != "9090" {
		t.Fatalf("expected OpsPort=9090, got %s", cfg.OpsPort)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Fatalf("expected ShutdownTimeout=30s, got %s", cfg.ShutdownTimeout)
	}
	if cfg.RateLimit != 0 {
		t.Fatalf("expected rate limiting disabled by default, got %d", cfg.RateLimit)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "3000")
	t.Setenv("OPS_PORT", "3001")
	t.Setenv("READ_TIMEOUT", "2s")
	t.Setenv("RATE_LIMIT", "50")
	t.Setenv("RATE_BURST", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPPort != "3000" || cfg.OpsPort != "3001" {
		t.Fatalf("unexpected ports: %s/%s", cfg.HTTPPort, cfg.OpsPort)
	}
	if cfg.ReadTimeout != 2*time.Second {
		t.Fatalf("expected ReadTimeout=2s, got %s", cfg.ReadTimeout)
	}
	// burst follows the rate when unset
	if cfg.RateBurst != 50 {
		t.Fatalf("expected RateBurst=50, got %d", cfg.RateBurst)
	}
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("HTTP_PORT", "")
	t.Setenv("OPS_PORT", "")
	t.Setenv("WRITE_TIMEOUT", "soon")
	t.Setenv("RATE_LIMIT", "many")
	t.Setenv("RATE_BURST", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.WriteTimeout != 10*time.Second {
		t.Fatalf("expected default WriteTimeout, got %s", cfg.WriteTimeout)
	}
	if cfg.RateLimit != 0 {
		t.Fatalf("expected default RateLimit, got %d", cfg.RateLimit)
	}
}

func TestConfig_Validate(t *testing.T) {
	base := config.Config{HTTPPort: "8080", OpsPort: "9090"}

	t.Run("valid", func(t *testing.T) {
		if err := base.Validate(); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("negative rate", func(t *testing.T) {
		c := base
		c.RateLimit = -1
		if err := c.Validate(); !errors.Is(err, domain.ErrInvalidConfig) {
			t.Fatalf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("zero burst with rate", func(t *testing.T) {
		c := base
		c.RateLimit = 10
		if err := c.Validate(); !errors.Is(err, domain.ErrInvalidConfig) {
			t.Fatalf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("same ports", func(t *testing.T) {
		c := base
		c.OpsPort = c.HTTPPort
		if err := c.Validate(); !errors.Is(err, domain.ErrInvalidConfig) {
			t.Fatalf("expected ErrInvalidConfig, got %v", err)
		}
	})
}
