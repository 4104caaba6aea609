package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.ShutdownPeriod != 10*time.Second {
		t.Fatalf("unexpected shutdown period: %s", cfg.ShutdownPeriod)
	}
	if !cfg.IsDev() {
		t.Fatal("expected development env")
	}
}

func TestLoadRequiresStoresOutsideDev(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error without DATABASE_URL in production")
	}
}

func TestLoadDurations(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "5")
	t.Setenv("IDEMPOTENCY_TTL", "30m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ShutdownPeriod != 5*time.Second {
		t.Fatalf("expected 5s shutdown, got %s", cfg.ShutdownPeriod)
	}
	if cfg.IdempotencyTTL != 30*time.Minute {
		t.Fatalf("expected 30m ttl, got %s", cfg.IdempotencyTTL)
	}
}

func TestAddress(t *testing.T) {
	if got := (Config{Port: "9000"}).Address(); got != ":9000" {
		t.Fatalf("expected :9000, got %s", got)
	}
	if got := (Config{Port: ":9000"}).Address(); got != ":9000" {
		t.Fatalf("expected :9000, got %s", got)
	}
}
