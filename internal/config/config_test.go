package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.App.Name != "helpdesk-admin" {
		t.Errorf("unexpected app name: %q", cfg.App.Name)
	}
	if cfg.App.Addr() != "0.0.0.0:8080" {
		t.Errorf("unexpected addr: %q", cfg.App.Addr())
	}
	if cfg.Auth.BcryptCost != 12 {
		t.Errorf("unexpected bcrypt cost: %d", cfg.Auth.BcryptCost)
	}
	if cfg.Directory.CacheTTL() != 5*time.Minute {
		t.Errorf("unexpected directory TTL: %v", cfg.Directory.CacheTTL())
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("DIRECTORY_CACHE_TTL_SECONDS", "60")
	t.Setenv("POSTGRES_MAX_CONNS", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.App.Port != "9000" {
		t.Errorf("expected port override, got %q", cfg.App.Port)
	}
	if cfg.Directory.CacheTTLSeconds != 60 {
		t.Errorf("expected TTL override, got %d", cfg.Directory.CacheTTLSeconds)
	}
	// Malformed ints fall back to defaults.
	if cfg.Postgres.MaxConns != 10 {
		t.Errorf("expected default max conns, got %d", cfg.Postgres.MaxConns)
	}
}

func TestRequestTimeoutDisabled(t *testing.T) {
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "0")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.RequestTimeout() != 0 {
		t.Errorf("expected timeout disabled, got %v", cfg.App.RequestTimeout())
	}
}
