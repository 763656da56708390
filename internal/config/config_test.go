package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")
	t.Setenv("STORE_TIMEOUT", "")

	cfg := Load()

	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %q", cfg.Port)
	}
	if cfg.DatabaseURL != "" {
		t.Errorf("expected empty database URL, got %q", cfg.DatabaseURL)
	}
	if cfg.DatabaseName != "plumberpro" {
		t.Errorf("expected default database name, got %q", cfg.DatabaseName)
	}
	if cfg.StoreTimeout != 5*time.Second {
		t.Errorf("expected default store timeout 5s, got %s", cfg.StoreTimeout)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %q", cfg.LogLevel)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "plumberpro_test")
	t.Setenv("STORE_TIMEOUT", "2s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.DatabaseURL != "mongodb://localhost:27017" {
		t.Errorf("unexpected database URL %q", cfg.DatabaseURL)
	}
	if cfg.DatabaseName != "plumberpro_test" {
		t.Errorf("unexpected database name %q", cfg.DatabaseName)
	}
	if cfg.StoreTimeout != 2*time.Second {
		t.Errorf("expected store timeout 2s, got %s", cfg.StoreTimeout)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %q", cfg.LogLevel)
	}
}

func TestLoadIgnoresMalformedDuration(t *testing.T) {
	t.Setenv("STORE_TIMEOUT", "not-a-duration")

	cfg := Load()

	if cfg.StoreTimeout != 5*time.Second {
		t.Errorf("expected fallback to default timeout, got %s", cfg.StoreTimeout)
	}
}
