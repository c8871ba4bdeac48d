package config_test

import (
	"testing"

	"github.com/api-sage/mybank-console/src/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MYBANK_LOG_LEVEL", "")
	t.Setenv("MYBANK_LOG_FORMAT", "")
	t.Setenv("MYBANK_CURRENCY", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if cfg != config.Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if cfg.CurrencyLabel != "Php" {
		t.Fatalf("expected Php currency label, got %q", cfg.CurrencyLabel)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MYBANK_LOG_LEVEL", " DEBUG ")
	t.Setenv("MYBANK_LOG_FORMAT", "json")
	t.Setenv("MYBANK_CURRENCY", "USD")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" || cfg.CurrencyLabel != "USD" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadInvalidFallsBackToDefaults(t *testing.T) {
	t.Setenv("MYBANK_LOG_LEVEL", "loud")
	t.Setenv("MYBANK_LOG_FORMAT", "yaml")
	t.Setenv("MYBANK_CURRENCY", "")

	cfg, err := config.Load()
	if err == nil {
		t.Fatal("expected error for invalid configuration")
	}
	if cfg != config.Default() {
		t.Fatalf("expected defaults after invalid values, got %+v", cfg)
	}
}
