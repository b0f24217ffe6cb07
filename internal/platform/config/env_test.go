package config

import (
	"strings"
	"testing"
	"time"
)

type envTestConfig struct {
	Port     int           `env:"AISSOL_TEST_PORT" envDefault:"123"`
	CacheTTL time.Duration `env:"AISSOL_TEST_CACHE_TTL" envDefault:"5m"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Fatalf("expected default ttl 5m, got %s", cfg.CacheTTL)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("AISSOL_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvWithLookupUsesProvidedMap(t *testing.T) {
	t.Parallel()

	var cfg envTestConfig
	err := ParseEnvWithLookup(&cfg, map[string]string{
		"AISSOL_TEST_PORT":      "9090",
		"AISSOL_TEST_CACHE_TTL": "30s",
	})
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 9090 {
		t.Fatalf("port = %d, want 9090", cfg.Port)
	}
	if cfg.CacheTTL != 30*time.Second {
		t.Fatalf("ttl = %s, want 30s", cfg.CacheTTL)
	}
}
