package site

import (
	"flag"
	"io"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("site", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
	if cfg.DBPath != "data/site.db" {
		t.Fatalf("DBPath = %q, want %q", cfg.DBPath, "data/site.db")
	}
	if cfg.BrochureFile != "Broucher-Al-Shaikh-International-Group.pdf" {
		t.Fatalf("BrochureFile = %q", cfg.BrochureFile)
	}
	if cfg.CatalogCacheTTL != 5*time.Minute {
		t.Fatalf("CatalogCacheTTL = %v, want %v", cfg.CatalogCacheTTL, 5*time.Minute)
	}
	if cfg.LeadsRatePerMinute != 10 {
		t.Fatalf("LeadsRatePerMinute = %d, want 10", cfg.LeadsRatePerMinute)
	}
	if cfg.ContentfulEnvironment != "master" {
		t.Fatalf("ContentfulEnvironment = %q, want master", cfg.ContentfulEnvironment)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("Log.Level = %q, want info", cfg.Log.Level)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("site", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "127.0.0.1:9000", "-db", "/tmp/site.db", "-log-level", "debug", "-refresh-catalog"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9000" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9000")
	}
	if cfg.DBPath != "/tmp/site.db" {
		t.Fatalf("DBPath = %q, want %q", cfg.DBPath, "/tmp/site.db")
	}
	if !cfg.RefreshCatalog {
		t.Fatal("RefreshCatalog = false, want true")
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestParseConfigRejectsUnknownFlag(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("site", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if _, err := ParseConfig(fs, []string{"-nope"}); err == nil {
		t.Fatal("expected unknown flag error")
	}
}
