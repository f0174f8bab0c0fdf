package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arena_config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if cfg.ServerAddress != ":8080" {
		t.Fatalf("unexpected default address %q", cfg.ServerAddress)
	}
	if cfg.DatabasePath != "./data/arena.db" {
		t.Fatalf("unexpected default database path %q", cfg.DatabasePath)
	}
	if cfg.AdjudicatorTimeout != 20*time.Second {
		t.Fatalf("unexpected default timeout %v", cfg.AdjudicatorTimeout)
	}
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"server": {"address": ":9090"},
		"database_path": "/tmp/arena-test.db",
		"frontend_url": "https://arena.example.com",
		"adjudicator": {"model": "test-model", "timeout_seconds": 5}
	}`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerAddress != ":9090" {
		t.Fatalf("address override lost: %q", cfg.ServerAddress)
	}
	if cfg.DatabasePath != "/tmp/arena-test.db" {
		t.Fatalf("database path override lost: %q", cfg.DatabasePath)
	}
	if cfg.FrontendURL != "https://arena.example.com" {
		t.Fatalf("frontend url override lost: %q", cfg.FrontendURL)
	}
	if cfg.AdjudicatorModel != "test-model" {
		t.Fatalf("model override lost: %q", cfg.AdjudicatorModel)
	}
	if cfg.AdjudicatorTimeout != 5*time.Second {
		t.Fatalf("timeout override lost: %v", cfg.AdjudicatorTimeout)
	}
}

func TestLoadConfig_PartialFileKeepsRemainingDefaults(t *testing.T) {
	path := writeConfig(t, `{"database_path": "/tmp/partial.db"}`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DatabasePath != "/tmp/partial.db" {
		t.Fatalf("database path override lost: %q", cfg.DatabasePath)
	}
	if cfg.ServerAddress != ":8080" || cfg.AdjudicatorTimeout != 20*time.Second {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, `{not json`)); err == nil {
		t.Fatalf("expected a parse error")
	}
	if _, err := LoadConfig(writeConfig(t, `{"adjudicator": {"timeout_seconds": -1}}`)); err == nil {
		t.Fatalf("expected a validation error for negative timeout")
	}
}
