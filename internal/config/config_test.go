package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/123ang/expiry-alert-cli/internal/config"
)

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("load missing config: %v", err)
	}
	if cfg != (config.Config{}) {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	want := config.Config{
		BackendURL: "https://api.example.com",
		Token:      "tok-123",
		Language:   "zh-Hant",
		Timezone:   "Asia/Kuala_Lumpur",
	}
	if err := config.Save(path, want); err != nil {
		t.Fatalf("save config: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat config: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected 0600 permissions, got %v", info.Mode().Perm())
	}

	got, err := config.Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, want)
	}
}

func TestLoadTrimsWhitespace(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := "backend_url: '  https://api.example.com  '\nlanguage: \" ja \"\n"
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BackendURL != "https://api.example.com" || cfg.Language != "ja" {
		t.Fatalf("expected trimmed values, got %+v", cfg)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("backend_url: [unclosed"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.Load(path); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
}
