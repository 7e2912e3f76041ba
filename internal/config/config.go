// Package config loads the bootstrap configuration file. Runtime-mutable
// settings live in the sqlite app_config table instead; the file only
// carries what the client needs before the database is open.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	BackendURL string `yaml:"backend_url"`
	Token      string `yaml:"token"`
	Language   string `yaml:"language"`
	Timezone   string `yaml:"timezone"`
}

// Load reads the YAML config at path. A missing file is not an error: every
// field has a flag or app_config override, and read commands can run
// offline from the cache.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config file %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	cfg.BackendURL = strings.TrimSpace(cfg.BackendURL)
	cfg.Token = strings.TrimSpace(cfg.Token)
	cfg.Language = strings.TrimSpace(cfg.Language)
	cfg.Timezone = strings.TrimSpace(cfg.Timezone)
	return cfg, nil
}

// Save writes cfg to path with restrictive permissions; the file may hold a
// bearer token.
func Save(path string, cfg Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return fmt.Errorf("write config file %s: %w", path, err)
	}
	return nil
}
