// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config failed validation: %v", err)
	}
}

func TestLoadFromPartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[server]\nurl = \"https://chat.example.com/api\"\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := LoadFrom(cfg, path); err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	cfg.fillDefaults()

	if cfg.Server.URL != "https://chat.example.com/api" {
		t.Errorf("url = %q, want the file's value", cfg.Server.URL)
	}
	if cfg.Server.TimeoutSecs != 60 {
		t.Errorf("timeout = %d, want the default for the omitted field", cfg.Server.TimeoutSecs)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("theme = %q, want the default for the omitted section", cfg.UI.Theme)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"relative url", func(c *Config) { c.Server.URL = "localhost:8000/api" }},
		{"bad scheme", func(c *Config) { c.Server.URL = "ftp://example.com/api" }},
		{"zero timeout", func(c *Config) { c.Server.TimeoutSecs = 0 }},
		{"huge timeout", func(c *Config) { c.Server.TimeoutSecs = 100000 }},
		{"unknown theme", func(c *Config) { c.UI.Theme = "solarized" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() accepted a bad value")
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DOCCHAT_SERVER_URL", "https://override.example.com/api")
	t.Setenv("DOCCHAT_TIMEOUT_SECS", "120")
	t.Setenv("DOCCHAT_NO_MARKDOWN", "true")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Server.URL != "https://override.example.com/api" {
		t.Errorf("url = %q, want the env override", cfg.Server.URL)
	}
	if cfg.Server.TimeoutSecs != 120 {
		t.Errorf("timeout = %d, want 120", cfg.Server.TimeoutSecs)
	}
	if cfg.UI.Markdown {
		t.Error("DOCCHAT_NO_MARKDOWN should disable markdown rendering")
	}
}

func TestEnvOverrideIgnoresBadTimeout(t *testing.T) {
	t.Setenv("DOCCHAT_TIMEOUT_SECS", "not-a-number")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Server.TimeoutSecs != 60 {
		t.Errorf("timeout = %d, unparseable override should be ignored", cfg.Server.TimeoutSecs)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("DOCCHAT_CONFIG", path)

	cfg := Default()
	cfg.Server.URL = "https://saved.example.com/api"
	cfg.UI.Theme = "light"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("config file mode = %o, want 0600", perm)
	}

	reloaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if reloaded.Server.URL != "https://saved.example.com/api" {
		t.Errorf("url = %q after round trip", reloaded.Server.URL)
	}
	if reloaded.UI.Theme != "light" {
		t.Errorf("theme = %q after round trip", reloaded.UI.Theme)
	}
}
