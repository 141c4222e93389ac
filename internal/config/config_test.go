package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Spectrum.Window != 480 {
		t.Errorf("expected default window 480, got %d", cfg.Spectrum.Window)
	}
	if cfg.Spectrum.Years != 3 {
		t.Errorf("expected default years 3, got %d", cfg.Spectrum.Years)
	}
	if cfg.DataSource.Provider != ProviderYahoo {
		t.Errorf("expected yahoo provider, got %q", cfg.DataSource.Provider)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
	if cfg.TelegramEnabled() {
		t.Error("telegram should be disabled without a token")
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeConfig(t, `
data_source:
  symbol: "2330"
spectrum:
  window: 240
  years: 5
telegram:
  bot_token: file-token
  chat_id: "42"
`)
	t.Setenv("FIVELINE_WINDOW", "120")
	t.Setenv("FIVELINE_SYMBOL", "0056")
	t.Setenv("TELEGRAM_BOT_TOKEN", "env-token")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Spectrum.Window != 120 {
		t.Errorf("env should override window, got %d", cfg.Spectrum.Window)
	}
	if cfg.Spectrum.Years != 5 {
		t.Errorf("file years should survive, got %d", cfg.Spectrum.Years)
	}
	if cfg.DataSource.Symbol != "0056" {
		t.Errorf("env should override symbol, got %q", cfg.DataSource.Symbol)
	}
	if cfg.Telegram.BotToken != "env-token" || cfg.Telegram.ChatID != "42" {
		t.Errorf("unexpected telegram config: %+v", cfg.Telegram)
	}
	if !cfg.TelegramEnabled() {
		t.Error("telegram should be enabled")
	}
}

func TestLoad_BadEnv(t *testing.T) {
	t.Setenv("FIVELINE_WINDOW", "two-years")
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for non-numeric window")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeConfig(t, "spectrum: [unclosed")
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative window", func(c *Config) { c.Spectrum.Window = -1 }},
		{"zero years", func(c *Config) { c.Spectrum.Years = 0 }},
		{"unknown provider", func(c *Config) { c.DataSource.Provider = "bloomberg" }},
		{"rest without url", func(c *Config) { c.DataSource.Provider = ProviderREST }},
		{"alpaca without keys", func(c *Config) { c.DataSource.Provider = ProviderAlpaca }},
		{"bad timezone", func(c *Config) { c.Spectrum.Timezone = "Mars/Olympus" }},
		{"token without chat", func(c *Config) { c.Telegram.BotToken = "t" }},
	}
	for _, tt := range tests {
		cfg := &Config{}
		cfg.applyDefaults()
		cfg.Spectrum.Timezone = "UTC"
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestLoad_RateLimit(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.RateLimit != 5 || cfg.Server.Burst != 10 {
		t.Errorf("expected default 5 rps burst 10, got %v/%d", cfg.Server.RateLimit, cfg.Server.Burst)
	}

	path := writeConfig(t, "server:\n  rate_limit: 0\n")
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.RateLimit != 0 {
		t.Errorf("explicit rate_limit 0 should disable limiting, got %v", cfg.Server.RateLimit)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("disabled limiter should validate: %v", err)
	}

	path = writeConfig(t, "server:\n  rate_limit: 2\n")
	t.Setenv("FIVELINE_RATE_LIMIT", "0")
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.RateLimit != 0 {
		t.Errorf("FIVELINE_RATE_LIMIT=0 should override the file, got %v", cfg.Server.RateLimit)
	}
}
