package config

import (
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Providers understood by data_source.provider.
const (
	ProviderYahoo  = "yahoo"
	ProviderREST   = "rest"
	ProviderAlpaca = "alpaca"
	ProviderMock   = "mock"
)

const defaultRateLimit = 5

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	DataSource struct {
		Provider  string `yaml:"provider"`
		BaseURL   string `yaml:"base_url"`
		APIKey    string `yaml:"api_key"`
		APISecret string `yaml:"api_secret"`
		Symbol    string `yaml:"symbol"`
	} `yaml:"data_source"`
	Spectrum struct {
		Window   int    `yaml:"window"`
		Years    int    `yaml:"years"`
		Timezone string `yaml:"timezone"`
	} `yaml:"spectrum"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	Server struct {
		Addr      string  `yaml:"addr"`
		RateLimit float64 `yaml:"rate_limit"`
		Burst     int     `yaml:"burst"`
	} `yaml:"server"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// envOverrides is decoded from FIVELINE_* variables. Zero values leave the
// file setting untouched, except RATE_LIMIT where only an unset variable does.
type envOverrides struct {
	Provider  string   `envconfig:"PROVIDER"`
	BaseURL   string   `envconfig:"BASE_URL"`
	APIKey    string   `envconfig:"API_KEY"`
	APISecret string   `envconfig:"API_SECRET"`
	Symbol    string   `envconfig:"SYMBOL"`
	Window    int      `envconfig:"WINDOW"`
	Years     int      `envconfig:"YEARS"`
	Timezone  string   `envconfig:"TIMEZONE"`
	DailyCron string   `envconfig:"DAILY_CRON"`
	Addr      string   `envconfig:"ADDR"`
	RateLimit *float64 `envconfig:"RATE_LIMIT"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	// Preset so an explicit rate_limit: 0 (limiter off) survives decoding.
	cfg.Server.RateLimit = defaultRateLimit

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	var env envOverrides
	if err := envconfig.Process("FIVELINE", &env); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	cfg.applyEnv(&env)

	// Unprefixed variables shared with other deployments
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv(e *envOverrides) {
	setString(&c.DataSource.Provider, e.Provider)
	setString(&c.DataSource.BaseURL, e.BaseURL)
	setString(&c.DataSource.APIKey, e.APIKey)
	setString(&c.DataSource.APISecret, e.APISecret)
	setString(&c.DataSource.Symbol, e.Symbol)
	setString(&c.Spectrum.Timezone, e.Timezone)
	setString(&c.Schedule.DailyCron, e.DailyCron)
	setString(&c.Server.Addr, e.Addr)
	if e.Window != 0 {
		c.Spectrum.Window = e.Window
	}
	if e.Years != 0 {
		c.Spectrum.Years = e.Years
	}
	if e.RateLimit != nil {
		c.Server.RateLimit = *e.RateLimit
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func (c *Config) applyDefaults() {
	if c.DataSource.Provider == "" {
		c.DataSource.Provider = ProviderYahoo
	}
	if c.DataSource.Symbol == "" {
		c.DataSource.Symbol = "0050"
	}
	if c.Spectrum.Window == 0 {
		c.Spectrum.Window = 480
	}
	if c.Spectrum.Years == 0 {
		c.Spectrum.Years = 3
	}
	if c.Spectrum.Timezone == "" {
		c.Spectrum.Timezone = "Asia/Taipei"
	}
	// Taipei close is 13:30; Yahoo has the bar by early evening.
	if c.Schedule.DailyCron == "" {
		c.Schedule.DailyCron = "0 0 18 * * 1-5"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.Burst == 0 {
		c.Server.Burst = 10
	}
	if c.Database.SQLitePath == "" {
		c.Database.SQLitePath = "data/fiveline.db"
	}
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	switch c.DataSource.Provider {
	case ProviderYahoo, ProviderMock:
	case ProviderREST:
		if c.DataSource.BaseURL == "" {
			return fmt.Errorf("data_source.base_url is required for provider %q", ProviderREST)
		}
	case ProviderAlpaca:
		if c.DataSource.APIKey == "" || c.DataSource.APISecret == "" {
			return fmt.Errorf("data_source.api_key and api_secret are required for provider %q", ProviderAlpaca)
		}
	default:
		return fmt.Errorf("data_source.provider %q is not supported", c.DataSource.Provider)
	}
	if c.Spectrum.Window <= 0 {
		return fmt.Errorf("spectrum.window must be positive")
	}
	if c.Spectrum.Years <= 0 {
		return fmt.Errorf("spectrum.years must be positive")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.Telegram.BotToken != "" && c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required when bot_token is set")
	}
	if c.Server.RateLimit < 0 || c.Server.Burst < 0 {
		return fmt.Errorf("server.rate_limit and server.burst must not be negative")
	}
	return nil
}

// Location resolves spectrum.timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Spectrum.Timezone)
	if err != nil {
		return nil, fmt.Errorf("spectrum.timezone: %w", err)
	}
	return loc, nil
}

// TelegramEnabled reports whether notifications are configured.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.BotToken != "" && c.Telegram.ChatID != ""
}
