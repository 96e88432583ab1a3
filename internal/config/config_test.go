package config

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "config.yaml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Telegram.BotToken != "test-token" {
		t.Fatalf("unexpected bot token: %s", cfg.Telegram.BotToken)
	}
	if cfg.Market.Symbol != "CRYPTO IDX" {
		t.Fatalf("unexpected symbol: %s", cfg.Market.Symbol)
	}
	if cfg.Market.SeriesLength != 120 {
		t.Fatalf("unexpected series length: %d", cfg.Market.SeriesLength)
	}
	if cfg.Trading.MinAmount != 100 || cfg.Trading.MaxAmount != 500 {
		t.Fatalf("unexpected amount bounds: %.0f..%.0f", cfg.Trading.MinAmount, cfg.Trading.MaxAmount)
	}
	if cfg.Trading.BatchSize != 5 {
		t.Fatalf("unexpected batch size: %d", cfg.Trading.BatchSize)
	}
	if cfg.Trading.RiskThreshold != 70 {
		t.Fatalf("unexpected risk threshold: %.0f", cfg.Trading.RiskThreshold)
	}
	if cfg.History.MaxEntries != 200 {
		t.Fatalf("unexpected history max entries: %d", cfg.History.MaxEntries)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("unexpected log level: %s", cfg.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("fixture config should validate: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Market.SeriesLength != 100 {
		t.Fatalf("expected default series length 100, got %d", cfg.Market.SeriesLength)
	}
	if cfg.Trading.MinAmount != 100 || cfg.Trading.MaxAmount != 500 {
		t.Fatalf("expected default bounds 100..500, got %.0f..%.0f", cfg.Trading.MinAmount, cfg.Trading.MaxAmount)
	}
	if cfg.Trading.BatchSize != 10 || cfg.Trading.DailyLossCap != 2000 {
		t.Fatalf("unexpected trading defaults: %+v", cfg.Trading)
	}
	if cfg.Timezone != "Asia/Kolkata" {
		t.Fatalf("expected default timezone, got %s", cfg.Timezone)
	}
	// No telegram credentials in defaults, so full validation must fail.
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for missing credentials, got %v", err)
	}
	if err := cfg.ValidateTrading(); err != nil {
		t.Fatalf("trading defaults should validate: %v", err)
	}
}

func TestValidateTrading_Boundaries(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"inverted bounds", func(c *Config) { c.Trading.MinAmount = 500; c.Trading.MaxAmount = 100 }},
		{"equal bounds", func(c *Config) { c.Trading.MinAmount = 300; c.Trading.MaxAmount = 300 }},
		{"zero min", func(c *Config) { c.Trading.MinAmount = -100 }},
		{"negative batch size", func(c *Config) { c.Trading.BatchSize = -1 }},
		{"negative batch delay", func(c *Config) { c.Trading.BatchDelaySeconds = -5 }},
		{"threshold below floor", func(c *Config) { c.Trading.RiskThreshold = 40 }},
		{"threshold above ceiling", func(c *Config) { c.Trading.RiskThreshold = 99 }},
		{"negative loss cap", func(c *Config) { c.Trading.DailyLossCap = -2000 }},
		{"damping above one", func(c *Config) { c.Trading.DampingFactor = 1.5 }},
		{"negative series length", func(c *Config) { c.Market.SeriesLength = -1 }},
		{"negative max entries", func(c *Config) { c.History.MaxEntries = -10 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.applyDefaults()
			tt.mutate(cfg)
			if err := cfg.ValidateTrading(); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLocationFallback(t *testing.T) {
	cfg := &Config{Timezone: "Not/AZone"}
	loc := cfg.Location()
	_, offset := time.Now().In(loc).Zone()
	if offset != 5*3600+30*60 {
		t.Fatalf("expected IST offset 19800, got %d", offset)
	}
}
