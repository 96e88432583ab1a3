package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"CryptoPulse/internal/model"
)

// ErrInvalidConfig marks a configuration rejected by Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// TelegramConfig holds bot credentials.
type TelegramConfig struct {
	BotToken string `yaml:"bot_token"`
	ChatID   string `yaml:"chat_id"`
}

// MarketConfig controls the synthetic price source.
type MarketConfig struct {
	Symbol       string  `yaml:"symbol"`
	SeriesLength int     `yaml:"series_length"`
	BasePrice    float64 `yaml:"base_price"`
}

// TradingConfig holds position-sizing and risk parameters.
type TradingConfig struct {
	MinAmount            float64 `yaml:"min_amount"`
	MaxAmount            float64 `yaml:"max_amount"`
	BatchSize            int     `yaml:"batch_size"`
	BatchDelaySeconds    int     `yaml:"batch_delay_seconds"`
	RiskThreshold        float64 `yaml:"risk_threshold"`
	DailyLossCap         float64 `yaml:"daily_loss_cap"`
	MaxConsecutiveLosses int     `yaml:"max_consecutive_losses"`
	DampingFactor        float64 `yaml:"damping_factor"`
}

// HistoryConfig selects the JSON-file history backend.
type HistoryConfig struct {
	File       string `yaml:"file"`
	MaxEntries int    `yaml:"max_entries"`
}

// DatabaseConfig selects the SQLite history backend.
type DatabaseConfig struct {
	SQLitePath string `yaml:"sqlite_path"`
}

// ScheduleConfig holds cron expressions (with seconds field). Empty signal
// cron disables the automatic signal task.
type ScheduleConfig struct {
	SummaryCron string `yaml:"summary_cron"`
	SignalCron  string `yaml:"signal_cron"`
}

// MetricsConfig holds the Prometheus listen address.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// Config holds all application configuration.
type Config struct {
	Telegram TelegramConfig `yaml:"telegram"`
	Market   MarketConfig   `yaml:"market"`
	Trading  TradingConfig  `yaml:"trading"`
	History  HistoryConfig  `yaml:"history"`
	Database DatabaseConfig `yaml:"database"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Timezone string         `yaml:"timezone"`
	LogLevel string         `yaml:"log_level"`
	Proxy    string         `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; a .env file in the
// working directory is folded into the environment first.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HISTORY_FILE"); v != "" {
		cfg.History.File = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("METRICS_ADDR"); v != "" {
		cfg.Metrics.Addr = v
	}
	if v := os.Getenv("DAILY_LOSS_CAP"); v != "" {
		var limit float64
		if _, err := fmt.Sscanf(v, "%f", &limit); err == nil {
			cfg.Trading.DailyLossCap = limit
		}
	}
	if v := os.Getenv("CRON_SUMMARY"); v != "" {
		cfg.Schedule.SummaryCron = v
	}
	if v := os.Getenv("CRON_SIGNAL"); v != "" {
		cfg.Schedule.SignalCron = v
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Market.Symbol == "" {
		c.Market.Symbol = "CRYPTO IDX"
	}
	if c.Market.SeriesLength == 0 {
		c.Market.SeriesLength = 100
	}
	if c.Market.BasePrice == 0 {
		c.Market.BasePrice = 100
	}
	if c.Trading.MinAmount == 0 {
		c.Trading.MinAmount = 100
	}
	if c.Trading.MaxAmount == 0 {
		c.Trading.MaxAmount = 500
	}
	if c.Trading.BatchSize == 0 {
		c.Trading.BatchSize = 10
	}
	if c.Trading.BatchDelaySeconds == 0 {
		c.Trading.BatchDelaySeconds = 30
	}
	if c.Trading.RiskThreshold == 0 {
		c.Trading.RiskThreshold = 70
	}
	if c.Trading.DailyLossCap == 0 {
		c.Trading.DailyLossCap = 2000
	}
	if c.Trading.MaxConsecutiveLosses == 0 {
		c.Trading.MaxConsecutiveLosses = 3
	}
	if c.Trading.DampingFactor == 0 {
		c.Trading.DampingFactor = 0.5
	}
	if c.History.MaxEntries == 0 {
		c.History.MaxEntries = 1000
	}
	if c.Schedule.SummaryCron == "" {
		c.Schedule.SummaryCron = "0 0 21 * * *"
	}
	if c.Metrics.Addr == "" {
		c.Metrics.Addr = ":9102"
	}
	if c.Timezone == "" {
		c.Timezone = "Asia/Kolkata"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks that all required fields are set and consistent.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("%w: telegram.bot_token is required", ErrInvalidConfig)
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("%w: telegram.chat_id is required", ErrInvalidConfig)
	}
	return c.ValidateTrading()
}

// ValidateTrading checks the pipeline parameters only, so offline tools can
// run without Telegram credentials.
func (c *Config) ValidateTrading() error {
	if c.Market.SeriesLength <= 0 {
		return fmt.Errorf("%w: market.series_length must be positive", ErrInvalidConfig)
	}
	if c.Trading.MinAmount <= 0 {
		return fmt.Errorf("%w: trading.min_amount must be positive", ErrInvalidConfig)
	}
	if c.Trading.MaxAmount <= c.Trading.MinAmount {
		return fmt.Errorf("%w: trading.max_amount must exceed min_amount", ErrInvalidConfig)
	}
	if c.Trading.BatchSize <= 0 {
		return fmt.Errorf("%w: trading.batch_size must be positive", ErrInvalidConfig)
	}
	if c.Trading.BatchDelaySeconds < 0 {
		return fmt.Errorf("%w: trading.batch_delay_seconds must not be negative", ErrInvalidConfig)
	}
	if c.Trading.RiskThreshold < model.ConfidenceFloor || c.Trading.RiskThreshold > model.ConfidenceCeiling {
		return fmt.Errorf("%w: trading.risk_threshold must be within [%.0f,%.0f]",
			ErrInvalidConfig, model.ConfidenceFloor, model.ConfidenceCeiling)
	}
	if c.Trading.DailyLossCap <= 0 {
		return fmt.Errorf("%w: trading.daily_loss_cap must be positive", ErrInvalidConfig)
	}
	if c.Trading.MaxConsecutiveLosses <= 0 {
		return fmt.Errorf("%w: trading.max_consecutive_losses must be positive", ErrInvalidConfig)
	}
	if c.Trading.DampingFactor <= 0 || c.Trading.DampingFactor > 1 {
		return fmt.Errorf("%w: trading.damping_factor must be within (0,1]", ErrInvalidConfig)
	}
	if c.History.MaxEntries <= 0 {
		return fmt.Errorf("%w: history.max_entries must be positive", ErrInvalidConfig)
	}
	return nil
}

// Location resolves the display timezone. Falls back to a fixed IST offset
// when the zone database is unavailable.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.FixedZone("IST", 5*3600+30*60)
	}
	return loc
}
