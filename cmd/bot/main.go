package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"CryptoPulse/internal/config"
	"CryptoPulse/internal/engine"
	"CryptoPulse/internal/history"
	"CryptoPulse/internal/market"
	"CryptoPulse/internal/metrics"
	"CryptoPulse/internal/notifier"
	"CryptoPulse/internal/risk"
	"CryptoPulse/internal/scheduler"
	"CryptoPulse/internal/util"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}
	boot := util.NewLogger("info")
	cfg, err := config.Load(configPath)
	if err != nil {
		boot.Fatal().Err(err).Msg("load config")
	}
	log := util.NewLogger(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}
	loc := cfg.Location()

	if cfg.Metrics.Addr != "" {
		metrics.Serve(cfg.Metrics.Addr)
		log.Info().Str("addr", cfg.Metrics.Addr).Msg("metrics listening")
	}

	store := openStore(cfg, log)
	defer store.Close()

	source := market.NewSyntheticSource(cfg.Market.Symbol, cfg.Market.BasePrice, time.Now().UnixNano())
	riskMgr := risk.NewManager(cfg.Trading, store, loc, log)
	eng := engine.New(source, riskMgr, store, cfg.Market.SeriesLength, log)

	tg, err := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init telegram notifier")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, eng, store, tg, cfg, loc, log)
	if err := sched.RegisterAll(); err != nil {
		log.Fatal().Err(err).Msg("register cron jobs")
	}
	sched.Start()
	defer sched.Stop()

	go tg.StartPolling(ctx, sched.HandleCommand)

	log.Info().Str("symbol", cfg.Market.Symbol).Str("timezone", cfg.Timezone).Msg("bot running")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Info().Msg("shutting down")
	cancel()
}

// openStore picks the history backend: SQLite when configured, then the
// JSON file, then memory. A failed open falls through with a warning.
func openStore(cfg *config.Config, log zerolog.Logger) history.Store {
	if path := cfg.Database.SQLitePath; path != "" {
		s, err := history.NewSQLiteStore(path)
		if err == nil {
			log.Info().Str("path", path).Msg("using sqlite history store")
			return s
		}
		log.Warn().Err(err).Msg("sqlite store unavailable, falling back")
	}
	if path := cfg.History.File; path != "" {
		s, err := history.NewJSONStore(path, cfg.History.MaxEntries)
		if err == nil {
			log.Info().Str("path", path).Msg("using json history store")
			return s
		}
		log.Warn().Err(err).Msg("json store unavailable, falling back")
	}
	log.Info().Msg("using in-memory history store")
	return history.NewMemoryStore(cfg.History.MaxEntries)
}
