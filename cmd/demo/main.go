package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"CryptoPulse/internal/config"
	"CryptoPulse/internal/engine"
	"CryptoPulse/internal/history"
	"CryptoPulse/internal/market"
	"CryptoPulse/internal/model"
	"CryptoPulse/internal/notifier"
	"CryptoPulse/internal/risk"
	"CryptoPulse/internal/util"
)

// winPayout mirrors the broker's return on a correct call.
const winPayout = 0.9

// Demo runs the full signal pipeline offline: no Telegram, no database,
// simulated outcomes. Useful for eyeballing signal quality and stake
// sizing without credentials.
func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "price source seed")
	signals := flag.Int("signals", 3, "number of signals to generate")
	batch := flag.Bool("batch", false, "generate a full batch instead")
	flag.Parse()

	log := util.NewLogger("warn")

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if err := cfg.ValidateTrading(); err != nil {
		log.Fatal().Err(err).Msg("invalid trading config")
	}
	loc := cfg.Location()

	store := history.NewMemoryStore(cfg.History.MaxEntries)
	source := market.NewSyntheticSource(cfg.Market.Symbol, cfg.Market.BasePrice, *seed)
	riskMgr := risk.NewManager(cfg.Trading, store, loc, log)
	eng := engine.New(source, riskMgr, store, cfg.Market.SeriesLength, log)

	n := *signals
	if *batch {
		n = cfg.Trading.BatchSize
	}
	rng := rand.New(rand.NewSource(*seed))

	fmt.Printf("🚀 %s Signal Demo (seed %d, %s)\n", cfg.Market.Symbol, *seed, time.Now().In(loc).Format("2006-01-02 15:04:05 MST"))
	fmt.Println(strings.Repeat("=", 50))

	for i, res := range eng.GenerateBatch(n) {
		fmt.Printf("\n--- Signal %d/%d ---\n", i+1, n)
		if res.Assessment.Acceptable {
			fmt.Println(stripHTML(notifier.FormatSignal(res.Signal, res.Assessment, loc)))
		} else {
			fmt.Println(stripHTML(notifier.FormatHalt(res.Assessment)))
			break
		}

		// Simulate the outcome so stats and damping have data to react to.
		outcome := model.OutcomeLoss
		pnl := -res.Assessment.SuggestedAmount
		if rng.Float64() < 0.5 {
			outcome = model.OutcomeWin
			pnl = res.Assessment.SuggestedAmount * winPayout
		}
		store.Append(model.TradeEntry{
			ID:          res.Entry.ID + "-resolved",
			Timestamp:   res.Signal.GeneratedAt,
			Direction:   res.Signal.Direction,
			Confidence:  res.Signal.Confidence,
			Amount:      res.Assessment.SuggestedAmount,
			DurationMin: res.Signal.DurationMin,
			Outcome:     outcome,
			ProfitLoss:  pnl,
		})
		fmt.Printf("\nSimulated outcome: %s (%+.0f)\n", outcome, pnl)
	}

	fmt.Println("\n" + strings.Repeat("=", 50))
	recent, _ := store.Recent(5)
	fmt.Println(stripHTML(notifier.FormatHistory(recent, loc)))
	all, _ := store.Recent(cfg.History.MaxEntries)
	fmt.Println()
	fmt.Println(stripHTML(notifier.FormatStats(history.ComputeStats(all))))

	// One more assessment so the simulated streak shows up in the sizing
	// of the next trade.
	if res, err := eng.Generate(); err == nil {
		a := res.Assessment
		fmt.Printf("\nNext trade: ₹%.0f at %.0f%% confidence, risk %s", a.SuggestedAmount, res.Signal.Confidence, a.Level)
		if a.LossStreak > 0 {
			fmt.Printf(" (streak %d)", a.LossStreak)
		}
		fmt.Println()
		if !a.Acceptable {
			fmt.Println(stripHTML(notifier.FormatHalt(a)))
		}
	}
}

func stripHTML(s string) string {
	return strings.NewReplacer("<b>", "", "</b>", "").Replace(s)
}
