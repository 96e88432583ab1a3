package engine

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"CryptoPulse/internal/calculator"
	"CryptoPulse/internal/history"
	"CryptoPulse/internal/market"
	"CryptoPulse/internal/metrics"
	"CryptoPulse/internal/model"
	"CryptoPulse/internal/risk"
	"CryptoPulse/internal/strategy"
)

// Result bundles everything one generation cycle produces: the scored
// signal, its risk verdict and the pending history entry.
type Result struct {
	Signal     *model.Signal
	Assessment *model.RiskAssessment
	Entry      model.TradeEntry
}

// Engine runs the full signal pipeline: sample a price series, compute
// indicators, score the signal, size the stake and log the pending trade.
// Bot commands, cron jobs and the demo binary all go through here.
type Engine struct {
	source       market.Source
	risk         *risk.Manager
	store        history.Store
	seriesLength int
	log          zerolog.Logger
}

func New(source market.Source, riskMgr *risk.Manager, store history.Store, seriesLength int, log zerolog.Logger) *Engine {
	return &Engine{
		source:       source,
		risk:         riskMgr,
		store:        store,
		seriesLength: seriesLength,
		log:          log.With().Str("component", "engine").Logger(),
	}
}

// Generate produces one signal. The pending entry is appended to history
// whether or not the assessment allows trading; an append failure is
// logged but does not fail the signal.
func (e *Engine) Generate() (*Result, error) {
	series := e.source.Series(e.seriesLength)
	ind, err := calculator.Compute(series)
	if err != nil {
		return nil, fmt.Errorf("compute indicators: %w", err)
	}
	sig := strategy.Evaluate(ind)
	sig.Symbol = series.Symbol

	assessment := e.risk.Assess(sig)

	entry := model.TradeEntry{
		ID:          uuid.NewString(),
		Timestamp:   sig.GeneratedAt,
		Direction:   sig.Direction,
		Confidence:  sig.Confidence,
		Amount:      assessment.SuggestedAmount,
		DurationMin: sig.DurationMin,
		Outcome:     model.OutcomePending,
	}
	if err := e.store.Append(entry); err != nil {
		e.log.Warn().Err(err).Msg("failed to record pending trade")
	}

	metrics.SignalsTotal.WithLabelValues(string(sig.Direction)).Inc()
	if !assessment.Acceptable {
		metrics.HaltsTotal.Inc()
	}
	e.log.Info().
		Str("symbol", sig.Symbol).
		Str("direction", string(sig.Direction)).
		Float64("confidence", sig.Confidence).
		Int("duration_min", sig.DurationMin).
		Float64("amount", assessment.SuggestedAmount).
		Bool("acceptable", assessment.Acceptable).
		Msg("signal generated")

	return &Result{Signal: sig, Assessment: assessment, Entry: entry}, nil
}

// GenerateBatch produces up to n signals back to back, skipping cycles
// that fail. Delivery pacing is the scheduler's job.
func (e *Engine) GenerateBatch(n int) []*Result {
	out := make([]*Result, 0, n)
	for i := 0; i < n; i++ {
		res, err := e.Generate()
		if err != nil {
			e.log.Warn().Err(err).Int("index", i).Msg("batch cycle failed")
			continue
		}
		out = append(out, res)
	}
	return out
}
