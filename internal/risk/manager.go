package risk

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"CryptoPulse/internal/config"
	"CryptoPulse/internal/history"
	"CryptoPulse/internal/model"
)

// assessWindow bounds how much history a single assessment scans.
const assessWindow = 500

// amountStep is the granularity suggested stakes are rounded to.
const amountStep = 50.0

// escalationStreak is the loss streak at which the risk band moves up one
// level even though trading may continue.
const escalationStreak = 2

// Manager sizes stakes and decides whether trading should continue. It is
// stateless; streaks and daily losses are derived from the history store
// on every assessment.
type Manager struct {
	cfg   config.TradingConfig
	store history.Store
	loc   *time.Location
	log   zerolog.Logger
}

func NewManager(cfg config.TradingConfig, store history.Store, loc *time.Location, log zerolog.Logger) *Manager {
	return &Manager{
		cfg:   cfg,
		store: store,
		loc:   loc,
		log:   log.With().Str("component", "risk").Logger(),
	}
}

// Assess produces a stake suggestion and risk verdict for the signal. A
// history read failure degrades to assessing without streak data rather
// than blocking the signal.
func (m *Manager) Assess(sig *model.Signal) *model.RiskAssessment {
	entries, err := m.store.Recent(assessWindow)
	if err != nil {
		m.log.Warn().Err(err).Msg("history unavailable, assessing without streak data")
		entries = nil
	}
	streak := lossStreak(entries)
	dailyLoss := m.dailyLoss(entries)

	a := &model.RiskAssessment{
		SuggestedAmount: m.positionSize(sig.Confidence, streak),
		Level:           m.level(sig.Confidence, streak),
		Acceptable:      true,
		LossStreak:      streak,
		DailyLoss:       dailyLoss,
	}
	if sig.Confidence < m.cfg.RiskThreshold {
		a.Warning = fmt.Sprintf("low confidence signal (%.0f%%)", sig.Confidence)
	}
	if streak >= m.cfg.MaxConsecutiveLosses {
		a.Acceptable = false
		a.Level = model.RiskVeryHigh
		a.Warning = fmt.Sprintf("%d consecutive losses reached, stop trading", streak)
	}
	// The daily cap is checked last so it wins regardless of confidence
	// or streak.
	if dailyLoss > m.cfg.DailyLossCap {
		a.Acceptable = false
		a.Level = model.RiskVeryHigh
		a.Warning = fmt.Sprintf("daily loss ₹%.0f exceeds cap ₹%.0f, stop trading", dailyLoss, m.cfg.DailyLossCap)
	}
	return a
}

// lossStreak counts consecutive losses scanning back from the newest
// entry. Pending entries are skipped; a win ends the streak.
func lossStreak(entries []model.TradeEntry) int {
	streak := 0
	for _, e := range entries {
		switch e.Outcome {
		case model.OutcomePending:
			continue
		case model.OutcomeLoss:
			streak++
		default:
			return streak
		}
	}
	return streak
}

// dailyLoss sums the absolute losses recorded today in the configured
// timezone.
func (m *Manager) dailyLoss(entries []model.TradeEntry) float64 {
	var total float64
	for _, e := range history.FilterDay(entries, time.Now(), m.loc) {
		if e.Outcome == model.OutcomeLoss {
			total += math.Abs(e.ProfitLoss)
		}
	}
	return total
}

// positionSize maps confidence linearly onto [MinAmount, MaxAmount],
// damps it per consecutive loss and rounds to the nearest amountStep.
func (m *Manager) positionSize(confidence float64, streak int) float64 {
	frac := (confidence - model.ConfidenceFloor) / (model.ConfidenceCeiling - model.ConfidenceFloor)
	if frac < 0 {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}
	amount := m.cfg.MinAmount + (m.cfg.MaxAmount-m.cfg.MinAmount)*frac
	if streak > 0 {
		amount *= math.Pow(m.cfg.DampingFactor, float64(streak))
	}
	amount = math.Round(amount/amountStep) * amountStep
	if amount < m.cfg.MinAmount {
		amount = m.cfg.MinAmount
	}
	if amount > m.cfg.MaxAmount {
		amount = m.cfg.MaxAmount
	}
	return amount
}

// level maps confidence onto a band anchored at the configured threshold,
// escalating one level once losses start stacking.
func (m *Manager) level(confidence float64, streak int) model.RiskLevel {
	t := m.cfg.RiskThreshold
	var lvl model.RiskLevel
	switch {
	case confidence >= t+15:
		lvl = model.RiskLow
	case confidence >= t:
		lvl = model.RiskMedium
	case confidence >= t-10:
		lvl = model.RiskHigh
	default:
		lvl = model.RiskVeryHigh
	}
	if streak >= escalationStreak {
		lvl = lvl.Escalate()
	}
	return lvl
}
