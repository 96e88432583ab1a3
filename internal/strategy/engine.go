package strategy

import (
	"math"
	"time"

	"CryptoPulse/internal/model"
)

// Duration ladder: calmer markets with stronger, more confident signals get
// longer trades.
const (
	durationShortMin  = 5
	durationMediumMin = 10
	durationLongMin   = 15
)

// Evaluate combines the indicator votes into a directional signal with a
// bounded confidence and a recommended duration. Total function: every
// indicator set produces a signal.
func Evaluate(ind *model.IndicatorSet) *model.Signal {
	f1 := scoreRSI(ind)
	f2 := scoreMACD(ind)
	f3 := scoreBands(ind)

	strength := f1.Weighted + f2.Weighted + f3.Weighted

	direction := model.DirectionDown
	if strength > 0 {
		direction = model.DirectionUp
	}

	confidence := model.ConfidenceFloor + math.Abs(strength)*(model.ConfidenceCeiling-model.ConfidenceFloor)
	if confidence < model.ConfidenceFloor {
		confidence = model.ConfidenceFloor
	}
	if confidence > model.ConfidenceCeiling {
		confidence = model.ConfidenceCeiling
	}

	return &model.Signal{
		Direction:   direction,
		Confidence:  confidence,
		Strength:    strength,
		DurationMin: recommendDuration(strength, confidence, ind.Volatility),
		Factors:     []model.FactorScore{f1, f2, f3},
		Indicators:  ind,
		GeneratedAt: time.Now(),
	}
}

// recommendDuration maps volatility, strength, and confidence onto the
// 5/10/15-minute ladder.
func recommendDuration(strength, confidence, volatility float64) int {
	score := (1-volatility)*0.4 + math.Min(math.Abs(strength), 1)*0.3 + confidence/100*0.3
	switch {
	case score < 0.4:
		return durationShortMin
	case score < 0.7:
		return durationMediumMin
	default:
		return durationLongMin
	}
}
