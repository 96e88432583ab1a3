package strategy

import (
	"fmt"

	"CryptoPulse/internal/model"
)

// Vote weights and zone boundaries for the three factors.
const (
	weightRSI  = 0.3
	weightMACD = 0.4
	weightBand = 0.3

	oversoldRSI   = 30.0
	overboughtRSI = 70.0
	upperBandZone = 0.8
	lowerBandZone = 0.2
)

// scoreRSI votes +1 when oversold, -1 when overbought.
// Weight: 0.3
func scoreRSI(ind *model.IndicatorSet) model.FactorScore {
	var score float64
	var commentary string
	switch {
	case ind.RSI < oversoldRSI:
		score = 1
		commentary = fmt.Sprintf("oversold RSI=%.0f", ind.RSI)
	case ind.RSI > overboughtRSI:
		score = -1
		commentary = fmt.Sprintf("overbought RSI=%.0f", ind.RSI)
	default:
		commentary = fmt.Sprintf("neutral RSI=%.0f", ind.RSI)
	}
	return model.FactorScore{
		Name:       "RSI",
		RawScore:   score,
		Weight:     weightRSI,
		Weighted:   score * weightRSI,
		Commentary: commentary,
	}
}

// scoreMACD votes with the sign of the MACD histogram.
// Weight: 0.4
func scoreMACD(ind *model.IndicatorSet) model.FactorScore {
	var score float64
	var commentary string
	switch {
	case ind.MACDHist > 0:
		score = 1
		commentary = "bullish crossover"
	case ind.MACDHist < 0:
		score = -1
		commentary = "bearish crossover"
	default:
		commentary = "flat histogram"
	}
	return model.FactorScore{
		Name:       "MACD",
		RawScore:   score,
		Weight:     weightMACD,
		Weighted:   score * weightMACD,
		Commentary: commentary,
	}
}

// scoreBands votes against the band edges: near the upper band the walk is
// stretched (-1), near the lower band it is compressed (+1).
// Weight: 0.3
func scoreBands(ind *model.IndicatorSet) model.FactorScore {
	var score float64
	var commentary string
	switch {
	case ind.BandPosition > upperBandZone:
		score = -1
		commentary = fmt.Sprintf("near upper band (%.2f)", ind.BandPosition)
	case ind.BandPosition < lowerBandZone:
		score = 1
		commentary = fmt.Sprintf("near lower band (%.2f)", ind.BandPosition)
	default:
		commentary = fmt.Sprintf("mid band (%.2f)", ind.BandPosition)
	}
	return model.FactorScore{
		Name:       "Bollinger",
		RawScore:   score,
		Weight:     weightBand,
		Weighted:   score * weightBand,
		Commentary: commentary,
	}
}
