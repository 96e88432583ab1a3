package calculator

import (
	"errors"
	"fmt"

	"CryptoPulse/internal/model"
)

// Indicator windows, fixed to the classic parameterizations.
const (
	RSIPeriod        = 14
	MACDFast         = 12
	MACDSlow         = 26
	MACDSignalPeriod = 9
	BandPeriod       = 20
	BandStdDev       = 2.0
	VolatilityPeriod = 20
)

// MinPoints is the shortest series Compute accepts: the MACD slow EMA plus
// its signal line, the widest window in the set.
const MinPoints = MACDSlow + MACDSignalPeriod

// ErrInsufficientData is returned when a series is shorter than MinPoints.
var ErrInsufficientData = errors.New("insufficient data")

// Compute derives the full indicator set from one price series. Pure: the
// same series always yields the same result.
func Compute(series model.PriceSeries) (*model.IndicatorSet, error) {
	closes := series.Points
	if len(closes) < MinPoints {
		return nil, fmt.Errorf("%w: %d points, need at least %d", ErrInsufficientData, len(closes), MinPoints)
	}

	macd, signal, hist := CalculateMACD(closes)
	return &model.IndicatorSet{
		RSI:          CalculateRSI(closes),
		MACD:         macd,
		MACDSignal:   signal,
		MACDHist:     hist,
		BandPosition: CalculateBandPosition(closes),
		Volatility:   CalculateVolatility(closes),
		LastPrice:    closes[len(closes)-1],
	}, nil
}
