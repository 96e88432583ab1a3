package calculator

import "github.com/markcheno/go-talib"

// CalculateBandPosition returns the latest price's position within the
// Bollinger(20, 2σ) envelope: 0 at the lower band, 1 at the upper, clamped
// to [-1,1]. Returns the midpoint 0.5 when data is insufficient or the
// envelope is degenerate.
func CalculateBandPosition(closes []float64) float64 {
	if len(closes) < BandPeriod {
		return 0.5
	}
	upper, _, lower := talib.BBands(closes, BandPeriod, BandStdDev, BandStdDev, 0)
	last := len(closes) - 1
	width := upper[last] - lower[last]
	if width == 0 {
		return 0.5
	}
	pos := (closes[last] - lower[last]) / width
	if pos > 1 {
		pos = 1
	}
	if pos < -1 {
		pos = -1
	}
	return pos
}
