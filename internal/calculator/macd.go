package calculator

import "github.com/markcheno/go-talib"

// CalculateMACD computes the MACD(12,26,9) line, signal line, and histogram
// and returns the latest value of each. Returns zeros when data is
// insufficient.
func CalculateMACD(closes []float64) (macd, signal, hist float64) {
	if len(closes) < MACDSlow+MACDSignalPeriod {
		return 0, 0, 0
	}
	m, s, h := talib.Macd(closes, MACDFast, MACDSlow, MACDSignalPeriod)
	last := len(closes) - 1
	return m[last], s[last], h[last]
}
