package calculator

import "github.com/markcheno/go-talib"

// CalculateRSI computes the RSI over RSIPeriod and returns the latest value,
// bounded to [0,100]. Returns a neutral 50 when data is insufficient.
func CalculateRSI(closes []float64) float64 {
	if len(closes) < RSIPeriod+1 {
		return 50
	}
	rsi := talib.Rsi(closes, RSIPeriod)
	return rsi[len(rsi)-1]
}
