package calculator

import "github.com/markcheno/go-talib"

// CalculateVolatility scales the rolling standard deviation of single-step
// returns to [0,1]. Returns a mid-range 0.5 when data is insufficient.
func CalculateVolatility(closes []float64) float64 {
	if len(closes) < VolatilityPeriod+1 {
		return 0.5
	}

	returns := make([]float64, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			returns[i-1] = 0
			continue
		}
		returns[i-1] = closes[i]/closes[i-1] - 1
	}

	std := talib.StdDev(returns, VolatilityPeriod, 1.0)
	v := std[len(std)-1] * 50
	if v > 1 {
		v = 1
	}
	if v < 0 {
		v = 0
	}
	return v
}
