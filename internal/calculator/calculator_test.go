package calculator

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"CryptoPulse/internal/model"
)

// wavySeries builds a deterministic oscillating walk long enough for every
// indicator window.
func wavySeries(n int) model.PriceSeries {
	points := make([]float64, n)
	for i := range points {
		points[i] = 100 + 5*math.Sin(float64(i)/4) + 0.1*float64(i)
	}
	return model.PriceSeries{Symbol: "CRYPTO IDX", Points: points}
}

func growthSeries(n int, rate float64) model.PriceSeries {
	points := make([]float64, n)
	price := 100.0
	for i := range points {
		price *= rate
		points[i] = price
	}
	return model.PriceSeries{Symbol: "CRYPTO IDX", Points: points}
}

// fallingSeries drops a little more each bar, so the decline keeps
// accelerating in absolute terms over the whole window.
func fallingSeries(n int) model.PriceSeries {
	points := make([]float64, n)
	price := 1000.0
	step := 0.1
	for i := range points {
		price -= step
		step *= 1.05
		points[i] = price
	}
	return model.PriceSeries{Symbol: "CRYPTO IDX", Points: points}
}

func TestCompute_InsufficientData(t *testing.T) {
	tests := []struct {
		name   string
		length int
	}{
		{"empty", 0},
		{"three points", 3},
		{"one under minimum", MinPoints - 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(wavySeries(tt.length))
			if !errors.Is(err, ErrInsufficientData) {
				t.Fatalf("expected ErrInsufficientData for %d points, got %v", tt.length, err)
			}
		})
	}
}

func TestCompute_MinimumLengthSucceeds(t *testing.T) {
	ind, err := Compute(wavySeries(MinPoints))
	if err != nil {
		t.Fatalf("expected success at %d points: %v", MinPoints, err)
	}
	if ind == nil {
		t.Fatal("expected non-nil indicator set")
	}
}

func TestCompute_Idempotent(t *testing.T) {
	series := wavySeries(100)
	first, err := Compute(series)
	if err != nil {
		t.Fatalf("first compute: %v", err)
	}
	second, err := Compute(series)
	if err != nil {
		t.Fatalf("second compute: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("compute is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestCompute_Bounds(t *testing.T) {
	tests := []struct {
		name   string
		series model.PriceSeries
	}{
		{"wavy", wavySeries(100)},
		{"steady growth", growthSeries(100, 1.005)},
		{"steady decline", growthSeries(100, 0.995)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ind, err := Compute(tt.series)
			if err != nil {
				t.Fatalf("compute: %v", err)
			}
			if ind.RSI < 0 || ind.RSI > 100 {
				t.Errorf("RSI out of [0,100]: %f", ind.RSI)
			}
			if ind.BandPosition < -1 || ind.BandPosition > 1 {
				t.Errorf("band position out of [-1,1]: %f", ind.BandPosition)
			}
			if ind.Volatility < 0 || ind.Volatility > 1 {
				t.Errorf("volatility out of [0,1]: %f", ind.Volatility)
			}
			if ind.LastPrice != tt.series.Last() {
				t.Errorf("last price %f does not match series %f", ind.LastPrice, tt.series.Last())
			}
		})
	}
}

func TestCalculateRSI_TrendExtremes(t *testing.T) {
	up := growthSeries(100, 1.01)
	if rsi := CalculateRSI(up.Points); rsi < 90 {
		t.Errorf("expected high RSI for a pure uptrend, got %f", rsi)
	}
	down := growthSeries(100, 0.99)
	if rsi := CalculateRSI(down.Points); rsi > 10 {
		t.Errorf("expected low RSI for a pure downtrend, got %f", rsi)
	}
}

func TestCalculateMACD_HistogramSign(t *testing.T) {
	// Exponential growth keeps the fast EMA pulling away from the slow one.
	_, _, histUp := CalculateMACD(growthSeries(120, 1.02).Points)
	if histUp <= 0 {
		t.Errorf("expected positive histogram for accelerating uptrend, got %f", histUp)
	}
	// A decaying ratio flattens in absolute terms and pulls the histogram
	// positive, so the down fixture steepens its drop bar over bar.
	_, _, histDown := CalculateMACD(fallingSeries(120).Points)
	if histDown >= 0 {
		t.Errorf("expected negative histogram for accelerating downtrend, got %f", histDown)
	}
}

func TestCalculateBandPosition_FlatSeries(t *testing.T) {
	flat := make([]float64, 50)
	for i := range flat {
		flat[i] = 100
	}
	if pos := CalculateBandPosition(flat); pos != 0.5 {
		t.Errorf("degenerate envelope should yield 0.5, got %f", pos)
	}
}

func TestCalculateVolatility_FlatVsNoisy(t *testing.T) {
	flat := make([]float64, 50)
	for i := range flat {
		flat[i] = 100
	}
	if v := CalculateVolatility(flat); v != 0 {
		t.Errorf("flat series should have zero volatility, got %f", v)
	}

	noisy := make([]float64, 50)
	for i := range noisy {
		if i%2 == 0 {
			noisy[i] = 90
		} else {
			noisy[i] = 110
		}
	}
	if v := CalculateVolatility(noisy); v != 1 {
		t.Errorf("violent swings should clamp volatility at 1, got %f", v)
	}
}

func TestNeutralFallbacks(t *testing.T) {
	short := []float64{100, 101, 102}
	if rsi := CalculateRSI(short); rsi != 50 {
		t.Errorf("short-series RSI should be neutral 50, got %f", rsi)
	}
	if v := CalculateVolatility(short); v != 0.5 {
		t.Errorf("short-series volatility should be 0.5, got %f", v)
	}
	if pos := CalculateBandPosition(short); pos != 0.5 {
		t.Errorf("short-series band position should be 0.5, got %f", pos)
	}
	if m, s, h := CalculateMACD(short); m != 0 || s != 0 || h != 0 {
		t.Errorf("short-series MACD should be zeros, got %f %f %f", m, s, h)
	}
}
