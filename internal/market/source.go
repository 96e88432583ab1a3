package market

import (
	"time"

	"CryptoPulse/internal/model"
)

// Source produces price series for the pipeline.
type Source interface {
	Series(length int) model.PriceSeries
	Name() string
}

// FixedSource replays a canned price sequence for development and testing.
type FixedSource struct {
	Symbol string
	Points []float64
}

func (f *FixedSource) Name() string { return "fixed" }

// Series returns the canned points regardless of the requested length.
func (f *FixedSource) Series(_ int) model.PriceSeries {
	points := make([]float64, len(f.Points))
	copy(points, f.Points)
	return model.PriceSeries{
		Symbol:      f.Symbol,
		Points:      points,
		GeneratedAt: time.Now(),
	}
}
