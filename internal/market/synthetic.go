package market

import (
	"math/rand"
	"sync"
	"time"

	"CryptoPulse/internal/model"
)

const (
	trendMin   = 0.1
	trendMax   = 0.3
	noiseSigma = 0.5
)

// SyntheticSource generates a random-walk price series: one per-series drift
// drawn from ±[trendMin,trendMax], gaussian noise per step, cumulative sum
// from the base price.
type SyntheticSource struct {
	Symbol    string
	BasePrice float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSyntheticSource creates a source with an explicit seed so callers can
// reproduce a walk.
func NewSyntheticSource(symbol string, basePrice float64, seed int64) *SyntheticSource {
	return &SyntheticSource{
		Symbol:    symbol,
		BasePrice: basePrice,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

func (s *SyntheticSource) Name() string { return "synthetic" }

// Series generates a fresh walk of the requested length. Always succeeds;
// lengths below 1 are raised to 1.
func (s *SyntheticSource) Series(length int) model.PriceSeries {
	s.mu.Lock()
	defer s.mu.Unlock()

	if length < 1 {
		length = 1
	}

	trend := trendMin + (trendMax-trendMin)*s.rng.Float64()
	if s.rng.Intn(2) == 0 {
		trend = -trend
	}

	points := make([]float64, length)
	price := s.BasePrice
	for i := range points {
		next := price + trend + s.rng.NormFloat64()*noiseSigma
		if next <= 0 {
			next = price * 0.99
		}
		price = next
		points[i] = price
	}

	return model.PriceSeries{
		Symbol:      s.Symbol,
		Points:      points,
		GeneratedAt: time.Now(),
	}
}
