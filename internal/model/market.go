package model

import "time"

// PriceSeries holds one synthetic price walk for analysis.
type PriceSeries struct {
	Symbol      string
	Points      []float64
	GeneratedAt time.Time
}

// Len returns the number of price points.
func (s PriceSeries) Len() int { return len(s.Points) }

// Last returns the most recent price, or 0 for an empty series.
func (s PriceSeries) Last() float64 {
	if len(s.Points) == 0 {
		return 0
	}
	return s.Points[len(s.Points)-1]
}
