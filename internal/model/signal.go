package model

import "time"

// Direction is the predicted price direction for a signal.
type Direction string

const (
	DirectionUp   Direction = "UP"
	DirectionDown Direction = "DOWN"
)

// Confidence bounds: the scorer never reports below the floor ("confidently
// random") or above the ceiling ("certain").
const (
	ConfidenceFloor   = 50.0
	ConfidenceCeiling = 95.0
)

// FactorScore represents a single voting factor's contribution.
type FactorScore struct {
	Name       string
	RawScore   float64
	Weight     float64
	Weighted   float64
	Commentary string
}

// Signal is the final output of the scoring engine.
type Signal struct {
	Symbol      string
	Direction   Direction
	Confidence  float64 // percent, ConfidenceFloor ~ ConfidenceCeiling
	Strength    float64 // weighted composite, -1.0 ~ 1.0
	DurationMin int     // recommended trade duration in minutes
	Factors     []FactorScore
	Indicators  *IndicatorSet
	GeneratedAt time.Time
}
