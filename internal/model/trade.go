package model

import "time"

// Outcome is the recorded result of a trade.
type Outcome string

const (
	OutcomePending Outcome = "PENDING"
	OutcomeWin     Outcome = "WIN"
	OutcomeLoss    Outcome = "LOSS"
)

// TradeEntry is one append-only history record: either a generated signal
// (outcome PENDING) or a user-reported result.
type TradeEntry struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Direction   Direction `json:"direction,omitempty"`
	Confidence  float64   `json:"confidence,omitempty"`
	Amount      float64   `json:"amount,omitempty"`
	DurationMin int       `json:"duration_min,omitempty"`
	Outcome     Outcome   `json:"outcome"`
	ProfitLoss  float64   `json:"profit_loss"` // negative for losses
}
