package model

// RiskLevel is the qualitative risk label attached to an assessment.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskMedium   RiskLevel = "Medium"
	RiskHigh     RiskLevel = "High"
	RiskVeryHigh RiskLevel = "Very High"
)

// Escalate bumps a risk level one step toward RiskVeryHigh.
func (l RiskLevel) Escalate() RiskLevel {
	switch l {
	case RiskLow:
		return RiskMedium
	case RiskMedium:
		return RiskHigh
	default:
		return RiskVeryHigh
	}
}

// RiskAssessment is the position-sizing verdict for one signal.
type RiskAssessment struct {
	SuggestedAmount float64
	Level           RiskLevel
	Acceptable      bool
	Warning         string
	LossStreak      int
	DailyLoss       float64
}
