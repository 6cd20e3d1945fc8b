package model

// RiskLevel is the user's stated risk tolerance.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Valid reports whether r is one of the known risk levels.
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// Goal is the primary purpose of the investment.
type Goal string

const (
	GoalShort     Goal = "short"
	GoalLong      Goal = "long"
	GoalEmergency Goal = "emergency"
)

// Valid reports whether g is one of the known goals.
func (g Goal) Valid() bool {
	switch g {
	case GoalShort, GoalLong, GoalEmergency:
		return true
	}
	return false
}

// IncomeBand is a bucketed monthly income.
type IncomeBand string

const (
	IncomeLow    IncomeBand = "low"
	IncomeMedium IncomeBand = "medium"
	IncomeHigh   IncomeBand = "high"
)

// Income carries either a raw monthly amount, a pre-bucketed band, or both.
// The chat keeps the amount; the wizard only needs the band.
type Income struct {
	Amount float64    `json:"amount,omitempty"`
	Band   IncomeBand `json:"band,omitempty"`
}

// Known reports whether any income information is present.
func (i Income) Known() bool { return i.Amount > 0 || i.Band != "" }

// UserProfile is the questionnaire answers collected so far.
type UserProfile struct {
	Income Income    `json:"income"`
	Risk   RiskLevel `json:"risk,omitempty"`
	Goal   Goal      `json:"goal,omitempty"`
}

// Complete reports whether every answer needed for a recommendation is present.
func (p UserProfile) Complete() bool {
	return p.Income.Known() && p.Risk.Valid() && p.Goal.Valid()
}
