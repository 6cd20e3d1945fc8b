package model

// Recommendation is the engine's answer for one profile. It is a value: each query gets a fresh copy.
type Recommendation struct {
	Category       string `json:"category"`
	ExpectedReturn string `json:"expected_return"` // e.g. "12-15%"
	RiskLevel      string `json:"risk_level"`
	Rationale      string `json:"rationale"`
	Icon           string `json:"icon,omitempty"`
}

// Projection is the outcome of a monthly SIP compounded over a horizon.
type Projection struct {
	Category            string  `json:"category,omitempty"`
	MonthlyContribution float64 `json:"monthly_contribution"`
	AnnualRate          float64 `json:"annual_rate"`
	Months              int     `json:"months"`
	Invested            float64 `json:"invested"`
	FutureValue         float64 `json:"future_value"`
}

// Gain is the projected value above the amount contributed.
func (p Projection) Gain() float64 { return p.FutureValue - p.Invested }

// Concept is one entry of the concepts explainer.
type Concept struct {
	Term    string `json:"term"`
	Meaning string `json:"meaning"`
}
