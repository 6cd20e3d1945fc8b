package advisor

import "InvestPlanner/internal/model"

// Rule maps a (risk, goal) match to a recommendation. An empty Risk matches any risk level.
type Rule struct {
	Goal           model.Goal
	Risk           model.RiskLevel
	Recommendation model.Recommendation
}

func (r Rule) matches(risk model.RiskLevel, goal model.Goal) bool {
	if r.Goal != goal {
		return false
	}
	return r.Risk == "" || r.Risk == risk
}

// Rules is the decision table, evaluated top to bottom; the first match wins.
// Emergency comes first so that safety dominates any stated risk tolerance.
var Rules = []Rule{
	{Goal: model.GoalEmergency, Recommendation: model.Recommendation{
		Category:       "Liquid Funds / FDs",
		ExpectedReturn: "6-7%",
		RiskLevel:      "Low",
		Rationale:      "For emergency funds, immediate access and safety are more important than high returns. Liquid funds beat a savings account and are just as accessible.",
		Icon:           "🚑",
	}},
	{Goal: model.GoalShort, Risk: model.RiskHigh, Recommendation: model.Recommendation{
		Category:       "Short-Duration Debt Funds",
		ExpectedReturn: "7-9%",
		RiskLevel:      "Low-Medium",
		Rationale:      "Short term goals shouldn't be exposed to high stock market volatility, but debt funds offer better returns than FDs.",
		Icon:           "📉",
	}},
	{Goal: model.GoalShort, Recommendation: model.Recommendation{
		Category:       "Fixed Deposits / RDs",
		ExpectedReturn: "6-7.5%",
		RiskLevel:      "Low",
		Rationale:      "For short durations with low risk, FDs and recurring deposits guarantee your capital is safe when you need it.",
		Icon:           "🏦",
	}},
	{Goal: model.GoalLong, Risk: model.RiskHigh, Recommendation: model.Recommendation{
		Category:       "Index Funds / Small-Cap",
		ExpectedReturn: "12-15%",
		RiskLevel:      "High",
		Rationale:      "Long time horizons allow you to ride out market volatility for maximum growth. Pure equity funds have the best potential for wealth creation.",
		Icon:           "🚀",
	}},
	{Goal: model.GoalLong, Risk: model.RiskMedium, Recommendation: model.Recommendation{
		Category:       "Flexi-Cap Funds",
		ExpectedReturn: "10-12%",
		RiskLevel:      "Medium-High",
		Rationale:      "Balances growth and stability by investing in companies of all sizes.",
		Icon:           "📈",
	}},
	{Goal: model.GoalLong, Risk: model.RiskLow, Recommendation: model.Recommendation{
		Category:       "Conservative Hybrid Funds",
		ExpectedReturn: "8-10%",
		RiskLevel:      "Low-Medium",
		Rationale:      "Even for the long term you prefer safety. Hybrid funds invest mostly in debt but keep a small portion in stocks to beat inflation.",
		Icon:           "🛡️",
	}},
}

// DefaultRecommendation is returned when no rule matches.
var DefaultRecommendation = model.Recommendation{
	Category:       "Balanced Funds",
	ExpectedReturn: "8-10%",
	RiskLevel:      "Medium",
	Rationale:      "A balanced mix of equity and debt funds provides a safety net while still letting your money grow over time.",
	Icon:           "⚖️",
}

// Engine selects an investment category for a profile.
type Engine struct {
	rules    []Rule
	fallback model.Recommendation
}

// NewEngine returns an engine over the default decision table.
func NewEngine() *Engine {
	return &Engine{rules: Rules, fallback: DefaultRecommendation}
}

// Recommend maps (risk, goal) to a recommendation. Income is advisory only and never changes the
// category; it is accepted so both front ends call the engine the same way.
func (e *Engine) Recommend(_ model.Income, risk model.RiskLevel, goal model.Goal) model.Recommendation {
	for _, r := range e.rules {
		if r.matches(risk, goal) {
			return r.Recommendation
		}
	}
	return e.fallback
}

// RecommendProfile is Recommend over a collected profile.
func (e *Engine) RecommendProfile(p model.UserProfile) model.Recommendation {
	return e.Recommend(p.Income, p.Risk, p.Goal)
}
