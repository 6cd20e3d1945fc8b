package advisor

import (
	"InvestPlanner/internal/calculator"
	"InvestPlanner/internal/model"
)

// PlanSettings are the projection constants shared by both front ends.
type PlanSettings struct {
	ContributionFraction float64
	HorizonMonths        int
	FallbackRate         float64
}

// DefaultPlanSettings returns a 20% contribution over 60 months with an 8% fallback rate.
func DefaultPlanSettings() PlanSettings {
	return PlanSettings{
		ContributionFraction: 0.20,
		HorizonMonths:        calculator.DefaultMonths,
		FallbackRate:         calculator.DefaultFallbackRate,
	}
}

// ProjectPlan sizes a monthly SIP from income and projects it at the mean of the recommendation's
// return range. fellBack is true when the range was unparseable and s.FallbackRate was used instead.
func ProjectPlan(income model.Income, rec model.Recommendation, s PlanSettings) (p model.Projection, fellBack bool) {
	contribution := MonthlyContribution(income, s.ContributionFraction)
	rate, err := calculator.ParseRate(rec.ExpectedReturn)
	if err != nil {
		rate, fellBack = s.FallbackRate, true
	}
	p = calculator.Rounded(calculator.Project(contribution, rate, s.HorizonMonths))
	p.Category = rec.Category
	return p, fellBack
}
