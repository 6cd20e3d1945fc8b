package calculator

import (
	"math"

	"InvestPlanner/internal/model"
)

// DefaultMonths is the projection horizon: five years of monthly contributions.
const DefaultMonths = 60

// zeroRate is the monthly rate below which compounding degrades to plain accumulation.
const zeroRate = 1e-12

// Project computes the future value of a monthly SIP paid at the start of each month:
// FV = c * ((1+i)^n - 1) / i * (1+i), with i = annualRatePercent / 1200.
func Project(contribution, annualRatePercent float64, months int) model.Projection {
	if months < 0 {
		months = 0
	}
	n := float64(months)
	invested := contribution * n

	i := annualRatePercent / 1200
	var fv float64
	if math.Abs(i) < zeroRate {
		fv = contribution * n
	} else {
		fv = contribution * (math.Pow(1+i, n) - 1) / i * (1 + i)
	}

	return model.Projection{
		MonthlyContribution: contribution,
		AnnualRate:          annualRatePercent,
		Months:              months,
		Invested:            invested,
		FutureValue:         fv,
	}
}

// Rounded returns p with money fields rounded to whole currency units.
func Rounded(p model.Projection) model.Projection {
	p.MonthlyContribution = math.Round(p.MonthlyContribution)
	p.Invested = math.Round(p.Invested)
	p.FutureValue = math.Round(p.FutureValue)
	return p
}
