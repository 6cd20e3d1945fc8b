package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"InvestPlanner/internal/model"
)

var allRisks = []model.RiskLevel{model.RiskLow, model.RiskMedium, model.RiskHigh}

func TestRecommend_EmergencyIgnoresRisk(t *testing.T) {
	e := NewEngine()
	for _, risk := range allRisks {
		rec := e.Recommend(IncomeFromAmount(25000), risk, model.GoalEmergency)
		assert.Equal(t, "Liquid Funds / FDs", rec.Category, "risk %s", risk)
		assert.Equal(t, "6-7%", rec.ExpectedReturn)
		assert.Equal(t, "Low", rec.RiskLevel)
	}
}

func TestRecommend_DecisionTable(t *testing.T) {
	tests := []struct {
		risk     model.RiskLevel
		goal     model.Goal
		category string
		returns  string
	}{
		{model.RiskHigh, model.GoalShort, "Short-Duration Debt Funds", "7-9%"},
		{model.RiskMedium, model.GoalShort, "Fixed Deposits / RDs", "6-7.5%"},
		{model.RiskLow, model.GoalShort, "Fixed Deposits / RDs", "6-7.5%"},
		{model.RiskHigh, model.GoalLong, "Index Funds / Small-Cap", "12-15%"},
		{model.RiskMedium, model.GoalLong, "Flexi-Cap Funds", "10-12%"},
		{model.RiskLow, model.GoalLong, "Conservative Hybrid Funds", "8-10%"},
	}
	e := NewEngine()
	for _, tt := range tests {
		rec := e.Recommend(model.Income{Band: model.IncomeMedium}, tt.risk, tt.goal)
		assert.Equal(t, tt.category, rec.Category, "%s/%s", tt.risk, tt.goal)
		assert.Equal(t, tt.returns, rec.ExpectedReturn, "%s/%s", tt.risk, tt.goal)
		assert.NotEmpty(t, rec.Rationale)
	}
}

func TestRecommend_FallbackIsBalanced(t *testing.T) {
	e := NewEngine()
	rec := e.Recommend(model.Income{}, model.RiskHigh, model.Goal("vacation"))
	assert.Equal(t, DefaultRecommendation, rec)

	// long goal without a known risk level has no matching rule either
	rec = e.Recommend(model.Income{}, "", model.GoalLong)
	assert.Equal(t, "Balanced Funds", rec.Category)
	assert.Equal(t, "Medium", rec.RiskLevel)
}

func TestRecommend_IsPure(t *testing.T) {
	e := NewEngine()
	for _, risk := range allRisks {
		for _, goal := range []model.Goal{model.GoalShort, model.GoalLong, model.GoalEmergency} {
			a := e.Recommend(IncomeFromAmount(10000), risk, goal)
			b := e.Recommend(IncomeFromAmount(90000), risk, goal)
			assert.Equal(t, a, b, "income must not change the category for %s/%s", risk, goal)
		}
	}
}

func TestRecommend_ReturnedValueIsACopy(t *testing.T) {
	e := NewEngine()
	rec := e.Recommend(model.Income{}, model.RiskHigh, model.GoalLong)
	rec.Category = "mutated"
	again := e.Recommend(model.Income{}, model.RiskHigh, model.GoalLong)
	assert.Equal(t, "Index Funds / Small-Cap", again.Category)
}

func TestParseIncome(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"25000", 25000},
		{"₹25,000", 25000},
		{"Rs. 1,00,000", 100000},
		{"about 42000.50 a month", 42000.5},
		{"  60000  ", 60000},
		{"Rs.25000", 25000},
		{"INR.50000", 50000},
		{"Rs.25,000", 25000},
		{"rs 30000", 30000},
		{"salary INR 75,000.75", 75000.75},
	}
	for _, tt := range tests {
		got, err := ParseIncome(tt.in)
		require.NoError(t, err, tt.in)
		assert.InDelta(t, tt.want, got, 1e-9, tt.in)
	}
}

func TestParseIncome_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "-5", "0", "₹ -2,000"} {
		_, err := ParseIncome(in)
		require.Error(t, err, in)
		assert.ErrorIs(t, err, model.ErrInvalidInput, in)
	}
}

func TestParseIncome_CurrencyDotKeepsContribution(t *testing.T) {
	got, err := ParseIncome("Rs.25000")
	require.NoError(t, err)
	assert.Equal(t, 5000.0, MonthlyContribution(IncomeFromAmount(got), 0.2))
}

func TestStripCurrency(t *testing.T) {
	assert.Equal(t, "500", StripCurrency("Rs.500"))
	assert.Equal(t, "1,500", StripCurrency("₹1,500"))
	assert.Equal(t, "50000", StripCurrency("INR.50000"))
	assert.Equal(t, "hours 40", StripCurrency("hours 40"))
}

func TestBucketIncome_Boundaries(t *testing.T) {
	tests := []struct {
		amount float64
		band   model.IncomeBand
	}{
		{5000, model.IncomeLow},
		{19999.99, model.IncomeLow},
		{20000, model.IncomeMedium},
		{50000, model.IncomeMedium},
		{50000.01, model.IncomeHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.band, BucketIncome(tt.amount), "amount %.2f", tt.amount)
	}
}

func TestMonthlyContribution(t *testing.T) {
	assert.Equal(t, 5000.0, MonthlyContribution(IncomeFromAmount(25000), 0.2))
	assert.Equal(t, 2469.0, MonthlyContribution(IncomeFromAmount(12345), 0.2))
	assert.Equal(t, 0.0, MonthlyContribution(model.Income{Band: model.IncomeHigh}, 0.2))
}
