package advisor

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"InvestPlanner/internal/model"
)

// Income band boundaries (monthly).
const (
	LowIncomeBelow   = 20000
	MediumIncomeUpTo = 50000
)

const (
	IncomeReprompt = "Please enter a valid monthly income number (e.g., 25000)."
	IncomeMissing  = "Please enter your income."
)

var (
	reCurrency = regexp.MustCompile(`(?i)₹|\b(?:rs|inr)\b\.?`)
	reAmount   = regexp.MustCompile(`-?\d[\d,]*(?:\.\d+)?|-?\.\d+`)
)

// StripCurrency blanks out rupee markers ("₹", "Rs", "Rs.", "INR") so the dot of "Rs.500" is not
// read as a decimal point.
func StripCurrency(text string) string {
	return strings.TrimSpace(reCurrency.ReplaceAllString(text, " "))
}

// ParseIncome extracts a monthly income from free text such as "25000", "₹25,000" or
// "about Rs 25000 a month". Non-numeric and non-positive values are rejected with ErrInvalidInput.
func ParseIncome(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, model.NewInputError(IncomeMissing)
	}
	m := reAmount.FindString(StripCurrency(text))
	if m == "" {
		return 0, model.NewInputError(IncomeReprompt)
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, model.NewInputError(IncomeReprompt)
	}
	return v, nil
}

// BucketIncome places a monthly income into a band.
func BucketIncome(amount float64) model.IncomeBand {
	switch {
	case amount < LowIncomeBelow:
		return model.IncomeLow
	case amount <= MediumIncomeUpTo:
		return model.IncomeMedium
	default:
		return model.IncomeHigh
	}
}

// IncomeFromAmount keeps the raw amount and derives its band.
func IncomeFromAmount(amount float64) model.Income {
	return model.Income{Amount: amount, Band: BucketIncome(amount)}
}

// MonthlyContribution is the share of income set aside each month, rounded to whole units.
func MonthlyContribution(income model.Income, fraction float64) float64 {
	if income.Amount <= 0 || fraction <= 0 {
		return 0
	}
	return math.Round(income.Amount * fraction)
}
