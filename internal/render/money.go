package render

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// rupee formats whole rupees; the core already rounds money to whole units.
var rupee = func() *money.Formatter {
	cur := money.GetCurrency(money.INR)
	return money.NewFormatter(0, cur.Decimal, cur.Thousand, cur.Grapheme, cur.Template)
}()

// Rupees formats an amount as "₹25,000", rounding to the nearest rupee.
func Rupees(d decimal.Decimal) string {
	return rupee.Format(d.Round(0).IntPart())
}

// RupeesFloat is Rupees for float amounts.
func RupeesFloat(f float64) string {
	return Rupees(decimal.NewFromFloat(f))
}

// SignedRupees prefixes non-negative amounts with "+".
func SignedRupees(d decimal.Decimal) string {
	if d.IsNegative() {
		return Rupees(d)
	}
	return "+" + Rupees(d)
}

// Percent formats a rate with one decimal, e.g. "13.5%".
func Percent(rate float64) string {
	return decimal.NewFromFloat(rate).StringFixed(1) + "%"
}

// SignedPercent is Percent with "+" for non-negative rates.
func SignedPercent(rate float64) string {
	if rate < 0 {
		return Percent(rate)
	}
	return "+" + Percent(rate)
}
