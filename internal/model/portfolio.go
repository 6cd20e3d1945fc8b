package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PortfolioEntry is the ledger's position in one instrument.
// ReturnRate is fixed at the first purchase and reused for every top-up.
type PortfolioEntry struct {
	InstrumentID     string          `json:"instrument_id"`
	Title            string          `json:"title"`
	Icon             string          `json:"icon,omitempty"`
	InvestedAmount   decimal.Decimal `json:"invested_amount"`
	ReturnRate       float64         `json:"return_rate"` // % per annum equivalent
	TopUps           int             `json:"top_ups"`
	FirstPurchasedAt time.Time       `json:"first_purchased_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// CurrentValue applies the entry's rate to the cumulative invested amount, rounded to whole units.
func (e PortfolioEntry) CurrentValue() decimal.Decimal {
	growth := decimal.NewFromInt(1).Add(decimal.NewFromFloat(e.ReturnRate).Div(decimal.NewFromInt(100)))
	return e.InvestedAmount.Mul(growth).Round(0)
}

// Gain is the current value above the invested amount.
func (e PortfolioEntry) Gain() decimal.Decimal { return e.CurrentValue().Sub(e.InvestedAmount) }

// Valuation aggregates every entry of a ledger.
type Valuation struct {
	TotalInvested decimal.Decimal `json:"total_invested"`
	TotalValue    decimal.Decimal `json:"total_value"`
	TotalGain     decimal.Decimal `json:"total_gain"`
	Entries       int             `json:"entries"`
}

// Positive reports whether the portfolio is at or above its invested amount.
func (v Valuation) Positive() bool { return !v.TotalGain.IsNegative() }
