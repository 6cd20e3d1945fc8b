package model

import "github.com/shopspring/decimal"

// Instrument is a static catalog entry describing something the user can invest in.
type Instrument struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	RiskLabel     string          `json:"risk_label"`
	Description   string          `json:"description"`
	ReturnRange   string          `json:"return_range"`
	MinimumAmount decimal.Decimal `json:"minimum_amount"`
	LockInPeriod  string          `json:"lock_in_period"`
	Icon          string          `json:"icon"`
	Volatile      bool            `json:"volatile,omitempty"`
}
