package portfolio

import (
	"strings"

	"github.com/shopspring/decimal"

	"InvestPlanner/internal/model"
)

// Catalog is read-only instrument reference data keyed by id.
type Catalog struct {
	items map[string]model.Instrument
	order []string
}

// NewCatalog builds a catalog preserving the given order.
func NewCatalog(items ...model.Instrument) *Catalog {
	c := &Catalog{items: make(map[string]model.Instrument, len(items))}
	for _, it := range items {
		id := normalizeID(it.ID)
		it.ID = id
		if _, dup := c.items[id]; !dup {
			c.order = append(c.order, id)
		}
		c.items[id] = it
	}
	return c
}

// DefaultCatalog returns the built-in instruments.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		model.Instrument{ID: "stocks", Title: "Stock Market", Icon: "📈", RiskLabel: "High Risk",
			Description: "Stocks represent partial ownership in a company.",
			ReturnRange: "12-15%", MinimumAmount: decimal.NewFromInt(100), LockInPeriod: "None"},
		model.Instrument{ID: "funds", Title: "Mutual Funds", Icon: "🥧", RiskLabel: "Medium Risk",
			Description: "A pool of money managed by professionals.",
			ReturnRange: "10-12%", MinimumAmount: decimal.NewFromInt(500), LockInPeriod: "None"},
		model.Instrument{ID: "fd", Title: "Fixed Deposits", Icon: "🛡️", RiskLabel: "Low Risk",
			Description: "Safe investment with banks.",
			ReturnRange: "6-7.5%", MinimumAmount: decimal.NewFromInt(500), LockInPeriod: "1-5 Years"},
		model.Instrument{ID: "crypto", Title: "Cryptocurrency", Icon: "⚡", RiskLabel: "Very High Risk",
			Description: "Volatile digital assets.",
			ReturnRange: "Volatile", MinimumAmount: decimal.NewFromInt(100), LockInPeriod: "None", Volatile: true},
		model.Instrument{ID: "eco", Title: "Green Bonds", Icon: "🌱", RiskLabel: "Low-Medium Risk",
			Description: "Invest in eco-friendly projects.",
			ReturnRange: "7-9%", MinimumAmount: decimal.NewFromInt(10000), LockInPeriod: "3-5 Years"},
		model.Instrument{ID: "gold", Title: "Digital Gold", Icon: "🥇", RiskLabel: "Low Risk",
			Description: "Digital way to invest in gold.",
			ReturnRange: "8-10%", MinimumAmount: decimal.NewFromInt(1), LockInPeriod: "None"},
	)
}

// Get looks up an instrument by id, case-insensitively.
func (c *Catalog) Get(id string) (model.Instrument, bool) {
	it, ok := c.items[normalizeID(id)]
	return it, ok
}

// All returns the instruments in catalog order.
func (c *Catalog) All() []model.Instrument {
	out := make([]model.Instrument, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

// IDs returns the instrument ids in catalog order.
func (c *Catalog) IDs() []string {
	return append([]string(nil), c.order...)
}

func normalizeID(id string) string { return strings.ToLower(strings.TrimSpace(id)) }
