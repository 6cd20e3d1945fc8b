package portfolio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"InvestPlanner/internal/calculator"
	"InvestPlanner/internal/model"
)

// Settings are the simulation constants of a ledger.
type Settings struct {
	VolatileLow  float64 // % p.a.
	VolatileHigh float64
	FallbackRate float64
}

// DefaultSettings returns the -15%..+30% volatile band and the 8% fallback rate.
func DefaultSettings() Settings {
	return Settings{VolatileLow: -15, VolatileHigh: 30, FallbackRate: calculator.DefaultFallbackRate}
}

// PurchaseHook observes every accepted purchase.
type PurchaseHook func(entry model.PortfolioEntry, amount decimal.Decimal, topUp bool)

// Ledger records simulated purchases, one entry per instrument, with concurrency safety.
type Ledger struct {
	mu       sync.Mutex
	catalog  *Catalog
	rates    RateSource
	settings Settings
	entries  map[string]*model.PortfolioEntry
	order    []string
	hook     PurchaseHook
	now      func() time.Time
	log      zerolog.Logger
}

// NewLedger creates an empty ledger over catalog, drawing new rates from rates.
func NewLedger(catalog *Catalog, rates RateSource, settings Settings, log zerolog.Logger) *Ledger {
	return &Ledger{
		catalog:  catalog,
		rates:    rates,
		settings: settings,
		entries:  make(map[string]*model.PortfolioEntry),
		now:      time.Now,
		log:      log.With().Str("component", "ledger").Logger(),
	}
}

// OnPurchase registers a hook called after every accepted purchase.
func (l *Ledger) OnPurchase(h PurchaseHook) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.hook = h
}

// Catalog returns the ledger's instrument catalog.
func (l *Ledger) Catalog() *Catalog { return l.catalog }

// Purchase invests amount in the instrument. The first purchase draws the entry's return rate;
// later purchases top up the invested amount and keep that rate.
func (l *Ledger) Purchase(instrumentID string, amount float64) (model.PortfolioEntry, error) {
	inst, ok := l.catalog.Get(instrumentID)
	if !ok {
		return model.PortfolioEntry{}, fmt.Errorf("%w: %q", model.ErrUnknownInstrument, instrumentID)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return model.PortfolioEntry{}, &model.AmountError{InstrumentID: inst.ID, Title: inst.Title, Amount: amount}
	}
	amt := decimal.NewFromFloat(amount)
	if amt.LessThan(inst.MinimumAmount) {
		return model.PortfolioEntry{}, &model.AmountError{
			InstrumentID: inst.ID, Title: inst.Title, Amount: amount, Minimum: inst.MinimumAmount,
		}
	}

	l.mu.Lock()
	now := l.now()
	entry, topUp := l.entries[inst.ID]
	if topUp {
		entry.InvestedAmount = entry.InvestedAmount.Add(amt)
		entry.TopUps++
		entry.UpdatedAt = now
	} else {
		entry = &model.PortfolioEntry{
			InstrumentID:     inst.ID,
			Title:            inst.Title,
			Icon:             inst.Icon,
			InvestedAmount:   amt,
			ReturnRate:       l.drawRate(inst),
			FirstPurchasedAt: now,
			UpdatedAt:        now,
		}
		l.entries[inst.ID] = entry
		l.order = append(l.order, inst.ID)
	}
	out := *entry
	hook := l.hook
	l.mu.Unlock()

	l.log.Info().
		Str("instrument", inst.ID).
		Str("amount", amt.String()).
		Float64("rate", out.ReturnRate).
		Bool("top_up", topUp).
		Msg("purchase recorded")
	if hook != nil {
		hook(out, amt, topUp)
	}
	return out, nil
}

// drawRate picks the annual rate for a first purchase, rounded to one decimal.
func (l *Ledger) drawRate(inst model.Instrument) float64 {
	var rate float64
	if inst.Volatile {
		rate = l.rates.Draw(l.settings.VolatileLow, l.settings.VolatileHigh)
	} else {
		low, high, err := calculator.ParseBand(inst.ReturnRange)
		if err != nil {
			l.log.Warn().Err(err).Str("instrument", inst.ID).Float64("fallback", l.settings.FallbackRate).
				Msg("return range unparseable, using fallback rate")
			return l.settings.FallbackRate
		}
		rate = l.rates.Draw(low, high)
	}
	return math.Round(rate*10) / 10
}

// Entry returns a copy of the entry for the instrument, if held.
func (l *Ledger) Entry(instrumentID string) (model.PortfolioEntry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.entries[normalizeID(instrumentID)]
	if !ok {
		return model.PortfolioEntry{}, false
	}
	return *e, true
}

// Entries returns copies of all entries in first-purchase order.
func (l *Ledger) Entries() []model.PortfolioEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.PortfolioEntry, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, *l.entries[id])
	}
	return out
}

// Len is the number of distinct instruments held.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.order)
}

// Valuation totals invested amount and current value across all entries.
func (l *Ledger) Valuation() model.Valuation {
	l.mu.Lock()
	defer l.mu.Unlock()
	v := model.Valuation{TotalInvested: decimal.Zero, TotalValue: decimal.Zero, Entries: len(l.order)}
	for _, id := range l.order {
		e := l.entries[id]
		v.TotalInvested = v.TotalInvested.Add(e.InvestedAmount)
		v.TotalValue = v.TotalValue.Add(e.CurrentValue())
	}
	v.TotalGain = v.TotalValue.Sub(v.TotalInvested)
	return v
}
