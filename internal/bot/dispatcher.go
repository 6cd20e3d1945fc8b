package bot

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"InvestPlanner/internal/advisor"
	"InvestPlanner/internal/conversation"
	"InvestPlanner/internal/model"
	"InvestPlanner/internal/portfolio"
	"InvestPlanner/internal/recorder"
)

const (
	commandsHelp = "Commands:\n" +
		"/catalog - list investment options\n" +
		"/detail <id> - details of one option\n" +
		"/invest <id> <amount> - simulate a purchase\n" +
		"/portfolio - your holdings and gain\n" +
		"/reset - start a new plan"
	investUsage    = "Usage: /invest <id> <amount>, e.g. /invest fd 500"
	detailUsage    = "Usage: /detail <id>, e.g. /detail gold"
	unknownFormat  = "There is no option called %q. Use /catalog to see the available ids."
	reminderFormat = "Monthly reminder: time for this month's SIP into %s."
)

// Emit receives the replies of one chat in order.
type Emit func(model.Reply)

// RatesFactory gives each chat its own rate source, so ledgers never share RNG state.
type RatesFactory func(chatID int64) portfolio.RateSource

// SeededRates derives a per-chat source from seed; a zero seed draws a random one per chat.
func SeededRates(seed uint64) RatesFactory {
	return func(chatID int64) portfolio.RateSource {
		if seed == 0 {
			return portfolio.NewUniformRates(rand.Uint64())
		}
		return portfolio.NewUniformRates(seed ^ uint64(chatID))
	}
}

// Options configure the per-chat state created by a Dispatcher.
type Options struct {
	Pacing conversation.Pacing
	Ledger portfolio.Settings
	Rates  RatesFactory
}

// chat is the state owned by one chat id.
type chat struct {
	id      int64
	session *conversation.Session
	ledger  *portfolio.Ledger

	mu      sync.Mutex
	choices map[string]string // lower-cased option label -> choice value
}

// Dispatcher routes chat messages to per-chat conversations and ledgers.
type Dispatcher struct {
	machine *conversation.Machine
	catalog *portfolio.Catalog
	opts    Options
	rec     recorder.Recorder
	log     zerolog.Logger
	sleep   func(time.Duration)

	mu    sync.Mutex
	chats map[int64]*chat
}

// NewDispatcher creates a dispatcher. rec may be a NoopRecorder.
func NewDispatcher(machine *conversation.Machine, catalog *portfolio.Catalog, opts Options, rec recorder.Recorder, log zerolog.Logger) *Dispatcher {
	if opts.Rates == nil {
		opts.Rates = SeededRates(0)
	}
	return &Dispatcher{
		machine: machine,
		catalog: catalog,
		opts:    opts,
		rec:     rec,
		log:     log.With().Str("component", "bot").Logger(),
		chats:   make(map[int64]*chat),
	}
}

// SetSleeper replaces the pacing sleeper of chats created afterwards.
func (d *Dispatcher) SetSleeper(fn func(time.Duration)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sleep = fn
}

// Handle processes one message of a chat. Commands are answered directly; everything else goes
// to the chat's conversation.
func (d *Dispatcher) Handle(chatID int64, text string, emit Emit) {
	c := d.chat(chatID)
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "/") {
		if d.command(c, text, emit) {
			return
		}
	}

	in, ok := c.choice(text)
	if !ok {
		in = conversation.Text(text)
	}
	c.session.Submit(in, func(r model.Reply) {
		c.remember(r)
		emit(r)
	})
}

// Open greets a chat that has not started a conversation yet.
func (d *Dispatcher) Open(chatID int64, emit Emit) {
	c := d.chat(chatID)
	c.session.Open(func(r model.Reply) {
		c.remember(r)
		emit(r)
	})
}

// ChatIDs returns the known chats in ascending order.
func (d *Dispatcher) ChatIDs() []int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	ids := make([]int64, 0, len(d.chats))
	for id := range d.chats {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Summary is a chat's portfolio and plan, as seen by scheduled jobs.
type Summary struct {
	ChatID         int64
	Valuation      model.Valuation
	Recommendation *model.Recommendation
	Projection     *model.Projection
}

// Summaries reports every known chat.
func (d *Dispatcher) Summaries() []Summary {
	var out []Summary
	for _, id := range d.ChatIDs() {
		c := d.chat(id)
		s := Summary{ChatID: id, Valuation: c.ledger.Valuation()}
		if rec, ok := c.session.Recommendation(); ok {
			s.Recommendation = &rec
		}
		if p, ok := c.session.Projection(); ok {
			s.Projection = &p
		}
		out = append(out, s)
	}
	return out
}

// Reminder builds the monthly SIP reminder for a summary; false when the chat has no plan yet.
func Reminder(s Summary) (model.Reply, bool) {
	if s.Recommendation == nil || s.Projection == nil || s.Projection.MonthlyContribution <= 0 {
		return model.Reply{}, false
	}
	return model.Reply{
		Kind:           model.ReplyReminder,
		Text:           fmt.Sprintf(reminderFormat, s.Recommendation.Category),
		Recommendation: s.Recommendation,
		Projection:     s.Projection,
		Amount:         s.Projection.MonthlyContribution,
	}, true
}

func (d *Dispatcher) chat(id int64) *chat {
	d.mu.Lock()
	defer d.mu.Unlock()
	if c, ok := d.chats[id]; ok {
		return c
	}

	c := &chat{
		id:      id,
		session: conversation.NewSession(d.machine, d.opts.Pacing),
		ledger:  portfolio.NewLedger(d.catalog, d.opts.Rates(id), d.opts.Ledger, d.log),
		choices: make(map[string]string),
	}
	if d.sleep != nil {
		c.session.SetSleeper(d.sleep)
	}
	c.session.OnTurn(func(t conversation.Turn) { d.journalTurn(id, t) })
	c.ledger.OnPurchase(func(e model.PortfolioEntry, amount decimal.Decimal, topUp bool) {
		d.journalPurchase(id, e, amount, topUp)
	})
	d.chats[id] = c
	d.log.Info().Int64("chat", id).Str("session", c.session.ID()).Msg("chat started")
	return c
}

// command answers a slash command. It reports false for commands the conversation handles itself.
func (d *Dispatcher) command(c *chat, text string, emit Emit) bool {
	fields := strings.Fields(text)
	name, _, _ := strings.Cut(strings.ToLower(fields[0]), "@")
	args := fields[1:]

	switch name {
	case "/catalog":
		emit(model.Reply{Kind: model.ReplyCatalog, Instruments: d.catalog.All()})
	case "/detail":
		if len(args) != 1 {
			emit(model.Reply{Kind: model.ReplyRejected, Text: detailUsage})
			break
		}
		inst, ok := d.catalog.Get(args[0])
		if !ok {
			emit(model.Reply{Kind: model.ReplyRejected, Text: fmt.Sprintf(unknownFormat, args[0])})
			break
		}
		emit(model.Reply{Kind: model.ReplyInstrument, Instruments: []model.Instrument{inst}})
	case "/invest":
		emit(d.invest(c, args))
	case "/portfolio":
		v := c.ledger.Valuation()
		emit(model.Reply{Kind: model.ReplyPortfolio, Entries: c.ledger.Entries(), Valuation: &v})
	case "/help":
		emit(model.Reply{Kind: model.ReplyHelp, Text: commandsHelp})
	case "/start", "/reset":
		in := conversation.ChooseAction(conversation.ActionReset)
		if name == "/start" && c.session.State().Step == conversation.StepWelcome {
			in = conversation.Text(text)
		}
		c.session.Submit(in, func(r model.Reply) {
			c.remember(r)
			emit(r)
		})
	default:
		return false
	}
	return true
}

func (d *Dispatcher) invest(c *chat, args []string) model.Reply {
	if len(args) != 2 {
		return model.Reply{Kind: model.ReplyRejected, Text: investUsage}
	}
	amount := parseAmount(args[1])
	entry, err := c.ledger.Purchase(args[0], amount)

	var amountErr *model.AmountError
	switch {
	case err == nil:
		return model.Reply{Kind: model.ReplyPurchase, Entry: &entry, Amount: amount, TopUp: entry.TopUps > 0}
	case errors.As(err, &amountErr):
		return model.Reply{Kind: model.ReplyRejected, Text: capitalize(amountErr.Error()) + "."}
	case errors.Is(err, model.ErrUnknownInstrument):
		return model.Reply{Kind: model.ReplyRejected, Text: fmt.Sprintf(unknownFormat, args[0])}
	default:
		d.log.Error().Err(err).Int64("chat", c.id).Msg("purchase failed")
		return model.Reply{Kind: model.ReplyRejected, Text: investUsage}
	}
}

func (d *Dispatcher) journalTurn(chatID int64, t conversation.Turn) {
	if err := d.rec.RecordTurn(&recorder.TurnEvent{
		ChatID:    chatID,
		SessionID: t.SessionID,
		Input:     t.Input.String(),
		FromStep:  string(t.From.Step),
		ToStep:    string(t.To.Step),
		Replies:   len(t.Replies),
	}); err != nil {
		d.log.Warn().Err(err).Msg("record turn")
	}

	for _, r := range t.Replies {
		if r.Kind != model.ReplyRecommendation || r.Recommendation == nil {
			continue
		}
		p := t.To.Profile
		if err := d.rec.RecordRecommendation(&recorder.RecommendationEvent{
			ChatID:         chatID,
			SessionID:      t.SessionID,
			Income:         p.Income.Amount,
			IncomeBand:     string(p.Income.Band),
			Risk:           string(p.Risk),
			Goal:           string(p.Goal),
			Category:       r.Recommendation.Category,
			ExpectedReturn: r.Recommendation.ExpectedReturn,
		}); err != nil {
			d.log.Warn().Err(err).Msg("record recommendation")
		}
	}
}

func (d *Dispatcher) journalPurchase(chatID int64, e model.PortfolioEntry, amount decimal.Decimal, topUp bool) {
	if err := d.rec.RecordPurchase(&recorder.PurchaseEvent{
		ChatID:       chatID,
		InstrumentID: e.InstrumentID,
		Amount:       amount.InexactFloat64(),
		Invested:     e.InvestedAmount.InexactFloat64(),
		ReturnRate:   e.ReturnRate,
		TopUp:        topUp,
	}); err != nil {
		d.log.Warn().Err(err).Msg("record purchase")
	}
}

// choice maps a tapped keyboard button (its label) or a raw choice value back to a choice input.
func (c *chat) choice(text string) (conversation.Input, bool) {
	c.mu.Lock()
	value, ok := c.choices[strings.ToLower(text)]
	c.mu.Unlock()
	if !ok {
		value = text
	}
	return conversation.ParseChoice(value)
}

// remember keeps the options of the latest prompt so their labels can be resolved.
func (c *chat) remember(r model.Reply) {
	if len(r.Options) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.choices = make(map[string]string, len(r.Options))
	for _, o := range r.Options {
		c.choices[strings.ToLower(o.Label)] = o.Value
	}
}

// parseAmount reads "500", "₹1,500" or "2500.50"; anything else is NaN so the ledger rejects it.
func parseAmount(s string) float64 {
	s = strings.ReplaceAll(advisor.StripCurrency(s), ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
