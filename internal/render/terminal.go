package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"InvestPlanner/internal/model"
)

var (
	botStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3B82F6"))

	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B"))

	optionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#10B981")).
			Padding(0, 1).
			Width(72)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981"))

	gainStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Bold(true)

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)
)

// Reply renders one structured reply for a terminal.
func Reply(r model.Reply) string {
	switch r.Kind {
	case model.ReplyGreeting, model.ReplyAnalyzing, model.ReplyGuidance, model.ReplyHelp:
		return botStyle.Render(r.Text)
	case model.ReplyPrompt, model.ReplyFollowUp:
		return promptStyle.Render(r.Text) + options(r.Options)
	case model.ReplyReprompt, model.ReplyRejected:
		return warnStyle.Render(r.Text) + options(r.Options)
	case model.ReplyReminder:
		return botStyle.Render(fmt.Sprintf("🔔 %s Suggested SIP: %s.", r.Text, RupeesFloat(r.Amount)))
	case model.ReplyIncomeAck:
		return botStyle.Render(fmt.Sprintf("Got it. Monthly income: %s.", RupeesFloat(r.Income)))
	case model.ReplyRiskAck:
		return botStyle.Render(fmt.Sprintf("Understood, %s risk tolerance.", r.Risk))
	case model.ReplyRecommendation:
		return recommendation(r.Recommendation)
	case model.ReplyConcepts:
		return concepts(r.Concepts)
	case model.ReplyProjection:
		return projection(r.Projection, r.Text)
	case model.ReplyCatalog:
		return catalog(r.Instruments)
	case model.ReplyInstrument:
		if len(r.Instruments) == 0 {
			return ""
		}
		return instrument(r.Instruments[0])
	case model.ReplyPurchase:
		return purchase(r)
	case model.ReplyPortfolio:
		return portfolio(r.Entries, r.Valuation)
	}
	return r.Text
}

// Printer writes rendered replies to a terminal, one block per reply.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a printer over w.
func NewPrinter(w io.Writer) *Printer { return &Printer{w: w} }

// Print renders and writes r.
func (p *Printer) Print(r model.Reply) {
	if s := Reply(r); s != "" {
		fmt.Fprintln(p.w, s)
	}
}

func options(opts []model.Option) string {
	if len(opts) == 0 {
		return ""
	}
	labels := make([]string, 0, len(opts))
	for i, o := range opts {
		labels = append(labels, fmt.Sprintf("[%d] %s", i+1, o.Label))
	}
	return "\n" + optionStyle.Render(strings.Join(labels, "  "))
}

func recommendation(rec *model.Recommendation) string {
	if rec == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(strings.TrimSpace(rec.Icon + " " + rec.Category)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Expected returns: %s\n", rec.ExpectedReturn)
	fmt.Fprintf(&b, "Risk level: %s\n\n", rec.RiskLevel)
	b.WriteString(rec.Rationale)
	return cardStyle.Render(b.String())
}

func concepts(cs []model.Concept) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Key concepts"))
	for _, c := range cs {
		fmt.Fprintf(&b, "\n• %s: %s", c.Term, c.Meaning)
	}
	return cardStyle.Render(b.String())
}

func projection(p *model.Projection, note string) string {
	if p == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%d-month projection: %s", p.Months, p.Category)))
	fmt.Fprintf(&b, "\nMonthly SIP: %s at %s p.a.", RupeesFloat(p.MonthlyContribution), Percent(p.AnnualRate))
	fmt.Fprintf(&b, "\nTotal invested: %s", RupeesFloat(p.Invested))
	fmt.Fprintf(&b, "\nEstimated value: %s", gainStyle.Render(RupeesFloat(p.FutureValue)))
	if note != "" {
		b.WriteString("\n" + optionStyle.Render(note))
	}
	return cardStyle.Render(b.String())
}

func catalog(items []model.Instrument) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Investment options"))
	for _, inst := range items {
		fmt.Fprintf(&b, "\n%s %-24s %-8s returns %-7s min %s  (%s)",
			inst.Icon, inst.Title, inst.ID, inst.ReturnRange, Rupees(inst.MinimumAmount), inst.RiskLabel)
	}
	return cardStyle.Render(b.String())
}

func instrument(inst model.Instrument) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(strings.TrimSpace(inst.Icon + " " + inst.Title)))
	fmt.Fprintf(&b, "\n%s", inst.Description)
	fmt.Fprintf(&b, "\nRisk: %s", inst.RiskLabel)
	fmt.Fprintf(&b, "\nReturns: %s", inst.ReturnRange)
	fmt.Fprintf(&b, "\nMinimum: %s", Rupees(inst.MinimumAmount))
	fmt.Fprintf(&b, "\nLock-in: %s", inst.LockInPeriod)
	return cardStyle.Render(b.String())
}

func purchase(r model.Reply) string {
	if r.Entry == nil {
		return r.Text
	}
	e := r.Entry
	verb := "Invested"
	if r.TopUp {
		verb = "Topped up"
	}
	line := fmt.Sprintf("%s %s in %s %s. Holding: %s at %s, now worth %s.",
		verb, RupeesFloat(r.Amount), e.Icon, e.Title,
		Rupees(e.InvestedAmount), SignedPercent(e.ReturnRate), Rupees(e.CurrentValue()))
	return gainStyle.Render(line)
}

func portfolio(entries []model.PortfolioEntry, v *model.Valuation) string {
	if len(entries) == 0 || v == nil {
		return botStyle.Render("Your portfolio is empty. Use /catalog to see what you can invest in.")
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Your portfolio"))
	for _, e := range entries {
		style := gainStyle
		if e.ReturnRate < 0 {
			style = lossStyle
		}
		fmt.Fprintf(&b, "\n%s %-24s invested %s  value %s  %s",
			e.Icon, e.Title, Rupees(e.InvestedAmount), Rupees(e.CurrentValue()), style.Render(SignedPercent(e.ReturnRate)))
	}
	gain := gainStyle
	if !v.Positive() {
		gain = lossStyle
	}
	fmt.Fprintf(&b, "\n\nTotal invested: %s", Rupees(v.TotalInvested))
	fmt.Fprintf(&b, "\nCurrent value: %s", Rupees(v.TotalValue))
	fmt.Fprintf(&b, "\nTotal gain: %s", gain.Render(SignedRupees(v.TotalGain)))
	return cardStyle.Render(b.String())
}
