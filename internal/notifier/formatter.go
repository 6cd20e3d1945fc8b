package notifier

import (
	"fmt"
	"html"
	"strings"

	"InvestPlanner/internal/model"
	"InvestPlanner/internal/render"
)

// FormatReply turns a structured reply into a Telegram HTML message. Option labels become buttons.
func FormatReply(r model.Reply) Message {
	msg := Message{Text: formatText(r)}
	for _, o := range r.Options {
		msg.Buttons = append(msg.Buttons, o.Label)
	}
	return msg
}

func formatText(r model.Reply) string {
	var b strings.Builder
	switch r.Kind {
	case model.ReplyIncomeAck:
		fmt.Fprintf(&b, "Got it. Monthly income: <b>%s</b>.", render.RupeesFloat(r.Income))
	case model.ReplyRiskAck:
		fmt.Fprintf(&b, "Understood, <b>%s</b> risk tolerance.", html.EscapeString(string(r.Risk)))
	case model.ReplyReminder:
		fmt.Fprintf(&b, "🔔 %s\nSuggested SIP: <b>%s</b>", html.EscapeString(r.Text), render.RupeesFloat(r.Amount))
	case model.ReplyRecommendation:
		if rec := r.Recommendation; rec != nil {
			fmt.Fprintf(&b, "%s <b>%s</b>\n\n", rec.Icon, html.EscapeString(rec.Category))
			fmt.Fprintf(&b, "Expected returns: %s\n", html.EscapeString(rec.ExpectedReturn))
			fmt.Fprintf(&b, "Risk level: %s\n\n", html.EscapeString(rec.RiskLevel))
			b.WriteString(html.EscapeString(rec.Rationale))
		}
	case model.ReplyConcepts:
		b.WriteString("📚 <b>Key concepts</b>\n")
		for _, c := range r.Concepts {
			fmt.Fprintf(&b, "\n• <b>%s</b>: %s", html.EscapeString(c.Term), html.EscapeString(c.Meaning))
		}
	case model.ReplyProjection:
		if p := r.Projection; p != nil {
			fmt.Fprintf(&b, "📈 <b>%d-month projection</b> (%s)\n\n", p.Months, html.EscapeString(p.Category))
			fmt.Fprintf(&b, "Monthly SIP: %s at %s p.a.\n", render.RupeesFloat(p.MonthlyContribution), render.Percent(p.AnnualRate))
			fmt.Fprintf(&b, "Total invested: %s\n", render.RupeesFloat(p.Invested))
			fmt.Fprintf(&b, "Estimated value: <b>%s</b>", render.RupeesFloat(p.FutureValue))
			if r.Text != "" {
				fmt.Fprintf(&b, "\n\n<i>%s</i>", html.EscapeString(r.Text))
			}
		}
	case model.ReplyCatalog:
		b.WriteString("🗂 <b>Investment options</b>\n")
		for _, inst := range r.Instruments {
			fmt.Fprintf(&b, "\n%s <b>%s</b> (<code>%s</code>)\n   returns %s, min %s, %s",
				inst.Icon, html.EscapeString(inst.Title), inst.ID,
				html.EscapeString(inst.ReturnRange), render.Rupees(inst.MinimumAmount), html.EscapeString(inst.RiskLabel))
		}
		b.WriteString("\n\nDetails: /detail &lt;id&gt;   Invest: /invest &lt;id&gt; &lt;amount&gt;")
	case model.ReplyInstrument:
		for _, inst := range r.Instruments {
			fmt.Fprintf(&b, "%s <b>%s</b>\n\n%s\n\n", inst.Icon, html.EscapeString(inst.Title), html.EscapeString(inst.Description))
			fmt.Fprintf(&b, "Risk: %s\nReturns: %s\nMinimum: %s\nLock-in: %s",
				html.EscapeString(inst.RiskLabel), html.EscapeString(inst.ReturnRange),
				render.Rupees(inst.MinimumAmount), html.EscapeString(inst.LockInPeriod))
		}
	case model.ReplyPurchase:
		if e := r.Entry; e != nil {
			if r.TopUp {
				fmt.Fprintf(&b, "➕ Added %s to your existing %s holding.\n", render.RupeesFloat(r.Amount), html.EscapeString(e.Title))
			} else {
				fmt.Fprintf(&b, "✅ Invested %s in %s %s.\n", render.RupeesFloat(r.Amount), e.Icon, html.EscapeString(e.Title))
			}
			fmt.Fprintf(&b, "Holding: %s at %s, now worth <b>%s</b>.",
				render.Rupees(e.InvestedAmount), render.SignedPercent(e.ReturnRate), render.Rupees(e.CurrentValue()))
		}
	case model.ReplyPortfolio:
		if len(r.Entries) == 0 || r.Valuation == nil {
			b.WriteString("Your portfolio is empty. Use /catalog to see what you can invest in.")
			break
		}
		b.WriteString("💼 <b>Your portfolio</b>\n")
		for _, e := range r.Entries {
			fmt.Fprintf(&b, "\n%s %s: %s → %s (%s)", e.Icon, html.EscapeString(e.Title),
				render.Rupees(e.InvestedAmount), render.Rupees(e.CurrentValue()), render.SignedPercent(e.ReturnRate))
		}
		v := r.Valuation
		fmt.Fprintf(&b, "\n\nTotal invested: %s\nCurrent value: %s\nTotal gain: <b>%s</b>",
			render.Rupees(v.TotalInvested), render.Rupees(v.TotalValue), render.SignedRupees(v.TotalGain))
	default:
		b.WriteString(html.EscapeString(r.Text))
	}
	return b.String()
}
