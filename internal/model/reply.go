package model

// ReplyKind tells a view layer how to present a Reply.
type ReplyKind string

const (
	ReplyGreeting       ReplyKind = "GREETING"
	ReplyPrompt         ReplyKind = "PROMPT"
	ReplyReprompt       ReplyKind = "REPROMPT"
	ReplyIncomeAck      ReplyKind = "INCOME_ACK"
	ReplyRiskAck        ReplyKind = "RISK_ACK"
	ReplyAnalyzing      ReplyKind = "ANALYZING"
	ReplyRecommendation ReplyKind = "RECOMMENDATION"
	ReplyFollowUp       ReplyKind = "FOLLOW_UP"
	ReplyConcepts       ReplyKind = "CONCEPTS"
	ReplyProjection     ReplyKind = "PROJECTION"
	ReplyGuidance       ReplyKind = "GUIDANCE"
	ReplyHelp           ReplyKind = "HELP"
	ReplyCatalog        ReplyKind = "CATALOG"
	ReplyInstrument     ReplyKind = "INSTRUMENT"
	ReplyPurchase       ReplyKind = "PURCHASE"
	ReplyPortfolio      ReplyKind = "PORTFOLIO"
	ReplyRejected       ReplyKind = "REJECTED"
	ReplyReminder       ReplyKind = "REMINDER"
)

// Option is a clickable choice offered next to a prompt.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Reply is one structured message for the view layer. Only the fields relevant to Kind are set;
// the core never pre-formats currency or markup.
type Reply struct {
	Kind           ReplyKind        `json:"kind"`
	Text           string           `json:"text,omitempty"`
	Options        []Option         `json:"options,omitempty"`
	Income         float64          `json:"income,omitempty"`
	Risk           RiskLevel        `json:"risk,omitempty"`
	Goal           Goal             `json:"goal,omitempty"`
	Recommendation *Recommendation  `json:"recommendation,omitempty"`
	Projection     *Projection      `json:"projection,omitempty"`
	Concepts       []Concept        `json:"concepts,omitempty"`
	Instruments    []Instrument     `json:"instruments,omitempty"`
	Entry          *PortfolioEntry  `json:"entry,omitempty"`
	Entries        []PortfolioEntry `json:"entries,omitempty"`
	Valuation      *Valuation       `json:"valuation,omitempty"`
	Amount         float64          `json:"amount,omitempty"`
	TopUp          bool             `json:"top_up,omitempty"`
}
