package recorder

// TurnEvent is one conversation transition.
type TurnEvent struct {
	ChatID    int64
	SessionID string
	Input     string
	FromStep  string
	ToStep    string
	Replies   int
}

// RecommendationEvent is a completed plan.
type RecommendationEvent struct {
	ChatID         int64
	SessionID      string
	Income         float64
	IncomeBand     string
	Risk           string
	Goal           string
	Category       string
	ExpectedReturn string
}

// PurchaseEvent is an accepted simulated purchase.
type PurchaseEvent struct {
	ChatID       int64
	InstrumentID string
	Amount       float64
	Invested     float64 // cumulative after this purchase
	ReturnRate   float64
	TopUp        bool
}

// ValuationEvent is a portfolio snapshot taken by the scheduler.
type ValuationEvent struct {
	ChatID   int64
	Invested float64
	Value    float64
	Gain     float64
	Entries  int
}

// Recorder journals planner activity for later analysis. It is write-only: nothing reads it back
// to restore a conversation or a portfolio.
type Recorder interface {
	RecordTurn(evt *TurnEvent) error
	RecordRecommendation(evt *RecommendationEvent) error
	RecordPurchase(evt *PurchaseEvent) error
	RecordValuation(evt *ValuationEvent) error
	Close() error
}
