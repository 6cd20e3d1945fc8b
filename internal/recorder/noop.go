package recorder

// NoopRecorder is used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordTurn(_ *TurnEvent) error                     { return nil }
func (n *NoopRecorder) RecordRecommendation(_ *RecommendationEvent) error { return nil }
func (n *NoopRecorder) RecordPurchase(_ *PurchaseEvent) error             { return nil }
func (n *NoopRecorder) RecordValuation(_ *ValuationEvent) error           { return nil }
func (n *NoopRecorder) Close() error                                      { return nil }
