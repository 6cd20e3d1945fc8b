package recorder

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestRecorder(t *testing.T) *SQLiteRecorder {
	t.Helper()
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "journal.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })
	return r
}

func count(t *testing.T, r *SQLiteRecorder, table string) int {
	t.Helper()
	var n int
	require.NoError(t, r.db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func TestSQLiteRecorder_RecordsEveryEvent(t *testing.T) {
	r := openTestRecorder(t)

	require.NoError(t, r.RecordTurn(&TurnEvent{ChatID: 1, SessionID: "s", Input: "25000", FromStep: "COLLECT_INCOME", ToStep: "COLLECT_RISK", Replies: 2}))
	require.NoError(t, r.RecordRecommendation(&RecommendationEvent{ChatID: 1, SessionID: "s", Income: 25000, Risk: "high", Goal: "long", Category: "Index Funds / Small-Cap"}))
	require.NoError(t, r.RecordPurchase(&PurchaseEvent{ChatID: 1, InstrumentID: "fd", Amount: 500, Invested: 1000, ReturnRate: 6.8, TopUp: true}))
	require.NoError(t, r.RecordValuation(&ValuationEvent{ChatID: 1, Invested: 1000, Value: 1068, Gain: 68, Entries: 1}))

	assert.Equal(t, 1, count(t, r, "conversation_turns"))
	assert.Equal(t, 1, count(t, r, "recommendations"))
	assert.Equal(t, 1, count(t, r, "purchases"))
	assert.Equal(t, 1, count(t, r, "valuations"))
}

func TestSQLiteRecorder_PurchaseColumns(t *testing.T) {
	r := openTestRecorder(t)
	require.NoError(t, r.RecordPurchase(&PurchaseEvent{ChatID: 42, InstrumentID: "gold", Amount: 10, Invested: 10, ReturnRate: 9.1}))

	var (
		chat     int64
		id       string
		invested float64
		topUp    bool
	)
	err := r.db.QueryRow("SELECT chat_id, instrument_id, invested, top_up FROM purchases").Scan(&chat, &id, &invested, &topUp)
	require.NoError(t, err)
	assert.Equal(t, int64(42), chat)
	assert.Equal(t, "gold", id)
	assert.Equal(t, 10.0, invested)
	assert.False(t, topUp)
}

func TestSQLiteRecorder_MigrateIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	r, err := NewSQLiteRecorder(path, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, r.RecordValuation(&ValuationEvent{ChatID: 7}))
	require.NoError(t, r.Close())

	r, err = NewSQLiteRecorder(path, zerolog.Nop())
	require.NoError(t, err)
	defer r.Close()
	assert.Equal(t, 1, count(t, r, "valuations"))
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NewNoopRecorder()
	assert.NoError(t, r.RecordTurn(&TurnEvent{}))
	assert.NoError(t, r.RecordPurchase(&PurchaseEvent{}))
	assert.NoError(t, r.Close())
}
