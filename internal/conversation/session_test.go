package conversation

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"InvestPlanner/internal/model"
)

// event is either a sleep or an emitted reply, in the order they happened.
type event struct {
	sleep time.Duration
	kind  model.ReplyKind
}

func newRecordedSession() (*Session, *[]event) {
	s := NewSession(newTestMachine(), DefaultPacing())
	var events []event
	s.SetSleeper(func(d time.Duration) { events = append(events, event{sleep: d}) })
	return s, &events
}

func emitTo(events *[]event) func(model.Reply) {
	return func(r model.Reply) { *events = append(*events, event{kind: r.Kind}) }
}

func TestSessionOpenGreetsOnce(t *testing.T) {
	s, events := newRecordedSession()

	replies := s.Open(emitTo(events))
	require.Len(t, replies, 1)
	assert.Equal(t, model.ReplyGreeting, replies[0].Kind)
	assert.Equal(t, StepCollectIncome, s.State().Step)

	assert.Nil(t, s.Open(emitTo(events)))
	assert.Equal(t, []event{{sleep: 600 * time.Millisecond}, {kind: model.ReplyGreeting}}, *events)
}

func TestSessionPacingOrder(t *testing.T) {
	s, events := newRecordedSession()
	emit := emitTo(events)
	s.Open(emit)
	s.Submit(Text("25000"), emit)
	s.Submit(Text("high"), emit)
	*events = nil

	s.Submit(Text("long"), emit)

	assert.Equal(t, []event{
		{sleep: 600 * time.Millisecond},
		{kind: model.ReplyAnalyzing},
		{sleep: 1500 * time.Millisecond},
		{kind: model.ReplyRecommendation},
		{sleep: 800 * time.Millisecond},
		{kind: model.ReplyFollowUp},
	}, *events)
	assert.Equal(t, StepPostRecommendation, s.State().Step)
}

func TestSessionZeroPacingSkipsSleeper(t *testing.T) {
	s := NewSession(newTestMachine(), Pacing{})
	s.SetSleeper(func(time.Duration) { t.Fatal("sleeper called with zero pacing") })

	s.Open(nil)
	replies := s.Submit(Text("25000"), nil)
	assert.Len(t, replies, 2)
}

func TestSessionObserversSeeEveryTurn(t *testing.T) {
	s := NewSession(newTestMachine(), Pacing{})
	var turns []Turn
	s.OnTurn(func(tr Turn) { turns = append(turns, tr) })

	s.Open(nil)
	s.Submit(Text("abc"), nil)
	s.Submit(Text("25000"), nil)

	require.Len(t, turns, 3)
	for _, tr := range turns {
		assert.Equal(t, s.ID(), tr.SessionID)
	}
	assert.Equal(t, StepCollectIncome, turns[1].From.Step)
	assert.Equal(t, StepCollectIncome, turns[1].To.Step)
	assert.Equal(t, StepCollectRisk, turns[2].To.Step)
	assert.Equal(t, "25000", turns[2].Input.String())
}

func TestSessionIDIsUUID(t *testing.T) {
	a := NewSession(newTestMachine(), Pacing{})
	b := NewSession(newTestMachine(), Pacing{})

	_, err := uuid.Parse(a.ID())
	require.NoError(t, err)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestSessionProjectionAfterPlan(t *testing.T) {
	s := NewSession(newTestMachine(), Pacing{})
	_, ok := s.Projection()
	assert.False(t, ok)

	s.Open(nil)
	s.Submit(Text("40000"), nil)
	s.Submit(ChooseRisk(model.RiskMedium), nil)
	s.Submit(ChooseGoal(model.GoalLong), nil)

	rec, ok := s.Recommendation()
	require.True(t, ok)
	assert.Equal(t, "Flexi-Cap Funds", rec.Category)

	p, ok := s.Projection()
	require.True(t, ok)
	assert.Equal(t, 8000.0, p.MonthlyContribution)
	assert.Equal(t, 11.0, p.AnnualRate)
}

func TestSessionSerializesConcurrentInput(t *testing.T) {
	s := NewSession(newTestMachine(), Pacing{Think: time.Millisecond})
	s.SetSleeper(func(time.Duration) {})
	s.Open(nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Submit(Text("abc"), nil)
		}()
	}
	wg.Wait()

	assert.Equal(t, StepCollectIncome, s.State().Step)
	s.Submit(Text("25000"), nil)
	assert.Equal(t, StepCollectRisk, s.State().Step)
}
