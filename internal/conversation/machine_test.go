package conversation

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"InvestPlanner/internal/advisor"
	"InvestPlanner/internal/calculator"
	"InvestPlanner/internal/model"
)

func newTestMachine() *Machine {
	return NewMachine(advisor.NewEngine(), advisor.DefaultPlanSettings(), zerolog.Nop())
}

// drive feeds inputs from a fresh state and returns the final state and the last turn's replies.
func drive(t *testing.T, m *Machine, inputs ...Input) (State, []model.Reply) {
	t.Helper()
	st := NewState()
	var replies []model.Reply
	for _, in := range inputs {
		st, replies = m.Handle(st, in)
	}
	return st, replies
}

func kinds(replies []model.Reply) []model.ReplyKind {
	out := make([]model.ReplyKind, 0, len(replies))
	for _, r := range replies {
		out = append(out, r.Kind)
	}
	return out
}

func TestWelcomeGreets(t *testing.T) {
	m := newTestMachine()
	st, replies := m.Handle(NewState(), Text("hi"))

	assert.Equal(t, StepCollectIncome, st.Step)
	require.Len(t, replies, 1)
	assert.Equal(t, model.ReplyGreeting, replies[0].Kind)
	assert.Contains(t, replies[0].Text, "monthly income")
}

func TestCollectIncome(t *testing.T) {
	m := newTestMachine()
	tests := []struct {
		name  string
		input string
		want  Step
	}{
		{"plain number", "25000", StepCollectRisk},
		{"currency and commas", "₹25,000", StepCollectRisk},
		{"sentence", "I earn around 40000 a month", StepCollectRisk},
		{"negative", "-5", StepCollectIncome},
		{"zero", "0", StepCollectIncome},
		{"letters", "abc", StepCollectIncome},
		{"empty", "", StepCollectIncome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, replies := drive(t, m, Text("hi"), Text(tt.input))
			assert.Equal(t, tt.want, st.Step)
			if tt.want == StepCollectIncome {
				require.Len(t, replies, 1)
				assert.Equal(t, model.ReplyReprompt, replies[0].Kind)
				assert.Equal(t, advisor.IncomeReprompt, replies[0].Text)
				assert.False(t, st.Profile.Income.Known())
				return
			}
			assert.Equal(t, []model.ReplyKind{model.ReplyIncomeAck, model.ReplyPrompt}, kinds(replies))
			assert.Len(t, replies[1].Options, 3)
		})
	}
}

func TestIncomeStoredWithBand(t *testing.T) {
	st, replies := drive(t, newTestMachine(), Text("hi"), Text("25000"))

	assert.Equal(t, 25000.0, st.Profile.Income.Amount)
	assert.Equal(t, model.IncomeMedium, st.Profile.Income.Band)
	assert.Equal(t, 25000.0, replies[0].Income)
}

func TestCollectRisk(t *testing.T) {
	m := newTestMachine()
	tests := []struct {
		name string
		in   Input
		want model.RiskLevel
		ok   bool
	}{
		{"low keyword", Text("I want something LOW"), model.RiskLow, true},
		{"safe keyword", Text("keep it safe"), model.RiskLow, true},
		{"balanced", Text("balanced please"), model.RiskMedium, true},
		{"aggressive", Text("Aggressive"), model.RiskHigh, true},
		{"choice", ChooseRisk(model.RiskHigh), model.RiskHigh, true},
		{"unrelated", Text("no idea"), "", false},
		{"goal choice in risk step", ChooseGoal(model.GoalLong), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, replies := drive(t, m, Text("hi"), Text("25000"), tt.in)
			if !tt.ok {
				assert.Equal(t, StepCollectRisk, st.Step)
				require.Len(t, replies, 1)
				assert.Equal(t, model.ReplyReprompt, replies[0].Kind)
				assert.Len(t, replies[0].Options, 3)
				return
			}
			assert.Equal(t, StepCollectGoal, st.Step)
			assert.Equal(t, tt.want, st.Profile.Risk)
			assert.Equal(t, []model.ReplyKind{model.ReplyRiskAck, model.ReplyPrompt}, kinds(replies))
			assert.Equal(t, tt.want, replies[0].Risk)
		})
	}
}

func TestCollectGoalRejectsUnrecognized(t *testing.T) {
	st, replies := drive(t, newTestMachine(), Text("hi"), Text("25000"), Text("high"), Text("dunno"))

	assert.Equal(t, StepCollectGoal, st.Step)
	require.Len(t, replies, 1)
	assert.Equal(t, model.ReplyReprompt, replies[0].Kind)
	assert.Equal(t, model.Goal(""), st.Profile.Goal)
}

func TestEndToEndHighRiskLongGoal(t *testing.T) {
	st, replies := drive(t, newTestMachine(), Text("hi"), Text("25000"), Text("high"), Text("long term"))

	assert.Equal(t, StepPostRecommendation, st.Step)
	assert.Equal(t, []model.ReplyKind{model.ReplyAnalyzing, model.ReplyRecommendation, model.ReplyFollowUp}, kinds(replies))

	rec := replies[1].Recommendation
	require.NotNil(t, rec)
	assert.Equal(t, "Index Funds / Small-Cap", rec.Category)
	rate, err := calculator.ParseRate(rec.ExpectedReturn)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, rate, 12.0)
	assert.LessOrEqual(t, rate, 15.0)
	assert.NotEmpty(t, rec.Rationale)
}

func TestChoiceAndTextConverge(t *testing.T) {
	m := newTestMachine()
	byText, textReplies := drive(t, m, Text("hi"), Text("30000"), Text("medium"), Text("wealth"))
	byChoice, choiceReplies := drive(t, m, Text("hi"), Text("30000"), ChooseRisk(model.RiskMedium), ChooseGoal(model.GoalLong))

	assert.Equal(t, byText, byChoice)
	assert.Equal(t, textReplies, choiceReplies)
}

func TestEmergencyOverridesRiskInChat(t *testing.T) {
	_, replies := drive(t, newTestMachine(), Text("hi"), Text("60000"), Text("high"), Text("emergency"))

	require.Len(t, replies, 3)
	assert.Equal(t, "Liquid Funds / FDs", replies[1].Recommendation.Category)
}

func TestFollowUps(t *testing.T) {
	m := newTestMachine()
	base := []Input{Text("hi"), Text("25000"), Text("high"), Text("long")}
	tests := []struct {
		name string
		in   Input
		want model.ReplyKind
	}{
		{"concepts", Text("help me understand"), model.ReplyConcepts},
		{"concepts choice", ChooseAction(ActionConcepts), model.ReplyConcepts},
		{"projection", Text("how will it grow?"), model.ReplyProjection},
		{"projection choice", ChooseAction(ActionProjection), model.ReplyProjection},
		{"guidance", Text("How do I invest?"), model.ReplyGuidance},
		{"anything else", Text("thanks"), model.ReplyHelp},
		{"risk choice after recommendation", ChooseRisk(model.RiskLow), model.ReplyHelp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, replies := drive(t, m, append(base, tt.in)...)
			assert.Equal(t, StepPostRecommendation, st.Step)
			require.Len(t, replies, 1)
			assert.Equal(t, tt.want, replies[0].Kind)
		})
	}
}

func TestProjectionReply(t *testing.T) {
	_, replies := drive(t, newTestMachine(), Text("hi"), Text("25000"), Text("high"), Text("long"), Text("projection"))

	p := replies[0].Projection
	require.NotNil(t, p)
	assert.Equal(t, "Index Funds / Small-Cap", p.Category)
	assert.Equal(t, 5000.0, p.MonthlyContribution)
	assert.Equal(t, 13.5, p.AnnualRate)
	assert.Equal(t, 60, p.Months)
	assert.Equal(t, 300000.0, p.Invested)
	assert.Greater(t, p.FutureValue, p.Invested)
	assert.Equal(t, p.FutureValue, float64(int64(p.FutureValue)))
}

func TestConceptsContent(t *testing.T) {
	_, replies := drive(t, newTestMachine(), Text("hi"), Text("25000"), Text("low"), Text("short"), Text("concepts"))

	terms := make([]string, 0, len(replies[0].Concepts))
	for _, c := range replies[0].Concepts {
		terms = append(terms, c.Term)
	}
	assert.Equal(t, []string{"Stocks", "Mutual Funds", "FD", "SIP"}, terms)
}

func TestResetFromAnyState(t *testing.T) {
	m := newTestMachine()
	paths := map[string][]Input{
		"welcome":             {},
		"collect income":      {Text("hi")},
		"collect risk":        {Text("hi"), Text("25000")},
		"collect goal":        {Text("hi"), Text("25000"), Text("low")},
		"post recommendation": {Text("hi"), Text("25000"), Text("low"), Text("long")},
	}
	resets := []Input{Text("reset"), Text("  RESTART "), Text("/reset"), ChooseAction(ActionReset)}

	for name, path := range paths {
		for _, r := range resets {
			t.Run(name+"/"+r.String(), func(t *testing.T) {
				st, replies := drive(t, m, append(append([]Input{}, path...), r)...)
				assert.Equal(t, StepCollectIncome, st.Step)
				assert.Equal(t, model.UserProfile{}, st.Profile)
				require.Len(t, replies, 1)
				assert.Equal(t, model.ReplyGreeting, replies[0].Kind)
			})
		}
	}
}

func TestRecommendationRequiresCompleteProfile(t *testing.T) {
	m := newTestMachine()
	st, _ := drive(t, m, Text("hi"), Text("25000"), Text("low"))

	_, ok := m.Recommendation(st)
	assert.False(t, ok)
	_, ok = m.Projection(st)
	assert.False(t, ok)
}

func TestParseChoice(t *testing.T) {
	in, ok := ParseChoice("risk:high")
	require.True(t, ok)
	assert.Equal(t, ChooseRisk(model.RiskHigh), in)

	in, ok = ParseChoice("action:reset")
	require.True(t, ok)
	assert.True(t, isReset(in))

	for _, bad := range []string{"risk:extreme", "goal:", "nothing", "colour:red"} {
		_, ok := ParseChoice(bad)
		assert.False(t, ok, bad)
	}
}

func TestSafeResolvesPerStep(t *testing.T) {
	risk, ok := MatchRisk("safe")
	require.True(t, ok)
	assert.Equal(t, model.RiskLow, risk)

	goal, ok := MatchGoal("safe")
	require.True(t, ok)
	assert.Equal(t, model.GoalEmergency, goal)
}
