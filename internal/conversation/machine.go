package conversation

import (
	"strings"

	"github.com/rs/zerolog"

	"InvestPlanner/internal/advisor"
	"InvestPlanner/internal/model"
)

// Recommender is the decision engine the machine consults once the profile is complete.
type Recommender interface {
	Recommend(income model.Income, risk model.RiskLevel, goal model.Goal) model.Recommendation
}

// Machine is the conversation transition function. It holds no per-conversation state.
type Machine struct {
	engine   Recommender
	settings advisor.PlanSettings
	log      zerolog.Logger
}

// NewMachine creates a machine over the given engine.
func NewMachine(engine Recommender, settings advisor.PlanSettings, log zerolog.Logger) *Machine {
	return &Machine{
		engine:   engine,
		settings: settings,
		log:      log.With().Str("component", "conversation").Logger(),
	}
}

// Handle applies one input to st. Invalid input never advances the step and always re-asks.
func (m *Machine) Handle(st State, in Input) (State, []model.Reply) {
	if isReset(in) {
		return m.reset()
	}

	switch st.Step {
	case StepWelcome:
		return State{Step: StepCollectIncome}, []model.Reply{{Kind: model.ReplyGreeting, Text: greetingText}}
	case StepCollectIncome:
		return m.collectIncome(st, in)
	case StepCollectRisk:
		return m.collectRisk(st, in)
	case StepCollectGoal:
		return m.collectGoal(st, in)
	case StepShowRecommendation, StepPostRecommendation:
		return m.followUp(st, in)
	default:
		return st, []model.Reply{{Kind: model.ReplyHelp, Text: lostText}}
	}
}

// Recommendation returns the recommendation for the state's profile, if complete.
func (m *Machine) Recommendation(st State) (model.Recommendation, bool) {
	if !st.Profile.Complete() {
		return model.Recommendation{}, false
	}
	return m.engine.Recommend(st.Profile.Income, st.Profile.Risk, st.Profile.Goal), true
}

// Projection sizes a SIP from the profile's income and the recommendation's return range.
func (m *Machine) Projection(st State) (model.Projection, bool) {
	rec, ok := m.Recommendation(st)
	if !ok || st.Profile.Income.Amount <= 0 {
		return model.Projection{}, false
	}
	p, fellBack := advisor.ProjectPlan(st.Profile.Income, rec, m.settings)
	if fellBack {
		m.log.Warn().Str("category", rec.Category).Str("range", rec.ExpectedReturn).
			Float64("fallback", m.settings.FallbackRate).
			Msg("recommendation return range unparseable, using fallback rate")
	}
	return p, true
}

func (m *Machine) reset() (State, []model.Reply) {
	return State{Step: StepCollectIncome}, []model.Reply{{Kind: model.ReplyGreeting, Text: restartText}}
}

func (m *Machine) collectIncome(st State, in Input) (State, []model.Reply) {
	if in.IsChoice() {
		return st, []model.Reply{{Kind: model.ReplyReprompt, Text: advisor.IncomeReprompt}}
	}
	amount, err := advisor.ParseIncome(in.Text)
	if err != nil {
		return st, []model.Reply{{Kind: model.ReplyReprompt, Text: advisor.IncomeReprompt}}
	}
	st.Profile.Income = advisor.IncomeFromAmount(amount)
	st.Step = StepCollectRisk
	return st, []model.Reply{
		{Kind: model.ReplyIncomeAck, Income: amount},
		{Kind: model.ReplyPrompt, Text: riskPrompt, Options: options(riskOptions)},
	}
}

func (m *Machine) collectRisk(st State, in Input) (State, []model.Reply) {
	risk, ok := in.Risk, in.Risk.Valid()
	if !in.IsChoice() {
		risk, ok = MatchRisk(in.Text)
	}
	if !ok {
		return st, []model.Reply{{Kind: model.ReplyReprompt, Text: riskReprompt, Options: options(riskOptions)}}
	}
	st.Profile.Risk = risk
	st.Step = StepCollectGoal
	return st, []model.Reply{
		{Kind: model.ReplyRiskAck, Risk: risk},
		{Kind: model.ReplyPrompt, Text: goalPrompt, Options: options(goalOptions)},
	}
}

func (m *Machine) collectGoal(st State, in Input) (State, []model.Reply) {
	goal, ok := in.Goal, in.Goal.Valid()
	if !in.IsChoice() {
		goal, ok = MatchGoal(in.Text)
	}
	if !ok {
		return st, []model.Reply{{Kind: model.ReplyReprompt, Text: goalReprompt, Options: options(goalOptions)}}
	}
	st.Profile.Goal = goal

	rec := m.engine.Recommend(st.Profile.Income, st.Profile.Risk, st.Profile.Goal)
	m.log.Debug().
		Float64("income", st.Profile.Income.Amount).
		Str("risk", string(st.Profile.Risk)).
		Str("goal", string(goal)).
		Str("category", rec.Category).
		Msg("recommendation produced")

	// ShowRecommendation is transient: the follow-up prompt is part of the same turn.
	st.Step = StepPostRecommendation
	return st, []model.Reply{
		{Kind: model.ReplyAnalyzing, Text: analyzingText},
		{Kind: model.ReplyRecommendation, Recommendation: &rec},
		{Kind: model.ReplyFollowUp, Text: followUpPrompt, Options: options(followUpOptions)},
	}
}

func (m *Machine) followUp(st State, in Input) (State, []model.Reply) {
	action := in.Action
	if !in.IsChoice() {
		action, _ = MatchFollowUp(strings.TrimSpace(in.Text))
	}

	switch action {
	case ActionConcepts:
		return st, []model.Reply{{Kind: model.ReplyConcepts, Concepts: append([]model.Concept(nil), Concepts...)}}
	case ActionProjection:
		p, ok := m.Projection(st)
		if !ok {
			break
		}
		return st, []model.Reply{{Kind: model.ReplyProjection, Projection: &p, Text: projectionNote}}
	case ActionGuidance:
		return st, []model.Reply{{Kind: model.ReplyGuidance, Text: guidanceText}}
	}
	return st, []model.Reply{{Kind: model.ReplyHelp, Text: helpText}}
}
