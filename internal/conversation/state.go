package conversation

import "InvestPlanner/internal/model"

// Step is a state of the conversation.
type Step string

const (
	StepWelcome            Step = "WELCOME"
	StepCollectIncome      Step = "COLLECT_INCOME"
	StepCollectRisk        Step = "COLLECT_RISK"
	StepCollectGoal        Step = "COLLECT_GOAL"
	StepShowRecommendation Step = "SHOW_RECOMMENDATION"
	StepPostRecommendation Step = "POST_RECOMMENDATION"
)

// State is a snapshot of one conversation. The machine takes a State and returns the next one.
type State struct {
	Step    Step              `json:"step"`
	Profile model.UserProfile `json:"profile"`
}

// NewState returns the initial state.
func NewState() State { return State{Step: StepWelcome} }

// Recommended reports whether the conversation has produced a recommendation.
func (s State) Recommended() bool {
	return s.Step == StepShowRecommendation || s.Step == StepPostRecommendation
}
