package conversation

import (
	"strings"

	"InvestPlanner/internal/model"
)

// Action is a follow-up choice offered after a recommendation.
type Action string

const (
	ActionConcepts   Action = "concepts"
	ActionProjection Action = "projection"
	ActionGuidance   Action = "guidance"
	ActionReset      Action = "reset"
)

// Input is one user submission: either free text or an already-resolved choice.
type Input struct {
	Text   string
	Risk   model.RiskLevel
	Goal   model.Goal
	Action Action
}

// Text wraps free-text input.
func Text(s string) Input { return Input{Text: s} }

// ChooseRisk is a risk choice button.
func ChooseRisk(r model.RiskLevel) Input { return Input{Risk: r} }

// ChooseGoal is a goal choice button.
func ChooseGoal(g model.Goal) Input { return Input{Goal: g} }

// ChooseAction is a follow-up choice button.
func ChooseAction(a Action) Input { return Input{Action: a} }

// IsChoice reports whether the input came from a choice rather than free text.
func (in Input) IsChoice() bool { return in.Risk != "" || in.Goal != "" || in.Action != "" }

// String is the input as it would be journaled.
func (in Input) String() string {
	switch {
	case in.Risk != "":
		return "risk:" + string(in.Risk)
	case in.Goal != "":
		return "goal:" + string(in.Goal)
	case in.Action != "":
		return "action:" + string(in.Action)
	}
	return in.Text
}

// ParseChoice turns an Option value ("risk:high", "goal:long", "action:reset") back into an Input.
func ParseChoice(value string) (Input, bool) {
	kind, v, ok := strings.Cut(strings.TrimSpace(value), ":")
	if !ok {
		return Input{}, false
	}
	switch kind {
	case "risk":
		if r := model.RiskLevel(v); r.Valid() {
			return ChooseRisk(r), true
		}
	case "goal":
		if g := model.Goal(v); g.Valid() {
			return ChooseGoal(g), true
		}
	case "action":
		switch a := Action(v); a {
		case ActionConcepts, ActionProjection, ActionGuidance, ActionReset:
			return ChooseAction(a), true
		}
	}
	return Input{}, false
}
