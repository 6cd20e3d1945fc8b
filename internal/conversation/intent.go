package conversation

import (
	"strings"

	"InvestPlanner/internal/model"
)

// rule pairs a predicate over lower-cased text with the value it resolves to.
type rule[T any] struct {
	match  func(text string) bool
	result T
}

func containsAny(words ...string) func(string) bool {
	return func(text string) bool {
		for _, w := range words {
			if strings.Contains(text, w) {
				return true
			}
		}
		return false
	}
}

func containsAll(words ...string) func(string) bool {
	return func(text string) bool {
		for _, w := range words {
			if !strings.Contains(text, w) {
				return false
			}
		}
		return true
	}
}

// resolve evaluates rules top to bottom and returns the first match.
func resolve[T any](rules []rule[T], text string) (T, bool) {
	text = strings.ToLower(text)
	for _, r := range rules {
		if r.match(text) {
			return r.result, true
		}
	}
	var zero T
	return zero, false
}

// "safe" appears in both the risk and the goal table; each table is only consulted in its own step.
var riskRules = []rule[model.RiskLevel]{
	{containsAny("low", "safe"), model.RiskLow},
	{containsAny("med", "bal"), model.RiskMedium},
	{containsAny("high", "agg"), model.RiskHigh},
}

var goalRules = []rule[model.Goal]{
	{containsAny("short"), model.GoalShort},
	{containsAny("long", "retire", "wealth"), model.GoalLong},
	{containsAny("emerg", "safe"), model.GoalEmergency},
}

var followUpRules = []rule[Action]{
	{containsAny("concept", "understand"), ActionConcepts},
	{containsAny("project", "grow", "future"), ActionProjection},
	{containsAll("invest", "how"), ActionGuidance},
}

var resetWords = map[string]bool{
	"reset":      true,
	"restart":    true,
	"start over": true,
	"/reset":     true,
}

func isReset(in Input) bool {
	if in.Action == ActionReset {
		return true
	}
	return resetWords[strings.ToLower(strings.TrimSpace(in.Text))]
}

// MatchRisk resolves free text to a risk level.
func MatchRisk(text string) (model.RiskLevel, bool) { return resolve(riskRules, text) }

// MatchGoal resolves free text to a goal.
func MatchGoal(text string) (model.Goal, bool) { return resolve(goalRules, text) }

// MatchFollowUp resolves free text to a follow-up action.
func MatchFollowUp(text string) (Action, bool) { return resolve(followUpRules, text) }
