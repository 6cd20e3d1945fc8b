package wizard

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"InvestPlanner/internal/advisor"
	"InvestPlanner/internal/model"
)

// AskFunc matches survey.AskOne so prompts can be scripted in tests.
type AskFunc func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error

const backLabel = "← Back"

var riskLabels = []struct {
	label string
	risk  model.RiskLevel
}{
	{"Low Risk (Safe)", model.RiskLow},
	{"Medium Risk (Balanced)", model.RiskMedium},
	{"High Risk (Aggressive)", model.RiskHigh},
}

var goalLabels = []struct {
	label string
	goal  model.Goal
}{
	{"Short Term (1-3 yrs)", model.GoalShort},
	{"Long Term (5+ yrs)", model.GoalLong},
	{"Emergency Safety", model.GoalEmergency},
}

// Runner drives a Controller with terminal prompts and hands every result to show.
type Runner struct {
	ctrl     *Controller
	settings advisor.PlanSettings
	show     func(model.Reply)
	ask      AskFunc
}

// NewRunner creates a runner using survey.AskOne.
func NewRunner(ctrl *Controller, settings advisor.PlanSettings, show func(model.Reply)) *Runner {
	return &Runner{ctrl: ctrl, settings: settings, show: show, ask: survey.AskOne}
}

// SetAsk replaces the prompt function.
func (r *Runner) SetAsk(fn AskFunc) { r.ask = fn }

// Run walks the form to the end, shows the recommendation and optionally a projection.
// Invalid answers are shown as guidance and asked again; only prompt failures (e.g. Ctrl-C) abort.
func (r *Runner) Run() (model.Recommendation, error) {
	for !r.ctrl.Finished() {
		var err error
		switch r.ctrl.Step() {
		case StepIncome:
			err = r.askIncome()
		case StepRisk:
			err = r.askRisk()
		case StepGoal:
			err = r.askGoal()
		}
		if errors.Is(err, model.ErrInvalidInput) {
			r.show(model.Reply{Kind: model.ReplyReprompt, Text: err.Error()})
			continue
		}
		if err != nil {
			return model.Recommendation{}, err
		}
	}

	rec, err := r.ctrl.Result()
	if err != nil {
		return model.Recommendation{}, err
	}
	r.show(model.Reply{Kind: model.ReplyRecommendation, Recommendation: &rec})

	var want bool
	confirm := &survey.Confirm{
		Message: fmt.Sprintf("Show a %d-month growth projection?", r.settings.HorizonMonths),
		Default: true,
	}
	if err := r.ask(confirm, &want); err != nil {
		return rec, fmt.Errorf("ask projection: %w", err)
	}
	if want {
		p, _ := advisor.ProjectPlan(r.ctrl.Profile().Income, rec, r.settings)
		r.show(model.Reply{Kind: model.ReplyProjection, Projection: &p})
	}
	return rec, nil
}

func (r *Runner) askIncome() error {
	var text string
	prompt := &survey.Input{
		Message: "What is your monthly income (₹)?",
		Help:    "Enter a number such as 25000. Currency symbols and commas are fine.",
	}
	err := r.ask(prompt, &text, survey.WithValidator(func(val interface{}) error {
		s, _ := val.(string)
		_, err := advisor.ParseIncome(s)
		return err
	}))
	if err != nil {
		return fmt.Errorf("ask income: %w", err)
	}
	return r.ctrl.SubmitIncome(text)
}

func (r *Runner) askRisk() error {
	options := make([]string, 0, len(riskLabels)+1)
	for _, o := range riskLabels {
		options = append(options, o.label)
	}
	selected, err := r.selectOne("How much risk are you willing to take?", append(options, backLabel))
	if err != nil {
		return err
	}
	if selected == backLabel {
		r.ctrl.Back()
		return nil
	}
	var risk model.RiskLevel
	for _, o := range riskLabels {
		if o.label == selected {
			risk = o.risk
		}
	}
	return r.ctrl.SubmitRisk(risk)
}

func (r *Runner) askGoal() error {
	options := make([]string, 0, len(goalLabels)+1)
	for _, o := range goalLabels {
		options = append(options, o.label)
	}
	selected, err := r.selectOne("What is your primary goal for this investment?", append(options, backLabel))
	if err != nil {
		return err
	}
	if selected == backLabel {
		r.ctrl.Back()
		return nil
	}
	var goal model.Goal
	for _, o := range goalLabels {
		if o.label == selected {
			goal = o.goal
		}
	}
	return r.ctrl.SubmitGoal(goal)
}

func (r *Runner) selectOne(message string, options []string) (string, error) {
	var selected string
	prompt := &survey.Select{
		Message: message,
		Options: options,
	}
	if err := r.ask(prompt, &selected); err != nil {
		return "", fmt.Errorf("ask %q: %w", message, err)
	}
	return selected, nil
}
