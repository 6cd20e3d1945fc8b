package wizard

import (
	"fmt"

	"InvestPlanner/internal/advisor"
	"InvestPlanner/internal/model"
)

// Step is a page of the wizard form.
type Step int

const (
	StepIncome Step = iota + 1
	StepRisk
	StepGoal
)

const (
	msgSelectToContinue = "Please select an option to continue."
	msgSelectToFinish   = "Please select an option to finish."
)

// Recommender is the engine consulted when the form is finished.
type Recommender interface {
	Recommend(income model.Income, risk model.RiskLevel, goal model.Goal) model.Recommendation
}

// Controller is the linear three-step form: income, risk, goal.
type Controller struct {
	engine   Recommender
	step     Step
	income   model.Income
	risk     model.RiskLevel
	goal     model.Goal
	finished bool
}

// NewController returns a controller at the income step.
func NewController(engine Recommender) *Controller {
	return &Controller{engine: engine, step: StepIncome}
}

// Step returns the current page.
func (c *Controller) Step() Step { return c.step }

// Finished reports whether all three answers were accepted.
func (c *Controller) Finished() bool { return c.finished }

// Profile returns the answers collected so far.
func (c *Controller) Profile() model.UserProfile {
	return model.UserProfile{Income: c.income, Risk: c.risk, Goal: c.goal}
}

// SubmitIncome validates the income field and moves to the risk page.
func (c *Controller) SubmitIncome(text string) error {
	if err := c.expect(StepIncome); err != nil {
		return err
	}
	amount, err := advisor.ParseIncome(text)
	if err != nil {
		return err
	}
	c.income = advisor.IncomeFromAmount(amount)
	c.step = StepRisk
	return nil
}

// SubmitRisk stores the selected risk level and moves to the goal page.
func (c *Controller) SubmitRisk(r model.RiskLevel) error {
	if err := c.expect(StepRisk); err != nil {
		return err
	}
	if !r.Valid() {
		return model.NewInputError(msgSelectToContinue)
	}
	c.risk = r
	c.step = StepGoal
	return nil
}

// SubmitGoal stores the selected goal and finishes the form.
func (c *Controller) SubmitGoal(g model.Goal) error {
	if err := c.expect(StepGoal); err != nil {
		return err
	}
	if !g.Valid() {
		return model.NewInputError(msgSelectToFinish)
	}
	c.goal = g
	c.finished = true
	return nil
}

// Back returns to the previous page, keeping the answers already given. It reports false on the first page.
func (c *Controller) Back() bool {
	if c.step == StepIncome {
		return false
	}
	c.step--
	c.finished = false
	return true
}

// Reset clears every answer and returns to the first page.
func (c *Controller) Reset() {
	*c = Controller{engine: c.engine, step: StepIncome}
}

// Result returns the recommendation for the completed form.
func (c *Controller) Result() (model.Recommendation, error) {
	if !c.finished {
		return model.Recommendation{}, fmt.Errorf("wizard result at step %d: %w", c.step, model.ErrInvalidInput)
	}
	return c.engine.Recommend(c.income, c.risk, c.goal), nil
}

func (c *Controller) expect(step Step) error {
	if c.finished {
		return fmt.Errorf("wizard already finished: %w", model.ErrInvalidInput)
	}
	if c.step != step {
		return fmt.Errorf("wizard is at step %d, not %d: %w", c.step, step, model.ErrInvalidInput)
	}
	return nil
}
