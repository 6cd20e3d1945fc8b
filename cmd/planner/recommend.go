package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"InvestPlanner/internal/advisor"
	"InvestPlanner/internal/model"
	"InvestPlanner/internal/render"
)

func newRecommendCmd(opts *options) *cobra.Command {
	var (
		income string
		risk   string
		goal   string
		months int
	)
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Print a recommendation and projection without the conversation",
		Example: `  planner recommend --income 25000 --risk high --goal long
  planner recommend --income "₹60,000" --risk low --goal emergency --months 36`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts, true)
			if err != nil {
				return err
			}
			defer a.close()

			amount, err := advisor.ParseIncome(income)
			if err != nil {
				return fmt.Errorf("--income: %w", err)
			}
			r := model.RiskLevel(risk)
			if !r.Valid() {
				return fmt.Errorf("--risk must be low, medium or high, got %q", risk)
			}
			g := model.Goal(goal)
			if !g.Valid() {
				return fmt.Errorf("--goal must be short, long or emergency, got %q", goal)
			}

			in := advisor.IncomeFromAmount(amount)
			rec := a.engine.Recommend(in, r, g)
			plan := a.plan
			if months > 0 {
				plan.HorizonMonths = months
			}
			p, fellBack := advisor.ProjectPlan(in, rec, plan)
			if fellBack {
				a.log.Warn().Str("range", rec.ExpectedReturn).Msg("return range unparseable, using fallback rate")
			}

			printer := render.NewPrinter(os.Stdout)
			printer.Print(model.Reply{Kind: model.ReplyRecommendation, Recommendation: &rec})
			printer.Print(model.Reply{Kind: model.ReplyProjection, Projection: &p})
			return nil
		},
	}

	cmd.Flags().StringVar(&income, "income", "", "Monthly income, e.g. 25000")
	cmd.Flags().StringVar(&risk, "risk", "", "Risk tolerance: low, medium or high")
	cmd.Flags().StringVar(&goal, "goal", "", "Goal: short, long or emergency")
	cmd.Flags().IntVar(&months, "months", 0, "Projection horizon in months (default from config)")
	cmd.MarkFlagRequired("income")
	cmd.MarkFlagRequired("risk")
	cmd.MarkFlagRequired("goal")
	return cmd
}
