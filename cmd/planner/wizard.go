package main

import (
	"errors"
	"os"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"

	"InvestPlanner/internal/render"
	"InvestPlanner/internal/wizard"
)

func newWizardCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Answer three questions in a step-by-step form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts, true)
			if err != nil {
				return err
			}
			defer a.close()

			printer := render.NewPrinter(os.Stdout)
			runner := wizard.NewRunner(wizard.NewController(a.engine), a.plan, printer.Print)
			if _, err := runner.Run(); err != nil {
				if errors.Is(err, terminal.InterruptErr) {
					return nil
				}
				return err
			}
			return nil
		},
	}
}
