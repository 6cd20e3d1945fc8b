package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"InvestPlanner/internal/model"
	"InvestPlanner/internal/portfolio"
	"InvestPlanner/internal/render"
)

func newCatalogCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog [ID]",
		Short: "List the investment options, or show one in detail",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := portfolio.DefaultCatalog()
			printer := render.NewPrinter(os.Stdout)
			if len(args) == 0 {
				printer.Print(model.Reply{Kind: model.ReplyCatalog, Instruments: catalog.All()})
				return nil
			}
			inst, ok := catalog.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown instrument %q, available: %s", args[0], strings.Join(catalog.IDs(), ", "))
			}
			printer.Print(model.Reply{Kind: model.ReplyInstrument, Instruments: []model.Instrument{inst}})
			return nil
		},
	}
}
