package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/born-ml/quantad/internal/parallel"
	"github.com/born-ml/quantad/internal/pricing"
)

var portfolioExample = `# value the positions listed under "portfolio:" in a config file
quantad portfolio --config book.yaml

# same, on four workers and with the spot moved
quantad portfolio --config book.yaml --workers=4 --spot=105`

func newPortfolioCommand(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Value the configured positions and sum their Greeks",
		Long: `Value the configured positions and sum their Greeks.

Each position is priced on its own tape; positions are spread over
parallel.workers goroutines (0 means one per CPU).`,
		Example: portfolioExample,
		Args:    cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			positions, err := g.cfg.Positions()
			if err != nil {
				return err
			}
			if len(positions) == 0 {
				return errors.New("no positions configured under portfolio")
			}

			pcfg := parallel.DefaultConfig().WithWorkers(g.cfg.Parallel.Workers)
			g.logger.Debug("valuing portfolio", "positions", len(positions), "workers", pcfg.NumWorkers, "parallel", pcfg.Enabled)
			val, err := pricing.ValuePortfolio(c.Context(), positions, pcfg)
			if err != nil {
				return err
			}
			return writeValuation(g, positions, val)
		},
	}
	addOptionFlags(cmd)
	cmd.Flags().Int("workers", 0, "worker goroutines, 0 for one per CPU")
	return cmd
}

func writeValuation(g *globals, positions []pricing.Position, val pricing.Valuation) error {
	tw := tabwriter.NewWriter(g.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tSTRIKE\tEXPIRY\tQTY\tPRICE\tDELTA\tVEGA")
	for i, p := range positions {
		gr := val.Positions[i]
		fmt.Fprintf(tw, "%s\t%g\t%g\t%g\t%.6f\t%.6f\t%.6f\n", p.Kind, p.Strike, p.Expiry, p.Quantity, gr.Price, gr.Delta, gr.Vega)
	}
	t := val.Total
	fmt.Fprintf(tw, "TOTAL\t\t\t\t%.6f\t%.6f\t%.6f\n", t.Price, t.Delta, t.Vega)
	return tw.Flush()
}
