package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/born-ml/quantad/internal/optim"
	"github.com/born-ml/quantad/internal/pricing"
)

func newImpliedVolCommand(g *globals) *cobra.Command {
	var market float64

	cmd := &cobra.Command{
		Use:   "implied-vol --price=P",
		Short: "Solve for the volatility that reproduces a market price",
		Long: `Solve for the volatility that reproduces a market price.

Newton-Raphson is used, with vega read from the tape on every iteration.
The configured volatility is the starting guess.`,
		Example: "quantad implied-vol --kind=call --spot=100 --strike=105 --price=8.02",
		Args:    cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if !c.Flags().Changed("price") {
				return errors.New("--price is required")
			}
			o, err := g.cfg.Option.Option()
			if err != nil {
				return err
			}
			vol, err := pricing.ImpliedVolatility(o, market, optim.NewtonConfig{
				Tolerance:     g.cfg.Solver.Tolerance,
				MaxIterations: g.cfg.Solver.MaxIterations,
				Logger:        g.logger,
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(g.out, "%.10g\n", vol)
			return err
		},
	}
	addOptionFlags(cmd)
	cmd.Flags().Float64Var(&market, "price", 0, "observed option price")
	return cmd
}
