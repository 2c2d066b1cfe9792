package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/born-ml/quantad/internal/pricing"
)

var priceExample = `# price the configured option
quantad price

# price a put and override the volatility
quantad price --kind=put --volatility=0.35`

func newPriceCommand(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "price",
		Short:   "Black-Scholes price and Greeks from one reverse pass",
		Example: priceExample,
		Args:    cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			o, err := g.cfg.Option.Option()
			if err != nil {
				return err
			}
			greeks, err := pricing.Price(o)
			if err != nil {
				return err
			}
			g.logger.Debug("priced option", "kind", o.Kind, "price", greeks.Price)
			return writeGreeks(g.out, o, greeks)
		},
	}
	addOptionFlags(cmd)
	return cmd
}

func writeGreeks(w io.Writer, o pricing.Option, gr pricing.Greeks) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "KIND\t%s\n", o.Kind)
	rows := []struct {
		name  string
		value float64
	}{
		{"PRICE", gr.Price},
		{"DELTA", gr.Delta},
		{"VEGA", gr.Vega},
		{"RHO", gr.Rho},
		{"THETA", gr.Theta},
		{"DUAL DELTA", gr.DualDelta},
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%.6f\n", r.name, r.value)
	}
	return tw.Flush()
}
