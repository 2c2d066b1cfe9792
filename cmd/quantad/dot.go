package main

import (
	"github.com/spf13/cobra"

	"github.com/born-ml/quantad/internal/autodiff"
	"github.com/born-ml/quantad/internal/dot"
	"github.com/born-ml/quantad/internal/pricing"
)

func newDotCommand(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dot",
		Short:   "Print the pricing tape in DOT format",
		Example: "quantad dot --kind=put | dot -Tsvg > tape.svg",
		Args:    cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			o, err := g.cfg.Option.Option()
			if err != nil {
				return err
			}
			graph := autodiff.NewGraph()
			if _, _, err := pricing.Record(graph, o); err != nil {
				return err
			}
			g.logger.Debug("recorded tape", "nodes", graph.Len())
			return dot.Write(g.out, graph)
		},
	}
	addOptionFlags(cmd)
	return cmd
}
