package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/born-ml/quantad/internal/autodiff/ops"
)

func newCatalogCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the differentiable operations",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(g.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tARITY")
			for _, op := range ops.Catalog() {
				arity := 1
				if _, ok := op.(ops.Binary); ok {
					arity = 2
				}
				fmt.Fprintf(tw, "%s\t%d\n", op.Name(), arity)
			}
			return tw.Flush()
		},
	}
}
