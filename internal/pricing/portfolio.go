package pricing

import (
	"context"
	"fmt"

	"github.com/born-ml/quantad/internal/autodiff"
	"github.com/born-ml/quantad/internal/parallel"
)

// Position is a quantity of an option. Negative quantities are short.
type Position struct {
	Option
	Quantity float64
}

// Valuation is the result of ValuePortfolio.
type Valuation struct {
	Positions []Greeks // Per unit of each position, in input order
	Total     Greeks   // Quantity-weighted sum
}

// ValuePortfolio prices every position concurrently.
//
// Each position is priced on its own graph, so no tape is ever shared
// between goroutines.
func ValuePortfolio(ctx context.Context, positions []Position, cfg parallel.Config) (Valuation, error) {
	unit := make([]Greeks, len(positions))

	err := parallel.ForErr(ctx, len(positions), func(_ context.Context, i int) error {
		g, err := PriceOn(autodiff.NewGraph(), positions[i].Option)
		if err != nil {
			return fmt.Errorf("position %d: %w", i, err)
		}
		unit[i] = g
		return nil
	}, cfg)
	if err != nil {
		return Valuation{}, err
	}

	var total Greeks
	for i, p := range positions {
		total = total.Plus(unit[i].Scale(p.Quantity))
	}
	return Valuation{Positions: unit, Total: total}, nil
}
