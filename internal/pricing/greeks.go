package pricing

import (
	"fmt"

	"github.com/born-ml/quantad/internal/autodiff"
)

// Greeks holds an option's price and first-order sensitivities.
type Greeks struct {
	Price     float64
	Delta     float64 // ∂V/∂S
	Vega      float64 // ∂V/∂σ
	Rho       float64 // ∂V/∂r
	Theta     float64 // -∂V/∂T (value decay per year)
	DualDelta float64 // ∂V/∂K
}

// Scale returns g with every field multiplied by q.
func (g Greeks) Scale(q float64) Greeks {
	return Greeks{
		Price:     g.Price * q,
		Delta:     g.Delta * q,
		Vega:      g.Vega * q,
		Rho:       g.Rho * q,
		Theta:     g.Theta * q,
		DualDelta: g.DualDelta * q,
	}
}

// Plus returns the field-wise sum of g and o.
func (g Greeks) Plus(o Greeks) Greeks {
	return Greeks{
		Price:     g.Price + o.Price,
		Delta:     g.Delta + o.Delta,
		Vega:      g.Vega + o.Vega,
		Rho:       g.Rho + o.Rho,
		Theta:     g.Theta + o.Theta,
		DualDelta: g.DualDelta + o.DualDelta,
	}
}

// Price values o and computes its Greeks with one reverse pass.
func Price(o Option) (Greeks, error) {
	return PriceOn(autodiff.NewGraph(), o)
}

// PriceOn is Price recording on a caller-supplied graph, which is Reset first.
// Solvers reuse one graph this way across iterations.
func PriceOn(g *autodiff.Graph, o Option) (Greeks, error) {
	g.Reset()
	in, price, err := Record(g, o)
	if err != nil {
		return Greeks{}, err
	}

	grad, err := g.Accumulate(price)
	if err != nil {
		return Greeks{}, fmt.Errorf("pricing: %w", err)
	}
	d, err := grad.Wrt(in.All()...)
	if err != nil {
		return Greeks{}, fmt.Errorf("pricing: %w", err)
	}

	return Greeks{
		Price:     price.Value(),
		Delta:     d[0],
		DualDelta: d[1],
		Rho:       d[2],
		Vega:      d[3],
		Theta:     -d[4],
	}, nil
}
