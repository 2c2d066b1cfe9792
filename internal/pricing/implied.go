package pricing

import (
	"fmt"
	"math"

	"github.com/born-ml/quantad/internal/autodiff"
	"github.com/born-ml/quantad/internal/optim"
)

// Volatility bracket used when the caller does not set one.
const (
	minVolatility = 1e-4
	maxVolatility = 5.0
)

// ImpliedVolatility finds σ such that the Black-Scholes price of o equals
// market. o.Volatility is the starting guess (0.2 if unset).
//
// The Newton step uses vega taken from the tape.
func ImpliedVolatility(o Option, market float64, cfg optim.NewtonConfig) (float64, error) {
	if o.Volatility <= 0 {
		o.Volatility = 0.2
	}
	if err := o.Validate(); err != nil {
		return 0, err
	}
	if err := checkArbitrageBounds(o, market); err != nil {
		return 0, err
	}
	if !(cfg.Upper > cfg.Lower) {
		cfg.Lower, cfg.Upper = minVolatility, maxVolatility
	}

	objective := func(b *autodiff.Builder, vol autodiff.Variable) autodiff.Variable {
		g := b.Graph()
		in := Inputs{
			Spot:       g.Constant(o.Spot),
			Strike:     g.Constant(o.Strike),
			Rate:       g.Constant(o.Rate),
			Volatility: vol,
			Expiry:     g.Constant(o.Expiry),
		}
		return b.Sub(BlackScholes(b, o.Kind, in), b.Constant(market))
	}

	root, err := optim.NewtonRaphson(objective, o.Volatility, cfg)
	if err != nil {
		return 0, fmt.Errorf("implied volatility: %w", err)
	}
	return root.X, nil
}

// checkArbitrageBounds rejects prices no volatility can produce.
func checkArbitrageBounds(o Option, market float64) error {
	df := math.Exp(-o.Rate * o.Expiry)
	var lower, upper float64
	if o.Kind == Call {
		lower, upper = math.Max(o.Spot-o.Strike*df, 0), o.Spot
	} else {
		lower, upper = math.Max(o.Strike*df-o.Spot, 0), o.Strike*df
	}
	if !(market > lower && market < upper) {
		return fmt.Errorf("%w: price %g outside no-arbitrage bounds (%g, %g)", ErrInvalidOption, market, lower, upper)
	}
	return nil
}
