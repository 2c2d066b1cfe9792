// Package pricing values European options on the autodiff tape.
//
// The Black-Scholes formula is recorded once per valuation; a single reverse
// pass then yields every first-order sensitivity (delta, vega, rho, theta,
// dual delta) at the cost of roughly one extra evaluation.
package pricing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/born-ml/quantad/internal/autodiff"
)

// ErrInvalidOption is returned for option terms outside the model's domain.
var ErrInvalidOption = errors.New("invalid option")

// Kind is the option payoff type.
type Kind int

// Option kinds.
const (
	Call Kind = iota
	Put
)

// String returns "call" or "put".
func (k Kind) String() string {
	switch k {
	case Call:
		return "call"
	case Put:
		return "put"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind parses "call" or "put" (case-insensitive).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "call", "c":
		return Call, nil
	case "put", "p":
		return Put, nil
	}
	return 0, fmt.Errorf("%w: unknown kind %q", ErrInvalidOption, s)
}

// Option holds the terms of a European option and its market inputs.
type Option struct {
	Kind       Kind
	Spot       float64 // Underlying price
	Strike     float64
	Rate       float64 // Continuously compounded risk-free rate
	Volatility float64 // Annualised
	Expiry     float64 // Time to expiry in years
}

// Validate checks that the option can be priced.
func (o Option) Validate() error {
	switch {
	case o.Kind != Call && o.Kind != Put:
		return fmt.Errorf("%w: kind %v", ErrInvalidOption, o.Kind)
	case !(o.Spot > 0):
		return fmt.Errorf("%w: spot must be positive, got %g", ErrInvalidOption, o.Spot)
	case !(o.Strike > 0):
		return fmt.Errorf("%w: strike must be positive, got %g", ErrInvalidOption, o.Strike)
	case !(o.Volatility > 0):
		return fmt.Errorf("%w: volatility must be positive, got %g", ErrInvalidOption, o.Volatility)
	case !(o.Expiry > 0):
		return fmt.Errorf("%w: expiry must be positive, got %g", ErrInvalidOption, o.Expiry)
	}
	return nil
}

// Inputs are the option's market inputs recorded as leaves.
type Inputs struct {
	Spot, Strike, Rate, Volatility, Expiry autodiff.Variable
}

// Leaves records o's inputs on g in a fixed order: spot, strike, rate,
// volatility, expiry.
func Leaves(g *autodiff.Graph, o Option) Inputs {
	return Inputs{
		Spot:       g.Variable(o.Spot),
		Strike:     g.Variable(o.Strike),
		Rate:       g.Variable(o.Rate),
		Volatility: g.Variable(o.Volatility),
		Expiry:     g.Variable(o.Expiry),
	}
}

// All returns the inputs in Leaves order.
func (in Inputs) All() []autodiff.Variable {
	return []autodiff.Variable{in.Spot, in.Strike, in.Rate, in.Volatility, in.Expiry}
}

// BlackScholes records the Black-Scholes price of a European option:
//
//	d1 = (ln(S/K) + (r + σ²/2)T) / (σ√T)
//	d2 = d1 - σ√T
//	call = S·Φ(d1) - K·e^(-rT)·Φ(d2)
//	put  = K·e^(-rT)·Φ(-d2) - S·Φ(-d1)
//
// Errors are reported through b.
func BlackScholes(b *autodiff.Builder, kind Kind, in Inputs) autodiff.Variable {
	half := b.Constant(0.5)

	volSqrtT := b.Mul(in.Volatility, b.Sqrt(in.Expiry))
	drift := b.Mul(b.Add(in.Rate, b.Mul(half, b.PowI(in.Volatility, 2))), in.Expiry)
	d1 := b.Div(b.Add(b.Ln(b.Div(in.Spot, in.Strike)), drift), volSqrtT)
	d2 := b.Sub(d1, volSqrtT)
	discounted := b.Mul(in.Strike, b.Exp(b.Neg(b.Mul(in.Rate, in.Expiry))))

	if kind == Put {
		return b.Sub(b.Mul(discounted, b.NormCDF(b.Neg(d2))), b.Mul(in.Spot, b.NormCDF(b.Neg(d1))))
	}
	return b.Sub(b.Mul(in.Spot, b.NormCDF(d1)), b.Mul(discounted, b.NormCDF(d2)))
}

// Record validates o, records its inputs and price on g, and returns both.
func Record(g *autodiff.Graph, o Option) (Inputs, autodiff.Variable, error) {
	if err := o.Validate(); err != nil {
		return Inputs{}, autodiff.Variable{}, err
	}
	b := autodiff.NewBuilder(g)
	in := Leaves(g, o)
	price := BlackScholes(b, o.Kind, in)
	if err := b.Err(); err != nil {
		return Inputs{}, autodiff.Variable{}, fmt.Errorf("pricing: %w", err)
	}
	return in, price, nil
}
