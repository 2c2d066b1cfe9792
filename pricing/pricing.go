// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package pricing values European options and their Greeks with reverse-mode
// automatic differentiation.
//
// Example:
//
//	import "github.com/born-ml/quantad/pricing"
//
//	func main() {
//	    g, err := pricing.Price(pricing.Option{
//	        Kind:       pricing.Call,
//	        Spot:       100,
//	        Strike:     100,
//	        Rate:       0.05,
//	        Volatility: 0.2,
//	        Expiry:     1,
//	    })
//	    // g.Price ≈ 10.4506, g.Delta ≈ 0.6368
//	}
package pricing

import (
	"context"

	"github.com/born-ml/quantad/internal/autodiff"
	"github.com/born-ml/quantad/internal/optim"
	"github.com/born-ml/quantad/internal/parallel"
	"github.com/born-ml/quantad/internal/pricing"
)

// Kind is the option payoff type.
type Kind = pricing.Kind

// Option kinds.
const (
	Call = pricing.Call
	Put  = pricing.Put
)

// ErrInvalidOption is returned for option terms outside the model's domain.
var ErrInvalidOption = pricing.ErrInvalidOption

// Option holds the terms of a European option and its market inputs.
type Option = pricing.Option

// Greeks holds an option's price and first-order sensitivities.
type Greeks = pricing.Greeks

// Position is a signed quantity of an option.
type Position = pricing.Position

// Valuation is the result of ValuePortfolio.
type Valuation = pricing.Valuation

// ParallelConfig controls how ValuePortfolio spreads work over goroutines.
type ParallelConfig = parallel.Config

// DefaultParallelConfig returns a configuration sized to the machine.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// ParseKind parses "call" or "put".
func ParseKind(s string) (Kind, error) {
	return pricing.ParseKind(s)
}

// Price values o and computes its Greeks with one reverse pass.
func Price(o Option) (Greeks, error) {
	return pricing.Price(o)
}

// PriceOn is Price recording on g, which is Reset first.
func PriceOn(g *autodiff.Graph, o Option) (Greeks, error) {
	return pricing.PriceOn(g, o)
}

// ImpliedVolatility finds the volatility at which o is worth market.
// o.Volatility is the starting guess.
func ImpliedVolatility(o Option, market float64, cfg optim.NewtonConfig) (float64, error) {
	return pricing.ImpliedVolatility(o, market, cfg)
}

// ValuePortfolio prices every position concurrently and sums the Greeks.
func ValuePortfolio(ctx context.Context, positions []Position, cfg ParallelConfig) (Valuation, error) {
	return pricing.ValuePortfolio(ctx, positions, cfg)
}
