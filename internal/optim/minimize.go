package optim

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/born-ml/quantad/internal/autodiff"
)

// Objective records a scalar function of xs on b's graph and returns its output.
type Objective func(b *autodiff.Builder, xs []autodiff.Variable) autodiff.Variable

// MinimizeConfig controls the Minimize loop.
type MinimizeConfig struct {
	MaxIterations int          // Iteration cap (default: 1000)
	Tolerance     float64      // Stop when the gradient's max-norm drops below (default: 1e-8)
	Logger        *slog.Logger // Optional; progress is logged at debug level
}

// Result is the outcome of Minimize.
type Result struct {
	X          []float64 // Final parameters
	Value      float64   // Objective at X
	Gradient   []float64 // Gradient at X
	Iterations int       // Steps taken
	Converged  bool      // Whether the tolerance was reached
}

// Evaluate records f at x on g (after resetting it) and returns the value and gradient.
func Evaluate(g *autodiff.Graph, f Objective, x []float64) (float64, []float64, error) {
	g.Reset()
	b := autodiff.NewBuilder(g)
	vars := g.Variables(x...)
	out := f(b, vars)
	if err := b.Err(); err != nil {
		return 0, nil, err
	}
	grad, err := g.Accumulate(out)
	if err != nil {
		return 0, nil, err
	}
	d, err := grad.Wrt(vars...)
	if err != nil {
		return 0, nil, err
	}
	return out.Value(), d, nil
}

// Minimize runs opt on f starting at x0 until the gradient vanishes or the
// iteration cap is hit. Reaching the cap is not an error; check Converged.
//
// A single graph is reused across iterations. The optimizer is Reset first.
func Minimize(ctx context.Context, f Objective, x0 []float64, opt Optimizer, cfg MinimizeConfig) (Result, error) {
	if cfg.MaxIterations == 0 {
		cfg.MaxIterations = 1000
	}
	if cfg.Tolerance == 0 {
		cfg.Tolerance = 1e-8
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	opt.Reset()
	x := slices.Clone(x0)
	g := autodiff.NewGraph()

	res := Result{X: x}
	for {
		value, grad, err := Evaluate(g, f, x)
		if err != nil {
			return res, fmt.Errorf("optim: iteration %d: %w", res.Iterations, err)
		}
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return res, fmt.Errorf("optim: iteration %d: %w objective", res.Iterations, ErrNonFiniteResult)
		}
		res.Value, res.Gradient = value, grad

		norm := maxNorm(grad)
		if norm < cfg.Tolerance {
			res.Converged = true
			logger.Debug("minimize converged", "iterations", res.Iterations, "value", value)
			return res, nil
		}
		if res.Iterations >= cfg.MaxIterations {
			logger.Debug("minimize reached iteration cap", "iterations", res.Iterations, "grad_norm", norm)
			return res, nil
		}
		if err := ctx.Err(); err != nil {
			return res, err
		}

		if err := opt.Step(x, grad); err != nil {
			return res, err
		}
		res.Iterations++
		if res.Iterations%100 == 0 {
			logger.Debug("minimize progress", "iteration", res.Iterations, "value", value, "grad_norm", norm)
		}
	}
}

func maxNorm(v []float64) float64 {
	var m float64
	for _, x := range v {
		m = max(m, math.Abs(x))
	}
	return m
}
