package optim

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/born-ml/quantad/internal/autodiff"
)

// Scalar records a function of one variable on b's graph.
type Scalar func(b *autodiff.Builder, x autodiff.Variable) autodiff.Variable

// NewtonConfig controls NewtonRaphson.
type NewtonConfig struct {
	Tolerance     float64      // Stop when |f(x)| drops below (default: 1e-10)
	MaxIterations int          // Iteration cap (default: 100)
	Lower, Upper  float64      // Optional bracket; iterates are clamped into it when Upper > Lower
	Logger        *slog.Logger // Optional; each step is logged at debug level
}

// Root is the outcome of NewtonRaphson.
type Root struct {
	X          float64 // Root estimate
	Residual   float64 // f(X)
	Iterations int
}

// NewtonRaphson finds x with f(x) = 0 starting from x0.
//
// Each step resets one reused graph, records f on it, reads f'(x) from one
// reverse pass and moves to x - f(x)/f'(x). Fails with ErrZeroDerivative if
// f' vanishes and ErrNoConvergence if the cap is hit.
func NewtonRaphson(f Scalar, x0 float64, cfg NewtonConfig) (Root, error) {
	if cfg.Tolerance == 0 {
		cfg.Tolerance = 1e-10
	}
	if cfg.MaxIterations == 0 {
		cfg.MaxIterations = 100
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	bounded := cfg.Upper > cfg.Lower

	g := autodiff.NewGraph()
	wrapped := func(b *autodiff.Builder, xs []autodiff.Variable) autodiff.Variable {
		return f(b, xs[0])
	}

	root := Root{X: x0}
	for ; root.Iterations <= cfg.MaxIterations; root.Iterations++ {
		value, grad, err := Evaluate(g, wrapped, []float64{root.X})
		if err != nil {
			return root, fmt.Errorf("newton: x=%g: %w", root.X, err)
		}
		root.Residual = value
		logger.Debug("newton step", "iteration", root.Iterations, "x", root.X, "residual", value, "derivative", grad[0])

		if math.Abs(value) < cfg.Tolerance {
			return root, nil
		}
		if grad[0] == 0 || math.IsNaN(grad[0]) {
			return root, fmt.Errorf("newton: x=%g: %w", root.X, ErrZeroDerivative)
		}

		next := root.X - value/grad[0]
		if bounded {
			next = min(max(next, cfg.Lower), cfg.Upper)
		}
		if math.IsNaN(next) || math.IsInf(next, 0) {
			return root, fmt.Errorf("newton: x=%g: %w step", root.X, ErrNonFiniteResult)
		}
		root.X = next
	}
	return root, fmt.Errorf("newton: %w after %d iterations (residual %g)", ErrNoConvergence, cfg.MaxIterations, root.Residual)
}
