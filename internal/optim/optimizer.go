// Package optim implements gradient-based optimizers driven by the autodiff tape.
//
// This package provides:
//   - Optimizer interface: Base interface for all update rules
//   - SGD: Gradient descent with momentum
//   - Adam: Adaptive Moment Estimation
//   - Minimize: loop that records the objective, accumulates and steps
//   - NewtonRaphson: scalar root finding with the derivative from the tape
//
// Example usage:
//
//	rosenbrock := func(b *autodiff.Builder, xs []autodiff.Variable) autodiff.Variable {
//	    // ...
//	}
//	opt := optim.NewAdam(optim.AdamConfig{LR: 0.01})
//	res, err := optim.Minimize(ctx, rosenbrock, []float64{-1.2, 1}, opt, optim.MinimizeConfig{})
package optim

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrLengthMismatch  = errors.New("parameter and gradient lengths differ")
	ErrNoConvergence   = errors.New("did not converge")
	ErrZeroDerivative  = errors.New("derivative vanished")
	ErrNonFiniteResult = errors.New("non-finite value")
)

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: Apply gradient updates to parameters
//   - Reset: Clear internal state (velocities, moments) before a new run
//   - GetLR: Get current learning rate (for monitoring/scheduling)
type Optimizer interface {
	// Step updates params in place using grads, where grads[i] is the
	// derivative of the objective with respect to params[i].
	Step(params, grads []float64) error

	// Reset clears accumulated state so the optimizer can start a new run.
	Reset()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

func checkLengths(params, grads []float64) error {
	if len(params) != len(grads) {
		return fmt.Errorf("optim: %w: %d params, %d grads", ErrLengthMismatch, len(params), len(grads))
	}
	return nil
}
