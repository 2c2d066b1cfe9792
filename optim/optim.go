// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"context"

	"github.com/born-ml/quantad/internal/optim"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// Config represents the base configuration for optimizers.
type Config = optim.Config

// Errors reported by the optimizers and solvers.
var (
	ErrLengthMismatch  = optim.ErrLengthMismatch
	ErrNoConvergence   = optim.ErrNoConvergence
	ErrZeroDerivative  = optim.ErrZeroDerivative
	ErrNonFiniteResult = optim.ErrNonFiniteResult
)

// SGD (Stochastic Gradient Descent)

// SGD represents the SGD optimizer with optional momentum.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	optimizer := optim.NewSGD(optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
func NewSGD(config SGDConfig) *SGD {
	return optim.NewSGD(config)
}

// Adam (Adaptive Moment Estimation)

// Adam represents the Adam optimizer.
type Adam = optim.Adam

// AdamConfig contains configuration for Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer with bias correction.
//
// Example:
//
//	optimizer := optim.NewAdam(optim.AdamConfig{
//	    LR:    0.001,
//	    Betas: [2]float64{0.9, 0.999},
//	    Eps:   1e-8,
//	})
func NewAdam(config AdamConfig) *Adam {
	return optim.NewAdam(config)
}

// Minimization

// Objective records a function of several variables.
type Objective = optim.Objective

// MinimizeConfig controls Minimize.
type MinimizeConfig = optim.MinimizeConfig

// Result is the outcome of Minimize.
type Result = optim.Result

// Minimize runs opt on f starting at x0 until the gradient vanishes or the
// iteration cap is reached.
func Minimize(ctx context.Context, f Objective, x0 []float64, opt Optimizer, cfg MinimizeConfig) (Result, error) {
	return optim.Minimize(ctx, f, x0, opt, cfg)
}

// Root finding

// Scalar records a function of one variable.
type Scalar = optim.Scalar

// NewtonConfig controls NewtonRaphson.
type NewtonConfig = optim.NewtonConfig

// Root is the outcome of NewtonRaphson.
type Root = optim.Root

// NewtonRaphson finds a zero of f starting from x0.
func NewtonRaphson(f Scalar, x0 float64, cfg NewtonConfig) (Root, error) {
	return optim.NewtonRaphson(f, x0, cfg)
}
