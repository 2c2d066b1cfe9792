// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-based optimization and root finding on top
// of the autodiff tape.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom update rules
//   - Minimize: record, differentiate and step until the gradient vanishes
//   - NewtonRaphson: scalar root finding with the derivative from the tape
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/quantad/autodiff"
//	    "github.com/born-ml/quantad/optim"
//	)
//
//	func main() {
//	    // f(x, y) = (1-x)² + 100(y-x²)²
//	    rosenbrock := func(b *autodiff.Builder, xs []autodiff.Variable) autodiff.Variable {
//	        one := b.Constant(1)
//	        a := b.PowI(b.Sub(one, xs[0]), 2)
//	        c := b.PowI(b.Sub(xs[1], b.PowI(xs[0], 2)), 2)
//	        return b.Add(a, b.Mul(b.Constant(100), c))
//	    }
//
//	    opt := optim.NewAdam(optim.AdamConfig{LR: 0.01})
//	    res, err := optim.Minimize(ctx, rosenbrock, []float64{-1.2, 1}, opt, optim.MinimizeConfig{
//	        MaxIterations: 20000,
//	    })
//	}
//
// # Root Finding
//
// NewtonRaphson reads f'(x) from one reverse pass per iteration, so the
// caller only writes f:
//
//	square := func(b *autodiff.Builder, x autodiff.Variable) autodiff.Variable {
//	    return b.Sub(b.PowI(x, 2), b.Constant(2))
//	}
//	root, err := optim.NewtonRaphson(square, 1, optim.NewtonConfig{})
//	// root.X ≈ √2
package optim
