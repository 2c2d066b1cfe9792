package ops

import "math"

// ExpOp represents the exponential operation: y = exp(x).
//
// Local partial: d(exp(x))/dx = exp(x) = y, so the forward value is reused.
type ExpOp struct{}

// Name returns "exp".
func (ExpOp) Name() string { return "exp" }

// Apply computes exp(x).
func (ExpOp) Apply(x float64) (Result, error) {
	y := math.Exp(x)
	return unary(y, y), nil
}
