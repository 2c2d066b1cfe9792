package ops

import "math"

// SqrtOp represents the square root: y = √x.
//
// Local partial: d(√x)/dx = 1/(2√x) = 1/(2y).
//
// Domain: x > 0. Zero is rejected because the partial is unbounded there.
type SqrtOp struct{}

// Name returns "sqrt".
func (SqrtOp) Name() string { return "sqrt" }

// Apply computes √x.
func (SqrtOp) Apply(x float64) (Result, error) {
	if !(x > 0) {
		return Result{}, domainError("sqrt", x, "requires x > 0")
	}
	y := math.Sqrt(x)
	return unary(y, 0.5/y), nil
}
