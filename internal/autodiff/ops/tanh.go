package ops

import "math"

// TanhOp represents the hyperbolic tangent: y = tanh(x).
//
// Local partial: d(tanh(x))/dx = 1 - tanh²(x) = 1 - y².
type TanhOp struct{}

// Name returns "tanh".
func (TanhOp) Name() string { return "tanh" }

// Apply computes tanh(x).
func (TanhOp) Apply(x float64) (Result, error) {
	y := math.Tanh(x)
	return unary(y, 1-y*y), nil
}

// AbsOp represents the absolute value.
//
// Local partial: sign(x). Domain: x != 0, where abs is not differentiable.
type AbsOp struct{}

// Name returns "abs".
func (AbsOp) Name() string { return "abs" }

// Apply computes abs(x).
func (AbsOp) Apply(x float64) (Result, error) {
	switch {
	case x > 0:
		return unary(x, 1), nil
	case x < 0:
		return unary(-x, -1), nil
	}
	return Result{}, domainError("abs", x, "not differentiable at zero")
}
