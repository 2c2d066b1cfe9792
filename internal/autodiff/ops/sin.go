package ops

import "math"

// SinOp represents the sine operation: y = sin(x).
//
// Local partial: d(sin(x))/dx = cos(x).
type SinOp struct{}

// Name returns "sin".
func (SinOp) Name() string { return "sin" }

// Apply computes sin(x).
func (SinOp) Apply(x float64) (Result, error) {
	s, c := math.Sincos(x)
	return unary(s, c), nil
}

// TanOp represents the tangent operation: y = tan(x).
//
// Local partial: d(tan(x))/dx = 1/cos²(x).
//
// Domain: |cos(x)| >= 1e-12. Float64 never lands exactly on a pole, so
// points that close to one are rejected instead.
type TanOp struct{}

// tanPoleTolerance is the smallest |cos(x)| TanOp accepts.
const tanPoleTolerance = 1e-12

// Name returns "tan".
func (TanOp) Name() string { return "tan" }

// Apply computes tan(x).
func (TanOp) Apply(x float64) (Result, error) {
	s, c := math.Sincos(x)
	if math.Abs(c) < tanPoleTolerance {
		return Result{}, domainError("tan", x, "cos(x) is zero")
	}
	return unary(s/c, 1/(c*c)), nil
}
