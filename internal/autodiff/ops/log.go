package ops

import "math"

// LogOp represents the natural logarithm.
//
// Forward:
//
//	output = ln(input)
//
// Local partial:
//
//	d(ln(x))/dx = 1/x
//
// Domain: x > 0.
type LogOp struct{}

// Name returns "ln".
func (LogOp) Name() string { return "ln" }

// Apply computes ln(x).
func (LogOp) Apply(x float64) (Result, error) {
	if !(x > 0) {
		return Result{}, domainError("ln", x, "requires x > 0")
	}
	return unary(math.Log(x), 1/x), nil
}
