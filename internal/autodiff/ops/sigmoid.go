package ops

import "math"

// SigmoidOp represents the logistic function: σ(x) = 1 / (1 + exp(-x)).
//
// Local partial: dσ/dx = σ(x) * (1 - σ(x)).
//
// The two branches keep exp from overflowing for large |x|.
type SigmoidOp struct{}

// Name returns "sigmoid".
func (SigmoidOp) Name() string { return "sigmoid" }

// Apply computes σ(x).
func (SigmoidOp) Apply(x float64) (Result, error) {
	var y float64
	if x >= 0 {
		y = 1 / (1 + math.Exp(-x))
	} else {
		e := math.Exp(x)
		y = e / (1 + e)
	}
	return unary(y, y*(1-y)), nil
}
