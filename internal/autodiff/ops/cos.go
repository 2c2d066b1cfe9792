package ops

import "math"

// CosOp represents the cosine operation: y = cos(x).
//
// Local partial: d(cos(x))/dx = -sin(x).
type CosOp struct{}

// Name returns "cos".
func (CosOp) Name() string { return "cos" }

// Apply computes cos(x).
func (CosOp) Apply(x float64) (Result, error) {
	s, c := math.Sincos(x)
	return unary(c, -s), nil
}
