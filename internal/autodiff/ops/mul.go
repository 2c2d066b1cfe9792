package ops

// MulOp represents multiplication: output = a * b.
//
// Local partials:
//   - d(a*b)/da = b
//   - d(a*b)/db = a
//
// When both operands are the same variable (x*x) the tape records two
// parent edges to x, and the backward pass sums both contributions to 2x.
type MulOp struct{}

// Name returns "mul".
func (MulOp) Name() string { return "mul" }

// Apply computes a * b.
func (MulOp) Apply(a, b float64) (Result, error) {
	return binary(a*b, b, a), nil
}
