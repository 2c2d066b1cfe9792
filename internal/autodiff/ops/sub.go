package ops

// SubOp represents subtraction: output = a - b.
//
// Local partials:
//   - d(a-b)/da = 1
//   - d(a-b)/db = -1
type SubOp struct{}

// Name returns "sub".
func (SubOp) Name() string { return "sub" }

// Apply computes a - b.
func (SubOp) Apply(a, b float64) (Result, error) {
	return binary(a-b, 1, -1), nil
}

// NegOp represents negation: output = -x.
type NegOp struct{}

// Name returns "neg".
func (NegOp) Name() string { return "neg" }

// Apply computes -x with d(-x)/dx = -1.
func (NegOp) Apply(x float64) (Result, error) {
	return unary(-x, -1), nil
}
