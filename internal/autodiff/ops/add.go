package ops

// AddOp represents addition: output = a + b.
//
// Local partials:
//   - d(a+b)/da = 1
//   - d(a+b)/db = 1
type AddOp struct{}

// Name returns "add".
func (AddOp) Name() string { return "add" }

// Apply computes a + b.
func (AddOp) Apply(a, b float64) (Result, error) {
	return binary(a+b, 1, 1), nil
}
