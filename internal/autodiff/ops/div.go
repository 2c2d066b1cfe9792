package ops

// DivOp represents division: output = a / b.
//
// Local partials:
//   - d(a/b)/da = 1/b
//   - d(a/b)/db = -a/b²
//
// Domain: b != 0.
type DivOp struct{}

// Name returns "div".
func (DivOp) Name() string { return "div" }

// Apply computes a / b.
func (DivOp) Apply(a, b float64) (Result, error) {
	if b == 0 {
		return Result{}, domainError("div", b, "division by zero")
	}
	return binary(a/b, 1/b, -a/(b*b)), nil
}
