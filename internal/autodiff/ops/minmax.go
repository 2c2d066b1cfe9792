package ops

// MinOp selects the smaller operand. Ties select a.
//
// The selected operand gets partial 1, the other 0.
type MinOp struct{}

// Name returns "min".
func (MinOp) Name() string { return "min" }

// Apply computes min(a, b).
func (MinOp) Apply(a, b float64) (Result, error) {
	if a <= b {
		return binary(a, 1, 0), nil
	}
	return binary(b, 0, 1), nil
}

// MaxOp selects the larger operand. Ties select a.
type MaxOp struct{}

// Name returns "max".
func (MaxOp) Name() string { return "max" }

// Apply computes max(a, b).
func (MaxOp) Apply(a, b float64) (Result, error) {
	if a >= b {
		return binary(a, 1, 0), nil
	}
	return binary(b, 0, 1), nil
}
