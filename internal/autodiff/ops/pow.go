package ops

import "math"

// PowIOp raises x to an integer power: output = x^N.
//
// Local partial: d(x^N)/dx = N * x^(N-1).
//
// Domain: x != 0 when N < 0.
type PowIOp struct {
	N int
}

// Name returns "powi".
func (PowIOp) Name() string { return "powi" }

// Apply computes x^N.
func (op PowIOp) Apply(x float64) (Result, error) {
	if op.N < 0 && x == 0 {
		return Result{}, domainError("powi", x, "zero base with negative exponent")
	}
	if op.N == 0 {
		return unary(1, 0), nil
	}
	n := float64(op.N)
	y := powInt(x, op.N)
	if op.N == math.MinInt {
		// N-1 would wrap; x != 0 here.
		return unary(y, n*y/x), nil
	}
	return unary(y, n*powInt(x, op.N-1)), nil
}

// powInt computes x^n by repeated squaring, exact for small integers.
// The magnitude of n is taken as unsigned so math.MinInt does not overflow.
func powInt(x float64, n int) float64 {
	var u uint
	if n < 0 {
		u = uint(-(n + 1)) + 1
	} else {
		u = uint(n)
	}
	result := 1.0
	for u > 0 {
		if u&1 == 1 {
			result *= x
		}
		x *= x
		u >>= 1
	}
	if n < 0 {
		return 1 / result
	}
	return result
}

// PowFOp raises x to a real power: output = x^P.
//
// Local partial: d(x^P)/dx = P * x^(P-1).
//
// Domain: x > 0, or x == 0 with P >= 1 (the partial is finite there).
type PowFOp struct {
	P float64
}

// Name returns "powf".
func (PowFOp) Name() string { return "powf" }

// Apply computes x^P.
func (op PowFOp) Apply(x float64) (Result, error) {
	switch {
	case x < 0:
		return Result{}, domainError("powf", x, "requires x >= 0")
	case x == 0 && op.P < 1:
		return Result{}, domainError("powf", x, "zero base requires exponent >= 1")
	}
	return unary(math.Pow(x, op.P), op.P*math.Pow(x, op.P-1)), nil
}
