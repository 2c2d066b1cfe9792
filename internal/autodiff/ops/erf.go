package ops

import "math"

// twoOverSqrtPi is 2/√π, the scale of the erf derivative.
const twoOverSqrtPi = 1.1283791670955126

// invSqrt2Pi is 1/√(2π), the peak of the standard normal density.
const invSqrt2Pi = 0.3989422804014327

// ErfOp represents the error function.
//
// Local partial: d(erf(x))/dx = 2/√π * exp(-x²).
type ErfOp struct{}

// Name returns "erf".
func (ErfOp) Name() string { return "erf" }

// Apply computes erf(x).
func (ErfOp) Apply(x float64) (Result, error) {
	return unary(math.Erf(x), twoOverSqrtPi*math.Exp(-x*x)), nil
}

// NormCDFOp represents the standard normal cumulative distribution Φ(x).
//
// Local partial: dΦ/dx = φ(x) = exp(-x²/2)/√(2π).
//
// Recording Φ as one node instead of an erf chain keeps pricing tapes short.
type NormCDFOp struct{}

// Name returns "ncdf".
func (NormCDFOp) Name() string { return "ncdf" }

// Apply computes Φ(x).
func (NormCDFOp) Apply(x float64) (Result, error) {
	return unary(NormCDF(x), NormPDF(x)), nil
}

// NormCDF returns the standard normal cumulative distribution at x.
func NormCDF(x float64) float64 {
	return 0.5 * math.Erfc(-x/math.Sqrt2)
}

// NormPDF returns the standard normal density at x.
func NormPDF(x float64) float64 {
	return invSqrt2Pi * math.Exp(-0.5*x*x)
}
