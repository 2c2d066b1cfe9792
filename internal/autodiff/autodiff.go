// Package autodiff implements scalar reverse-mode automatic differentiation.
//
// A Graph records every elementary operation as one node together with the
// local partial derivatives evaluated at the operands' concrete values.
// Accumulate then walks the tape once, from the output down to index 0,
// adding adjoint contributions into each parent.
//
// Architecture:
//   - Graph: append-only arena of nodes, owns all storage
//   - Variable: lightweight handle {graph, index, generation, value}
//   - ops: closed catalog of operations (forward value + local partials)
//   - Gradient: per-call adjoint vector, queried with Wrt
//
// Usage:
//
//	g := autodiff.NewGraph()
//	x, y := g.Variable(2), g.Variable(3)
//	xy, _ := g.Mul(x, y)
//	f, _ := g.Exp(xy)
//	grad, _ := g.Accumulate(f)
//	d, _ := grad.Wrt(x, y) // [y*e^6, x*e^6]
package autodiff

import "github.com/born-ml/quantad/internal/autodiff/ops"

// Add records a + b.
func (g *Graph) Add(a, b Variable) (Variable, error) {
	return g.Apply2(ops.AddOp{}, a, b)
}

// Sub records a - b.
func (g *Graph) Sub(a, b Variable) (Variable, error) {
	return g.Apply2(ops.SubOp{}, a, b)
}

// Mul records a * b.
func (g *Graph) Mul(a, b Variable) (Variable, error) {
	return g.Apply2(ops.MulOp{}, a, b)
}

// Div records a / b. Fails with ErrDomain if b is zero.
func (g *Graph) Div(a, b Variable) (Variable, error) {
	return g.Apply2(ops.DivOp{}, a, b)
}

// Min records min(a, b).
func (g *Graph) Min(a, b Variable) (Variable, error) {
	return g.Apply2(ops.MinOp{}, a, b)
}

// Max records max(a, b).
func (g *Graph) Max(a, b Variable) (Variable, error) {
	return g.Apply2(ops.MaxOp{}, a, b)
}

// Neg records -x.
func (g *Graph) Neg(x Variable) (Variable, error) {
	return g.Apply1(ops.NegOp{}, x)
}

// PowI records x^n for an integer exponent.
func (g *Graph) PowI(x Variable, n int) (Variable, error) {
	return g.Apply1(ops.PowIOp{N: n}, x)
}

// PowF records x^p for a real exponent.
func (g *Graph) PowF(x Variable, p float64) (Variable, error) {
	return g.Apply1(ops.PowFOp{P: p}, x)
}

// Exp records exp(x).
func (g *Graph) Exp(x Variable) (Variable, error) {
	return g.Apply1(ops.ExpOp{}, x)
}

// Ln records ln(x). Fails with ErrDomain unless x > 0.
func (g *Graph) Ln(x Variable) (Variable, error) {
	return g.Apply1(ops.LogOp{}, x)
}

// Sqrt records √x. Fails with ErrDomain unless x > 0.
func (g *Graph) Sqrt(x Variable) (Variable, error) {
	return g.Apply1(ops.SqrtOp{}, x)
}

// Sin records sin(x).
func (g *Graph) Sin(x Variable) (Variable, error) {
	return g.Apply1(ops.SinOp{}, x)
}

// Cos records cos(x).
func (g *Graph) Cos(x Variable) (Variable, error) {
	return g.Apply1(ops.CosOp{}, x)
}

// Tan records tan(x).
func (g *Graph) Tan(x Variable) (Variable, error) {
	return g.Apply1(ops.TanOp{}, x)
}

// Tanh records tanh(x).
func (g *Graph) Tanh(x Variable) (Variable, error) {
	return g.Apply1(ops.TanhOp{}, x)
}

// Sigmoid records 1/(1+exp(-x)).
func (g *Graph) Sigmoid(x Variable) (Variable, error) {
	return g.Apply1(ops.SigmoidOp{}, x)
}

// Abs records abs(x). Fails with ErrDomain at zero.
func (g *Graph) Abs(x Variable) (Variable, error) {
	return g.Apply1(ops.AbsOp{}, x)
}

// Erf records erf(x).
func (g *Graph) Erf(x Variable) (Variable, error) {
	return g.Apply1(ops.ErfOp{}, x)
}

// NormCDF records the standard normal CDF Φ(x).
func (g *Graph) NormCDF(x Variable) (Variable, error) {
	return g.Apply1(ops.NormCDFOp{}, x)
}

// Sum records the sum of one or more terms as a left-to-right chain of adds.
func (g *Graph) Sum(first Variable, rest ...Variable) (Variable, error) {
	if err := g.check("add", first); err != nil {
		return Variable{}, err
	}
	acc := first
	for _, v := range rest {
		var err error
		if acc, err = g.Add(acc, v); err != nil {
			return Variable{}, err
		}
	}
	return acc, nil
}
