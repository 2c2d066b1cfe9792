package autodiff

import "github.com/born-ml/quantad/internal/autodiff/ops"

// Builder records operations on a graph and keeps the first error.
//
// Formula code gets long when every step returns an error; Builder lets it
// be written straight through and checked once:
//
//	b := autodiff.NewBuilder(g)
//	d1 := b.Div(b.Add(b.Ln(b.Div(s, k)), b.Mul(v2, t)), b.Mul(vol, b.Sqrt(t)))
//	if err := b.Err(); err != nil {
//	    return err
//	}
//
// After the first failure every method returns the zero Variable without
// touching the graph, so the tape keeps only the nodes recorded before it.
type Builder struct {
	g   *Graph
	err error
}

// NewBuilder creates a builder recording on g.
func NewBuilder(g *Graph) *Builder {
	return &Builder{g: g}
}

// Graph returns the graph being recorded on.
func (b *Builder) Graph() *Graph { return b.g }

// Err returns the first error encountered, if any.
func (b *Builder) Err() error { return b.err }

// Variable records a leaf. Leaves are recorded even after an error.
func (b *Builder) Variable(value float64) Variable { return b.g.Variable(value) }

// Constant records a constant leaf.
func (b *Builder) Constant(value float64) Variable { return b.g.Constant(value) }

// Apply1 records a unary operation unless an earlier step failed.
func (b *Builder) Apply1(op ops.Unary, x Variable) Variable {
	if b.err != nil {
		return Variable{}
	}
	v, err := b.g.Apply1(op, x)
	b.err = err
	return v
}

// Apply2 records a binary operation unless an earlier step failed.
func (b *Builder) Apply2(op ops.Binary, x, y Variable) Variable {
	if b.err != nil {
		return Variable{}
	}
	v, err := b.g.Apply2(op, x, y)
	b.err = err
	return v
}

// Add records x + y.
func (b *Builder) Add(x, y Variable) Variable { return b.Apply2(ops.AddOp{}, x, y) }

// Sub records x - y.
func (b *Builder) Sub(x, y Variable) Variable { return b.Apply2(ops.SubOp{}, x, y) }

// Mul records x * y.
func (b *Builder) Mul(x, y Variable) Variable { return b.Apply2(ops.MulOp{}, x, y) }

// Div records x / y.
func (b *Builder) Div(x, y Variable) Variable { return b.Apply2(ops.DivOp{}, x, y) }

// Min records min(x, y).
func (b *Builder) Min(x, y Variable) Variable { return b.Apply2(ops.MinOp{}, x, y) }

// Max records max(x, y).
func (b *Builder) Max(x, y Variable) Variable { return b.Apply2(ops.MaxOp{}, x, y) }

// Neg records -x.
func (b *Builder) Neg(x Variable) Variable { return b.Apply1(ops.NegOp{}, x) }

// PowI records x^n.
func (b *Builder) PowI(x Variable, n int) Variable { return b.Apply1(ops.PowIOp{N: n}, x) }

// PowF records x^p.
func (b *Builder) PowF(x Variable, p float64) Variable { return b.Apply1(ops.PowFOp{P: p}, x) }

// Exp records e^x.
func (b *Builder) Exp(x Variable) Variable { return b.Apply1(ops.ExpOp{}, x) }

// Ln records ln(x).
func (b *Builder) Ln(x Variable) Variable { return b.Apply1(ops.LogOp{}, x) }

// Sqrt records √x.
func (b *Builder) Sqrt(x Variable) Variable { return b.Apply1(ops.SqrtOp{}, x) }

// Sin records sin(x).
func (b *Builder) Sin(x Variable) Variable { return b.Apply1(ops.SinOp{}, x) }

// Cos records cos(x).
func (b *Builder) Cos(x Variable) Variable { return b.Apply1(ops.CosOp{}, x) }

// Tan records tan(x).
func (b *Builder) Tan(x Variable) Variable { return b.Apply1(ops.TanOp{}, x) }

// Tanh records tanh(x).
func (b *Builder) Tanh(x Variable) Variable { return b.Apply1(ops.TanhOp{}, x) }

// Sigmoid records 1/(1+e^-x).
func (b *Builder) Sigmoid(x Variable) Variable { return b.Apply1(ops.SigmoidOp{}, x) }

// Abs records |x|.
func (b *Builder) Abs(x Variable) Variable { return b.Apply1(ops.AbsOp{}, x) }

// Erf records erf(x).
func (b *Builder) Erf(x Variable) Variable { return b.Apply1(ops.ErfOp{}, x) }

// NormCDF records the standard normal CDF of x.
func (b *Builder) NormCDF(x Variable) Variable { return b.Apply1(ops.NormCDFOp{}, x) }
