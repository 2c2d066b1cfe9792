// Package ops defines the catalog of elementary operations recorded on the tape.
//
// Each operation computes its forward value and the local partial derivative
// with respect to each operand, evaluated at the concrete operand values.
// The tape stores those numbers, so the backward pass never re-evaluates
// anything: it only multiplies and adds.
//
// Supported operations:
//   - Add, Sub, Mul, Div: arithmetic (d(a*b)/da = b, d(a*b)/db = a)
//   - Min, Max: piecewise selection (partial 1 for the selected operand)
//   - Neg, PowI, PowF: negation and powers
//   - Exp, Log, Sqrt: exponential family (d(exp(x))/dx = exp(x), d(ln(x))/dx = 1/x)
//   - Sin, Cos, Tan, Tanh, Sigmoid, Abs: trigonometric and activation functions
//   - Erf, NormCDF: error function and standard normal CDF used by pricing code
//
// Adding an operation means adding one type implementing Unary or Binary.
// The graph never needs to change.
package ops

// Result is the outcome of applying an operation to concrete operands.
//
// Partials[i] is the derivative of Value with respect to operand i.
// Unary operations only fill Partials[0].
type Result struct {
	Value    float64
	Partials [2]float64
}

// Operation is the common part of every catalog entry.
type Operation interface {
	// Name returns the label used by the graph exporter (e.g. "mul", "powi").
	Name() string
}

// Unary is an operation with a single operand.
type Unary interface {
	Operation

	// Apply computes the forward value and d(out)/dx at x.
	// Returns a *DomainError if x is outside the operation's domain.
	Apply(x float64) (Result, error)
}

// Binary is an operation with two operands.
type Binary interface {
	Operation

	// Apply computes the forward value and the partials with respect to a and b.
	// Returns a *DomainError if the operands are outside the operation's domain.
	Apply(a, b float64) (Result, error)
}

// Catalog returns one instance of every supported operation, binary first.
//
// Parameterised operations (PowI, PowF) are listed with a representative
// parameter; their name does not depend on it.
func Catalog() []Operation {
	return []Operation{
		AddOp{},
		SubOp{},
		MulOp{},
		DivOp{},
		MinOp{},
		MaxOp{},
		NegOp{},
		PowIOp{N: 2},
		PowFOp{P: 0.5},
		ExpOp{},
		LogOp{},
		SqrtOp{},
		SinOp{},
		CosOp{},
		TanOp{},
		TanhOp{},
		SigmoidOp{},
		AbsOp{},
		ErfOp{},
		NormCDFOp{},
	}
}

func unary(value, partial float64) Result {
	return Result{Value: value, Partials: [2]float64{partial, 0}}
}

func binary(value, da, db float64) Result {
	return Result{Value: value, Partials: [2]float64{da, db}}
}
