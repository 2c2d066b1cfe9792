package autodiff

// Variable is a non-owning handle to a node on a Graph.
//
// It caches the node's forward value. Two Variables with the same graph and
// index are interchangeable. The zero Variable is invalid, and so is any
// Variable issued before its graph was Reset.
type Variable struct {
	graph      *Graph
	index      int
	generation uint64
	value      float64
}

// Value returns the forward value of the node.
func (v Variable) Value() float64 { return v.value }

// Index returns the node index on the owning graph.
func (v Variable) Index() int { return v.index }

// Graph returns the owning graph, or nil for the zero Variable.
func (v Variable) Graph() *Graph { return v.graph }

// Valid reports whether the handle still refers to a live node.
func (v Variable) Valid() bool {
	return v.graph != nil &&
		v.generation == v.graph.generation &&
		v.index >= 0 && v.index < len(v.graph.nodes)
}

// The methods below mirror the Graph methods with v as the first operand,
// so expressions can be written as x.Mul(y) instead of g.Mul(x, y).

// Add returns v + w.
func (v Variable) Add(w Variable) (Variable, error) { return v.owner().Add(v, w) }

// Sub returns v - w.
func (v Variable) Sub(w Variable) (Variable, error) { return v.owner().Sub(v, w) }

// Mul returns v * w.
func (v Variable) Mul(w Variable) (Variable, error) { return v.owner().Mul(v, w) }

// Div returns v / w.
func (v Variable) Div(w Variable) (Variable, error) { return v.owner().Div(v, w) }

// Neg returns -v.
func (v Variable) Neg() (Variable, error) { return v.owner().Neg(v) }

// PowI returns v^n.
func (v Variable) PowI(n int) (Variable, error) { return v.owner().PowI(v, n) }

// Exp returns exp(v).
func (v Variable) Exp() (Variable, error) { return v.owner().Exp(v) }

// Ln returns ln(v).
func (v Variable) Ln() (Variable, error) { return v.owner().Ln(v) }

// Sqrt returns √v.
func (v Variable) Sqrt() (Variable, error) { return v.owner().Sqrt(v) }

// owner returns the graph to record on. For a zero Variable it returns a
// detached graph whose operand check rejects the handle.
func (v Variable) owner() *Graph {
	if v.graph == nil {
		return &Graph{}
	}
	return v.graph
}
