package autodiff

import (
	"iter"
	"slices"

	"github.com/born-ml/quantad/internal/autodiff/ops"
)

// NodeKind tags a node by the number of parents it has.
type NodeKind uint8

// Node kinds.
const (
	Leaf NodeKind = iota
	Unary
	Binary
)

// String returns the lower-case kind name.
func (k NodeKind) String() string {
	switch k {
	case Leaf:
		return "leaf"
	case Unary:
		return "unary"
	case Binary:
		return "binary"
	default:
		return "unknown"
	}
}

// Node is one recorded operation (or input) on the tape.
//
// Local partials are stored as numbers computed when the node was appended,
// so the backward pass is a pure multiply-add scan.
type Node struct {
	kind     NodeKind
	op       string     // Catalog name, "leaf" or "const" for inputs
	value    float64    // Forward value
	parents  [2]int     // Parent indices, valid up to arity
	partials [2]float64 // d(this)/d(parent[i])
}

// Kind returns whether the node is a leaf, unary or binary.
func (n Node) Kind() NodeKind { return n.kind }

// Op returns the operation label.
func (n Node) Op() string { return n.op }

// Value returns the forward value computed at creation time.
func (n Node) Value() float64 { return n.value }

// Arity returns the number of parents (0, 1 or 2).
func (n Node) Arity() int { return int(n.kind) }

// Parents returns the parent indices, each strictly less than the node's own index.
func (n Node) Parents() []int { return slices.Clone(n.parents[:n.Arity()]) }

// Partials returns the local partial derivative with respect to each parent.
func (n Node) Partials() []float64 { return slices.Clone(n.partials[:n.Arity()]) }

// Graph is the append-only tape of a single expression-building session.
//
// Every operation appends exactly one node and returns a Variable pointing at
// it. Parents always precede their children, so creation order is already a
// topological order and the backward pass needs no sort.
//
// A Graph is not safe for concurrent use. Independent graphs share nothing
// and may be used from separate goroutines.
//
// Usage:
//
//	g := NewGraph()
//	x := g.Variable(2)
//	y := g.Variable(3)
//	xy, _ := g.Mul(x, y)
//	grad, _ := g.Accumulate(xy)
//	dx, _ := grad.Of(x) // 3
type Graph struct {
	nodes      []Node // Recorded nodes (in creation order)
	generation uint64 // Bumped by Reset, invalidates outstanding handles
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes:      make([]Node, 0, 64), // Pre-allocate for common case
		generation: 1,
	}
}

// Variable records an independent input and returns its handle.
func (g *Graph) Variable(value float64) Variable {
	return g.push(Node{kind: Leaf, op: "leaf", value: value})
}

// Constant records an input that is not meant to be differentiated against.
//
// It is a leaf like any other; the separate label only shows up in exports.
func (g *Graph) Constant(value float64) Variable {
	return g.push(Node{kind: Leaf, op: "const", value: value})
}

// Variables records one leaf per value, in order.
func (g *Graph) Variables(values ...float64) []Variable {
	vars := make([]Variable, len(values))
	for i, v := range values {
		vars[i] = g.Variable(v)
	}
	return vars
}

// Len returns the number of recorded nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Node returns a copy of the node at index i.
func (g *Graph) Node(i int) (Node, error) {
	if i < 0 || i >= len(g.nodes) {
		return Node{}, opError("node", i, ErrIndexOutOfRange)
	}
	return g.nodes[i], nil
}

// All iterates over the recorded nodes in creation order.
//
// The graph must not be modified while iterating.
func (g *Graph) All() iter.Seq2[int, Node] {
	return func(yield func(int, Node) bool) {
		for i, n := range g.nodes {
			if !yield(i, n) {
				return
			}
		}
	}
}

// Reset discards every node. Variables and gradients issued before the
// reset become stale and are rejected with ErrInvalidHandle.
//
// Useful for reusing the allocation across iterations of a solver.
func (g *Graph) Reset() {
	g.nodes = g.nodes[:0]
	g.generation++
}

// Apply1 records a unary catalog operation applied to x.
//
// On error nothing is appended.
func (g *Graph) Apply1(op ops.Unary, x Variable) (Variable, error) {
	if err := g.check(op.Name(), x); err != nil {
		return Variable{}, err
	}
	r, err := op.Apply(x.value)
	if err != nil {
		return Variable{}, opError(op.Name(), x.index, err)
	}
	return g.push(Node{
		kind:     Unary,
		op:       op.Name(),
		value:    r.Value,
		parents:  [2]int{x.index, 0},
		partials: r.Partials,
	}), nil
}

// Apply2 records a binary catalog operation applied to a and b.
//
// Both operands must come from g. On error nothing is appended.
func (g *Graph) Apply2(op ops.Binary, a, b Variable) (Variable, error) {
	if err := g.check(op.Name(), a, b); err != nil {
		return Variable{}, err
	}
	r, err := op.Apply(a.value, b.value)
	if err != nil {
		return Variable{}, opError(op.Name(), -1, err)
	}
	return g.push(Node{
		kind:     Binary,
		op:       op.Name(),
		value:    r.Value,
		parents:  [2]int{a.index, b.index},
		partials: r.Partials,
	}), nil
}

// check validates operand handles against g.
func (g *Graph) check(op string, operands ...Variable) error {
	for _, v := range operands {
		if v.graph == nil {
			return opError(op, -1, ErrInvalidHandle)
		}
		if v.graph != g {
			return opError(op, v.index, ErrMismatchedGraph)
		}
		if !v.Valid() {
			return opError(op, v.index, ErrInvalidHandle)
		}
	}
	return nil
}

// push appends n and returns its handle. Parents were validated by the caller,
// so every parent index is below the new index.
func (g *Graph) push(n Node) Variable {
	index := len(g.nodes)
	g.nodes = append(g.nodes, n)
	return Variable{
		graph:      g,
		index:      index,
		generation: g.generation,
		value:      n.value,
	}
}
