package autodiff

// Gradient holds the adjoints computed by one Accumulate call.
//
// It is a snapshot: nodes appended after the call are out of its range, and
// a Reset of the graph invalidates it.
type Gradient struct {
	graph      *Graph
	generation uint64
	adjoints   []float64
}

// Accumulate computes d(out)/d(node) for every node recorded up to out.
//
// Algorithm:
//  1. Allocate zeroed adjoints, one per node
//  2. Seed adjoint[out] = 1
//  3. Walk indices from out down to 0
//  4. For each node with a non-zero adjoint, add adjoint * partial into
//     every parent's adjoint
//
// Step 4 adds instead of assigning, which is what makes a node used by
// several children (or twice by the same child, as in x*x) come out right.
// Nodes above out cannot influence it, so the scan starts at out.
//
// The graph is not modified. Calling Accumulate again, for the same or a
// different output, yields an independent Gradient.
func (g *Graph) Accumulate(out Variable) (*Gradient, error) {
	if err := g.check("accumulate", out); err != nil {
		return nil, err
	}

	adjoints := make([]float64, len(g.nodes))
	adjoints[out.index] = 1

	for i := out.index; i >= 0; i-- {
		adj := adjoints[i]
		if adj == 0 {
			continue
		}
		n := &g.nodes[i]
		for p := 0; p < n.Arity(); p++ {
			adjoints[n.parents[p]] += adj * n.partials[p]
		}
	}

	return &Gradient{
		graph:      g,
		generation: g.generation,
		adjoints:   adjoints,
	}, nil
}

// Accumulate computes the gradient of out on the graph that owns it.
//
// Example:
//
//	f, _ := x.Mul(x)
//	grad, _ := autodiff.Accumulate(f)
//	dx, _ := grad.Of(x) // 2x
func Accumulate(out Variable) (*Gradient, error) {
	if out.graph == nil {
		return nil, opError("accumulate", -1, ErrInvalidHandle)
	}
	return out.graph.Accumulate(out)
}

// Wrt returns the adjoint of each variable, in the order given.
//
// A variable from another graph, or one created after this gradient was
// computed, fails with ErrIndexOutOfRange. A variable (or gradient) that
// predates a Reset fails with ErrInvalidHandle.
func (gr *Gradient) Wrt(vars ...Variable) ([]float64, error) {
	out := make([]float64, len(vars))
	for i, v := range vars {
		d, err := gr.Of(v)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

// Of returns the adjoint of a single variable.
func (gr *Gradient) Of(v Variable) (float64, error) {
	if gr.generation != gr.graph.generation || (v.graph == gr.graph && !v.Valid()) {
		return 0, opError("wrt", v.index, ErrInvalidHandle)
	}
	if v.graph != gr.graph || v.index < 0 || v.index >= len(gr.adjoints) {
		return 0, opError("wrt", v.index, ErrIndexOutOfRange)
	}
	return gr.adjoints[v.index], nil
}

// Len returns the number of adjoints, equal to the graph length at accumulation time.
func (gr *Gradient) Len() int {
	return len(gr.adjoints)
}
