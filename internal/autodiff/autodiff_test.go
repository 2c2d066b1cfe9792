package autodiff_test

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/quantad/internal/autodiff"
)

const tol = 1e-9

// TestGraph_Leaves tests leaf creation and indexing.
func TestGraph_Leaves(t *testing.T) {
	g := autodiff.NewGraph()
	assert.Equal(t, 0, g.Len())

	x := g.Variable(2)
	c := g.Constant(3)
	vs := g.Variables(4, 5)

	assert.Equal(t, 4, g.Len())
	assert.Equal(t, 0, x.Index())
	assert.Equal(t, 1, c.Index())
	assert.Equal(t, []int{2, 3}, []int{vs[0].Index(), vs[1].Index()})
	assert.Equal(t, 2.0, x.Value())
	assert.Same(t, g, x.Graph())

	n, err := g.Node(1)
	require.NoError(t, err)
	assert.Equal(t, autodiff.Leaf, n.Kind())
	assert.Equal(t, "const", n.Op())
	assert.Empty(t, n.Parents())
	assert.Empty(t, n.Partials())
}

// TestGraph_NodeRecording tests that each operation appends one node with eager partials.
func TestGraph_NodeRecording(t *testing.T) {
	g := autodiff.NewGraph()
	a, b := g.Variable(2), g.Variable(5)

	prod, err := g.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Len())
	assert.Equal(t, 10.0, prod.Value())

	n, err := g.Node(prod.Index())
	require.NoError(t, err)
	assert.Equal(t, autodiff.Binary, n.Kind())
	assert.Equal(t, "mul", n.Op())
	assert.Equal(t, []int{0, 1}, n.Parents())
	assert.Equal(t, []float64{5, 2}, n.Partials())

	e, err := g.Exp(a)
	require.NoError(t, err)
	n, _ = g.Node(e.Index())
	assert.Equal(t, autodiff.Unary, n.Kind())
	assert.Equal(t, []int{0}, n.Parents())
	assert.InDelta(t, math.Exp(2), n.Partials()[0], tol)

	_, err = g.Node(99)
	assert.ErrorIs(t, err, autodiff.ErrIndexOutOfRange)
}

// TestGraph_TopologicalInvariant tests that parents always precede children.
func TestGraph_TopologicalInvariant(t *testing.T) {
	g := autodiff.NewGraph()
	vars := g.Variables(0.3, 1.1, 2.5)

	// Grow a tape by repeatedly combining earlier nodes.
	pool := append([]autodiff.Variable(nil), vars...)
	for i := 0; i < 200; i++ {
		a := pool[(i*7)%len(pool)]
		b := pool[(i*3+1)%len(pool)]
		var (
			v   autodiff.Variable
			err error
		)
		switch i % 5 {
		case 0:
			v, err = g.Add(a, b)
		case 1:
			v, err = g.Mul(a, b)
		case 2:
			v, err = g.Sin(a)
		case 3:
			v, err = g.Sub(a, b)
		default:
			v, err = g.Tanh(b)
		}
		require.NoError(t, err)
		pool = append(pool, v)
	}

	for i, n := range g.All() {
		for _, p := range n.Parents() {
			assert.Less(t, p, i, "node %d has parent %d", i, p)
		}
	}
}

// TestAccumulate_Scenario tests f = x² + y² + exp(x*y) at (2, 3).
func TestAccumulate_Scenario(t *testing.T) {
	g := autodiff.NewGraph()
	x, y := g.Variable(2), g.Variable(3)

	b := autodiff.NewBuilder(g)
	f := b.Add(b.Add(b.PowI(x, 2), b.PowI(y, 2)), b.Exp(b.Mul(x, y)))
	require.NoError(t, b.Err())

	e6 := math.Exp(6)
	assert.InDelta(t, 13+e6, f.Value(), 1e-9)
	assert.InDelta(t, 416.43, f.Value(), 0.01)

	grad, err := g.Accumulate(f)
	require.NoError(t, err)
	d, err := grad.Wrt(x, y)
	require.NoError(t, err)

	assert.InEpsilon(t, 4+3*e6, d[0], 1e-12)
	assert.InEpsilon(t, 6+2*e6, d[1], 1e-12)
	assert.InDelta(t, 1214.29, d[0], 0.01)
	assert.InDelta(t, 812.86, d[1], 0.01)
}

// TestAccumulate_SharedSubexpression tests z = x + y, f = z * z.
func TestAccumulate_SharedSubexpression(t *testing.T) {
	g := autodiff.NewGraph()
	x, y := g.Variable(1.5), g.Variable(-4)

	z, err := g.Add(x, y)
	require.NoError(t, err)
	f, err := g.Mul(z, z)
	require.NoError(t, err)

	grad, err := autodiff.Accumulate(f)
	require.NoError(t, err)
	d, err := grad.Wrt(x, y)
	require.NoError(t, err)

	want := 2 * (1.5 - 4)
	assert.Equal(t, want, d[0])
	assert.Equal(t, want, d[1])
}

// TestAccumulate_FanOut tests a node consumed by several children.
func TestAccumulate_FanOut(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.Variable(0.7)

	s, _ := g.Sin(x)
	c, _ := g.Cos(x)
	e, _ := g.Exp(x)
	f, err := g.Sum(s, c, e, x)
	require.NoError(t, err)

	grad, err := g.Accumulate(f)
	require.NoError(t, err)
	dx, err := grad.Of(x)
	require.NoError(t, err)
	assert.InDelta(t, math.Cos(0.7)-math.Sin(0.7)+math.Exp(0.7)+1, dx, tol)
}

// TestAccumulate_UnusedLeaf tests that unrelated leaves get exactly zero.
func TestAccumulate_UnusedLeaf(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.Variable(3)
	unused := g.Variable(42)
	f, err := x.Mul(x)
	require.NoError(t, err)
	later := g.Variable(7) // created after f, still within the gradient's range

	grad, err := g.Accumulate(f)
	require.NoError(t, err)
	d, err := grad.Wrt(unused, later, x)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 6}, d)
}

// TestAccumulate_Idempotent tests that repeated calls are independent.
func TestAccumulate_Idempotent(t *testing.T) {
	g := autodiff.NewGraph()
	x, y := g.Variable(0.4), g.Variable(1.7)
	b := autodiff.NewBuilder(g)
	f := b.Mul(b.Sin(x), b.Ln(y))
	h := b.Div(x, y)
	require.NoError(t, b.Err())

	first, err := g.Accumulate(f)
	require.NoError(t, err)
	other, err := g.Accumulate(h)
	require.NoError(t, err)
	second, err := g.Accumulate(f)
	require.NoError(t, err)

	d1, _ := first.Wrt(x, y)
	d2, _ := second.Wrt(x, y)
	assert.Equal(t, d1, d2)

	dh, _ := other.Wrt(x, y)
	assert.InDelta(t, 1/1.7, dh[0], tol)
	assert.InDelta(t, -0.4/(1.7*1.7), dh[1], tol)
	assert.Equal(t, 6, g.Len(), "accumulate must not append nodes")
}

// TestAccumulate_OutputIsLeaf tests the gradient of a leaf with respect to itself.
func TestAccumulate_OutputIsLeaf(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.Variable(5)
	grad, err := g.Accumulate(x)
	require.NoError(t, err)
	dx, err := grad.Of(x)
	require.NoError(t, err)
	assert.Equal(t, 1.0, dx)
}

// TestLn_Scenario tests ln at 2 and its domain failures.
func TestLn_Scenario(t *testing.T) {
	g := autodiff.NewGraph()
	x := g.Variable(2)
	f, err := g.Ln(x)
	require.NoError(t, err)
	grad, err := g.Accumulate(f)
	require.NoError(t, err)
	dx, _ := grad.Of(x)
	assert.Equal(t, 0.5, dx)

	for _, bad := range []float64{0, -1} {
		g := autodiff.NewGraph()
		x := g.Variable(bad)
		before := g.Len()
		_, err := g.Ln(x)
		require.ErrorIs(t, err, autodiff.ErrDomain)
		assert.Equal(t, before, g.Len())
	}
}

// TestDiv_ByZero tests that a failed division appends nothing and the graph stays usable.
func TestDiv_ByZero(t *testing.T) {
	g := autodiff.NewGraph()
	x, y := g.Variable(1), g.Variable(0)

	_, err := g.Div(x, y)
	require.Error(t, err)
	assert.ErrorIs(t, err, autodiff.ErrDomain)
	assert.Equal(t, 2, g.Len())

	var opErr *autodiff.OpError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, "div", opErr.Op)

	f, err := g.Add(x, y)
	require.NoError(t, err)
	assert.Equal(t, 2, f.Index())
	grad, err := g.Accumulate(f)
	require.NoError(t, err)
	d, _ := grad.Wrt(x, y)
	assert.Equal(t, []float64{1, 1}, d)
}

// TestMismatchedGraph tests operands from two graphs.
func TestMismatchedGraph(t *testing.T) {
	g1, g2 := autodiff.NewGraph(), autodiff.NewGraph()
	a, b := g1.Variable(1), g2.Variable(2)

	_, err := g1.Add(a, b)
	assert.ErrorIs(t, err, autodiff.ErrMismatchedGraph)
	_, err = a.Mul(b)
	assert.ErrorIs(t, err, autodiff.ErrMismatchedGraph)
	_, err = g1.Exp(b)
	assert.ErrorIs(t, err, autodiff.ErrMismatchedGraph)

	assert.Equal(t, 1, g1.Len())
	assert.Equal(t, 1, g2.Len())
}

// TestGradient_Wrt tests query ordering and out-of-range handles.
func TestGradient_Wrt(t *testing.T) {
	g := autodiff.NewGraph()
	x, y := g.Variable(2), g.Variable(3)
	f, _ := g.Sub(x, y)
	grad, err := g.Accumulate(f)
	require.NoError(t, err)

	d, err := grad.Wrt(y, x, y)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 1, -1}, d)
	assert.Equal(t, 3, grad.Len())

	// Created after accumulation: beyond the adjoint array.
	z, _ := g.Add(x, y)
	_, err = grad.Wrt(z)
	assert.ErrorIs(t, err, autodiff.ErrIndexOutOfRange)

	other := autodiff.NewGraph().Variable(1)
	_, err = grad.Wrt(x, other)
	assert.ErrorIs(t, err, autodiff.ErrIndexOutOfRange)

	_, err = grad.Of(autodiff.Variable{})
	assert.ErrorIs(t, err, autodiff.ErrIndexOutOfRange)
}

// TestInvalidHandle tests zero and stale variables.
func TestInvalidHandle(t *testing.T) {
	var zero autodiff.Variable
	assert.False(t, zero.Valid())
	_, err := zero.Exp()
	assert.ErrorIs(t, err, autodiff.ErrInvalidHandle)
	_, err = autodiff.Accumulate(zero)
	assert.ErrorIs(t, err, autodiff.ErrInvalidHandle)

	g := autodiff.NewGraph()
	x := g.Variable(2)
	f, _ := x.Mul(x)
	grad, err := g.Accumulate(f)
	require.NoError(t, err)

	g.Reset()
	assert.Equal(t, 0, g.Len())
	assert.False(t, x.Valid())

	fresh := g.Variable(10)
	assert.True(t, fresh.Valid())
	assert.Equal(t, 0, fresh.Index())

	_, err = g.Add(x, fresh)
	assert.ErrorIs(t, err, autodiff.ErrInvalidHandle)
	assert.Equal(t, 1, g.Len())

	_, err = g.Accumulate(f)
	assert.ErrorIs(t, err, autodiff.ErrInvalidHandle)

	_, err = grad.Of(fresh)
	assert.ErrorIs(t, err, autodiff.ErrInvalidHandle)
}

// TestIndependentGraphs_Concurrent tests separate graphs on separate goroutines.
func TestIndependentGraphs_Concurrent(t *testing.T) {
	const workers = 16
	results := make([]float64, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			g := autodiff.NewGraph()
			x := g.Variable(float64(w))
			f, err := g.PowI(x, 3)
			if err != nil {
				errs[w] = err
				return
			}
			grad, err := g.Accumulate(f)
			if err != nil {
				errs[w] = err
				return
			}
			results[w], errs[w] = grad.Of(x)
		}(w)
	}
	wg.Wait()

	for w := 0; w < workers; w++ {
		require.NoError(t, errs[w])
		assert.Equal(t, 3*float64(w*w), results[w])
	}
}

// TestSum tests the chained sum helper.
func TestSum(t *testing.T) {
	g := autodiff.NewGraph()
	vs := g.Variables(1, 2, 3)
	single, err := g.Sum(vs[0])
	require.NoError(t, err)
	assert.Equal(t, vs[0], single)

	total, err := g.Sum(vs[0], vs[1:]...)
	require.NoError(t, err)
	assert.Equal(t, 6.0, total.Value())
	assert.Equal(t, 5, g.Len())

	_, err = g.Sum(autodiff.Variable{})
	assert.ErrorIs(t, err, autodiff.ErrInvalidHandle)
}

// TestOpError_Message tests error formatting.
func TestOpError_Message(t *testing.T) {
	err := &autodiff.OpError{Op: "wrt", Index: 4, Err: autodiff.ErrIndexOutOfRange}
	assert.Equal(t, "autodiff: wrt: node 4: variable index out of range", err.Error())

	err = &autodiff.OpError{Op: "add", Index: -1, Err: autodiff.ErrInvalidHandle}
	assert.Equal(t, "autodiff: add: invalid or stale variable handle", err.Error())
}
