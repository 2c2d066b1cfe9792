// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation of scalar
// functions.
//
// Operations are recorded on a Graph (a flat tape) as they are evaluated.
// One reverse pass over the tape then yields the derivative of an output with
// respect to every recorded variable.
//
// Example:
//
//	import "github.com/born-ml/quantad/autodiff"
//
//	func main() {
//	    g := autodiff.NewGraph()
//	    x := g.Variable(3)
//	    y := g.Variable(2)
//
//	    b := autodiff.NewBuilder(g)
//	    f := b.Add(b.Mul(x, y), b.Exp(y)) // x·y + e^y
//	    if err := b.Err(); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    grad, _ := g.Accumulate(f)
//	    d, _ := grad.Wrt(x, y) // [2, 3 + e²]
//	}
//
// A Graph is not safe for concurrent use. Independent graphs may be used from
// separate goroutines.
package autodiff

import (
	"github.com/born-ml/quantad/internal/autodiff"
	"github.com/born-ml/quantad/internal/autodiff/ops"
)

// Graph is the append-only tape that records a computation.
type Graph = autodiff.Graph

// Variable is a handle to a recorded value.
type Variable = autodiff.Variable

// Node is a read-only view of one tape entry.
type Node = autodiff.Node

// NodeKind classifies a node as a leaf, unary or binary operation.
type NodeKind = autodiff.NodeKind

// Node kinds.
const (
	Leaf   = autodiff.Leaf
	Unary  = autodiff.Unary
	Binary = autodiff.Binary
)

// Gradient holds the adjoints produced by one reverse pass.
type Gradient = autodiff.Gradient

// Builder records expressions while deferring error checks to the end.
type Builder = autodiff.Builder

// OpError describes a failed recording or query.
type OpError = autodiff.OpError

// Errors reported by graph operations. Match them with errors.Is.
var (
	ErrMismatchedGraph = autodiff.ErrMismatchedGraph
	ErrDomain          = autodiff.ErrDomain
	ErrIndexOutOfRange = autodiff.ErrIndexOutOfRange
	ErrInvalidHandle   = autodiff.ErrInvalidHandle
)

// Operation is an elementary function that can be recorded on a Graph.
type Operation = ops.Operation

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return autodiff.NewGraph()
}

// NewBuilder creates a Builder recording on g.
func NewBuilder(g *Graph) *Builder {
	return autodiff.NewBuilder(g)
}

// Accumulate runs a reverse pass seeded at out on out's graph.
func Accumulate(out Variable) (*Gradient, error) {
	return autodiff.Accumulate(out)
}

// Catalog lists every built-in operation.
func Catalog() []Operation {
	return ops.Catalog()
}
