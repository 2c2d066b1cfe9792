// Package dot exports a tape as a directed-graph description.
//
// The text grammar is the Graphviz subset:
//
//	digraph tape {
//	  0 [label="leaf(2)"];
//	  1 [label="leaf(3)"];
//	  2 [label="mul(6)"];
//	  0 -> 2;
//	  1 -> 2;
//	}
//
// Node statements come first in creation order, then one edge statement per
// parent relation, also in creation order of the child. A node that uses the
// same parent twice (x*x) gets two identical edge statements.
//
// Exporting never modifies the graph.
package dot

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/born-ml/quantad/internal/autodiff"
)

// Write writes the text description of g to w.
func Write(w io.Writer, g *autodiff.Graph) error {
	bw := bufio.NewWriter(w)

	bw.WriteString("digraph tape {\n")
	for i, n := range g.All() {
		bw.WriteString("  ")
		bw.WriteString(strconv.Itoa(i))
		bw.WriteString(` [label="`)
		bw.WriteString(Label(n))
		bw.WriteString("\"];\n")
	}
	for i, n := range g.All() {
		for _, p := range n.Parents() {
			bw.WriteString("  ")
			bw.WriteString(strconv.Itoa(p))
			bw.WriteString(" -> ")
			bw.WriteString(strconv.Itoa(i))
			bw.WriteString(";\n")
		}
	}
	bw.WriteString("}\n")

	return bw.Flush()
}

// String returns the text description of g.
func String(g *autodiff.Graph) string {
	var sb strings.Builder
	_ = Write(&sb, g) // strings.Builder never fails
	return sb.String()
}

// Label formats a node as op(value).
func Label(n autodiff.Node) string {
	return n.Op() + "(" + strconv.FormatFloat(n.Value(), 'g', -1, 64) + ")"
}

// Directed returns the tape's structure as a gonum directed graph, for
// analysis with gonum's graph algorithms (topological sort, reachability).
//
// Node IDs equal tape indices. Repeated parent relations collapse to one edge.
func Directed(g *autodiff.Graph) *simple.DirectedGraph {
	dg := simple.NewDirectedGraph()
	for i := range g.All() {
		dg.AddNode(simple.Node(i))
	}
	for i, n := range g.All() {
		for _, p := range n.Parents() {
			dg.SetEdge(dg.NewEdge(simple.Node(p), simple.Node(i)))
		}
	}
	return dg
}
