// Package graph assembles the immutable directed data-flow graph handed to
// the renderer.
package graph

import (
	"fmt"

	"github.com/servermap/servermap/internal/decl"
	"github.com/servermap/servermap/internal/matcher"
)

// Node is one server in the graph.
type Node struct {
	Name string
	Meta map[string]string
}

// Edge is a deduplicated directed data flow, labeled by stream identifier.
type Edge struct {
	Source      string
	Destination string
	Stream      string
	// Multiplicity counts how many declaration pairs collapsed into this
	// edge. Diagnostic only; it does not affect rendering.
	Multiplicity int
}

// DanglingReferenceError reports an edge naming a server absent from the
// node set. This is an internal invariant breach: the identity resolver
// creates a node for every name the matcher can emit.
type DanglingReferenceError struct {
	Server string
	Stream string
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("edge for stream %q references unknown server %q", e.Stream, e.Server)
}

// Graph is the ownership root: the ordered node set and the deduplicated
// edge set. Immutable once built.
type Graph struct {
	nodes []Node
	index map[string]int
	edges []Edge
}

// Build assembles a graph from resolved server nodes and matcher output.
// Node order is preserved as given; edge instances arrive sorted from the
// matcher and are merged by (source, destination, stream) with summed
// multiplicity, which keeps the edge set sorted too.
func Build(nodes []decl.ServerEntry, instances []matcher.Instance) (*Graph, error) {
	g := &Graph{index: make(map[string]int, len(nodes))}
	for _, entry := range nodes {
		if _, dup := g.index[entry.Name]; dup {
			continue
		}
		g.index[entry.Name] = len(g.nodes)
		g.nodes = append(g.nodes, Node{Name: entry.Name, Meta: entry.Meta})
	}

	for _, inst := range instances {
		if _, ok := g.index[inst.Source]; !ok {
			return nil, &DanglingReferenceError{Server: inst.Source, Stream: inst.Stream}
		}
		if _, ok := g.index[inst.Destination]; !ok {
			return nil, &DanglingReferenceError{Server: inst.Destination, Stream: inst.Stream}
		}

		if n := len(g.edges); n > 0 {
			last := &g.edges[n-1]
			if last.Source == inst.Source && last.Destination == inst.Destination && last.Stream == inst.Stream {
				last.Multiplicity++
				continue
			}
		}
		g.edges = append(g.edges, Edge{
			Source:       inst.Source,
			Destination:  inst.Destination,
			Stream:       inst.Stream,
			Multiplicity: 1,
		})
	}

	return g, nil
}

// Nodes returns the node set in insertion order.
func (g *Graph) Nodes() []Node {
	return append([]Node(nil), g.nodes...)
}

// Edges returns the edge set ordered by (source, destination, stream).
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// Node looks up a node by exact name.
func (g *Graph) Node(name string) (Node, bool) {
	if i, ok := g.index[name]; ok {
		return g.nodes[i], true
	}
	return Node{}, false
}
