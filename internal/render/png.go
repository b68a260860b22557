// Package render feeds the finished graph to its output sinks: the
// graphviz image, the architecture JSON export, and the plain-text summary.
// Nothing here mutates the graph.
package render

import (
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/servermap/servermap/internal/ctxlog"
	"github.com/servermap/servermap/internal/graph"
)

// WritePNG lays the graph out left to right and renders it to a PNG file.
// Node labels are server names, edge labels are stream identifiers.
func WritePNG(ctx context.Context, g *graph.Graph, path string) error {
	logger := ctxlog.FromContext(ctx)

	gv := graphviz.New()
	defer gv.Close()

	diagram, err := gv.Graph(graphviz.Directed)
	if err != nil {
		return fmt.Errorf("failed to create diagram: %w", err)
	}
	defer diagram.Close()
	diagram.SetRankDir(cgraph.LRRank)

	nodes := make(map[string]*cgraph.Node)
	for _, n := range g.Nodes() {
		gn, err := diagram.CreateNode(n.Name)
		if err != nil {
			return fmt.Errorf("failed to add node %q: %w", n.Name, err)
		}
		gn.SetShape(cgraph.BoxShape)
		nodes[n.Name] = gn
	}

	for i, e := range g.Edges() {
		// Edge names must be unique within the diagram; the triple is.
		name := fmt.Sprintf("e%d", i)
		ge, err := diagram.CreateEdge(name, nodes[e.Source], nodes[e.Destination])
		if err != nil {
			return fmt.Errorf("failed to add edge %s->%s: %w", e.Source, e.Destination, err)
		}
		ge.SetLabel(e.Stream)
	}

	if err := gv.RenderFilename(diagram, graphviz.PNG, path); err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	logger.Debug("Rendered graph image.", "path", path, "nodes", len(g.Nodes()), "edges", len(g.Edges()))
	return nil
}
