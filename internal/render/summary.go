package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/servermap/servermap/internal/diag"
	"github.com/servermap/servermap/internal/graph"
)

// WriteSummary prints a human-readable run summary: counts, the edge table,
// and any diagnostics.
func WriteSummary(w io.Writer, g *graph.Graph, diags diag.List) {
	nodes := g.Nodes()
	edges := g.Edges()

	unregistered := 0
	for _, n := range nodes {
		if n.Meta["unregistered"] == "true" {
			unregistered++
		}
	}

	fmt.Fprintf(w, "servers: %d (%d unregistered), edges: %d\n", len(nodes), unregistered, len(edges))

	if len(edges) > 0 {
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Source", "Stream", "Destination", "Count"})
		table.SetAutoWrapText(false)
		for _, e := range edges {
			table.Append([]string{e.Source, e.Stream, e.Destination, strconv.Itoa(e.Multiplicity)})
		}
		table.Render()
	}

	for _, d := range diags {
		fmt.Fprintf(w, "warning: %s\n", d)
	}
}
