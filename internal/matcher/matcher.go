// Package matcher performs the cross-file stream join: it turns the full
// set of attributed declarations into directed edge instances.
package matcher

import (
	"sort"
	"strings"

	"github.com/servermap/servermap/internal/decl"
	"github.com/servermap/servermap/internal/diag"
)

// Instance is one resolved producer→consumer pairing, before deduplication.
// The graph builder merges instances sharing the same triple into a single
// edge with a multiplicity count.
type Instance struct {
	Source      string
	Destination string
	Stream      string
}

// Match resolves declarations into directed edge instances.
//
// Declarations are partitioned by bare stream identifier (qualifiers are
// ignored for matching), and within each group every produces declaration
// is paired with every consumes declaration. The many-to-many semantics is
// intentional: two producers and three consumers of one stream yield six
// instances. A server pairing with itself yields a self-loop instance,
// preserved verbatim.
//
// Explicit routing hints become additional instances independent of the
// produce/consume join.
//
// Streams declared only as produces or only as consumes yield no instance
// and are reported in the returned diagnostics. The instance list is sorted
// by (source, destination, stream) so the output is invariant to input
// order.
func Match(decls []decl.Declaration, hints []decl.RouteHint) ([]Instance, diag.List) {
	groups := make(map[string][]decl.Declaration)
	var streams []string
	for _, d := range decls {
		if _, ok := groups[d.Stream]; !ok {
			streams = append(streams, d.Stream)
		}
		groups[d.Stream] = append(groups[d.Stream], d)
	}
	sort.Strings(streams)

	var instances []Instance
	var diags diag.List

	for _, stream := range streams {
		var producers, consumers []decl.Declaration
		for _, d := range groups[stream] {
			if d.Direction == decl.Produces {
				producers = append(producers, d)
			} else {
				consumers = append(consumers, d)
			}
		}

		switch {
		case len(producers) == 0:
			diags.Add(diag.UnmatchedStream, stream,
				"consumed by %s but produced by no server", serverList(consumers))
		case len(consumers) == 0:
			diags.Add(diag.UnmatchedStream, stream,
				"produced by %s but consumed by no server", serverList(producers))
		default:
			for _, p := range producers {
				for _, c := range consumers {
					instances = append(instances, Instance{
						Source:      p.Server,
						Destination: c.Server,
						Stream:      stream,
					})
				}
			}
		}
	}

	for _, hint := range hints {
		instances = append(instances, Instance{
			Source:      hint.From,
			Destination: hint.To,
			Stream:      hint.Stream,
		})
	}

	sort.Slice(instances, func(i, j int) bool {
		a, b := instances[i], instances[j]
		if a.Source != b.Source {
			return a.Source < b.Source
		}
		if a.Destination != b.Destination {
			return a.Destination < b.Destination
		}
		return a.Stream < b.Stream
	})

	return instances, diags
}

// serverList names the distinct servers behind a declaration list, sorted,
// for diagnostic messages.
func serverList(decls []decl.Declaration) string {
	seen := make(map[string]struct{})
	var names []string
	for _, d := range decls {
		if _, ok := seen[d.Server]; !ok {
			seen[d.Server] = struct{}{}
			names = append(names, d.Server)
		}
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
