package render

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/servermap/servermap/internal/graph"
)

// jsonServer is one server in the architecture export.
type jsonServer struct {
	Meta     map[string]string `json:"meta,omitempty"`
	Produces []string          `json:"produces"`
	Consumes []string          `json:"consumes"`
}

// jsonEdge mirrors graph.Edge with stable field names.
type jsonEdge struct {
	Source       string `json:"source"`
	Destination  string `json:"destination"`
	Stream       string `json:"stream"`
	Multiplicity int    `json:"multiplicity"`
}

// jsonArchitecture is the export document.
type jsonArchitecture struct {
	Servers map[string]jsonServer `json:"servers"`
	Edges   []jsonEdge            `json:"edges"`
}

// WriteJSON writes the architecture export: every server with its resolved
// stream fan-in/fan-out, plus the deduplicated edge list. Keys are sorted
// by the JSON encoder, edges arrive sorted from the graph, so the output is
// byte-stable across runs.
func WriteJSON(w io.Writer, g *graph.Graph) error {
	arch := jsonArchitecture{
		Servers: make(map[string]jsonServer),
		Edges:   []jsonEdge{},
	}

	produces := make(map[string][]string)
	consumes := make(map[string][]string)
	for _, e := range g.Edges() {
		produces[e.Source] = appendUnique(produces[e.Source], e.Stream)
		consumes[e.Destination] = appendUnique(consumes[e.Destination], e.Stream)
		arch.Edges = append(arch.Edges, jsonEdge(e))
	}

	for _, n := range g.Nodes() {
		server := jsonServer{
			Meta:     n.Meta,
			Produces: sortedOrEmpty(produces[n.Name]),
			Consumes: sortedOrEmpty(consumes[n.Name]),
		}
		arch.Servers[n.Name] = server
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(arch)
}

func appendUnique(list []string, s string) []string {
	for _, have := range list {
		if have == s {
			return list
		}
	}
	return append(list, s)
}

func sortedOrEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	sort.Strings(list)
	return list
}
