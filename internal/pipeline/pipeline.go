package pipeline

import (
	"context"
	"fmt"

	"github.com/servermap/servermap/internal/ctxlog"
	"github.com/servermap/servermap/internal/decl"
	"github.com/servermap/servermap/internal/diag"
	"github.com/servermap/servermap/internal/dialect"
	"github.com/servermap/servermap/internal/graph"
	"github.com/servermap/servermap/internal/identity"
	"github.com/servermap/servermap/internal/loader"
	"github.com/servermap/servermap/internal/matcher"
)

// Result is the outcome of one pipeline run: a valid graph plus the
// non-fatal diagnostics collected along the way.
type Result struct {
	Graph       *graph.Graph
	Diagnostics diag.List
}

// Pipeline runs the full analysis: load, parse, resolve, match, build. It
// holds no state between runs and is re-runnable within one process.
type Pipeline struct{}

// New creates a pipeline.
func New() *Pipeline {
	return &Pipeline{}
}

// Run analyzes one environment file and a set of per-server config files.
// Any parse or resolution failure aborts with no partial result.
func (p *Pipeline) Run(ctx context.Context, envPath string, serverPaths []string) (*Result, error) {
	logger := ctxlog.FromContext(ctx)

	raw, err := loader.ReadAll(ctx, append([]string{envPath}, serverPaths...))
	if err != nil {
		return nil, err
	}

	var registry *decl.Registry
	var files []*dialect.ServerFile
	for _, file := range raw {
		if file.Path == envPath {
			registry, err = dialect.ParseEnvironment(file.Path, file.Data)
			if err != nil {
				return nil, err
			}
			continue
		}
		parsed, err := dialect.ParseServerFile(file.Path, file.Data)
		if err != nil {
			return nil, err
		}
		files = append(files, parsed)
	}
	if registry == nil {
		return nil, fmt.Errorf("environment file %s was not loaded", envPath)
	}
	logger.Debug("Parsing complete.", "servers_registered", len(registry.Servers), "config_files", len(files))

	resolution, err := identity.Resolve(registry, files)
	if err != nil {
		return nil, err
	}
	logger.Debug("Identity resolution complete.", "nodes", len(resolution.Nodes), "declarations", len(resolution.Decls))

	instances, matchDiags := matcher.Match(resolution.Decls, registry.Hints)
	logger.Debug("Stream matching complete.", "edge_instances", len(instances), "unmatched", len(matchDiags))

	g, err := graph.Build(resolution.Nodes, instances)
	if err != nil {
		return nil, err
	}

	diags := append(resolution.Diagnostics, matchDiags...)
	return &Result{Graph: g, Diagnostics: diags}, nil
}
