package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servermap/servermap/internal/decl"
	"github.com/servermap/servermap/internal/diag"
)

func produces(server, stream string) decl.Declaration {
	s, q := decl.SplitQualifier(stream)
	return decl.Declaration{Server: server, Direction: decl.Produces, Stream: s, Qualifier: q}
}

func consumes(server, stream string) decl.Declaration {
	s, q := decl.SplitQualifier(stream)
	return decl.Declaration{Server: server, Direction: decl.Consumes, Stream: s, Qualifier: q}
}

func TestMatch_OneProducerOneConsumer(t *testing.T) {
	t.Parallel()

	instances, diags := Match([]decl.Declaration{
		produces("A", "orders"),
		consumes("B", "orders"),
	}, nil)

	require.Len(t, instances, 1)
	assert.Equal(t, Instance{Source: "A", Destination: "B", Stream: "orders"}, instances[0])
	assert.Empty(t, diags)
}

func TestMatch_ManyToMany(t *testing.T) {
	t.Parallel()

	instances, _ := Match([]decl.Declaration{
		produces("A", "orders"),
		produces("B", "orders"),
		consumes("C", "orders"),
		consumes("D", "orders"),
	}, nil)

	assert.Equal(t, []Instance{
		{Source: "A", Destination: "C", Stream: "orders"},
		{Source: "A", Destination: "D", Stream: "orders"},
		{Source: "B", Destination: "C", Stream: "orders"},
		{Source: "B", Destination: "D", Stream: "orders"},
	}, instances)
}

func TestMatch_SelfLoopPreserved(t *testing.T) {
	t.Parallel()

	instances, _ := Match([]decl.Declaration{
		produces("A", "audit"),
		consumes("A", "audit"),
	}, nil)

	require.Len(t, instances, 1)
	assert.Equal(t, "A", instances[0].Source)
	assert.Equal(t, "A", instances[0].Destination)
}

func TestMatch_QualifiersIgnoredForMatching(t *testing.T) {
	t.Parallel()

	instances, diags := Match([]decl.Declaration{
		produces("A", "orders@v2"),
		consumes("B", "orders@v1"),
	}, nil)

	require.Len(t, instances, 1)
	assert.Equal(t, "orders", instances[0].Stream)
	assert.Empty(t, diags)
}

func TestMatch_UnmatchedStreamsReported(t *testing.T) {
	t.Parallel()

	instances, diags := Match([]decl.Declaration{
		consumes("B", "phantom"),
		produces("A", "shouting"),
	}, nil)

	assert.Empty(t, instances)
	require.Len(t, diags, 2)
	// Diagnostics come out in stream order.
	assert.Equal(t, diag.UnmatchedStream, diags[0].Kind)
	assert.Equal(t, "phantom", diags[0].Subject)
	assert.Contains(t, diags[0].Detail, "B")
	assert.Equal(t, "shouting", diags[1].Subject)
	assert.Contains(t, diags[1].Detail, "A")
}

func TestMatch_RouteHintsBecomeInstances(t *testing.T) {
	t.Parallel()

	instances, diags := Match(nil, []decl.RouteHint{
		{Stream: "heartbeats", From: "api", To: "audit"},
	})

	require.Len(t, instances, 1)
	assert.Equal(t, Instance{Source: "api", Destination: "audit", Stream: "heartbeats"}, instances[0])
	assert.Empty(t, diags)
}

func TestMatch_SortsByDestinationBeforeStream(t *testing.T) {
	t.Parallel()

	// Stream names are chosen to invert the order if streams sorted before
	// destinations.
	instances, _ := Match([]decl.Declaration{
		produces("A", "zeta"),
		consumes("B", "zeta"),
		produces("A", "alpha"),
		consumes("C", "alpha"),
	}, nil)

	assert.Equal(t, []Instance{
		{Source: "A", Destination: "B", Stream: "zeta"},
		{Source: "A", Destination: "C", Stream: "alpha"},
	}, instances)
}

func TestMatch_OrderIndependent(t *testing.T) {
	t.Parallel()

	decls := []decl.Declaration{
		produces("Z", "x"),
		consumes("A", "x"),
		produces("A", "y"),
		consumes("Z", "y"),
	}
	reversed := []decl.Declaration{decls[3], decls[2], decls[1], decls[0]}

	forward, _ := Match(decls, nil)
	backward, _ := Match(reversed, nil)
	assert.Equal(t, forward, backward)
}
