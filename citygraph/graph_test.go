// Package citygraph_test validates the arena invariants: simple undirected
// storage, deterministic adjacency, mode parsing, flag mutation, and the
// connected-component sweep.
package citygraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypertransit/citygraph"
	"github.com/katalvlaran/hypertransit/geometry"
)

// fivePoints returns positions for a small fixture graph; values are
// arbitrary disk coordinates, the graph tests don't depend on the metric.
func fivePoints() []geometry.Point {
	return []geometry.Point{
		{0, 0}, {0.1, 0}, {0.2, 0}, {0.3, 0}, {0.4, 0},
	}
}

func TestParseMode(t *testing.T) {
	cases := []struct {
		in   string
		want citygraph.Mode
	}{
		{"walk", citygraph.Walk},
		{"car", citygraph.Car},
		{"public", citygraph.Public},
		{"  Car ", citygraph.Car}, // trimmed, case-insensitive
	}
	for _, tc := range cases {
		got, err := citygraph.ParseMode(tc.in)
		require.NoError(t, err, "ParseMode(%q)", tc.in)
		assert.Equal(t, tc.want, got)
	}

	_, err := citygraph.ParseMode("bike")
	assert.ErrorIs(t, err, citygraph.ErrUnknownMode)
}

func TestModeSet(t *testing.T) {
	s := citygraph.NewModeSet(citygraph.Walk, citygraph.Car)
	assert.True(t, s.Has(citygraph.Walk))
	assert.True(t, s.Has(citygraph.Car))
	assert.False(t, s.Has(citygraph.Public))
	assert.Equal(t, "walk,car", s.String())

	// With is idempotent and non-mutating on the receiver.
	extended := s.With(citygraph.Public)
	assert.True(t, extended.Has(citygraph.Public))
	assert.False(t, s.Has(citygraph.Public))
	assert.Equal(t, extended, extended.With(citygraph.Public))
}

func TestAddEdge_Invariants(t *testing.T) {
	g := citygraph.NewGraph(fivePoints())
	walk := citygraph.NewModeSet(citygraph.Walk)

	// Valid edge; endpoints normalized U < V regardless of call order.
	id, err := g.AddEdge(3, 1, 0.5, walk)
	require.NoError(t, err)
	e, err := g.Edge(id)
	require.NoError(t, err)
	assert.Equal(t, 1, e.U)
	assert.Equal(t, 3, e.V)
	assert.Equal(t, citygraph.DefaultCongestion, e.Congestion)

	// Unknown endpoint.
	_, err = g.AddEdge(0, 99, 1.0, walk)
	assert.ErrorIs(t, err, citygraph.ErrNodeNotFound)

	// Self-loop.
	_, err = g.AddEdge(2, 2, 1.0, walk)
	assert.ErrorIs(t, err, citygraph.ErrSelfLoop)

	// Negative distance.
	_, err = g.AddEdge(0, 1, -0.1, walk)
	assert.ErrorIs(t, err, citygraph.ErrBadDistance)

	// Duplicate pair, either orientation.
	_, err = g.AddEdge(1, 3, 0.5, walk)
	assert.ErrorIs(t, err, citygraph.ErrDuplicateEdge)
	_, err = g.AddEdge(3, 1, 0.5, walk)
	assert.ErrorIs(t, err, citygraph.ErrDuplicateEdge)

	assert.Equal(t, 1, g.NumEdges())
}

func TestAdjacency_Deterministic(t *testing.T) {
	g := citygraph.NewGraph(fivePoints())
	walk := citygraph.NewModeSet(citygraph.Walk)

	// Edge IDs assigned in creation order; adjacency lists ascend.
	for _, pair := range [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}} {
		_, err := g.AddEdge(pair[0], pair[1], 1.0, walk)
		require.NoError(t, err)
	}

	assert.Equal(t, []int{0, 1, 2}, g.EdgesOf(0))
	assert.Equal(t, []int{0, 3}, g.EdgesOf(1))
	assert.Equal(t, 3, g.Degree(0))
	assert.Equal(t, 0, g.Degree(4), "isolated node retained with degree 0")
	assert.Nil(t, g.EdgesOf(99))
	assert.True(t, g.HasEdgeBetween(2, 0))
	assert.False(t, g.HasEdgeBetween(3, 4))
}

func TestAccessors_CopySemantics(t *testing.T) {
	g := citygraph.NewGraph(fivePoints())
	id, err := g.AddEdge(0, 1, 1.0, citygraph.NewModeSet(citygraph.Walk))
	require.NoError(t, err)

	// Mutating a returned Edge value must not leak into the arena.
	e, err := g.Edge(id)
	require.NoError(t, err)
	e.Congestion = 99
	fresh, err := g.Edge(id)
	require.NoError(t, err)
	assert.Equal(t, citygraph.DefaultCongestion, fresh.Congestion)

	_, err = g.Edge(42)
	assert.ErrorIs(t, err, citygraph.ErrEdgeNotFound)
	_, err = g.Node(-1)
	assert.ErrorIs(t, err, citygraph.ErrNodeNotFound)
}

func TestMutators(t *testing.T) {
	g := citygraph.NewGraph(fivePoints())
	id, err := g.AddEdge(0, 1, 1.0, citygraph.NewModeSet(citygraph.Walk))
	require.NoError(t, err)

	// MarkStop, idempotent.
	require.NoError(t, g.MarkStop(1))
	require.NoError(t, g.MarkStop(1))
	n, err := g.Node(1)
	require.NoError(t, err)
	assert.True(t, n.IsStop)
	assert.ErrorIs(t, g.MarkStop(77), citygraph.ErrNodeNotFound)

	// GrantMode + MarkPublicRoute, idempotent.
	require.NoError(t, g.GrantMode(id, citygraph.Public))
	require.NoError(t, g.GrantMode(id, citygraph.Public))
	require.NoError(t, g.MarkPublicRoute(id))
	e, err := g.Edge(id)
	require.NoError(t, err)
	assert.True(t, e.Modes.Has(citygraph.Public))
	assert.True(t, e.IsPublicRoute)
	assert.ErrorIs(t, g.GrantMode(id, citygraph.Mode(9)), citygraph.ErrUnknownMode)

	// SetCongestion guards the ≥ 1 invariant.
	require.NoError(t, g.SetCongestion(id, 2.5))
	assert.ErrorIs(t, g.SetCongestion(id, 0.9), citygraph.ErrBadCongestion)
	e, err = g.Edge(id)
	require.NoError(t, err)
	assert.Equal(t, 2.5, e.Congestion)
}

func TestComponents(t *testing.T) {
	// Two linked pairs plus one isolated node: three components.
	g := citygraph.NewGraph(fivePoints())
	walk := citygraph.NewModeSet(citygraph.Walk)
	_, err := g.AddEdge(0, 1, 1.0, walk)
	require.NoError(t, err)
	_, err = g.AddEdge(2, 3, 1.0, walk)
	require.NoError(t, err)

	comps := g.Components()
	require.Len(t, comps, 3)
	assert.ElementsMatch(t, []int{0, 1}, comps[0])
	assert.ElementsMatch(t, []int{2, 3}, comps[1])
	assert.Equal(t, []int{4}, comps[2], "isolated node forms a singleton")

	// Grow the first component; LargestComponent follows.
	_, err = g.AddEdge(1, 4, 1.0, walk)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1, 4}, g.LargestComponent())
}

func TestComponents_EmptyGraph(t *testing.T) {
	g := citygraph.NewGraph(nil)
	assert.Empty(t, g.Components())
	assert.Nil(t, g.LargestComponent())
}
