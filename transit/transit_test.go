// Package transit_test validates overlay construction: public capability
// appears only along threaded lines, stops are flagged, overlap is
// idempotent, and the whole process is deterministic per seed.
package transit_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypertransit/citygraph"
	"github.com/katalvlaran/hypertransit/geometry"
	"github.com/katalvlaran/hypertransit/netbuild"
	"github.com/katalvlaran/hypertransit/router"
	"github.com/katalvlaran/hypertransit/transit"
)

const overlaySeed = 7

// connectedFixture builds a well-connected car-capable proximity graph.
func connectedFixture(t *testing.T, n int) *citygraph.Graph {
	t.Helper()
	pts, err := geometry.SamplePoints(n, 0.7, rand.New(rand.NewSource(overlaySeed)))
	require.NoError(t, err)
	g, err := netbuild.Build(pts, 3.0)
	require.NoError(t, err)
	require.Greater(t, g.NumEdges(), 0)

	return g
}

func TestOverlay_Validation(t *testing.T) {
	g := connectedFixture(t, 10)
	rng := rand.New(rand.NewSource(overlaySeed))

	assert.ErrorIs(t, transit.Overlay(nil, 1, rng), transit.ErrNilGraph)
	assert.ErrorIs(t, transit.Overlay(g, 0, rng), transit.ErrBadLineCount)
	assert.ErrorIs(t, transit.Overlay(g, 1, nil), transit.ErrNeedRandSource)

	tiny := citygraph.NewGraph([]geometry.Point{{0, 0}})
	assert.ErrorIs(t, transit.Overlay(tiny, 1, rng), transit.ErrTooFewNodes)
}

func TestOverlay_MarksStopsAndRoutes(t *testing.T) {
	g := connectedFixture(t, 20)
	require.NoError(t, transit.Overlay(g, 3, rand.New(rand.NewSource(overlaySeed))))

	// Public capability and the public-route flag travel together, and
	// public edges remain a subset of car-capable edges (lines follow
	// streets).
	publicEdges := 0
	for _, e := range g.Edges() {
		assert.Equal(t, e.IsPublicRoute, e.Modes.Has(citygraph.Public),
			"edge %d: flag and capability must agree", e.ID)
		if e.IsPublicRoute {
			publicEdges++
			assert.True(t, e.Modes.Has(citygraph.Car),
				"edge %d: lines thread along car-capable streets", e.ID)

			// Both endpoints of a public edge are stops.
			for _, idx := range []int{e.U, e.V} {
				n, err := g.Node(idx)
				require.NoError(t, err)
				assert.True(t, n.IsStop, "node %d lies on a line", idx)
			}
		}
	}
	// The fixture is a single well-connected component, so the per-line
	// car routes exist and at least one line must have landed.
	assert.Greater(t, publicEdges, 0)
}

func TestOverlay_PublicPathsUseOnlyPublicEdges(t *testing.T) {
	g := connectedFixture(t, 20)
	require.NoError(t, transit.Overlay(g, 3, rand.New(rand.NewSource(overlaySeed))))

	// Route between every pair of stops under public mode; every traversed
	// edge must carry the public-route flag.
	var stops []int
	for i := 0; i < g.NumNodes(); i++ {
		n, err := g.Node(i)
		require.NoError(t, err)
		if n.IsStop {
			stops = append(stops, i)
		}
	}
	require.GreaterOrEqual(t, len(stops), 2)

	for _, s := range stops {
		for _, d := range stops {
			res, err := router.Route(g, s, d, citygraph.Public)
			require.NoError(t, err)
			if !res.Found {
				continue // stops of different lines may be disconnected
			}
			for i := 0; i+1 < len(res.Path); i++ {
				e, err := g.EdgeBetween(res.Path[i], res.Path[i+1])
				require.NoError(t, err)
				assert.True(t, e.IsPublicRoute,
					"public route crossed non-public edge %d", e.ID)
			}
		}
	}
}

func TestOverlay_OverlapIsIdempotent(t *testing.T) {
	g := connectedFixture(t, 15)

	// Thread the same deterministic line set twice: the second pass only
	// re-marks, so flags and capabilities are unchanged.
	require.NoError(t, transit.Overlay(g, 2, rand.New(rand.NewSource(overlaySeed))))
	before := g.Edges()
	require.NoError(t, transit.Overlay(g, 2, rand.New(rand.NewSource(overlaySeed))))
	assert.Equal(t, before, g.Edges())
}

func TestOverlay_Deterministic(t *testing.T) {
	a := connectedFixture(t, 25)
	b := connectedFixture(t, 25)

	require.NoError(t, transit.Overlay(a, 4, rand.New(rand.NewSource(overlaySeed))))
	require.NoError(t, transit.Overlay(b, 4, rand.New(rand.NewSource(overlaySeed))))

	assert.Equal(t, a.Edges(), b.Edges(), "same seed, same lines")
	for i := 0; i < a.NumNodes(); i++ {
		na, err := a.Node(i)
		require.NoError(t, err)
		nb, err := b.Node(i)
		require.NoError(t, err)
		assert.Equal(t, na.IsStop, nb.IsStop, "node %d", i)
	}
}

func TestWithMaxAnchors_PanicsBelowMin(t *testing.T) {
	assert.Panics(t, func() { transit.WithMaxAnchors(1) })
}
