// SPDX-License-Identifier: MIT
// Package: hypertransit/netbuild
//
// netbuild.go — proximity-graph construction and mode assignment.

package netbuild

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hypertransit/citygraph"
	"github.com/katalvlaran/hypertransit/geometry"
)

// ErrBadThreshold indicates a non-positive connection threshold.
var ErrBadThreshold = errors.New("netbuild: distance threshold must be positive")

// DefaultCarFeasibleBound is the hyperbolic length above which a direct hop
// is considered implausible for driving and stays pedestrian-only. The
// gating rule (grant car iff BaseDistance ≤ bound) is the contract; the
// constant is tunable via WithCarFeasibleBound.
const DefaultCarFeasibleBound = 4.0

// DefaultSpatialCutoff is the node count at which Build switches from the
// quadratic pairwise scan to R-tree candidate pruning.
const DefaultSpatialCutoff = 128

// config aggregates all builder knobs; passed by value once resolved.
type config struct {
	carFeasibleBound float64
	useSpatialIndex  bool // force index on regardless of cutoff
	spatialCutoff    int
}

// Option is a functional option for Build.
type Option func(*config)

// WithCarFeasibleBound overrides the car-feasibility bound.
// Panics on non-positive bounds; a nonsense bound is a programming error.
func WithCarFeasibleBound(bound float64) Option {
	if bound <= 0 {
		panic("netbuild: car feasible bound must be positive")
	}

	return func(c *config) { c.carFeasibleBound = bound }
}

// WithSpatialIndex forces the R-tree candidate path on (true) regardless of
// node count, or pins the quadratic reference path (false).
func WithSpatialIndex(enabled bool) Option {
	return func(c *config) {
		c.useSpatialIndex = enabled
		if !enabled {
			c.spatialCutoff = int(^uint(0) >> 1) // never reached
		}
	}
}

// WithSpatialCutoff overrides the node count at which the R-tree path
// engages. Panics on non-positive cutoffs.
func WithSpatialCutoff(n int) Option {
	if n <= 0 {
		panic("netbuild: spatial cutoff must be positive")
	}

	return func(c *config) { c.spatialCutoff = n }
}

// newConfig resolves defaults and applies options in order, last wins.
func newConfig(opts ...Option) config {
	cfg := config{
		carFeasibleBound: DefaultCarFeasibleBound,
		spatialCutoff:    DefaultSpatialCutoff,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Build constructs the undirected proximity graph over points: one node per
// point (in slice order) and one edge per unordered pair within the
// hyperbolic threshold, capabilities assigned per the mode-gating rules.
//
// The result is simple (no self-loops, no parallel edges) and undirected;
// isolated nodes are retained. Deterministic for a fixed input.
//
// Complexity: O(n²) worst case; the R-tree path prunes candidates to the
// local neighborhood for typical thresholds.
func Build(points []geometry.Point, threshold float64, opts ...Option) (*citygraph.Graph, error) {
	if threshold <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrBadThreshold, threshold)
	}
	cfg := newConfig(opts...)

	g := citygraph.NewGraph(points)

	// Candidate supplier: for node i, indices j > i worth an exact check,
	// ascending. The quadratic path returns all of them; the R-tree path a
	// metric-safe superset filtered identically below.
	var candidates func(i int) []int
	if cfg.useSpatialIndex || len(points) > cfg.spatialCutoff {
		idx := newPointIndex(points, threshold)
		candidates = idx.candidatesAbove
	} else {
		all := make([]int, len(points))
		for i := range all {
			all[i] = i
		}
		candidates = func(i int) []int { return all[i+1:] }
	}

	for i := range points {
		for _, j := range candidates(i) {
			d := geometry.Distance(points[i], points[j])
			if d > threshold {
				continue
			}
			modes := assignModes(d, cfg.carFeasibleBound)
			if _, err := g.AddEdge(i, j, d, modes); err != nil {
				// Candidates are distinct pairs of valid indices; any error
				// here is an arena invariant bug worth surfacing.
				return nil, fmt.Errorf("netbuild: AddEdge(%d,%d): %w", i, j, err)
			}
		}
	}

	return g, nil
}

// assignModes returns the capability set of a fresh edge: walking always,
// car when the hop is feasibly short, never public (the transit overlay is
// the sole source of public capability).
func assignModes(baseDistance, carBound float64) citygraph.ModeSet {
	modes := citygraph.NewModeSet(citygraph.Walk)
	if baseDistance <= carBound {
		modes = modes.With(citygraph.Car)
	}

	return modes
}
