// SPDX-License-Identifier: MIT
// Package: hypertransit/transit
//
// transit.go — public-transport line threading over the road network.

package transit

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/hypertransit/citygraph"
	"github.com/katalvlaran/hypertransit/router"
)

// Sentinel errors for overlay construction.
var (
	// ErrNilGraph indicates a nil *citygraph.Graph was passed to Overlay.
	ErrNilGraph = errors.New("transit: graph is nil")

	// ErrBadLineCount indicates a line count below 1.
	ErrBadLineCount = errors.New("transit: line count must be >= 1")

	// ErrTooFewNodes indicates the graph has fewer than MinAnchors nodes.
	ErrTooFewNodes = errors.New("transit: need at least two nodes to thread a line")

	// ErrNeedRandSource indicates Overlay requires a non-nil *rand.Rand.
	ErrNeedRandSource = errors.New("transit: rng is required")
)

// Anchor-count bounds per line. A line needs at least two anchors to exist;
// the default upper bound keeps lines local enough to stay interesting
// without swallowing the whole network.
const (
	MinAnchors        = 2
	DefaultMaxAnchors = 4
)

// config aggregates overlay knobs.
type config struct {
	maxAnchors int
}

// Option is a functional option for Overlay.
type Option func(*config)

// WithMaxAnchors overrides the per-line anchor upper bound.
// Panics when the bound is below MinAnchors.
func WithMaxAnchors(n int) Option {
	if n < MinAnchors {
		panic("transit: max anchors must be >= 2")
	}

	return func(c *config) { c.maxAnchors = n }
}

// Overlay threads lineCount public-transport lines over g, mutating node
// and edge flags in place. For each line it draws k anchors (k uniform in
// [MinAnchors, maxAnchors], capped by the node count) and connects each
// consecutive anchor pair with the minimum-cost car route; path nodes
// become stops, path edges become public routes with public capability.
//
// Anchor pairs with no car path are skipped. Deterministic for a fixed
// (graph, rng state) pair.
//
// Complexity: O(lineCount · maxAnchors · (V + E) log V).
func Overlay(g *citygraph.Graph, lineCount int, rng *rand.Rand, opts ...Option) error {
	cfg := config{maxAnchors: DefaultMaxAnchors}
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return ErrNilGraph
	}
	if lineCount < 1 {
		return fmt.Errorf("%w: got %d", ErrBadLineCount, lineCount)
	}
	if rng == nil {
		return ErrNeedRandSource
	}
	if g.NumNodes() < MinAnchors {
		return fmt.Errorf("%w: have %d", ErrTooFewNodes, g.NumNodes())
	}

	for line := 0; line < lineCount; line++ {
		anchors := drawAnchors(g.NumNodes(), cfg.maxAnchors, rng)
		if err := threadLine(g, anchors); err != nil {
			return fmt.Errorf("transit: line %d: %w", line, err)
		}
	}

	return nil
}

// drawAnchors picks k distinct node indices: one draw for k, then a
// permutation draw for the anchors, keeping the rng stream layout fixed.
func drawAnchors(numNodes, maxAnchors int, rng *rand.Rand) []int {
	k := MinAnchors + rng.Intn(maxAnchors-MinAnchors+1)
	if k > numNodes {
		k = numNodes
	}

	return rng.Perm(numNodes)[:k]
}

// threadLine connects consecutive anchors with car routes and marks the
// traversed nodes and edges. Unroutable pairs are skipped.
func threadLine(g *citygraph.Graph, anchors []int) error {
	for i := 0; i+1 < len(anchors); i++ {
		res, err := router.Route(g, anchors[i], anchors[i+1], citygraph.Car)
		if err != nil {
			return err // anchors come from the node set; only bugs land here
		}
		if !res.Found {
			continue // disconnected under car mode; the line moves on
		}
		if err := markPath(g, res.Path); err != nil {
			return err
		}
	}

	return nil
}

// markPath flags every node of path as a stop and every step edge as a
// public route with public capability. Re-marking is a no-op, so shared
// segments across lines are harmless.
func markPath(g *citygraph.Graph, path []int) error {
	for _, n := range path {
		if err := g.MarkStop(n); err != nil {
			return err
		}
	}
	for i := 0; i+1 < len(path); i++ {
		e, err := g.EdgeBetween(path[i], path[i+1])
		if err != nil {
			return err
		}
		if err := g.MarkPublicRoute(e.ID); err != nil {
			return err
		}
		if err := g.GrantMode(e.ID, citygraph.Public); err != nil {
			return err
		}
	}

	return nil
}
