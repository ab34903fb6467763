// SPDX-License-Identifier: MIT
// Package: hypertransit/traffic
//
// traffic.go — rush-hour congestion decoration.

package traffic

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/hypertransit/citygraph"
)

// Sentinel errors for congestion application.
var (
	// ErrNilGraph indicates a nil *citygraph.Graph was passed to Apply.
	ErrNilGraph = errors.New("traffic: graph is nil")

	// ErrNeedRandSource indicates rush hour was requested with a nil rng.
	ErrNeedRandSource = errors.New("traffic: rng is required for rush hour")
)

// MaxCongestionMultiplier bounds the rush-hour inflation of car travel
// cost. The bound is the contract; the exact value is a tunable constant.
const MaxCongestionMultiplier = 2.5

// Blend weights between the per-edge random component and the normalized
// junction-degree component. Equal weights keep the multiplier visibly
// degree-correlated without making it a pure function of topology.
const (
	noiseWeight  = 0.5
	degreeWeight = 0.5
)

// Apply sets the congestion state of g. With rushHour true, every
// car-capable edge gets a multiplier in [1, MaxCongestionMultiplier]
// blended from one rng draw and the mean endpoint degree normalized by the
// graph's maximum degree. With rushHour false, all multipliers reset to
// the default and rng may be nil.
//
// Only congestion multipliers are mutated; endpoints, distances, and
// capability sets are untouched, as are all non-car edges.
//
// Complexity: O(V + E).
func Apply(g *citygraph.Graph, rushHour bool, rng *rand.Rand) error {
	if g == nil {
		return ErrNilGraph
	}

	if !rushHour {
		for _, e := range g.Edges() {
			if err := g.SetCongestion(e.ID, citygraph.DefaultCongestion); err != nil {
				return fmt.Errorf("traffic: reset edge %d: %w", e.ID, err)
			}
		}

		return nil
	}

	if rng == nil {
		return ErrNeedRandSource
	}

	maxDegree := 0
	for i := 0; i < g.NumNodes(); i++ {
		if d := g.Degree(i); d > maxDegree {
			maxDegree = d
		}
	}

	for _, e := range g.Edges() {
		if !e.Modes.Has(citygraph.Car) {
			continue // walking and transit timing ignore congestion
		}

		// Mean endpoint degree over the max degree: 0 sparse, 1 at the
		// busiest junction pair. maxDegree > 0 here since e exists.
		degNorm := (float64(g.Degree(e.U)) + float64(g.Degree(e.V))) /
			(2 * float64(maxDegree))

		load := noiseWeight*rng.Float64() + degreeWeight*degNorm
		multiplier := citygraph.DefaultCongestion +
			(MaxCongestionMultiplier-citygraph.DefaultCongestion)*load

		if err := g.SetCongestion(e.ID, multiplier); err != nil {
			return fmt.Errorf("traffic: congest edge %d: %w", e.ID, err)
		}
	}

	return nil
}
