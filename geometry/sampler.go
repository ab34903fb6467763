// SPDX-License-Identifier: MIT
// Package: hypertransit/geometry
//
// sampler.go — hyperbolic-area-uniform point sampling inside a bounded disk.
//
// Sampling Euclidean-uniformly and calling it done would be wrong here: the
// hyperbolic area element grows toward the boundary, so Euclidean-uniform
// draws under-represent the fringe in hyperbolic terms. The standard
// compensation maps a uniform u through the hyperbolic CDF of the radius:
//
//	ρ = tanh( artanh(R) · √u )
//
// which is uniform by hyperbolic area within the sub-disk of Euclidean
// radius R.

package geometry

import (
	"errors"
	"math"
	"math/rand"
)

// Sentinel errors for stochastic geometry helpers.
var (
	// ErrBadSampleCount indicates a negative number of points was requested.
	ErrBadSampleCount = errors.New("geometry: sample count must be non-negative")

	// ErrBadDiskRadius indicates the disk bound is outside the open interval (0,1).
	ErrBadDiskRadius = errors.New("geometry: disk radius must lie in (0,1)")

	// ErrNeedRandSource indicates a stochastic function requires a non-nil *rand.Rand.
	ErrNeedRandSource = errors.New("geometry: rng is required")
)

// SamplePoints draws n points distributed uniformly with respect to
// hyperbolic area inside the sub-disk of Euclidean radius `radius` (which
// must lie strictly inside (0,1), keeping every result inside the open unit
// disk).
//
// Determinism: exactly two rng draws per point, in a fixed order (angle,
// then radial quantile), so a given rng state always reproduces the same
// sequence regardless of caller context.
//
// Complexity: O(n) time, O(n) space.
func SamplePoints(n int, radius float64, rng *rand.Rand) ([]Point, error) {
	if n < 0 {
		return nil, ErrBadSampleCount
	}
	if radius <= 0 || radius >= 1 {
		return nil, ErrBadDiskRadius
	}
	if rng == nil {
		return nil, ErrNeedRandSource
	}

	// Hyperbolic radius of the bounding sub-disk; fixed for all n draws.
	maxHyp := math.Atanh(radius)

	points := make([]Point, n)
	for i := 0; i < n; i++ {
		theta := rng.Float64() * 2 * math.Pi        // angle ~ U(0, 2π)
		u := rng.Float64()                          // radial quantile ~ U(0,1)
		rho := math.Tanh(maxHyp * math.Sqrt(u))     // hyperbolic-area CDF inverse
		points[i] = Point{rho * math.Cos(theta), rho * math.Sin(theta)}
	}

	return points, nil
}
