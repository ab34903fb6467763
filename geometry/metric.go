// SPDX-License-Identifier: MIT
// Package: hypertransit/geometry
//
// metric.go — the Poincaré-disk distance metric and its numeric guards.

package geometry

import (
	"math"

	"github.com/paulmach/orb"
)

// Point is a planar coordinate (x, y). Every Point handled by this module
// satisfies x²+y² < 1: the Poincaré-disk boundary is unreachable.
//
// orb.Point is a [2]float64 with X()/Y() accessors and value equality,
// which is exactly the immutable coordinate the data model requires.
type Point = orb.Point

// BoundaryEpsilon is the margin kept between any squared norm and the open
// disk boundary. Norms are clamped to at most 1−BoundaryEpsilon before the
// metric divides by (1−‖p‖²).
const BoundaryEpsilon = 1e-9

// DefaultDiskRadius is the fixed sampling bound used by the generation
// pipeline: strictly less than 1 so sampled points always satisfy the
// open-disk invariant with room to spare.
const DefaultDiskRadius = 0.95

// minAcoshArg floors the arccosh argument; values below 1.0 can only arise
// from floating rounding and denote coincident points.
const minAcoshArg = 1.0

// Distance returns the hyperbolic (geodesic) distance between two points of
// the Poincaré disk:
//
//	d(a,b) = arccosh( 1 + 2·‖a−b‖² / ((1−‖a‖²)·(1−‖b‖²)) )
//
// Properties: symmetric, non-negative, zero iff a == b, and satisfies the
// triangle inequality (within floating tolerance). Near-boundary inputs are
// clamped internally and never produce NaN or Inf.
//
// Complexity: O(1).
func Distance(a, b Point) float64 {
	// Clamp both squared norms away from the boundary before dividing.
	na := clampNormSq(a)
	nb := clampNormSq(b)

	// Squared Euclidean separation ‖a−b‖².
	dx := a.X() - b.X()
	dy := a.Y() - b.Y()
	sep := dx*dx + dy*dy

	// arccosh argument; floored at 1.0 to absorb rounding below the
	// mathematical minimum (which is exact for a == b).
	arg := 1 + 2*sep/((1-na)*(1-nb))
	if arg < minAcoshArg {
		arg = minAcoshArg
	}

	return math.Acosh(arg)
}

// NormSq returns the squared Euclidean norm ‖p‖² of a disk point.
// Complexity: O(1).
func NormSq(p Point) float64 {
	return p.X()*p.X() + p.Y()*p.Y()
}

// clampNormSq returns ‖p‖² clamped to at most 1−BoundaryEpsilon.
func clampNormSq(p Point) float64 {
	n := NormSq(p)
	if max := 1 - BoundaryEpsilon; n > max {
		n = max
	}

	return n
}
