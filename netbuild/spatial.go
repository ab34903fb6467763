// SPDX-License-Identifier: MIT
// Package: hypertransit/netbuild
//
// spatial.go — R-tree candidate pruning for proximity-graph construction.
//
// The index stores Euclidean coordinates, but the threshold is hyperbolic.
// The bridge is a conservative per-query radius: from
//
//	d(a,b) = arccosh(1 + 2‖a−b‖² / ((1−‖a‖²)(1−‖b‖²)))
//
// and (1−‖b‖²) ≤ 1, d(a,b) ≤ T implies
//
//	‖a−b‖² ≤ (cosh T − 1)/2 · (1 − ‖a‖²).
//
// Querying a box of that half-extent around a therefore returns every true
// neighbor (plus false positives the exact metric discards), so the index
// is behavior-preserving by construction.

package netbuild

import (
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/hypertransit/geometry"
)

// R-tree branching per node; rtreego's recommended small-fanout defaults.
const (
	rtreeMinBranch = 8
	rtreeMaxBranch = 16
)

// pointTol is the degenerate-rectangle extent used to store points in the
// R-tree (rtreego rejects zero-extent rects).
const pointTol = 1e-12

// pointEntry wraps one sampled point for R-tree storage.
type pointEntry struct {
	idx  int
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (p *pointEntry) Bounds() rtreego.Rect { return p.rect }

// pointIndex answers "which points can possibly lie within hyperbolic
// threshold of point i" via Euclidean box queries.
type pointIndex struct {
	points []geometry.Point
	tree   *rtreego.Rtree

	// halfChord is (cosh T − 1)/2, precomputed once per Build.
	halfChord float64
}

// newPointIndex bulk-inserts all points into a 2-D R-tree.
// Complexity: O(n log n).
func newPointIndex(points []geometry.Point, threshold float64) *pointIndex {
	tree := rtreego.NewTree(2, rtreeMinBranch, rtreeMaxBranch)
	for i, p := range points {
		rect, err := rtreego.NewRect(rtreego.Point{p.X(), p.Y()}, []float64{pointTol, pointTol})
		if err != nil {
			continue // unreachable: extents are fixed positive constants
		}
		tree.Insert(&pointEntry{idx: i, rect: rect})
	}

	return &pointIndex{
		points:    points,
		tree:      tree,
		halfChord: (math.Cosh(threshold) - 1) / 2,
	}
}

// candidatesAbove returns indices j > i whose points may lie within the
// hyperbolic threshold of point i, in ascending order. A superset of the
// true neighbors; callers re-check with the exact metric.
//
// Complexity: O(log n + k) per query for k candidates.
func (px *pointIndex) candidatesAbove(i int) []int {
	p := px.points[i]

	// Conservative Euclidean search radius around p (see file header),
	// using the same boundary-clamped norm the metric divides by.
	normSq := geometry.NormSq(p)
	if max := 1 - geometry.BoundaryEpsilon; normSq > max {
		normSq = max
	}
	radius := math.Sqrt(px.halfChord * (1 - normSq))

	// pointTol padding keeps the rect extents strictly positive even for
	// near-boundary points whose exact radius collapses to zero.
	rect, err := rtreego.NewRect(
		rtreego.Point{p.X() - radius, p.Y() - radius},
		[]float64{2*radius + pointTol, 2*radius + pointTol},
	)
	if err != nil {
		return nil // unreachable: extents are strictly positive
	}

	hits := px.tree.SearchIntersect(rect)
	out := make([]int, 0, len(hits))
	for _, hit := range hits {
		if j := hit.(*pointEntry).idx; j > i {
			out = append(out, j)
		}
	}
	// R-tree traversal order is an implementation detail; sorting restores
	// the creation order the quadratic path guarantees.
	sort.Ints(out)

	return out
}
