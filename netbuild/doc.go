// Package netbuild constructs the base road network: an undirected
// proximity graph over sampled disk points, with per-edge transport-mode
// capabilities assigned as edges are created.
//
// What:
//
//   - Build turns a point set into a citygraph.Graph: every unordered pair
//     whose hyperbolic distance is at most the threshold becomes one edge
//     whose BaseDistance is exactly that distance.
//   - Every edge supports walking unconditionally. Car capability is
//     granted when BaseDistance does not exceed the car-feasibility bound
//     (implausibly long direct hops stay pedestrian-only). Public
//     capability is never granted here; that is the transit overlay's
//     exclusive job.
//   - Isolated points are retained as nodes; connected-component filtering
//     is the consumer's concern.
//
// Candidate pruning:
//
//	The naive pairwise scan is quadratic — fine for the documented range of
//	up to a few hundred nodes, and kept as the reference path. Above a
//	cutoff, an R-tree over the Euclidean coordinates prunes candidates: for
//	a query point a, d(a,b) ≤ T implies
//
//	    ‖a−b‖² ≤ (cosh T − 1)/2 · (1 − ‖a‖²),
//
//	so a box query of that radius returns a superset of the true neighbors
//	and the exact metric filters it. Edge set, base distances, and creation
//	order are identical on both paths.
//
// Determinism:
//
//	Edges are created in ascending (i, j) pair order with i < j, so arena
//	IDs — and everything downstream that iterates them — are reproducible.
//
// Errors:
//
//   - ErrBadThreshold: non-positive connection threshold.
//
// Option constructors panic on meaningless values (nonpositive bound or
// cutoff), matching the module-wide option policy.
package netbuild
