// Package geometry provides the Poincaré-disk primitives the rest of the
// module is built on: the hyperbolic distance metric and an area-uniform
// point sampler.
//
// What:
//
//   - Point: a planar coordinate strictly inside the open unit disk.
//   - Distance: geodesic length between two disk points under the
//     Poincaré metric.
//   - SamplePoints: n points distributed uniformly by *hyperbolic* area
//     within a bounded sub-disk, deterministic for a given *rand.Rand.
//
// Why hyperbolic:
//
//   - Hyperbolic space has exponentially growing area with radius, so a
//     proximity graph over hyperbolic-uniform points yields the dense-core /
//     sparse-fringe structure typical of real road networks.
//
// Numeric policy:
//
//   - Squared norms are clamped to at most 1−BoundaryEpsilon before use,
//     so near-boundary points never divide by zero.
//   - The arccosh argument is floored at 1.0 to absorb floating rounding.
//     Numeric edge cases therefore never surface as errors.
//
// Errors:
//
//   - ErrBadSampleCount: negative sample count.
//   - ErrBadDiskRadius: disk bound outside the open interval (0,1).
//   - ErrNeedRandSource: nil RNG passed to a stochastic function.
//
// Complexity:
//
//   - Distance:     O(1).
//   - SamplePoints: O(n) time, O(n) space.
package geometry
