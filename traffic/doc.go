// Package traffic applies rush-hour congestion to the road network by
// decorating car-capable edges with a congestion multiplier.
//
// Model:
//
//	During rush hour each car-capable edge receives a multiplier drawn
//	deterministically from [1.0, MaxCongestionMultiplier], blended from a
//	per-edge random component and the normalized degree of its endpoints —
//	higher-degree intersections congest more, reflecting junction density
//	driving delay. Outside rush hour every multiplier resets to 1.0.
//
//	Edges without car capability are never touched: walking and pure
//	transit timing are congestion-independent in this model. Only the
//	multiplier changes; base distances and capabilities are left alone.
//
// Monotonicity:
//
//	Multipliers never fall below 1, so the rush-hour car cost of any edge
//	is at least its off-peak cost.
//
// Determinism:
//
//	Edges are visited in arena order and each car-capable edge consumes
//	exactly one rng draw, so a fixed (graph, rng state) pair reproduces
//	identical multipliers.
//
// Errors (sentinel):
//
//   - ErrNilGraph       nil graph.
//   - ErrNeedRandSource rush hour requested without an rng (a reset to
//     off-peak needs no randomness and accepts nil).
package traffic
