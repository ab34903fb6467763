// Package transit threads public-transport lines over an existing road
// network and is the sole source of public capability in the module.
//
// What:
//
//	Overlay picks, for each requested line, a deterministic-random sequence
//	of anchor nodes and connects consecutive anchors with the minimum-cost
//	car route (reusing the router: transit vehicles drive the same
//	streets). Every node on a line becomes a stop; every traversed edge is
//	flagged as a public route and granted public capability.
//
// Overlap:
//
//	Lines may share stops and edges freely. Re-marking a stop or an
//	already-public edge is a no-op, so overlay construction is idempotent
//	per edge and the arena stays the single source of truth — no parallel
//	per-line graph copies exist.
//
// Sparse graphs:
//
//	An anchor pair with no car path contributes nothing; the line simply
//	continues from its next reachable pair. A fragmented network therefore
//	yields shorter (possibly empty) lines rather than a failed overlay.
//
// Determinism:
//
//	All randomness flows through the caller-supplied *rand.Rand: per line,
//	one draw for the anchor count followed by one permutation draw for the
//	anchors themselves. Same rng state, same lines.
//
// Errors (sentinel):
//
//   - ErrNilGraph       nil graph.
//   - ErrBadLineCount   line count below 1.
//   - ErrTooFewNodes    fewer than two nodes to anchor a line on.
//   - ErrNeedRandSource nil rng.
package transit
