// Package engine is the one-shot generation facade: it validates a
// configuration, then runs the full pipeline
//
//	sample points → build road network → thread transit lines → apply traffic
//
// and returns the finished graph together with the sampled points, ready
// for route queries and external rendering.
//
// Reproducibility:
//
//	The whole pipeline is deterministic for a fixed (seed, config) pair:
//	re-running reproduces byte-identical points, edges, and multipliers.
//	Each stochastic stage gets its own rng substream derived from the seed
//	and a fixed stage tag via a SplitMix64 mix, so toggling one knob (say,
//	rush hour) cannot perturb the draws of a sibling stage.
//
// Failure policy:
//
//	Generation-time failures abort the pipeline and surface the first
//	error; no partial graph is ever returned. Configuration errors wrap
//	ErrInvalidConfig with the offending field and bounds.
//
// The engine owns nothing routing-related: route queries go straight to
// router.Route against the returned graph, and rush hour can be retoggled
// on an existing graph via traffic.Apply with a seeded rng.
package engine
