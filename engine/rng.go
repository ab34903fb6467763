// Package engine - deterministic RNG substream derivation.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Isolation: each pipeline stage draws from its own stream, so one
//     stage's draw count never shifts another stage's sequence.
//   - Encapsulation: a single derivation helper; no time-based sources.
package engine

import "math/rand"

// Stage tags; the (seed, tag) pair names a substream.
const (
	streamSampler uint64 = iota + 1
	streamTransit
	streamTraffic
)

// stageRNG returns the deterministic rng for one pipeline stage.
// Complexity: O(1).
func stageRNG(seed int64, stage uint64) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(seed, stage)))
}

// deriveSeed mixes a base seed and a stream identifier into a new 64-bit
// seed using a SplitMix64-style finalizer (canonical constants, Vigna
// 2014). Small input changes produce large, well-distributed output
// changes, decorrelating the substreams.
//
// Complexity: O(1).
func deriveSeed(seed int64, stream uint64) int64 {
	x := uint64(seed) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
