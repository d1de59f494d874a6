// Package builder - RNG utilities shared by the stochastic generators.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: streams are created per call; no process-wide RNG.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. SmallWorld workers never share a
//     stream; each row gets its own, derived from the call's base seed.
package builder

import "math/rand"

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
//
// Rationale:
//   - Row streams must be independent of each other and of evaluation order.
//   - SplitMix64 avalanche: small input changes give well-distributed outputs.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// rowRNG returns the dedicated stream of row i under the given base seed.
// Complexity: O(1) plus the source seeding cost.
func rowRNG(base int64, i int) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(base, uint64(i))))
}
