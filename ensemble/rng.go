// File: rng.go
// Role: deterministic random streams for replicate chains.
//
// Determinism:
//   - Same base seed and replicate index ⇒ same stream on every platform.
//   - seed==0 selects defaultSeed; there is no time-based source anywhere.
//
// Concurrency:
//   - *rand.Rand is not goroutine-safe; each replicate owns its own stream.

package ensemble

import "math/rand"

// defaultSeed is used when the configured seed is 0.
const defaultSeed int64 = 1

// deriveSeed mixes a parent seed and a stream index with the SplitMix64
// finalizer, so neighbouring replicates get uncorrelated seeds.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// ReplicateSeed returns the seed of replicate i under base seed.
func ReplicateSeed(seed int64, i int) int64 {
	if seed == 0 {
		seed = defaultSeed
	}

	return deriveSeed(seed, uint64(i))
}

// replicateRand returns the private random stream of replicate i.
func replicateRand(seed int64, i int) *rand.Rand {
	return rand.New(rand.NewSource(ReplicateSeed(seed, i)))
}
