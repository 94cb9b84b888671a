package umap

import "math/rand"

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed, so that each pipeline stage gets an independent, reproducible RNG
// stream instead of sharing one *rand.Rand's mutable state across unrelated
// consumers (forest construction, NN-descent, embedding init, layout SGD).
//
// Adapted from the teacher's tsp/rng.go deriveSeed: same SplitMix64-style
// avalanche mix, same rationale (decorrelate substreams derived from one
// base seed).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// Stream identifiers for deriveSeed, one per pipeline consumer that needs
// its own independent RNG given a single Options.RandomSeed.
const (
	streamForest uint64 = iota
	streamDescent
	streamInit
	streamLayout
	streamTarget
)

// deriveRNG returns an independent deterministic RNG stream for the given
// base seed and stream identifier.
func deriveRNG(baseSeed int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(baseSeed, stream)))
}
