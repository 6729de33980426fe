// Package aco - deterministic random generation.
//
// This file centralizes random generation for the whole optimization loop.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Independence: one derived stream per (iteration, ant), so construction
//     order and worker count cannot change the observable result.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Every ant gets its own *rand.Rand
//     derived before fan-out; streams are never shared across goroutines.
package aco

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// streamSeedTour identifies the nearest-neighbor seeding draw. Ant streams
// start at 1 (see antStream), so the two domains never collide.
const streamSeedTour uint64 = 0

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
//
// Rationale:
//   - Each ant needs an independent substream of the base seed each iteration.
//   - A SplitMix64-style avalanche mix eliminates correlations between
//     neighboring stream ids.
//
// For a fixed parent the map stream ⇒ seed is a bijection on uint64 (every
// step of the finalizer is invertible), so distinct streams can never
// collide.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64-style finalizer; see Vigna 2014 for the constants and rationale.
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// antStream maps (iteration, ant) to the stream id of that ant's draws for
// the iteration: the start-city redraw first, then one roulette draw per
// move. Ids are unique per pair and offset past streamSeedTour.
//
// Complexity: O(1).
func antStream(iteration, ant, ants int) uint64 {
	return 1 + uint64(iteration)*uint64(ants) + uint64(ant)
}
