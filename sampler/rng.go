// SPDX-License-Identifier: MIT

// Package sampler - RNG utilities shared by all samplers.
//
// Goals:
//   - Determinism: same seed ⇒ identical samples across runs.
//   - Encapsulation: a single source factory; no time-based sources hidden anywhere.
package sampler

import "math/rand/v2"

// defaultSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed uint64 = 1

// sourceFromSeed returns stream 0 of seed.
func sourceFromSeed(seed uint64) rand.Source { return streamSource(seed, 0) }

// streamSource returns a deterministic PCG source for (seed, stream).
// Policy: seed==0 ⇒ use defaultSeed; the second PCG word is derived with
// mixSeed, so nearby seeds and distinct streams of one seed give
// uncorrelated sequences.
func streamSource(seed, stream uint64) rand.Source {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.NewPCG(s, mixSeed(s, stream))
}

// mixSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// (SplitMix64 finalizer).
func mixSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}
