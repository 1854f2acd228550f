// SPDX-License-Identifier: MIT

// Package sampler draws balanced positive/negative index samples.
//
// What & Why:
//
//	Link-prediction and node-classification losses are computed on a
//	balanced subset of a (usually very sparse) indicator: every positive
//	position plus an equally sized, uniformly drawn set of negatives. The
//	partition of the indicator into positives and negatives is computed once
//	by NewBalanced; each Sample call then draws a fresh negative subset, so
//	per-epoch resampling costs O(p) instead of O(M).
//
//	NegativePairs plays the same role for node pairs: it draws distinct
//	non-edges from an adjacency matrix to pair with held-out true edges when
//	evaluating with linkpred.
//
// Randomness:
//
//	There is no package-level random state. Every sampler owns an explicit
//	math/rand/v2 source chosen with WithSeed or WithSource; the same seed
//	yields the same sequence of samples. A sampler is NOT safe for
//	concurrent use (like *rand.Rand); create one per goroutine.
//
// Complexity:
//
//	NewBalanced: O(M). Sample: O(p) with p positives (gonum sampleuv).
//	NegativePairs: expected O(n) draws while n is at most half of the
//	available non-edges, O(N²) enumeration otherwise.
package sampler
