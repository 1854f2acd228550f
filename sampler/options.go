// SPDX-License-Identifier: MIT

package sampler

import "math/rand/v2"

// Option configures a sampler.
type Option func(*options)

type options struct {
	src rand.Source
}

// WithSeed selects a deterministic PCG stream. Seed 0 maps to a fixed default.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.src = sourceFromSeed(seed) }
}

// WithStream selects stream of seed. One run can draw positives and
// negatives from streams 0 and 1 of a single configured seed without the two
// sequences overlapping. WithStream(seed, 0) equals WithSeed(seed).
func WithStream(seed, stream uint64) Option {
	return func(o *options) { o.src = streamSource(seed, stream) }
}

// WithSource uses src for every draw. src must not be shared with other
// goroutines while the sampler is in use. A nil src panics.
func WithSource(src rand.Source) Option {
	if src == nil {
		panic("sampler: WithSource: nil source")
	}

	return func(o *options) { o.src = src }
}

func gatherOptions(user ...Option) options {
	o := options{}
	for _, set := range user {
		set(&o)
	}
	if o.src == nil {
		o.src = sourceFromSeed(0)
	}

	return o
}
