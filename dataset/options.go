// SPDX-License-Identifier: MIT

package dataset

// Option configures Assemble and Load.
type Option func(*options)

type options struct {
	isolated bool
}

// WithIsolatedTestNodes declares that the test block omits rows for isolated
// nodes. Assemble then zero-fills every index in [min, max] of the test index
// that has no raw row, instead of rejecting the gaps.
func WithIsolatedTestNodes() Option {
	return func(o *options) { o.isolated = true }
}

// WithIsolated is WithIsolatedTestNodes driven by a boolean, for callers
// that read the flag from configuration.
func WithIsolated(on bool) Option {
	return func(o *options) { o.isolated = on }
}

func gatherOptions(user ...Option) options {
	o := options{}
	for _, set := range user {
		set(&o)
	}

	return o
}
