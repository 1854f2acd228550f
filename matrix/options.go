// SPDX-License-Identifier: MIT

// Package matrix: constructor options.
// The only knob is the numeric policy. It is captured at construction and
// survives Clone; results of row operations such as VStack start from the
// default policy.
package matrix

const (
	// DefaultValidateNaNInf is the numeric policy of a matrix built without options.
	DefaultValidateNaNInf = true
)

// Option adjusts Options; later options override earlier ones.
type Option func(*Options)

// Options is the resolved constructor configuration.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf enables strict finite-value validation (the default).
// When enabled, Set and the gonum bridges reject NaN and ±Inf with ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation.
//
// AI-Hints:
//   - Keep validation on in data-clean pipelines; disable only when ingesting
//     external blocks with known placeholders that are sanitized later.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
