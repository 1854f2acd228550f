// SPDX-License-Identifier: MIT

package linkpred

import (
	"fmt"
	"math"
)

// PairPolicy decides how labels are built when the positive and negative
// pair lists differ in length.
type PairPolicy int

const (
	// PolicyRequireEqual rejects unequal positive/negative counts with
	// matrix.ErrDimensionMismatch.
	PolicyRequireEqual PairPolicy = iota

	// PolicyOwnLength labels each list by its own length.
	PolicyOwnLength
)

// String implements fmt.Stringer.
func (p PairPolicy) String() string {
	switch p {
	case PolicyRequireEqual:
		return "require-equal"
	case PolicyOwnLength:
		return "own-length"
	}

	return fmt.Sprintf("PairPolicy(%d)", int(p))
}

// ParsePairPolicy maps the String form back to a PairPolicy.
func ParsePairPolicy(s string) (PairPolicy, error) {
	switch s {
	case "require-equal", "":
		return PolicyRequireEqual, nil
	case "own-length":
		return PolicyOwnLength, nil
	}

	return 0, fmt.Errorf("linkpred: unknown pair policy %q", s)
}

// DEFAULTS - single source of truth.
const (
	// DefaultThreshold is the probability above which a pair is predicted an edge.
	DefaultThreshold = 0.5

	// DefaultPairPolicy requires balanced pair lists.
	DefaultPairPolicy = PolicyRequireEqual
)

const (
	panicThresholdInvalid = "linkpred: WithThreshold: threshold must be finite and in (0,1)"
	panicPolicyInvalid    = "linkpred: WithPairPolicy: unknown policy"
)

// Option configures Evaluate.
type Option func(*options)

type options struct {
	threshold float64
	policy    PairPolicy
}

// WithThreshold sets the accuracy threshold. Panics unless 0 < t < 1.
func WithThreshold(t float64) Option {
	if math.IsNaN(t) || t <= 0 || t >= 1 {
		panic(panicThresholdInvalid)
	}

	return func(o *options) { o.threshold = t }
}

// WithPairPolicy selects the label-construction policy.
func WithPairPolicy(p PairPolicy) Option {
	if p != PolicyRequireEqual && p != PolicyOwnLength {
		panic(panicPolicyInvalid)
	}

	return func(o *options) { o.policy = p }
}

func gatherOptions(user ...Option) options {
	o := options{
		threshold: DefaultThreshold,
		policy:    DefaultPairPolicy,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
