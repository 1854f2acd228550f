// SPDX-License-Identifier: MIT

package sampler

import "errors"

var (
	// ErrInsufficientPopulation is returned when fewer negative candidates
	// exist than the number of samples requested (sampling without
	// replacement cannot be satisfied).
	ErrInsufficientPopulation = errors.New("sampler: insufficient population")

	// ErrNegativeCount is returned when a negative sample size is requested.
	ErrNegativeCount = errors.New("sampler: negative sample count")
)
