// SPDX-License-Identifier: MIT

package dataset

import "errors"

var (
	// ErrIndexFormat is returned when a test-index file holds a line that is
	// not a single base-10 integer.
	ErrIndexFormat = errors.New("dataset: malformed test index")

	// ErrEmptyTestIndex is returned when the test index lists no nodes.
	ErrEmptyTestIndex = errors.New("dataset: empty test index")

	// ErrDuplicateTestIndex is returned when a node appears twice in the test index.
	ErrDuplicateTestIndex = errors.New("dataset: duplicate test index")
)
