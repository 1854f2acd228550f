// SPDX-License-Identifier: MIT

package linkpred

import "errors"

var (
	// ErrDegenerateLabels is returned when the label set is single-class
	// (no positives or no negatives), which leaves ROC-AUC and average
	// precision undefined.
	ErrDegenerateLabels = errors.New("linkpred: degenerate label set")

	// ErrNilEmbedding is returned for a nil or empty embedding matrix.
	ErrNilEmbedding = errors.New("linkpred: nil embedding")

	// ErrNilReference is returned for a nil reference adjacency.
	ErrNilReference = errors.New("linkpred: nil reference adjacency")
)
