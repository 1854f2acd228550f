// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/gaeval/matrix"
)

const ctxAssemble = "Assemble"

// Assemble aligns the feature blocks and the graph of in over one node
// numbering.
//
// Implementation:
//   - Stage 1: validate widths, the test index against TX and AllX.
//   - Stage 2: sorted := sort(TestIndex). With WithIsolatedTestNodes the
//     test block is widened to max-min+1 zero rows and TX row k is placed at
//     sorted[k]-min.
//   - Stage 3: features := VStack(AllX, test block).
//   - Stage 4: features[TestIndex[k]] = features[sorted[k]] for every k,
//     all sources read before any write. Node TestIndex[k] ends up with TX
//     row k; zero-filled gaps stay zero.
//   - Stage 5: adjacency := BuildAdjacency(Graph, features.Rows()).
//
// Errors:
//   - matrix.ErrNilMatrix for a nil TX or AllX.
//   - ErrEmptyTestIndex; ErrDuplicateTestIndex (also matrix.ErrDimensionMismatch).
//   - matrix.ErrOutOfRange for a negative test index.
//   - matrix.ErrDimensionMismatch: block widths differ, len(TestIndex) !=
//     TX.Rows(), min(TestIndex) != AllX.Rows(), gaps in the test range
//     without WithIsolatedTestNodes, graph node count != feature rows.
//
// Complexity:
//   - Time O(t log t + nnz + E) for t test rows and E adjacency entries.
func Assemble(in Blocks, opts ...Option) (*Dataset, error) {
	o := gatherOptions(opts...)

	sorted, err := checkBlocks(&in, o)
	if err != nil {
		return nil, err
	}

	var test matrix.Matrix = in.TX
	lo, hi := sorted[0], sorted[len(sorted)-1]
	if o.isolated {
		ext, err := matrix.NewSparse(hi-lo+1, in.TX.Cols())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ctxAssemble, err)
		}
		at := make([]int, len(sorted))
		for k, v := range sorted {
			at[k] = v - lo
		}
		if err = matrix.ScatterRows(ext, in.TX, at); err != nil {
			return nil, fmt.Errorf("%s: %w", ctxAssemble, err)
		}
		test = ext
	}

	features, err := matrix.VStack(in.AllX, test)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxAssemble, err)
	}
	if err = matrix.CopyRows(features, in.TestIndex, sorted); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxAssemble, err)
	}

	adj, err := BuildAdjacency(in.Graph, features.Rows())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxAssemble, err)
	}

	return &Dataset{Adjacency: adj, Features: features}, nil
}

// checkBlocks validates in and returns the sorted test index.
func checkBlocks(in *Blocks, o options) ([]int, error) {
	if err := matrix.ValidateNotNil(in.TX); err != nil {
		return nil, fmt.Errorf("%s: tx: %w", ctxAssemble, err)
	}
	if err := matrix.ValidateNotNil(in.AllX); err != nil {
		return nil, fmt.Errorf("%s: allx: %w", ctxAssemble, err)
	}
	if err := matrix.ValidateSameCols(in.AllX, in.TX); err != nil {
		return nil, fmt.Errorf("%s: allx vs tx: %w", ctxAssemble, err)
	}
	if matrix.ValidateNotNil(in.X) == nil {
		if err := matrix.ValidateSameCols(in.X, in.AllX); err != nil {
			return nil, fmt.Errorf("%s: x vs allx: %w", ctxAssemble, err)
		}
	}

	t := len(in.TestIndex)
	if t == 0 {
		return nil, fmt.Errorf("%s: %w", ctxAssemble, ErrEmptyTestIndex)
	}
	if t != in.TX.Rows() {
		return nil, fmt.Errorf("%s: %d test indices for %d tx rows: %w",
			ctxAssemble, t, in.TX.Rows(), matrix.ErrDimensionMismatch)
	}

	sorted := slices.Clone(in.TestIndex)
	slices.Sort(sorted)
	if sorted[0] < 0 {
		return nil, fmt.Errorf("%s: test index %d: %w", ctxAssemble, sorted[0], matrix.ErrOutOfRange)
	}
	for k := 1; k < t; k++ {
		if sorted[k] == sorted[k-1] {
			return nil, fmt.Errorf("%s: node %d: %w: %w",
				ctxAssemble, sorted[k], ErrDuplicateTestIndex, matrix.ErrDimensionMismatch)
		}
	}

	lo, hi := sorted[0], sorted[t-1]
	if lo != in.AllX.Rows() {
		return nil, fmt.Errorf("%s: test range starts at %d, allx has %d rows: %w",
			ctxAssemble, lo, in.AllX.Rows(), matrix.ErrDimensionMismatch)
	}
	if !o.isolated && hi-lo+1 != t {
		return nil, fmt.Errorf("%s: test range [%d,%d] has %d gaps: %w",
			ctxAssemble, lo, hi, hi-lo+1-t, matrix.ErrDimensionMismatch)
	}

	return sorted, nil
}
