// SPDX-License-Identifier: MIT

// Package matrix - whole-row operations.
//
// Purpose:
//   - VStack: concatenate two blocks along rows (same width).
//   - ScatterRows: write the rows of a block into chosen rows of a target.
//   - CopyRows: m[dst[k]] = m[src[k]] for all k, with every source row read
//     BEFORE any destination row is written (fancy-index assignment
//     semantics), so overlapping index sets behave like a permutation.
//
// Determinism & atomicity:
//   - All index lists are validated before the first write; on error the
//     target is left untouched.
//   - Loops run in index-list order; later duplicates in dst win.
//
// AI-Hints:
//   - Results are always *Sparse; pass *Sparse inputs to avoid the generic
//     At() scan used for other Matrix implementations.

package matrix

import "fmt"

const (
	ctxVStack  = "VStack"
	ctxScatter = "ScatterRows"
	ctxCopy    = "CopyRows"
)

// rowOf materializes the non-zeros of row i of any Matrix.
// Caller guarantees 0 <= i < m.Rows().
func rowOf(m Matrix, i int) (rowEntries, error) {
	switch t := m.(type) {
	case *Sparse:
		return t.entries(i), nil
	case *Dense:
		return t.entries(i), nil
	}
	var re rowEntries
	for j := 0; j < m.Cols(); j++ {
		v, err := m.At(i, j)
		if err != nil {
			return rowEntries{}, err
		}
		if v != 0 {
			re.cols = append(re.cols, j)
			re.vals = append(re.vals, v)
		}
	}

	return re, nil
}

// ToSparse converts any Matrix into a *Sparse copy.
// A *Sparse input is cloned.
//
// Complexity:
//   - O(r + nnz) for *Sparse/*Dense fast paths, O(r*c) otherwise.
func ToSparse(m Matrix, opts ...Option) (*Sparse, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	out, err := NewSparse(m.Rows(), m.Cols(), opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.Rows(); i++ {
		re, err := rowOf(m, i)
		if err != nil {
			return nil, err
		}
		out.setRow(i, re)
	}

	return out, nil
}

// VStack returns [top; bottom] as a new *Sparse of shape
// (top.Rows()+bottom.Rows()) × top.Cols().
//
// Errors:
//   - ErrNilMatrix if either input is nil.
//   - ErrDimensionMismatch if the column counts differ.
//
// Complexity:
//   - Time O(r + nnz) on fast paths.
func VStack(top, bottom Matrix) (*Sparse, error) {
	if err := ValidateNotNil(top); err != nil {
		return nil, fmt.Errorf("%s: top: %w", ctxVStack, err)
	}
	if err := ValidateNotNil(bottom); err != nil {
		return nil, fmt.Errorf("%s: bottom: %w", ctxVStack, err)
	}
	if err := ValidateSameCols(top, bottom); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxVStack, err)
	}
	out, err := NewSparse(top.Rows()+bottom.Rows(), top.Cols())
	if err != nil {
		return nil, err
	}
	offset := top.Rows()
	for i := 0; i < top.Rows(); i++ {
		re, err := rowOf(top, i)
		if err != nil {
			return nil, err
		}
		out.setRow(i, re)
	}
	for i := 0; i < bottom.Rows(); i++ {
		re, err := rowOf(bottom, i)
		if err != nil {
			return nil, err
		}
		out.setRow(offset+i, re)
	}

	return out, nil
}

// ScatterRows sets dst row at[k] to src row k for every k.
//
// Errors:
//   - ErrNilMatrix for nil inputs.
//   - ErrDimensionMismatch if widths differ or len(at) != src.Rows().
//   - ErrOutOfRange if any at[k] is outside [0, dst.Rows()).
//
// Complexity:
//   - Time O(len(at) + nnz(src)).
func ScatterRows(dst *Sparse, src Matrix, at []int) error {
	if dst == nil {
		return fmt.Errorf("%s: dst: %w", ctxScatter, ErrNilMatrix)
	}
	if err := ValidateNotNil(src); err != nil {
		return fmt.Errorf("%s: src: %w", ctxScatter, err)
	}
	if err := ValidateSameCols(dst, src); err != nil {
		return fmt.Errorf("%s: %w", ctxScatter, err)
	}
	if len(at) != src.Rows() {
		return fmt.Errorf("%s: %d targets for %d rows: %w", ctxScatter, len(at), src.Rows(), ErrDimensionMismatch)
	}
	if err := ValidateIndices(at, dst.Rows()); err != nil {
		return fmt.Errorf("%s: %w", ctxScatter, err)
	}
	rows := make([]rowEntries, len(at))
	for k := range at {
		re, err := rowOf(src, k)
		if err != nil {
			return err
		}
		rows[k] = re
	}
	for k, i := range at {
		dst.setRow(i, rows[k])
	}

	return nil
}

// CopyRows performs m[dst[k], :] = m[src[k], :] for all k.
// Every source row is gathered before any destination row is written.
//
// Errors:
//   - ErrNilMatrix for a nil m.
//   - ErrDimensionMismatch if len(dst) != len(src).
//   - ErrOutOfRange if any index is outside [0, m.Rows()).
//
// Complexity:
//   - Time O(len(src) + copied nnz).
func CopyRows(m *Sparse, dst, src []int) error {
	if m == nil {
		return fmt.Errorf("%s: %w", ctxCopy, ErrNilMatrix)
	}
	if len(dst) != len(src) {
		return fmt.Errorf("%s: len(dst)=%d len(src)=%d: %w", ctxCopy, len(dst), len(src), ErrDimensionMismatch)
	}
	if err := ValidateIndices(dst, m.Rows()); err != nil {
		return fmt.Errorf("%s: dst: %w", ctxCopy, err)
	}
	if err := ValidateIndices(src, m.Rows()); err != nil {
		return fmt.Errorf("%s: src: %w", ctxCopy, err)
	}
	gathered := make([]rowEntries, len(src))
	for k, i := range src {
		gathered[k] = m.entries(i)
	}
	for k, i := range dst {
		m.setRow(i, gathered[k])
	}

	return nil
}
