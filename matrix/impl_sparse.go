// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage (list of lists) & safe accessors.
//
// Purpose:
//   - Hold adjacency and bag-of-words feature matrices whose density is far
//     below 1% without paying O(r*c) memory.
//   - Make whole-row reads and writes cheap: row stacking, scattering and
//     reordering are the dominant operations during dataset assembly.
//
// Layout:
//   - cols[i] holds the column indices of row i in strictly ascending order.
//   - vals[i] holds the matching values; explicit zeros are never stored.
//
// Complexity quicksheet:
//   - NewSparse: O(r); At: O(log k); Set: O(k) worst case (insert shift);
//     row copy: O(k); Clone: O(r + nnz). k = non-zeros in the row.

package matrix

import (
	"fmt"
	"math"
	"slices"
)

// sparseErrorf wraps an error with a uniform Sparse context and callsite indices.
func sparseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Sparse.%s(%d,%d): %w", method, row, col, err)
}

// Sparse is a row-oriented sparse matrix (list of lists).
type Sparse struct {
	r, c           int
	cols           [][]int     // per-row ascending column indices
	vals           [][]float64 // per-row values aligned with cols
	validateNaNInf bool
}

var _ Matrix = (*Sparse)(nil)

// NewSparse creates an empty rows×cols sparse matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//
// Complexity:
//   - Time O(r), Space O(r).
func NewSparse(rows, cols int, opts ...Option) (*Sparse, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Sparse{
		r:              rows,
		c:              cols,
		cols:           make([][]int, rows),
		vals:           make([][]float64, rows),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// Rows returns the row count.
func (s *Sparse) Rows() int { return s.r }

// Cols returns the column count.
func (s *Sparse) Cols() int { return s.c }

// NNZ returns the number of stored (non-zero) entries.
// Complexity: O(r).
func (s *Sparse) NNZ() int {
	n := 0
	for i := range s.cols {
		n += len(s.cols[i])
	}

	return n
}

// At returns the value at (row, col); absent entries read as 0.
// Complexity: O(log k).
func (s *Sparse) At(row, col int) (float64, error) {
	if row < 0 || row >= s.r || col < 0 || col >= s.c {
		return 0, sparseErrorf(ctxAt, row, col, ErrOutOfRange)
	}
	if k, ok := slices.BinarySearch(s.cols[row], col); ok {
		return s.vals[row][k], nil
	}

	return 0, nil
}

// Set stores v at (row, col). Writing 0 removes the entry.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf under the numeric policy.
func (s *Sparse) Set(row, col int, v float64) error {
	if row < 0 || row >= s.r || col < 0 || col >= s.c {
		return sparseErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	if s.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return sparseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	k, ok := slices.BinarySearch(s.cols[row], col)
	switch {
	case ok && v == 0:
		s.cols[row] = slices.Delete(s.cols[row], k, k+1)
		s.vals[row] = slices.Delete(s.vals[row], k, k+1)
	case ok:
		s.vals[row][k] = v
	case v != 0:
		s.cols[row] = slices.Insert(s.cols[row], k, col)
		s.vals[row] = slices.Insert(s.vals[row], k, v)
	}

	return nil
}

// Clone returns a deep copy with the same numeric policy.
// Complexity: O(r + nnz).
func (s *Sparse) Clone() Matrix {
	cp := &Sparse{
		r:              s.r,
		c:              s.c,
		cols:           make([][]int, s.r),
		vals:           make([][]float64, s.r),
		validateNaNInf: s.validateNaNInf,
	}
	for i := 0; i < s.r; i++ {
		cp.cols[i] = slices.Clone(s.cols[i])
		cp.vals[i] = slices.Clone(s.vals[i])
	}

	return cp
}

// RowView returns the stored column indices and values of row i.
// The slices alias internal storage and must not be modified.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Rows()).
func (s *Sparse) RowView(i int) (cols []int, vals []float64, err error) {
	if i < 0 || i >= s.r {
		return nil, nil, sparseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return s.cols[i], s.vals[i], nil
}

// Each visits stored entries in row-major order; stops when f returns false.
func (s *Sparse) Each(f func(i, j int, v float64) bool) {
	for i := 0; i < s.r; i++ {
		for k, j := range s.cols[i] {
			if !f(i, j, s.vals[i][k]) {
				return
			}
		}
	}
}

// RowSums returns the sum of each row.
// Complexity: O(r + nnz).
func (s *Sparse) RowSums() []float64 {
	out := make([]float64, s.r)
	for i := 0; i < s.r; i++ {
		for _, v := range s.vals[i] {
			out[i] += v
		}
	}

	return out
}

// IsSymmetric reports whether s equals its transpose exactly.
// Non-square matrices are never symmetric.
func (s *Sparse) IsSymmetric() bool {
	if s.r != s.c {
		return false
	}
	for i := 0; i < s.r; i++ {
		for k, j := range s.cols[i] {
			t, _ := s.At(j, i)
			if t != s.vals[i][k] {
				return false
			}
		}
	}

	return true
}

// entries materializes row i as owned slices (caller validated i).
func (s *Sparse) entries(i int) rowEntries {
	return rowEntries{cols: slices.Clone(s.cols[i]), vals: slices.Clone(s.vals[i])}
}

// setRow replaces row i wholesale (caller validated i and column bounds).
func (s *Sparse) setRow(i int, re rowEntries) {
	s.cols[i] = re.cols
	s.vals[i] = re.vals
}
