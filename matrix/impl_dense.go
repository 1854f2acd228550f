// SPDX-License-Identifier: MIT

// Package matrix - Dense: embeddings and other fully populated blocks.
//
// Storage:
//   - One flat []float64 of length r*c; cell (i, j) lives at i*c + j.
//   - Shape is fixed at construction; there is no resize.
//
// Contract:
//   - At/Set/Row report bad coordinates as wrapped ErrOutOfRange.
//   - With the numeric policy on (the default), Set and NewDenseFrom refuse
//     NaN and ±Inf.
//
// AI-Hints:
//   - Dense is the right home for embeddings and small reconstructions; use
//     Sparse for adjacency and bag-of-words features.
//   - Row(i) returns a copy; hot loops may index Raw() directly.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Row: O(c).

package matrix

import (
	"fmt"
	"math"
)

const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxRow = "Row"
)

// denseErrorf tags err with the Dense method and the offending cell.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major r×c matrix.
type Dense struct {
	r, c           int
	data           []float64 // len(data) == r*c
	validateNaNInf bool      // from Options; checked by Set
}

var _ Matrix = (*Dense)(nil)

// NewDense allocates an all-zero rows×cols matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewDenseFrom builds a rows×cols matrix from a row-major copy of data.
//
// Errors:
//   - ErrInvalidDimensions for non-positive shapes.
//   - ErrDimensionMismatch when len(data) != rows*cols.
//   - ErrNaNInf when the numeric policy is on and data holds a non-finite value.
func NewDenseFrom(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewDenseFrom: len(data)=%d want %d: %w", len(data), rows*cols, ErrDimensionMismatch)
	}
	if m.validateNaNInf {
		for k, v := range data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, denseErrorf(ctxSet, k/cols, k%cols, ErrNaNInf)
			}
		}
	}
	copy(m.data, data)

	return m, nil
}

// Rows returns r.
func (m *Dense) Rows() int { return m.r }

// Cols returns c.
func (m *Dense) Cols() int { return m.c }

// offset maps (row, col) to its index in data; ok is false out of bounds.
func (m *Dense) offset(row, col int) (k int, ok bool) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, false
	}

	return row*m.c + col, true
}

// At reads cell (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	k, ok := m.offset(row, col)
	if !ok {
		return 0, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.data[k], nil
}

// Set writes v to cell (row, col).
//
// Errors:
//   - ErrOutOfRange for bad coordinates; ErrNaNInf under the numeric policy.
func (m *Dense) Set(row, col int, v float64) error {
	k, ok := m.offset(row, col)
	if !ok {
		return denseErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[k] = v

	return nil
}

// Clone copies the buffer and keeps the numeric policy.
func (m *Dense) Clone() Matrix {
	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           append([]float64(nil), m.data...),
		validateNaNInf: m.validateNaNInf,
	}
}

// Row returns a copy of row i.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Rows()).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return append([]float64(nil), m.data[i*m.c:(i+1)*m.c]...), nil
}

// Raw exposes the row-major backing buffer. Callers must treat it as
// read-only unless they own the matrix; writes bypass the numeric policy.
func (m *Dense) Raw() []float64 { return m.data }

// entries materializes the non-zeros of row i (caller validated i).
func (m *Dense) entries(i int) rowEntries {
	var re rowEntries
	for j, v := range m.data[i*m.c : (i+1)*m.c] {
		if v != 0 {
			re.cols = append(re.cols, j)
			re.vals = append(re.vals, v)
		}
	}

	return re
}
