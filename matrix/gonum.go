// SPDX-License-Identifier: MIT

// Package matrix - bridges to gonum/mat.
//
// Embeddings arrive as gonum matrices and the on-disk feature blocks use the
// gonum binary format, so the dataset and linkpred packages convert at the
// boundary with the helpers below. Conversions always copy.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const ctxGonum = "gonum"

// ToGonum copies m into a new *mat.Dense.
//
// Errors:
//   - ErrNilMatrix for a nil m.
//
// Complexity:
//   - Time O(r*c) (plus O(nnz) fill for *Sparse), Space O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxGonum, err)
	}
	out := mat.NewDense(m.Rows(), m.Cols(), nil)
	switch t := m.(type) {
	case *Dense:
		for i := 0; i < t.r; i++ {
			out.SetRow(i, t.data[i*t.c:(i+1)*t.c])
		}
	case *Sparse:
		t.Each(func(i, j int, v float64) bool {
			out.Set(i, j, v)
			return true
		})
	default:
		for i := 0; i < m.Rows(); i++ {
			for j := 0; j < m.Cols(); j++ {
				v, err := m.At(i, j)
				if err != nil {
					return nil, err
				}
				out.Set(i, j, v)
			}
		}
	}

	return out, nil
}

// FromGonum copies a gonum matrix into a *Dense under the given numeric policy.
//
// Errors:
//   - ErrNilMatrix for nil; ErrInvalidDimensions for empty inputs;
//     ErrNaNInf for non-finite values when validation is on.
func FromGonum(m mat.Matrix, opts ...Option) (*Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", ctxGonum, ErrNilMatrix)
	}
	r, c := m.Dims()
	out, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxGonum, err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err = out.Set(i, j, m.At(i, j)); err != nil {
				return nil, fmt.Errorf("%s: %w", ctxGonum, err)
			}
		}
	}

	return out, nil
}

// SparseFromGonum copies the non-zeros of a gonum matrix into a *Sparse.
// Same error contract as FromGonum.
func SparseFromGonum(m mat.Matrix, opts ...Option) (*Sparse, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", ctxGonum, ErrNilMatrix)
	}
	r, c := m.Dims()
	out, err := NewSparse(r, c, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxGonum, err)
	}
	var v float64
	for i := 0; i < r; i++ {
		var re rowEntries
		for j := 0; j < c; j++ {
			v = m.At(i, j)
			if v == 0 {
				continue
			}
			if out.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, fmt.Errorf("%s: %w", ctxGonum, sparseErrorf(ctxSet, i, j, ErrNaNInf))
			}
			re.cols = append(re.cols, j)
			re.vals = append(re.vals, v)
		}
		out.setRow(i, re)
	}

	return out, nil
}
