// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gaeval/matrix"
	"gonum.org/v1/gonum/floats"
)

// RowNormalize returns a copy of m with every row divided by its sum.
// Rows summing to zero are copied unchanged.
//
// Implementation:
//   - Stage 1: row sums via floats.Sum over the stored values.
//   - Stage 2: scale 1/sum, or 1 for degenerate rows.
//   - Stage 3: write the scaled entries into a fresh matrix.
//
// Complexity:
//   - Time O(r + nnz), Space O(r + nnz).
func RowNormalize(m *matrix.Sparse) (*matrix.Sparse, error) {
	if m == nil {
		return nil, fmt.Errorf("RowNormalize: %w", matrix.ErrNilMatrix)
	}
	out, err := matrix.NewSparse(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.Rows(); i++ {
		cols, vals, _ := m.RowView(i)
		scale := 1.0
		if s := floats.Sum(vals); s != 0 {
			scale = 1 / s
		}
		for k, j := range cols {
			if err = out.Set(i, j, vals[k]*scale); err != nil {
				return nil, fmt.Errorf("RowNormalize: %w", err)
			}
		}
	}

	return out, nil
}

// NormalizeAdjacency returns D^{-1/2}(A+I)D^{-1/2}, where D is the degree
// matrix of A+I. This is the propagation matrix fed to graph autoencoders.
//
// Errors:
//   - matrix.ErrNilMatrix; matrix.ErrDimensionMismatch for a non-square a.
//
// Complexity:
//   - Time O(n + nnz), Space O(n + nnz).
func NormalizeAdjacency(a *matrix.Sparse) (*matrix.Sparse, error) {
	if a == nil {
		return nil, fmt.Errorf("NormalizeAdjacency: %w", matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("NormalizeAdjacency: %w", err)
	}
	n := a.Rows()

	looped := a.Clone().(*matrix.Sparse)
	for i := 0; i < n; i++ {
		v, _ := looped.At(i, i)
		if err := looped.Set(i, i, v+1); err != nil {
			return nil, fmt.Errorf("NormalizeAdjacency: %w", err)
		}
	}

	inv := looped.RowSums()
	for i, d := range inv {
		if d > 0 {
			inv[i] = 1 / math.Sqrt(d)
		} else {
			inv[i] = 0
		}
	}

	out, err := matrix.NewSparse(n, n)
	if err != nil {
		return nil, err
	}
	var setErr error
	looped.Each(func(i, j int, v float64) bool {
		setErr = out.Set(i, j, inv[i]*v*inv[j])
		return setErr == nil
	})
	if setErr != nil {
		return nil, fmt.Errorf("NormalizeAdjacency: %w", setErr)
	}

	return out, nil
}
