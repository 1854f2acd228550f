// Package matrix_test: shared helpers for matrix tests.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/gaeval/matrix"
	"github.com/stretchr/testify/require"
)

// mustDenseFrom builds a rows×cols Dense from row-major values or fails the test.
func mustDenseFrom(tb testing.TB, rows, cols int, vals ...float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(rows, cols, vals)
	require.NoError(tb, err)

	return m
}

// mustSparseFrom builds a Sparse from a dense row-major literal.
func mustSparseFrom(tb testing.TB, rows, cols int, vals ...float64) *matrix.Sparse {
	tb.Helper()
	s, err := matrix.ToSparse(mustDenseFrom(tb, rows, cols, vals...))
	require.NoError(tb, err)

	return s
}

// rowValues reads row i of m as a dense slice.
func rowValues(tb testing.TB, m matrix.Matrix, i int) []float64 {
	tb.Helper()
	out := make([]float64, m.Cols())
	for j := range out {
		v, err := m.At(i, j)
		require.NoError(tb, err)
		out[j] = v
	}

	return out
}
