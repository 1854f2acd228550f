package dataset_test

import (
	"testing"

	"github.com/katalvlaran/gaeval/matrix"
	"github.com/stretchr/testify/require"
)

func dense(t *testing.T, rows, cols int, vals ...float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFrom(rows, cols, vals)
	require.NoError(t, err)
	return d
}

func row(t *testing.T, m matrix.Matrix, i int) []float64 {
	t.Helper()
	out := make([]float64, m.Cols())
	for j := range out {
		v, err := m.At(i, j)
		require.NoError(t, err)
		out[j] = v
	}
	return out
}

// chain returns the path 0-1-...-(n-1) as an adjacency list.
func chain(n int) map[int][]int {
	g := make(map[int][]int, n)
	for i := 0; i < n; i++ {
		g[i] = nil
		if i > 0 {
			g[i] = append(g[i], i-1)
		}
		if i+1 < n {
			g[i] = append(g[i], i+1)
		}
	}
	return g
}
