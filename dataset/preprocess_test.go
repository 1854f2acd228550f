package dataset_test

import (
	"testing"

	"github.com/katalvlaran/gaeval/dataset"
	"github.com/katalvlaran/gaeval/matrix"
	"github.com/stretchr/testify/require"
)

func TestRowNormalize(t *testing.T) {
	t.Parallel()

	m, err := matrix.ToSparse(dense(t, 3, 2, 1, 3, 0, 0, 2, 2))
	require.NoError(t, err)

	got, err := dataset.RowNormalize(m)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0.25, 0.75}, row(t, got, 0), 1e-12)
	require.Equal(t, []float64{0, 0}, row(t, got, 1))
	require.InDeltaSlice(t, []float64{0.5, 0.5}, row(t, got, 2), 1e-12)

	// input untouched
	require.Equal(t, []float64{1, 3}, row(t, m, 0))

	_, err = dataset.RowNormalize(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestNormalizeAdjacency(t *testing.T) {
	t.Parallel()

	// path 0-1-2: degrees of A+I are 2, 3, 2
	adj, err := dataset.BuildAdjacency(chain(3), 3)
	require.NoError(t, err)

	got, err := dataset.NormalizeAdjacency(adj)
	require.NoError(t, err)
	require.True(t, got.IsSymmetric())

	const (
		d2 = 1.0 / 2
		d6 = 0.408248290463863 // 1/sqrt(6)
		d3 = 1.0 / 3
	)
	require.InDeltaSlice(t, []float64{d2, d6, 0}, row(t, got, 0), 1e-12)
	require.InDeltaSlice(t, []float64{d6, d3, d6}, row(t, got, 1), 1e-12)
	require.InDeltaSlice(t, []float64{0, d6, d2}, row(t, got, 2), 1e-12)

	// no self-loops in the input
	v, err := adj.At(1, 1)
	require.NoError(t, err)
	require.Zero(t, v)

	rect, err := matrix.NewSparse(2, 3)
	require.NoError(t, err)
	_, err = dataset.NormalizeAdjacency(rect)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
