package matrix_test

import (
	"testing"

	"github.com/katalvlaran/gaeval/matrix"
	"github.com/stretchr/testify/require"
)

func TestVStack(t *testing.T) {
	top := mustDenseFrom(t, 2, 2, 1, 2, 3, 4)
	bottom := mustSparseFrom(t, 1, 2, 0, 5)

	out, err := matrix.VStack(top, bottom)
	require.NoError(t, err)
	require.Equal(t, 3, out.Rows())
	require.Equal(t, 2, out.Cols())
	require.Equal(t, []float64{1, 2}, rowValues(t, out, 0))
	require.Equal(t, []float64{3, 4}, rowValues(t, out, 1))
	require.Equal(t, []float64{0, 5}, rowValues(t, out, 2))

	// inputs untouched
	require.NoError(t, out.Set(2, 1, 7))
	require.Equal(t, []float64{0, 5}, rowValues(t, bottom, 0))
}

func TestVStackErrors(t *testing.T) {
	a := mustDenseFrom(t, 1, 2, 1, 2)
	b := mustDenseFrom(t, 1, 3, 1, 2, 3)

	_, err := matrix.VStack(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.VStack(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Sparse
	_, err = matrix.VStack(a, typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestScatterRows(t *testing.T) {
	dst, err := matrix.NewSparse(4, 2)
	require.NoError(t, err)
	src := mustDenseFrom(t, 2, 2, 1, 1, 2, 2)

	require.NoError(t, matrix.ScatterRows(dst, src, []int{3, 0}))
	require.Equal(t, []float64{2, 2}, rowValues(t, dst, 0))
	require.Equal(t, []float64{0, 0}, rowValues(t, dst, 1))
	require.Equal(t, []float64{1, 1}, rowValues(t, dst, 3))
}

func TestScatterRowsAtomicOnError(t *testing.T) {
	dst := mustSparseFrom(t, 2, 1, 1, 2)
	src := mustDenseFrom(t, 2, 1, 8, 9)

	err := matrix.ScatterRows(dst, src, []int{0, 5})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Equal(t, []float64{1}, rowValues(t, dst, 0)) // no partial write

	err = matrix.ScatterRows(dst, src, []int{0})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	err = matrix.ScatterRows(nil, src, []int{0, 1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestCopyRowsGatherBeforeWrite checks that a cyclic reindex behaves as a
// permutation rather than cascading overwritten rows.
func TestCopyRowsGatherBeforeWrite(t *testing.T) {
	m := mustSparseFrom(t, 3, 1, 10, 20, 30)

	// m[[0,1,2]] = m[[1,2,0]]
	require.NoError(t, matrix.CopyRows(m, []int{0, 1, 2}, []int{1, 2, 0}))
	require.Equal(t, []float64{20}, rowValues(t, m, 0))
	require.Equal(t, []float64{30}, rowValues(t, m, 1))
	require.Equal(t, []float64{10}, rowValues(t, m, 2))
}

func TestCopyRowsErrors(t *testing.T) {
	m := mustSparseFrom(t, 2, 1, 1, 2)

	require.ErrorIs(t, matrix.CopyRows(m, []int{0}, []int{0, 1}), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.CopyRows(m, []int{2}, []int{0}), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.CopyRows(m, []int{0}, []int{-1}), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.CopyRows(nil, nil, nil), matrix.ErrNilMatrix)
	require.Equal(t, []float64{1}, rowValues(t, m, 0))
}

func TestToSparse(t *testing.T) {
	d := mustDenseFrom(t, 2, 3, 0, 1, 0, 2, 0, 3)
	s, err := matrix.ToSparse(d)
	require.NoError(t, err)
	require.Equal(t, 3, s.NNZ())
	require.Equal(t, rowValues(t, d, 1), rowValues(t, s, 1))

	_, err = matrix.ToSparse(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
