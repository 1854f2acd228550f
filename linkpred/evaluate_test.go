package linkpred_test

import (
	"testing"

	"github.com/katalvlaran/gaeval/linkpred"
	"github.com/katalvlaran/gaeval/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// separable returns an embedding where nodes {0,1} and {2,3} point in
// opposite directions, and the matching reference adjacency.
func separable(t *testing.T) (*mat.Dense, *matrix.Sparse) {
	t.Helper()
	emb := mat.NewDense(4, 2, []float64{
		2, 0,
		2, 0,
		-2, 0,
		-2, 0.5,
	})
	ref, err := matrix.NewSparse(4, 4)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {2, 3}} {
		require.NoError(t, ref.Set(e[0], e[1], 1))
		require.NoError(t, ref.Set(e[1], e[0], 1))
	}

	return emb, ref
}

var (
	sepPos = []linkpred.Pair{{0, 1}, {2, 3}}
	sepNeg = []linkpred.Pair{{0, 2}, {1, 3}}
)

func TestEvaluatePerfectSeparation(t *testing.T) {
	emb, ref := separable(t)

	m, err := linkpred.Evaluate(sepPos, sepNeg, emb, ref)
	require.NoError(t, err)
	require.Equal(t, 1.0, m.Accuracy)
	require.InDelta(t, 1.0, m.ROCAUC, 1e-12)
	require.InDelta(t, 1.0, m.AveragePrecision, 1e-12)
}

func TestEvaluateDeterministic(t *testing.T) {
	emb := mat.NewDense(5, 3, []float64{
		0.1, -0.3, 0.7,
		0.9, 0.2, -0.4,
		-0.5, 0.8, 0.1,
		0.3, 0.3, 0.3,
		-0.2, -0.6, 0.4,
	})
	ref, err := matrix.NewSparse(5, 5)
	require.NoError(t, err)
	pos := []linkpred.Pair{{0, 1}, {2, 3}, {3, 4}}
	neg := []linkpred.Pair{{0, 4}, {1, 2}, {1, 3}}
	embBefore := mat.DenseCopyOf(emb)

	first, err := linkpred.Evaluate(pos, neg, emb, ref)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := linkpred.Evaluate(pos, neg, emb, ref)
		require.NoError(t, err)
		require.Equal(t, first, again) // bit-identical
	}
	require.True(t, mat.Equal(embBefore, emb)) // embedding untouched
	require.Zero(t, ref.NNZ())
}

func TestEvaluateReport(t *testing.T) {
	emb, ref := separable(t)
	neg := []linkpred.Pair{{0, 2}, {0, 1}} // (0,1) is an edge in the reference

	rep, err := linkpred.EvaluateReport(sepPos, neg, emb, ref)
	require.NoError(t, err)
	require.Equal(t, 2, rep.Positives)
	require.Equal(t, 2, rep.Negatives)
	require.Equal(t, 1, rep.Mislabeled)
	require.Len(t, rep.Predictions, 4)

	p := rep.Predictions[0]
	require.Equal(t, linkpred.Pair{U: 0, V: 1}, p.Pair)
	require.Equal(t, 4.0, p.Score)
	require.Equal(t, linkpred.Sigmoid(4), p.Prob)
	require.Equal(t, 1.0, p.Reference)
	require.True(t, p.Positive)
	require.False(t, rep.Predictions[3].Positive)
}

func TestEvaluatePairPolicy(t *testing.T) {
	emb, ref := separable(t)
	neg := []linkpred.Pair{{0, 2}}

	_, err := linkpred.Evaluate(sepPos, neg, emb, ref)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	m, err := linkpred.Evaluate(sepPos, neg, emb, ref, linkpred.WithPairPolicy(linkpred.PolicyOwnLength))
	require.NoError(t, err)
	require.Equal(t, 1.0, m.Accuracy)
	require.InDelta(t, 1.0, m.ROCAUC, 1e-12)
}

func TestEvaluateThreshold(t *testing.T) {
	emb, ref := separable(t)

	// σ(4) ≈ 0.982 < 0.99: every positive is now misclassified
	m, err := linkpred.Evaluate(sepPos, sepNeg, emb, ref, linkpred.WithThreshold(0.99))
	require.NoError(t, err)
	require.Equal(t, 0.5, m.Accuracy)
	require.InDelta(t, 1.0, m.ROCAUC, 1e-12) // ranking metrics ignore the threshold

	require.Panics(t, func() { linkpred.WithThreshold(1) })
	require.Panics(t, func() { linkpred.WithPairPolicy(linkpred.PairPolicy(9)) })
}

func TestEvaluateErrors(t *testing.T) {
	emb, ref := separable(t)

	_, err := linkpred.Evaluate(nil, nil, emb, ref)
	require.ErrorIs(t, err, linkpred.ErrDegenerateLabels)

	_, err = linkpred.Evaluate(sepPos, nil, emb, ref, linkpred.WithPairPolicy(linkpred.PolicyOwnLength))
	require.ErrorIs(t, err, linkpred.ErrDegenerateLabels)

	_, err = linkpred.Evaluate(sepPos, sepNeg, nil, ref)
	require.ErrorIs(t, err, linkpred.ErrNilEmbedding)

	_, err = linkpred.Evaluate(sepPos, sepNeg, emb, nil)
	require.ErrorIs(t, err, linkpred.ErrNilReference)

	bad := []linkpred.Pair{{0, 4}, {2, 3}}
	_, err = linkpred.Evaluate(bad, sepNeg, emb, ref)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	small, err := matrix.NewSparse(2, 2)
	require.NoError(t, err)
	_, err = linkpred.Evaluate(sepPos, sepNeg, emb, small)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestScorer(t *testing.T) {
	emb, _ := separable(t)

	// a transposed view is not a *mat.Dense and is copied once
	sc, err := linkpred.NewScorer(mat.DenseCopyOf(emb.T()).T())
	require.NoError(t, err)
	require.Equal(t, 4, sc.Nodes())

	x, err := sc.Score(2, 3)
	require.NoError(t, err)
	require.Equal(t, 4.0, x)

	p, err := sc.Prob(0, 2)
	require.NoError(t, err)
	require.Equal(t, linkpred.Sigmoid(-4), p)

	_, err = sc.Score(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = linkpred.NewScorer(nil)
	require.ErrorIs(t, err, linkpred.ErrNilEmbedding)
	_, err = linkpred.NewScorer((*mat.Dense)(nil))
	require.ErrorIs(t, err, linkpred.ErrNilEmbedding)
}

func TestReconstruct(t *testing.T) {
	emb := mat.NewDense(2, 2, []float64{1, 0, 0, 2})
	rec, err := linkpred.Reconstruct(emb)
	require.NoError(t, err)

	want := mat.NewDense(2, 2, []float64{
		linkpred.Sigmoid(1), linkpred.Sigmoid(0),
		linkpred.Sigmoid(0), linkpred.Sigmoid(4),
	})
	require.True(t, mat.EqualApprox(want, rec, 1e-15))

	_, err = linkpred.Reconstruct(nil)
	require.ErrorIs(t, err, linkpred.ErrNilEmbedding)
	_, err = linkpred.Reconstruct((*mat.Dense)(nil))
	require.ErrorIs(t, err, linkpred.ErrNilEmbedding)
}

func TestPairsFromAndPolicyStrings(t *testing.T) {
	require.Equal(t, []linkpred.Pair{{U: 1, V: 2}}, linkpred.PairsFrom([][2]int{{1, 2}}))

	for _, p := range []linkpred.PairPolicy{linkpred.PolicyRequireEqual, linkpred.PolicyOwnLength} {
		got, err := linkpred.ParsePairPolicy(p.String())
		require.NoError(t, err)
		require.Equal(t, p, got)
	}
	_, err := linkpred.ParsePairPolicy("bogus")
	require.Error(t, err)
}
