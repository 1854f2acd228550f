package sampler_test

import (
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/gaeval/matrix"
	"github.com/katalvlaran/gaeval/sampler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBalancedScenario: [1,0,1,0,0,0] ⇒ [0,2,x,y] with {x,y} ⊂ {1,3,4,5}.
func TestBalancedScenario(t *testing.T) {
	b, err := sampler.NewBalanced([]float64{1, 0, 1, 0, 0, 0}, sampler.WithSeed(42))
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, b.Edges())
	require.Equal(t, []int{1, 3, 4, 5}, b.NonEdges())

	for i := 0; i < 100; i++ {
		got := b.Sample()
		require.Len(t, got, 4)
		require.Equal(t, []int{0, 2}, got[:2])
		neg := got[2:]
		require.NotEqual(t, neg[0], neg[1], "negatives must be distinct")
		for _, x := range neg {
			require.Contains(t, []int{1, 3, 4, 5}, x)
		}
	}
}

// TestBalancedInvariant checks length 2p and distinct negatives over
// several indicator shapes.
func TestBalancedInvariant(t *testing.T) {
	cases := []struct {
		name string
		p, q int
	}{
		{"empty", 0, 0},
		{"no positives", 0, 5},
		{"exact", 3, 3},
		{"sparse", 10, 500},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ind := make([]float64, tc.p+tc.q)
			for i := 0; i < tc.p; i++ {
				ind[2*i%len(ind)] = 1
			}
			got, err := sampler.BuildBalancedSample(ind, sampler.WithSeed(7))
			require.NoError(t, err)
			require.Len(t, got, 2*tc.p)

			neg := slices.Clone(got[tc.p:])
			slices.Sort(neg)
			require.Equal(t, len(neg), len(slices.Compact(neg)))
			for _, k := range got[tc.p:] {
				require.Zero(t, ind[k])
			}
			for _, k := range got[:tc.p] {
				require.Equal(t, 1.0, ind[k])
			}
		})
	}
}

// TestBalancedInsufficient: q < p must fail rather than pad or truncate.
func TestBalancedInsufficient(t *testing.T) {
	_, err := sampler.NewBalanced([]float64{1, 1, 1, 0, 0})
	require.ErrorIs(t, err, sampler.ErrInsufficientPopulation)

	_, err = sampler.BuildBalancedSample([]float64{1})
	require.ErrorIs(t, err, sampler.ErrInsufficientPopulation)
}

func TestBalancedRejectsNaN(t *testing.T) {
	_, err := sampler.NewBalanced([]float64{1, math.NaN(), 0})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestBalancedIgnoresNonBinary: values other than 0 and 1 belong to neither side.
func TestBalancedIgnoresNonBinary(t *testing.T) {
	b, err := sampler.NewBalanced([]float64{1, 0.5, 0, 2, -1})
	require.NoError(t, err)
	require.Equal(t, []int{0}, b.Edges())
	require.Equal(t, []int{2}, b.NonEdges())
	require.Equal(t, []int{0, 2}, b.Sample())
}

// TestBalancedSeedDeterminism: same seed ⇒ identical sample sequences;
// consecutive draws from one sampler vary.
func TestBalancedSeedDeterminism(t *testing.T) {
	ind := make([]float64, 60)
	for i := 0; i < 20; i++ {
		ind[i*3] = 1
	}
	a, err := sampler.NewBalanced(ind, sampler.WithSeed(99))
	require.NoError(t, err)
	b, err := sampler.NewBalanced(ind, sampler.WithSeed(99))
	require.NoError(t, err)

	first := a.Sample()
	differs := false
	require.Equal(t, first, b.Sample())
	for i := 0; i < 10; i++ {
		x, y := a.Sample(), b.Sample()
		require.Equal(t, x, y)
		if !slices.Equal(x, first) {
			differs = true
		}
	}
	assert.True(t, differs, "repeated draws should resample negatives")
}

func TestBuildBalancedSampleDefaultSeed(t *testing.T) {
	ind := make([]float64, 40)
	for i := 0; i < 8; i++ {
		ind[i*5] = 1
	}

	// no source option: every one-shot call replays the default seed
	a, err := sampler.BuildBalancedSample(ind)
	require.NoError(t, err)
	b, err := sampler.BuildBalancedSample(ind)
	require.NoError(t, err)
	require.Equal(t, a, b)

	seeded, err := sampler.BuildBalancedSample(ind, sampler.WithSeed(0))
	require.NoError(t, err)
	require.Equal(t, a, seeded)

	other, err := sampler.BuildBalancedSample(ind, sampler.WithSeed(7))
	require.NoError(t, err)
	require.Equal(t, a[:8], other[:8])
	assert.NotEqual(t, a[8:], other[8:])
}

// TestBalancedUniform checks each candidate negative is drawn with roughly
// equal frequency.
func TestBalancedUniform(t *testing.T) {
	b, err := sampler.NewBalanced([]float64{1, 0, 1, 0, 0, 0}, sampler.WithSeed(2024))
	require.NoError(t, err)

	const draws = 4000
	counts := map[int]int{}
	for i := 0; i < draws; i++ {
		for _, k := range b.Sample()[2:] {
			counts[k]++
		}
	}
	for _, k := range []int{1, 3, 4, 5} {
		freq := float64(counts[k]) / draws
		assert.InDelta(t, 0.5, freq, 0.05, "candidate %d", k)
	}
}

func TestIndicators(t *testing.T) {
	d, err := matrix.NewDenseFrom(2, 3, []float64{0, 1, 0, 1, 0, 1})
	require.NoError(t, err)
	s, err := matrix.ToSparse(d)
	require.NoError(t, err)

	flat, err := sampler.IndicatorFromMatrix(d)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 0, 1, 0, 1}, flat)

	row, err := sampler.IndicatorFromRow(s, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0, 1}, row)

	_, err = sampler.IndicatorFromRow(s, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = sampler.IndicatorFromMatrix(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestWithSourceNilPanics(t *testing.T) {
	require.Panics(t, func() { sampler.WithSource(nil) })
}

// TestStreams: stream 0 is the plain seed, other streams diverge.
func TestStreams(t *testing.T) {
	ind := make([]float64, 60)
	for i := 0; i < 20; i++ {
		ind[i*3] = 1
	}
	seeded, err := sampler.BuildBalancedSample(ind, sampler.WithSeed(5))
	require.NoError(t, err)
	s0, err := sampler.BuildBalancedSample(ind, sampler.WithStream(5, 0))
	require.NoError(t, err)
	s1, err := sampler.BuildBalancedSample(ind, sampler.WithStream(5, 1))
	require.NoError(t, err)

	require.Equal(t, seeded, s0)
	require.NotEqual(t, s0, s1)
}
