// SPDX-License-Identifier: MIT

package sampler

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/katalvlaran/gaeval/matrix"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// Balanced is a re-invokable balanced sampler over one indicator vector.
//
// The indicator is partitioned once: positions holding exactly 1 are edges,
// positions holding exactly 0 are non-edges, any other finite value is
// ignored. Every call to Sample returns all edges followed by len(edges)
// non-edges drawn uniformly without replacement.
type Balanced struct {
	edges    []int
	nonedges []int
	src      rand.Source
	buf      []int
}

// NewBalanced partitions indicator into edges and non-edges. With no source
// option the sampler starts from the fixed default seed; successive Sample
// calls on one Balanced still differ.
//
// Errors:
//   - matrix.ErrNaNInf when the indicator holds NaN or ±Inf.
//   - ErrInsufficientPopulation when len(nonedges) < len(edges).
//
// Complexity:
//   - Time O(M), Space O(M).
func NewBalanced(indicator []float64, opts ...Option) (*Balanced, error) {
	o := gatherOptions(opts...)
	b := &Balanced{src: o.src}
	for i, v := range indicator {
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			return nil, fmt.Errorf("NewBalanced: position %d: %w", i, matrix.ErrNaNInf)
		case v == 1:
			b.edges = append(b.edges, i)
		case v == 0:
			b.nonedges = append(b.nonedges, i)
		}
	}
	if len(b.nonedges) < len(b.edges) {
		return nil, fmt.Errorf("NewBalanced: %d positives, %d negatives: %w",
			len(b.edges), len(b.nonedges), ErrInsufficientPopulation)
	}
	b.buf = make([]int, len(b.edges))

	return b, nil
}

// Sample returns edges ++ sampled non-edges (length 2·len(edges)).
// Each call draws an independent subset; the returned slice is owned by the caller.
//
// Complexity:
//   - Time O(p), Space O(p).
func (b *Balanced) Sample() []int {
	p := len(b.edges)
	out := make([]int, 0, 2*p)
	out = append(out, b.edges...)
	if p == 0 {
		return out
	}
	sampleuv.WithoutReplacement(b.buf, len(b.nonedges), b.src)
	for _, k := range b.buf {
		out = append(out, b.nonedges[k])
	}

	return out
}

// Edges returns a copy of the positive positions (ascending).
func (b *Balanced) Edges() []int { return slices.Clone(b.edges) }

// NonEdges returns a copy of the negative positions (ascending).
func (b *Balanced) NonEdges() []int { return slices.Clone(b.nonedges) }

// BuildBalancedSample is the one-shot form of NewBalanced(...).Sample().
//
// Without WithSeed, WithStream or WithSource every call draws from the same
// fixed default seed, so two calls over one indicator return the same
// non-edges. Pass a per-call seed or a shared source for fresh draws.
func BuildBalancedSample(indicator []float64, opts ...Option) ([]int, error) {
	b, err := NewBalanced(indicator, opts...)
	if err != nil {
		return nil, err
	}

	return b.Sample(), nil
}

// IndicatorFromMatrix flattens m in row-major order, so position k maps to
// cell (k / m.Cols(), k % m.Cols()).
func IndicatorFromMatrix(m matrix.Matrix) ([]float64, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, err
	}
	out := make([]float64, 0, m.Rows()*m.Cols())
	for i := 0; i < m.Rows(); i++ {
		row, err := IndicatorFromRow(m, i)
		if err != nil {
			return nil, err
		}
		out = append(out, row...)
	}

	return out, nil
}

// IndicatorFromRow copies row i of m, e.g. the neighbourhood of node i in an
// adjacency matrix.
func IndicatorFromRow(m matrix.Matrix, i int) ([]float64, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, err
	}
	if err := matrix.ValidateIndex(i, m.Rows()); err != nil {
		return nil, fmt.Errorf("IndicatorFromRow: %w", err)
	}
	out := make([]float64, m.Cols())
	if s, ok := m.(*matrix.Sparse); ok {
		cols, vals, _ := s.RowView(i)
		for k, j := range cols {
			out[j] = vals[k]
		}

		return out, nil
	}
	for j := range out {
		v, err := m.At(i, j)
		if err != nil {
			return nil, err
		}
		out[j] = v
	}

	return out, nil
}
