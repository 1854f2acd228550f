// SPDX-License-Identifier: MIT

package linkpred

import (
	"fmt"
	"math"
	"reflect"

	"github.com/katalvlaran/gaeval/matrix"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Sigmoid is the logistic function 1/(1+e^-x), evaluated without overflow
// for large |x|.
func Sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)

	return e / (1 + e)
}

// Scorer computes inner-product edge scores from an N×D embedding.
// The embedding is read, never written; a *mat.Dense is used in place,
// any other mat.Matrix is copied once.
type Scorer struct {
	emb *mat.Dense
	n   int
}

// NewScorer wraps emb.
//
// Errors:
//   - ErrNilEmbedding for nil or zero-sized embeddings.
func NewScorer(emb mat.Matrix) (*Scorer, error) {
	if isNilEmbedding(emb) {
		return nil, ErrNilEmbedding
	}
	r, c := emb.Dims()
	if r == 0 || c == 0 {
		return nil, ErrNilEmbedding
	}
	d, ok := emb.(*mat.Dense)
	if !ok {
		d = mat.DenseCopyOf(emb)
	}

	return &Scorer{emb: d, n: r}, nil
}

// Nodes returns the number of embedded nodes.
func (s *Scorer) Nodes() int { return s.n }

// Score returns E[u]·E[v].
//
// Errors:
//   - matrix.ErrDimensionMismatch (also matching matrix.ErrOutOfRange) when
//     u or v is not a row of the embedding.
//
// Complexity:
//   - Time O(D).
func (s *Scorer) Score(u, v int) (float64, error) {
	if err := s.check(u, v); err != nil {
		return 0, err
	}

	return floats.Dot(s.emb.RawRowView(u), s.emb.RawRowView(v)), nil
}

// Prob returns σ(E[u]·E[v]).
func (s *Scorer) Prob(u, v int) (float64, error) {
	x, err := s.Score(u, v)
	if err != nil {
		return 0, err
	}

	return Sigmoid(x), nil
}

func (s *Scorer) check(u, v int) error {
	if u < 0 || u >= s.n || v < 0 || v >= s.n {
		return fmt.Errorf("linkpred: pair (%d,%d) outside %d embedded nodes: %w: %w",
			u, v, s.n, matrix.ErrDimensionMismatch, matrix.ErrOutOfRange)
	}

	return nil
}

// Reconstruct returns the dense N×N matrix σ(E·Eᵀ).
// Intended for small graphs: memory is O(N²).
//
// Errors:
//   - ErrNilEmbedding for nil or zero-sized embeddings.
func Reconstruct(emb mat.Matrix) (*mat.Dense, error) {
	if isNilEmbedding(emb) {
		return nil, ErrNilEmbedding
	}
	if r, c := emb.Dims(); r == 0 || c == 0 {
		return nil, ErrNilEmbedding
	}
	var rec mat.Dense
	rec.Mul(emb, emb.T())
	rec.Apply(func(_, _ int, v float64) float64 { return Sigmoid(v) }, &rec)

	return &rec, nil
}

// isNilEmbedding reports a nil interface or a typed nil pointer such as
// (*mat.Dense)(nil).
func isNilEmbedding(emb mat.Matrix) bool {
	if emb == nil {
		return true
	}
	v := reflect.ValueOf(emb)

	return v.Kind() == reflect.Pointer && v.IsNil()
}
