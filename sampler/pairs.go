// SPDX-License-Identifier: MIT

package sampler

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/katalvlaran/gaeval/matrix"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// Pair is an unordered node pair stored as [lo, hi] with lo < hi.
type Pair = [2]int

// PositivePairs lists the undirected edges of a square adjacency matrix as
// [u, v] with u < v, in row-major order. A cell counts as an edge when
// either a[u][v] or a[v][u] is non-zero. The diagonal is skipped.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (non-square).
func PositivePairs(adj matrix.Matrix) ([]Pair, error) {
	if err := checkAdjacency(adj); err != nil {
		return nil, err
	}
	n := adj.Rows()
	seen := make(map[Pair]struct{})
	var out []Pair
	add := func(u, v int) {
		if u == v {
			return
		}
		if u > v {
			u, v = v, u
		}
		p := Pair{u, v}
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	if s, ok := adj.(*matrix.Sparse); ok {
		s.Each(func(i, j int, _ float64) bool { add(i, j); return true })
	} else {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				v, err := adj.At(i, j)
				if err != nil {
					return nil, err
				}
				if v != 0 {
					add(i, j)
				}
			}
		}
	}
	sortPairs(out)

	return out, nil
}

// NegativePairs draws n distinct unordered non-edge pairs [u, v] (u < v,
// adj[u][v] == 0 and adj[v][u] == 0) uniformly at random.
//
// Errors:
//   - ErrNegativeCount for n < 0.
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (non-square).
//   - ErrInsufficientPopulation when fewer than n non-edges exist.
//
// Complexity:
//   - Rejection sampling while n is at most half the available non-edges,
//     full O(N²) enumeration otherwise.
func NegativePairs(adj matrix.Matrix, n int, opts ...Option) ([]Pair, error) {
	if n < 0 {
		return nil, fmt.Errorf("NegativePairs: %d: %w", n, ErrNegativeCount)
	}
	edges, err := PositivePairs(adj)
	if err != nil {
		return nil, err
	}
	nodes := adj.Rows()
	available := nodes*(nodes-1)/2 - len(edges)
	if n > available {
		return nil, fmt.Errorf("NegativePairs: want %d, %d available: %w", n, available, ErrInsufficientPopulation)
	}
	o := gatherOptions(opts...)
	if n == 0 {
		return []Pair{}, nil
	}

	taken := make(map[Pair]struct{}, len(edges)+n)
	for _, e := range edges {
		taken[e] = struct{}{}
	}

	if 2*n > available {
		var candidates []Pair
		for u := 0; u < nodes; u++ {
			for v := u + 1; v < nodes; v++ {
				if _, ok := taken[Pair{u, v}]; !ok {
					candidates = append(candidates, Pair{u, v})
				}
			}
		}
		idx := make([]int, n)
		sampleuv.WithoutReplacement(idx, len(candidates), o.src)
		out := make([]Pair, n)
		for k, i := range idx {
			out[k] = candidates[i]
		}

		return out, nil
	}

	rng := rand.New(o.src)
	out := make([]Pair, 0, n)
	for len(out) < n {
		u, v := rng.IntN(nodes), rng.IntN(nodes)
		if u == v {
			continue
		}
		if u > v {
			u, v = v, u
		}
		p := Pair{u, v}
		if _, ok := taken[p]; ok {
			continue
		}
		taken[p] = struct{}{}
		out = append(out, p)
	}

	return out, nil
}

// ChoosePairs returns n pairs drawn uniformly without replacement from pairs,
// in draw order. The input is not modified.
//
// Errors:
//   - ErrNegativeCount for n < 0; ErrInsufficientPopulation when n > len(pairs).
func ChoosePairs(pairs []Pair, n int, opts ...Option) ([]Pair, error) {
	if n < 0 {
		return nil, fmt.Errorf("ChoosePairs: %d: %w", n, ErrNegativeCount)
	}
	if n > len(pairs) {
		return nil, fmt.Errorf("ChoosePairs: want %d of %d: %w", n, len(pairs), ErrInsufficientPopulation)
	}
	o := gatherOptions(opts...)
	idx := make([]int, n)
	if n > 0 {
		sampleuv.WithoutReplacement(idx, len(pairs), o.src)
	}
	out := make([]Pair, n)
	for k, i := range idx {
		out[k] = pairs[i]
	}

	return out, nil
}

func checkAdjacency(adj matrix.Matrix) error {
	if err := matrix.ValidateNotNil(adj); err != nil {
		return err
	}
	if err := matrix.ValidateSquare(adj); err != nil {
		return fmt.Errorf("sampler: adjacency %dx%d: %w", adj.Rows(), adj.Cols(), err)
	}

	return nil
}

// sortPairs orders pairs lexicographically (u, then v).
func sortPairs(ps []Pair) {
	slices.SortFunc(ps, func(a, b Pair) int {
		if c := cmp.Compare(a[0], b[0]); c != 0 {
			return c
		}
		return cmp.Compare(a[1], b[1])
	})
}
