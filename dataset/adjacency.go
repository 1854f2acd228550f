// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"

	"github.com/katalvlaran/gaeval/matrix"
	"gonum.org/v1/gonum/graph/simple"
)

const ctxAdjacency = "BuildAdjacency"

// BuildAdjacency converts g into a symmetric binary n×n adjacency matrix.
//
// Every listed neighbour produces an undirected edge; repeated or mirrored
// entries collapse into one. A node listing itself keeps a 1 on the diagonal.
// The implied node count is one more than the largest id seen as a key or a
// neighbour, and it must equal n.
//
// Errors:
//   - matrix.ErrOutOfRange for negative node ids.
//   - matrix.ErrDimensionMismatch when the implied node count differs from n.
//   - matrix.ErrInvalidDimensions for n <= 0.
//
// Complexity:
//   - Time O(V + E log d), Space O(V + E).
func BuildAdjacency(g AdjacencyList, n int) (*matrix.Sparse, error) {
	ug := simple.NewUndirectedGraph()
	var loops []int
	maxID := -1
	see := func(id int) error {
		if id < 0 {
			return fmt.Errorf("%s: node %d: %w", ctxAdjacency, id, matrix.ErrOutOfRange)
		}
		if id > maxID {
			maxID = id
		}
		if node, isNew := ug.NodeWithID(int64(id)); isNew {
			ug.AddNode(node)
		}

		return nil
	}

	for u, nbrs := range g {
		if err := see(u); err != nil {
			return nil, err
		}
		for _, v := range nbrs {
			if err := see(v); err != nil {
				return nil, err
			}
			if u == v {
				loops = append(loops, u)
				continue
			}
			ug.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
		}
	}
	if maxID+1 != n {
		return nil, fmt.Errorf("%s: graph implies %d nodes, want %d: %w",
			ctxAdjacency, maxID+1, n, matrix.ErrDimensionMismatch)
	}

	adj, err := matrix.NewSparse(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxAdjacency, err)
	}
	edges := ug.Edges()
	for edges.Next() {
		e := edges.Edge()
		u, v := int(e.From().ID()), int(e.To().ID())
		if err = adj.Set(u, v, 1); err != nil {
			return nil, fmt.Errorf("%s: edge (%d,%d): %w", ctxAdjacency, u, v, err)
		}
		if err = adj.Set(v, u, 1); err != nil {
			return nil, fmt.Errorf("%s: edge (%d,%d): %w", ctxAdjacency, v, u, err)
		}
	}
	for _, u := range loops {
		if err = adj.Set(u, u, 1); err != nil {
			return nil, fmt.Errorf("%s: self-loop %d: %w", ctxAdjacency, u, err)
		}
	}

	return adj, nil
}

// AdjacencyListOf is the inverse of BuildAdjacency: every node maps to the
// ascending columns of its non-zero entries, and nodes without entries map
// to an empty list so that the node count survives a round trip.
func AdjacencyListOf(adj *matrix.Sparse) (AdjacencyList, error) {
	if adj == nil {
		return nil, fmt.Errorf("AdjacencyListOf: %w", matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateSquare(adj); err != nil {
		return nil, fmt.Errorf("AdjacencyListOf: %w", err)
	}
	g := make(AdjacencyList, adj.Rows())
	for i := 0; i < adj.Rows(); i++ {
		cols, _, _ := adj.RowView(i)
		g[i] = append([]int{}, cols...)
	}

	return g, nil
}
