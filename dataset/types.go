// SPDX-License-Identifier: MIT

package dataset

import "github.com/katalvlaran/gaeval/matrix"

// AdjacencyList maps a node to its neighbours over the final node numbering.
type AdjacencyList map[int][]int

// Blocks holds the raw artefacts of one dataset as they arrive from storage.
type Blocks struct {
	// X is the labeled training block. It only takes part in width checks
	// and may be nil.
	X matrix.Matrix
	// TX holds one row per entry of TestIndex, in file order.
	TX matrix.Matrix
	// AllX holds every non-test node; its row count is the first test index.
	AllX matrix.Matrix
	// Graph is the full graph over the final numbering.
	Graph AdjacencyList
	// TestIndex maps TX row k to node TestIndex[k].
	TestIndex []int
}

// Dataset is an aligned (adjacency, features) pair: row i of both is node i.
type Dataset struct {
	Adjacency *matrix.Sparse
	Features  *matrix.Sparse
}

// Nodes returns the node count.
func (d *Dataset) Nodes() int { return d.Features.Rows() }
