// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense and sparse storages.
// This file intentionally contains ONLY the public Matrix interface and the
// small helper types used by row operations. Errors and options live in
// dedicated files (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Both *Dense (row-major, O(r*c) memory) and *Sparse (list-of-lists,
// O(r + nnz) memory) implement it; adjacency and feature matrices built by
// the dataset package are *Sparse, embeddings are usually dense.
//
// Complexity notes: Rows/Cols are O(1); At/Set are O(1) on Dense and
// O(log k) on Sparse (k = non-zeros in the row); Clone is a deep copy.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid and ErrNaNInf when the
	// numeric policy rejects v.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// rowEntries is one materialized row: parallel column indices (ascending)
// and non-zero values. Used by row operations to decouple reads from writes.
type rowEntries struct {
	cols []int
	vals []float64
}
