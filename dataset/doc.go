// SPDX-License-Identifier: MIT

// Package dataset assembles transductive graph datasets.
//
// What & Why:
//
//	Planetoid-style citation datasets ship node features in three blocks:
//	a labeled training block (x), a test block (tx) and a block holding every
//	non-test node (allx). Test rows are stored in an arbitrary order and a
//	separate index file maps each raw test row to its final node index.
//	Assemble stacks the blocks, moves every test row to the node it belongs
//	to and builds the adjacency matrix over the same numbering, so that row i
//	of both outputs describes node i.
//
//	Some datasets omit the feature rows of isolated test nodes. With
//	WithIsolatedTestNodes the test block is widened to the full contiguous
//	index span and the missing nodes receive all-zero feature rows.
//
// Layout on disk (Load / Save):
//
//	ind.<name>.x          gonum mat.Dense binary
//	ind.<name>.tx         gonum mat.Dense binary
//	ind.<name>.allx       gonum mat.Dense binary
//	ind.<name>.graph      YAML mapping  node: [neighbours...]
//	ind.<name>.test.index one integer per line
//
// Errors:
//
//	Shape violations wrap matrix.ErrDimensionMismatch. Malformed index files
//	return ErrIndexFormat with the 1-based line number. Inputs are never
//	mutated and a failed call returns no partial result.
package dataset
