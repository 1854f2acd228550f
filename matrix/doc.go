// SPDX-License-Identifier: MIT

// Package matrix is the numerical layer shared by the dataset, sampler and
// linkpred packages.
//
// The matrix package provides:
//
//   - The Matrix interface with bounds-safe At/Set (errors, never panics).
//   - Dense: row-major storage for embeddings and small matrices.
//   - Sparse: list-of-lists storage for adjacency and feature matrices,
//     cheap whole-row reads and writes.
//   - Row operations used by transductive dataset assembly: VStack,
//     ScatterRows and CopyRows (gather-then-write reindexing).
//   - Bridges to gonum/mat (ToGonum, FromGonum, SparseFromGonum).
//   - Sentinel errors; ErrDimensionMismatch doubles as the module-wide
//     shape-mismatch error.
//
// Matrices are plain values without internal locking; share them read-only
// or guard them externally.
package matrix
