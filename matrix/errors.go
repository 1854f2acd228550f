// SPDX-License-Identifier: MIT
// Package matrix: sentinel errors.
// Sentinels are returned wrapped with the failing call and its arguments, e.g.
// "VStack: ValidateSameCols: matrix: dimension mismatch"; match them with
// errors.Is. User input never triggers a panic in this package.

package matrix

import "errors"

// Checks run in the order nil -> shape -> index -> NaN/Inf, so an input
// that violates several contracts reports the first of these.

var (
	// ErrInvalidDimensions: a constructor was asked for zero or negative rows/cols.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange: a row, column or row-list index falls outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. stacking blocks of different widths or an adjacency whose node count
	// differs from the feature row count. It is the ShapeMismatch error of the
	// whole module: dataset, linkpred and sampler wrap it rather than minting
	// their own.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf: a non-finite value reached Set, NewDenseFrom or a gonum
	// bridge while the numeric policy was on.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix: a nil Matrix (including a typed nil pointer) was passed in.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
