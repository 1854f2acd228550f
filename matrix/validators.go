// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/index checks here.
//  - Wrap sentinels with the validator tag so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//  - Each validator describes what it validates and what it assumes (e.g. no nil check).

package matrix

import (
	"fmt"
	"reflect"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
// Typed nil pointers stored in the interface (e.g. (*Sparse)(nil)) are
// treated as nil as well.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if v := reflect.ValueOf(m); v.Kind() == reflect.Pointer && v.IsNil() {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameCols ensures a and b have the same number of columns
// (the precondition for stacking along rows). Assumes non-nil inputs.
func ValidateSameCols(a, b Matrix) error {
	if a.Cols() != b.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateSameCols(%d,%d)", a.Cols(), b.Cols()), ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameRows ensures a and b have the same number of rows.
// Assumes non-nil inputs.
func ValidateSameRows(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf(fmt.Sprintf("ValidateSameRows(%d,%d)", a.Rows(), b.Rows()), ErrDimensionMismatch)
	}

	return nil
}

// ValidateIndex ensures 0 <= i < n.
func ValidateIndex(i, n int) error {
	if i < 0 || i >= n {
		return validatorErrorf(fmt.Sprintf("ValidateIndex(%d of %d)", i, n), ErrOutOfRange)
	}

	return nil
}

// ValidateIndices ensures every element of idx lies in [0, n).
// Complexity: O(len(idx)).
func ValidateIndices(idx []int, n int) error {
	for _, i := range idx {
		if err := ValidateIndex(i, n); err != nil {
			return err
		}
	}

	return nil
}
