// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/index checks here.
//  - Return sentinel errors tagged with the validator name; call sites wrap
//    again with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *BitMatrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions (both non-nil).
func ValidateSameShape(a, b *BitMatrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows for the product a·b.
func ValidateMulCompatible(a, b *BitMatrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameWidth ensures a.Cols == b.Cols, the precondition of a·bᵗ.
func ValidateSameWidth(a, b *BitMatrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameWidth", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameWidth", err)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameWidth", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBits ensures every value of a row/column slice is 0 or 1 and that
// the slice has exactly n entries.
func ValidateBits(bits []uint8, n int) error {
	if len(bits) != n {
		return validatorErrorf("ValidateBits", ErrDimensionMismatch)
	}
	for _, b := range bits {
		if b > 1 {
			return validatorErrorf("ValidateBits", ErrNonBinary)
		}
	}

	return nil
}
