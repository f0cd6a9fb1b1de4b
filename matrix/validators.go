// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operand checks.
//  - Keep kernels minimal by delegating nil/storage/shape checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    add their own tag on top; errors.Is still matches.
//
// Determinism & Performance:
//  - All checks are pure, O(1), and allocate only on failure.
//
// Note:
//  - Composite validation follows a fixed sequence:
//    NotNil → Materialized → SameShape.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix pointer is non-nil.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil[T any](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateMaterialized ensures m is non-nil and owns all r*c cells.
// Errors: ErrNilMatrix, ErrUninitialized.
func ValidateMaterialized[T any](m *Dense[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if !m.Materialized() {
		return validatorErrorf("ValidateMaterialized",
			fmt.Errorf("%dx%d: %w", m.r, m.c, ErrUninitialized))
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// The error names both shapes, e.g. "ValidateSameShape: 2x3 vs 3x2: matrix: dimension mismatch".
func ValidateSameShape[T any](a, b *Dense[T]) error {
	if a.r != b.r || a.c != b.c {
		return validatorErrorf("ValidateSameShape",
			fmt.Errorf("%dx%d vs %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square.
func ValidateSquare[T any](m *Dense[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// validateOperands runs the composite binary-operand sequence:
// Materialized(a) → Materialized(b) → SameShape(a,b). Materialized checks nil first.
func validateOperands[T any](a, b *Dense[T]) error {
	if err := ValidateMaterialized(a); err != nil {
		return err
	}
	if err := ValidateMaterialized(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}
