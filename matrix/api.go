// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points for common tasks.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.
//
// AI-Hints:
//   - Use ZerosLike/IdentityLike to build staging buffers that match an existing shape.

package matrix

// Sum is an alias for Add: element-wise a + b.
// Complexity: O(rc).
func Sum[T Adder[T]](a, b *Dense[T]) (*Dense[T], error) { return Add(a, b) }

// CloneMatrix returns a deep copy of m. Thin wrapper over (*Dense).Clone.
// A nil input yields ErrNilMatrix.
func CloneMatrix[T any](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("CloneMatrix", err)
	}

	return m.Clone(), nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
// m may be descriptor-only; only its shape is read.
// Complexity: O(rc).
func ZerosLike[T Zeroer[T]](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewZeros[T](m.r, m.c)
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n^2). Validates square via central validator.
func IdentityLike[T Unit[T]](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity[T](m.r)
}
