// SPDX-License-Identifier: MIT

// Package matrix: elementwise arithmetic kernels.
//
// Semantics:
//   - Add(a, b)[i,j] == a[i,j] + b[i,j]. Both operands contribute.
//   - Shapes are checked before any indexing; a mismatch is ErrDimensionMismatch
//     naming both shapes, never an out-of-bounds fault.
//   - Operands are never mutated or retained; results are freshly allocated.
//
// Determinism & Performance:
//   - Single flat 0..n-1 loop over the row-major buffer (i→j order).

package matrix

import (
	"fmt"
	"slices"
)

// matrixErrorf wraps an error with an operation tag, e.g. "Add: ...".
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// accumulate performs dst[k] = dst[k] + src[k] over the flat buffers.
// Caller guarantees len(dst.data) == len(src.data).
func accumulate[T Adder[T]](dst, src *Dense[T]) {
	for k := range dst.data {
		dst.data[k] = dst.data[k].Add(src.data[k])
	}
}

// Add computes the element-wise sum C = A + B and returns a fresh result.
// Implementation:
//   - Stage 1: validate both operands (non-nil, materialized, same shape).
//   - Stage 2: seed C with Zero() via NewZeros.
//   - Stage 3: fold A, then B, into C.
//
// Inputs:
//   - a, b: materialized matrices of identical shape.
//
// Returns:
//   - *Dense[T] with C[i,j] = (Zero + A[i,j]) + B[i,j].
//
// Errors:
//   - ErrNilMatrix, ErrUninitialized, ErrDimensionMismatch (wrapped with "Add").
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Keep the operands if you need them afterwards: they are untouched.
//   - Use AddInPlace to accumulate into an existing matrix without allocating.
func Add[T Adder[T]](a, b *Dense[T]) (*Dense[T], error) {
	if err := validateOperands(a, b); err != nil {
		return nil, matrixErrorf("Add", err)
	}
	out, err := NewZeros[T](a.r, a.c)
	if err != nil {
		return nil, matrixErrorf("Add", err)
	}
	accumulate(out, a)
	accumulate(out, b)

	return out, nil
}

// AddInPlace accumulates src into dst: dst[i,j] = dst[i,j] + src[i,j].
// Same validation as Add; on error dst is left unchanged.
// Passing the same matrix twice doubles it.
func AddInPlace[T Adder[T]](dst, src *Dense[T]) error {
	if err := validateOperands(dst, src); err != nil {
		return matrixErrorf("AddInPlace", err)
	}
	accumulate(dst, src)

	return nil
}

// Equal reports whether a and b have the same shape, the same
// materialization state and identical cells. Two nil matrices are equal.
func Equal[T comparable](a, b *Dense[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c || a.Materialized() != b.Materialized() {
		return false
	}

	return slices.Equal(a.data, b.data)
}
