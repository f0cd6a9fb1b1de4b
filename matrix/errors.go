// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for nonsensical option values (programmer error).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with context (denseErrorf,
// matrixErrorf, validatorErrorf); callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> dimensions -> uninitialized storage -> index range -> shape mismatch.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative
	// or that rows*cols does not fit in an int.
	// Zero rows or columns are legal and produce an empty matrix.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row/SetRow) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrUninitialized signals access to a descriptor-only matrix: dimensions are
	// recorded but no backing storage was ever materialized (see New, NewSquare).
	ErrUninitialized = errors.New("matrix: storage not initialized")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// ragged row input, or a row/document whose length disagrees with the shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadHeader is returned by ParseHeader when a line is not a rendered
	// "rows: R, cols: C" header.
	ErrBadHeader = errors.New("matrix: malformed header")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
// Keep it as an alias so errors.Is(err, ErrIndexOutOfBounds) remains true.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
