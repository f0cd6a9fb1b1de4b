// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Track whether storage was ever materialized, so descriptor-only matrices
//     fail with ErrUninitialized instead of faulting on first access.
//
// AI-Hints:
//   - Use NewZeros for a usable matrix; New/NewSquare only record a shape.
//   - Fill materializes a descriptor-only matrix in one pass.
//
// Complexity quicksheet:
//   - New: O(1); NewZeros/NewIdentity: O(r*c); At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in error wrappers
	ctxSet    = "Set"    // method tag used in error wrappers
	ctxRow    = "Row"    // method tag used in error wrappers
	ctxSetRow = "SetRow" // method tag used in error wrappers
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices,
// e.g. "Dense.At(3,1): matrix: index out of range".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// cellCount returns rows*cols, rejecting negative dimensions and products
// that overflow int. Every shape stored in a Dense passes through it, so
// r*c is always safe to compute afterwards.
func cellCount(rows, cols int) (int, error) {
	if rows < 0 || cols < 0 {
		return 0, ErrInvalidDimensions
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return 0, fmt.Errorf("%dx%d overflows cell count: %w", rows, cols, ErrInvalidDimensions)
	}

	return rows * cols, nil
}

// Dense is a generic row-major matrix.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j),
//     or nil for a descriptor-only matrix with r*c > 0.
//
// Dense is not safe for concurrent mutation.
type Dense[T any] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c once materialized)
}

// New records an r×c shape WITHOUT allocating storage (descriptor-only).
// MAIN DESCRIPTION:
//   - Low-level constructor; requires nothing of T.
//
// Behavior highlights:
//   - Every accessor on the result fails with ErrUninitialized until Fill
//     materializes the buffer.
//   - A shape with zero cells (0×k, k×0) is trivially materialized.
//
// Errors:
//   - ErrInvalidDimensions when rows<0, cols<0 or rows*cols overflows int.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Prefer NewZeros unless the caller fills every cell itself.
func New[T any](rows, cols int) (*Dense[T], error) {
	if _, err := cellCount(rows, cols); err != nil {
		return nil, err
	}

	return &Dense[T]{r: rows, c: cols}, nil
}

// NewZeros returns an r×c matrix with every cell set to T's Zero().
// MAIN DESCRIPTION:
//   - The canonical constructor: the result is fully materialized and access-safe.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0 and that rows*cols fits in int.
//   - Stage 2: allocate a flat buffer of r*c cells.
//   - Stage 3: write Zero() into every cell (make() zero-fills with Go's zero
//     value, which need not be T's additive identity).
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewZeros[T Zeroer[T]](rows, cols int) (*Dense[T], error) {
	n, err := cellCount(rows, cols)
	if err != nil {
		return nil, err
	}
	buf := make([]T, n)
	zero := zeroOf[T]()
	for k := range buf {
		buf[k] = zero
	}

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}

// NewSquare is New(n, n): a descriptor-only n×n matrix.
func NewSquare[T any](n int) (*Dense[T], error) {
	return New[T](n, n)
}

// NewIdentity returns I_n: One() on the diagonal, Zero() elsewhere.
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity[T Unit[T]](n int) (*Dense[T], error) {
	// Allocate an n×n zero matrix via the constructor.
	id, err := NewZeros[T](n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	one := oneOf[T]()
	for i := 0; i < n; i++ {
		id.data[i*n+i] = one
	}

	return id, nil
}

// NewFromRows builds a materialized matrix by copying rows (rows[i][j] -> (i,j)).
// The column count is taken from rows[0]; every row must match it.
//
// Errors:
//   - ErrDimensionMismatch on ragged input (wrapped with the offending row).
//
// Complexity: O(r*c).
func NewFromRows[T any](rows [][]T) (*Dense[T], error) {
	r, c := len(rows), 0
	if r > 0 {
		c = len(rows[0])
	}
	n, err := cellCount(r, c)
	if err != nil {
		return nil, err
	}
	buf := make([]T, 0, n)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewFromRows: row %d has %d cells, want %d: %w",
				i, len(row), c, ErrDimensionMismatch)
		}
		buf = append(buf, row...)
	}

	return &Dense[T]{r: r, c: c, data: buf}, nil
}

// Rows returns the row count (0 for a nil matrix). Complexity: O(1).
func (m *Dense[T]) Rows() int {
	if m == nil {
		return 0
	}
	return m.r
}

// Cols returns the column count (0 for a nil matrix). Complexity: O(1).
func (m *Dense[T]) Cols() int {
	if m == nil {
		return 0
	}
	return m.c
}

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// Materialized reports whether the backing buffer holds all r*c cells.
// False for a nil matrix and for descriptor-only matrices with at least one cell.
func (m *Dense[T]) Materialized() bool {
	if m == nil {
		return false
	}
	// r*c cannot overflow: every shape is admitted through cellCount.
	return len(m.data) == m.r*m.c
}

// indexOf computes the row-major offset for (row, col).
// Returns a bare sentinel; public methods wrap it with coordinates.
//
// Errors:
//   - ErrNilMatrix for a nil receiver.
//   - ErrUninitialized when storage was never materialized (checked before
//     bounds: every coordinate of a descriptor-only matrix is invalid).
//   - ErrOutOfRange when indices are invalid.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if !m.Materialized() {
		return 0, ErrUninitialized
	}
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col).
//
// Errors:
//   - ErrUninitialized (descriptor-only), ErrOutOfRange (bad indices).
//     On error the zero value of T is returned.
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrUninitialized (descriptor-only), ErrOutOfRange (bad indices).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i. Mutating the result does not affect m.
func (m *Dense[T]) Row(i int) ([]T, error) {
	if m == nil {
		return nil, denseErrorf(ctxRow, i, 0, ErrNilMatrix)
	}
	if !m.Materialized() {
		return nil, denseErrorf(ctxRow, i, 0, ErrUninitialized)
	}
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// SetRow overwrites row i with a copy of vals (len(vals) must equal Cols()).
//
// Errors:
//   - ErrUninitialized, ErrOutOfRange, ErrDimensionMismatch.
func (m *Dense[T]) SetRow(i int, vals []T) error {
	if m == nil {
		return denseErrorf(ctxSetRow, i, 0, ErrNilMatrix)
	}
	if !m.Materialized() {
		return denseErrorf(ctxSetRow, i, 0, ErrUninitialized)
	}
	if i < 0 || i >= m.r {
		return denseErrorf(ctxSetRow, i, 0, ErrOutOfRange)
	}
	if len(vals) != m.c {
		return denseErrorf(ctxSetRow, i, len(vals), ErrDimensionMismatch)
	}
	copy(m.data[i*m.c:(i+1)*m.c], vals)

	return nil
}

// Fill writes v into every cell, allocating storage first when m is
// descriptor-only. After Fill, a non-nil m is always materialized;
// Fill on a nil matrix is a no-op.
// Complexity: O(r*c).
func (m *Dense[T]) Fill(v T) {
	if m == nil {
		return
	}
	if !m.Materialized() {
		m.data = make([]T, m.r*m.c)
	}
	for k := range m.data {
		m.data[k] = v
	}
}

// Clone returns a deep copy (new buffer, same shape and materialization state).
// Cloning a nil matrix returns nil.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	if m == nil {
		return nil
	}
	if m.data == nil {
		return &Dense[T]{r: m.r, c: m.c}
	}
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}
