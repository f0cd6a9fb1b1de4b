// SPDX-License-Identifier: MIT

// Package matrix: text rendering.
//
// Format (fixed, byte-exact):
//
//	rows: R, cols: C
//	v00 v01 ... v0C-1 <space>
//	...
//
// Every element is followed by exactly one space, including the last in a
// row, and every row ends with "\n". Elements render through fmt's %v verb,
// so an element type implementing fmt.Stringer controls its own text.

package matrix

import (
	"fmt"
	"io"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtHeader  = "rows: %d, cols: %d\n"
	_fmtCell    = "%v "
	_fmtRowEnd  = "\n"
	_fmtNoStore = "<uninitialized>\n"
	_fmtNil     = "<nil>"
)

// Compile-time assertions for io.WriterTo & fmt.Stringer conformance.
var (
	_ io.WriterTo  = (*Dense[Uint])(nil)
	_ fmt.Stringer = (*Dense[Uint])(nil)
)

// WriteTo renders m to w and returns the number of bytes written.
// Implementation:
//   - Stage 1: refuse descriptor-only matrices before touching w.
//   - Stage 2: write the header line.
//   - Stage 3: write rows in fixed i→j order.
//
// Errors:
//   - ErrNilMatrix for a nil receiver (nothing is written).
//   - ErrUninitialized when m has no storage (nothing is written).
//   - Any error returned by w, wrapped with the "Dense.WriteTo" tag; the
//     byte count reflects what w accepted before failing.
//
// Complexity:
//   - Time O(r*c); one w.Write per cell.
func (m *Dense[T]) WriteTo(w io.Writer) (int64, error) {
	if m == nil {
		return 0, matrixErrorf("Dense.WriteTo", ErrNilMatrix)
	}
	if !m.Materialized() {
		return 0, matrixErrorf("Dense.WriteTo", ErrUninitialized)
	}
	var total int64
	n, err := fmt.Fprintf(w, _fmtHeader, m.r, m.c)
	total += int64(n)
	if err != nil {
		return total, matrixErrorf("Dense.WriteTo", err)
	}
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			n, err = fmt.Fprintf(w, _fmtCell, m.data[base+j])
			total += int64(n)
			if err != nil {
				return total, matrixErrorf("Dense.WriteTo", err)
			}
		}
		n, err = io.WriteString(w, _fmtRowEnd)
		total += int64(n)
		if err != nil {
			return total, matrixErrorf("Dense.WriteTo", err)
		}
	}

	return total, nil
}

// String implements fmt.Stringer for easy debugging.
// A descriptor-only matrix renders its header followed by "<uninitialized>";
// a nil matrix renders "<nil>".
func (m *Dense[T]) String() string {
	if m == nil {
		return _fmtNil
	}
	var sb strings.Builder
	if !m.Materialized() {
		fmt.Fprintf(&sb, _fmtHeader, m.r, m.c)
		sb.WriteString(_fmtNoStore)
		return sb.String()
	}
	_, _ = m.WriteTo(&sb) // strings.Builder never fails

	return sb.String()
}

// ParseHeader recovers (rows, cols) from a header line produced by WriteTo.
// A single trailing newline is accepted; anything else must match exactly.
//
// Errors:
//   - ErrBadHeader when the line is not a canonical header.
func ParseHeader(line string) (rows, cols int, err error) {
	line = strings.TrimSuffix(line, _fmtRowEnd)
	if _, err = fmt.Sscanf(line, "rows: %d, cols: %d", &rows, &cols); err != nil {
		return 0, 0, fmt.Errorf("ParseHeader(%q): %w", line, ErrBadHeader)
	}
	// Reject negatives, sign prefixes and trailing junk by re-rendering.
	if rows < 0 || cols < 0 || fmt.Sprintf(_fmtHeader, rows, cols) != line+_fmtRowEnd {
		return 0, 0, fmt.Errorf("ParseHeader(%q): %w", line, ErrBadHeader)
	}

	return rows, cols, nil
}
