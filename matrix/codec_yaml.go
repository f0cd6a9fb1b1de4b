// SPDX-License-Identifier: MIT

// Package matrix: YAML codec.
//
// Document shape:
//
//	rows: 2
//	cols: 2
//	data:
//	  - [0, 0]
//	  - [0, 0]
//
// The data key is omitted for a descriptor-only matrix; decoding such a
// document yields a descriptor-only matrix again. Rows are emitted in flow
// style so each matrix row stays on one line.

package matrix

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Compile-time assertions for yaml.v3 hook conformance.
var (
	_ yaml.Marshaler   = (*Dense[Uint])(nil)
	_ yaml.Unmarshaler = (*Dense[Uint])(nil)
)

// denseDoc is the on-wire form of a Dense.
type denseDoc[T any] struct {
	Rows int          `yaml:"rows"`
	Cols int          `yaml:"cols"`
	Data []yamlRow[T] `yaml:"data,omitempty"`
}

// yamlRow marshals one matrix row as a flow sequence.
type yamlRow[T any] []T

// MarshalYAML returns a flow-style sequence node for the row.
func (r yamlRow[T]) MarshalYAML() (interface{}, error) {
	var n yaml.Node
	if err := n.Encode([]T(r)); err != nil {
		return nil, err
	}
	n.Style = yaml.FlowStyle

	return &n, nil
}

// MarshalYAML implements yaml.Marshaler.
// Errors: ErrNilMatrix for a nil receiver.
func (m *Dense[T]) MarshalYAML() (interface{}, error) {
	if m == nil {
		return nil, matrixErrorf("Dense.MarshalYAML", ErrNilMatrix)
	}
	doc := denseDoc[T]{Rows: m.r, Cols: m.c}
	if m.data != nil && m.r*m.c > 0 {
		doc.Data = make([]yamlRow[T], m.r)
		for i := 0; i < m.r; i++ {
			doc.Data[i] = yamlRow[T](m.data[i*m.c : (i+1)*m.c])
		}
	}

	return doc, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
// Implementation:
//   - Stage 1: decode the node into denseDoc.
//   - Stage 2: validate rows/cols >= 0, that rows*cols fits in int, and that
//     data (when present) is exactly rows×cols.
//   - Stage 3: replace m's shape and storage.
//
// Errors:
//   - yaml decode errors; ErrInvalidDimensions; ErrDimensionMismatch.
//     On error m is left unchanged.
func (m *Dense[T]) UnmarshalYAML(value *yaml.Node) error {
	var doc struct {
		Rows int   `yaml:"rows"`
		Cols int   `yaml:"cols"`
		Data [][]T `yaml:"data"`
	}
	if err := value.Decode(&doc); err != nil {
		return err
	}
	cells, err := cellCount(doc.Rows, doc.Cols)
	if err != nil {
		return matrixErrorf("Dense.UnmarshalYAML", err)
	}

	var buf []T
	switch {
	case doc.Data == nil && cells > 0:
		// descriptor-only document
	case doc.Data == nil:
		buf = make([]T, 0)
	default:
		if len(doc.Data) != doc.Rows {
			return matrixErrorf("Dense.UnmarshalYAML",
				fmt.Errorf("%d data rows for rows=%d: %w", len(doc.Data), doc.Rows, ErrDimensionMismatch))
		}
		buf = make([]T, 0, cells)
		for i, row := range doc.Data {
			if len(row) != doc.Cols {
				return matrixErrorf("Dense.UnmarshalYAML",
					fmt.Errorf("row %d has %d cells for cols=%d: %w", i, len(row), doc.Cols, ErrDimensionMismatch))
			}
			buf = append(buf, row...)
		}
	}
	m.r, m.c, m.data = doc.Rows, doc.Cols, buf

	return nil
}

// EncodeYAML renders m as a YAML document.
// Errors: ErrNilMatrix; encoder errors wrapped with "EncodeYAML".
func EncodeYAML[T any](m *Dense[T], opts ...EncodeOption) ([]byte, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("EncodeYAML", err)
	}
	o := gatherEncodeOptions(opts...)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(o.indent)
	if err := enc.Encode(m); err != nil {
		return nil, matrixErrorf("EncodeYAML", err)
	}
	if err := enc.Close(); err != nil {
		return nil, matrixErrorf("EncodeYAML", err)
	}

	return buf.Bytes(), nil
}

// DecodeYAML parses a document produced by EncodeYAML (or written by hand).
// Errors: yaml syntax/type errors; ErrInvalidDimensions; ErrDimensionMismatch.
func DecodeYAML[T any](b []byte) (*Dense[T], error) {
	m := &Dense[T]{}
	if err := yaml.Unmarshal(b, m); err != nil {
		return nil, matrixErrorf("DecodeYAML", err)
	}

	return m, nil
}
