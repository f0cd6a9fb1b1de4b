// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the YAML encoder.
// This file defines:
//   - EncodeOption (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherEncodeOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "fmt"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultYAMLIndent is the number of spaces per nesting level in EncodeYAML output.
	DefaultYAMLIndent = 2

	// minYAMLIndent and maxYAMLIndent bound the emitter's accepted indentation.
	minYAMLIndent = 2
	maxYAMLIndent = 9
)

// ---------- Internal panic messages (no magic strings) ----------

const panicIndentInvalid = "matrix: WithIndent: spaces must be in [%d, %d], got %d"

// EncodeOption mutates internal encoder options. Safe to apply repeatedly.
type EncodeOption func(*encodeOptions)

// encodeOptions stores the effective configuration after applying setters.
type encodeOptions struct {
	indent int // DefaultYAMLIndent
}

// WithIndent sets the YAML indentation width.
// Panics when spaces is outside [2, 9], the range the YAML emitter honors.
func WithIndent(spaces int) EncodeOption {
	if spaces < minYAMLIndent || spaces > maxYAMLIndent {
		panic(fmt.Sprintf(panicIndentInvalid, minYAMLIndent, maxYAMLIndent, spaces))
	}

	return func(o *encodeOptions) { o.indent = spaces }
}

// gatherEncodeOptions applies opts over the defaults in order (last wins).
func gatherEncodeOptions(opts ...EncodeOption) encodeOptions {
	o := encodeOptions{indent: DefaultYAMLIndent}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
