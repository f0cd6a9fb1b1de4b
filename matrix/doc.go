// Package matrix provides a generic, row-major dense matrix container.
//
// The matrix package provides:
//
//   - Dense[T], a rectangular grid of any element type with safe accessors
//     (At/Set never panic; they return ErrOutOfRange or ErrUninitialized).
//   - Capability constraints (Zeroer, Oner, Adder, Unit) that each operation
//     requests from its element type, so a construction-only caller never
//     needs arithmetic.
//   - Ready-made elements: Uint and an unsigned Complex.
//   - Elementwise Add/AddInPlace with explicit shape checks.
//   - A fixed text rendering (WriteTo/String, ParseHeader) and a YAML codec.
//
// Construction comes in two flavors. NewZeros, NewIdentity and NewFromRows
// return a materialized matrix. New and NewSquare only record a shape; such a
// descriptor-only matrix rejects every access until Fill materializes it.
//
// See the examples in this package for usage patterns.
package matrix
