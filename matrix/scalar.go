// SPDX-License-Identifier: MIT

// Package matrix: ready-made element types.
//
// Purpose:
//   - Uint: unsigned integer scalar (zero = 0, one = 1).
//   - Complex: simplified complex number with unsigned components.
//
// Notes:
//   - Complex cannot represent negative parts; there is no Sub anywhere in the
//     package, so the restriction never produces an unrepresentable result.
//   - Both are plain values: copying a cell copies the element.
package matrix

import (
	"fmt"
	"strconv"
)

// Uint is an unsigned integer element.
type Uint uint

// Compile-time capability checks.
var (
	_ Adder[Uint]    = Uint(0)
	_ Unit[Uint]     = Uint(0)
	_ Adder[Complex] = Complex{}
	_ Unit[Complex]  = Complex{}
	_ fmt.Stringer   = Uint(0)
	_ fmt.Stringer   = Complex{}
)

// Zero returns 0.
func (Uint) Zero() Uint { return 0 }

// One returns 1.
func (Uint) One() Uint { return 1 }

// Add returns u + other (wraps on overflow, like uint).
func (u Uint) Add(other Uint) Uint { return u + other }

// String renders the decimal value.
func (u Uint) String() string { return strconv.FormatUint(uint64(u), 10) }

// Complex is a complex number restricted to non-negative integer parts.
type Complex struct {
	Real uint `yaml:"real"` // real part
	Img  uint `yaml:"img"`  // imaginary part
}

// Zero returns (0, 0).
func (Complex) Zero() Complex { return Complex{} }

// One returns (1, 0).
func (Complex) One() Complex { return Complex{Real: 1} }

// Add sums componentwise.
func (z Complex) Add(other Complex) Complex {
	return Complex{Real: z.Real + other.Real, Img: z.Img + other.Img}
}

// String renders "(real, img)".
func (z Complex) String() string {
	return fmt.Sprintf("(%d, %d)", z.Real, z.Img)
}
