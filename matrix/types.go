// SPDX-License-Identifier: MIT

// Package matrix: element capabilities.
// This file contains ONLY the constraint interfaces an element type may
// implement. The container itself is Dense[T any]; each operation asks for
// exactly the capabilities it uses, so construction-only callers never need
// arithmetic and vice versa.
package matrix

// Zeroer is implemented by element types that can name their additive identity.
// Zero must be pure: repeated calls return equal values, and the receiver's
// own value is ignored (it is invoked on the zero value of T).
type Zeroer[T any] interface {
	Zero() T
}

// Oner is implemented by element types that can name their multiplicative identity.
// Same purity contract as Zeroer.
type Oner[T any] interface {
	One() T
}

// Adder is the capability set required by elementwise addition:
// an additive identity to seed results, and a closed binary sum.
type Adder[T any] interface {
	Zeroer[T]

	// Add returns receiver + other without mutating either value.
	Add(other T) T
}

// Unit is the capability set required to build identity matrices.
type Unit[T any] interface {
	Zeroer[T]
	Oner[T]
}

// zeroOf returns T's additive identity.
func zeroOf[T Zeroer[T]]() T {
	var t T
	return t.Zero()
}

// oneOf returns T's multiplicative identity.
func oneOf[T Oner[T]]() T {
	var t T
	return t.One()
}
