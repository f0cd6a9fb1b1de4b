// Package gmat is a small, dependency-light home for typed 2-D numeric arrays.
//
// 🚀 What is gmat?
//
//	A generic dense matrix that works over any element type able to name its
//	own zero:
//		• Construction: zero-filled, identity, from rows, or shape-only
//		• Arithmetic: elementwise addition with shape checks
//		• Display: a fixed, parseable text rendering
//		• Encoding: YAML documents for fixtures and snapshots
//
// Layout:
//
//	matrix/   : Dense[T], element capabilities, Uint & Complex scalars
//	examples/ : runnable walkthroughs
//
//	go get github.com/katalvlaran/gmat/matrix
package gmat
