// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for constructors/kernels.
//   • Provide failing io.Writer sinks for rendering tests.

package matrix_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gmat/matrix"
)

// errSink is the error every failing writer returns.
var errSink = errors.New("sink: write refused")

// MustZeros ALLOCATES an r×c zero matrix or fails the test (fatal on error).
// Works for tests and benchmarks alike.
func MustZeros[T matrix.Zeroer[T]](tb testing.TB, r, c int) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewZeros[T](r, c)
	if err != nil {
		tb.Fatalf("NewZeros(%d,%d): %v", r, c, err)
	}

	return m
}

// MustSet writes v at (i,j) or fails the test.
func MustSet[T any](tb testing.TB, m *matrix.Dense[T], i, j int, v T) {
	tb.Helper()
	if err := m.Set(i, j, v); err != nil {
		tb.Fatalf("Set(%d,%d): %v", i, j, err)
	}
}

// MustAt reads (i,j) or fails the test.
func MustAt[T any](tb testing.TB, m *matrix.Dense[T], i, j int) T {
	tb.Helper()
	v, err := m.At(i, j)
	if err != nil {
		tb.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RandomFillUint fills m with values in [0, limit) from a seeded source.
// Deterministic for a given seed.
func RandomFillUint(tb testing.TB, m *matrix.Dense[matrix.Uint], seed int64, limit int) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	r, c := m.Shape()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			MustSet(tb, m, i, j, matrix.Uint(rng.Intn(limit)))
		}
	}
}

// failAfterWriter accepts the first `ok` Write calls, then refuses with errSink.
type failAfterWriter struct {
	ok      int
	written []byte
}

func (w *failAfterWriter) Write(p []byte) (int, error) {
	if w.ok <= 0 {
		return 0, errSink
	}
	w.ok--
	w.written = append(w.written, p...)

	return len(p), nil
}
