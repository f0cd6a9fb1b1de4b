package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gmat/matrix"
)

// TestAddSumsBothOperands: scenario 66 + 21 at (5,2) yields 87, zeros elsewhere.
// A result of 21 would mean the left operand was dropped (regression).
func TestAddSumsBothOperands(t *testing.T) {
	m1 := MustZeros[matrix.Uint](t, 6, 6)
	m2 := MustZeros[matrix.Uint](t, 6, 6)
	MustSet(t, m1, 5, 2, 66)
	MustSet(t, m2, 5, 2, 21)

	res, err := matrix.Add(m1, m2)
	require.NoError(t, err)
	require.NotEqual(t, matrix.Uint(21), MustAt(t, res, 5, 2), "left operand was discarded")
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			want := matrix.Uint(0)
			if i == 5 && j == 2 {
				want = 87
			}
			require.Equal(t, want, MustAt(t, res, i, j), "cell (%d,%d)", i, j)
		}
	}

	// Operands are untouched and not aliased by the result.
	require.Equal(t, matrix.Uint(66), MustAt(t, m1, 5, 2))
	require.Equal(t, matrix.Uint(21), MustAt(t, m2, 5, 2))
	MustSet(t, res, 0, 0, 5)
	require.Equal(t, matrix.Uint(0), MustAt(t, m1, 0, 0))
}

// TestAddMatchesCellwiseSum compares Add with a hand-rolled sum on random data.
func TestAddMatchesCellwiseSum(t *testing.T) {
	a := MustZeros[matrix.Uint](t, 4, 7)
	b := MustZeros[matrix.Uint](t, 4, 7)
	RandomFillUint(t, a, 1337, 1000)
	RandomFillUint(t, b, 4242, 1000)

	sum, err := matrix.Sum(a, b)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 7; j++ {
			require.Equal(t, MustAt(t, a, i, j)+MustAt(t, b, i, j), MustAt(t, sum, i, j))
		}
	}
}

// TestAddComplex sums real and imaginary parts independently.
func TestAddComplex(t *testing.T) {
	a, err := matrix.NewFromRows([][]matrix.Complex{{{Real: 1, Img: 2}, {Real: 3}}})
	require.NoError(t, err)
	b, err := matrix.NewFromRows([][]matrix.Complex{{{Real: 10, Img: 20}, {Img: 4}}})
	require.NoError(t, err)

	res, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, "rows: 1, cols: 2\n(11, 22) (3, 4) \n", res.String())
}

// TestAddIdentityIsNeutralForZeros: I + 0 == I.
func TestAddIdentityIsNeutralForZeros(t *testing.T) {
	id, err := matrix.NewIdentity[matrix.Uint](4)
	require.NoError(t, err)
	zero, err := matrix.ZerosLike(id)
	require.NoError(t, err)

	res, err := matrix.Add(id, zero)
	require.NoError(t, err)
	require.True(t, matrix.Equal(id, res))
}

// TestAddRejectsBadOperands: checks run before any indexing.
func TestAddRejectsBadOperands(t *testing.T) {
	a := MustZeros[matrix.Uint](t, 6, 6)
	b := MustZeros[matrix.Uint](t, 5, 6)

	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "6x6 vs 5x6")

	_, err = matrix.Add(b, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	d, err := matrix.New[matrix.Uint](6, 6)
	require.NoError(t, err)
	_, err = matrix.Add(a, d)
	require.ErrorIs(t, err, matrix.ErrUninitialized)

	_, err = matrix.Add(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestAddInPlace accumulates into dst and leaves it untouched on error.
func TestAddInPlace(t *testing.T) {
	dst := MustZeros[matrix.Uint](t, 2, 2)
	src := MustZeros[matrix.Uint](t, 2, 2)
	MustSet(t, dst, 0, 1, 4)
	MustSet(t, src, 0, 1, 5)

	require.NoError(t, matrix.AddInPlace(dst, src))
	require.Equal(t, matrix.Uint(9), MustAt(t, dst, 0, 1))
	require.Equal(t, matrix.Uint(5), MustAt(t, src, 0, 1))

	require.NoError(t, matrix.AddInPlace(dst, dst))
	require.Equal(t, matrix.Uint(18), MustAt(t, dst, 0, 1))

	before := dst.Clone()
	err := matrix.AddInPlace(dst, MustZeros[matrix.Uint](t, 3, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.True(t, matrix.Equal(before, dst))
}

// TestEqual covers shape, storage state and nil handling.
func TestEqual(t *testing.T) {
	a := MustZeros[matrix.Uint](t, 2, 3)
	b := MustZeros[matrix.Uint](t, 2, 3)
	require.True(t, matrix.Equal(a, b))

	MustSet(t, b, 1, 1, 1)
	require.False(t, matrix.Equal(a, b))

	require.False(t, matrix.Equal(a, MustZeros[matrix.Uint](t, 3, 2)))

	d, err := matrix.New[matrix.Uint](2, 3)
	require.NoError(t, err)
	require.False(t, matrix.Equal(a, d))

	require.True(t, matrix.Equal[matrix.Uint](nil, nil))
	require.False(t, matrix.Equal(a, nil))
}
