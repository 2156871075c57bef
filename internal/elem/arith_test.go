// Copyright 2026 The Flatseq Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package elem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flatseq/flatseq/internal/seq"
)

func TestAddRanges(t *testing.T) {
	a := seq.Range[float64](1, 10, 1)
	b := seq.Range[float64](10, 1, -1)

	c, err := Add[float64](a, b)
	require.NoError(t, err)
	require.Equal(t, 10, c.Len())
	for i := 0; i < c.Len(); i++ {
		assert.Equal(t, 11.0, c.At(i))
	}
}

func TestBinaryOps(t *testing.T) {
	a := seq.Of[float64](10, 20, 30, 40)
	b := seq.Of[float64](2, 4, 5, 8)

	tests := []struct {
		name string
		op   func(x, y seq.Sequence[float64]) (seq.Mutable[float64], error)
		want []float64
	}{
		{"sub", Sub[float64], []float64{8, 16, 25, 32}},
		{"mul", Mul[float64], []float64{20, 80, 150, 320}},
		{"div", Div[float64], []float64{5, 5, 6, 5}},
		{"min", Min[float64], []float64{2, 4, 5, 8}},
		{"max", Max[float64], []float64{10, 20, 30, 40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op(a, b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, seq.Collect[float64](got))
		})
	}
}

func TestPow(t *testing.T) {
	a := seq.Of[float64](2, 3, 4)
	b := seq.Of[float64](3, 2, 0.5)
	got, err := Pow[float64](a, b)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{8, 9, 2}, seq.Collect[float64](got), 1e-12)
}

func TestLengthMismatch(t *testing.T) {
	a := seq.Of[float64](1, 2, 3)
	b := seq.Of[float64](1, 2)
	_, err := Add[float64](a, b)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestMissingOperand(t *testing.T) {
	a := seq.Of[float64](1)
	_, err := Add[float64](nil, a)
	assert.ErrorIs(t, err, ErrMissingArgument)
	_, err = Add[float64](a, nil)
	assert.ErrorIs(t, err, ErrMissingArgument)
	err = AddEx[float64](a, seq.Whole(), a, seq.Whole(), nil, 0)
	assert.ErrorIs(t, err, ErrMissingArgument)
}

// TestBroadcastConsistency: adding a constant must equal adding a
// filled sequence of that constant.
func TestBroadcastConsistency(t *testing.T) {
	a := seq.Of[float64](1.5, -2, 0, 42, 7.25)
	const k = 3.75

	viaConst, err := AddC(a, k)
	require.NoError(t, err)
	viaFill, err := Add[float64](a, Fill(k, a.Len()))
	require.NoError(t, err)

	same, err := AllEqual[float64](viaConst, viaFill)
	require.NoError(t, err)
	assert.True(t, same)
}

func TestScalarOps(t *testing.T) {
	a := seq.Of[float64](4, 8, 16)

	mul, err := MulC(a, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4, 8}, seq.Collect[float64](mul))

	sub, err := SubC(a, 4)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 4, 12}, seq.Collect[float64](sub))

	div, err := DivC(a, 4)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 4}, seq.Collect[float64](div))

	clampHi, err := MinC(a, 9)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 8, 9}, seq.Collect[float64](clampHi))

	clampLo, err := MaxC(a, 9)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 9, 16}, seq.Collect[float64](clampLo))

	pow, err := PowC(a, 2)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{16, 64, 256}, seq.Collect[float64](pow), 1e-12)
}

func TestExWithSpansAndOffset(t *testing.T) {
	a := seq.Of[int64](0, 1, 2, 3, 4, 5)
	b := seq.Of[int64](10, 20, 30)
	dst := seq.Make[int64](5)

	// a[2:5] + b[0:3] -> dst[1:4]
	err := AddEx[int64](a, seq.Span{Start: 2, Count: 3}, b, seq.Whole(), dst, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 12, 23, 34, 0}, seq.Collect[int64](dst))
}

func TestExInPlaceSameOffset(t *testing.T) {
	a := seq.Of[float64](1, 2, 3, 4)
	err := AddEx[float64](a, seq.Whole(), a, seq.Whole(), a, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4, 6, 8}, seq.Collect[float64](a))
}

func TestOpsOverViews(t *testing.T) {
	a := seq.Of[float64](1, 2, 3)
	r := seq.Reversed[float64](a)

	c, err := Add[float64](a, r)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 4, 4}, seq.Collect[float64](c))
}

func TestEqual(t *testing.T) {
	a := seq.Of[int32](1, 2, 3)
	b := seq.Of[int32](1, 5, 3)

	eq, err := Equal[int32](a, b)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, eq)

	all, err := AllEqual[int32](a, b)
	require.NoError(t, err)
	assert.False(t, all)

	all, err = AllEqual[int32](a, a)
	require.NoError(t, err)
	assert.True(t, all)

	_, err = Equal[int32](a, seq.Of[int32](1))
	assert.ErrorIs(t, err, ErrLengthMismatch)
}
