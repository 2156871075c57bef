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

func TestCopyIdempotent(t *testing.T) {
	a := seq.Of[float64](3, 1, 4, 1, 5)

	once, err := Copy[float64](a)
	require.NoError(t, err)
	twice, err := Copy[float64](once)
	require.NoError(t, err)

	same, err := AllEqual[float64](once, twice)
	require.NoError(t, err)
	assert.True(t, same)

	once.Set(0, 99)
	assert.Equal(t, 3.0, a.At(0), "copy must not share storage")
}

func TestFill(t *testing.T) {
	f := Fill(int32(7), 4)
	assert.Equal(t, []int32{7, 7, 7, 7}, seq.Collect[int32](f))

	dst := seq.Make[int32](5)
	require.NoError(t, FillEx(int32(1), dst, 1, 3))
	assert.Equal(t, []int32{0, 1, 1, 1, 0}, seq.Collect[int32](dst))
}

func TestReverse(t *testing.T) {
	a := seq.Of[int32](1, 2, 3)

	r, err := Reverse[int32](a)
	require.NoError(t, err)
	assert.Equal(t, []int32{3, 2, 1}, seq.Collect[int32](r))

	rr, err := Reverse[int32](r)
	require.NoError(t, err)
	same, err := AllEqual[int32](a, rr)
	require.NoError(t, err)
	assert.True(t, same, "reverse twice restores the original")
}

func TestReverseExInPlace(t *testing.T) {
	a := seq.Of[float64](1, 2, 3, 4, 5)
	require.NoError(t, ReverseEx[float64](a, seq.Whole(), a, 0))
	assert.Equal(t, []float64{5, 4, 3, 2, 1}, seq.Collect[float64](a))

	// Reverse a middle span onto itself.
	b := seq.Of[float64](0, 1, 2, 3, 0)
	require.NoError(t, ReverseEx[float64](b, seq.Span{Start: 1, Count: 3}, b, 1))
	assert.Equal(t, []float64{0, 3, 2, 1, 0}, seq.Collect[float64](b))
}

func TestJoin(t *testing.T) {
	a := seq.Of[int64](1, 2, 3)
	b := seq.Of[int64](4, 5, 6)

	j, err := Join[int64](a, b)
	require.NoError(t, err)
	require.Equal(t, a.Len()+b.Len(), j.Len())
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6}, seq.Collect[int64](j))

	for i := 0; i < j.Len(); i++ {
		if i < a.Len() {
			assert.Equal(t, a.At(i), j.At(i))
		} else {
			assert.Equal(t, b.At(i-a.Len()), j.At(i))
		}
	}
}

func TestJoinExOverlap(t *testing.T) {
	// Join the two halves of dst into dst itself, swapped.
	dst := seq.Of[int32](1, 2, 3, 4)
	err := JoinEx[int32](dst, seq.Span{Start: 2, Count: 2}, dst, seq.Span{Start: 0, Count: 2}, dst, 0)
	require.NoError(t, err)
	assert.Equal(t, []int32{3, 4, 1, 2}, seq.Collect[int32](dst))
}

func TestAppend(t *testing.T) {
	dst := seq.Of[float32](1, 2)
	require.NoError(t, Append[float32](&dst, seq.Of[float32](3, 4)))
	assert.Equal(t, []float32{1, 2, 3, 4}, seq.Collect[float32](dst))
}

func TestAppendSelf(t *testing.T) {
	dst := seq.Of[int32](1, 2)
	require.NoError(t, Append[int32](&dst, &dst))
	assert.Equal(t, []int32{1, 2, 1, 2}, seq.Collect[int32](dst))
}

func TestAppendNotGrowable(t *testing.T) {
	a := seq.Of[float32](1, 2, 3)

	err := Append[float32](a, seq.Of[float32](4))
	assert.ErrorIs(t, err, ErrNotGrowable, "a value Array has no growable backing reference")

	err = Append[float32](seq.Reversed[float32](a), seq.Of[float32](4))
	assert.ErrorIs(t, err, ErrNotGrowable, "views are fixed length")
}
