// Copyright 2026 The Flatseq Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package seq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readOnly wraps a sequence, hiding any write capability.
type readOnly[T Elem] struct {
	s Sequence[T]
}

func (r readOnly[T]) Len() int   { return r.s.Len() }
func (r readOnly[T]) At(i int) T { return r.s.At(i) }

func TestReversed(t *testing.T) {
	a := Of[int32](1, 2, 3)
	r := Reversed[int32](a)

	assert.Equal(t, []int32{3, 2, 1}, Collect[int32](r))
	assert.Equal(t, []int32{1, 2, 3}, Collect[int32](Reversed[int32](r)), "reverse twice restores order")

	r.Set(0, 9) // logical front of the view is the back of the array
	assert.Equal(t, int32(9), a.At(2))
}

func TestReversedReadOnly(t *testing.T) {
	r := Reversed[int32](readOnly[int32]{Of[int32](1, 2, 3)})
	assert.Equal(t, int32(3), r.At(0))
	assert.PanicsWithError(t, ErrReadOnly.Error(), func() { r.Set(0, 9) })
}

func TestStrided(t *testing.T) {
	a := Of[float64](0, 1, 2, 3, 4, 5, 6, 7)

	every2 := Strided[float64](a, 0, 2, 4)
	assert.Equal(t, []float64{0, 2, 4, 6}, Collect[float64](every2))

	backwards := Strided[float64](a, 7, -3, 3)
	assert.Equal(t, []float64{7, 4, 1}, Collect[float64](backwards))

	every2.Set(1, 20)
	assert.Equal(t, 20.0, a.At(2))
}

func TestStridedLazyBounds(t *testing.T) {
	a := Of[float64](0, 1, 2)
	// Construction succeeds even though element 2 would land outside.
	v := Strided[float64](a, 0, 2, 3)
	assert.Equal(t, 2.0, v.At(1))
	assert.Panics(t, func() { v.At(2) })
	assert.Panics(t, func() { v.At(-1) })
}

func TestStridedGrownSource(t *testing.T) {
	a := Of[float64](0, 1, 2)
	v := Strided[float64](&a, 0, 2, 3)
	assert.Panics(t, func() { v.At(2) })

	a.Append(3, 4)
	assert.Equal(t, 4.0, v.At(2), "bounds are validated against the current source length")
}

func TestJoined(t *testing.T) {
	a := Of[int64](1, 2)
	b := Of[int64](3, 4, 5)
	j := Joined[int64](a, b)

	require.Equal(t, 5, j.Len())
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, Collect[int64](j))

	j.Set(0, 10)
	j.Set(4, 50)
	assert.Equal(t, int64(10), a.At(0))
	assert.Equal(t, int64(50), b.At(2))
}

func TestJoinedReadOnlySide(t *testing.T) {
	a := Of[int64](1, 2)
	j := Joined[int64](readOnly[int64]{a}, Of[int64](3))
	assert.PanicsWithError(t, ErrReadOnly.Error(), func() { j.Set(1, 9) })
	j.Set(2, 9) // the writable side still accepts writes
}

func TestField(t *testing.T) {
	// x,y,z interleaved records.
	soa := Of[float32](1, 10, 100, 2, 20, 200, 3, 30, 300)

	xs := Field[float32](soa, 0, 3)
	ys := Field[float32](soa, 1, 3)
	zs := Field[float32](soa, 2, 3)

	assert.Equal(t, []float32{1, 2, 3}, Collect[float32](xs))
	assert.Equal(t, []float32{10, 20, 30}, Collect[float32](ys))
	assert.Equal(t, []float32{100, 200, 300}, Collect[float32](zs))

	ys.Set(1, 25)
	assert.Equal(t, float32(25), soa.At(4))

	assert.Panics(t, func() { Field[float32](soa, 3, 3) })
	assert.Panics(t, func() { Field[float32](soa, 0, 0) })
}

func TestViewsCompose(t *testing.T) {
	a := Of[int32](0, 1, 2, 3, 4, 5)
	// Every second element, then reversed: 0,2,4 -> 4,2,0.
	v := Reversed[int32](Strided[int32](a, 0, 2, 3))
	assert.Equal(t, []int32{4, 2, 0}, Collect[int32](v))

	v.Set(0, 40)
	assert.Equal(t, int32(40), a.At(4))
}
