// Copyright 2026 The Flatseq Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package seq

import "fmt"

// Array is the built-in owned container: a flat, homogeneously typed
// Go slice. An Array value satisfies Mutable; a *Array additionally
// satisfies Growable.
type Array[T Elem] []T

// Len returns the number of elements.
func (a Array[T]) Len() int { return len(a) }

// At returns the element at position i.
func (a Array[T]) At(i int) T { return a[i] }

// Set stores v at position i.
func (a Array[T]) Set(i int, v T) { a[i] = v }

// Append extends the array in place.
func (a *Array[T]) Append(vs ...T) { *a = append(*a, vs...) }

// Make allocates a zero-filled Array of length n.
func Make[T Elem](n int) Array[T] {
	if n < 0 {
		panic(fmt.Sprintf("seq: negative length %d", n))
	}
	return make(Array[T], n)
}

// Of builds an Array from individual values.
func Of[T Elem](vs ...T) Array[T] {
	out := make(Array[T], len(vs))
	copy(out, vs)
	return out
}

// FromSlice wraps an existing slice without copying. The Array shares
// the slice's backing store.
func FromSlice[T Elem](data []T) Array[T] { return Array[T](data) }

// Range builds an Array counting from start towards stop inclusive,
// one element per step. A negative step counts down. Range(1, 10, 1)
// is {1..10}; Range(10, 1, -1) is {10..1}.
func Range[T Elem](start, stop, step T) Array[T] {
	if step == 0 {
		panic("seq: zero step")
	}
	var out Array[T]
	if step > 0 {
		for v := start; v <= stop; v += step {
			out = append(out, v)
		}
	} else {
		for v := start; v >= stop; v += step {
			out = append(out, v)
		}
	}
	return out
}
