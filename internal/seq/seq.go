// Copyright 2026 The Flatseq Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package seq defines the container capability contract shared by the
// whole library: indexed read, indexed write, and a length query.
// Anything satisfying the contract, whether an owned Array, a
// zero-copy view, or caller-supplied storage, can flow through the
// elementwise engine unchanged.
package seq

// Elem is a constraint for supported element types.
// Every container holds exactly one element type for the duration of
// an operation.
type Elem interface {
	~float32 | ~float64 | ~int32 | ~int64
}

// Float is the subset of Elem with real-number semantics.
// Operations that need sqrt or pow are constrained to Float.
type Float interface {
	~float32 | ~float64
}

// Sequence is the minimal read contract: a fixed-order run of elements
// indexable 0..Len()-1. Access outside that range panics, like a Go
// slice.
type Sequence[T Elem] interface {
	// Len reports the number of addressable elements. O(1).
	Len() int
	// At returns the element at position i.
	At(i int) T
}

// Mutable is a Sequence that also accepts indexed writes.
// Destinations of engine operations must be Mutable.
type Mutable[T Elem] interface {
	Sequence[T]
	// Set stores v at position i.
	Set(i int, v T)
}

// Growable is a Mutable sequence whose backing storage can be
// extended in place. Only *Array satisfies this in the library itself;
// views and adapters are fixed-length.
type Growable[T Elem] interface {
	Mutable[T]
	// Append extends the sequence with vs.
	Append(vs ...T)
}

// Collect copies s into a plain Go slice.
func Collect[T Elem](s Sequence[T]) []T {
	if s == nil {
		return nil
	}
	out := make([]T, s.Len())
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}
