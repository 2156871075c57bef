// Copyright 2026 The Flatseq Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package seq provides the public API for flatseq containers: the
// capability contract, the built-in Array, span resolution, zero-copy
// views, and the allocation hook.
//
// The package defines the structural contract every container in the
// library satisfies:
//   - Sequence[T]: indexed read plus length
//   - Mutable[T]: Sequence plus indexed write
//   - Growable[T]: Mutable plus in-place growth
//
// Example:
//
//	a := seq.Of[float64](1, 2, 3, 4)
//	r := seq.Reversed[float64](a) // zero-copy view: 4, 3, 2, 1
//	sum, _ := elem.Add[float64](a, r)
package seq

import (
	"github.com/flatseq/flatseq/internal/seq"
)

// Type aliases for the public API.

// Elem is the constraint for supported element types.
type Elem = seq.Elem

// Float is the subset of Elem with real-number semantics.
type Float = seq.Float

// Sequence is the minimal read contract: Len and At.
type Sequence[T Elem] = seq.Sequence[T]

// Mutable is a Sequence that also accepts indexed writes.
type Mutable[T Elem] = seq.Mutable[T]

// Growable is a Mutable whose backing storage can grow in place.
type Growable[T Elem] = seq.Growable[T]

// Array is the built-in owned container, a flat homogeneous slice.
type Array[T Elem] = seq.Array[T]

// Span selects a contiguous run of a sequence, resolved at call time.
type Span = seq.Span

// Kind is runtime element-type information for allocation factories.
type Kind = seq.Kind

// Factory produces backing storage for freshly allocated results.
type Factory = seq.Factory

// All as a Span.Count selects everything from Start onwards.
const All = seq.All

// Element kinds recognized by the allocator.
const (
	Invalid Kind = seq.Invalid
	Float32 Kind = seq.Float32
	Float64 Kind = seq.Float64
	Int32   Kind = seq.Int32
	Int64   Kind = seq.Int64
)

// Errors.
var (
	// ErrOutOfRange indicates a span or index outside its sequence.
	ErrOutOfRange = seq.ErrOutOfRange
	// ErrReadOnly indicates a write through a read-only view.
	ErrReadOnly = seq.ErrReadOnly
)

// Construction.

// Make allocates a zero-filled Array of length n.
func Make[T Elem](n int) Array[T] { return seq.Make[T](n) }

// Of builds an Array from individual values.
//
// Example:
//
//	a := seq.Of[int32](1, 2, 3)
func Of[T Elem](vs ...T) Array[T] { return seq.Of(vs...) }

// FromSlice wraps an existing slice without copying.
func FromSlice[T Elem](data []T) Array[T] { return seq.FromSlice(data) }

// Range builds an Array counting from start towards stop inclusive.
// A negative step counts down.
//
// Example:
//
//	seq.Range[float64](1, 10, 1)   // 1, 2, ..., 10
//	seq.Range[float64](10, 1, -1)  // 10, 9, ..., 1
func Range[T Elem](start, stop, step T) Array[T] { return seq.Range(start, stop, step) }

// Collect copies s into a plain Go slice.
func Collect[T Elem](s Sequence[T]) []T { return seq.Collect(s) }

// Spans.

// Whole spans an entire sequence.
func Whole() Span { return seq.Whole() }

// From spans everything from start to the end of the sequence.
func From(start int) Span { return seq.From(start) }

// Allocation hook.

// SetFactory installs the process-wide allocation hook. Set it once
// during initialization, before any concurrent use; nil restores the
// built-in Array allocator.
func SetFactory(f Factory) { seq.SetFactory(f) }

// Alloc materializes a fresh container of length n through the hook.
func Alloc[T Elem](n int) Mutable[T] { return seq.Alloc[T](n) }

// KindOf maps a compile-time element type to its runtime Kind.
func KindOf[T Elem]() Kind { return seq.KindOf[T]() }

// Views.

// Reversed returns a zero-copy view of s in back-to-front order.
func Reversed[T Elem](s Sequence[T]) Mutable[T] { return seq.Reversed(s) }

// Strided returns a count-element view of s starting at base and
// advancing by stride per element.
//
// Example:
//
//	xyz := seq.Of[float32](x0, y0, z0, x1, y1, z1)
//	xs := seq.Strided[float32](xyz, 0, 3, 2) // x0, x1
func Strided[T Elem](s Sequence[T], base, stride, count int) Mutable[T] {
	return seq.Strided(s, base, stride, count)
}

// Joined returns a zero-copy view concatenating a followed by b.
func Joined[T Elem](a, b Sequence[T]) Mutable[T] { return seq.Joined(a, b) }

// Field returns an interleaved view of element `field` of every
// width-sized record in s (structure-of-arrays access).
func Field[T Elem](s Sequence[T], field, width int) Mutable[T] {
	return seq.Field(s, field, width)
}
