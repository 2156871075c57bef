// Copyright 2026 The Flatseq Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package seq

import "fmt"

// Views are zero-copy sequences that remap indices onto an underlying
// sequence. They never own data and never cache lengths: bounds are
// validated lazily at access time, so a view stays correct when its
// source grows after construction. Views compose freely; a view over
// a view only stacks index transforms.
//
// Every view satisfies Mutable. Writing through a view whose source
// (or selected source, for Joined) is not Mutable panics with
// ErrReadOnly.

// Reversed returns a view of s in back-to-front order.
func Reversed[T Elem](s Sequence[T]) Mutable[T] { return reversed[T]{s} }

type reversed[T Elem] struct {
	src Sequence[T]
}

func (v reversed[T]) Len() int { return v.src.Len() }

func (v reversed[T]) At(i int) T { return v.src.At(v.src.Len() - 1 - i) }

func (v reversed[T]) Set(i int, x T) {
	m, ok := v.src.(Mutable[T])
	if !ok {
		panic(ErrReadOnly)
	}
	m.Set(v.src.Len()-1-i, x)
}

// Strided returns a count-element view of s starting at base and
// advancing by stride per element. Stride may be negative. Positions
// that fall outside s are caught on access, not at construction.
func Strided[T Elem](s Sequence[T], base, stride, count int) Mutable[T] {
	if stride == 0 {
		panic("seq: zero stride")
	}
	if count < 0 {
		panic(fmt.Sprintf("seq: negative view length %d", count))
	}
	return strided[T]{s, base, stride, count}
}

type strided[T Elem] struct {
	src    Sequence[T]
	base   int
	stride int
	count  int
}

func (v strided[T]) Len() int { return v.count }

func (v strided[T]) index(i int) int {
	if i < 0 || i >= v.count {
		panic(fmt.Errorf("%w: index %d in strided view of length %d", ErrOutOfRange, i, v.count))
	}
	j := v.base + i*v.stride
	if j < 0 || j >= v.src.Len() {
		panic(fmt.Errorf("%w: strided position %d in sequence of length %d", ErrOutOfRange, j, v.src.Len()))
	}
	return j
}

func (v strided[T]) At(i int) T { return v.src.At(v.index(i)) }

func (v strided[T]) Set(i int, x T) {
	m, ok := v.src.(Mutable[T])
	if !ok {
		panic(ErrReadOnly)
	}
	m.Set(v.index(i), x)
}

// Joined returns a view concatenating a followed by b. Reads delegate
// to whichever source holds the position; writes require that source
// to be Mutable.
func Joined[T Elem](a, b Sequence[T]) Mutable[T] { return joined[T]{a, b} }

type joined[T Elem] struct {
	a, b Sequence[T]
}

func (v joined[T]) Len() int { return v.a.Len() + v.b.Len() }

func (v joined[T]) At(i int) T {
	n := v.a.Len()
	if i < n {
		return v.a.At(i)
	}
	return v.b.At(i - n)
}

func (v joined[T]) Set(i int, x T) {
	src := v.a
	if n := v.a.Len(); i >= n {
		src, i = v.b, i-n
	}
	m, ok := src.(Mutable[T])
	if !ok {
		panic(ErrReadOnly)
	}
	m.Set(i, x)
}

// Field returns an interleaved stride-group view: element number field
// of every width-sized record in s. This is the structure-of-arrays
// access pattern: Field(s, 1, 3) over xyzxyz... yields the y run.
func Field[T Elem](s Sequence[T], field, width int) Mutable[T] {
	if width <= 0 {
		panic(fmt.Sprintf("seq: record width %d", width))
	}
	if field < 0 || field >= width {
		panic(fmt.Sprintf("seq: field %d in record of width %d", field, width))
	}
	return strided[T]{s, field, width, fieldLen(s.Len(), field, width)}
}

func fieldLen(n, field, width int) int {
	if field >= n {
		return 0
	}
	return (n - field + width - 1) / width
}
