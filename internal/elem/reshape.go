// Copyright 2026 The Flatseq Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package elem

import (
	"fmt"

	"github.com/flatseq/flatseq/internal/seq"
)

// Shaped is a flat sequence carrying a multi-dimensional shape. The
// data is an owned row-major copy of whatever it was reshaped from.
// Shaped satisfies seq.Mutable over its flat layout, so a Shaped can
// feed straight back into the engine (including another Reshape).
type Shaped[T seq.Elem] struct {
	data  seq.Array[T]
	shape Shape
}

// Reshape copies s into a fresh Shaped with the requested shape. The
// shape's element count must equal the source length, else
// ErrShapeMismatch. Reshape is a copy, not a view.
func Reshape[T seq.Elem](s seq.Sequence[T], shape Shape) (*Shaped[T], error) {
	if s == nil {
		return nil, missing("source sequence")
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if want, have := shape.NumElements(), s.Len(); want != have {
		return nil, fmt.Errorf("%w: shape %v holds %d elements, source has %d", ErrShapeMismatch, shape, want, have)
	}
	data := seq.Make[T](s.Len())
	for i := range data {
		data[i] = s.At(i)
	}
	return &Shaped[T]{data: data, shape: shape.Clone()}, nil
}

// Shape returns the shape. Callers must not mutate it.
func (sh *Shaped[T]) Shape() Shape { return sh.shape }

// Len returns the total element count of the flat layout.
func (sh *Shaped[T]) Len() int { return len(sh.data) }

// At returns the element at flat row-major position i.
func (sh *Shaped[T]) At(i int) T { return sh.data[i] }

// Set stores v at flat row-major position i.
func (sh *Shaped[T]) Set(i int, v T) { sh.data[i] = v }

// Index returns the element at the given multi-dimensional position.
// The number of indices must equal the rank.
func (sh *Shaped[T]) Index(idx ...int) T {
	if len(idx) != len(sh.shape) {
		panic(fmt.Sprintf("elem: %d indices for rank-%d shape %v", len(idx), len(sh.shape), sh.shape))
	}
	flat := 0
	for d, stride := range sh.shape.strides() {
		if idx[d] < 0 || idx[d] >= sh.shape[d] {
			panic(fmt.Sprintf("elem: index %d out of range for dimension %d of shape %v", idx[d], d, sh.shape))
		}
		flat += idx[d] * stride
	}
	return sh.data[flat]
}

// Rows materializes a rank-2 Shaped as nested slices, row by row.
// Panics for any other rank.
func (sh *Shaped[T]) Rows() [][]T {
	if len(sh.shape) != 2 {
		panic(fmt.Sprintf("elem: Rows on rank-%d shape %v", len(sh.shape), sh.shape))
	}
	rows, cols := sh.shape[0], sh.shape[1]
	out := make([][]T, rows)
	for r := 0; r < rows; r++ {
		row := make([]T, cols)
		copy(row, sh.data[r*cols:(r+1)*cols])
		out[r] = row
	}
	return out
}

// Flatten returns the elements in row-major order in a fresh flat
// container, the inverse of Reshape.
func (sh *Shaped[T]) Flatten() (seq.Mutable[T], error) {
	return Copy[T](sh)
}

// FlattenEx writes the flat row-major elements into dst starting at
// `at`, without allocating.
func FlattenEx[T seq.Elem](sh *Shaped[T], dst seq.Mutable[T], at int) error {
	if sh == nil {
		return missing("shaped source")
	}
	return CopyEx[T](sh, seq.Whole(), dst, at)
}
