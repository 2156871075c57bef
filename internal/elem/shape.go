// Copyright 2026 The Flatseq Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package elem

import "fmt"

// Shape is an ordered list of positive dimension extents. Data under a
// shape is row-major: the last dimension varies fastest.
type Shape []int

// NumElements returns the product of the dimensions. An empty shape
// holds one (scalar) element.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate reports whether every dimension is positive.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: dimension %d is %d", ErrShapeMismatch, i, dim)
		}
	}
	return nil
}

// Equal reports whether two shapes match dimension for dimension.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	copy(out, s)
	return out
}

// strides returns the row-major stride of each dimension.
func (s Shape) strides() []int {
	out := make([]int, len(s))
	if len(s) == 0 {
		return out
	}
	out[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		out[i] = out[i+1] * s[i+1]
	}
	return out
}
