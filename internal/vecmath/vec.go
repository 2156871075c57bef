// Copyright 2026 The Flatseq Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package vecmath provides fixed-size vector and matrix kernels for
// dimensions 2 through 4. Values are plain fixed-arity arrays, not
// containers: a Vec3 is three scalars, a Mat4 is sixteen, column-major.
// The From/Store bridges connect them to the seq capability contract
// without allocation.
//
// All kernels are fully unrolled and evaluate terms in a fixed order,
// so results are reproducible across element types and call sites.
package vecmath

import (
	"math"

	"github.com/flatseq/flatseq/internal/seq"
)

// Fixed-arity vector values.
type (
	Vec2[T seq.Float] [2]T
	Vec3[T seq.Float] [3]T
	Vec4[T seq.Float] [4]T
)

// Vec2From reads two consecutive elements of s starting at `at`.
func Vec2From[T seq.Float](s seq.Sequence[T], at int) Vec2[T] {
	return Vec2[T]{s.At(at), s.At(at + 1)}
}

// Vec3From reads three consecutive elements of s starting at `at`.
func Vec3From[T seq.Float](s seq.Sequence[T], at int) Vec3[T] {
	return Vec3[T]{s.At(at), s.At(at + 1), s.At(at + 2)}
}

// Vec4From reads four consecutive elements of s starting at `at`.
func Vec4From[T seq.Float](s seq.Sequence[T], at int) Vec4[T] {
	return Vec4[T]{s.At(at), s.At(at + 1), s.At(at + 2), s.At(at + 3)}
}

// Store writes the components into dst starting at `at`.
func (v Vec2[T]) Store(dst seq.Mutable[T], at int) {
	dst.Set(at, v[0])
	dst.Set(at+1, v[1])
}

// Store writes the components into dst starting at `at`.
func (v Vec3[T]) Store(dst seq.Mutable[T], at int) {
	dst.Set(at, v[0])
	dst.Set(at+1, v[1])
	dst.Set(at+2, v[2])
}

// Store writes the components into dst starting at `at`.
func (v Vec4[T]) Store(dst seq.Mutable[T], at int) {
	dst.Set(at, v[0])
	dst.Set(at+1, v[1])
	dst.Set(at+2, v[2])
	dst.Set(at+3, v[3])
}

// Dot returns the inner product of v and w.
func (v Vec2[T]) Dot(w Vec2[T]) T { return v[0]*w[0] + v[1]*w[1] }

// Dot returns the inner product of v and w.
func (v Vec3[T]) Dot(w Vec3[T]) T { return v[0]*w[0] + v[1]*w[1] + v[2]*w[2] }

// Dot returns the inner product of v and w.
func (v Vec4[T]) Dot(w Vec4[T]) T { return v[0]*w[0] + v[1]*w[1] + v[2]*w[2] + v[3]*w[3] }

// Cross returns the 3-dimensional cross product of v and w.
func (v Vec3[T]) Cross(w Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// Length returns sqrt(v · v).
func (v Vec2[T]) Length() T { return T(math.Sqrt(float64(v.Dot(v)))) }

// Length returns sqrt(v · v).
func (v Vec3[T]) Length() T { return T(math.Sqrt(float64(v.Dot(v)))) }

// Length returns sqrt(v · v).
func (v Vec4[T]) Length() T { return T(math.Sqrt(float64(v.Dot(v)))) }

// Normalize returns v scaled to unit length. A zero-length vector
// fails with ErrDegenerateVector; no zero-vector fallback.
func (v Vec2[T]) Normalize() (Vec2[T], error) {
	l := v.Length()
	if l == 0 {
		return Vec2[T]{}, ErrDegenerateVector
	}
	return Vec2[T]{v[0] / l, v[1] / l}, nil
}

// Normalize returns v scaled to unit length. A zero-length vector
// fails with ErrDegenerateVector; no zero-vector fallback.
func (v Vec3[T]) Normalize() (Vec3[T], error) {
	l := v.Length()
	if l == 0 {
		return Vec3[T]{}, ErrDegenerateVector
	}
	return Vec3[T]{v[0] / l, v[1] / l, v[2] / l}, nil
}

// Normalize returns v scaled to unit length. A zero-length vector
// fails with ErrDegenerateVector; no zero-vector fallback.
func (v Vec4[T]) Normalize() (Vec4[T], error) {
	l := v.Length()
	if l == 0 {
		return Vec4[T]{}, ErrDegenerateVector
	}
	return Vec4[T]{v[0] / l, v[1] / l, v[2] / l, v[3] / l}, nil
}

// Scale returns v with every component multiplied by k.
func (v Vec2[T]) Scale(k T) Vec2[T] { return Vec2[T]{v[0] * k, v[1] * k} }

// Scale returns v with every component multiplied by k.
func (v Vec3[T]) Scale(k T) Vec3[T] { return Vec3[T]{v[0] * k, v[1] * k, v[2] * k} }

// Scale returns v with every component multiplied by k.
func (v Vec4[T]) Scale(k T) Vec4[T] { return Vec4[T]{v[0] * k, v[1] * k, v[2] * k, v[3] * k} }

// Add returns the componentwise sum of v and w.
func (v Vec2[T]) Add(w Vec2[T]) Vec2[T] { return Vec2[T]{v[0] + w[0], v[1] + w[1]} }

// Add returns the componentwise sum of v and w.
func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] { return Vec3[T]{v[0] + w[0], v[1] + w[1], v[2] + w[2]} }

// Add returns the componentwise sum of v and w.
func (v Vec4[T]) Add(w Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] + w[0], v[1] + w[1], v[2] + w[2], v[3] + w[3]}
}

// Sub returns the componentwise difference of v and w.
func (v Vec2[T]) Sub(w Vec2[T]) Vec2[T] { return Vec2[T]{v[0] - w[0], v[1] - w[1]} }

// Sub returns the componentwise difference of v and w.
func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] { return Vec3[T]{v[0] - w[0], v[1] - w[1], v[2] - w[2]} }

// Sub returns the componentwise difference of v and w.
func (v Vec4[T]) Sub(w Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] - w[0], v[1] - w[1], v[2] - w[2], v[3] - w[3]}
}
