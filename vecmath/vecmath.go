// Copyright 2026 The Flatseq Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package vecmath is the public API for the fixed-size linear-algebra
// kernels: vectors and square matrices of dimension 2 through 4.
// Values are fixed-arity arrays rather than containers; matrices are
// flat and column-major. The From constructors and Store methods
// bridge to the seq capability contract without allocation.
//
// Example:
//
//	v := vecmath.Vec3[float64]{3, 4, 0}
//	u, _ := v.Normalize() // {0.6, 0.8, 0}
//	m := vecmath.Identity2[float64]().Mul(vecmath.Mat2[float64]{1, 2, 3, 4})
package vecmath

import (
	"github.com/flatseq/flatseq/internal/vecmath"
	"github.com/flatseq/flatseq/seq"
)

// Fixed-arity value types.
type (
	// Vec2 is a 2-component vector.
	Vec2[T seq.Float] = vecmath.Vec2[T]
	// Vec3 is a 3-component vector.
	Vec3[T seq.Float] = vecmath.Vec3[T]
	// Vec4 is a 4-component vector.
	Vec4[T seq.Float] = vecmath.Vec4[T]
	// Mat2 is a 2×2 matrix, flat column-major.
	Mat2[T seq.Float] = vecmath.Mat2[T]
	// Mat3 is a 3×3 matrix, flat column-major.
	Mat3[T seq.Float] = vecmath.Mat3[T]
	// Mat4 is a 4×4 matrix, flat column-major.
	Mat4[T seq.Float] = vecmath.Mat4[T]
)

// Errors and tolerances.
var (
	// ErrDegenerateVector indicates a normalize of a zero-length vector.
	ErrDegenerateVector = vecmath.ErrDegenerateVector
	// ErrSingularMatrix indicates an inverse of a near-singular matrix.
	ErrSingularMatrix = vecmath.ErrSingularMatrix
)

// Epsilon is the singularity threshold on determinant magnitude.
const Epsilon = vecmath.Epsilon

// Identity2 returns the 2×2 identity matrix.
func Identity2[T seq.Float]() Mat2[T] { return vecmath.Identity2[T]() }

// Identity3 returns the 3×3 identity matrix.
func Identity3[T seq.Float]() Mat3[T] { return vecmath.Identity3[T]() }

// Identity4 returns the 4×4 identity matrix.
func Identity4[T seq.Float]() Mat4[T] { return vecmath.Identity4[T]() }

// Vec2From reads two consecutive elements of s starting at `at`.
func Vec2From[T seq.Float](s seq.Sequence[T], at int) Vec2[T] { return vecmath.Vec2From(s, at) }

// Vec3From reads three consecutive elements of s starting at `at`.
func Vec3From[T seq.Float](s seq.Sequence[T], at int) Vec3[T] { return vecmath.Vec3From(s, at) }

// Vec4From reads four consecutive elements of s starting at `at`.
func Vec4From[T seq.Float](s seq.Sequence[T], at int) Vec4[T] { return vecmath.Vec4From(s, at) }

// Mat2From reads four consecutive elements of s starting at `at`.
func Mat2From[T seq.Float](s seq.Sequence[T], at int) Mat2[T] { return vecmath.Mat2From(s, at) }

// Mat3From reads nine consecutive elements of s starting at `at`.
func Mat3From[T seq.Float](s seq.Sequence[T], at int) Mat3[T] { return vecmath.Mat3From(s, at) }

// Mat4From reads sixteen consecutive elements of s starting at `at`.
func Mat4From[T seq.Float](s seq.Sequence[T], at int) Mat4[T] { return vecmath.Mat4From(s, at) }
