// Copyright 2026 The Flatseq Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package vecmath

import (
	"math"

	"github.com/flatseq/flatseq/internal/seq"
)

// Matrices are flat fixed-arity values in column-major order: element
// (row r, col c) of an n×n matrix sits at flat position c*n + r. A
// Mat2 built from (1,2,3,4) therefore has columns (1,2) and (3,4).
type (
	Mat2[T seq.Float] [4]T
	Mat3[T seq.Float] [9]T
	Mat4[T seq.Float] [16]T
)

// Identity2 returns the 2×2 identity matrix.
func Identity2[T seq.Float]() Mat2[T] {
	return Mat2[T]{
		1, 0,
		0, 1,
	}
}

// Identity3 returns the 3×3 identity matrix.
func Identity3[T seq.Float]() Mat3[T] {
	return Mat3[T]{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Identity4 returns the 4×4 identity matrix.
func Identity4[T seq.Float]() Mat4[T] {
	return Mat4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat2From reads four consecutive elements of s starting at `at`.
func Mat2From[T seq.Float](s seq.Sequence[T], at int) Mat2[T] {
	var m Mat2[T]
	for i := range m {
		m[i] = s.At(at + i)
	}
	return m
}

// Mat3From reads nine consecutive elements of s starting at `at`.
func Mat3From[T seq.Float](s seq.Sequence[T], at int) Mat3[T] {
	var m Mat3[T]
	for i := range m {
		m[i] = s.At(at + i)
	}
	return m
}

// Mat4From reads sixteen consecutive elements of s starting at `at`.
func Mat4From[T seq.Float](s seq.Sequence[T], at int) Mat4[T] {
	var m Mat4[T]
	for i := range m {
		m[i] = s.At(at + i)
	}
	return m
}

// Store writes the flat column-major elements into dst starting at `at`.
func (m Mat2[T]) Store(dst seq.Mutable[T], at int) {
	for i, v := range m {
		dst.Set(at+i, v)
	}
}

// Store writes the flat column-major elements into dst starting at `at`.
func (m Mat3[T]) Store(dst seq.Mutable[T], at int) {
	for i, v := range m {
		dst.Set(at+i, v)
	}
}

// Store writes the flat column-major elements into dst starting at `at`.
func (m Mat4[T]) Store(dst seq.Mutable[T], at int) {
	for i, v := range m {
		dst.Set(at+i, v)
	}
}

// Mul returns the matrix product m × n, column-major.
func (m Mat2[T]) Mul(n Mat2[T]) Mat2[T] {
	return Mat2[T]{
		m[0]*n[0] + m[2]*n[1],
		m[1]*n[0] + m[3]*n[1],
		m[0]*n[2] + m[2]*n[3],
		m[1]*n[2] + m[3]*n[3],
	}
}

// Mul returns the matrix product m × n, column-major.
func (m Mat3[T]) Mul(n Mat3[T]) Mat3[T] {
	return Mat3[T]{
		m[0]*n[0] + m[3]*n[1] + m[6]*n[2],
		m[1]*n[0] + m[4]*n[1] + m[7]*n[2],
		m[2]*n[0] + m[5]*n[1] + m[8]*n[2],
		m[0]*n[3] + m[3]*n[4] + m[6]*n[5],
		m[1]*n[3] + m[4]*n[4] + m[7]*n[5],
		m[2]*n[3] + m[5]*n[4] + m[8]*n[5],
		m[0]*n[6] + m[3]*n[7] + m[6]*n[8],
		m[1]*n[6] + m[4]*n[7] + m[7]*n[8],
		m[2]*n[6] + m[5]*n[7] + m[8]*n[8],
	}
}

// Mul returns the matrix product m × n, column-major.
func (m Mat4[T]) Mul(n Mat4[T]) Mat4[T] {
	var out Mat4[T]
	for c := 0; c < 4; c++ {
		out[c*4+0] = m[0]*n[c*4+0] + m[4]*n[c*4+1] + m[8]*n[c*4+2] + m[12]*n[c*4+3]
		out[c*4+1] = m[1]*n[c*4+0] + m[5]*n[c*4+1] + m[9]*n[c*4+2] + m[13]*n[c*4+3]
		out[c*4+2] = m[2]*n[c*4+0] + m[6]*n[c*4+1] + m[10]*n[c*4+2] + m[14]*n[c*4+3]
		out[c*4+3] = m[3]*n[c*4+0] + m[7]*n[c*4+1] + m[11]*n[c*4+2] + m[15]*n[c*4+3]
	}
	return out
}

// MulVec returns the matrix-vector product m × v.
func (m Mat2[T]) MulVec(v Vec2[T]) Vec2[T] {
	return Vec2[T]{
		m[0]*v[0] + m[2]*v[1],
		m[1]*v[0] + m[3]*v[1],
	}
}

// MulVec returns the matrix-vector product m × v.
func (m Mat3[T]) MulVec(v Vec3[T]) Vec3[T] {
	return Vec3[T]{
		m[0]*v[0] + m[3]*v[1] + m[6]*v[2],
		m[1]*v[0] + m[4]*v[1] + m[7]*v[2],
		m[2]*v[0] + m[5]*v[1] + m[8]*v[2],
	}
}

// MulVec returns the matrix-vector product m × v.
func (m Mat4[T]) MulVec(v Vec4[T]) Vec4[T] {
	return Vec4[T]{
		m[0]*v[0] + m[4]*v[1] + m[8]*v[2] + m[12]*v[3],
		m[1]*v[0] + m[5]*v[1] + m[9]*v[2] + m[13]*v[3],
		m[2]*v[0] + m[6]*v[1] + m[10]*v[2] + m[14]*v[3],
		m[3]*v[0] + m[7]*v[1] + m[11]*v[2] + m[15]*v[3],
	}
}

// Transpose returns the index-permuted matrix.
func (m Mat2[T]) Transpose() Mat2[T] {
	return Mat2[T]{m[0], m[2], m[1], m[3]}
}

// Transpose returns the index-permuted matrix.
func (m Mat3[T]) Transpose() Mat3[T] {
	return Mat3[T]{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Transpose returns the index-permuted matrix.
func (m Mat4[T]) Transpose() Mat4[T] {
	return Mat4[T]{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// Det returns the determinant.
func (m Mat2[T]) Det() T { return m[0]*m[3] - m[2]*m[1] }

// Det returns the determinant by cofactor expansion along the first
// row.
func (m Mat3[T]) Det() T {
	return m[0]*(m[4]*m[8]-m[7]*m[5]) -
		m[3]*(m[1]*m[8]-m[7]*m[2]) +
		m[6]*(m[1]*m[5]-m[4]*m[2])
}

// Det returns the determinant via 2×2 subdeterminants.
func (m Mat4[T]) Det() T {
	s0, s1, s2, s3, s4, s5, c0, c1, c2, c3, c4, c5 := m.subdets()
	return s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
}

// subdets returns the twelve 2×2 subdeterminants used by Det and
// Inverse, in a fixed evaluation order.
func (m Mat4[T]) subdets() (s0, s1, s2, s3, s4, s5, c0, c1, c2, c3, c4, c5 T) {
	s0 = m.at(0, 0)*m.at(1, 1) - m.at(1, 0)*m.at(0, 1)
	s1 = m.at(0, 0)*m.at(1, 2) - m.at(1, 0)*m.at(0, 2)
	s2 = m.at(0, 0)*m.at(1, 3) - m.at(1, 0)*m.at(0, 3)
	s3 = m.at(0, 1)*m.at(1, 2) - m.at(1, 1)*m.at(0, 2)
	s4 = m.at(0, 1)*m.at(1, 3) - m.at(1, 1)*m.at(0, 3)
	s5 = m.at(0, 2)*m.at(1, 3) - m.at(1, 2)*m.at(0, 3)

	c5 = m.at(2, 2)*m.at(3, 3) - m.at(3, 2)*m.at(2, 3)
	c4 = m.at(2, 1)*m.at(3, 3) - m.at(3, 1)*m.at(2, 3)
	c3 = m.at(2, 1)*m.at(3, 2) - m.at(3, 1)*m.at(2, 2)
	c2 = m.at(2, 0)*m.at(3, 3) - m.at(3, 0)*m.at(2, 3)
	c1 = m.at(2, 0)*m.at(3, 2) - m.at(3, 0)*m.at(2, 2)
	c0 = m.at(2, 0)*m.at(3, 1) - m.at(3, 0)*m.at(2, 1)
	return
}

// at returns element (row r, col c).
func (m Mat4[T]) at(r, c int) T { return m[c*4+r] }

// Inverse returns the closed-form inverse. Matrices with |det| below
// Epsilon fail with ErrSingularMatrix.
func (m Mat2[T]) Inverse() (Mat2[T], error) {
	det := m.Det()
	if math.Abs(float64(det)) < Epsilon {
		return Mat2[T]{}, ErrSingularMatrix
	}
	inv := 1 / det
	return Mat2[T]{
		m[3] * inv, -m[1] * inv,
		-m[2] * inv, m[0] * inv,
	}, nil
}

// Inverse returns the adjugate-over-determinant inverse. Matrices with
// |det| below Epsilon fail with ErrSingularMatrix.
func (m Mat3[T]) Inverse() (Mat3[T], error) {
	det := m.Det()
	if math.Abs(float64(det)) < Epsilon {
		return Mat3[T]{}, ErrSingularMatrix
	}
	inv := 1 / det
	return Mat3[T]{
		(m[4]*m[8] - m[7]*m[5]) * inv,
		(m[7]*m[2] - m[1]*m[8]) * inv,
		(m[1]*m[5] - m[4]*m[2]) * inv,
		(m[6]*m[5] - m[3]*m[8]) * inv,
		(m[0]*m[8] - m[6]*m[2]) * inv,
		(m[3]*m[2] - m[0]*m[5]) * inv,
		(m[3]*m[7] - m[6]*m[4]) * inv,
		(m[6]*m[1] - m[0]*m[7]) * inv,
		(m[0]*m[4] - m[3]*m[1]) * inv,
	}, nil
}

// Inverse returns the adjugate-over-determinant inverse built from the
// 2×2 subdeterminants. Matrices with |det| below Epsilon fail with
// ErrSingularMatrix.
func (m Mat4[T]) Inverse() (Mat4[T], error) {
	s0, s1, s2, s3, s4, s5, c0, c1, c2, c3, c4, c5 := m.subdets()
	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
	if math.Abs(float64(det)) < Epsilon {
		return Mat4[T]{}, ErrSingularMatrix
	}
	inv := 1 / det

	var out Mat4[T]
	out.set(0, 0, (m.at(1, 1)*c5-m.at(1, 2)*c4+m.at(1, 3)*c3)*inv)
	out.set(0, 1, (-m.at(0, 1)*c5+m.at(0, 2)*c4-m.at(0, 3)*c3)*inv)
	out.set(0, 2, (m.at(3, 1)*s5-m.at(3, 2)*s4+m.at(3, 3)*s3)*inv)
	out.set(0, 3, (-m.at(2, 1)*s5+m.at(2, 2)*s4-m.at(2, 3)*s3)*inv)

	out.set(1, 0, (-m.at(1, 0)*c5+m.at(1, 2)*c2-m.at(1, 3)*c1)*inv)
	out.set(1, 1, (m.at(0, 0)*c5-m.at(0, 2)*c2+m.at(0, 3)*c1)*inv)
	out.set(1, 2, (-m.at(3, 0)*s5+m.at(3, 2)*s2-m.at(3, 3)*s1)*inv)
	out.set(1, 3, (m.at(2, 0)*s5-m.at(2, 2)*s2+m.at(2, 3)*s1)*inv)

	out.set(2, 0, (m.at(1, 0)*c4-m.at(1, 1)*c2+m.at(1, 3)*c0)*inv)
	out.set(2, 1, (-m.at(0, 0)*c4+m.at(0, 1)*c2-m.at(0, 3)*c0)*inv)
	out.set(2, 2, (m.at(3, 0)*s4-m.at(3, 1)*s2+m.at(3, 3)*s0)*inv)
	out.set(2, 3, (-m.at(2, 0)*s4+m.at(2, 1)*s2-m.at(2, 3)*s0)*inv)

	out.set(3, 0, (-m.at(1, 0)*c3+m.at(1, 1)*c1-m.at(1, 2)*c0)*inv)
	out.set(3, 1, (m.at(0, 0)*c3-m.at(0, 1)*c1+m.at(0, 2)*c0)*inv)
	out.set(3, 2, (-m.at(3, 0)*s3+m.at(3, 1)*s1-m.at(3, 2)*s0)*inv)
	out.set(3, 3, (m.at(2, 0)*s3-m.at(2, 1)*s1+m.at(2, 2)*s0)*inv)
	return out, nil
}

// set stores v at element (row r, col c).
func (m *Mat4[T]) set(r, c int, v T) { m[c*4+r] = v }
