// Copyright 2026 The Flatseq Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package vecmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flatseq/flatseq/internal/seq"
)

func TestDot(t *testing.T) {
	assert.Equal(t, 11.0, Vec2[float64]{1, 2}.Dot(Vec2[float64]{3, 4}))
	assert.Equal(t, 32.0, Vec3[float64]{1, 2, 3}.Dot(Vec3[float64]{4, 5, 6}))
	assert.Equal(t, 70.0, Vec4[float64]{1, 2, 3, 4}.Dot(Vec4[float64]{5, 6, 7, 8}))
}

func TestCross(t *testing.T) {
	x := Vec3[float64]{1, 0, 0}
	y := Vec3[float64]{0, 1, 0}
	z := Vec3[float64]{0, 0, 1}

	assert.Equal(t, z, x.Cross(y))
	assert.Equal(t, x, y.Cross(z))
	assert.Equal(t, y, z.Cross(x))
	assert.Equal(t, Vec3[float64]{0, 0, -1}, y.Cross(x), "anticommutative")
	assert.Equal(t, Vec3[float64]{}, x.Cross(x), "parallel vectors")
}

func TestCrossOrthogonal(t *testing.T) {
	a := Vec3[float64]{2, -3, 7}
	b := Vec3[float64]{0.5, 4, -1}
	c := a.Cross(b)
	assert.InDelta(t, 0, c.Dot(a), 1e-12)
	assert.InDelta(t, 0, c.Dot(b), 1e-12)
}

func TestLengthNormalize(t *testing.T) {
	v := Vec3[float64]{3, 4, 0}
	assert.Equal(t, 5.0, v.Length())

	u, err := v.Normalize()
	require.NoError(t, err)
	assert.Equal(t, Vec3[float64]{0.6, 0.8, 0}, u)
	assert.InDelta(t, 1, u.Length(), 1e-15)
}

func TestNormalizeDegenerate(t *testing.T) {
	_, err := Vec2[float32]{}.Normalize()
	assert.ErrorIs(t, err, ErrDegenerateVector)
	_, err = Vec3[float64]{}.Normalize()
	assert.ErrorIs(t, err, ErrDegenerateVector)
	_, err = Vec4[float64]{}.Normalize()
	assert.ErrorIs(t, err, ErrDegenerateVector)
}

func TestVecFloat32(t *testing.T) {
	v := Vec3[float32]{3, 4, 0}
	assert.Equal(t, float32(5), v.Length())
	u, err := v.Normalize()
	require.NoError(t, err)
	assert.InDelta(t, 0.6, float64(u[0]), 1e-7)
	assert.InDelta(t, 0.8, float64(u[1]), 1e-7)
}

func TestVecArithmetic(t *testing.T) {
	a := Vec2[float64]{1, 2}
	b := Vec2[float64]{10, 20}
	assert.Equal(t, Vec2[float64]{11, 22}, a.Add(b))
	assert.Equal(t, Vec2[float64]{-9, -18}, a.Sub(b))
	assert.Equal(t, Vec2[float64]{3, 6}, a.Scale(3))
	assert.Equal(t, Vec4[float64]{2, 4, 6, 8}, Vec4[float64]{1, 2, 3, 4}.Scale(2))
}

func TestVecSeqBridge(t *testing.T) {
	buf := seq.Of[float64](9, 1, 2, 3, 9)

	v := Vec3From[float64](buf, 1)
	assert.Equal(t, Vec3[float64]{1, 2, 3}, v)

	dst := seq.Make[float64](5)
	v.Scale(10).Store(dst, 2)
	assert.Equal(t, []float64{0, 0, 10, 20, 30}, seq.Collect[float64](dst))

	// Bridges compose with views: read a vector out of a reversed view.
	r := Vec2From[float64](seq.Reversed[float64](buf), 0)
	assert.Equal(t, Vec2[float64]{9, 3}, r)
}
