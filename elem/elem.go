// Copyright 2026 The Flatseq Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package elem

import (
	"github.com/flatseq/flatseq/internal/elem"
	"github.com/flatseq/flatseq/seq"
)

// Type aliases for the public API.

// Shape is an ordered list of positive dimension extents, row-major.
type Shape = elem.Shape

// Shaped is a flat sequence carrying a multi-dimensional shape.
type Shaped[T seq.Elem] = elem.Shaped[T]

// Errors.
var (
	// ErrMissingArgument indicates a required operand was nil.
	ErrMissingArgument = elem.ErrMissingArgument
	// ErrLengthMismatch indicates binary operands of different lengths.
	ErrLengthMismatch = elem.ErrLengthMismatch
	// ErrShapeMismatch indicates a reshape target of the wrong size.
	ErrShapeMismatch = elem.ErrShapeMismatch
	// ErrNotGrowable indicates an append on fixed-length storage.
	ErrNotGrowable = elem.ErrNotGrowable
)

// Map and friends.

// Map applies f to every element of a, allocating the result.
func Map[T seq.Elem](f func(T) T, a seq.Sequence[T]) (seq.Mutable[T], error) {
	return elem.Map(f, a)
}

// MapEx applies f over the resolved span of src into dst at `at`.
func MapEx[T seq.Elem](f func(T) T, src seq.Sequence[T], sp seq.Span, dst seq.Mutable[T], at int) error {
	return elem.MapEx(f, src, sp, dst, at)
}

// Generate allocates an n-element sequence with element i set to f(i).
func Generate[T seq.Elem](n int, f func(i int) T) seq.Mutable[T] {
	return elem.Generate(n, f)
}

// GenerateEx writes f(0)..f(count-1) into dst starting at `at`.
func GenerateEx[T seq.Elem](f func(i int) T, dst seq.Mutable[T], at, count int) error {
	return elem.GenerateEx(f, dst, at, count)
}

// Fold reduces the resolved span of s left to right from init.
func Fold[T seq.Elem](f func(acc, x T) T, init T, s seq.Sequence[T], sp seq.Span) (T, error) {
	return elem.Fold(f, init, s, sp)
}

// Arithmetic. Each op has the allocating short form, the Ex
// destination form, and scalar-broadcast ...C siblings.

// Add returns a + b elementwise.
func Add[T seq.Elem](a, b seq.Sequence[T]) (seq.Mutable[T], error) { return elem.Add(a, b) }

// AddEx adds resolved spans of a and b into dst at `at`.
func AddEx[T seq.Elem](a seq.Sequence[T], asp seq.Span, b seq.Sequence[T], bsp seq.Span, dst seq.Mutable[T], at int) error {
	return elem.AddEx(a, asp, b, bsp, dst, at)
}

// Sub returns a - b elementwise.
func Sub[T seq.Elem](a, b seq.Sequence[T]) (seq.Mutable[T], error) { return elem.Sub(a, b) }

// SubEx subtracts resolved spans of b from a into dst at `at`.
func SubEx[T seq.Elem](a seq.Sequence[T], asp seq.Span, b seq.Sequence[T], bsp seq.Span, dst seq.Mutable[T], at int) error {
	return elem.SubEx(a, asp, b, bsp, dst, at)
}

// Mul returns a * b elementwise.
func Mul[T seq.Elem](a, b seq.Sequence[T]) (seq.Mutable[T], error) { return elem.Mul(a, b) }

// MulEx multiplies resolved spans of a and b into dst at `at`.
func MulEx[T seq.Elem](a seq.Sequence[T], asp seq.Span, b seq.Sequence[T], bsp seq.Span, dst seq.Mutable[T], at int) error {
	return elem.MulEx(a, asp, b, bsp, dst, at)
}

// Div returns a / b elementwise.
func Div[T seq.Elem](a, b seq.Sequence[T]) (seq.Mutable[T], error) { return elem.Div(a, b) }

// DivEx divides resolved spans of a by b into dst at `at`.
func DivEx[T seq.Elem](a seq.Sequence[T], asp seq.Span, b seq.Sequence[T], bsp seq.Span, dst seq.Mutable[T], at int) error {
	return elem.DivEx(a, asp, b, bsp, dst, at)
}

// Min returns the elementwise minimum of a and b.
func Min[T seq.Elem](a, b seq.Sequence[T]) (seq.Mutable[T], error) { return elem.Min(a, b) }

// MinEx writes the elementwise minimum of resolved spans into dst.
func MinEx[T seq.Elem](a seq.Sequence[T], asp seq.Span, b seq.Sequence[T], bsp seq.Span, dst seq.Mutable[T], at int) error {
	return elem.MinEx(a, asp, b, bsp, dst, at)
}

// Max returns the elementwise maximum of a and b.
func Max[T seq.Elem](a, b seq.Sequence[T]) (seq.Mutable[T], error) { return elem.Max(a, b) }

// MaxEx writes the elementwise maximum of resolved spans into dst.
func MaxEx[T seq.Elem](a seq.Sequence[T], asp seq.Span, b seq.Sequence[T], bsp seq.Span, dst seq.Mutable[T], at int) error {
	return elem.MaxEx(a, asp, b, bsp, dst, at)
}

// Pow returns a ** b elementwise.
func Pow[T seq.Float](a, b seq.Sequence[T]) (seq.Mutable[T], error) { return elem.Pow(a, b) }

// PowEx raises the resolved span of a to the powers in b, into dst.
func PowEx[T seq.Float](a seq.Sequence[T], asp seq.Span, b seq.Sequence[T], bsp seq.Span, dst seq.Mutable[T], at int) error {
	return elem.PowEx(a, asp, b, bsp, dst, at)
}

// AddC returns a + k for every element.
func AddC[T seq.Elem](a seq.Sequence[T], k T) (seq.Mutable[T], error) { return elem.AddC(a, k) }

// AddCEx adds k to the resolved span of src, into dst at `at`.
func AddCEx[T seq.Elem](src seq.Sequence[T], sp seq.Span, k T, dst seq.Mutable[T], at int) error {
	return elem.AddCEx(src, sp, k, dst, at)
}

// SubC returns a - k for every element.
func SubC[T seq.Elem](a seq.Sequence[T], k T) (seq.Mutable[T], error) { return elem.SubC(a, k) }

// SubCEx subtracts k from the resolved span of src, into dst at `at`.
func SubCEx[T seq.Elem](src seq.Sequence[T], sp seq.Span, k T, dst seq.Mutable[T], at int) error {
	return elem.SubCEx(src, sp, k, dst, at)
}

// MulC returns a * k for every element.
func MulC[T seq.Elem](a seq.Sequence[T], k T) (seq.Mutable[T], error) { return elem.MulC(a, k) }

// MulCEx multiplies the resolved span of src by k, into dst at `at`.
func MulCEx[T seq.Elem](src seq.Sequence[T], sp seq.Span, k T, dst seq.Mutable[T], at int) error {
	return elem.MulCEx(src, sp, k, dst, at)
}

// DivC returns a / k for every element.
func DivC[T seq.Elem](a seq.Sequence[T], k T) (seq.Mutable[T], error) { return elem.DivC(a, k) }

// DivCEx divides the resolved span of src by k, into dst at `at`.
func DivCEx[T seq.Elem](src seq.Sequence[T], sp seq.Span, k T, dst seq.Mutable[T], at int) error {
	return elem.DivCEx(src, sp, k, dst, at)
}

// MinC returns min(a, k) for every element.
func MinC[T seq.Elem](a seq.Sequence[T], k T) (seq.Mutable[T], error) { return elem.MinC(a, k) }

// MinCEx clamps the resolved span of src from above by k, into dst.
func MinCEx[T seq.Elem](src seq.Sequence[T], sp seq.Span, k T, dst seq.Mutable[T], at int) error {
	return elem.MinCEx(src, sp, k, dst, at)
}

// MaxC returns max(a, k) for every element.
func MaxC[T seq.Elem](a seq.Sequence[T], k T) (seq.Mutable[T], error) { return elem.MaxC(a, k) }

// MaxCEx clamps the resolved span of src from below by k, into dst.
func MaxCEx[T seq.Elem](src seq.Sequence[T], sp seq.Span, k T, dst seq.Mutable[T], at int) error {
	return elem.MaxCEx(src, sp, k, dst, at)
}

// PowC returns a ** k for every element.
func PowC[T seq.Float](a seq.Sequence[T], k T) (seq.Mutable[T], error) { return elem.PowC(a, k) }

// PowCEx raises the resolved span of src to the power k, into dst.
func PowCEx[T seq.Float](src seq.Sequence[T], sp seq.Span, k T, dst seq.Mutable[T], at int) error {
	return elem.PowCEx(src, sp, k, dst, at)
}

// Comparison.

// Equal compares a and b pairwise, one bool per position.
func Equal[T seq.Elem](a, b seq.Sequence[T]) ([]bool, error) { return elem.Equal(a, b) }

// AllEqual reports whether a and b match at every position.
func AllEqual[T seq.Elem](a, b seq.Sequence[T]) (bool, error) { return elem.AllEqual(a, b) }

// Structural operations.

// Copy returns the elements of a in a fresh container.
func Copy[T seq.Elem](a seq.Sequence[T]) (seq.Mutable[T], error) { return elem.Copy(a) }

// CopyEx copies the resolved span of src into dst at `at`.
func CopyEx[T seq.Elem](src seq.Sequence[T], sp seq.Span, dst seq.Mutable[T], at int) error {
	return elem.CopyEx(src, sp, dst, at)
}

// Fill returns a fresh n-element container of v.
func Fill[T seq.Elem](v T, n int) seq.Mutable[T] { return elem.Fill(v, n) }

// FillEx sets count elements of dst to v, starting at `at`.
func FillEx[T seq.Elem](v T, dst seq.Mutable[T], at, count int) error {
	return elem.FillEx(v, dst, at, count)
}

// Reverse returns the elements of a back to front in a fresh container.
func Reverse[T seq.Elem](a seq.Sequence[T]) (seq.Mutable[T], error) { return elem.Reverse(a) }

// ReverseEx writes the resolved span of src back to front into dst.
// Safe for in-place use: the span is staged through a temporary.
func ReverseEx[T seq.Elem](src seq.Sequence[T], sp seq.Span, dst seq.Mutable[T], at int) error {
	return elem.ReverseEx(src, sp, dst, at)
}

// Join returns a fresh container of a's elements followed by b's.
//
// Example:
//
//	c, _ := elem.Join[int64](seq.Of[int64](1, 2, 3), seq.Of[int64](4, 5, 6))
//	// c: 1, 2, 3, 4, 5, 6
func Join[T seq.Elem](a, b seq.Sequence[T]) (seq.Mutable[T], error) { return elem.Join(a, b) }

// JoinEx writes the resolved spans of a then b into dst at `at`.
// Safe for in-place use: both spans are staged through a temporary.
func JoinEx[T seq.Elem](a seq.Sequence[T], asp seq.Span, b seq.Sequence[T], bsp seq.Span, dst seq.Mutable[T], at int) error {
	return elem.JoinEx(a, asp, b, bsp, dst, at)
}

// Append extends dst in place with the elements of src. Fails with
// ErrNotGrowable unless dst's backing container supports growth
// (pass a *seq.Array).
func Append[T seq.Elem](dst, src seq.Sequence[T]) error { return elem.Append(dst, src) }

// Reshape.

// Reshape copies s into a Shaped with the requested row-major shape.
// The shape's element count must equal the source length.
//
// Example:
//
//	sh, _ := elem.Reshape[int32](seq.Of[int32](1, 2, 3, 4, 5, 6), elem.Shape{3, 2})
//	sh.Rows() // [[1 2] [3 4] [5 6]]
func Reshape[T seq.Elem](s seq.Sequence[T], shape Shape) (*Shaped[T], error) {
	return elem.Reshape(s, shape)
}

// FlattenEx writes sh's flat row-major elements into dst at `at`.
func FlattenEx[T seq.Elem](sh *Shaped[T], dst seq.Mutable[T], at int) error {
	return elem.FlattenEx(sh, dst, at)
}
