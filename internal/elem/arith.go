// Copyright 2026 The Flatseq Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package elem

import (
	"math"

	"github.com/flatseq/flatseq/internal/seq"
)

// Arithmetic follows one broadcasting rule: the second operand of a
// binary operation is either another sequence of the same resolved
// length (combined pairwise) or a single scalar in the ...C forms
// (combined with every element). Anything else is ErrLengthMismatch.
//
// The componentwise Ex forms read position i before writing position
// i, so using the same container as source and destination at the same
// offset is safe; any other overlap gives undefined element values.

func addOp[T seq.Elem](x, y T) T { return x + y }
func subOp[T seq.Elem](x, y T) T { return x - y }
func mulOp[T seq.Elem](x, y T) T { return x * y }
func divOp[T seq.Elem](x, y T) T { return x / y }

func minOp[T seq.Elem](x, y T) T {
	if y < x {
		return y
	}
	return x
}

func maxOp[T seq.Elem](x, y T) T {
	if y > x {
		return y
	}
	return x
}

func powOp[T seq.Float](x, y T) T { return T(math.Pow(float64(x), float64(y))) }

// Add returns a + b elementwise in a fresh container.
func Add[T seq.Elem](a, b seq.Sequence[T]) (seq.Mutable[T], error) {
	return zipAlloc(addOp[T], a, b)
}

// AddEx adds the resolved spans of a and b into dst starting at `at`.
func AddEx[T seq.Elem](a seq.Sequence[T], asp seq.Span, b seq.Sequence[T], bsp seq.Span, dst seq.Mutable[T], at int) error {
	return zipEx(addOp[T], a, asp, b, bsp, dst, at)
}

// Sub returns a - b elementwise in a fresh container.
func Sub[T seq.Elem](a, b seq.Sequence[T]) (seq.Mutable[T], error) {
	return zipAlloc(subOp[T], a, b)
}

// SubEx subtracts the resolved spans of b from a into dst.
func SubEx[T seq.Elem](a seq.Sequence[T], asp seq.Span, b seq.Sequence[T], bsp seq.Span, dst seq.Mutable[T], at int) error {
	return zipEx(subOp[T], a, asp, b, bsp, dst, at)
}

// Mul returns a * b elementwise in a fresh container.
func Mul[T seq.Elem](a, b seq.Sequence[T]) (seq.Mutable[T], error) {
	return zipAlloc(mulOp[T], a, b)
}

// MulEx multiplies the resolved spans of a and b into dst.
func MulEx[T seq.Elem](a seq.Sequence[T], asp seq.Span, b seq.Sequence[T], bsp seq.Span, dst seq.Mutable[T], at int) error {
	return zipEx(mulOp[T], a, asp, b, bsp, dst, at)
}

// Div returns a / b elementwise in a fresh container. Integer element
// types truncate; a zero divisor carries Go's native semantics
// (panic for integers, Inf/NaN for floats).
func Div[T seq.Elem](a, b seq.Sequence[T]) (seq.Mutable[T], error) {
	return zipAlloc(divOp[T], a, b)
}

// DivEx divides the resolved spans of a by b into dst.
func DivEx[T seq.Elem](a seq.Sequence[T], asp seq.Span, b seq.Sequence[T], bsp seq.Span, dst seq.Mutable[T], at int) error {
	return zipEx(divOp[T], a, asp, b, bsp, dst, at)
}

// Min returns the elementwise minimum of a and b in a fresh container.
func Min[T seq.Elem](a, b seq.Sequence[T]) (seq.Mutable[T], error) {
	return zipAlloc(minOp[T], a, b)
}

// MinEx writes the elementwise minimum of the resolved spans into dst.
func MinEx[T seq.Elem](a seq.Sequence[T], asp seq.Span, b seq.Sequence[T], bsp seq.Span, dst seq.Mutable[T], at int) error {
	return zipEx(minOp[T], a, asp, b, bsp, dst, at)
}

// Max returns the elementwise maximum of a and b in a fresh container.
func Max[T seq.Elem](a, b seq.Sequence[T]) (seq.Mutable[T], error) {
	return zipAlloc(maxOp[T], a, b)
}

// MaxEx writes the elementwise maximum of the resolved spans into dst.
func MaxEx[T seq.Elem](a seq.Sequence[T], asp seq.Span, b seq.Sequence[T], bsp seq.Span, dst seq.Mutable[T], at int) error {
	return zipEx(maxOp[T], a, asp, b, bsp, dst, at)
}

// Pow returns a ** b elementwise in a fresh container.
func Pow[T seq.Float](a, b seq.Sequence[T]) (seq.Mutable[T], error) {
	return zipAlloc(powOp[T], a, b)
}

// PowEx raises the resolved span of a to the powers in b, into dst.
func PowEx[T seq.Float](a seq.Sequence[T], asp seq.Span, b seq.Sequence[T], bsp seq.Span, dst seq.Mutable[T], at int) error {
	return zipEx(powOp[T], a, asp, b, bsp, dst, at)
}

// AddC returns a + k for every element, in a fresh container.
func AddC[T seq.Elem](a seq.Sequence[T], k T) (seq.Mutable[T], error) {
	return applyAlloc(func(x T) T { return x + k }, a)
}

// AddCEx adds k to the resolved span of src, into dst starting at `at`.
func AddCEx[T seq.Elem](src seq.Sequence[T], sp seq.Span, k T, dst seq.Mutable[T], at int) error {
	return applyEx(func(x T) T { return x + k }, src, sp, dst, at)
}

// SubC returns a - k for every element, in a fresh container.
func SubC[T seq.Elem](a seq.Sequence[T], k T) (seq.Mutable[T], error) {
	return applyAlloc(func(x T) T { return x - k }, a)
}

// SubCEx subtracts k from the resolved span of src, into dst.
func SubCEx[T seq.Elem](src seq.Sequence[T], sp seq.Span, k T, dst seq.Mutable[T], at int) error {
	return applyEx(func(x T) T { return x - k }, src, sp, dst, at)
}

// MulC returns a * k for every element, in a fresh container.
func MulC[T seq.Elem](a seq.Sequence[T], k T) (seq.Mutable[T], error) {
	return applyAlloc(func(x T) T { return x * k }, a)
}

// MulCEx multiplies the resolved span of src by k, into dst.
func MulCEx[T seq.Elem](src seq.Sequence[T], sp seq.Span, k T, dst seq.Mutable[T], at int) error {
	return applyEx(func(x T) T { return x * k }, src, sp, dst, at)
}

// DivC returns a / k for every element, in a fresh container.
func DivC[T seq.Elem](a seq.Sequence[T], k T) (seq.Mutable[T], error) {
	return applyAlloc(func(x T) T { return x / k }, a)
}

// DivCEx divides the resolved span of src by k, into dst.
func DivCEx[T seq.Elem](src seq.Sequence[T], sp seq.Span, k T, dst seq.Mutable[T], at int) error {
	return applyEx(func(x T) T { return x / k }, src, sp, dst, at)
}

// MinC returns min(a, k) for every element, in a fresh container.
func MinC[T seq.Elem](a seq.Sequence[T], k T) (seq.Mutable[T], error) {
	return applyAlloc(func(x T) T { return minOp(x, k) }, a)
}

// MinCEx clamps the resolved span of src from above by k, into dst.
func MinCEx[T seq.Elem](src seq.Sequence[T], sp seq.Span, k T, dst seq.Mutable[T], at int) error {
	return applyEx(func(x T) T { return minOp(x, k) }, src, sp, dst, at)
}

// MaxC returns max(a, k) for every element, in a fresh container.
func MaxC[T seq.Elem](a seq.Sequence[T], k T) (seq.Mutable[T], error) {
	return applyAlloc(func(x T) T { return maxOp(x, k) }, a)
}

// MaxCEx clamps the resolved span of src from below by k, into dst.
func MaxCEx[T seq.Elem](src seq.Sequence[T], sp seq.Span, k T, dst seq.Mutable[T], at int) error {
	return applyEx(func(x T) T { return maxOp(x, k) }, src, sp, dst, at)
}

// PowC returns a ** k for every element, in a fresh container.
func PowC[T seq.Float](a seq.Sequence[T], k T) (seq.Mutable[T], error) {
	return applyAlloc(func(x T) T { return powOp(x, k) }, a)
}

// PowCEx raises the resolved span of src to the power k, into dst.
func PowCEx[T seq.Float](src seq.Sequence[T], sp seq.Span, k T, dst seq.Mutable[T], at int) error {
	return applyEx(func(x T) T { return powOp(x, k) }, src, sp, dst, at)
}
