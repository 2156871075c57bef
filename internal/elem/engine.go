// Copyright 2026 The Flatseq Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package elem is the elementwise operation engine. Every operation
// comes in two forms: a short form over whole sequences that allocates
// its result through the seq allocation hook, and an Ex form that
// resolves explicit spans and writes into a caller-supplied
// destination starting at a given offset.
//
// All operand spans, sources and destination alike, are resolved before
// the first write, so a failing call never leaves a destination half
// mutated. Small runs (length 1..4) take unrolled straight-line paths;
// longer runs take a single generic loop. Both evaluate in strict
// ascending index order and produce identical results.
package elem

import (
	"fmt"

	"github.com/flatseq/flatseq/internal/seq"
)

// resolve validates s against sp, returning the concrete range.
func resolve[T seq.Elem](s seq.Sequence[T], sp seq.Span) (start, count int, err error) {
	if s == nil {
		return 0, 0, missing("source sequence")
	}
	return sp.Resolve(s.Len())
}

// resolveDst validates that count elements starting at `at` fit in dst.
func resolveDst[T seq.Elem](dst seq.Mutable[T], at, count int) error {
	if dst == nil {
		return missing("destination sequence")
	}
	_, _, err := seq.Span{Start: at, Count: count}.Resolve(dst.Len())
	return err
}

// apply runs a unary op over n elements, src position ss onto dst
// position ds. Reads position i strictly before writing position i, so
// dst == src at the same offset is safe.
func apply[T seq.Elem](op func(T) T, src seq.Sequence[T], ss int, dst seq.Mutable[T], ds, n int) {
	switch n {
	case 0:
	case 1:
		dst.Set(ds, op(src.At(ss)))
	case 2:
		dst.Set(ds, op(src.At(ss)))
		dst.Set(ds+1, op(src.At(ss+1)))
	case 3:
		dst.Set(ds, op(src.At(ss)))
		dst.Set(ds+1, op(src.At(ss+1)))
		dst.Set(ds+2, op(src.At(ss+2)))
	case 4:
		dst.Set(ds, op(src.At(ss)))
		dst.Set(ds+1, op(src.At(ss+1)))
		dst.Set(ds+2, op(src.At(ss+2)))
		dst.Set(ds+3, op(src.At(ss+3)))
	default:
		applyLoop(op, src, ss, dst, ds, n)
	}
}

// applyLoop is the generic fallback for apply. Kept separate so tests
// can pin the unrolled paths against it.
func applyLoop[T seq.Elem](op func(T) T, src seq.Sequence[T], ss int, dst seq.Mutable[T], ds, n int) {
	for i := 0; i < n; i++ {
		dst.Set(ds+i, op(src.At(ss+i)))
	}
}

// zip runs a binary op pairwise over n elements.
func zip[T seq.Elem](op func(T, T) T, a seq.Sequence[T], as int, b seq.Sequence[T], bs int, dst seq.Mutable[T], ds, n int) {
	switch n {
	case 0:
	case 1:
		dst.Set(ds, op(a.At(as), b.At(bs)))
	case 2:
		dst.Set(ds, op(a.At(as), b.At(bs)))
		dst.Set(ds+1, op(a.At(as+1), b.At(bs+1)))
	case 3:
		dst.Set(ds, op(a.At(as), b.At(bs)))
		dst.Set(ds+1, op(a.At(as+1), b.At(bs+1)))
		dst.Set(ds+2, op(a.At(as+2), b.At(bs+2)))
	case 4:
		dst.Set(ds, op(a.At(as), b.At(bs)))
		dst.Set(ds+1, op(a.At(as+1), b.At(bs+1)))
		dst.Set(ds+2, op(a.At(as+2), b.At(bs+2)))
		dst.Set(ds+3, op(a.At(as+3), b.At(bs+3)))
	default:
		zipLoop(op, a, as, b, bs, dst, ds, n)
	}
}

// zipLoop is the generic fallback for zip.
func zipLoop[T seq.Elem](op func(T, T) T, a seq.Sequence[T], as int, b seq.Sequence[T], bs int, dst seq.Mutable[T], ds, n int) {
	for i := 0; i < n; i++ {
		dst.Set(ds+i, op(a.At(as+i), b.At(bs+i)))
	}
}

// applyAlloc validates src whole, allocates, and applies op.
func applyAlloc[T seq.Elem](op func(T) T, src seq.Sequence[T]) (seq.Mutable[T], error) {
	ss, n, err := resolve(src, seq.Whole())
	if err != nil {
		return nil, err
	}
	dst := seq.Alloc[T](n)
	apply(op, src, ss, dst, 0, n)
	return dst, nil
}

// applyEx validates src span and destination range, then applies op.
func applyEx[T seq.Elem](op func(T) T, src seq.Sequence[T], sp seq.Span, dst seq.Mutable[T], at int) error {
	ss, n, err := resolve(src, sp)
	if err != nil {
		return err
	}
	if err := resolveDst(dst, at, n); err != nil {
		return err
	}
	apply(op, src, ss, dst, at, n)
	return nil
}

// zipAlloc validates both operands whole, allocates, and zips.
func zipAlloc[T seq.Elem](op func(T, T) T, a, b seq.Sequence[T]) (seq.Mutable[T], error) {
	as, an, err := resolve(a, seq.Whole())
	if err != nil {
		return nil, err
	}
	bs, bn, err := resolve(b, seq.Whole())
	if err != nil {
		return nil, err
	}
	if an != bn {
		return nil, lengthMismatch(an, bn)
	}
	dst := seq.Alloc[T](an)
	zip(op, a, as, b, bs, dst, 0, an)
	return dst, nil
}

// zipEx validates both operand spans and the destination range, then
// zips into dst.
func zipEx[T seq.Elem](op func(T, T) T, a seq.Sequence[T], asp seq.Span, b seq.Sequence[T], bsp seq.Span, dst seq.Mutable[T], at int) error {
	as, an, err := resolve(a, asp)
	if err != nil {
		return err
	}
	bs, bn, err := resolve(b, bsp)
	if err != nil {
		return err
	}
	if an != bn {
		return lengthMismatch(an, bn)
	}
	if err := resolveDst(dst, at, an); err != nil {
		return err
	}
	zip(op, a, as, b, bs, dst, at, an)
	return nil
}

// Map applies f to every element of a, allocating the result.
func Map[T seq.Elem](f func(T) T, a seq.Sequence[T]) (seq.Mutable[T], error) {
	return applyAlloc(f, a)
}

// MapEx applies f over the resolved span of src, writing results into
// dst starting at `at`. Safe for dst == src at the same offset.
func MapEx[T seq.Elem](f func(T) T, src seq.Sequence[T], sp seq.Span, dst seq.Mutable[T], at int) error {
	return applyEx(f, src, sp, dst, at)
}

// Generate allocates an n-element sequence with element i set to f(i).
func Generate[T seq.Elem](n int, f func(i int) T) seq.Mutable[T] {
	if n < 0 {
		panic(fmt.Sprintf("elem: negative length %d", n))
	}
	dst := seq.Alloc[T](n)
	for i := 0; i < n; i++ {
		dst.Set(i, f(i))
	}
	return dst
}

// GenerateEx writes f(0)..f(count-1) into dst starting at `at`.
func GenerateEx[T seq.Elem](f func(i int) T, dst seq.Mutable[T], at, count int) error {
	if count < 0 {
		return fmt.Errorf("%w: %d elements", seq.ErrOutOfRange, count)
	}
	if err := resolveDst(dst, at, count); err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		dst.Set(at+i, f(i))
	}
	return nil
}

// Fold reduces the resolved span of s left to right:
// f(...f(f(init, s[0]), s[1])..., s[n-1]).
func Fold[T seq.Elem](f func(acc, x T) T, init T, s seq.Sequence[T], sp seq.Span) (T, error) {
	ss, n, err := resolve(s, sp)
	if err != nil {
		var zero T
		return zero, err
	}
	acc := init
	for i := 0; i < n; i++ {
		acc = f(acc, s.At(ss+i))
	}
	return acc, nil
}
