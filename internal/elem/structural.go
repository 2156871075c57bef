// Copyright 2026 The Flatseq Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package elem

import "github.com/flatseq/flatseq/internal/seq"

// Overlap policy for the structural Ex forms: CopyEx copies forward
// and is safe when dst is the same container at the same offset;
// ReverseEx and JoinEx stage their sources through a temporary buffer
// first, so any overlap, including fully in-place use, is safe.

func ident[T seq.Elem](x T) T { return x }

// Copy returns the elements of a in a fresh container.
func Copy[T seq.Elem](a seq.Sequence[T]) (seq.Mutable[T], error) {
	return applyAlloc(ident[T], a)
}

// CopyEx copies the resolved span of src into dst starting at `at`.
func CopyEx[T seq.Elem](src seq.Sequence[T], sp seq.Span, dst seq.Mutable[T], at int) error {
	return applyEx(ident[T], src, sp, dst, at)
}

// Fill returns a fresh n-element container with every element set to v.
func Fill[T seq.Elem](v T, n int) seq.Mutable[T] {
	return Generate(n, func(int) T { return v })
}

// FillEx sets count elements of dst to v, starting at `at`.
func FillEx[T seq.Elem](v T, dst seq.Mutable[T], at, count int) error {
	return GenerateEx(func(int) T { return v }, dst, at, count)
}

// Reverse returns the elements of a back to front in a fresh container.
func Reverse[T seq.Elem](a seq.Sequence[T]) (seq.Mutable[T], error) {
	ss, n, err := resolve(a, seq.Whole())
	if err != nil {
		return nil, err
	}
	dst := seq.Alloc[T](n)
	for i := 0; i < n; i++ {
		dst.Set(i, a.At(ss+n-1-i))
	}
	return dst, nil
}

// ReverseEx writes the resolved span of src back to front into dst
// starting at `at`. The span is staged through a temporary, so
// reversing a range onto itself is safe.
func ReverseEx[T seq.Elem](src seq.Sequence[T], sp seq.Span, dst seq.Mutable[T], at int) error {
	ss, n, err := resolve(src, sp)
	if err != nil {
		return err
	}
	if err := resolveDst(dst, at, n); err != nil {
		return err
	}
	tmp := make([]T, n)
	for i := 0; i < n; i++ {
		tmp[i] = src.At(ss + i)
	}
	for i := 0; i < n; i++ {
		dst.Set(at+i, tmp[n-1-i])
	}
	return nil
}

// Join returns a fresh container holding the elements of a followed by
// the elements of b.
func Join[T seq.Elem](a, b seq.Sequence[T]) (seq.Mutable[T], error) {
	as, an, err := resolve(a, seq.Whole())
	if err != nil {
		return nil, err
	}
	bs, bn, err := resolve(b, seq.Whole())
	if err != nil {
		return nil, err
	}
	dst := seq.Alloc[T](an + bn)
	apply(ident[T], a, as, dst, 0, an)
	apply(ident[T], b, bs, dst, an, bn)
	return dst, nil
}

// JoinEx writes the resolved span of a followed by the resolved span
// of b into dst starting at `at`. Both spans are staged through a
// temporary, so joining ranges onto themselves is safe.
func JoinEx[T seq.Elem](a seq.Sequence[T], asp seq.Span, b seq.Sequence[T], bsp seq.Span, dst seq.Mutable[T], at int) error {
	as, an, err := resolve(a, asp)
	if err != nil {
		return err
	}
	bs, bn, err := resolve(b, bsp)
	if err != nil {
		return err
	}
	if err := resolveDst(dst, at, an+bn); err != nil {
		return err
	}
	tmp := make([]T, an+bn)
	for i := 0; i < an; i++ {
		tmp[i] = a.At(as + i)
	}
	for i := 0; i < bn; i++ {
		tmp[an+i] = b.At(bs + i)
	}
	for i, v := range tmp {
		dst.Set(at+i, v)
	}
	return nil
}

// Append extends dst in place with the elements of src. The
// destination's backing container must support growth; fixed-length
// containers (views, adapters) fail with ErrNotGrowable. The source is
// staged through a temporary, so appending a sequence to itself is
// safe.
func Append[T seq.Elem](dst, src seq.Sequence[T]) error {
	if dst == nil {
		return missing("destination sequence")
	}
	ss, n, err := resolve(src, seq.Whole())
	if err != nil {
		return err
	}
	g, ok := dst.(seq.Growable[T])
	if !ok {
		return ErrNotGrowable
	}
	tmp := make([]T, n)
	for i := 0; i < n; i++ {
		tmp[i] = src.At(ss + i)
	}
	g.Append(tmp...)
	return nil
}
