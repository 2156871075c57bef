// Copyright 2026 The Flatseq Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package elem

import "github.com/flatseq/flatseq/internal/seq"

// Equal compares a and b pairwise and returns one bool per position.
// Operands must resolve to the same length.
func Equal[T seq.Elem](a, b seq.Sequence[T]) ([]bool, error) {
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
	out := make([]bool, an)
	for i := range out {
		out[i] = a.At(as+i) == b.At(bs+i)
	}
	return out, nil
}

// AllEqual reports whether every position of a equals the matching
// position of b. Operands must resolve to the same length.
func AllEqual[T seq.Elem](a, b seq.Sequence[T]) (bool, error) {
	as, an, err := resolve(a, seq.Whole())
	if err != nil {
		return false, err
	}
	bs, bn, err := resolve(b, seq.Whole())
	if err != nil {
		return false, err
	}
	if an != bn {
		return false, lengthMismatch(an, bn)
	}
	for i := 0; i < an; i++ {
		if a.At(as+i) != b.At(bs+i) {
			return false, nil
		}
	}
	return true, nil
}
