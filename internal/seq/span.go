// Copyright 2026 The Flatseq Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package seq

import "fmt"

// All as a Span.Count selects everything from Start to the end of the
// sequence.
const All = -1

// Span selects a contiguous run of a sequence: Count elements starting
// at Start. The zero value selects an empty run at position 0; use
// Whole or From for the common "rest of the sequence" cases.
//
// A Span never owns data. It is resolved against a concrete sequence
// length at call time, and Resolve is the only place range arithmetic
// happens in the library.
type Span struct {
	Start int
	Count int
}

// Whole spans an entire sequence.
func Whole() Span { return Span{0, All} }

// From spans everything from start to the end of the sequence.
func From(start int) Span { return Span{start, All} }

// Resolve canonicalizes the span against a sequence of length n,
// returning the concrete start and count. It fails with ErrOutOfRange
// when the requested run does not lie inside 0..n.
func (sp Span) Resolve(n int) (start, count int, err error) {
	start, count = sp.Start, sp.Count
	if start < 0 || start > n {
		return 0, 0, fmt.Errorf("%w: start %d in sequence of length %d", ErrOutOfRange, start, n)
	}
	if count == All {
		count = n - start
	}
	if count < 0 || start+count > n {
		return 0, 0, fmt.Errorf("%w: %d elements from %d in sequence of length %d", ErrOutOfRange, count, start, n)
	}
	return start, count, nil
}
