// Copyright 2026 The Flatseq Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package elem is the public API for the elementwise operation engine.
//
// Every operation has two forms. The short form takes whole sequences
// and allocates its result through the seq allocation hook:
//
//	c, err := elem.Add[float64](a, b)
//
// The Ex form resolves explicit spans and writes into a caller-supplied
// destination without allocating:
//
//	err := elem.AddEx[float64](a, seq.From(2), b, seq.Whole(), dst, 0)
//
// Binary operations broadcast one way only: the second operand is
// either a sequence of the same resolved length (pairwise) or, in the
// ...C forms, a single scalar applied to every element. All operand
// ranges are validated before the first write, so a failing call never
// leaves a destination half mutated.
package elem
