// Copyright 2026 The Flatseq Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package elem

import (
	"testing"

	"github.com/flatseq/flatseq/internal/seq"
)

func benchAddEx(b *testing.B, n int) {
	x := seq.Make[float64](n)
	y := seq.Make[float64](n)
	dst := seq.Make[float64](n)
	for i := 0; i < n; i++ {
		x.Set(i, float64(i))
		y.Set(i, float64(n-i))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := AddEx[float64](x, seq.Whole(), y, seq.Whole(), dst, 0); err != nil {
			b.Fatal(err)
		}
	}
}

// Small sizes exercise the unrolled paths, large ones the generic loop.
func BenchmarkAddEx4(b *testing.B)    { benchAddEx(b, 4) }
func BenchmarkAddEx64(b *testing.B)   { benchAddEx(b, 64) }
func BenchmarkAddEx4096(b *testing.B) { benchAddEx(b, 4096) }

func BenchmarkAddAlloc(b *testing.B) {
	x := seq.Range[float64](1, 1024, 1)
	y := seq.Range[float64](1024, 1, -1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Add[float64](x, y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAddOverView(b *testing.B) {
	x := seq.Range[float64](1, 1024, 1)
	r := seq.Reversed[float64](x)
	dst := seq.Make[float64](1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := AddEx[float64](x, seq.Whole(), r, seq.Whole(), dst, 0); err != nil {
			b.Fatal(err)
		}
	}
}
