// Copyright 2026 The Flatseq Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gonumseq adapts gonum dense vectors to the seq capability
// contract, so engine operations run directly over gonum-owned storage
// and freshly allocated results can live in gonum vectors.
package gonumseq

import (
	"gonum.org/v1/gonum/mat"

	"github.com/flatseq/flatseq/seq"
)

// VecDense wraps a *mat.VecDense as a seq.Mutable[float64]. The
// wrapper shares the vector's storage; it never copies.
type VecDense struct {
	v *mat.VecDense
}

// Wrap adapts v. The returned sequence reads and writes v in place.
func Wrap(v *mat.VecDense) *VecDense { return &VecDense{v: v} }

// New allocates a zero-filled n-element gonum vector and wraps it.
func New(n int) *VecDense { return Wrap(mat.NewVecDense(n, nil)) }

// Len returns the vector length.
func (s *VecDense) Len() int { return s.v.Len() }

// At returns element i.
func (s *VecDense) At(i int) float64 { return s.v.AtVec(i) }

// Set stores x at element i.
func (s *VecDense) Set(i int, x float64) { s.v.SetVec(i, x) }

// Unwrap returns the underlying gonum vector.
func (s *VecDense) Unwrap() *mat.VecDense { return s.v }

// Factory is a seq allocation hook that backs float64 results with
// gonum vectors. Install it with seq.SetFactory(gonumseq.Factory);
// other element kinds fall through to the built-in Array. Zero-length
// results also fall through, since gonum rejects zero-sized vectors.
func Factory(kind seq.Kind, n int) any {
	if kind == seq.Float64 && n > 0 {
		return New(n)
	}
	return nil
}
