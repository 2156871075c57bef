// Copyright 2026 The Flatseq Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package seq

// Factory produces backing storage for freshly allocated results.
// It receives the element kind and requested length and returns a
// container that must satisfy Mutable for that element type. Returning
// nil (or an incompatible container) falls back to the built-in Array.
type Factory func(kind Kind, n int) any

// factory is process-wide state with set-before-use semantics: assign
// it once during initialization, never concurrently with engine calls.
// There is no internal synchronization.
var factory Factory

// SetFactory installs f as the process-wide allocation hook.
// Passing nil restores the built-in Array allocator. Containers
// allocated earlier are unaffected.
func SetFactory(f Factory) { factory = f }

// Alloc materializes a fresh zero-filled container of length n,
// routing through the installed factory exactly once. Every allocating
// engine operation obtains its result here; operations given an
// explicit destination never call it.
func Alloc[T Elem](n int) Mutable[T] {
	if factory != nil {
		if c := factory(KindOf[T](), n); c != nil {
			if m, ok := c.(Mutable[T]); ok {
				return m
			}
		}
	}
	return Make[T](n)
}
