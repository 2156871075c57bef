// Copyright 2026 The Flatseq Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package seq

import "errors"

var (
	// ErrOutOfRange indicates a span or index that does not fit inside
	// its sequence's bounds.
	ErrOutOfRange = errors.New("seq: range out of bounds")
	// ErrReadOnly indicates a write through a view whose source does
	// not support writes. Raised as a panic value, since writing a
	// read-only view is a programming error.
	ErrReadOnly = errors.New("seq: view is read-only")
)
