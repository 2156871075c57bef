// Copyright 2026 The Flatseq Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package elem

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingArgument indicates a required operand was nil.
	ErrMissingArgument = errors.New("elem: required operand is nil")
	// ErrLengthMismatch indicates binary operands of different
	// resolved lengths.
	ErrLengthMismatch = errors.New("elem: operand lengths differ")
	// ErrShapeMismatch indicates a reshape whose target shape does not
	// hold exactly the source's element count.
	ErrShapeMismatch = errors.New("elem: shape does not match element count")
	// ErrNotGrowable indicates an append on a container whose backing
	// storage cannot be extended (views, fixed adapters).
	ErrNotGrowable = errors.New("elem: container cannot grow")
)

func missing(what string) error {
	return fmt.Errorf("%w: %s", ErrMissingArgument, what)
}

func lengthMismatch(a, b int) error {
	return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, a, b)
}
