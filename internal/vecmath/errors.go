// Copyright 2026 The Flatseq Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package vecmath

import "errors"

var (
	// ErrDegenerateVector indicates a normalize of a zero-length vector.
	ErrDegenerateVector = errors.New("vecmath: cannot normalize zero-length vector")
	// ErrSingularMatrix indicates an inverse of a matrix whose
	// determinant is within Epsilon of zero.
	ErrSingularMatrix = errors.New("vecmath: matrix is singular")
)

// Epsilon is the determinant magnitude below which a matrix is treated
// as singular. The comparison happens in float64 regardless of the
// element type.
const Epsilon = 1e-12
