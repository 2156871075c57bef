// Copyright 2026 The Flatseq Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package seq

// Kind is runtime element-type information, handed to allocation
// factories so custom storage can pick a representation.
type Kind int

// Element kinds recognized by the allocator.
const (
	Invalid Kind = iota
	Float32
	Float64
	Int32
	Int64
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	default:
		return "invalid"
	}
}

// Size returns the byte size of one element of the kind.
func (k Kind) Size() int {
	switch k {
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	default:
		return 0
	}
}

// KindOf maps a compile-time element type to its runtime Kind.
// Named types with a supported underlying type report Invalid; the
// allocator falls back to the built-in Array for those.
func KindOf[T Elem]() Kind {
	var z T
	switch any(z).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return Int32
	case int64:
		return Int64
	default:
		return Invalid
	}
}
