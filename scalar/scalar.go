// Package scalar defines the numeric domain of a point component and
// the checked arithmetic the point types build on.
package scalar

import "errors"

// Number is any scalar type usable as a point component: the built-in
// fixed-size integer types and the floating-point types.
type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 | uintptr |
		float32 | float64
}

// ErrOverflow reports that a checked operation left the representable
// range of the scalar type.
var ErrOverflow = errors.New("scalar overflow")
