package scalar

import "math"

// MinValue returns the smallest value representable by N. For the
// floating-point types this is the most negative finite value, not
// -Inf.
func MinValue[N Number]() N {
	var v N
	switch p := any(&v).(type) {
	case *int:
		*p = math.MinInt
	case *int8:
		*p = math.MinInt8
	case *int16:
		*p = math.MinInt16
	case *int32:
		*p = math.MinInt32
	case *int64:
		*p = math.MinInt64
	case *float32:
		*p = -math.MaxFloat32
	case *float64:
		*p = -math.MaxFloat64
	}
	// Unsigned types keep the zero value.
	return v
}

// MaxValue returns the largest value representable by N. For the
// floating-point types this is the largest finite value.
func MaxValue[N Number]() N {
	var v N
	switch p := any(&v).(type) {
	case *int:
		*p = math.MaxInt
	case *int8:
		*p = math.MaxInt8
	case *int16:
		*p = math.MaxInt16
	case *int32:
		*p = math.MaxInt32
	case *int64:
		*p = math.MaxInt64
	case *uint:
		*p = math.MaxUint
	case *uint8:
		*p = math.MaxUint8
	case *uint16:
		*p = math.MaxUint16
	case *uint32:
		*p = math.MaxUint32
	case *uint64:
		*p = math.MaxUint64
	case *uintptr:
		*p = ^uintptr(0)
	case *float32:
		*p = math.MaxFloat32
	case *float64:
		*p = math.MaxFloat64
	}
	return v
}
