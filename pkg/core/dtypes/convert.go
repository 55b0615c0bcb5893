// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dtypes

import (
	"github.com/gomlx/tiled/pkg/core/dtypes/bfloat16"
	"github.com/x448/float16"
)

// ConvertFunc returns a function that converts one element of type A to type R.
//
// The conversion path is chosen once, when ConvertFunc is called, so the returned function
// does no type switching per element:
//
//   - Same type: identity.
//   - Integer (or bool) to integer (or bool): through int64, so the results match Go's conversion rules
//     (truncation of the bits).
//   - Complex to real: the real part is kept.
//   - Anything else through float64 (complex128 if the target is complex).
//     Float16 and BFloat16 are converted through float32.
//   - Bool targets are true for any non-zero value, and bool sources convert to 0 or 1.
func ConvertFunc[R, A Supported]() func(A) R {
	if identity, ok := any(func(a A) A { return a }).(func(A) R); ok {
		return identity
	}
	srcDType, dstDType := FromGenericsType[A](), FromGenericsType[R]()
	isIntLike := func(dtype DType) bool { return dtype.IsInt() || dtype == Bool }
	switch {
	case dstDType.IsComplex():
		toComplex, fromComplex := complexReader[A](), complexWriter[R]()
		return func(a A) R { return fromComplex(toComplex(a)) }
	case isIntLike(srcDType) && isIntLike(dstDType):
		toInt, fromInt := intReader[A](), intWriter[R]()
		return func(a A) R { return fromInt(toInt(a)) }
	case srcDType == Bool:
		toInt, fromInt := intReader[A](), intWriter[R]()
		return func(a A) R { return fromInt(toInt(a)) }
	default:
		toFloat, fromFloat := floatReader[A](), floatWriter[R]()
		return func(a A) R { return fromFloat(toFloat(a)) }
	}
}

// Convert a single value from type A to type R. See ConvertFunc for the rules.
//
// Prefer ConvertFunc to convert many values.
func Convert[R, A Supported](a A) R {
	return ConvertFunc[R, A]()(a)
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

func intReader[A Supported]() func(A) int64 {
	var a A
	var fn any
	switch any(a).(type) {
	case bool:
		fn = boolToInt
	case int:
		fn = func(v int) int64 { return int64(v) }
	case int8:
		fn = func(v int8) int64 { return int64(v) }
	case int16:
		fn = func(v int16) int64 { return int64(v) }
	case int32:
		fn = func(v int32) int64 { return int64(v) }
	case int64:
		fn = func(v int64) int64 { return v }
	case uint8:
		fn = func(v uint8) int64 { return int64(v) }
	case uint16:
		fn = func(v uint16) int64 { return int64(v) }
	case uint32:
		fn = func(v uint32) int64 { return int64(v) }
	case uint64:
		fn = func(v uint64) int64 { return int64(v) }
	default:
		panicf("intReader[%T]: not an integer or bool type", a)
	}
	return fn.(func(A) int64)
}

func intWriter[R Supported]() func(int64) R {
	var r R
	var fn any
	switch any(r).(type) {
	case bool:
		fn = func(v int64) bool { return v != 0 }
	case int:
		fn = func(v int64) int { return int(v) }
	case int8:
		fn = func(v int64) int8 { return int8(v) }
	case int16:
		fn = func(v int64) int16 { return int16(v) }
	case int32:
		fn = func(v int64) int32 { return int32(v) }
	case int64:
		fn = func(v int64) int64 { return v }
	case uint8:
		fn = func(v int64) uint8 { return uint8(v) }
	case uint16:
		fn = func(v int64) uint16 { return uint16(v) }
	case uint32:
		fn = func(v int64) uint32 { return uint32(v) }
	case uint64:
		fn = func(v int64) uint64 { return uint64(v) }
	case float16.Float16:
		fn = func(v int64) float16.Float16 { return float16.Fromfloat32(float32(v)) }
	case bfloat16.BFloat16:
		fn = func(v int64) bfloat16.BFloat16 { return bfloat16.FromFloat32(float32(v)) }
	case float32:
		fn = func(v int64) float32 { return float32(v) }
	case float64:
		fn = func(v int64) float64 { return float64(v) }
	case complex64:
		fn = func(v int64) complex64 { return complex(float32(v), 0) }
	case complex128:
		fn = func(v int64) complex128 { return complex(float64(v), 0) }
	}
	return fn.(func(int64) R)
}

func floatReader[A Supported]() func(A) float64 {
	var a A
	var fn any
	switch any(a).(type) {
	case bool:
		fn = func(v bool) float64 { return float64(boolToInt(v)) }
	case int:
		fn = func(v int) float64 { return float64(v) }
	case int8:
		fn = func(v int8) float64 { return float64(v) }
	case int16:
		fn = func(v int16) float64 { return float64(v) }
	case int32:
		fn = func(v int32) float64 { return float64(v) }
	case int64:
		fn = func(v int64) float64 { return float64(v) }
	case uint8:
		fn = func(v uint8) float64 { return float64(v) }
	case uint16:
		fn = func(v uint16) float64 { return float64(v) }
	case uint32:
		fn = func(v uint32) float64 { return float64(v) }
	case uint64:
		fn = func(v uint64) float64 { return float64(v) }
	case float16.Float16:
		fn = func(v float16.Float16) float64 { return float64(v.Float32()) }
	case bfloat16.BFloat16:
		fn = func(v bfloat16.BFloat16) float64 { return v.Float64() }
	case float32:
		fn = func(v float32) float64 { return float64(v) }
	case float64:
		fn = func(v float64) float64 { return v }
	case complex64:
		fn = func(v complex64) float64 { return float64(real(v)) }
	case complex128:
		fn = func(v complex128) float64 { return real(v) }
	}
	return fn.(func(A) float64)
}

func floatWriter[R Supported]() func(float64) R {
	var r R
	var fn any
	switch any(r).(type) {
	case bool:
		fn = func(v float64) bool { return v != 0 }
	case int:
		fn = func(v float64) int { return int(v) }
	case int8:
		fn = func(v float64) int8 { return int8(v) }
	case int16:
		fn = func(v float64) int16 { return int16(v) }
	case int32:
		fn = func(v float64) int32 { return int32(v) }
	case int64:
		fn = func(v float64) int64 { return int64(v) }
	case uint8:
		fn = func(v float64) uint8 { return uint8(v) }
	case uint16:
		fn = func(v float64) uint16 { return uint16(v) }
	case uint32:
		fn = func(v float64) uint32 { return uint32(v) }
	case uint64:
		fn = func(v float64) uint64 { return uint64(v) }
	case float16.Float16:
		fn = func(v float64) float16.Float16 { return float16.Fromfloat32(float32(v)) }
	case bfloat16.BFloat16:
		fn = bfloat16.FromFloat64
	case float32:
		fn = func(v float64) float32 { return float32(v) }
	case float64:
		fn = func(v float64) float64 { return v }
	case complex64:
		fn = func(v float64) complex64 { return complex(float32(v), 0) }
	case complex128:
		fn = func(v float64) complex128 { return complex(v, 0) }
	}
	return fn.(func(float64) R)
}

func complexReader[A Supported]() func(A) complex128 {
	var a A
	switch any(a).(type) {
	case complex64:
		return any(func(v complex64) complex128 { return complex128(v) }).(func(A) complex128)
	case complex128:
		return any(func(v complex128) complex128 { return v }).(func(A) complex128)
	}
	toFloat := floatReader[A]()
	return func(v A) complex128 { return complex(toFloat(v), 0) }
}

func complexWriter[R Supported]() func(complex128) R {
	var r R
	switch any(r).(type) {
	case complex64:
		return any(func(v complex128) complex64 { return complex64(v) }).(func(complex128) R)
	case complex128:
		return any(func(v complex128) complex128 { return v }).(func(complex128) R)
	}
	fromFloat := floatWriter[R]()
	return func(v complex128) R { return fromFloat(real(v)) }
}
