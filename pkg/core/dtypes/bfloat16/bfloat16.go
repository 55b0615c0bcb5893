// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package bfloat16 implements the bfloat16 element type, stored as the upper 16 bits of a float32.
//
// It follows github.com/x448/float16 in spirit: a named uint16 with conversions to and from float32.
package bfloat16

import (
	"math"
	"strconv"
)

// BFloat16 (brain floating point) keeps the sign and the 8 bits exponent of a float32, but only 7 bits
// of mantissa. Conversions to float32 are exact; conversions from float32 round to nearest-even.
type BFloat16 uint16

// FromFloat32 converts a float32 to a BFloat16, rounding to the nearest representable value (ties to even).
// NaNs are preserved as quiet NaNs.
func FromFloat32(x float32) BFloat16 {
	bits := math.Float32bits(x)
	if math.IsNaN(float64(x)) {
		return BFloat16(bits>>16 | 0x0040)
	}
	rounding := uint32(0x7fff) + (bits>>16)&1
	return BFloat16((bits + rounding) >> 16)
}

// FromFloat64 converts a float64 to a BFloat16, going through float32.
func FromFloat64(x float64) BFloat16 {
	return FromFloat32(float32(x))
}

// FromBits converts a uint16 bit pattern to a BFloat16.
func FromBits(bits uint16) BFloat16 {
	return BFloat16(bits)
}

// Float32 returns the exact float32 value of f.
func (f BFloat16) Float32() float32 {
	return math.Float32frombits(uint32(f) << 16)
}

// Float64 returns the exact float64 value of f.
func (f BFloat16) Float64() float64 {
	return float64(f.Float32())
}

// Bits returns the uint16 bit pattern of f.
func (f BFloat16) Bits() uint16 {
	return uint16(f)
}

// IsNaN reports whether f is a "not-a-number" value.
func (f BFloat16) IsNaN() bool {
	return f&0x7f80 == 0x7f80 && f&0x007f != 0
}

// String implements fmt.Stringer.
func (f BFloat16) String() string {
	return strconv.FormatFloat(float64(f.Float32()), 'g', -1, 32)
}
