// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package dtypes

import (
	"math"
	"testing"

	"github.com/gomlx/tiled/pkg/core/dtypes/bfloat16"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestFromGenericsType(t *testing.T) {
	assert.Equal(t, Float32, FromGenericsType[float32]())
	assert.Equal(t, Float64, FromGenericsType[float64]())
	assert.Equal(t, Float16, FromGenericsType[float16.Float16]())
	assert.Equal(t, BFloat16, FromGenericsType[bfloat16.BFloat16]())
	assert.Equal(t, Uint16, FromGenericsType[uint16]())
	assert.Equal(t, Bool, FromGenericsType[bool]())
	assert.Equal(t, Complex64, FromGenericsType[complex64]())
	assert.Equal(t, Int64, FromGenericsType[int64]())
}

func TestDType_Properties(t *testing.T) {
	assert.Equal(t, 2, Float16.Size())
	assert.Equal(t, 2, BFloat16.Size())
	assert.Equal(t, 8, Float64.Size())
	assert.Equal(t, 16, Complex128.Size())
	assert.Equal(t, uintptr(4), Int32.Memory())

	assert.True(t, BFloat16.IsFloat())
	assert.True(t, BFloat16.IsFloat16())
	assert.False(t, Float32.IsFloat16())
	assert.True(t, Uint8.IsInt())
	assert.True(t, Uint8.IsUnsigned())
	assert.False(t, Int8.IsUnsigned())
	assert.True(t, Complex64.IsComplex())
	assert.False(t, Bool.IsInt())

	require.Panics(t, func() { _ = InvalidDType.GoType() })
}

func TestDType_String(t *testing.T) {
	assert.Equal(t, "Float32", Float32.String())
	assert.Equal(t, "BFloat16", BFloat16.String())
	assert.Equal(t, "DType(99)", DType(99).String())
}

func TestMapOfNames(t *testing.T) {
	assert.Equal(t, Float16, MapOfNames["Float16"])
	assert.Equal(t, Float16, MapOfNames["float16"])
	assert.Equal(t, Float16, MapOfNames["f16"])
	assert.Equal(t, BFloat16, MapOfNames["bf16"])
	assert.Equal(t, Bool, MapOfNames["pred"])
}

func TestConvert(t *testing.T) {
	// Identity.
	assert.Equal(t, float32(1.5), Convert[float32](float32(1.5)))

	// Integer to integer follows Go conversion rules.
	assert.Equal(t, int8(-1), Convert[int8](uint64(math.MaxUint64)))
	assert.Equal(t, uint8(44), Convert[uint8](int32(300)))
	assert.Equal(t, int64(7), Convert[int64](7))

	// Floats.
	assert.Equal(t, int32(-3), Convert[int32](-3.7))
	assert.Equal(t, float64(1<<63), Convert[float64](uint64(1<<63)))
	assert.Equal(t, float32(0.5), Convert[float16.Float16](float32(0.5)).Float32())
	assert.Equal(t, float32(2), Convert[bfloat16.BFloat16](int16(2)).Float32())
	assert.Equal(t, 3.0, Convert[float64](float16.Fromfloat32(3)))

	// Complex.
	assert.Equal(t, complex64(complex(2, 0)), Convert[complex64](int8(2)))
	assert.Equal(t, 2.5, Convert[float64](complex(2.5, 1)))
	assert.Equal(t, complex128(complex(1, 2)), Convert[complex128](complex64(complex(1, 2))))

	// Bool.
	assert.True(t, Convert[bool](0.1))
	assert.False(t, Convert[bool](int32(0)))
	assert.Equal(t, float32(1), Convert[float32](true))
	assert.Equal(t, uint16(0), Convert[uint16](false))
}

func TestConvertFunc(t *testing.T) {
	toF16 := ConvertFunc[float16.Float16, float64]()
	for _, v := range []float64{0, 1, -2, 0.25, 1024} {
		require.Equal(t, float32(v), toF16(v).Float32())
	}
}

func TestBFloat16(t *testing.T) {
	assert.Equal(t, float32(1), bfloat16.FromFloat32(1).Float32())
	// 1 + 2^-8 is halfway between 1 and the next bfloat16 (1 + 2^-7): ties to even rounds down.
	assert.Equal(t, float32(1), bfloat16.FromFloat32(1+1.0/256).Float32())
	// 1 + 3*2^-8 rounds up to 1 + 2^-6.
	assert.Equal(t, float32(1+1.0/64), bfloat16.FromFloat32(1+3.0/256).Float32())
	assert.True(t, bfloat16.FromFloat32(float32(math.NaN())).IsNaN())
	assert.Equal(t, "-2.5", bfloat16.FromFloat64(-2.5).String())
}
