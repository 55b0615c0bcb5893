// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tiles

import (
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/tiled/pkg/core/permutations"
	"github.com/gomlx/tiled/pkg/core/ranges"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShift(t *testing.T) {
	src := iotaTile(ranges.Make(2, 3))
	shifted := Shift(src, []int{5, -2})
	assert.Equal(t, []int{5, -2}, shifted.Range().Lower)
	assert.Equal(t, []int{7, 1}, shifted.Range().Upper)
	assert.Equal(t, src.Flat(), shifted.Flat())
	assert.True(t, src.Range().Equal(ranges.Make(2, 3)), "Shift must not change its input")
	assert.Equal(t, src.At(1, 2), shifted.At(6, 0))

	// Shift and unshift round trip.
	back := ShiftTo(shifted, []int{-5, 2})
	require.Same(t, shifted, back)
	require.True(t, back.Equal(src))

	require.Panics(t, func() { _ = Shift(src, []int{1}) })
}

func TestScale(t *testing.T) {
	src := FromFlatData(ranges.Make(3), []int{1, -2, 3})
	scaled := Scale(src, 0.5)
	assert.Equal(t, []float64{0.5, -1, 1.5}, scaled.Flat())
	assert.Equal(t, []int{1, -2, 3}, src.Flat())

	// Scaling by 1 is the identity.
	require.True(t, Scale(src, 1).Equal(src))

	got := ScaleTo(src, -3)
	require.Same(t, src, got)
	assert.Equal(t, []int{-3, 6, -9}, got.Flat())

	c := FromFlatData(ranges.Make(2), []complex64{1 + 1i, 2})
	assert.Equal(t, []complex64{-1 + 1i, 2i}, ScaleTo(c, 1i).Flat())
}

func TestScalePermute(t *testing.T) {
	src := FromFlatData(ranges.MakeBounds([]int{1, 1}, []int{3, 4}), []float32{1, 2, 3, 4, 5, 6})
	perm := permutations.Make(1, 0)
	got := ScalePermute(src, 2.0, perm)
	assert.Equal(t, []float64{2, 8, 4, 10, 6, 12}, got.Flat())
	require.True(t, got.Equal(Permute(Scale(src, 2.0), perm)))
	require.True(t, got.Range().Equal(ranges.MakeBounds([]int{1, 1}, []int{4, 3})))
}

func TestCopyOverlap(t *testing.T) {
	src := iotaTile(ranges.Make(3, 3))
	dst := Full(ranges.MakeBounds([]int{1, 2}, []int{4, 4}), -1.0)
	n := CopyOverlap(dst, src)
	require.Equal(t, 2, n)
	// Only coordinates (1,2) and (2,2) overlap.
	assert.Equal(t, []float64{6, -1, 9, -1, -1, -1}, dst.Flat())

	// No overlap.
	require.Equal(t, 0, CopyOverlap(dst, Shift(src, []int{10, 10})))

	// Full overlap is a copy.
	full := New[float64](ranges.Make(3, 3))
	require.Equal(t, 9, CopyOverlap(full, src))
	require.True(t, full.Equal(src))

	// Scalars.
	scalar := New[float64](ranges.Make())
	require.Equal(t, 1, CopyOverlap(scalar, FromFlatData(ranges.Make(), []float64{3})))
	require.Equal(t, []float64{3}, scalar.Flat())

	err := exceptions.TryCatch[error](func() { _ = CopyOverlap(scalar, src) })
	require.ErrorContains(t, err, "incompatible rank")
}

func TestSummary(t *testing.T) {
	tile := FromFlatData(ranges.Make(2, 3), []float64{1, 2.5, 3, 4, 5, 6})
	assert.Equal(t, "Tile[Float64][[0 0], [2 3]): \n{{1, 2.5, 3},\n {4, 5, 6}}", tile.String())

	row := FromFlatData(ranges.MakeBounds([]int{2}, []int{10}), []int{0, 1, 2, 3, 4, 5, 6, 7})
	assert.Equal(t, "Tile[Int64][[2], [10]): {0, 1, 2, ..., 5, 6, 7}", row.String())

	scalar := FromFlatData(ranges.Make(), []float32{1.0 / 3.0})
	assert.Equal(t, "Tile[Float32][[], []): (0.33)", scalar.Summary(2))

	empty := New[bool](ranges.Make(2, 0))
	assert.Equal(t, "Tile[Bool][[0 0], [2 0])", empty.String())

	big := New[float32](ranges.Make(100, 100))
	assert.Contains(t, big.Summary(2), "(10,000 elements, 40 kB)")
}
