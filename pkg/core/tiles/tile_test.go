// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tiles

import (
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/tiled/pkg/core/dtypes"
	"github.com/gomlx/tiled/pkg/core/ranges"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTile_Basics(t *testing.T) {
	tile := New[float32](ranges.Make(2, 3))
	assert.Equal(t, 6, tile.Size())
	assert.Equal(t, 2, tile.Rank())
	assert.Equal(t, dtypes.Float32, tile.DType())
	assert.Equal(t, []float32{0, 0, 0, 0, 0, 0}, tile.Flat())

	tile.Set(7, 1, 2)
	assert.Equal(t, float32(7), tile.At(1, 2))
	assert.Equal(t, float32(7), tile.Flat()[5])
	require.Panics(t, func() { _ = tile.At(2, 0) })

	full := Full(ranges.MakeBounds([]int{1, 1}, []int{2, 3}), int8(-1))
	assert.Equal(t, []int8{-1, -1}, full.Flat())
	assert.Equal(t, int8(-1), full.At(1, 2))

	err := exceptions.TryCatch[error](func() { _ = FromFlatData(ranges.Make(2, 2), []int{1, 2, 3}) })
	require.ErrorContains(t, err, "has volume 4")

	// Range returns a copy.
	r := tile.Range()
	r.Lower[0] = 10
	assert.Equal(t, []int{0, 0}, tile.Range().Lower)
}

func TestTile_CloneEqual(t *testing.T) {
	tile := FromFlatData(ranges.Make(3), []int{1, 2, 3})
	clone := tile.Clone()
	require.True(t, tile.Equal(clone))
	clone.Flat()[0] = 100
	require.False(t, tile.Equal(clone))
	require.Equal(t, 1, tile.At(0))

	shifted := Shift(tile, []int{1})
	require.False(t, tile.Equal(shifted), "same values on a different range are not equal")
	require.False(t, tile.Equal(nil))
}

func TestTile_Reset(t *testing.T) {
	tile := FromFlatData(ranges.Make(2, 3), []float64{1, 2, 3, 4, 5, 6})
	flat := tile.Flat()
	tile.Reset(ranges.MakeBounds([]int{5}, []int{9}))
	assert.Equal(t, 4, tile.Size())
	assert.Equal(t, 1, tile.Rank())
	assert.Same(t, &flat[0], &tile.Flat()[0], "storage with enough capacity should be reused")

	tile.Reset(ranges.Make(4, 4))
	assert.Equal(t, 16, tile.Size())
	assert.True(t, tile.Range().Equal(ranges.Make(4, 4)))
}

func TestTake(t *testing.T) {
	tile := New[int32](ranges.Make(2))
	original := tile
	owned := Take(&tile)
	require.Nil(t, tile)
	require.Same(t, original, owned.Tile())

	require.Panics(t, func() { _ = Take(&tile) })
	require.Panics(t, func() { _ = Owned[int32]{}.Tile() })
}
