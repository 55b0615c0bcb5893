// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package tiles implements Tile, a dense multi-dimensional block of a larger tensor, and the
// per-tile kernels used while evaluating tensor expressions: permutation of the axes (with an
// elementwise operation fused into the remapping), shifting of the tile origin and scaling.
//
// A Tile owns its flat data, laid out in row-major order over its ranges.Range.
//
// Kernels never consume their inputs, unless explicitly stated (the "...To" variants mutate in
// place). To hand over a tile to an operation that may reuse its storage, use Take, which returns
// an Owned token and clears the caller's reference.
package tiles

import (
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/tiled/pkg/core/dtypes"
	"github.com/gomlx/tiled/pkg/core/ranges"
	"github.com/gomlx/tiled/pkg/support/xslices"
)

// Tile is a dense multi-dimensional array covering the ranges.Range of a larger blocked tensor.
//
// The flat data has exactly Range().Volume() elements, in row-major order.
type Tile[T dtypes.Supported] struct {
	r    ranges.Range
	flat []T
}

// New returns a zero-filled tile over the range r.
func New[T dtypes.Supported](r ranges.Range) *Tile[T] {
	return &Tile[T]{r: r.Clone(), flat: make([]T, r.Volume())}
}

// Full returns a tile over the range r with all elements set to value.
func Full[T dtypes.Supported](r ranges.Range, value T) *Tile[T] {
	t := New[T](r)
	xslices.FillSlice(t.flat, value)
	return t
}

// FromFlatData returns a tile over the range r that takes ownership of the given flat data.
//
// It panics if len(flat) != r.Volume().
func FromFlatData[T dtypes.Supported](r ranges.Range, flat []T) *Tile[T] {
	if len(flat) != r.Volume() {
		exceptions.Panicf("tiles.FromFlatData(%s): flat data has %d elements, but range has volume %d",
			r, len(flat), r.Volume())
	}
	return &Tile[T]{r: r.Clone(), flat: flat}
}

// Range returns a copy of the tile's range.
func (t *Tile[T]) Range() ranges.Range { return t.r.Clone() }

// Rank of the tile.
func (t *Tile[T]) Rank() int { return t.r.Rank() }

// Size returns the number of elements of the tile.
func (t *Tile[T]) Size() int { return len(t.flat) }

// DType of the tile elements.
func (t *Tile[T]) DType() dtypes.DType { return dtypes.FromGenericsType[T]() }

// Flat returns the underlying flat data of the tile, in row-major order.
//
// It is not a copy: changes to it change the tile.
func (t *Tile[T]) Flat() []T { return t.flat }

// At returns the element at the given absolute coordinates.
//
// It panics if the coordinates are outside the tile's range.
func (t *Tile[T]) At(coords ...int) T {
	return t.flat[t.r.Ordinal(coords)]
}

// Set the element at the given absolute coordinates.
//
// It panics if the coordinates are outside the tile's range.
func (t *Tile[T]) Set(value T, coords ...int) {
	t.flat[t.r.Ordinal(coords)] = value
}

// Clone returns a deep copy of the tile.
func (t *Tile[T]) Clone() *Tile[T] {
	return &Tile[T]{r: t.r.Clone(), flat: slices.Clone(t.flat)}
}

// Equal returns whether both tiles have the same range and the same values.
//
// Floating point values are compared with ==, so NaNs are never equal.
func (t *Tile[T]) Equal(t2 *Tile[T]) bool {
	if t == t2 {
		return true
	}
	if t == nil || t2 == nil {
		return false
	}
	return t.r.Equal(t2.r) && slices.Equal(t.flat, t2.flat)
}

// Reset re-shapes the tile to the range r.
//
// The storage is reused if it has enough capacity, otherwise it is reallocated.
// The contents after Reset are undefined: the caller is expected to overwrite all elements.
func (t *Tile[T]) Reset(r ranges.Range) {
	volume := r.Volume()
	t.r = r.Clone()
	if cap(t.flat) >= volume {
		t.flat = t.flat[:volume]
		return
	}
	t.flat = make([]T, volume)
}
