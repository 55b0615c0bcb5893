// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tileops

import (
	"slices"

	"github.com/gomlx/tiled/pkg/core/dtypes"
	"github.com/gomlx/tiled/pkg/core/permutations"
	"github.com/gomlx/tiled/pkg/core/tiles"
)

// Shift operator translates the range of a tile of A by a fixed vector of offsets, converting
// the elements to R.
//
// The strategy S decides whether an owned argument is consumed, see Copying and Consuming.
type Shift[R, A dtypes.Supported, S Strategy[R, A]] struct {
	offsets []int
}

// NewShift returns a Shift operator with a copy of the given per-axis offsets.
func NewShift[R, A dtypes.Supported, S Strategy[R, A]](offsets []int) Shift[R, A, S] {
	return Shift[R, A, S]{offsets: slices.Clone(offsets)}
}

// Offsets returns a copy of the per-axis offsets of the operator.
func (op Shift[R, A, S]) Offsets() []int { return slices.Clone(op.offsets) }

// IsConsumable returns whether an owned argument is consumed by ApplyOwned. It is fixed by the
// strategy type S.
func (op Shift[R, A, S]) IsConsumable() bool {
	var strategy S
	return strategy.Consumable()
}

// ApplyPermuted returns a new tile with the axes of arg reordered by perm, converted to R, and
// then shifted. The permutation happens first, so the offsets are in the permuted axis order.
//
// It never consumes arg. It panics if the ranks of perm, arg and the offsets differ.
func (op Shift[R, A, S]) ApplyPermuted(arg *tiles.Tile[A], perm permutations.Permutation) *tiles.Tile[R] {
	return tiles.ShiftTo(tiles.PermuteUnary(arg, perm, dtypes.ConvertFunc[R, A]()), op.offsets)
}

// Apply returns a new shifted tile, converted to R. The argument is borrowed, it is never modified.
func (op Shift[R, A, S]) Apply(arg *tiles.Tile[A]) *tiles.Tile[R] {
	return Copying[R, A]{}.eval(arg, nil, op.offsets)
}

// ApplyOwned shifts a tile whose ownership was transferred with tiles.Take.
//
// With the Consuming strategy the range of the argument tile is shifted in place, and the
// argument tile is returned. Otherwise, it is the same as Apply.
func (op Shift[R, A, S]) ApplyOwned(arg tiles.Owned[A]) *tiles.Tile[R] {
	var strategy S
	return strategy.eval(arg.Tile(), nil, op.offsets)
}

// Consume shifts the owned tile in place and returns it, regardless of the strategy of op.
//
// It is only defined when the result and argument types are the same.
func Consume[T dtypes.Supported, S Strategy[T, T]](op Shift[T, T, S], arg tiles.Owned[T]) *tiles.Tile[T] {
	return Consuming[T]{}.eval(arg.Tile(), nil, op.offsets)
}
