// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package tileops implements the per-tile operators applied while evaluating a tensor
// expression over a blocked tensor: Shift, which translates the range of a tile, and ScalShift,
// which also multiplies it by a scalar factor. Both optionally permute the tile axes.
//
// Whether an operator may reuse (consume) the storage of its argument is decided statically, by
// its strategy type parameter:
//
//   - Copying[R, A]: the argument is never modified, results are always newly allocated.
//   - Consuming[T]: when the argument is handed over with tiles.Take, the result is computed in
//     place and the argument tile itself is returned. It is only defined for operators whose
//     result and argument element types are the same: using it otherwise doesn't compile.
//
// Example:
//
//	op := tileops.NewScalShift[float64, float64, tileops.Consuming[float64]]([]int{5, -2}, 0.5)
//	result := op.ApplyOwned(tiles.Take(&tile))  // tile is now nil, result reuses its storage.
package tileops

import (
	"github.com/gomlx/tiled/pkg/core/dtypes"
	"github.com/gomlx/tiled/pkg/core/tiles"
)

// Strategy decides how an operator evaluates an argument tile it owns.
//
// It can only be implemented by Copying and Consuming.
type Strategy[R, A dtypes.Supported] interface {
	// Consumable returns whether the strategy reuses the argument's storage.
	Consumable() bool

	// eval applies op (or a plain element conversion if op is nil) to arg and shifts the
	// result's range by offsets.
	eval(arg *tiles.Tile[A], op func(A) R, offsets []int) *tiles.Tile[R]
}

// Copying strategy never consumes the argument: the result is always a new tile.
type Copying[R, A dtypes.Supported] struct{}

// Consumable implements Strategy.
func (Copying[R, A]) Consumable() bool { return false }

func (Copying[R, A]) eval(arg *tiles.Tile[A], op func(A) R, offsets []int) *tiles.Tile[R] {
	if op == nil {
		return tiles.ShiftTo(tiles.Convert[R](arg), offsets)
	}
	return tiles.ShiftTo(tiles.Map(arg, op), offsets)
}

// Consuming strategy computes the result in the argument's storage, and returns the argument tile.
//
// It only implements Strategy[T, T].
type Consuming[T dtypes.Supported] struct{}

// Consumable implements Strategy.
func (Consuming[T]) Consumable() bool { return true }

func (Consuming[T]) eval(arg *tiles.Tile[T], op func(T) T, offsets []int) *tiles.Tile[T] {
	if op != nil {
		tiles.MapTo(arg, op)
	}
	return tiles.ShiftTo(arg, offsets)
}

var (
	_ Strategy[float32, int8]    = Copying[float32, int8]{}
	_ Strategy[float64, float64] = Consuming[float64]{}
)
