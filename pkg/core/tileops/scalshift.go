// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tileops

import (
	"slices"

	"github.com/gomlx/tiled/pkg/core/dtypes"
	"github.com/gomlx/tiled/pkg/core/permutations"
	"github.com/gomlx/tiled/pkg/core/tiles"
)

// ScalShift operator multiplies the elements of a tile by a scalar factor and translates its
// range by a fixed vector of offsets.
//
// The strategy S decides whether an owned argument is consumed, see Copying and Consuming.
type ScalShift[R dtypes.Number, A dtypes.Supported, S Strategy[R, A]] struct {
	offsets []int
	factor  R
}

// NewScalShift returns a ScalShift operator with a copy of the given per-axis offsets.
func NewScalShift[R dtypes.Number, A dtypes.Supported, S Strategy[R, A]](offsets []int, factor R) ScalShift[R, A, S] {
	return ScalShift[R, A, S]{offsets: slices.Clone(offsets), factor: factor}
}

// Offsets returns a copy of the per-axis offsets of the operator.
func (op ScalShift[R, A, S]) Offsets() []int { return slices.Clone(op.offsets) }

// Factor returns the scalar factor of the operator.
func (op ScalShift[R, A, S]) Factor() R { return op.factor }

// IsConsumable returns whether an owned argument is consumed by ApplyOwned. It is fixed by the
// strategy type S.
func (op ScalShift[R, A, S]) IsConsumable() bool {
	var strategy S
	return strategy.Consumable()
}

// Rescale returns a copy of the operator with its factor multiplied by f.
func (op ScalShift[R, A, S]) Rescale(f R) ScalShift[R, A, S] {
	return ScalShift[R, A, S]{offsets: op.offsets, factor: op.factor * f}
}

// Negate returns a copy of the operator with its factor negated.
// For unsigned result types the factor wraps around, as Go's negation does.
func (op ScalShift[R, A, S]) Negate() ScalShift[R, A, S] {
	return ScalShift[R, A, S]{offsets: op.offsets, factor: -op.factor}
}

func (op ScalShift[R, A, S]) scaleFn() func(A) R {
	convert, factor := dtypes.ConvertFunc[R, A](), op.factor
	return func(a A) R { return convert(a) * factor }
}

// ApplyPermuted returns a new tile with the elements of arg scaled and converted to R, with the
// axes reordered by perm (in the same pass), and then shifted. The offsets are in the permuted
// axis order.
//
// It never consumes arg. It panics if the ranks of perm, arg and the offsets differ.
func (op ScalShift[R, A, S]) ApplyPermuted(arg *tiles.Tile[A], perm permutations.Permutation) *tiles.Tile[R] {
	return tiles.ShiftTo(tiles.ScalePermute(arg, op.factor, perm), op.offsets)
}

// Apply returns a new scaled and shifted tile. The argument is borrowed, it is never modified.
func (op ScalShift[R, A, S]) Apply(arg *tiles.Tile[A]) *tiles.Tile[R] {
	return tiles.ShiftTo(tiles.Scale(arg, op.factor), op.offsets)
}

// ApplyOwned scales and shifts a tile whose ownership was transferred with tiles.Take.
//
// With the Consuming strategy the argument tile is scaled and shifted in place, and returned.
// Otherwise, it is the same as Apply.
func (op ScalShift[R, A, S]) ApplyOwned(arg tiles.Owned[A]) *tiles.Tile[R] {
	var strategy S
	return strategy.eval(arg.Tile(), op.scaleFn(), op.offsets)
}

// ConsumeScalShift scales and shifts the owned tile in place and returns it, regardless of the
// strategy of op.
//
// It is only defined when the result and argument types are the same.
func ConsumeScalShift[T dtypes.Number, S Strategy[T, T]](op ScalShift[T, T, S], arg tiles.Owned[T]) *tiles.Tile[T] {
	return tiles.ShiftTo(tiles.ScaleTo(arg.Tile(), op.factor), op.offsets)
}
