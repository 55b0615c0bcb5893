// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tiles

import (
	"github.com/gomlx/tiled/pkg/core/dtypes"
	"github.com/gomlx/tiled/pkg/core/permutations"
)

// Shift returns a copy of t with its range translated by offsets. The element values and
// their order are unchanged.
//
// It panics if len(offsets) != t.Rank().
func Shift[T dtypes.Supported](t *Tile[T], offsets []int) *Tile[T] {
	return ShiftTo(t.Clone(), offsets)
}

// ShiftTo translates the range of t in place by offsets, and returns t.
//
// It panics if len(offsets) != t.Rank().
func ShiftTo[T dtypes.Supported](t *Tile[T], offsets []int) *Tile[T] {
	t.r.Shift(offsets)
	return t
}

// Scale returns a new tile with the elements of t converted to R and multiplied by factor.
func Scale[R dtypes.Number, A dtypes.Supported](t *Tile[A], factor R) *Tile[R] {
	convert := dtypes.ConvertFunc[R, A]()
	return Map(t, func(a A) R { return convert(a) * factor })
}

// ScaleTo multiplies the elements of t by factor in place, and returns t.
func ScaleTo[T dtypes.Number](t *Tile[T], factor T) *Tile[T] {
	for i := range t.flat {
		t.flat[i] *= factor
	}
	return t
}

// ScalePermute is Scale fused with Permute: it returns a new tile with the elements of t
// converted to R, multiplied by factor and with the axes reordered by perm, in one pass.
//
// It panics if perm.Dim() != t.Rank().
func ScalePermute[R dtypes.Number, A dtypes.Supported](t *Tile[A], factor R, perm permutations.Permutation) *Tile[R] {
	convert := dtypes.ConvertFunc[R, A]()
	return PermuteUnary(t, perm, func(a A) R { return convert(a) * factor })
}
