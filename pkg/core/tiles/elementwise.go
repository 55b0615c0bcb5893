// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tiles

import (
	"github.com/gomlx/tiled/pkg/core/dtypes"
	"github.com/gomlx/tiled/pkg/core/ranges"
)

// Map returns a new tile, with the same range as t, with op applied to each element.
func Map[R, A dtypes.Supported](t *Tile[A], op func(A) R) *Tile[R] {
	dst := New[R](t.r)
	for i, a := range t.flat {
		dst.flat[i] = op(a)
	}
	return dst
}

// MapTo applies op to each element of t in place, and returns t.
func MapTo[T dtypes.Supported](t *Tile[T], op func(T) T) *Tile[T] {
	for i, a := range t.flat {
		t.flat[i] = op(a)
	}
	return t
}

// Zip returns a new tile with op applied to the elements of left and right pairwise.
//
// Both tiles must cover the same range, otherwise it panics.
func Zip[R, L, Rt dtypes.Supported](left *Tile[L], right *Tile[Rt], op func(L, Rt) R) *Tile[R] {
	ranges.AssertSameRange(left, right)
	dst := New[R](left.r)
	for i, l := range left.flat {
		dst.flat[i] = op(l, right.flat[i])
	}
	return dst
}

// Convert returns a new tile with the elements of t converted to R. See dtypes.ConvertFunc
// for the conversion rules.
func Convert[R, A dtypes.Supported](t *Tile[A]) *Tile[R] {
	return Map(t, dtypes.ConvertFunc[R, A]())
}
