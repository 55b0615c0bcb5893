// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tiles

import (
	"github.com/gomlx/tiled/pkg/core/dtypes"
	"github.com/gomlx/tiled/pkg/core/permutations"
	"github.com/gomlx/tiled/pkg/core/ranges"
)

// Permute returns a new tile with the axes of t reordered by perm: the element at the source
// coordinates c lands at the destination coordinates permutations.ApplyInts(perm, c).
//
// The input tile is not changed. It panics if perm.Dim() != t.Rank().
func Permute[T dtypes.Supported](t *Tile[T], perm permutations.Permutation) *Tile[T] {
	remap := NewRemapper(perm, t.r)
	dst := New[T](remap.dst)
	for i, j := range remap.All() {
		dst.flat[j] = t.flat[i]
	}
	return dst
}

// PermuteUnary returns a new tile with op applied to every element of t, and the axes reordered
// by perm, in a single pass: dst[remap(i)] = op(src[i]).
//
// The input tile is not changed. It panics if perm.Dim() != t.Rank().
func PermuteUnary[R, A dtypes.Supported](t *Tile[A], perm permutations.Permutation, op func(A) R) *Tile[R] {
	remap := NewRemapper(perm, t.r)
	dst := New[R](remap.dst)
	for i, j := range remap.All() {
		dst.flat[j] = op(t.flat[i])
	}
	return dst
}

// PermuteBinary returns a new tile with op applied to every pair of elements of left and right,
// and the axes reordered by perm, in a single pass: dst[remap(i)] = op(left[i], right[i]).
//
// Both tiles must cover the same range, otherwise it panics. It also panics if
// perm.Dim() != left.Rank().
func PermuteBinary[R, L, Rt dtypes.Supported](left *Tile[L], right *Tile[Rt], perm permutations.Permutation,
	op func(L, Rt) R) *Tile[R] {
	ranges.AssertSameRange(left, right)
	remap := NewRemapper(perm, left.r)
	dst := New[R](remap.dst)
	for i, j := range remap.All() {
		dst.flat[j] = op(left.flat[i], right.flat[i])
	}
	return dst
}
