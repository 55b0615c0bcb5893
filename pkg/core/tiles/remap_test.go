// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tiles

import (
	"fmt"
	"testing"

	"github.com/gomlx/tiled/pkg/core/permutations"
	"github.com/gomlx/tiled/pkg/core/ranges"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemapper_Example(t *testing.T) {
	src := ranges.Make(2, 3)
	remap := NewRemapper(permutations.Make(1, 0), src)
	require.Equal(t, []int{3, 2}, remap.Dest().Extents())
	require.Equal(t, []int{2, 1}, remap.Dest().Strides())
	require.Equal(t, 6, remap.Size())
	got := make([]int, 0, 6)
	for _, j := range remap.All() {
		got = append(got, j)
	}
	assert.Equal(t, []int{0, 2, 4, 1, 3, 5}, got)
}

// checkBijection checks that the remapper of perm over src visits every destination index
// exactly once, that each element keeps its coordinates reordered by perm, and that the
// remapper of the inverse permutation maps the indices back.
func checkBijection(t *testing.T, perm permutations.Permutation, src ranges.Range) {
	remap := NewRemapper(perm, src)
	dst := remap.Dest()
	require.Equal(t, src.Volume(), dst.Volume())
	seen := make([]bool, remap.Size())
	count := 0
	for i, j := range remap.All() {
		require.GreaterOrEqual(t, j, 0)
		require.Less(t, j, remap.Size())
		require.False(t, seen[j], "destination index %d hit twice", j)
		seen[j] = true
		count++

		// The element keeps its coordinates, reordered by the permutation.
		dstCoords := permutations.ApplyInts(perm, src.Coords(i))
		require.Equal(t, dst.Ordinal(dstCoords), j)
	}
	require.Equal(t, remap.Size(), count)

	inverse := NewRemapper(perm.Inverse(), dst)
	require.True(t, inverse.Dest().Equal(src))
	for i, j := range remap.All() {
		require.Equal(t, i, inverse.Index(j))
	}
}

// allPermutations returns every permutation of [0, n).
func allPermutations(n int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}
	var perms [][]int
	for _, sub := range allPermutations(n - 1) {
		for pos := 0; pos <= len(sub); pos++ {
			p := make([]int, 0, n)
			p = append(p, sub[:pos]...)
			p = append(p, n-1)
			p = append(p, sub[pos:]...)
			perms = append(perms, p)
		}
	}
	return perms
}

func TestRemapper_Bijection(t *testing.T) {
	testRanges := []ranges.Range{
		ranges.Make(2, 3, 4),
		ranges.MakeBounds([]int{1, -2, 3}, []int{3, 1, 4}),
		ranges.Make(3, 1, 5),
	}
	for _, src := range testRanges {
		for _, p := range allPermutations(3) {
			t.Run(fmt.Sprintf("%s-%v", src, p), func(t *testing.T) {
				checkBijection(t, permutations.Make(p...), src)
			})
		}
	}
}

func TestRemapper_Rank1(t *testing.T) {
	src := ranges.MakeBounds([]int{-3}, []int{4})
	checkBijection(t, permutations.Identity(1), src)
	remap := NewRemapper(permutations.Identity(1), src)
	require.True(t, remap.Dest().Equal(src))
	for i, j := range remap.All() {
		require.Equal(t, i, j)
	}
}

func TestRemapper_Rank4(t *testing.T) {
	src := ranges.MakeBounds([]int{1, 0, -2, 3}, []int{3, 3, -1, 7})
	perms := allPermutations(4)
	require.Len(t, perms, 24)
	for _, p := range perms {
		t.Run(fmt.Sprintf("%v", p), func(t *testing.T) {
			checkBijection(t, permutations.Make(p...), src)
		})
	}
}

func TestRemapper_Rank5(t *testing.T) {
	src := ranges.Make(2, 3, 1, 2, 3)
	for _, p := range [][]int{{4, 3, 2, 1, 0}, {1, 2, 3, 4, 0}, {2, 4, 0, 3, 1}, {0, 1, 2, 4, 3}} {
		t.Run(fmt.Sprintf("%v", p), func(t *testing.T) {
			checkBijection(t, permutations.Make(p...), src)
		})
	}

	// Reversing the axes: destination coordinates are the source coordinates reversed.
	remap := NewRemapper(permutations.Make(4, 3, 2, 1, 0), src)
	require.Equal(t, []int{3, 2, 1, 3, 2}, remap.Dest().Extents())
	last := src.Volume() - 1
	require.Equal(t, remap.Size()-1, remap.Index(last))
	require.Equal(t, 0, remap.Index(0))
}

func TestRemapper_EdgeCases(t *testing.T) {
	// Identity: destination index is the source index.
	remap := NewRemapper(permutations.Identity(4), ranges.Make(2, 3, 2, 2))
	for i, j := range remap.All() {
		require.Equal(t, i, j)
	}

	// Scalar: a single element that maps to itself.
	remap = NewRemapper(permutations.Identity(0), ranges.Make())
	count := 0
	for i, j := range remap.All() {
		require.Equal(t, 0, i)
		require.Equal(t, 0, j)
		count++
	}
	require.Equal(t, 1, count)

	// Empty: no iterations.
	remap = NewRemapper(permutations.Make(1, 0), ranges.Make(3, 0))
	require.Equal(t, 0, remap.Size())
	require.Equal(t, []int{0, 3}, remap.Dest().Extents())
	for range remap.All() {
		t.Fatal("empty range should not iterate")
	}

	require.Panics(t, func() { _ = NewRemapper(permutations.Make(1, 0), ranges.Make(2, 2, 2)) })
}
