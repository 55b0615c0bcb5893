// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tiles

import (
	"github.com/gomlx/tiled/pkg/core/dtypes"
	"github.com/gomlx/tiled/pkg/core/ranges"
)

// CopyOverlap copies into dst the elements of src whose absolute coordinates fall inside
// dst's range, and returns the number of elements copied. Elements of dst outside of the
// overlap are left untouched.
//
// It panics if the tiles have different ranks.
func CopyOverlap[T dtypes.Supported](dst, src *Tile[T]) int {
	ranges.AssertRank(src, dst.Rank())
	overlap, ok := dst.r.Intersect(src.r)
	if !ok {
		return 0
	}
	if overlap.Rank() == 0 {
		dst.flat[0] = src.flat[0]
		return 1
	}

	// Copy one contiguous row (the last axis) at a time.
	rowLen := overlap.Extent(-1)
	lastAxis := overlap.Rank() - 1
	rowsRange := overlap.Clone()
	rowsRange.Upper[lastAxis] = rowsRange.Lower[lastAxis] + 1
	for _, coords := range rowsRange.Iter() {
		dstStart := dst.r.Ordinal(coords)
		srcStart := src.r.Ordinal(coords)
		copy(dst.flat[dstStart:dstStart+rowLen], src.flat[srcStart:srcStart+rowLen])
	}
	return overlap.Volume()
}
