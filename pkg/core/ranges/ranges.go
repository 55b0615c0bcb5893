// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package ranges defines Range, the shape descriptor of a tile: per-axis lower and upper bounds,
// from which extents and row-major strides are derived.
//
// A tile of a larger blocked tensor covers a sub-box of the global index space, so unlike
// a plain shape a Range has an origin (its Lower bound), which can be translated without touching
// the tile data (see Range.Shift).
//
// ## Glossary
//
//   - Rank: number of axes of the range.
//   - Extent: the number of indices covered in one axis, Upper[axis]-Lower[axis].
//   - Volume: the number of elements covered, the product of all extents.
//   - Stride (also "weight"): the per-axis multiplier converting between a flat (ordinal) index and
//     per-axis coordinates in row-major layout: stride[axis] is the product of the extents of all the
//     following axes.
//
// Example: `ranges.MakeBounds([]int{1, 1}, []int{3, 4})` covers rows 1 and 2 and columns 1 to 3, with
// extents [2 3], strides [3 1] and volume 6.
package ranges

import (
	"fmt"
	"iter"
	"slices"

	"github.com/gomlx/exceptions"
)

// Range is the half-open box [Lower, Upper) of coordinates covered by a tile.
//
// Create it with Make or MakeBounds. Range is a value type, but Lower and Upper are slices:
// use Clone if a range is going to be modified and it is shared.
type Range struct {
	Lower []int
	Upper []int
}

// Make returns a Range with lower bound at the origin and the given extents.
//
// Extents of 0 are allowed, and create an empty range. Negative extents panic.
func Make(extents ...int) Range {
	r := Range{Lower: make([]int, len(extents)), Upper: slices.Clone(extents)}
	for axis, extent := range extents {
		if extent < 0 {
			exceptions.Panicf("ranges.Make(%v): axis %d has negative extent", extents, axis)
		}
	}
	return r
}

// MakeBounds returns a Range with the given lower (inclusive) and upper (exclusive) bounds.
//
// It panics if the lengths differ or if upper < lower in any axis.
func MakeBounds(lower, upper []int) Range {
	if len(lower) != len(upper) {
		exceptions.Panicf("ranges.MakeBounds(%v, %v): lower and upper bounds have different ranks", lower, upper)
	}
	for axis := range lower {
		if upper[axis] < lower[axis] {
			exceptions.Panicf("ranges.MakeBounds(%v, %v): axis %d has upper bound < lower bound", lower, upper, axis)
		}
	}
	return Range{Lower: slices.Clone(lower), Upper: slices.Clone(upper)}
}

// Rank of the range, that is, the number of axes (dimensions).
func (r Range) Rank() int { return len(r.Lower) }

// Extent returns the number of indices covered in the given axis.
// The axis can be negative, in which case it counts from the end -- so axis=-1 refers to the last axis.
func (r Range) Extent(axis int) int {
	adjustedAxis := axis
	if adjustedAxis < 0 {
		adjustedAxis += r.Rank()
	}
	if adjustedAxis < 0 || adjustedAxis >= r.Rank() {
		exceptions.Panicf("Range.Extent(%d) out-of-bounds for rank %d (range=%s)", axis, r.Rank(), r)
	}
	return r.Upper[adjustedAxis] - r.Lower[adjustedAxis]
}

// Extents returns a newly allocated slice with the extent of each axis.
func (r Range) Extents() []int {
	extents := make([]int, r.Rank())
	for axis := range extents {
		extents[axis] = r.Upper[axis] - r.Lower[axis]
	}
	return extents
}

// Volume returns the number of elements covered by the range: the product of all extents.
// A rank-0 range has volume 1 (a scalar).
func (r Range) Volume() int {
	volume := 1
	for axis := range r.Lower {
		volume *= r.Upper[axis] - r.Lower[axis]
	}
	return volume
}

// IsEmpty returns whether the range covers no elements.
func (r Range) IsEmpty() bool {
	return r.Volume() == 0
}

// Strides returns the row-major strides (also called weights) for each axis of the range:
// strides[axis] is the product of the extents of all axes after it.
//
// Notice the strides are **not in bytes**, but in indices.
func (r Range) Strides() []int {
	strides := make([]int, r.Rank())
	currentStride := 1
	for axis := r.Rank() - 1; axis >= 0; axis-- {
		strides[axis] = currentStride
		currentStride *= r.Upper[axis] - r.Lower[axis]
	}
	return strides
}

// Equal returns whether both ranges have the same rank and bounds.
func (r Range) Equal(r2 Range) bool {
	return slices.Equal(r.Lower, r2.Lower) && slices.Equal(r.Upper, r2.Upper)
}

// EqualExtents returns whether both ranges have the same extents, regardless of their origin.
func (r Range) EqualExtents(r2 Range) bool {
	if r.Rank() != r2.Rank() {
		return false
	}
	for axis := range r.Lower {
		if r.Upper[axis]-r.Lower[axis] != r2.Upper[axis]-r2.Lower[axis] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the range.
func (r Range) Clone() Range {
	return Range{Lower: slices.Clone(r.Lower), Upper: slices.Clone(r.Upper)}
}

// String implements fmt.Stringer.
func (r Range) String() string {
	return fmt.Sprintf("[%v, %v)", r.Lower, r.Upper)
}

// Shift translates the range in place by the given per-axis offsets: both bounds move, extents
// are unchanged.
//
// It panics if len(offsets) != r.Rank().
func (r *Range) Shift(offsets []int) {
	if len(offsets) != r.Rank() {
		exceptions.Panicf("Range.Shift(%v): %d offsets given for range %s of rank %d", offsets, len(offsets), r, r.Rank())
	}
	for axis, offset := range offsets {
		r.Lower[axis] += offset
		r.Upper[axis] += offset
	}
}

// Shifted returns a new range translated by the given per-axis offsets. The receiver is not changed.
//
// It panics if len(offsets) != r.Rank().
func (r Range) Shifted(offsets []int) Range {
	r2 := r.Clone()
	r2.Shift(offsets)
	return r2
}

// Includes returns whether the absolute coordinates are inside the range.
func (r Range) Includes(coords []int) bool {
	if len(coords) != r.Rank() {
		return false
	}
	for axis, coord := range coords {
		if coord < r.Lower[axis] || coord >= r.Upper[axis] {
			return false
		}
	}
	return true
}

// Ordinal returns the flat (row-major) index of the given absolute coordinates.
//
// It panics if the coordinates are not included in the range.
func (r Range) Ordinal(coords []int) int {
	if !r.Includes(coords) {
		exceptions.Panicf("Range.Ordinal(%v): coordinates out of range %s", coords, r)
	}
	ordinal := 0
	for axis, coord := range coords {
		ordinal = ordinal*(r.Upper[axis]-r.Lower[axis]) + coord - r.Lower[axis]
	}
	return ordinal
}

// Coords returns the absolute coordinates of the given flat (row-major) index.
//
// It panics if the ordinal is not in [0, r.Volume()).
func (r Range) Coords(ordinal int) []int {
	if ordinal < 0 || ordinal >= r.Volume() {
		exceptions.Panicf("Range.Coords(%d): ordinal out of range %s with volume %d", ordinal, r, r.Volume())
	}
	coords := make([]int, r.Rank())
	for axis, stride := range r.Strides() {
		coords[axis] = r.Lower[axis] + ordinal/stride
		ordinal %= stride
	}
	return coords
}

// Intersect returns the overlapping region of both ranges, and whether it is non-empty.
//
// It panics if the ranks differ.
func (r Range) Intersect(r2 Range) (Range, bool) {
	if r.Rank() != r2.Rank() {
		exceptions.Panicf("Range.Intersect(): ranges %s and %s have different ranks", r, r2)
	}
	overlap := Range{Lower: make([]int, r.Rank()), Upper: make([]int, r.Rank())}
	for axis := range r.Lower {
		overlap.Lower[axis] = max(r.Lower[axis], r2.Lower[axis])
		overlap.Upper[axis] = max(min(r.Upper[axis], r2.Upper[axis]), overlap.Lower[axis])
	}
	return overlap, !overlap.IsEmpty()
}

// Iter iterates sequentially, in row-major order, over all the coordinates of the range.
//
// It yields the flat index (ordinal) and a slice with the absolute coordinates of each axis.
//
// To avoid allocating, the yielded coordinates slice is owned by the iterator:
// don't change it inside the loop, and clone it if it needs to be kept.
func (r Range) Iter() iter.Seq2[int, []int] {
	return func(yield func(int, []int) bool) {
		if r.IsEmpty() {
			return
		}
		coords := slices.Clone(r.Lower)
		rank := r.Rank()
		flatIdx := 0
	yielder:
		for {
			if !yield(flatIdx, coords) {
				return
			}
			flatIdx++

			// Increment coordinates (row-major order: the last axis changes fastest).
			for axis := rank - 1; axis >= 0; axis-- {
				coords[axis]++
				if coords[axis] < r.Upper[axis] {
					continue yielder
				}
				// Carry-over to the previous axis.
				coords[axis] = r.Lower[axis]
			}

			// All axes overflowed: iteration is complete. A rank-0 range stops after its single element.
			break
		}
	}
}
