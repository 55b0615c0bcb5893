// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tiles

import (
	"iter"

	"github.com/gomlx/tiled/pkg/core/permutations"
	"github.com/gomlx/tiled/pkg/core/ranges"
)

// Remapper maps the flat (row-major) index of an element in a source range to the flat index
// of the same element in the permuted destination range.
//
// The mapping is computed with mixed-radix arithmetic: the source index is decomposed into
// per-axis coordinates with the source strides, and recombined with the destination strides
// reordered back to the source axes (the "inverse-permuted weights").
type Remapper struct {
	srcStrides []int
	ipWeight   []int
	dst        ranges.Range
	size       int
}

// NewRemapper returns the Remapper for permuting the axes of src with perm.
//
// It panics if perm.Dim() != src.Rank().
func NewRemapper(perm permutations.Permutation, src ranges.Range) *Remapper {
	perm.AssertDim(src.Rank())
	dst := permutations.ApplyRange(perm, src)
	return &Remapper{
		srcStrides: src.Strides(),
		ipWeight:   permutations.ApplyInts(perm.Inverse(), dst.Strides()),
		dst:        dst,
		size:       src.Volume(),
	}
}

// Index returns the destination flat index of the element at the source flat index i.
//
// i must be in [0, Size()), it is not checked.
func (m *Remapper) Index(i int) int {
	j := 0
	for axis, stride := range m.srcStrides {
		j += (i / stride) * m.ipWeight[axis]
		i %= stride
	}
	return j
}

// All iterates over all source indices in order, yielding (source index, destination index).
func (m *Remapper) All() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i := range m.size {
			if !yield(i, m.Index(i)) {
				return
			}
		}
	}
}

// Dest returns the destination (permuted) range.
func (m *Remapper) Dest() ranges.Range { return m.dst.Clone() }

// Size returns the number of elements remapped.
func (m *Remapper) Size() int { return m.size }
