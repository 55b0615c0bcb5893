// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package permutations defines Permutation, a bijective reordering of axis positions, and how it is
// applied to per-axis sequences (extents, strides, offsets) and to ranges.
//
// Convention: a Permutation p moves the element at position i to position p[i]. So applying
// p = {1, 2, 0} to the sequence {a, b, c} gives {c, a, b}.
package permutations

import (
	"fmt"
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/tiled/pkg/core/ranges"
	"github.com/gomlx/tiled/pkg/support/xslices"
	"github.com/pkg/errors"
)

// Permutation of the positions [0, Dim()). Position i is moved to position p[i].
//
// It is immutable: create it with New, Make or Identity. The zero value is the identity permutation of dimension 0.
type Permutation struct {
	p []int
}

// New validates and returns the permutation that moves position i to position p[i].
//
// It returns an error if any position is out of range or repeated.
func New(p ...int) (Permutation, error) {
	sorted := slices.Clone(p)
	slices.Sort(sorted)
	for ii, position := range sorted {
		if position < 0 || position >= len(p) {
			return Permutation{}, errors.Errorf("invalid permutation %v: position %d out of range for dimension %d",
				p, position, len(p))
		}
		if ii > 0 && position == sorted[ii-1] {
			return Permutation{}, errors.Errorf("invalid permutation %v: position %d appears more than once, each must appear exactly once",
				p, position)
		}
	}
	return Permutation{p: slices.Clone(p)}, nil
}

// Make is like New, but it panics if the permutation is invalid.
func Make(p ...int) Permutation {
	perm, err := New(p...)
	if err != nil {
		exceptions.Panicf("permutations.Make: %+v", err)
	}
	return perm
}

// Identity returns the identity permutation of the given dimension.
func Identity(dim int) Permutation {
	if dim < 0 {
		exceptions.Panicf("permutations.Identity(%d): dimension cannot be negative", dim)
	}
	return Permutation{p: xslices.Iota(0, dim)}
}

// Dim returns the number of positions permuted.
func (perm Permutation) Dim() int { return len(perm.p) }

// At returns the destination of position i.
func (perm Permutation) At(i int) int { return perm.p[i] }

// Data returns a copy of the permutation as a slice: position i is moved to Data()[i].
func (perm Permutation) Data() []int { return slices.Clone(perm.p) }

// IsIdentity returns whether every position is left in place.
func (perm Permutation) IsIdentity() bool {
	for i, position := range perm.p {
		if i != position {
			return false
		}
	}
	return true
}

// Inverse returns the permutation that undoes perm: perm.Compose(perm.Inverse()) is the identity.
func (perm Permutation) Inverse() Permutation {
	inverse := make([]int, len(perm.p))
	for i, position := range perm.p {
		inverse[position] = i
	}
	return Permutation{p: inverse}
}

// Compose returns the permutation equivalent to applying perm first and then other.
//
// It panics if the dimensions differ.
func (perm Permutation) Compose(other Permutation) Permutation {
	if perm.Dim() != other.Dim() {
		exceptions.Panicf("Permutation.Compose(): dimensions differ, %s and %s", perm, other)
	}
	composed := make([]int, len(perm.p))
	for i, position := range perm.p {
		composed[i] = other.p[position]
	}
	return Permutation{p: composed}
}

// Equal returns whether both permutations are the same.
func (perm Permutation) Equal(other Permutation) bool {
	return slices.Equal(perm.p, other.p)
}

// String implements fmt.Stringer.
func (perm Permutation) String() string {
	return fmt.Sprintf("Permutation%v", perm.p)
}

// CheckDim returns an error if the permutation dimension is different from dim -- the rank of whatever
// it is going to be applied to.
func (perm Permutation) CheckDim(dim int) error {
	if perm.Dim() != dim {
		return errors.Errorf("%s has dimension %d, but it is applied to an object of rank %d", perm, perm.Dim(), dim)
	}
	return nil
}

// AssertDim panics if the permutation dimension is different from dim.
func (perm Permutation) AssertDim(dim int) {
	if err := perm.CheckDim(dim); err != nil {
		exceptions.Panicf("%+v", err)
	}
}

// ApplyInts returns a new slice with the values of v reordered: result[perm[i]] = v[i].
//
// It panics if len(v) != perm.Dim().
func ApplyInts(perm Permutation, v []int) []int {
	return Apply(perm, v)
}

// Apply returns a new slice with the values of v reordered: result[perm[i]] = v[i].
//
// It is the generic version of ApplyInts. It panics if len(v) != perm.Dim().
func Apply[T any](perm Permutation, v []T) []T {
	perm.AssertDim(len(v))
	result := make([]T, len(v))
	for i, position := range perm.p {
		result[position] = v[i]
	}
	return result
}

// ApplyRange returns the range with its axes reordered by perm: both the lower and upper bounds
// are permuted, so the permuted range keeps the same origin per axis.
//
// It panics if perm.Dim() != r.Rank().
func ApplyRange(perm Permutation, r ranges.Range) ranges.Range {
	perm.AssertDim(r.Rank())
	return ranges.Range{Lower: ApplyInts(perm, r.Lower), Upper: ApplyInts(perm, r.Upper)}
}
