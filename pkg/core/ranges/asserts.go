// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ranges

import (
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// HasRange is an interface for objects that have an associated Range.
// Range itself implements the interface.
type HasRange interface {
	Range() Range
}

// Range returns a shallow copy of itself. It implements the HasRange interface.
func (r Range) Range() Range { return r }

// CheckRank checks that the range has the given rank.
//
// It returns an error if the rank is different.
func (r Range) CheckRank(rank int) error {
	if r.Rank() != rank {
		return errors.Errorf("range %s has incompatible rank %d -- wanted %d", r, r.Rank(), rank)
	}
	return nil
}

// AssertRank checks that the range has the given rank.
//
// It panics if it doesn't match.
func (r Range) AssertRank(rank int) {
	if err := r.CheckRank(rank); err != nil {
		exceptions.Panicf("AssertRank(%d): %+v", rank, err)
	}
}

// CheckEqual checks that both ranges have the same bounds.
//
// It returns an error if they differ.
func (r Range) CheckEqual(r2 Range) error {
	if !r.Equal(r2) {
		return errors.Errorf("ranges %s and %s differ", r, r2)
	}
	return nil
}

// AssertEqual checks that both ranges have the same bounds.
//
// It panics if they differ.
func (r Range) AssertEqual(r2 Range) {
	if err := r.CheckEqual(r2); err != nil {
		exceptions.Panicf("AssertEqual(%s): %+v", r2, err)
	}
}

// AssertRank checks that the range of the given object has the given rank.
//
// It panics if it doesn't match.
func AssertRank(ranged HasRange, rank int) {
	ranged.Range().AssertRank(rank)
}

// AssertSameRange checks that both objects have ranges with the same bounds.
//
// It panics if they differ.
func AssertSameRange(ranged1, ranged2 HasRange) {
	ranged1.Range().AssertEqual(ranged2.Range())
}
