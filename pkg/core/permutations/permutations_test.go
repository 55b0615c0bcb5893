// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package permutations

import (
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/tiled/pkg/core/ranges"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	perm := must.M1(New(2, 0, 1))
	assert.Equal(t, 3, perm.Dim())
	assert.Equal(t, []int{2, 0, 1}, perm.Data())
	assert.Equal(t, "Permutation[2 0 1]", perm.String())

	_, err := New(0, 3, 1)
	require.ErrorContains(t, err, "out of range")
	_, err = New(0, 1, 1)
	require.ErrorContains(t, err, "more than once")
	_, err = New(-1, 0)
	require.Error(t, err)

	err = exceptions.TryCatch[error](func() { _ = Make(1, 1) })
	require.ErrorContains(t, err, "more than once")

	// Dimension 0 is valid.
	require.True(t, must.M1(New()).IsIdentity())
}

func TestIdentity(t *testing.T) {
	id := Identity(4)
	assert.True(t, id.IsIdentity())
	assert.Equal(t, []int{0, 1, 2, 3}, id.Data())
	assert.False(t, Make(1, 0).IsIdentity())
	assert.Equal(t, 0, Identity(0).Dim())
	require.Panics(t, func() { _ = Identity(-1) })
}

func TestInverseAndCompose(t *testing.T) {
	perm := Make(2, 0, 3, 1)
	inverse := perm.Inverse()
	assert.Equal(t, []int{1, 3, 0, 2}, inverse.Data())
	assert.True(t, perm.Compose(inverse).IsIdentity())
	assert.True(t, inverse.Compose(perm).IsIdentity())
	assert.True(t, perm.Inverse().Inverse().Equal(perm))

	// Applying two permutations in sequence is the same as applying their composition.
	other := Make(1, 2, 3, 0)
	v := []int{10, 11, 12, 13}
	assert.Equal(t, ApplyInts(other, ApplyInts(perm, v)), ApplyInts(perm.Compose(other), v))

	require.Panics(t, func() { _ = perm.Compose(Identity(3)) })
}

func TestApply(t *testing.T) {
	perm := Make(1, 2, 0)
	assert.Equal(t, []int{30, 10, 20}, ApplyInts(perm, []int{10, 20, 30}))
	assert.Equal(t, []string{"c", "a", "b"}, Apply(perm, []string{"a", "b", "c"}))

	err := exceptions.TryCatch[error](func() { _ = ApplyInts(perm, []int{1, 2}) })
	require.ErrorContains(t, err, "applied to an object of rank 2")
}

func TestApplyRange(t *testing.T) {
	r := ranges.MakeBounds([]int{1, 2, 3}, []int{2, 4, 6})
	permuted := ApplyRange(Make(1, 2, 0), r)
	assert.Equal(t, []int{3, 1, 2}, permuted.Lower)
	assert.Equal(t, []int{6, 2, 4}, permuted.Upper)
	assert.Equal(t, []int{3, 1, 2}, permuted.Extents())
	assert.True(t, ApplyRange(Make(1, 2, 0).Inverse(), permuted).Equal(r))

	require.Panics(t, func() { _ = ApplyRange(Identity(2), r) })
	require.NoError(t, Identity(3).CheckDim(r.Rank()))
}
