// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tiles

import (
	"github.com/gomlx/exceptions"
	"github.com/gomlx/tiled/pkg/core/dtypes"
)

// Owned is the token of a tile whose ownership was transferred to the callee: the receiving
// operation may reuse (consume) its storage and return it as its result.
//
// It can only be created with Take. Other pointers to the same tile, kept elsewhere, are not
// tracked: they will observe the results of in-place operations.
type Owned[T dtypes.Supported] struct {
	tile *Tile[T]
}

// Take transfers the ownership of *t into an Owned token, and sets *t to nil, so the caller
// no longer holds a reference to the tile.
//
// It panics if t or *t is nil.
func Take[T dtypes.Supported](t **Tile[T]) Owned[T] {
	if t == nil || *t == nil {
		exceptions.Panicf("tiles.Take(): no tile to take ownership of")
	}
	owned := Owned[T]{tile: *t}
	*t = nil
	return owned
}

// Tile returns the owned tile. It should be called only by the operation receiving the token.
//
// It panics for the zero value of Owned.
func (o Owned[T]) Tile() *Tile[T] {
	if o.tile == nil {
		exceptions.Panicf("tiles.Owned[%s].Tile(): token was not created with tiles.Take", dtypes.FromGenericsType[T]())
	}
	return o.tile
}
