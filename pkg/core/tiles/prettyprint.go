// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package tiles

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gomlx/tiled/pkg/core/dtypes/bfloat16"
	"github.com/x448/float16"
)

// summaryEdgeItems is the number of leading and trailing items printed per axis, when an
// axis is too long to print in full.
const summaryEdgeItems = 3

// String implements fmt.Stringer. It uses Summary with a precision of 4 digits.
func (t *Tile[T]) String() string {
	if t == nil {
		return "<nil tile>"
	}
	return t.Summary(4)
}

// Summary returns a multi-line summary of the tile's contents, in the style of numpy, with
// floating point values printed with the given precision.
//
// Long axes are abbreviated with an ellipsis, so it is safe to use on large tiles.
func (t *Tile[T]) Summary(precision int) string {
	var buf bytes.Buffer
	w := func(format string, args ...any) { _, _ = fmt.Fprintf(&buf, format, args...) }

	w("Tile[%s]%s", t.DType(), t.r)
	if t.Size() > 1000 {
		w(" (%s elements, %s)", humanize.Comma(int64(t.Size())),
			humanize.Bytes(uint64(t.Size())*uint64(t.DType().Size())))
	}
	if t.Size() == 0 {
		return buf.String()
	}
	w(": ")

	wValue := func(v T) {
		switch value := any(v).(type) {
		case float16.Float16:
			w("%.*g", precision, value.Float32())
		case bfloat16.BFloat16:
			w("%.*g", precision, value.Float32())
		case float32, float64:
			w("%.*g", precision, value)
		case complex64:
			w("(%.*g+%.*gi)", precision, real(value), precision, imag(value))
		case complex128:
			w("(%.*g+%.*gi)", precision, real(value), precision, imag(value))
		default:
			w("%v", value)
		}
	}

	extents := t.r.Extents()
	if len(extents) == 0 {
		w("(")
		wValue(t.flat[0])
		w(")")
		return buf.String()
	}
	strides := t.r.Strides()

	var printAxis func(axis, offset int)
	printAxis = func(axis, offset int) {
		extent := extents[axis]
		indices := make([]int, 0, extent)
		elided := extent > 2*summaryEdgeItems
		if elided {
			for i := range summaryEdgeItems {
				indices = append(indices, i)
			}
			for i := extent - summaryEdgeItems; i < extent; i++ {
				indices = append(indices, i)
			}
		} else {
			for i := range extent {
				indices = append(indices, i)
			}
		}

		isLast := axis == len(extents)-1
		separator := ", "
		if !isLast {
			separator = ",\n" + strings.Repeat(" ", axis+1)
		}
		w("{")
		for n, i := range indices {
			if n > 0 {
				w("%s", separator)
			}
			if elided && n == summaryEdgeItems {
				w("...%s", separator)
			}
			if isLast {
				wValue(t.flat[offset+i])
			} else {
				printAxis(axis+1, offset+i*strides[axis])
			}
		}
		w("}")
	}
	if len(extents) > 1 {
		w("\n")
	}
	printAxis(0, 0)
	return buf.String()
}
