// SPDX-License-Identifier: MIT

// Package grid - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a contiguous row-major buffer with the index formula i*cols + j.
//   - Guarantee safety at the public surface: accessors return errors instead of panicking.
//   - Keep every copy deep, so callers never alias the receiver's cells.

package grid

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/tiendc/go-deepcopy"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxRow       = "Row"
	ctxCol       = "Col"
	ctxInsertRow = "InsertRow"
	ctxInsertCol = "InsertCol"
	ctxRemoveRow = "RemoveRow"
	ctxRemoveCol = "RemoveCol"
	ctxSliceRows = "SliceRows"
	ctxSliceCols = "SliceCols"
	ctxInduced   = "Induced"
	ctxConcat    = "Concat"
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a concrete row-major grid.
//   - r,c hold dimensions; r == 0 iff c == 0.
//   - data is a flat buffer of length r*c (offset = i*c + j).
type Dense[T any] struct {
	r, c int
	data []T
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Grid[int]    = (*Dense[int])(nil)
	_ fmt.Stringer = (*Dense[int])(nil)
)

// New creates a rows×cols grid of zero values.
// A zero-area request (either dimension 0) yields the empty 0×0 grid.
//
// Errors:
//   - ErrBadShape if rows or cols is negative.
//
// Complexity: Time O(r*c), Space O(r*c).
func New[T any](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}
	if rows == 0 || cols == 0 {
		return Empty[T](), nil
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// Empty returns a fresh 0×0 grid.
func Empty[T any]() *Dense[T] {
	return &Dense[T]{}
}

// FromRows builds a grid from a row-major slice of rows, copying every cell.
// MAIN DESCRIPTION:
//   - Public constructor for literal data (tests, CSV ingestion).
//
// Implementation:
//   - Stage 1: take the width from rows[0]; reject ragged input.
//   - Stage 2: flatten into a single buffer (deep copy for composite T).
//
// Behavior highlights:
//   - nil, zero rows, or rows of zero width all produce the empty grid.
//
// Errors:
//   - ErrNonRectangular if any row length differs from rows[0].
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows[T any](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 {
		return Empty[T](), nil
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("FromRows: row %d has %d cells, want %d: %w", i, len(row), width, ErrNonRectangular)
		}
	}
	if width == 0 {
		return Empty[T](), nil
	}

	flat := make([]T, 0, len(rows)*width)
	for _, row := range rows {
		flat = append(flat, row...)
	}

	return &Dense[T]{r: len(rows), c: width, data: cloneCells(flat)}, nil
}

// Rows returns the number of rows.
func (d *Dense[T]) Rows() int { return d.r }

// Cols returns the number of columns.
func (d *Dense[T]) Cols() int { return d.c }

// IsEmpty reports whether the grid holds no cells.
func (d *Dense[T]) IsEmpty() bool { return d.r == 0 }

// indexOf computes the flat offset for (i,j) after bounds checking.
func (d *Dense[T]) indexOf(i, j int) (int, error) {
	if i < 0 || i >= d.r || j < 0 || j >= d.c {
		return 0, ErrOutOfRange
	}

	return i*d.c + j, nil
}

// At returns the cell (i,j).
func (d *Dense[T]) At(i, j int) (T, error) {
	off, err := d.indexOf(i, j)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("Dense.%s(%d,%d): %w", ctxAt, i, j, err)
	}

	return d.data[off], nil
}

// Set overwrites the cell (i,j).
func (d *Dense[T]) Set(i, j int, v T) error {
	off, err := d.indexOf(i, j)
	if err != nil {
		return fmt.Errorf("Dense.%s(%d,%d): %w", ctxSet, i, j, err)
	}
	d.data[off] = v

	return nil
}

// Row returns a copy of row i.
func (d *Dense[T]) Row(i int) ([]T, error) {
	if err := validateIndex(ctxRow, i, d.r); err != nil {
		return nil, err
	}

	return cloneCells(d.data[i*d.c : (i+1)*d.c]), nil
}

// Col returns a copy of column j.
func (d *Dense[T]) Col(j int) ([]T, error) {
	if err := validateIndex(ctxCol, j, d.c); err != nil {
		return nil, err
	}
	out := make([]T, d.r)
	for i := 0; i < d.r; i++ {
		out[i] = d.data[i*d.c+j]
	}

	return cloneCells(out), nil
}

// ToRows returns a copy of all rows; an empty grid yields nil.
func (d *Dense[T]) ToRows() [][]T {
	if d.r == 0 {
		return nil
	}
	flat := cloneCells(d.data)
	out := make([][]T, d.r)
	for i := range out {
		out[i] = flat[i*d.c : (i+1)*d.c : (i+1)*d.c]
	}

	return out
}

// Clear drops every cell, leaving the 0×0 grid.
func (d *Dense[T]) Clear() {
	d.r, d.c, d.data = 0, 0, nil
}

// Clone returns an independent deep copy.
func (d *Dense[T]) Clone() Grid[T] {
	return d.clone()
}

func (d *Dense[T]) clone() *Dense[T] {
	return &Dense[T]{r: d.r, c: d.c, data: cloneCells(d.data)}
}

// String renders each row as "[a, b, c]\n"; the empty grid renders as "".
func (d *Dense[T]) String() string {
	var sb strings.Builder
	for i := 0; i < d.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < d.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprint(&sb, d.data[i*d.c+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// deepCells reports whether cells of T may share memory when copied by value.
func deepCells[T any]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Slice, reflect.Map, reflect.Pointer, reflect.Interface, reflect.Struct, reflect.Array:
		return true
	default:
		return false
	}
}

// cloneCells copies src. Composite cells go through the deep copier; if it
// rejects the type (funcs, chans), the cells are copied by value.
func cloneCells[T any](src []T) []T {
	if src == nil {
		return nil
	}
	dst := make([]T, len(src))
	if len(src) == 0 || !deepCells[T]() {
		copy(dst, src)
		return dst
	}
	if err := deepcopy.Copy(&dst, &src); err != nil {
		copy(dst, src)
	}

	return dst
}
