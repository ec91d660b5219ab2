// SPDX-License-Identifier: MIT

// Package grid defines the rectangular storage contract consumed by frame
// and its row-major implementation Dense.
//
// Shape rule:
//   - A grid with zero rows always has zero columns and vice versa.
//     Removing the last row or the last column leaves a fully empty 0×0 grid,
//     and inserting into an empty grid establishes the other dimension.
//
// Complexity quicksheet (Dense):
//   - At/Set: O(1); InsertRow/RemoveRow: O(r*c) worst case (tail shift);
//     InsertCol/RemoveCol: O(r*c) (rebuild); Clone/Concat/Slice: O(output).
package grid

import "fmt"

// Axis selects the dimension a structural operation grows or shrinks.
type Axis int

const (
	// AxisRows stacks operands vertically (row count grows).
	AxisRows Axis = 0
	// AxisCols places operands side by side (column count grows).
	AxisCols Axis = 1
)

// Valid reports whether a is one of AxisRows or AxisCols.
func (a Axis) Valid() bool { return a == AxisRows || a == AxisCols }

// String implements fmt.Stringer.
func (a Axis) String() string {
	switch a {
	case AxisRows:
		return "rows"
	case AxisCols:
		return "columns"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// Grid is the narrow storage contract of a labeled frame.
// All positions are zero-based. Every slice returned by a Grid is a copy the
// caller may keep and mutate.
type Grid[T any] interface {
	// Rows returns the number of rows (height).
	Rows() int
	// Cols returns the number of columns (width).
	Cols() int
	// IsEmpty reports whether the grid holds no cells.
	IsEmpty() bool

	// At returns the cell (i,j) or ErrOutOfRange.
	At(i, j int) (T, error)
	// Set overwrites the cell (i,j) or returns ErrOutOfRange.
	Set(i, j int, v T) error
	// Row returns a copy of row i.
	Row(i int) ([]T, error)
	// Col returns a copy of column j.
	Col(j int) ([]T, error)
	// ToRows returns a copy of all rows in order.
	ToRows() [][]T

	// InsertRow inserts values as a new row before pos (pos == Rows appends).
	InsertRow(pos int, values []T) error
	// InsertCol inserts values as a new column before pos (pos == Cols appends).
	InsertCol(pos int, values []T) error
	// RemoveRow deletes row pos.
	RemoveRow(pos int) error
	// RemoveCol deletes column pos.
	RemoveCol(pos int) error

	// SliceRows copies the half-open row range [from,to).
	SliceRows(from, to int) (Grid[T], error)
	// SliceCols copies the half-open column range [from,to).
	SliceCols(from, to int) (Grid[T], error)
	// Induced copies the rows and cols at the given positions, in order;
	// duplicates are allowed.
	Induced(rows, cols []int) (Grid[T], error)

	// Concat appends other along axis.
	Concat(other Grid[T], axis Axis) error
	// Clear drops every cell.
	Clear()
	// Clone returns an independent deep copy.
	Clone() Grid[T]
}
