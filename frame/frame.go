// SPDX-License-Identifier: MIT

// Package frame - Frame type, constructors, accessors and label setters.
//
// A Frame holds a grid by composition and keeps two optional label axes in
// lockstep with it. Every getter returns a copy; every setter copies its input.

package frame

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvframe/grid"
)

// Axis re-exports grid.Axis: AxisRows for the row index, AxisCols for the column keys.
type Axis = grid.Axis

const (
	// AxisRows concatenates vertically; as a label axis it names the row index.
	AxisRows = grid.AxisRows
	// AxisCols concatenates horizontally; as a label axis it names the column keys.
	AxisCols = grid.AxisCols
)

// Frame is a dense grid of T with optional column keys and row index.
//
// Invariants after every public call:
//   - len(Keys()) ∈ {0, Width()} and len(Index()) ∈ {0, Height()};
//   - no duplicate non-empty label within an axis;
//   - an empty grid carries no labels.
//
// A Frame is not safe for concurrent mutation; serialize access or Copy().
// The zero Frame is an empty frame ready to use.
type Frame[T any] struct {
	data   grid.Grid[T]
	keys   labelAxis
	index  labelAxis
	render renderer[T]
}

// New returns an empty frame.
func New[T any]() *Frame[T] {
	return &Frame[T]{
		data:   grid.Empty[T](),
		keys:   labelAxis{axis: AxisCols},
		index:  labelAxis{axis: AxisRows},
		render: selectRenderer[T](),
	}
}

// FromGrid builds a frame owning a deep copy of g, optionally labeled.
//
// Inputs:
//   - g: source grid (copied; later changes to g do not leak in).
//   - opts: WithKeys / WithIndex; each is cross-checked against g's shape.
//
// Errors:
//   - grid.ErrNilGrid when g is nil.
//   - ErrCardinalityMismatch, ErrDuplicateLabel from label validation.
//
// Complexity: O(r*c) for the copy plus O(k) per label axis.
func FromGrid[T any](g grid.Grid[T], opts ...Option) (*Frame[T], error) {
	const op = "FromGrid"
	if err := grid.ValidateNotNil(g); err != nil {
		return nil, frameErrorf(op, err)
	}
	o := gatherOptions(opts)
	f := New[T]()
	f.data = g.Clone()
	if err := f.keys.set(op, o.keys, f.data.Cols()); err != nil {
		return nil, err
	}
	if err := f.index.set(op, o.index, f.data.Rows()); err != nil {
		return nil, err
	}

	return f, nil
}

// FromRows builds a frame from literal rows (see grid.FromRows).
func FromRows[T any](rows [][]T, opts ...Option) (*Frame[T], error) {
	g, err := grid.FromRows(rows)
	if err != nil {
		return nil, frameErrorf("FromRows", err)
	}

	return FromGrid[T](g, opts...)
}

// store returns the backing grid, initializing a zero Frame on first use.
func (f *Frame[T]) store() grid.Grid[T] {
	if f.data == nil {
		f.data = grid.Empty[T]()
		f.keys.axis, f.index.axis = AxisCols, AxisRows
	}

	return f.data
}

// columnKeys returns the key axis with its axis tag settled, so lookups on a
// zero Frame report AxisCols.
func (f *Frame[T]) columnKeys() *labelAxis {
	f.store()

	return &f.keys
}

func (f *Frame[T]) renderer() renderer[T] {
	if f.render == nil {
		f.render = selectRenderer[T]()
	}

	return f.render
}

// Width returns the column count.
func (f *Frame[T]) Width() int { return f.store().Cols() }

// Height returns the row count.
func (f *Frame[T]) Height() int { return f.store().Rows() }

// IsEmpty reports whether the frame holds no cells.
func (f *Frame[T]) IsEmpty() bool { return f.store().IsEmpty() }

// Keys returns a copy of the column keys; nil when unset.
func (f *Frame[T]) Keys() []string { return f.keys.values() }

// Index returns a copy of the row index; nil when unset.
func (f *Frame[T]) Index() []string { return f.index.values() }

// HasKeys reports whether the column keys are set.
func (f *Frame[T]) HasKeys() bool { return f.keys.isSet() }

// HasIndex reports whether the row index is set.
func (f *Frame[T]) HasIndex() bool { return f.index.isSet() }

// Data returns a deep copy of the backing grid.
func (f *Frame[T]) Data() grid.Grid[T] { return f.store().Clone() }

// At returns the cell at row i, column j.
func (f *Frame[T]) At(i, j int) (T, error) {
	v, err := f.store().At(i, j)
	if err != nil {
		return v, frameErrorf("At", fmt.Errorf("(%d,%d): %w", i, j, ErrOutOfRange))
	}

	return v, nil
}

// Value returns the cell addressed by row label and column key.
// Both axes must be set.
func (f *Frame[T]) Value(row, key string) (T, error) {
	const op = "Value"
	var zero T
	i, err := f.index.positionOf(op, row)
	if err != nil {
		return zero, err
	}
	j, err := f.columnKeys().positionOf(op, key)
	if err != nil {
		return zero, err
	}

	return f.store().At(i, j)
}

// Rows returns the rows named by labels, in the requested order, as a new
// grid. Duplicates are allowed. An unset index or an absent label fails
// with ErrUnknownLabel.
func (f *Frame[T]) Rows(labels ...string) (grid.Grid[T], error) {
	const op = "Rows"
	pos, err := f.index.positionsOf(op, labels)
	if err != nil {
		return nil, err
	}

	return f.store().Induced(pos, ordinals(f.Width()))
}

// Columns returns the columns named by keys, in the requested order, as a
// new grid. Duplicates are allowed.
func (f *Frame[T]) Columns(keys ...string) (grid.Grid[T], error) {
	const op = "Columns"
	pos, err := f.columnKeys().positionsOf(op, keys)
	if err != nil {
		return nil, err
	}

	return f.store().Induced(ordinals(f.Height()), pos)
}

// RowPosition resolves a row label to its position.
func (f *Frame[T]) RowPosition(label string) (int, error) {
	return f.index.positionOf("RowPosition", label)
}

// ColumnPosition resolves a column key to its position.
func (f *Frame[T]) ColumnPosition(key string) (int, error) {
	return f.columnKeys().positionOf("ColumnPosition", key)
}

// SetKeys replaces the column keys wholesale; an empty list clears them.
//
// Errors:
//   - ErrCardinalityMismatch when len(keys) != Width() (including any keys on an empty frame).
//   - ErrDuplicateLabel when a non-empty key repeats.
func (f *Frame[T]) SetKeys(keys []string) error {
	return f.keys.set("SetKeys", keys, f.Width())
}

// SetIndex replaces the row index wholesale; an empty list clears it.
func (f *Frame[T]) SetIndex(index []string) error {
	return f.index.set("SetIndex", index, f.Height())
}

// SetData replaces the grid with a deep copy of g.
// Labels already set must still fit the new shape, otherwise nothing changes.
// An empty g clears both axes.
func (f *Frame[T]) SetData(g grid.Grid[T]) error {
	const op = "SetData"
	if err := grid.ValidateNotNil(g); err != nil {
		return frameErrorf(op, err)
	}
	if g.IsEmpty() {
		f.Clear()
		return nil
	}
	if f.keys.isSet() && f.keys.size() != g.Cols() {
		return shapeErr(op, AxisCols, g.Cols(), f.keys.size(), ErrCardinalityMismatch)
	}
	if f.index.isSet() && f.index.size() != g.Rows() {
		return shapeErr(op, AxisRows, g.Rows(), f.index.size(), ErrCardinalityMismatch)
	}
	f.data = g.Clone()

	return nil
}

// Clear empties the grid and both label axes.
func (f *Frame[T]) Clear() {
	f.store().Clear()
	f.keys.clear()
	f.index.clear()
}

// Copy returns an independent deep copy.
func (f *Frame[T]) Copy() *Frame[T] {
	return &Frame[T]{
		data:   f.store().Clone(),
		keys:   f.keys.clone(),
		index:  f.index.clone(),
		render: f.renderer(),
	}
}

// Equal reports structural equality: same grid, same keys, same index.
// Two nil frames are equal.
func (f *Frame[T]) Equal(other *Frame[T]) bool {
	if f == nil || other == nil {
		return f == other
	}

	return slices.Equal(f.keys.labels, other.keys.labels) &&
		slices.Equal(f.index.labels, other.index.labels) &&
		grid.Equal(f.store(), other.store())
}

func ordinals(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
