// SPDX-License-Identifier: MIT

// Package frame - structural mutator: insert, push and remove rows/columns.
//
// Each operation plans the new label sequence, mutates the grid, and only
// then commits the labels. Any failure before the commit leaves the frame
// untouched.

package frame

import "fmt"

// InsertRow inserts values as a new row before pos (pos == Height appends).
//
// Label handling (see WithLabel):
//   - index unset, no label: only the grid changes;
//   - index unset, label: existing rows get ordinal labels avoiding label;
//   - index set, label: ErrDuplicateLabel if already present;
//   - index set, no label: a fresh ordinal label is synthesized.
//
// Errors:
//   - ErrOutOfRange (pos outside [0,Height]), ErrEmptyVector,
//     ErrRowWidthMismatch (len(values) != Width on a non-empty frame),
//     ErrDuplicateLabel.
//
// Complexity: O(r*c) grid rebuild + O(h) label planning.
func (f *Frame[T]) InsertRow(pos int, values []T, opts ...InsertOption) error {
	const op = "InsertRow"
	g := f.store()
	if err := validateInsert(op, pos, g.Rows(), len(values)); err != nil {
		return err
	}
	if !g.IsEmpty() && len(values) != g.Cols() {
		return shapeErr(op, AxisCols, g.Cols(), len(values), ErrRowWidthMismatch)
	}
	labels, err := f.index.planInsert(op, pos, g.Rows(), gatherInsertOptions(opts))
	if err != nil {
		return err
	}
	if err = g.InsertRow(pos, values); err != nil {
		return frameErrorf(op, err)
	}
	f.index.labels = labels

	return nil
}

// InsertColumn inserts values as a new column before pos (pos == Width appends).
// It mirrors InsertRow on the key axis; a height mismatch is ErrColumnHeightMismatch.
func (f *Frame[T]) InsertColumn(pos int, values []T, opts ...InsertOption) error {
	const op = "InsertColumn"
	g := f.store()
	if err := validateInsert(op, pos, g.Cols(), len(values)); err != nil {
		return err
	}
	if !g.IsEmpty() && len(values) != g.Rows() {
		return shapeErr(op, AxisRows, g.Rows(), len(values), ErrColumnHeightMismatch)
	}
	labels, err := f.keys.planInsert(op, pos, g.Cols(), gatherInsertOptions(opts))
	if err != nil {
		return err
	}
	if err = g.InsertCol(pos, values); err != nil {
		return frameErrorf(op, err)
	}
	f.keys.labels = labels

	return nil
}

// PushRowFront inserts a row at position 0.
func (f *Frame[T]) PushRowFront(values []T, opts ...InsertOption) error {
	return f.InsertRow(0, values, opts...)
}

// PushRowBack appends a row.
func (f *Frame[T]) PushRowBack(values []T, opts ...InsertOption) error {
	return f.InsertRow(f.Height(), values, opts...)
}

// PushColFront inserts a column at position 0.
func (f *Frame[T]) PushColFront(values []T, opts ...InsertOption) error {
	return f.InsertColumn(0, values, opts...)
}

// PushColBack appends a column.
func (f *Frame[T]) PushColBack(values []T, opts ...InsertOption) error {
	return f.InsertColumn(f.Width(), values, opts...)
}

// RemoveRow deletes the row at pos and its index label, if any.
// Removing the last row empties the frame and clears both axes.
func (f *Frame[T]) RemoveRow(pos int) error {
	const op = "RemoveRow"
	g := f.store()
	if pos < 0 || pos >= g.Rows() {
		return frameErrorf(op, fmt.Errorf("position %d of %d: %w", pos, g.Rows(), ErrOutOfRange))
	}
	if err := g.RemoveRow(pos); err != nil {
		return frameErrorf(op, err)
	}
	f.afterRemove(&f.index, pos)

	return nil
}

// RemoveRowByLabel resolves label in the index, then removes that row.
// An unset index fails with ErrUnknownLabel.
func (f *Frame[T]) RemoveRowByLabel(label string) error {
	pos, err := f.index.positionOf("RemoveRowByLabel", label)
	if err != nil {
		return err
	}

	return f.RemoveRow(pos)
}

// RemoveColumn deletes the column at pos and its key, if any.
func (f *Frame[T]) RemoveColumn(pos int) error {
	const op = "RemoveColumn"
	g := f.store()
	if pos < 0 || pos >= g.Cols() {
		return frameErrorf(op, fmt.Errorf("position %d of %d: %w", pos, g.Cols(), ErrOutOfRange))
	}
	if err := g.RemoveCol(pos); err != nil {
		return frameErrorf(op, err)
	}
	f.afterRemove(&f.keys, pos)

	return nil
}

// RemoveColumnByKey resolves key, then removes that column.
func (f *Frame[T]) RemoveColumnByKey(key string) error {
	pos, err := f.columnKeys().positionOf("RemoveColumnByKey", key)
	if err != nil {
		return err
	}

	return f.RemoveColumn(pos)
}

// afterRemove keeps labels in sync once the grid lost position pos on a.
func (f *Frame[T]) afterRemove(a *labelAxis, pos int) {
	if f.store().IsEmpty() {
		f.keys.clear()
		f.index.clear()
		return
	}
	a.removeAt(pos)
}

func validateInsert(op string, pos, n, size int) error {
	if pos < 0 || pos > n {
		return frameErrorf(op, fmt.Errorf("position %d of %d: %w", pos, n, ErrOutOfRange))
	}
	if size == 0 {
		return frameErrorf(op, ErrEmptyVector)
	}

	return nil
}
