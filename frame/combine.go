// SPDX-License-Identifier: MIT

// Package frame - concatenation, merge and slicing.

package frame

import (
	"fmt"
	"slices"
)

// Concat appends other to the receiver along axis.
// MAIN DESCRIPTION:
//   - AxisRows appends other's rows beneath the receiver; AxisCols appends its
//     columns to the right.
//
// Implementation:
//   - Stage 1: reject nil/self operands and invalid axes.
//   - Stage 2: empty operands are identities (an empty receiver adopts a copy of other).
//   - Stage 3: the fixed axis must match exactly (keys for AxisRows, index for AxisCols).
//   - Stage 4: plan the merged growing axis, check uniqueness, then mutate.
//
// Behavior highlights:
//   - The merged growing axis is re-validated: a label present on both sides
//     fails with ErrDuplicateLabel.
//   - If exactly one side labels the growing axis the result could not satisfy
//     the label/shape invariant, so it fails with ErrCardinalityMismatch.
//
// Errors:
//   - ErrNilFrame, ErrSelfConcatenation, ErrInvalidAxis, ErrKeyMismatch,
//     ErrIndexMismatch, ErrRowWidthMismatch, ErrColumnHeightMismatch,
//     ErrCardinalityMismatch, ErrDuplicateLabel.
//
// Complexity:
//   - Time O((r+r')*(c+c')) plus O(k) label work, Space same.
func (f *Frame[T]) Concat(other *Frame[T], axis Axis) error {
	const op = "Concat"
	switch {
	case other == nil:
		return frameErrorf(op, ErrNilFrame)
	case other == f:
		return frameErrorf(op, ErrSelfConcatenation)
	case !axis.Valid():
		return frameErrorf(op, fmt.Errorf("%s: %w", axis, ErrInvalidAxis))
	}
	if other.IsEmpty() {
		return nil
	}
	if f.IsEmpty() {
		c := other.Copy()
		f.data, f.keys, f.index = c.data, c.keys, c.index
		return nil
	}

	g := f.store()
	var (
		grow   *labelAxis
		merged []string
		err    error
	)
	switch axis {
	case AxisRows:
		if !slices.Equal(f.keys.labels, other.keys.labels) {
			return frameErrorf(op, ErrKeyMismatch)
		}
		if g.Cols() != other.Width() {
			return shapeErr(op, AxisCols, g.Cols(), other.Width(), ErrRowWidthMismatch)
		}
		grow = &f.index
		merged, err = mergeLabels(op, &f.index, &other.index, g.Rows(), other.Height())
	case AxisCols:
		if !slices.Equal(f.index.labels, other.index.labels) {
			return frameErrorf(op, ErrIndexMismatch)
		}
		if g.Rows() != other.Height() {
			return shapeErr(op, AxisRows, g.Rows(), other.Height(), ErrColumnHeightMismatch)
		}
		grow = &f.keys
		merged, err = mergeLabels(op, &f.keys, &other.keys, g.Cols(), other.Width())
	}
	if err != nil {
		return err
	}
	if err = g.Concat(other.store(), axis); err != nil {
		return frameErrorf(op, err)
	}
	grow.labels = merged

	return nil
}

// mergeLabels plans the growing axis of a concatenation.
func mergeLabels(op string, a, b *labelAxis, na, nb int) ([]string, error) {
	switch {
	case !a.isSet() && !b.isSet():
		return nil, nil
	case !a.isSet():
		return nil, shapeErr(op, a.axis, na+nb, b.size(), ErrCardinalityMismatch)
	case !b.isSet():
		return nil, shapeErr(op, a.axis, na+nb, a.size(), ErrCardinalityMismatch)
	}
	merged := slices.Concat(a.labels, b.labels)
	if dup, ok := firstDuplicate(merged); ok {
		return nil, labelErr(op, a.axis, dup, ErrDuplicateLabel)
	}

	return merged, nil
}

// Merge returns a copy of a concatenated with b along axis; a and b are not modified.
func Merge[T any](a, b *Frame[T], axis Axis) (*Frame[T], error) {
	if a == nil {
		return nil, frameErrorf("Merge", ErrNilFrame)
	}
	if a == b {
		return nil, frameErrorf("Merge", ErrSelfConcatenation)
	}
	out := a.Copy()
	if err := out.Concat(b, axis); err != nil {
		return nil, err
	}

	return out, nil
}

// SliceRows returns a new frame with rows start..end (both inclusive).
// The index subrange is carried when set; the keys are copied unchanged.
//
// Errors:
//   - ErrOutOfRange unless 0 <= start <= end < Height().
func (f *Frame[T]) SliceRows(start, end int) (*Frame[T], error) {
	const op = "SliceRows"
	if err := validateSlice(op, start, end, f.Height()); err != nil {
		return nil, err
	}
	sub, err := f.store().SliceRows(start, end+1)
	if err != nil {
		return nil, frameErrorf(op, err)
	}

	return &Frame[T]{data: sub, keys: f.keys.clone(), index: f.index.sub(start, end+1), render: f.renderer()}, nil
}

// SliceColumns returns a new frame with columns start..end (both inclusive).
func (f *Frame[T]) SliceColumns(start, end int) (*Frame[T], error) {
	const op = "SliceColumns"
	if err := validateSlice(op, start, end, f.Width()); err != nil {
		return nil, err
	}
	sub, err := f.store().SliceCols(start, end+1)
	if err != nil {
		return nil, frameErrorf(op, err)
	}

	return &Frame[T]{data: sub, keys: f.keys.sub(start, end+1), index: f.index.clone(), render: f.renderer()}, nil
}

// SliceRowsByLabel resolves both endpoints in the index, then slices.
func (f *Frame[T]) SliceRowsByLabel(start, end string) (*Frame[T], error) {
	const op = "SliceRowsByLabel"
	pos, err := f.index.positionsOf(op, []string{start, end})
	if err != nil {
		return nil, err
	}

	return f.SliceRows(pos[0], pos[1])
}

// SliceColumnsByKey resolves both endpoint keys, then slices.
func (f *Frame[T]) SliceColumnsByKey(start, end string) (*Frame[T], error) {
	const op = "SliceColumnsByKey"
	pos, err := f.columnKeys().positionsOf(op, []string{start, end})
	if err != nil {
		return nil, err
	}

	return f.SliceColumns(pos[0], pos[1])
}

func validateSlice(op string, start, end, n int) error {
	if start < 0 || end >= n || start > end {
		return frameErrorf(op, fmt.Errorf("[%d,%d] of %d: %w", start, end, n, ErrOutOfRange))
	}

	return nil
}
