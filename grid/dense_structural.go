// SPDX-License-Identifier: MIT

// Package grid - structural mutation of Dense: insert, remove, slice,
// select and concatenate rows and columns.
//
// Every mutator validates first and commits second; a returned error means
// the receiver is unchanged.

package grid

// InsertRow inserts values as a new row before pos.
//
// Behavior highlights:
//   - On an empty grid pos must be 0 and len(values) becomes the width.
//   - Otherwise len(values) must equal Cols().
//
// Errors:
//   - ErrOutOfRange (pos outside [0,Rows]), ErrEmptyVector, ErrDimensionMismatch.
//
// Complexity: Time O(r*c), Space O(r*c).
func (d *Dense[T]) InsertRow(pos int, values []T) error {
	if err := validateInsertPos("pos", pos, d.r); err != nil {
		return gridErrorf(ctxInsertRow, pos, err)
	}
	want := d.c
	if d.r == 0 {
		want = -1
	}
	if err := validateVector("values", len(values), want); err != nil {
		return gridErrorf(ctxInsertRow, pos, err)
	}

	row := cloneCells(values)
	if d.r == 0 {
		d.r, d.c, d.data = 1, len(row), row
		return nil
	}
	data := make([]T, 0, (d.r+1)*d.c)
	data = append(data, d.data[:pos*d.c]...)
	data = append(data, row...)
	data = append(data, d.data[pos*d.c:]...)
	d.r, d.data = d.r+1, data

	return nil
}

// InsertCol inserts values as a new column before pos.
// On an empty grid pos must be 0 and len(values) becomes the height.
//
// Complexity: Time O(r*c), Space O(r*c).
func (d *Dense[T]) InsertCol(pos int, values []T) error {
	if err := validateInsertPos("pos", pos, d.c); err != nil {
		return gridErrorf(ctxInsertCol, pos, err)
	}
	want := d.r
	if d.r == 0 {
		want = -1
	}
	if err := validateVector("values", len(values), want); err != nil {
		return gridErrorf(ctxInsertCol, pos, err)
	}

	col := cloneCells(values)
	if d.r == 0 {
		d.r, d.c, d.data = len(col), 1, col
		return nil
	}
	nc := d.c + 1
	data := make([]T, 0, d.r*nc)
	for i := 0; i < d.r; i++ {
		base := i * d.c
		data = append(data, d.data[base:base+pos]...)
		data = append(data, col[i])
		data = append(data, d.data[base+pos:base+d.c]...)
	}
	d.c, d.data = nc, data

	return nil
}

// RemoveRow deletes row pos; removing the last row empties the grid.
func (d *Dense[T]) RemoveRow(pos int) error {
	if err := validateIndex("pos", pos, d.r); err != nil {
		return gridErrorf(ctxRemoveRow, pos, err)
	}
	if d.r == 1 {
		d.Clear()
		return nil
	}
	data := make([]T, 0, (d.r-1)*d.c)
	data = append(data, d.data[:pos*d.c]...)
	data = append(data, d.data[(pos+1)*d.c:]...)
	d.r, d.data = d.r-1, data

	return nil
}

// RemoveCol deletes column pos; removing the last column empties the grid.
func (d *Dense[T]) RemoveCol(pos int) error {
	if err := validateIndex("pos", pos, d.c); err != nil {
		return gridErrorf(ctxRemoveCol, pos, err)
	}
	if d.c == 1 {
		d.Clear()
		return nil
	}
	nc := d.c - 1
	data := make([]T, 0, d.r*nc)
	for i := 0; i < d.r; i++ {
		base := i * d.c
		data = append(data, d.data[base:base+pos]...)
		data = append(data, d.data[base+pos+1:base+d.c]...)
	}
	d.c, d.data = nc, data

	return nil
}

// SliceRows copies rows [from,to). An empty range yields the empty grid.
func (d *Dense[T]) SliceRows(from, to int) (Grid[T], error) {
	if err := validateRange("range", from, to, d.r); err != nil {
		return nil, gridErrorf(ctxSliceRows, from, err)
	}
	if from == to {
		return Empty[T](), nil
	}

	return &Dense[T]{r: to - from, c: d.c, data: cloneCells(d.data[from*d.c : to*d.c])}, nil
}

// SliceCols copies columns [from,to). An empty range yields the empty grid.
func (d *Dense[T]) SliceCols(from, to int) (Grid[T], error) {
	if err := validateRange("range", from, to, d.c); err != nil {
		return nil, gridErrorf(ctxSliceCols, from, err)
	}
	if from == to {
		return Empty[T](), nil
	}
	w := to - from
	data := make([]T, 0, d.r*w)
	for i := 0; i < d.r; i++ {
		base := i * d.c
		data = append(data, d.data[base+from:base+to]...)
	}

	return &Dense[T]{r: d.r, c: w, data: cloneCells(data)}, nil
}

// Induced copies the submatrix at rows × cols in the order given.
// Duplicates are allowed; an empty selection on either axis yields the empty grid.
//
// Errors:
//   - ErrOutOfRange for any position outside the receiver.
//
// Complexity: Time O(len(rows)*len(cols)), Space same.
func (d *Dense[T]) Induced(rows, cols []int) (Grid[T], error) {
	for _, i := range rows {
		if err := validateIndex("rows", i, d.r); err != nil {
			return nil, gridErrorf(ctxInduced, i, err)
		}
	}
	for _, j := range cols {
		if err := validateIndex("cols", j, d.c); err != nil {
			return nil, gridErrorf(ctxInduced, j, err)
		}
	}
	if len(rows) == 0 || len(cols) == 0 {
		return Empty[T](), nil
	}

	data := make([]T, 0, len(rows)*len(cols))
	for _, i := range rows {
		base := i * d.c
		for _, j := range cols {
			data = append(data, d.data[base+j])
		}
	}

	return &Dense[T]{r: len(rows), c: len(cols), data: cloneCells(data)}, nil
}

// Concat appends other along axis.
// MAIN DESCRIPTION:
//   - AxisRows stacks other below the receiver; AxisCols places it to the right.
//
// Implementation:
//   - Stage 1: validate axis and operand.
//   - Stage 2: empty operands are identities (an empty receiver adopts a copy of other).
//   - Stage 3: check the cross dimension, then rebuild the buffer.
//
// Behavior highlights:
//   - other is read through ToRows before any write, so d.Concat(d, axis) is well-defined.
//
// Errors:
//   - ErrBadAxis, ErrNilGrid, ErrDimensionMismatch.
//
// Complexity:
//   - Time O((r+r')*(c+c')), Space same.
func (d *Dense[T]) Concat(other Grid[T], axis Axis) error {
	if !axis.Valid() {
		return gridErrorf(ctxConcat, int(axis), ErrBadAxis)
	}
	if err := ValidateNotNil(other); err != nil {
		return gridErrorf(ctxConcat, int(axis), err)
	}
	if other.IsEmpty() {
		return nil
	}
	rows := other.ToRows()
	if d.r == 0 {
		src, err := FromRows(rows)
		if err != nil {
			return gridErrorf(ctxConcat, int(axis), err)
		}
		*d = *src
		return nil
	}

	switch axis {
	case AxisRows:
		if other.Cols() != d.c {
			return gridErrorf(ctxConcat, int(axis), validatorErrorf("Columns", ErrDimensionMismatch))
		}
		data := make([]T, 0, (d.r+len(rows))*d.c)
		data = append(data, d.data...)
		for _, row := range rows {
			data = append(data, row...)
		}
		d.r, d.data = d.r+len(rows), data
	case AxisCols:
		if other.Rows() != d.r {
			return gridErrorf(ctxConcat, int(axis), validatorErrorf("Rows", ErrDimensionMismatch))
		}
		nc := d.c + other.Cols()
		data := make([]T, 0, d.r*nc)
		for i := 0; i < d.r; i++ {
			data = append(data, d.data[i*d.c:(i+1)*d.c]...)
			data = append(data, rows[i]...)
		}
		d.c, d.data = nc, data
	}

	return nil
}
