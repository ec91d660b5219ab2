// SPDX-License-Identifier: MIT

package grid

import "reflect"

// Equal reports whether a and b have the same shape and equal cells.
// Cells are compared with reflect.DeepEqual, so NaN never equals NaN and
// composite cells compare by content. Two nil grids are equal.
func Equal[T any](a, b Grid[T]) bool {
	an, bn := ValidateNotNil(a) != nil, ValidateNotNil(b) != nil
	if an || bn {
		return an == bn
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}
	if a.IsEmpty() {
		return true
	}
	// Fast path: both dense, compare buffers directly.
	if da, ok := a.(*Dense[T]); ok {
		if db, ok := b.(*Dense[T]); ok {
			return reflect.DeepEqual(da.data, db.data)
		}
	}
	for i := 0; i < a.Rows(); i++ {
		ra, _ := a.Row(i)
		rb, _ := b.Row(i)
		if !reflect.DeepEqual(ra, rb) {
			return false
		}
	}

	return true
}
