// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// Every structural operation on a Grid returns one of these sentinels,
// optionally wrapped with call-site context via %w. Callers match with
// errors.Is; no public method panics on user input.

package grid

import "errors"

// Every message is prefixed with "grid: ..." so it can be grepped in logs.
// Wrap with gridErrorf at the detection site when a position matters.

var (
	// ErrOutOfRange indicates a row/column position outside valid bounds.
	ErrOutOfRange = errors.New("grid: position out of range")

	// ErrDimensionMismatch indicates incompatible cross dimensions between operands
	// (row of wrong width, column of wrong height, concat of unequal shapes).
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")

	// ErrNonRectangular is returned by FromRows when rows differ in length.
	ErrNonRectangular = errors.New("grid: ragged rows")

	// ErrEmptyVector is returned when inserting a zero-length row or column.
	ErrEmptyVector = errors.New("grid: empty vector")

	// ErrBadAxis signals a concatenation axis other than 0 (rows) or 1 (columns).
	ErrBadAxis = errors.New("grid: invalid axis")

	// ErrBadShape is returned when a requested shape is negative.
	ErrBadShape = errors.New("grid: invalid shape")

	// ErrNilGrid is returned when a required Grid argument is nil.
	ErrNilGrid = errors.New("grid: nil grid")

)
