// SPDX-License-Identifier: MIT
// Package frame: sentinel error set and typed context wrappers.
//
// Every failing operation returns an error matching exactly one sentinel via
// errors.Is. Label and shape context (offending label, expected vs actual
// size) travels in *LabelError / *ShapeError, recoverable with errors.As.
// A returned error always means the frame was left unchanged.

package frame

import (
	"errors"
	"fmt"
)

var (
	// ErrCardinalityMismatch indicates a label count that disagrees with the grid dimension.
	ErrCardinalityMismatch = errors.New("frame: label count does not match grid dimension")

	// ErrDuplicateLabel indicates a non-unique non-empty label within one axis.
	ErrDuplicateLabel = errors.New("frame: duplicate label")

	// ErrUnknownLabel indicates a lookup of an absent label, or any lookup on an unset axis.
	ErrUnknownLabel = errors.New("frame: unknown label")

	// ErrRowWidthMismatch indicates an inserted row whose length differs from the width.
	ErrRowWidthMismatch = errors.New("frame: row width mismatch")

	// ErrColumnHeightMismatch indicates an inserted column whose length differs from the height.
	ErrColumnHeightMismatch = errors.New("frame: column height mismatch")

	// ErrKeyMismatch indicates row-wise concatenation of frames with different keys.
	ErrKeyMismatch = errors.New("frame: column keys differ")

	// ErrIndexMismatch indicates column-wise concatenation of frames with different indexes.
	ErrIndexMismatch = errors.New("frame: row index differs")

	// ErrInvalidAxis indicates an axis argument outside {AxisRows, AxisCols}.
	ErrInvalidAxis = errors.New("frame: invalid axis")

	// ErrSelfConcatenation indicates concatenating a frame with itself.
	ErrSelfConcatenation = errors.New("frame: concatenation with itself")

	// ErrOutOfRange indicates a position outside the valid range for insert, remove or slice.
	ErrOutOfRange = errors.New("frame: position out of range")

	// ErrEmptyVector indicates an insert of a zero-length row or column.
	ErrEmptyVector = errors.New("frame: empty vector")

	// ErrNilFrame indicates a nil *Frame operand.
	ErrNilFrame = errors.New("frame: nil frame")
)

// LabelError carries the label that triggered a label-axis failure.
type LabelError struct {
	Op    string // public operation, e.g. "RemoveRowByLabel"
	Axis  Axis   // AxisRows for the index, AxisCols for the keys
	Label string
	Err   error
}

func (e *LabelError) Error() string {
	return fmt.Sprintf("%s: %s label %q: %v", e.Op, axisNoun(e.Axis), e.Label, e.Err)
}

func (e *LabelError) Unwrap() error { return e.Err }

// ShapeError carries the expected and actual sizes of a shape failure.
type ShapeError struct {
	Op   string
	Axis Axis
	Want int
	Got  int
	Err  error
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s: want %d, got %d: %v", e.Op, axisNoun(e.Axis), e.Want, e.Got, e.Err)
}

func (e *ShapeError) Unwrap() error { return e.Err }

func labelErr(op string, axis Axis, label string, err error) error {
	return &LabelError{Op: op, Axis: axis, Label: label, Err: err}
}

func shapeErr(op string, axis Axis, want, got int, err error) error {
	return &ShapeError{Op: op, Axis: axis, Want: want, Got: got, Err: err}
}

// frameErrorf tags a sentinel with the public operation name.
func frameErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

func axisNoun(a Axis) string {
	switch a {
	case AxisRows:
		return "index"
	case AxisCols:
		return "key"
	default:
		return a.String()
	}
}
