// SPDX-License-Identifier: MIT
// Package: grid
//
// Purpose:
//  - Single source of truth for position and vector checks shared by Dense.
//  - Validators return tagged sentinels; they never mutate.

package grid

import "fmt"

// validatorErrorf wraps an underlying sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// gridErrorf attaches the Dense method and position to a sentinel.
func gridErrorf(method string, pos int, err error) error {
	return fmt.Errorf("Dense.%s(%d): %w", method, pos, err)
}

// validateIndex checks 0 <= i < n.
func validateIndex(tag string, i, n int) error {
	if i < 0 || i >= n {
		return validatorErrorf(tag, ErrOutOfRange)
	}

	return nil
}

// validateInsertPos checks 0 <= pos <= n (n is a legal append position).
func validateInsertPos(tag string, pos, n int) error {
	if pos < 0 || pos > n {
		return validatorErrorf(tag, ErrOutOfRange)
	}

	return nil
}

// validateRange checks 0 <= from <= to <= n for a half-open range.
func validateRange(tag string, from, to, n int) error {
	if from < 0 || to > n || from > to {
		return validatorErrorf(tag, ErrOutOfRange)
	}

	return nil
}

// validateVector checks a row/column payload against the cross dimension.
// want < 0 means "any non-zero length" (empty target grid).
func validateVector(tag string, got, want int) error {
	if got == 0 {
		return validatorErrorf(tag, ErrEmptyVector)
	}
	if want >= 0 && got != want {
		return validatorErrorf(tag, ErrDimensionMismatch)
	}

	return nil
}

// ValidateNotNil ensures g is non-nil, including typed-nil *Dense.
func ValidateNotNil[T any](g Grid[T]) error {
	if g == nil {
		return validatorErrorf("ValidateNotNil", ErrNilGrid)
	}
	if d, ok := g.(*Dense[T]); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilGrid)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes both are non-nil.
func ValidateSameShape[T any](a, b Grid[T]) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}
