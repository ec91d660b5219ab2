// SPDX-License-Identifier: MIT

package csvio

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat is returned for a path whose extension is not exactly ".csv".
	ErrInvalidFormat = errors.New("csvio: invalid file format")

	// ErrNotFound is returned when the CSV file does not exist.
	ErrNotFound = errors.New("csvio: file not found")

	// ErrIO wraps any failure to open, read, create or write a CSV source.
	ErrIO = errors.New("csvio: i/o error")

	// ErrMissingIndexName is returned when a data line has no usable leading index field.
	ErrMissingIndexName = errors.New("csvio: missing index name")

	// ErrInvalidData is returned when a field cannot be parsed into the element type.
	ErrInvalidData = errors.New("csvio: invalid data")

	// ErrUnrepresentable is returned by Write for a field containing the separator
	// or a line break; the format has no quoting.
	ErrUnrepresentable = errors.New("csvio: field not representable")
)

// ParseError locates an ingestion failure. Line is 1-based; Path is empty
// when reading from a bare io.Reader.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("csvio: %s:%d: %v", e.Path, e.Line, e.Err)
	}

	return fmt.Sprintf("csvio: line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
