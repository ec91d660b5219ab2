// SPDX-License-Identifier: MIT

// Package csvio reads and writes frames as plain separator-delimited text.
//
// The accepted format is small: one record per line, fields
// split literally on a single separator rune, no quoting, no escaped
// separators and no multi-line fields. An optional first line holds the
// column keys and an optional first field holds the row label.
//
// Read and ReadAs consume any io.Reader; ReadFile goes through an afero.Fs
// so callers and tests can substitute an in-memory filesystem.
package csvio
