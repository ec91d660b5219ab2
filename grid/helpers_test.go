// SPDX-License-Identifier: MIT
// Package grid_test contains test helpers.

package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvframe/grid"
)

// hide wraps any Grid to mask its concrete type and force non-*Dense paths.
type hide[T any] struct{ grid.Grid[T] }

// MustRows builds a *Dense from literal rows or fails the test.
func MustRows[T any](t *testing.T, rows [][]T) *grid.Dense[T] {
	t.Helper()
	d, err := grid.FromRows(rows)
	require.NoError(t, err)

	return d
}
