// SPDX-License-Identifier: MIT

package frame_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvframe/frame"
)

// MustFrame builds a frame from literal rows or fails the test.
func MustFrame[T any](t *testing.T, rows [][]T, opts ...frame.Option) *frame.Frame[T] {
	t.Helper()
	f, err := frame.FromRows(rows, opts...)
	require.NoError(t, err)

	return f
}

// requireShapeInvariant checks len(keys) ∈ {0,width} and len(index) ∈ {0,height}.
func requireShapeInvariant[T any](t *testing.T, f *frame.Frame[T]) {
	t.Helper()
	if k := len(f.Keys()); k != 0 {
		require.Equal(t, f.Width(), k, "keys cardinality")
	}
	if n := len(f.Index()); n != 0 {
		require.Equal(t, f.Height(), n, "index cardinality")
	}
	if f.IsEmpty() {
		require.False(t, f.HasKeys())
		require.False(t, f.HasIndex())
	}
}
