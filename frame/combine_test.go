// SPDX-License-Identifier: MIT

package frame_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvframe/frame"
)

func TestConcat_ColumnsSharedIndex(t *testing.T) {
	a := MustFrame(t, [][]int{{1, 2, 3}, {4, 5, 6}}, frame.WithKeys("a", "b", "c"), frame.WithIndex("a", "b"))
	b := MustFrame(t, [][]int{{7, 8, 9}, {10, 11, 12}}, frame.WithKeys("d", "e", "f"), frame.WithIndex("a", "b"))

	require.NoError(t, a.Concat(b, frame.AxisCols))
	require.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, a.Keys())
	require.Equal(t, []string{"a", "b"}, a.Index())
	require.Equal(t, [][]int{{1, 2, 3, 7, 8, 9}, {4, 5, 6, 10, 11, 12}}, a.Data().ToRows())
}

func TestConcat_Rows(t *testing.T) {
	a := MustFrame(t, [][]int{{1, 2}}, frame.WithKeys("k1", "k2"), frame.WithIndex("i1"))
	b := MustFrame(t, [][]int{{3, 4}}, frame.WithKeys("k1", "k2"), frame.WithIndex("i2"))
	require.NoError(t, a.Concat(b, frame.AxisRows))
	require.Equal(t, []string{"i1", "i2"}, a.Index())
	require.Equal(t, 2, a.Height())
}

func TestConcat_Failures(t *testing.T) {
	abc := func() *frame.Frame[int] {
		return MustFrame(t, [][]int{{1, 2, 3}, {4, 5, 6}}, frame.WithKeys("a", "b", "c"), frame.WithIndex("a", "b"))
	}
	f := abc()

	tests := []struct {
		name  string
		other *frame.Frame[int]
		axis  frame.Axis
		want  error
	}{
		{"self", f, frame.AxisRows, frame.ErrSelfConcatenation},
		{"nil", nil, frame.AxisRows, frame.ErrNilFrame},
		{"bad axis", abc(), frame.Axis(2), frame.ErrInvalidAxis},
		{"duplicate keys", abc(), frame.AxisCols, frame.ErrDuplicateLabel},
		{"duplicate index", abc(), frame.AxisRows, frame.ErrDuplicateLabel},
		{"key mismatch", MustFrame(t, [][]int{{1, 2, 3}}, frame.WithKeys("x", "y", "z"), frame.WithIndex("c")), frame.AxisRows, frame.ErrKeyMismatch},
		{"index mismatch", MustFrame(t, [][]int{{1}, {2}}, frame.WithKeys("d"), frame.WithIndex("b", "a")), frame.AxisCols, frame.ErrIndexMismatch},
		{"one side unlabeled", MustFrame(t, [][]int{{1}, {2}}, frame.WithIndex("a", "b")), frame.AxisCols, frame.ErrCardinalityMismatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, f.Concat(tc.other, tc.axis), tc.want)
			require.True(t, abc().Equal(f)) // receiver untouched
		})
	}
}

func TestConcat_UnlabeledShapeMismatch(t *testing.T) {
	a := MustFrame(t, [][]int{{1, 2}})
	require.ErrorIs(t, a.Concat(MustFrame(t, [][]int{{1}}), frame.AxisRows), frame.ErrRowWidthMismatch)
	require.ErrorIs(t, a.Concat(MustFrame(t, [][]int{{1}, {2}}), frame.AxisCols), frame.ErrColumnHeightMismatch)
}

func TestConcat_EmptyOperands(t *testing.T) {
	e := frame.New[int]()
	require.NoError(t, e.Concat(frame.New[int](), frame.AxisRows))
	require.True(t, e.IsEmpty())

	src := MustFrame(t, [][]int{{1}}, frame.WithKeys("k"))
	require.NoError(t, e.Concat(src, frame.AxisRows))
	require.True(t, src.Equal(e))

	require.NoError(t, src.Concat(frame.New[int](), frame.AxisCols))
	require.Equal(t, []string{"k"}, src.Keys())
}

func TestConcat_EmptyReceiverAdoptsLabels(t *testing.T) {
	src := MustFrame(t, [][]int{{1, 2}, {3, 4}}, frame.WithKeys("a", "b"), frame.WithIndex("x", "y"))

	for _, axis := range []frame.Axis{frame.AxisRows, frame.AxisCols} {
		e := frame.New[int]()
		require.NoError(t, e.Concat(src, axis))
		require.Equal(t, []string{"a", "b"}, e.Keys())
		require.Equal(t, []string{"x", "y"}, e.Index())
		require.True(t, src.Equal(e))

		// the adopted frame is a copy
		require.NoError(t, e.RemoveColumn(0))
		require.Equal(t, []string{"a", "b"}, src.Keys())
		require.Equal(t, 2, src.Width())
	}
}

func TestConcat_EmptyOperandLeavesReceiver(t *testing.T) {
	f := MustFrame(t, [][]int{{1, 2}}, frame.WithKeys("a", "b"), frame.WithIndex("x"))
	want := f.Copy()

	for _, axis := range []frame.Axis{frame.AxisRows, frame.AxisCols} {
		require.NoError(t, f.Concat(frame.New[int](), axis))
		require.NoError(t, f.Concat(&frame.Frame[int]{}, axis))
		require.True(t, want.Equal(f))
	}
}

func TestMerge_LeavesOperands(t *testing.T) {
	a := MustFrame(t, [][]int{{1, 2}}, frame.WithKeys("a", "b"), frame.WithIndex("x"))
	b := MustFrame(t, [][]int{{3, 4}}, frame.WithKeys("a", "b"), frame.WithIndex("y"))

	m, err := frame.Merge(a, b, frame.AxisRows)
	require.NoError(t, err)
	require.Equal(t, []string{"x", "y"}, m.Index())
	require.Equal(t, 1, a.Height())

	_, err = frame.Merge(a, a, frame.AxisRows)
	require.ErrorIs(t, err, frame.ErrSelfConcatenation)
	_, err = frame.Merge(a, b, frame.AxisCols)
	require.ErrorIs(t, err, frame.ErrIndexMismatch)
}

func TestMergeSlice_Inverse(t *testing.T) {
	pairs := []struct {
		name string
		a, b *frame.Frame[int]
	}{
		{
			"labeled",
			MustFrame(t, [][]int{{1, 2}, {3, 4}}, frame.WithKeys("a", "b"), frame.WithIndex("p", "q")),
			MustFrame(t, [][]int{{5, 6}}, frame.WithKeys("a", "b"), frame.WithIndex("r")),
		},
		{
			"unlabeled",
			MustFrame(t, [][]int{{1, 2}}),
			MustFrame(t, [][]int{{5, 6}, {7, 8}}),
		},
	}
	for _, tc := range pairs {
		t.Run(tc.name, func(t *testing.T) {
			m, err := frame.Merge(tc.a, tc.b, frame.AxisRows)
			require.NoError(t, err)
			back, err := m.SliceRows(0, tc.a.Height()-1)
			require.NoError(t, err)
			require.True(t, tc.a.Equal(back))
		})
	}
}

func TestSlice(t *testing.T) {
	f := MustFrame(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
		frame.WithKeys("a", "b", "c"), frame.WithIndex("x", "y", "z"))

	s, err := f.SliceRowsByLabel("y", "z")
	require.NoError(t, err)
	require.Equal(t, []string{"y", "z"}, s.Index())
	require.Equal(t, []string{"a", "b", "c"}, s.Keys())
	require.Equal(t, [][]int{{4, 5, 6}, {7, 8, 9}}, s.Data().ToRows())

	s, err = f.SliceColumnsByKey("b", "b")
	require.NoError(t, err)
	require.Equal(t, []string{"b"}, s.Keys())
	require.Equal(t, [][]int{{2}, {5}, {8}}, s.Data().ToRows())

	_, err = f.SliceRows(2, 1)
	require.ErrorIs(t, err, frame.ErrOutOfRange)
	_, err = f.SliceColumns(0, 3)
	require.ErrorIs(t, err, frame.ErrOutOfRange)
	_, err = f.SliceRowsByLabel("x", "w")
	require.ErrorIs(t, err, frame.ErrUnknownLabel)

	u := MustFrame(t, [][]int{{1}, {2}})
	s, err = u.SliceRows(1, 1)
	require.NoError(t, err)
	require.False(t, s.HasIndex()) // unset propagates
}
