// SPDX-License-Identifier: MIT

package frame

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateLabels(t *testing.T) {
	require.Equal(t, []string{"0", "1", "2"}, generateLabels(3, ""))
	require.Equal(t, []string{"0", "1", "22"}, generateLabels(3, "2"))
	require.Equal(t, []string{"0", "1"}, generateLabels(2, "x"))
	require.Empty(t, generateLabels(0, "a"))

	// "22" is itself an ordinal here, so the prefix is applied again
	got := generateLabels(30, "2")
	require.Equal(t, "222", got[2])
	require.Equal(t, "22", got[22])
}

func TestFreshLabel(t *testing.T) {
	require.Equal(t, "2", freshLabel([]string{"a", "b"}))
	require.Equal(t, "3", freshLabel([]string{"2", "b", "x"}))
}

func TestLabelAxis_SetAndLookup(t *testing.T) {
	a := labelAxis{axis: AxisCols}
	_, err := a.positionOf("t", "a")
	require.ErrorIs(t, err, ErrUnknownLabel) // unset axis never resolves
	require.False(t, a.isSet())

	require.ErrorIs(t, a.set("t", []string{"a"}, 2), ErrCardinalityMismatch)
	require.ErrorIs(t, a.set("t", []string{"a", "a"}, 2), ErrDuplicateLabel)
	require.NoError(t, a.set("t", []string{"", ""}, 2)) // empty labels may repeat

	require.NoError(t, a.set("t", []string{"a", "b"}, 2))
	pos, err := a.positionOf("t", "b")
	require.NoError(t, err)
	require.Equal(t, 1, pos)

	require.NoError(t, a.set("t", nil, 2))
	require.False(t, a.isSet())
}

func TestLabelAxis_PlanInsertLeavesReceiver(t *testing.T) {
	a := labelAxis{axis: AxisRows, labels: []string{"a", "b"}}
	got, err := a.planInsert("t", 1, 2, insertOptions{label: "c", hasLabel: true})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "c", "b"}, got)
	require.Equal(t, []string{"a", "b"}, a.labels)

	_, err = a.planInsert("t", 0, 2, insertOptions{label: "a", hasLabel: true})
	require.ErrorIs(t, err, ErrDuplicateLabel)

	got, err = a.planInsert("t", 2, 2, insertOptions{})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "2"}, got)
}

func TestLabelAxis_RemoveAtUnsetIsNoop(t *testing.T) {
	a := labelAxis{axis: AxisRows}
	a.removeAt(0)
	require.False(t, a.isSet())

	a.labels = []string{"x"}
	a.removeAt(0)
	require.False(t, a.isSet())
}
