// SPDX-License-Identifier: MIT

// Package frame provides Frame, a dense grid of homogeneous values with two
// optional label axes: column keys and a row index.
//
// What it guarantees:
//
//   - Labels stay in lockstep with the grid across InsertRow/InsertColumn,
//     Push*, Remove*, Concat, Merge and Slice*; an axis is either unset or
//     has exactly one label per position.
//   - Non-empty labels are unique within an axis.
//   - Every failing call leaves the frame unchanged and returns an error
//     matching one sentinel (ErrDuplicateLabel, ErrUnknownLabel, ...).
//
// Quick start:
//
//	f, _ := frame.FromRows([][]int{{1, 2}, {3, 4}}, frame.WithKeys("a", "b"))
//	_ = f.PushRowBack([]int{5, 6}, frame.WithLabel("z"))
//	_ = f.Print(os.Stdout, 10)
//
// Inserting a labeled row into a frame whose index is unset synthesizes
// ordinal labels ("0", "1", ...) for the existing rows. CSV input and output
// live in package csvio.
package frame
