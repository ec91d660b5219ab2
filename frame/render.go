// SPDX-License-Identifier: MIT

// Package frame - rendering.
//
// The renderer is chosen once per element type when a frame is built:
// scalar kinds (bool, integers, floats, complex, string) and fmt.Stringer
// implementations get a bordered box table; everything else gets a plain
// structural dump.
//
// Box layout (keys and index set):
//
//	┌───┬─────┬─────┐
//	│   │ a   │ b   │
//	╞═══╪═════╪═════╡
//	│ x │ 1   │ 2   │
//	├───┼─────┼─────┤
//	│ y │ 3   │ 4   │
//	└───┴─────┴─────┘
//
// Each column is 2 wider than its widest cell or key; the index column is
// omitted when the index is unset.

package frame

import (
	"bufio"
	"fmt"
	"io"
	"reflect"
	"strings"
)

// Box drawing runes.
const (
	boxH      = "─"
	boxV      = "│"
	boxHH     = "═"
	topLeft   = "┌"
	topMid    = "┬"
	topRight  = "┐"
	headLeft  = "╞"
	headMid   = "╪"
	headRight = "╡"
	midLeft   = "├"
	midMid    = "┼"
	midRight  = "┤"
	botLeft   = "└"
	botMid    = "┴"
	botRight  = "┘"
)

type renderer[T any] interface {
	render(w io.Writer, f *Frame[T], n int, o printOptions) error
}

var stringerType = reflect.TypeFor[fmt.Stringer]()

// selectRenderer picks the box renderer for displayable element types.
func selectRenderer[T any]() renderer[T] {
	t := reflect.TypeFor[T]()
	if t.Implements(stringerType) {
		return boxRenderer[T]{}
	}
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return boxRenderer[T]{}
	default:
		return dumpRenderer[T]{}
	}
}

// Print writes the first n rows of f to w (n is clamped to [0, Height]).
// An empty frame prints EmptyFrameText.
func (f *Frame[T]) Print(w io.Writer, n int, opts ...PrintOption) error {
	o := gatherPrintOptions(opts)
	n = max(0, min(n, f.Height()))
	bw := bufio.NewWriter(w)
	if f.IsEmpty() {
		if _, err := fmt.Fprintln(bw, EmptyFrameText); err != nil {
			return err
		}
		return bw.Flush()
	}
	if err := f.renderer().render(bw, f, n, o); err != nil {
		return err
	}

	return bw.Flush()
}

// String renders the first DefaultPrintRows rows.
func (f *Frame[T]) String() string {
	var sb strings.Builder
	_ = f.Print(&sb, DefaultPrintRows)

	return sb.String()
}

// ---------- box ----------

type boxRenderer[T any] struct{}

func (boxRenderer[T]) render(w io.Writer, f *Frame[T], n int, o printOptions) error {
	rows := f.store().ToRows()
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = make([]string, len(row))
		for j, v := range row {
			cells[i][j] = fmt.Sprint(v)
		}
	}
	keys, index := f.keys.labels, f.index.labels

	// widths[0] is the index column; 0 means omitted.
	widths := make([]int, f.Width()+1)
	for _, label := range index {
		widths[0] = max(widths[0], 2+o.width.measure(label))
	}
	for j := 1; j < len(widths); j++ {
		if len(keys) > 0 {
			widths[j] = 2 + o.width.measure(keys[j-1])
		}
		for i := range cells {
			widths[j] = max(widths[j], 2+o.width.measure(cells[i][j-1]))
		}
	}

	bx := &boxWriter{w: w, widths: widths, mode: o.width}
	bx.rule(topLeft, boxH, topMid, topRight)
	if len(keys) > 0 {
		bx.row("", keys)
		bx.rule(headLeft, boxHH, headMid, headRight)
	}
	for i := 0; i < n; i++ {
		if i > 0 {
			bx.rule(midLeft, boxH, midMid, midRight)
		}
		label := ""
		if len(index) > 0 {
			label = index[i]
		}
		bx.row(label, cells[i])
	}
	bx.rule(botLeft, boxH, botMid, botRight)

	return bx.err
}

// boxWriter keeps the first write error and turns later writes into no-ops.
type boxWriter struct {
	w      io.Writer
	widths []int
	mode   WidthMode
	err    error
}

func (b *boxWriter) printf(format string, args ...any) {
	if b.err != nil {
		return
	}
	_, b.err = fmt.Fprintf(b.w, format, args...)
}

func (b *boxWriter) rule(left, fill, mid, right string) {
	var sb strings.Builder
	sb.WriteString(left)
	first := true
	for _, width := range b.widths {
		if width == 0 {
			continue
		}
		if !first {
			sb.WriteString(mid)
		}
		first = false
		sb.WriteString(strings.Repeat(fill, width))
	}
	sb.WriteString(right)
	b.printf("%s\n", sb.String())
}

func (b *boxWriter) row(label string, cells []string) {
	var sb strings.Builder
	sb.WriteString(boxV)
	if b.widths[0] > 0 {
		sb.WriteString(b.pad(label, b.widths[0]))
		sb.WriteString(boxV)
	}
	for j, cell := range cells {
		sb.WriteString(b.pad(cell, b.widths[j+1]))
		sb.WriteString(boxV)
	}
	b.printf("%s\n", sb.String())
}

// pad left-aligns s after one space and fills to width.
func (b *boxWriter) pad(s string, width int) string {
	return " " + s + strings.Repeat(" ", max(0, width-1-b.mode.measure(s)))
}

// ---------- dump ----------

type dumpRenderer[T any] struct{}

func (dumpRenderer[T]) render(w io.Writer, f *Frame[T], n int, _ printOptions) error {
	rows := f.store().ToRows()[:n]
	_, err := fmt.Fprintf(w, "keys: %v\nindex: %v\nrows: %v\n", f.keys.labels, f.index.labels, rows)

	return err
}
