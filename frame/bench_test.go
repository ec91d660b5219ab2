// SPDX-License-Identifier: MIT

package frame_test

import (
	"io"
	"strconv"
	"testing"

	"github.com/katalvlaran/lvframe/frame"
)

func BenchmarkPushRowBack_Labeled(b *testing.B) {
	row := []int{1, 2, 3, 4}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		f := frame.New[int]()
		for r := 0; r < 64; r++ {
			if err := f.PushRowBack(row, frame.WithLabel("r"+strconv.Itoa(r))); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkPrint(b *testing.B) {
	rows := make([][]string, 100)
	for i := range rows {
		rows[i] = []string{"alpha", "βeta", strconv.Itoa(i)}
	}
	f, err := frame.FromRows(rows, frame.WithKeys("a", "b", "c"))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := f.Print(io.Discard, 100); err != nil {
			b.Fatal(err)
		}
	}
}
