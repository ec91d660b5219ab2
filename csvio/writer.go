// SPDX-License-Identifier: MIT

package csvio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvframe/frame"
)

// Write emits f in the format ReadAs accepts under the same options.
//
// Behavior highlights:
//   - A header line is written only when the header option is on and f has keys.
//   - The leading index field is written only when the index option is on and
//     f has an index; the header's index field is left empty.
//   - Cells are formatted with fmt.Sprint.
//
// Errors:
//   - ErrUnrepresentable for a field containing the separator or a line break.
//   - ErrIO when w fails.
func Write[T any](w io.Writer, f *frame.Frame[T], opts ...Option) error {
	o := gatherOptions(opts)
	sep := string(o.sep)
	withIndex := o.indexCol && f.HasIndex()
	bw := bufio.NewWriter(w)

	writeLine := func(fields []string) error {
		for _, field := range fields {
			if strings.Contains(field, sep) || strings.ContainsAny(field, "\r\n") {
				return fmt.Errorf("%q: %w", field, ErrUnrepresentable)
			}
		}
		if _, err := bw.WriteString(strings.Join(fields, sep) + "\n"); err != nil {
			return fmt.Errorf("%w: %w", ErrIO, err)
		}
		return nil
	}

	if o.header && f.HasKeys() {
		header := f.Keys()
		if withIndex {
			header = append([]string{""}, header...)
		}
		if err := writeLine(header); err != nil {
			return err
		}
	}
	index := f.Index()
	for i, row := range f.Data().ToRows() {
		fields := make([]string, 0, len(row)+1)
		if withIndex {
			fields = append(fields, index[i])
		}
		for _, v := range row {
			fields = append(fields, fmt.Sprint(v))
		}
		if err := writeLine(fields); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	o.logger.Debug("csv written", "rows", f.Height(), "cols", f.Width())

	return nil
}
