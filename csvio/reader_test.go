// SPDX-License-Identifier: MIT

package csvio_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvframe/csvio"
	"github.com/katalvlaran/lvframe/frame"
)

func TestRead_HeaderAndRows(t *testing.T) {
	f, err := csvio.Read(strings.NewReader("a,b,c\n1,2,3\n4,5,6\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, f.Keys())
	require.False(t, f.HasIndex())
	require.Equal(t, [][]string{{"1", "2", "3"}, {"4", "5", "6"}}, f.Data().ToRows())
}

func TestRead_HeaderOnlyYieldsEmptyUnlabeled(t *testing.T) {
	for _, src := range []string{"", "a,b,c\n", "\n\n", "idx,a\n"} {
		f, err := csvio.Read(strings.NewReader(src), csvio.WithIndexColumn(strings.HasPrefix(src, "idx")))
		require.NoError(t, err, src)
		require.True(t, f.IsEmpty(), src)
		require.False(t, f.HasKeys(), src)
		require.False(t, f.HasIndex(), src)
	}
}

func TestRead_IndexColumnDropsHeaderToken(t *testing.T) {
	src := "id;x;y\nr1;1;2\nr2;3;4\n"
	f, err := csvio.Read(strings.NewReader(src), csvio.WithSeparator(';'), csvio.WithIndexColumn(true))
	require.NoError(t, err)
	require.Equal(t, []string{"x", "y"}, f.Keys())
	require.Equal(t, []string{"r1", "r2"}, f.Index())
	v, err := f.Value("r2", "x")
	require.NoError(t, err)
	require.Equal(t, "3", v)
}

func TestRead_NoHeader(t *testing.T) {
	f, err := csvio.Read(strings.NewReader("1,2\r\n3,4\r\n"), csvio.WithHeader(false))
	require.NoError(t, err)
	require.False(t, f.HasKeys())
	require.Equal(t, [][]string{{"1", "2"}, {"3", "4"}}, f.Data().ToRows())
}

func TestRead_StripsBOM(t *testing.T) {
	f, err := csvio.Read(strings.NewReader("\uFEFFk\nv\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"k"}, f.Keys())
}

func TestRead_Failures(t *testing.T) {
	tests := []struct {
		name string
		src  string
		opts []csvio.Option
		want error
		line int
	}{
		{"row wider than header", "a,b\n1,2\n1,2,3\n", nil, frame.ErrRowWidthMismatch, 3},
		{"second row narrower", "1,2\n1\n", []csvio.Option{csvio.WithHeader(false)}, frame.ErrRowWidthMismatch, 2},
		{"empty index field", "i,a\n,1\n", []csvio.Option{csvio.WithIndexColumn(true)}, csvio.ErrMissingIndexName, 2},
		{"index only", "i,a\nr\n", []csvio.Option{csvio.WithIndexColumn(true)}, frame.ErrRowWidthMismatch, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := csvio.Read(strings.NewReader(tc.src), tc.opts...)
			require.ErrorIs(t, err, tc.want)
			var pe *csvio.ParseError
			require.ErrorAs(t, err, &pe)
			require.Equal(t, tc.line, pe.Line)
		})
	}
}

func TestRead_DuplicateLabels(t *testing.T) {
	_, err := csvio.Read(strings.NewReader("a,a\n1,2\n"))
	require.ErrorIs(t, err, frame.ErrDuplicateLabel)

	_, err = csvio.Read(strings.NewReader("i,a\nr,1\nr,2\n"), csvio.WithIndexColumn(true))
	require.ErrorIs(t, err, frame.ErrDuplicateLabel)
}

func TestReadAs_ParsesValues(t *testing.T) {
	f, err := csvio.ReadAs(strings.NewReader("a,b\n1,2\n"), strconv.Atoi)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 2}}, f.Data().ToRows())

	_, err = csvio.ReadAs(strings.NewReader("a,b\n1,x\n"), strconv.Atoi)
	require.ErrorIs(t, err, csvio.ErrInvalidData)
	require.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestRead_ReaderFailure(t *testing.T) {
	boom := errors.New("boom")
	_, err := csvio.Read(iotest.ErrReader(boom))
	require.ErrorIs(t, err, csvio.ErrIO)
	require.ErrorIs(t, err, boom)
}

func TestRead_LogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := csvio.Read(strings.NewReader("a\n1\n"), csvio.WithLogger(log))
	require.NoError(t, err)
	require.Contains(t, buf.String(), "csv loaded")
	require.Contains(t, buf.String(), "rows=1")
}

func TestWithSeparator_PanicsOnNewline(t *testing.T) {
	require.Panics(t, func() { csvio.WithSeparator('\n') })
}
