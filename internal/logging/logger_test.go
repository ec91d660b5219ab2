package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		require.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNew_FormatAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn", "json")
	l.Info("hidden")
	l.Warn("shown", "k", 1)
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"msg":"shown"`)
	require.Contains(t, buf.String(), `"k":1`)

	buf.Reset()
	New(&buf, "info", "text").Info("plain")
	require.Contains(t, buf.String(), "msg=plain")
}

func TestContextRoundTrip(t *testing.T) {
	l := Nop()
	ctx := NewContext(context.Background(), l)
	require.Same(t, l, FromContext(ctx))
	require.Same(t, slog.Default(), FromContext(context.Background()))
}

func TestSetup_InstallsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	l := Setup(&buf, "info", "text")
	require.Same(t, l, slog.Default())
	require.Same(t, l, FromContext(context.Background()))

	slog.Info("via default")
	require.Contains(t, buf.String(), "msg=\"via default\"")
}
