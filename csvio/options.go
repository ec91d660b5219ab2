// SPDX-License-Identifier: MIT

package csvio

import "log/slog"

// ---------- Defaults ----------

const (
	// DefaultSeparator splits fields.
	DefaultSeparator = ','
	// DefaultHeader treats the first line as column keys.
	DefaultHeader = true
	// DefaultIndexColumn treats the first field of each line as a row label.
	DefaultIndexColumn = false
	// Extension is the only accepted file extension (case-sensitive).
	Extension = ".csv"
)

const panicBadSeparator = "csvio: WithSeparator: separator must be a printable non-newline rune"

// Option configures reading and writing.
type Option func(*options)

type options struct {
	sep      rune
	header   bool
	indexCol bool
	logger   *slog.Logger
}

// WithSeparator sets the one-character field separator.
// Panics on '\n', '\r' or the zero rune.
func WithSeparator(sep rune) Option {
	if sep == 0 || sep == '\n' || sep == '\r' {
		panic(panicBadSeparator)
	}

	return func(o *options) { o.sep = sep }
}

// WithHeader toggles whether the first line holds column keys.
func WithHeader(on bool) Option {
	return func(o *options) { o.header = on }
}

// WithIndexColumn toggles whether the first field of each line is a row label.
func WithIndexColumn(on bool) Option {
	return func(o *options) { o.indexCol = on }
}

// WithLogger routes ingestion diagnostics (debug level) to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func gatherOptions(opts []Option) options {
	o := options{
		sep:      DefaultSeparator,
		header:   DefaultHeader,
		indexCol: DefaultIndexColumn,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	return o
}
