// SPDX-License-Identifier: MIT

// Package frame: functional options for construction, labeled inserts and
// rendering. Options structs are unexported; public APIs consume ...Option.
// WithX constructors panic only on nonsensical values (programmer error).

package frame

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrintRows is the number of rows String() renders.
	DefaultPrintRows = 5

	// DefaultWidthMode measures display width in Unicode codepoints.
	DefaultWidthMode = WidthCodepoints

	// EmptyFrameText is what the renderer emits for a frame with no cells.
	EmptyFrameText = "(empty)"
)

const panicBadWidthMode = "frame: WithWidthMode: unknown width mode"

// ---------- construction ----------

// Option configures FromGrid / FromRows.
type Option func(*options)

type options struct {
	keys  []string
	index []string
}

// WithKeys labels the columns. An empty list leaves the keys unset.
func WithKeys(keys ...string) Option {
	return func(o *options) { o.keys = keys }
}

// WithIndex labels the rows. An empty list leaves the index unset.
func WithIndex(index ...string) Option {
	return func(o *options) { o.index = index }
}

func gatherOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// ---------- labeled insert ----------

// InsertOption configures InsertRow / InsertColumn and the Push* wrappers.
type InsertOption func(*insertOptions)

type insertOptions struct {
	label    string
	hasLabel bool
}

// WithLabel names the inserted row or column. Without it an unset axis stays
// unset and a set axis receives a synthesized ordinal label. WithLabel("")
// is an explicit empty label, not the absence of one.
func WithLabel(label string) InsertOption {
	return func(o *insertOptions) {
		o.label = label
		o.hasLabel = true
	}
}

func gatherInsertOptions(opts []InsertOption) insertOptions {
	var o insertOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// ---------- rendering ----------

// PrintOption configures Print.
type PrintOption func(*printOptions)

type printOptions struct {
	width WidthMode
}

// WithWidthMode selects how cell display width is measured.
// Panics on a value outside the declared WidthMode constants.
func WithWidthMode(m WidthMode) PrintOption {
	if !m.valid() {
		panic(panicBadWidthMode)
	}

	return func(o *printOptions) { o.width = m }
}

func gatherPrintOptions(opts []PrintOption) printOptions {
	o := printOptions{width: DefaultWidthMode}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
