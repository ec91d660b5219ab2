// SPDX-License-Identifier: MIT

package csvio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvframe/frame"
)

const utf8BOM = "\uFEFF"

// ingestState is the position of the line-driven ingestion machine.
type ingestState int

const (
	// stateAwaitingFirst: the next non-blank line is the header or the first data row.
	stateAwaitingFirst ingestState = iota
	// stateIngestingRows: every further line is one data row.
	stateIngestingRows
)

// ingester accumulates rows into a frame and defers labels to finish.
type ingester[T any] struct {
	o     options
	parse func(string) (T, error)
	state ingestState
	line  int

	keys  []string // from the header line, nil without header
	index []string // one label per data row when indexCol
	f     *frame.Frame[T]
}

// Read ingests r as a frame of strings.
func Read(r io.Reader, opts ...Option) (*frame.Frame[string], error) {
	return ReadAs(r, func(s string) (string, error) { return s, nil }, opts...)
}

// ReadAs ingests r, converting each field with parse.
//
// Implementation:
//   - Stage 1: read line by line; skip blank lines, trim "\r", strip a leading BOM.
//   - Stage 2: split literally on the separator; peel off the index field when enabled.
//   - Stage 3: the first line is the header (keys deferred) or the first row.
//   - Stage 4: after EOF apply keys and index through SetKeys/SetIndex.
//
// Behavior highlights:
//   - Zero data rows yield an empty, unlabeled frame even if a header was read.
//   - The first header field names the index column and is dropped.
//
// Errors (wrapped in *ParseError with the line number where one applies):
//   - frame.ErrRowWidthMismatch for a row whose width disagrees with the
//     header or with the first row.
//   - ErrMissingIndexName for an empty index field.
//   - ErrInvalidData when parse fails.
//   - frame.ErrDuplicateLabel for repeated keys or index labels.
//   - ErrIO when r fails.
func ReadAs[T any](r io.Reader, parse func(string) (T, error), opts ...Option) (*frame.Frame[T], error) {
	in := &ingester[T]{o: gatherOptions(opts), parse: parse, f: frame.New[T]()}
	br := bufio.NewReader(r)
	for {
		raw, err := br.ReadString('\n')
		if raw != "" {
			in.line++
			if ferr := in.feed(raw); ferr != nil {
				return nil, ferr
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrIO, err)
		}
	}

	return in.finish()
}

func (in *ingester[T]) feed(raw string) error {
	line := strings.TrimRight(raw, "\r\n")
	if in.line == 1 {
		line = strings.TrimPrefix(line, utf8BOM)
	}
	if line == "" {
		return nil
	}
	tokens := strings.Split(line, string(in.o.sep))

	if in.state == stateAwaitingFirst {
		in.state = stateIngestingRows
		if in.o.header {
			if in.o.indexCol {
				tokens = tokens[1:]
			}
			in.keys = tokens
			in.o.logger.Debug("csv header", "keys", len(tokens))
			return nil
		}
	}

	return in.row(tokens)
}

func (in *ingester[T]) row(tokens []string) error {
	if in.o.indexCol {
		if tokens[0] == "" {
			return &ParseError{Line: in.line, Err: ErrMissingIndexName}
		}
		in.index = append(in.index, tokens[0])
		tokens = tokens[1:]
	}

	want := in.f.Width()
	if in.keys != nil {
		want = len(in.keys)
	}
	if len(tokens) == 0 || (want > 0 && len(tokens) != want) {
		return &ParseError{Line: in.line, Err: &frame.ShapeError{
			Op: "ReadAs", Axis: frame.AxisCols, Want: want, Got: len(tokens), Err: frame.ErrRowWidthMismatch,
		}}
	}

	values := make([]T, len(tokens))
	for j, tok := range tokens {
		v, err := in.parse(tok)
		if err != nil {
			return &ParseError{Line: in.line, Err: fmt.Errorf("field %d %q: %w: %w", j+1, tok, ErrInvalidData, err)}
		}
		values[j] = v
	}
	if err := in.f.PushRowBack(values); err != nil {
		return &ParseError{Line: in.line, Err: err}
	}

	return nil
}

func (in *ingester[T]) finish() (*frame.Frame[T], error) {
	if in.f.IsEmpty() {
		in.o.logger.Debug("csv empty", "lines", in.line)
		return in.f, nil
	}
	if err := in.f.SetKeys(in.keys); err != nil {
		return nil, err
	}
	if err := in.f.SetIndex(in.index); err != nil {
		return nil, err
	}
	in.o.logger.Debug("csv loaded", "rows", in.f.Height(), "cols", in.f.Width(),
		"keys", in.f.HasKeys(), "index", in.f.HasIndex())

	return in.f, nil
}
