// SPDX-License-Identifier: MIT

package csvio

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/katalvlaran/lvframe/frame"
)

// ReadPath reads a CSV file of strings from the OS filesystem.
func ReadPath(path string, opts ...Option) (*frame.Frame[string], error) {
	return ReadFile(afero.NewOsFs(), path, opts...)
}

// ReadFile reads a CSV file of strings from fsys.
func ReadFile(fsys afero.Fs, path string, opts ...Option) (*frame.Frame[string], error) {
	return ReadFileAs(fsys, path, func(s string) (string, error) { return s, nil }, opts...)
}

// ReadFileAs opens path on fsys and ingests it with ReadAs.
//
// Errors:
//   - ErrInvalidFormat if the extension is not exactly ".csv" (checked before open).
//   - ErrNotFound if the file does not exist; ErrIO for any other open failure.
//   - Any ReadAs error; *ParseError values carry path.
func ReadFileAs[T any](fsys afero.Fs, path string, parse func(string) (T, error), opts ...Option) (*frame.Frame[T], error) {
	if err := checkExtension(path); err != nil {
		return nil, err
	}
	fh, err := fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w: %w", path, ErrIO, err)
	}
	defer fh.Close()

	o := gatherOptions(opts)
	o.logger.Debug("csv open", "path", path)
	f, err := ReadAs(fh, parse, append(opts[:len(opts):len(opts)], WithLogger(o.logger.With("path", path)))...)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}

	return f, nil
}

// WriteFile creates (or truncates) path on fsys and writes f with Write.
func WriteFile[T any](fsys afero.Fs, path string, f *frame.Frame[T], opts ...Option) (err error) {
	if err = checkExtension(path); err != nil {
		return err
	}
	fh, err := fsys.Create(path)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", path, ErrIO, err)
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%s: %w: %w", path, ErrIO, cerr)
		}
	}()

	return Write(fh, f, opts...)
}

func checkExtension(path string) error {
	if filepath.Ext(path) != Extension {
		return fmt.Errorf("%s: %w", path, ErrInvalidFormat)
	}

	return nil
}
