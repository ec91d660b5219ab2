// SPDX-License-Identifier: MIT

package frame

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// WidthMode selects how the renderer measures the display width of a cell.
type WidthMode int

const (
	// WidthCodepoints counts Unicode codepoints (UTF-8 continuation bytes are skipped).
	WidthCodepoints WidthMode = iota
	// WidthGraphemes counts user-perceived characters (extended grapheme clusters).
	WidthGraphemes
	// WidthCells counts terminal cells; East Asian wide characters take two.
	WidthCells
)

// ErrUnknownWidthMode is returned by ParseWidthMode for an unrecognized name.
var ErrUnknownWidthMode = errors.New("frame: unknown width mode")

var widthModeNames = [...]string{
	WidthCodepoints: "codepoints",
	WidthGraphemes:  "graphemes",
	WidthCells:      "cells",
}

func (m WidthMode) valid() bool { return m >= WidthCodepoints && m <= WidthCells }

// String implements fmt.Stringer.
func (m WidthMode) String() string {
	if !m.valid() {
		return fmt.Sprintf("WidthMode(%d)", int(m))
	}

	return widthModeNames[m]
}

// ParseWidthMode maps "codepoints", "graphemes" or "cells" (case-insensitive) to a WidthMode.
func ParseWidthMode(s string) (WidthMode, error) {
	for m, name := range widthModeNames {
		if strings.EqualFold(s, name) {
			return WidthMode(m), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownWidthMode)
}

// measure returns the display width of s under m.
func (m WidthMode) measure(s string) int {
	switch m {
	case WidthGraphemes:
		return uniseg.GraphemeClusterCount(s)
	case WidthCells:
		return runewidth.StringWidth(s)
	default:
		return codepointCount(s)
	}
}

// codepointCount counts the bytes of s that are not UTF-8 continuation bytes (10xxxxxx).
func codepointCount(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i]&0xC0 != 0x80 {
			n++
		}
	}

	return n
}
