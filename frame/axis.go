// SPDX-License-Identifier: MIT

// Package frame - label axis manager.
//
// A labelAxis is one ordered label sequence (column keys or row index).
// Length 0 means "unset"; otherwise the length equals the matching grid
// dimension and non-empty labels are unique. Lookups never populate an
// unset axis; only SetKeys/SetIndex or a labeled insert do.

package frame

import (
	"slices"
	"strconv"
)

type labelAxis struct {
	axis   Axis
	labels []string
}

func (a *labelAxis) isSet() bool { return len(a.labels) > 0 }

func (a *labelAxis) size() int { return len(a.labels) }

// values returns a copy; nil when unset.
func (a *labelAxis) values() []string {
	if !a.isSet() {
		return nil
	}

	return slices.Clone(a.labels)
}

func (a *labelAxis) clone() labelAxis {
	return labelAxis{axis: a.axis, labels: a.values()}
}

func (a *labelAxis) clear() { a.labels = nil }

func (a *labelAxis) contains(label string) bool {
	return slices.Contains(a.labels, label)
}

// positionOf resolves label to its position by linear search; the first
// match wins. Any lookup on an unset axis fails.
func (a *labelAxis) positionOf(op, label string) (int, error) {
	if i := slices.Index(a.labels, label); i >= 0 {
		return i, nil
	}

	return -1, labelErr(op, a.axis, label, ErrUnknownLabel)
}

// positionsOf resolves every label in order; duplicates resolve repeatedly.
func (a *labelAxis) positionsOf(op string, labels []string) ([]int, error) {
	out := make([]int, len(labels))
	for k, label := range labels {
		pos, err := a.positionOf(op, label)
		if err != nil {
			return nil, err
		}
		out[k] = pos
	}

	return out, nil
}

// validate checks labels against dimension n without mutating.
// An empty labels slice is always valid (it clears the axis).
func (a *labelAxis) validate(op string, labels []string, n int) error {
	if len(labels) == 0 {
		return nil
	}
	if len(labels) != n {
		return shapeErr(op, a.axis, n, len(labels), ErrCardinalityMismatch)
	}
	if dup, ok := firstDuplicate(labels); ok {
		return labelErr(op, a.axis, dup, ErrDuplicateLabel)
	}

	return nil
}

// set replaces the axis wholesale after validation.
func (a *labelAxis) set(op string, labels []string, n int) error {
	if err := a.validate(op, labels, n); err != nil {
		return err
	}
	if len(labels) == 0 {
		a.clear()
		return nil
	}
	a.labels = slices.Clone(labels)

	return nil
}

// planInsert returns the label sequence that results from inserting at pos
// into an axis currently describing n positions. The receiver is untouched.
//
//   - unset, no label: stays unset (nil).
//   - unset, label: the n existing positions get synthesized labels that avoid
//     label, and label is placed at pos.
//   - set, label: label must not already be present (non-empty labels only).
//   - set, no label: a fresh ordinal label is synthesized.
func (a *labelAxis) planInsert(op string, pos, n int, o insertOptions) ([]string, error) {
	if !a.isSet() {
		if !o.hasLabel {
			return nil, nil
		}
		return slices.Insert(generateLabels(n, o.label), pos, o.label), nil
	}

	label := o.label
	if !o.hasLabel {
		label = freshLabel(a.labels)
	}
	if label != "" && a.contains(label) {
		return nil, labelErr(op, a.axis, label, ErrDuplicateLabel)
	}

	return slices.Insert(slices.Clone(a.labels), pos, label), nil
}

// removeAt erases the label at pos; no-op on an unset axis.
func (a *labelAxis) removeAt(pos int) {
	if !a.isSet() {
		return
	}
	a.labels = slices.Delete(a.labels, pos, pos+1)
	if len(a.labels) == 0 {
		a.labels = nil
	}
}

// sub copies the half-open range [from,to); an unset axis stays unset.
func (a *labelAxis) sub(from, to int) labelAxis {
	if !a.isSet() || from == to {
		return labelAxis{axis: a.axis}
	}

	return labelAxis{axis: a.axis, labels: slices.Clone(a.labels[from:to])}
}

// generateLabels produces count ordinal labels "0", "1", ...
// The ordinal equal to avoid is replaced by avoid+ordinal ("2" -> "22"),
// extended again while it still collides with another ordinal.
func generateLabels(count int, avoid string) []string {
	out := make([]string, count)
	for i := range out {
		out[i] = strconv.Itoa(i)
	}
	if avoid == "" {
		return out
	}
	for i, label := range out {
		if label != avoid {
			continue
		}
		candidate := avoid + label
		for slices.Contains(out, candidate) {
			candidate = avoid + candidate
		}
		out[i] = candidate
		break
	}

	return out
}

// freshLabel returns the first ordinal >= len(existing) not already used.
func freshLabel(existing []string) string {
	for k := len(existing); ; k++ {
		label := strconv.Itoa(k)
		if !slices.Contains(existing, label) {
			return label
		}
	}
}

// firstDuplicate returns the first non-empty label seen twice.
func firstDuplicate(labels []string) (string, bool) {
	seen := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		if label == "" {
			continue
		}
		if _, ok := seen[label]; ok {
			return label, true
		}
		seen[label] = struct{}{}
	}

	return "", false
}
