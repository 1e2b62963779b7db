// Package textutils provides text cleanup utilities for imported cell values.
package textutils

import (
	"strings"
	"unicode"
)

const byteOrderMark = "\uFEFF"

// CleanCell prepares one raw cell value for interpretation: it strips a
// leading byte order mark, trims surrounding whitespace, and collapses inner
// whitespace runs to a single space. Spreadsheet exports routinely carry a
// BOM on the first header and padded or double-spaced values elsewhere.
func CleanCell(s string) string {
	s = strings.TrimPrefix(s, byteOrderMark)
	return CollapseWhitespace(s)
}

// CollapseWhitespace trims the string and replaces every run of whitespace
// with a single space.
func CollapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inRun := false
	for _, r := range strings.TrimSpace(s) {
		if unicode.IsSpace(r) {
			inRun = true
			continue
		}
		if inRun {
			b.WriteByte(' ')
			inRun = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
