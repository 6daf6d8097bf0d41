// Package item turns raw user text into items.
package item

import (
	"strings"
	"unicode"
)

// isSeparator reports whether r separates two items.
func isSeparator(r rune) bool {
	return r == '\n' || r == ','
}

// isSpace reports whether r is trimmed from the ends of an item. A byte
// order mark counts as space, so a list saved with one still matches.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// TrimSpace removes the surrounding space of an item.
func TrimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

// Split converts raw text into a sequence of items. Items are separated by
// newlines or commas (mixing both is fine), surrounding whitespace is
// trimmed, and empty items are dropped. The source order is kept and
// duplicates are retained.
func Split(raw string) []string {
	fields := strings.FieldsFunc(raw, isSeparator)
	items := make([]string, 0, len(fields))
	for _, field := range fields {
		field = TrimSpace(field)
		if field != "" {
			items = append(items, field)
		}
	}
	return items
}
