package session

import "strings"

// Target names a slot of raw text.
type Target int

const (
	// ListA is the first list of the comparator.
	ListA Target = iota
	// ListB is the second list of the comparator.
	ListB
	// Text is the list of the duplicate checker.
	Text
)

// String returns the identifier of the slot used in scripts.
func (t Target) String() string {
	switch t {
	case ListA:
		return "a"
	case ListB:
		return "b"
	default:
		return "text"
	}
}

// ParseTarget parses "a", "b", or "text" (case-insensitive).
func ParseTarget(s string) (Target, bool) {
	switch strings.ToLower(s) {
	case "a":
		return ListA, true
	case "b":
		return ListB, true
	case "text":
		return Text, true
	default:
		return Text, false
	}
}
