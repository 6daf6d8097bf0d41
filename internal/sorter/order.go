package sorter

import (
	"fmt"
	"strings"
)

// Order is the direction of sorting.
type Order int

const (
	// Ascending is the default order.
	Ascending Order = iota
	Descending
)

// String returns "asc" or "desc".
func (o Order) String() string {
	switch o {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return fmt.Sprintf("<unrecognized order %d>", int(o))
	}
}

// Describe returns a human-readable name of the order.
func (o Order) Describe() string {
	switch o {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return o.String()
	}
}

// Toggle returns the opposite order.
func (o Order) Toggle() Order {
	if o == Descending {
		return Ascending
	}
	return Descending
}

// ParseOrder parses "asc", "ascending", "desc", or "descending" (case-insensitive).
func ParseOrder(s string) (Order, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending, true
	case "desc", "descending":
		return Descending, true
	default:
		return Ascending, false
	}
}

// MarshalText encodes the order as "asc" or "desc".
func (o Order) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}
