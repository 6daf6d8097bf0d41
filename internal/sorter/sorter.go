// Package sorter sorts item sets numerically or lexically.
package sorter

import (
	"cmp"
	"errors"
	"math/big"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/favonia/tinyutils/internal/item"
)

// Mode is how a sequence is compared.
type Mode int

const (
	// Numeric compares the items by their numeric values.
	Numeric Mode = iota
	// Lexical compares the items as strings, following a collation.
	Lexical
)

// String returns "numeric" or "lexical".
func (m Mode) String() string {
	if m == Numeric {
		return "numeric"
	}
	return "lexical"
}

// ParseNumber parses an item as a number. Surrounding space is ignored, and
// the rest of the item must be one of
//
//   - a decimal literal with an optional sign, fraction, and exponent
//     ("-1.5e3", ".5", "1.");
//   - "Infinity" with an optional sign, spelled exactly so;
//   - an unsigned binary, octal, or hexadecimal integer ("0b11", "0o17",
//     "0x1F").
//
// Digit separators, hexadecimal floats, and other spellings of infinity or
// NaN are not numbers.
func ParseNumber(s string) (float64, bool) {
	s = item.TrimSpace(s)
	if f, ok := parseRadixInteger(s); ok {
		return f, true
	}
	if !isDecimalLiteral(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !isRangeError(err) {
		return 0, false
	}
	return f, true
}

// isDecimalLiteral checks the syntax that [strconv.ParseFloat] should then
// accept. ParseFloat alone is more liberal ("inf", "0x1p4", "1_0").
func isDecimalLiteral(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if s[i:] == "Infinity" {
		return true
	}

	digits := func() int {
		start := i
		for i < len(s) && '0' <= s[i] && s[i] <= '9' {
			i++
		}
		return i - start
	}

	n := digits()
	if i < len(s) && s[i] == '.' {
		i++
		n += digits()
	}
	if n == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		if digits() == 0 {
			return false
		}
	}
	return i == len(s)
}

// parseRadixInteger parses "0b", "0o", and "0x" integers. Values beyond
// 64 bits are rounded to the nearest float.
func parseRadixInteger(s string) (float64, bool) {
	if len(s) < 3 || s[0] != '0' {
		return 0, false
	}

	var base int
	switch s[1] {
	case 'b', 'B':
		base = 2
	case 'o', 'O':
		base = 8
	case 'x', 'X':
		base = 16
	default:
		return 0, false
	}

	// With an explicit base, ParseUint rejects signs and underscores.
	digits := s[2:]
	n, err := strconv.ParseUint(digits, base, 64)
	switch {
	case err == nil:
		return float64(n), true
	case isRangeError(err):
		b, ok := new(big.Int).SetString(digits, base)
		if !ok {
			return 0, false
		}
		f, _ := new(big.Float).SetInt(b).Float64()
		return f, true
	default:
		return 0, false
	}
}

// isRangeError accepts overflowing literals such as "1e400", which
// strconv reports along with the saturated value.
func isRangeError(err error) bool {
	var numErr *strconv.NumError
	return errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange)
}

// IsNumeric checks whether every item parses as a number.
// The decision is all-or-nothing: one non-numeric item makes the whole
// sequence lexical.
func IsNumeric(items []string) bool {
	for _, it := range items {
		if _, ok := ParseNumber(it); !ok {
			return false
		}
	}
	return true
}

// Classify returns the mode [Sorter.Sort] will use, and how many of the
// items are numbers.
func Classify(items []string) (Mode, int) {
	numbers := 0
	for _, it := range items {
		if _, ok := ParseNumber(it); ok {
			numbers++
		}
	}
	if numbers == len(items) {
		return Numeric, numbers
	}
	return Lexical, numbers
}

// Sorter sorts items. It is not safe for concurrent use.
type Sorter struct {
	tag      language.Tag
	collator *collate.Collator
}

// New creates a sorter whose lexical mode follows the collation rules of tag.
func New(tag language.Tag) *Sorter {
	return &Sorter{tag: tag, collator: collate.New(tag)}
}

// Locale returns the language tag used for lexical comparison.
func (s *Sorter) Locale() language.Tag {
	return s.tag
}

func compareNumeric(a, b string) int {
	x, _ := ParseNumber(a)
	y, _ := ParseNumber(b)
	return cmp.Or(cmp.Compare(x, y), strings.Compare(a, b))
}

func (s *Sorter) compareLexical(a, b string) int {
	return cmp.Or(s.collator.CompareString(a, b), strings.Compare(a, b))
}

// Sort returns a sorted copy of items. The input is not modified and the
// output has the same length.
func (s *Sorter) Sort(items []string, order Order) []string {
	sorted := slices.Clone(items)
	if sorted == nil {
		sorted = []string{}
	}

	compare := s.compareLexical
	if IsNumeric(sorted) {
		compare = compareNumeric
	}

	if order == Descending {
		slices.SortFunc(sorted, func(a, b string) int { return compare(b, a) })
	} else {
		slices.SortFunc(sorted, compare)
	}
	return sorted
}
