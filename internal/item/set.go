package item

import "github.com/favonia/tinyutils/internal/sliceutil"

// Set is a deduplicated collection of items. Only membership matters;
// [Set.Items] happens to list the items in first-seen order.
type Set struct {
	members map[string]struct{}
	items   []string
}

// NewSet creates a set containing all the items in seq.
func NewSet(seq ...[]string) *Set {
	s := &Set{members: map[string]struct{}{}, items: []string{}}
	for _, items := range seq {
		for _, item := range items {
			s.Add(item)
		}
	}
	return s
}

// Add inserts an item. It returns false if the item was already present.
func (s *Set) Add(item string) bool {
	if _, ok := s.members[item]; ok {
		return false
	}
	s.members[item] = struct{}{}
	s.items = append(s.items, item)
	return true
}

// Contains checks whether an item is in the set. The comparison is exact.
func (s *Set) Contains(item string) bool {
	_, ok := s.members[item]
	return ok
}

// Len returns the cardinality of the set.
func (s *Set) Len() int {
	return len(s.items)
}

// Items returns a fresh copy of the items.
func (s *Set) Items() []string {
	return append([]string{}, s.items...)
}

// Dedup removes repeated items, keeping the first occurrence of each value.
func Dedup(seq []string) []string {
	return sliceutil.Dedup(seq)
}
