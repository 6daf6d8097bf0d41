// Package dupcheck counts repeated items.
package dupcheck

import (
	"github.com/favonia/tinyutils/internal/item"
	"github.com/favonia/tinyutils/internal/sliceutil"
)

// Entry is an item together with its number of occurrences.
type Entry struct {
	Item  string `json:"item"`
	Count int    `json:"count"`
}

// CountMap maps every item of a sequence to its number of occurrences.
// The first-seen order of the items is remembered so that listings are
// deterministic.
type CountMap struct {
	counts map[string]int
	order  []string
}

// Count tallies the occurrences of each item in one pass.
func Count(seq []string) CountMap {
	m := CountMap{counts: make(map[string]int, len(seq)), order: []string{}}
	for _, it := range seq {
		if m.counts[it] == 0 {
			m.order = append(m.order, it)
		}
		m.counts[it]++
	}
	return m
}

// Entries lists all the items with their counts in first-seen order.
func (m CountMap) Entries() []Entry {
	entries := make([]Entry, 0, len(m.order))
	for _, it := range m.order {
		entries = append(entries, Entry{Item: it, Count: m.counts[it]})
	}
	return entries
}

// Duplicates lists the items that occur at least twice, in first-seen order.
func (m CountMap) Duplicates() []Entry {
	return sliceutil.Filter(m.Entries(), func(e Entry) bool { return e.Count > 1 })
}

// Unique returns the deduplicated items of seq. It does not depend on any
// previous call to [Count].
func Unique(seq []string) []string {
	return item.Dedup(seq)
}
