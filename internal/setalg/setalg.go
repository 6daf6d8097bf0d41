// Package setalg compares two lists of items with elementary set algebra.
package setalg

import (
	"github.com/favonia/tinyutils/internal/item"
	"github.com/favonia/tinyutils/internal/sliceutil"
)

// Result holds the four derived sets of a comparison. Each set is
// deduplicated and unsorted; callers sort them as they see fit.
type Result struct {
	OnlyInA      []string
	OnlyInB      []string
	Intersection []string
	Union        []string
}

// Compare computes the derived sets of two item sequences.
// Membership is decided by exact string equality.
func Compare(a, b []string) Result {
	setA := item.NewSet(a)
	setB := item.NewSet(b)

	return Result{
		OnlyInA:      sliceutil.Filter(setA.Items(), func(s string) bool { return !setB.Contains(s) }),
		OnlyInB:      sliceutil.Filter(setB.Items(), func(s string) bool { return !setA.Contains(s) }),
		Intersection: sliceutil.Filter(setA.Items(), setB.Contains),
		Union:        item.NewSet(a, b).Items(),
	}
}
