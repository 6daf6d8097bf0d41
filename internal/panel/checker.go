package panel

import (
	"fmt"
	"slices"

	"github.com/favonia/tinyutils/internal/dupcheck"
	"github.com/favonia/tinyutils/internal/item"
	"github.com/favonia/tinyutils/internal/sorter"
)

// Status tells whether a duplicate check has run and what it found.
type Status int

const (
	// NotChecked means no check has run since the last reset.
	NotChecked Status = iota
	// NoDuplicates means a check ran and every item was unique.
	NoDuplicates
	// HasDuplicates means a check ran and found repeated items.
	HasDuplicates
)

// String returns a short identifier of the status.
func (s Status) String() string {
	switch s {
	case NotChecked:
		return "not-checked"
	case NoDuplicates:
		return "no-duplicates"
	case HasDuplicates:
		return "has-duplicates"
	default:
		return fmt.Sprintf("<unrecognized status %d>", int(s))
	}
}

// MarshalText encodes the status with [Status.String].
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// DuplicateChecker is the state of the duplicate checker: one raw list, the
// status of the last check, the duplicates it found, and the deduplicated
// panel with its sort order.
type DuplicateChecker struct {
	Text string

	sorter     *sorter.Sorter
	status     Status
	duplicates []dupcheck.Entry
	orders     Orders
	unique     []string
	showUnique bool
}

// NewDuplicateChecker creates a checker in the [NotChecked] state.
func NewDuplicateChecker(s *sorter.Sorter, def sorter.Order) *DuplicateChecker {
	return &DuplicateChecker{
		Text:       "",
		sorter:     s,
		status:     NotChecked,
		duplicates: []dupcheck.Entry{},
		orders:     NewOrders(def),
		unique:     []string{},
		showUnique: false,
	}
}

// Check counts the items and records the duplicates. It always leaves the
// checker in [NoDuplicates] or [HasDuplicates], even for blank text, and
// hides the deduplicated panel.
func (d *DuplicateChecker) Check() Status {
	d.duplicates = dupcheck.Count(item.Split(d.Text)).Duplicates()
	if len(d.duplicates) == 0 {
		d.status = NoDuplicates
	} else {
		d.status = HasDuplicates
	}
	d.showUnique = false
	return d.status
}

// RemoveDuplicates derives the deduplicated panel from the current text,
// whether or not a check has run. The panel is sorted in the default order
// and shown, and the checker goes back to [NotChecked].
func (d *DuplicateChecker) RemoveDuplicates() []string {
	d.orders.Reset()
	d.unique = d.sorter.Sort(dupcheck.Unique(item.Split(d.Text)), d.orders.Get(Unique))
	d.showUnique = true
	d.status = NotChecked
	return slices.Clone(d.unique)
}

// ToggleOrder flips the order of the deduplicated panel and re-sorts it.
func (d *DuplicateChecker) ToggleOrder() sorter.Order {
	order := d.orders.Toggle(Unique)
	d.unique = d.sorter.Sort(d.unique, order)
	return order
}

// IsEmpty checks whether the text is blank.
func (d *DuplicateChecker) IsEmpty() bool {
	return len(item.Split(d.Text)) == 0
}

// Status returns the status of the last check.
func (d *DuplicateChecker) Status() Status {
	return d.status
}

// Duplicates returns the duplicates found by the last check.
func (d *DuplicateChecker) Duplicates() []dupcheck.Entry {
	return slices.Clone(d.duplicates)
}

// Unique returns the current contents of the deduplicated panel.
func (d *DuplicateChecker) Unique() []string {
	return slices.Clone(d.unique)
}

// Order returns the sort order of the deduplicated panel.
func (d *DuplicateChecker) Order() sorter.Order {
	return d.orders.Get(Unique)
}

// ShowingUnique checks whether the deduplicated panel is shown instead of
// the duplicate listing.
func (d *DuplicateChecker) ShowingUnique() bool {
	return d.showUnique
}
