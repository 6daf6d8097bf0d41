// Package panel keeps the state of the result panels of the list widgets.
package panel

import (
	"fmt"
	"strings"

	"github.com/favonia/tinyutils/internal/sorter"
)

// Name identifies a result panel.
type Name int

const (
	OnlyInA Name = iota
	OnlyInB
	Intersection
	Union
	Unique
)

// ComparatorPanels lists the panels of the list comparator in display order.
var ComparatorPanels = []Name{OnlyInA, OnlyInB, Intersection, Union} //nolint:gochecknoglobals

// String returns the identifier of the panel used in commands.
func (n Name) String() string {
	switch n {
	case OnlyInA:
		return "only-in-a"
	case OnlyInB:
		return "only-in-b"
	case Intersection:
		return "intersection"
	case Union:
		return "union"
	case Unique:
		return "unique"
	default:
		return fmt.Sprintf("<unrecognized panel %d>", int(n))
	}
}

// Describe returns the title of the panel.
func (n Name) Describe() string {
	switch n {
	case OnlyInA:
		return "Only in A"
	case OnlyInB:
		return "Only in B"
	case Intersection:
		return "Intersection"
	case Union:
		return "Union"
	case Unique:
		return "Results"
	default:
		return n.String()
	}
}

// ParseName parses a panel identifier. Underscores, spaces, and case are ignored,
// so "only_in_a", "Only in A", and "onlyInA" are all accepted.
func ParseName(s string) (Name, bool) {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	switch key {
	case "onlyina", "a":
		return OnlyInA, true
	case "onlyinb", "b":
		return OnlyInB, true
	case "intersection":
		return Intersection, true
	case "union":
		return Union, true
	case "unique", "results":
		return Unique, true
	default:
		return 0, false
	}
}

// Orders is the sort order of each panel. Panels missing from the map use
// the default order.
type Orders struct {
	Default sorter.Order
	orders  map[Name]sorter.Order
}

// NewOrders creates a record where every panel uses order def.
func NewOrders(def sorter.Order) Orders {
	return Orders{Default: def, orders: map[Name]sorter.Order{}}
}

// Get returns the order of a panel.
func (o *Orders) Get(n Name) sorter.Order {
	if order, ok := o.orders[n]; ok {
		return order
	}
	return o.Default
}

// Toggle flips the order of one panel and returns the new order.
func (o *Orders) Toggle(n Name) sorter.Order {
	order := o.Get(n).Toggle()
	if o.orders == nil {
		o.orders = map[Name]sorter.Order{}
	}
	o.orders[n] = order
	return order
}

// Reset puts every panel back to the default order.
func (o *Orders) Reset() {
	clear(o.orders)
}
