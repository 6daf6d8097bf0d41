package panel

import (
	"slices"

	"github.com/favonia/tinyutils/internal/item"
	"github.com/favonia/tinyutils/internal/setalg"
	"github.com/favonia/tinyutils/internal/sorter"
)

// Comparator is the state of the list comparator: two raw lists and four
// result panels, each with its own sort order.
type Comparator struct {
	ListA string
	ListB string

	sorter   *sorter.Sorter
	orders   Orders
	panels   map[Name][]string
	compared bool
}

// NewComparator creates an empty comparator. Panels start (and are reset to)
// the order def.
func NewComparator(s *sorter.Sorter, def sorter.Order) *Comparator {
	return &Comparator{
		ListA:    "",
		ListB:    "",
		sorter:   s,
		orders:   NewOrders(def),
		panels:   map[Name][]string{},
		compared: false,
	}
}

// Compare splits both lists, recomputes all four panels, and resets their
// sort orders. Previous results are discarded.
func (c *Comparator) Compare() {
	res := setalg.Compare(item.Split(c.ListA), item.Split(c.ListB))

	c.orders.Reset()
	c.panels = map[Name][]string{
		OnlyInA:      c.sorter.Sort(res.OnlyInA, c.orders.Get(OnlyInA)),
		OnlyInB:      c.sorter.Sort(res.OnlyInB, c.orders.Get(OnlyInB)),
		Intersection: c.sorter.Sort(res.Intersection, c.orders.Get(Intersection)),
		Union:        c.sorter.Sort(res.Union, c.orders.Get(Union)),
	}
	c.compared = true
}

// Compared checks whether [Comparator.Compare] has been called.
func (c *Comparator) Compared() bool {
	return c.compared
}

// IsEmpty checks whether both lists are blank.
func (c *Comparator) IsEmpty() bool {
	return len(item.Split(c.ListA)) == 0 && len(item.Split(c.ListB)) == 0
}

// Panel returns a copy of the current contents of a panel.
func (c *Comparator) Panel(n Name) []string {
	if items, ok := c.panels[n]; ok {
		return slices.Clone(items)
	}
	return []string{}
}

// Order returns the current sort order of a panel.
func (c *Comparator) Order(n Name) sorter.Order {
	return c.orders.Get(n)
}

// Toggle flips the sort order of one panel and re-sorts only that panel's
// current contents. It returns false if n is not a comparator panel.
func (c *Comparator) Toggle(n Name) (sorter.Order, bool) {
	if !slices.Contains(ComparatorPanels, n) {
		return c.orders.Default, false
	}

	order := c.orders.Toggle(n)
	c.panels[n] = c.sorter.Sort(c.panels[n], order)
	return order, true
}
