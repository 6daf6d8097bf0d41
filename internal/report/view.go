package report

import (
	"github.com/favonia/tinyutils/internal/dupcheck"
	"github.com/favonia/tinyutils/internal/panel"
	"github.com/favonia/tinyutils/internal/sorter"
)

// PanelView is a snapshot of one result panel.
type PanelView struct {
	Name  string       `json:"name"`
	Title string       `json:"title"`
	Order sorter.Order `json:"order"`
	Mode  string       `json:"mode"`
	Count int          `json:"count"`
	Items []string     `json:"items"`
}

func newPanelView(name panel.Name, order sorter.Order, items []string) PanelView {
	mode, _ := sorter.Classify(items)
	return PanelView{
		Name:  name.String(),
		Title: name.Describe(),
		Order: order,
		Mode:  mode.String(),
		Count: len(items),
		Items: items,
	}
}

// Comparison is a snapshot of the list comparator.
type Comparison struct {
	Panels []PanelView `json:"panels"`
}

// NewComparison takes a snapshot of the panels of c in display order.
func NewComparison(c *panel.Comparator) Comparison {
	views := make([]PanelView, 0, len(panel.ComparatorPanels))
	for _, name := range panel.ComparatorPanels {
		views = append(views, newPanelView(name, c.Order(name), c.Panel(name)))
	}
	return Comparison{Panels: views}
}

// Duplicates is a snapshot of the duplicate checker.
type Duplicates struct {
	Status     panel.Status     `json:"status"`
	Duplicates []dupcheck.Entry `json:"duplicates"`
	Unique     *PanelView       `json:"unique,omitempty"`
}

// NewDuplicates takes a snapshot of d. The deduplicated panel is included
// only when it is shown.
func NewDuplicates(d *panel.DuplicateChecker) Duplicates {
	snapshot := Duplicates{
		Status:     d.Status(),
		Duplicates: d.Duplicates(),
		Unique:     nil,
	}
	if d.ShowingUnique() {
		view := newPanelView(panel.Unique, d.Order(), d.Unique())
		snapshot.Unique = &view
	}
	return snapshot
}
