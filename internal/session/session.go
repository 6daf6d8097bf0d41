// Package session runs the list widgets: it holds their state and turns
// user actions into recomputations and printed results.
package session

import (
	"github.com/favonia/tinyutils/internal/file"
	"github.com/favonia/tinyutils/internal/panel"
	"github.com/favonia/tinyutils/internal/pp"
	"github.com/favonia/tinyutils/internal/report"
	"github.com/favonia/tinyutils/internal/sorter"
)

// Session holds one list comparator and one duplicate checker.
type Session struct {
	Comparator *panel.Comparator
	Checker    *panel.DuplicateChecker

	// ReadFile reads the raw text of a list. It defaults to [file.ReadString].
	ReadFile func(ppfmt pp.PP, path string) (string, bool)

	ppfmt pp.PP
	out   pp.PP
}

// New creates a session. Diagnostics go to ppfmt and results to out.
// A nil out suppresses the printing of results, which is useful when the
// results are exported with [Session.Snapshot] instead.
func New(ppfmt, out pp.PP, s *sorter.Sorter, def sorter.Order) *Session {
	return &Session{
		Comparator: panel.NewComparator(s, def),
		Checker:    panel.NewDuplicateChecker(s, def),
		ReadFile:   file.ReadString,
		ppfmt:      ppfmt,
		out:        out,
	}
}

// Snapshot is the exported state of a session.
type Snapshot struct {
	Comparison *report.Comparison `json:"comparison,omitempty"`
	Duplicates *report.Duplicates `json:"duplicates,omitempty"`
}

// Snapshot exports the state of the widgets that have been used.
func (s *Session) Snapshot() Snapshot {
	var snapshot Snapshot
	if s.Comparator.Compared() {
		c := report.NewComparison(s.Comparator)
		snapshot.Comparison = &c
	}
	if s.Checker.Status() != panel.NotChecked || s.Checker.ShowingUnique() {
		d := report.NewDuplicates(s.Checker)
		snapshot.Duplicates = &d
	}
	return snapshot
}

// Load reads a list from a file into the slot named by target.
func (s *Session) Load(target Target, path string) bool {
	raw, ok := s.ReadFile(s.ppfmt, path)
	if !ok {
		return false
	}
	s.Set(target, raw)
	return true
}

// Set replaces the raw text of a slot.
func (s *Session) Set(target Target, raw string) {
	switch target {
	case ListA:
		s.Comparator.ListA = raw
	case ListB:
		s.Comparator.ListB = raw
	case Text:
		s.Checker.Text = raw
	}
}

// Compare recomputes the four comparator panels and prints them.
func (s *Session) Compare() {
	if s.Comparator.IsEmpty() {
		s.ppfmt.Hintf(pp.HintEmptyInput, "Both lists are empty; every panel will be empty")
	}

	s.ppfmt.Infof(pp.EmojiCompare, "Comparing the lists . . .")
	s.Comparator.Compare()

	if s.out != nil {
		report.PrintComparison(s.out, report.NewComparison(s.Comparator))
	}
}

// Toggle flips the sort order of one comparator panel and prints it.
func (s *Session) Toggle(name panel.Name) bool {
	if name == panel.Unique {
		s.ToggleOrder()
		return true
	}

	order, ok := s.Comparator.Toggle(name)
	if !ok {
		s.ppfmt.Noticef(pp.EmojiImpossible, "Panel %q cannot be sorted", name.String())
		return false
	}
	s.ppfmt.Infof(pp.EmojiSort, "Sorting %s in %s order", name.Describe(), order.Describe())

	s.printComparatorPanel(name)
	return true
}

func (s *Session) printComparatorPanel(name panel.Name) {
	if s.out == nil {
		return
	}
	for _, view := range report.NewComparison(s.Comparator).Panels {
		if view.Name == name.String() {
			report.PrintPanel(s.out, view)
		}
	}
}

// Check runs the duplicate checker and prints what it found.
func (s *Session) Check() panel.Status {
	if s.Checker.IsEmpty() {
		s.ppfmt.Hintf(pp.HintEmptyInput, "The list is empty; there is nothing to be duplicated")
	}

	s.ppfmt.Infof(pp.EmojiCheck, "Checking for duplicates . . .")
	status := s.Checker.Check()
	if status == panel.HasDuplicates {
		s.ppfmt.Hintf(pp.HintRemoveDuplicates, "Remove the duplicates to list every item once")
	}

	if s.out != nil {
		report.PrintDuplicates(s.out, report.NewDuplicates(s.Checker))
	}
	return status
}

// RemoveDuplicates builds the deduplicated panel and prints it.
func (s *Session) RemoveDuplicates() {
	s.ppfmt.Infof(pp.EmojiRemove, "Removing duplicates . . .")
	s.Checker.RemoveDuplicates()

	if s.out != nil {
		report.PrintDuplicates(s.out, report.NewDuplicates(s.Checker))
	}
}

// ToggleOrder flips the order of the deduplicated panel and prints it.
func (s *Session) ToggleOrder() {
	order := s.Checker.ToggleOrder()
	s.ppfmt.Infof(pp.EmojiSort, "Sorting %s in %s order", panel.Unique.Describe(), order.Describe())

	if s.out != nil && s.Checker.ShowingUnique() {
		report.PrintDuplicates(s.out, report.NewDuplicates(s.Checker))
	}
}

// Show prints the current state of both widgets without recomputing anything.
func (s *Session) Show() {
	if s.out != nil {
		s.Snapshot().Print(s.out)
	}
}

// Print prints the exported state through a pretty printer.
func (sn Snapshot) Print(out pp.PP) {
	if sn.Comparison != nil {
		report.PrintComparison(out, *sn.Comparison)
	}
	if sn.Duplicates != nil {
		report.PrintDuplicates(out, *sn.Duplicates)
	}
}
