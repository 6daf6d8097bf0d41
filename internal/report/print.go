package report

import (
	"fmt"

	"github.com/favonia/tinyutils/internal/panel"
	"github.com/favonia/tinyutils/internal/pp"
	"github.com/favonia/tinyutils/internal/sorter"
)

func hintLexicalFallback(ppfmt pp.PP, items []string) {
	if mode, numbers := sorter.Classify(items); mode == sorter.Lexical && numbers > 0 {
		ppfmt.Hintf(pp.HintLexicalFallback,
			"A panel mixing numbers with other items is sorted as text, so %q and similar items are compared letter by letter",
			firstNumber(items))
	}
}

func firstNumber(items []string) string {
	for _, it := range items {
		if _, ok := sorter.ParseNumber(it); ok {
			return it
		}
	}
	return ""
}

// PrintPanel prints one panel: a header with the item count and the sort
// order, followed by the items.
func PrintPanel(ppfmt pp.PP, view PanelView) {
	ppfmt.Listf(pp.EmojiPanel, view.Items,
		"%s (%s, %s):", view.Title, pp.Plural(view.Count, "item"), view.Order.Describe())
	hintLexicalFallback(ppfmt, view.Items)
}

// PrintComparison prints all four panels of a comparison.
func PrintComparison(ppfmt pp.PP, c Comparison) {
	for _, view := range c.Panels {
		PrintPanel(ppfmt, view)
	}
}

// PrintDuplicates prints the state of the duplicate checker. Nothing is
// printed before the first check.
func PrintDuplicates(ppfmt pp.PP, d Duplicates) {
	if d.Unique != nil {
		PrintPanel(ppfmt, *d.Unique)
		return
	}

	switch d.Status {
	case panel.HasDuplicates:
		lines := make([]string, 0, len(d.Duplicates))
		for _, e := range d.Duplicates {
			lines = append(lines, fmt.Sprintf("%s: %s", e.Item, pp.Plural(e.Count, "time")))
		}
		ppfmt.Listf(pp.EmojiDuplicate, lines, "Duplicated Items (%s):", pp.Plural(len(d.Duplicates), "item"))
	case panel.NoDuplicates:
		ppfmt.Noticef(pp.EmojiGood, "No duplicates found!")
	case panel.NotChecked:
	}
}
