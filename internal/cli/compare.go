package cli

import (
	"github.com/spf13/cobra"

	"github.com/favonia/tinyutils/internal/panel"
	"github.com/favonia/tinyutils/internal/pp"
	"github.com/favonia/tinyutils/internal/session"
)

func parseToggles(ppfmt pp.PP, toggles []string) ([]panel.Name, bool) {
	names := make([]panel.Name, 0, len(toggles))
	for _, toggle := range toggles {
		name, ok := panel.ParseName(toggle)
		if !ok || name == panel.Unique {
			ppfmt.Noticef(pp.EmojiUserError, "%q is not one of %s", toggle,
				pp.EnglishJoin([]string{
					panel.OnlyInA.String(), panel.OnlyInB.String(),
					panel.Intersection.String(), panel.Union.String(),
				}))
			return nil, false
		}
		names = append(names, name)
	}
	return names, true
}

// newCompareCmd creates the 'compare' command.
func newCompareCmd(env *Env) *cobra.Command {
	var toggles []string

	cmd := &cobra.Command{
		Use:   "compare LIST_A LIST_B",
		Short: "Compare two lists",
		Long: `Compare two lists and show the items only in A, only in B,
in both (intersection), and in either (union). Duplicates are removed.

Use "-" to read one of the lists from the standard input.`,
		Example: `  tinyutils compare old.txt new.txt
  tinyutils compare --toggle union old.txt new.txt`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, ok := parseToggles(env.PP, toggles)
			if !ok {
				return errReported
			}

			s := env.newSession(nil)
			if !s.Load(session.ListA, args[0]) || !s.Load(session.ListB, args[1]) {
				return errReported
			}

			s.Compare()
			for _, name := range names {
				s.Toggle(name)
			}

			return env.render(s)
		},
	}

	cmd.Flags().StringArrayVarP(&toggles, "toggle", "t", nil,
		"flip the sort order of a panel (only-in-a, only-in-b, intersection, union); can be repeated")

	return cmd
}
