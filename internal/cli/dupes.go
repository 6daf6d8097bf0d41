package cli

import (
	"github.com/spf13/cobra"

	"github.com/favonia/tinyutils/internal/pp"
	"github.com/favonia/tinyutils/internal/session"
	"github.com/favonia/tinyutils/internal/sorter"
)

// newDupesCmd creates the 'dupes' command.
func newDupesCmd(env *Env) *cobra.Command {
	var (
		remove bool
		order  string
	)

	cmd := &cobra.Command{
		Use:   "dupes FILE",
		Short: "Find duplicated items in a list",
		Long: `Count the items of a list and show the ones appearing more than once.

With --remove, show every item once instead, sorted in the order given by --order.
Use "-" to read the list from the standard input.`,
		Example: `  tinyutils dupes emails.txt
  tinyutils dupes --remove --order desc ids.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def := env.Config.DefaultOrder
			if cmd.Flags().Changed("order") {
				o, ok := sorter.ParseOrder(order)
				if !ok {
					env.PP.Noticef(pp.EmojiUserError, "--order (%q) is neither %q nor %q", order, "asc", "desc")
					return errReported
				}
				def = o
			}

			if remove {
				// The duplicates are removed right away.
				env.PP.SuppressHint(pp.HintRemoveDuplicates)
			}
			s := session.New(env.PP, nil, env.Config.NewSorter(), def)

			if !s.Load(session.Text, args[0]) {
				return errReported
			}

			s.Check()
			if remove {
				s.RemoveDuplicates()
			}

			return env.render(s)
		},
	}

	cmd.Flags().BoolVarP(&remove, "remove", "r", false, "list every item once instead of the duplicates")
	cmd.Flags().StringVarP(&order, "order", "o", "", "order of the deduplicated list, asc or desc (default from SORT_ORDER)")

	return cmd
}
