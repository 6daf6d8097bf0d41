package cli

import (
	"github.com/spf13/cobra"

	"github.com/favonia/tinyutils/internal/file"
	"github.com/favonia/tinyutils/internal/pp"
	"github.com/favonia/tinyutils/internal/report"
)

// newSessionCmd creates the 'session' command.
func newSessionCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "session SCRIPT",
		Short: "Run a script of widget actions",
		Long: `Run a script that drives the list comparator and the duplicate checker
step by step, one command per line:

  load (a|b|text) PATH   read a list from a file
  set (a|b|text) ITEMS   set a list to the rest of the line
  compare                compare lists a and b
  toggle PANEL           flip the order of a panel
  check                  check the text for duplicates
  remove                 list every item of the text once
  order                  flip the order of the deduplicated list
  show                   show the current results again

Blank lines and lines starting with # are ignored. The script stops at the first failing line.
Use "-" to read the script from the standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, ok := file.ReadString(env.PP, args[0])
			if !ok {
				return errReported
			}

			if env.Config.Format != report.Text {
				s := env.newSession(nil)
				if !s.Run(script) {
					return errReported
				}
				return env.render(s)
			}

			out := pp.NewQueued(env.Out)
			defer out.Flush()

			if !env.newSession(out).Run(script) {
				return errReported
			}
			return nil
		},
	}
}
