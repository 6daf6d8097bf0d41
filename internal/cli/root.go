// Package cli defines the command line interface.
package cli

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/favonia/tinyutils/internal/config"
	"github.com/favonia/tinyutils/internal/pp"
	"github.com/favonia/tinyutils/internal/report"
	"github.com/favonia/tinyutils/internal/session"
)

// errReported is returned by commands after the failure has been printed.
var errReported = errors.New("failure already reported")

// Env is what every command needs to run.
type Env struct {
	// PP receives diagnostics.
	PP pp.PP
	// Out receives results in the text format.
	Out pp.PP
	// Stdout receives results in structured formats.
	Stdout io.Writer
	// Stderr receives the usage messages of cobra.
	Stderr io.Writer

	Config  *config.Config
	Version string
}

func (env *Env) newSession(out pp.PP) *session.Session {
	return session.New(env.PP, out, env.Config.NewSorter(), env.Config.DefaultOrder)
}

func (env *Env) render(s *session.Session) error {
	snapshot := s.Snapshot()
	if env.Config.Format == report.Text {
		snapshot.Print(env.Out)
		return nil
	}

	if err := report.Encode(env.Stdout, env.Config.Format, snapshot); err != nil {
		env.PP.Noticef(pp.EmojiError, "Failed to write the results: %v", err)
		return errReported
	}
	return nil
}

// NewRootCmd creates the root command and all the subcommands.
func NewRootCmd(env *Env) *cobra.Command {
	root := &cobra.Command{
		Use:   "tinyutils",
		Short: "Compare lists and find duplicates",
		Long: `tinyutils compares lists of items and finds duplicated items.

Items are separated by newlines or commas; surrounding spaces are ignored.
Results are sorted numerically when every item is a number, and as text otherwise.

Settings are read from the environment:
  EMOJI          show emojis (default: true)
  QUIET          hide everything except results (default: false)
  LOCALE         language tag for sorting text (default: und)
  SORT_ORDER     initial order of the panels, asc or desc (default: asc)
  OUTPUT_FORMAT  text, json, or yaml (default: text)`,
		Version:       env.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(env.Stderr)
	root.SetErr(env.Stderr)

	root.AddCommand(newCompareCmd(env))
	root.AddCommand(newDupesCmd(env))
	root.AddCommand(newSessionCmd(env))

	return root
}

// Execute runs the command line and returns the exit code.
func Execute(env *Env, args []string) int {
	root := NewRootCmd(env)
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			env.PP.Noticef(pp.EmojiUserError, "%v", err)
		}
		return 1
	}
	return 0
}
