// Package main is the entry point of the list tools.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/favonia/tinyutils/internal/cli"
	"github.com/favonia/tinyutils/internal/config"
	"github.com/favonia/tinyutils/internal/pp"
)

// Version is the version of the tools that will be shown in the output.
// This is to be overwritten by the linker argument -X main.Version=version.
var Version string //nolint:gochecknoglobals

func formatName() string {
	if Version == "" {
		return "TinyUtils"
	}
	return fmt.Sprintf("TinyUtils (%s)", Version)
}

// initPrinters reads EMOJI and QUIET and applies them to both the printer of
// diagnostics and the printer of results.
func initPrinters(stdout, stderr io.Writer) (pp.PP, pp.PP, bool) {
	ppfmt := pp.New(stderr)
	if !config.ReadEmoji("EMOJI", &ppfmt) || !config.ReadQuiet("QUIET", &ppfmt) {
		return ppfmt, nil, false
	}

	out := pp.New(stdout)
	if !config.ReadEmoji("EMOJI", &out) || !config.ReadQuiet("QUIET", &out) {
		return ppfmt, nil, false
	}

	return ppfmt, out, true
}

func initConfig(ppfmt pp.PP) (*config.Config, bool) {
	c := config.Default()

	// Read the config
	if !c.ReadEnv(ppfmt) {
		return c, false
	}

	// Print the config
	c.Print(ppfmt)

	return c, true
}

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdout, os.Stderr))
}

func realMain(args []string, stdout, stderr io.Writer) int {
	ppfmt, out, ok := initPrinters(stdout, stderr)
	if !ok {
		ppfmt.Noticef(pp.EmojiUserError, "Bye!")
		return 1
	}
	if !ppfmt.IsShowing(pp.Info) {
		ppfmt.Noticef(pp.EmojiMute, "Quiet mode enabled")
	}

	// Show the name and the version
	ppfmt.Infof(pp.EmojiStar, "%s", formatName())

	c, ok := initConfig(ppfmt)
	if !ok {
		ppfmt.Noticef(pp.EmojiBye, "Bye!")
		return 1
	}

	return cli.Execute(&cli.Env{
		PP:      ppfmt,
		Out:     out,
		Stdout:  stdout,
		Stderr:  stderr,
		Config:  c,
		Version: Version,
	}, args)
}
