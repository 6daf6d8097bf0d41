package config

import (
	"fmt"

	"github.com/favonia/tinyutils/internal/pp"
)

const itemTitleWidth = 24

// Print prints the Config on the screen.
func (c *Config) Print(ppfmt pp.PP) {
	if !ppfmt.IsShowing(pp.Info) {
		return
	}

	ppfmt.Infof(pp.EmojiEnvVars, "Current settings:")
	ppfmt = ppfmt.Indent()
	inner := ppfmt.Indent()

	section := func(title string) { ppfmt.Infof(pp.EmojiConfig, title) }
	item := func(title string, format string, values ...any) {
		inner.Infof(pp.EmojiBullet, "%-*s %s", itemTitleWidth, title, fmt.Sprintf(format, values...))
	}

	section("Sorting:")
	item("Text collation:", "%s", c.Locale.String())
	item("Initial order:", "%s", c.DefaultOrder.Describe())

	section("Output:")
	item("Format:", "%s", c.Format.String())
}
