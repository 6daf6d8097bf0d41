// Package config reads and parses configurations.
package config

import (
	"golang.org/x/text/language"

	"github.com/favonia/tinyutils/internal/pp"
	"github.com/favonia/tinyutils/internal/report"
	"github.com/favonia/tinyutils/internal/sorter"
)

// Config holds the settings shared by all the list tools.
type Config struct {
	Locale       language.Tag
	DefaultOrder sorter.Order
	Format       report.Format
}

// Default gives the default configuration.
func Default() *Config {
	return &Config{
		Locale:       language.Und,
		DefaultOrder: sorter.Ascending,
		Format:       report.Text,
	}
}

// ReadEnv calls the relevant readers to read all relevant environment variables except
// the output-related ones (QUIET and EMOJI).
func (c *Config) ReadEnv(ppfmt pp.PP) bool {
	if ppfmt.IsShowing(pp.Info) {
		ppfmt.Infof(pp.EmojiEnvVars, "Reading settings . . .")
		ppfmt = ppfmt.Indent()
	}

	if !ReadLocale(ppfmt, "LOCALE", &c.Locale) ||
		!ReadOrder(ppfmt, "SORT_ORDER", &c.DefaultOrder) ||
		!ReadFormat(ppfmt, "OUTPUT_FORMAT", &c.Format) {
		return false
	}

	return true
}

// NewSorter creates a sorter following [Config.Locale].
func (c *Config) NewSorter() *sorter.Sorter {
	return sorter.New(c.Locale)
}
