package config

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/favonia/tinyutils/internal/pp"
	"github.com/favonia/tinyutils/internal/report"
	"github.com/favonia/tinyutils/internal/sorter"
)

// Getenv reads an environment variable and trim the space.
func Getenv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

// ReadEmoji reads an environment variable as emoji/no-emoji.
func ReadEmoji(key string, ppfmt *pp.PP) bool {
	valEmoji := Getenv(key)
	if valEmoji == "" {
		return true
	}

	emoji, err := strconv.ParseBool(valEmoji)
	if err != nil {
		(*ppfmt).Noticef(pp.EmojiUserError, "%s (%q) is not a boolean: %v", key, valEmoji, err)
		return false
	}

	*ppfmt = (*ppfmt).SetEmoji(emoji)

	return true
}

// ReadQuiet reads an environment variable as quiet/verbose.
func ReadQuiet(key string, ppfmt *pp.PP) bool {
	valQuiet := Getenv(key)
	if valQuiet == "" {
		return true
	}

	quiet, err := strconv.ParseBool(valQuiet)
	if err != nil {
		(*ppfmt).Noticef(pp.EmojiUserError, "%s (%q) is not a boolean: %v", key, valQuiet, err)
		return false
	}

	if quiet {
		*ppfmt = (*ppfmt).SetVerbosity(pp.Quiet)
	} else {
		*ppfmt = (*ppfmt).SetVerbosity(pp.Verbose)
	}

	return true
}

// ReadLocale reads an environment variable as a BCP 47 language tag.
func ReadLocale(ppfmt pp.PP, key string, field *language.Tag) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%s", key, field.String())
		return true
	}

	tag, err := language.Parse(val)
	if err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "%s (%q) is not a language tag: %v", key, val, err)
		return false
	}

	*field = tag
	return true
}

// ReadOrder reads an environment variable as a sort order.
func ReadOrder(ppfmt pp.PP, key string, field *sorter.Order) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%s", key, field.String())
		return true
	}

	order, ok := sorter.ParseOrder(val)
	if !ok {
		ppfmt.Noticef(pp.EmojiUserError, "%s (%q) is neither %q nor %q", key, val, "asc", "desc")
		return false
	}

	*field = order
	return true
}

// ReadFormat reads an environment variable as an output format.
func ReadFormat(ppfmt pp.PP, key string, field *report.Format) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%s", key, field.String())
		return true
	}

	format, ok := report.ParseFormat(val)
	if !ok {
		ppfmt.Noticef(pp.EmojiUserError, "%s (%q) is not one of %s", key, val,
			pp.EnglishJoin([]string{"text", "json", "yaml"}))
		return false
	}

	*field = format
	return true
}
