package pp

import (
	"fmt"
	"io"
	"strings"
)

type formatter struct {
	writer    io.Writer
	emoji     bool
	indent    int
	hintShown map[Hint]bool
	verbosity Verbosity
}

// New creates a pretty printer writing to writer.
func New(writer io.Writer) PP {
	return formatter{
		writer:    writer,
		emoji:     true,
		indent:    0,
		hintShown: map[Hint]bool{},
		verbosity: DefaultVerbosity,
	}
}

func (f formatter) SetEmoji(emoji bool) PP {
	f.emoji = emoji
	return f
}

func (f formatter) SetVerbosity(v Verbosity) PP {
	f.verbosity = v
	return f
}

func (f formatter) IsShowing(v Verbosity) bool {
	return v >= f.verbosity
}

func (f formatter) Indent() PP {
	f.indent++
	return f
}

// prefix is the indentation and the emoji of a line at the given depth.
func (f formatter) prefix(depth int, emoji Emoji) string {
	p := strings.Repeat(indentPrefix, depth)
	if f.emoji {
		p += string(emoji) + " "
	}
	return p
}

func (f formatter) writeLine(depth int, emoji Emoji, msg string) {
	fmt.Fprintln(f.writer, f.prefix(depth, emoji)+strings.TrimSuffix(msg, "\n"))
}

func (f formatter) printf(v Verbosity, emoji Emoji, format string, args ...any) {
	if !f.IsShowing(v) {
		return
	}
	f.writeLine(f.indent, emoji, fmt.Sprintf(format, args...))
}

func (f formatter) Infof(emoji Emoji, format string, args ...any) {
	f.printf(Info, emoji, format, args...)
}

func (f formatter) Noticef(emoji Emoji, format string, args ...any) {
	f.printf(Notice, emoji, format, args...)
}

// Listf prints items verbatim; an item is never read as a format string.
func (f formatter) Listf(emoji Emoji, items []string, format string, args ...any) {
	if !f.IsShowing(Notice) {
		return
	}
	f.writeLine(f.indent, emoji, fmt.Sprintf(format, args...))
	for _, it := range items {
		f.writeLine(f.indent+1, EmojiItem, it)
	}
}

func (f formatter) SuppressHint(hint Hint) {
	f.hintShown[hint] = true
}

// Hintf prints with [EmojiHint] at the info level, once per hint.
func (f formatter) Hintf(hint Hint, format string, args ...any) {
	if !f.hintShown[hint] {
		f.Infof(EmojiHint, format, args...)
		f.hintShown[hint] = true
	}
}
