// Package pp prints diagnostics and result panels for humans.
package pp

//go:generate mockgen -typed -destination=../mocks/mock_pp.go -package=mocks . PP

// PP is a pretty printer. Diagnostics go through [PP.Infof] and
// [PP.Noticef]; result panels go through [PP.Listf].
type PP interface {
	// SetEmoji sets whether lines start with an emoji.
	SetEmoji(emoji bool) PP

	// SetVerbosity hides the messages below the level v.
	SetVerbosity(v Verbosity) PP

	// IsShowing checks whether messages of the level v are printed.
	IsShowing(v Verbosity) bool

	// Indent returns a printer one level deeper.
	Indent() PP

	// Infof prints a progress message.
	Infof(emoji Emoji, format string, args ...any)

	// Noticef prints a message that survives QUIET.
	Noticef(emoji Emoji, format string, args ...any)

	// Listf prints a header at the notice level followed by the items,
	// one per line and one level deeper.
	Listf(emoji Emoji, items []string, format string, args ...any)

	// SuppressHint prevents later calls to [PP.Hintf] with the same hint.
	SuppressHint(hint Hint)

	// Hintf prints a hint once.
	Hintf(hint Hint, format string, args ...any)
}
