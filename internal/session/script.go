package session

import (
	"strings"

	"github.com/favonia/tinyutils/internal/panel"
	"github.com/favonia/tinyutils/internal/pp"
)

// Exec runs one line of a script. Blank lines and lines starting with '#'
// are ignored. The commands are:
//
//	load (a|b|text) PATH
//	set (a|b|text) ITEMS
//	compare
//	toggle PANEL
//	check
//	remove
//	order
//	show
//
// ITEMS is the rest of the line taken verbatim, so "set a 1, 2, 3" works.
func (s *Session) Exec(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return true
	}

	command, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(command) {
	case "load", "set":
		targetName, arg, _ := strings.Cut(rest, " ")
		target, ok := ParseTarget(targetName)
		if !ok {
			s.ppfmt.Noticef(pp.EmojiUserError, "%q is not one of %s", targetName,
				pp.EnglishJoin([]string{ListA.String(), ListB.String(), Text.String()}))
			return false
		}
		arg = strings.TrimSpace(arg)
		if strings.EqualFold(command, "set") {
			s.Set(target, arg)
			return true
		}
		if arg == "" {
			s.ppfmt.Noticef(pp.EmojiUserError, "%q needs a path", line)
			return false
		}
		return s.Load(target, arg)

	case "compare":
		s.Compare()
		return true

	case "toggle":
		name, ok := panel.ParseName(rest)
		if !ok {
			s.ppfmt.Noticef(pp.EmojiUserError, "%q is not a panel", rest)
			return false
		}
		return s.Toggle(name)

	case "check":
		s.Check()
		return true

	case "remove":
		s.RemoveDuplicates()
		return true

	case "order":
		s.ToggleOrder()
		return true

	case "show":
		s.Show()
		return true

	default:
		s.ppfmt.Noticef(pp.EmojiUserError, "Unknown command %q", command)
		return false
	}
}

// Run executes a script line by line and stops at the first failing line.
func (s *Session) Run(script string) bool {
	for i, line := range strings.Split(script, "\n") {
		if !s.Exec(line) {
			s.ppfmt.Noticef(pp.EmojiUserError, "Script stopped at line %d", i+1)
			return false
		}
	}
	return true
}
