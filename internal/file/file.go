// Package file reads raw lists from files.
package file

import (
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/favonia/tinyutils/internal/pp"
)

// FS is the file system used to read lists.
var FS = afero.NewOsFs() //nolint:gochecknoglobals

// Stdin is read instead of a file when the path is [StdinPath].
var Stdin io.Reader = os.Stdin //nolint:gochecknoglobals

// StdinPath is the path that stands for the standard input.
const StdinPath = "-"

// ReadString reads the whole content of a file as raw text. The content is
// not trimmed.
func ReadString(ppfmt pp.PP, path string) (string, bool) {
	var (
		body []byte
		err  error
	)
	if path == StdinPath {
		body, err = io.ReadAll(Stdin)
	} else {
		body, err = afero.ReadFile(FS, path)
	}
	if err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "Failed to read %q: %v", path, err)
		return "", false
	}

	ppfmt.Infof(pp.EmojiFile, "Read %s from %q", pp.Plural(len(body), "byte"), path)
	return string(body), true
}
