//go:build !windows

package config

import (
	"os"
	"strings"

	"golang.org/x/term"
)

const badFileChars = string(os.PathSeparator) + string(os.PathListSeparator)

// SafeFileName turns arbitrary name (document name usually) into a file name
// with given extension. Path separators become underscores, leading dots are
// dropped.
func SafeFileName(name, ext string) string {
	out := strings.Map(func(sym rune) rune {
		if sym == 0 || strings.ContainsRune(badFileChars, sym) {
			return '_'
		}
		return sym
	}, strings.TrimSpace(name))
	out = strings.TrimLeft(out, ".")
	if len(strings.Trim(out, "_ ")) == 0 {
		out = "document"
	}
	return out + ext
}

// EnableColorOutput checks if colorized output is possible.
func EnableColorOutput(stream *os.File) bool {
	return term.IsTerminal(int(stream.Fd()))
}
