//go:build windows

package config

import (
	"os"
	"strings"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
	"golang.org/x/term"
)

const badFileChars = `<>":/\|?*` + string(os.PathSeparator) + string(os.PathListSeparator)

// SafeFileName turns arbitrary name (document name usually) into a file name
// with given extension. Characters Windows does not allow become underscores,
// leading dots and trailing dots or spaces are dropped.
func SafeFileName(name, ext string) string {
	out := strings.Map(func(sym rune) rune {
		if sym < 32 || strings.ContainsRune(badFileChars, sym) {
			return '_'
		}
		return sym
	}, strings.TrimSpace(name))
	out = strings.TrimRight(strings.TrimLeft(out, "."), ". ")
	if len(strings.Trim(out, "_ ")) == 0 {
		out = "document"
	}
	return out + ext
}

// EnableColorOutput checks if colorized output is possible and enables VT100
// sequence processing in Windows 10+ console.
func EnableColorOutput(stream *os.File) bool {
	if !term.IsTerminal(int(stream.Fd())) || windowsMajorVersion() < 10 {
		return false
	}

	const enableVirtualTerminalProcessing uint32 = 0x4

	var mode uint32
	h := windows.Handle(stream.Fd())
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return false
	}
	return windows.SetConsoleMode(h, mode|enableVirtualTerminalProcessing) == nil
}

func windowsMajorVersion() uint64 {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, `SOFTWARE\Microsoft\Windows NT\CurrentVersion`, registry.QUERY_VALUE)
	if err != nil {
		return 0
	}
	defer k.Close()

	v, _, err := k.GetIntegerValue("CurrentMajorVersionNumber")
	if err != nil {
		return 0
	}
	return v
}
