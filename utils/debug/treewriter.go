// Package debug has helpers producing human readable dumps of internal
// structures.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

// TreeWriter renders indented tree, two spaces per level.
type TreeWriter struct {
	w    *strings.Builder
	clip int
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{w: &strings.Builder{}}
}

// Clip limits text blocks to n runes, zero means no limit.
func (tw *TreeWriter) Clip(n int) *TreeWriter {
	tw.clip = max(n, 0)
	return tw
}

func (tw *TreeWriter) String() string {
	return tw.w.String()
}

func (tw *TreeWriter) indent(depth int) {
	for range depth {
		tw.w.WriteString("  ")
	}
}

func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// TextBlock writes quoted text under label. Clipped text is followed by
// number of runes left out.
func (tw *TreeWriter) TextBlock(depth int, label, value string) {
	tw.indent(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value, tw.clip))
	tw.w.WriteByte('\n')
}

func encodeText(raw string, clip int) string {
	if raw == "" {
		return raw
	}
	runes := []rune(raw)
	if clip == 0 || len(runes) <= clip {
		return strconv.Quote(raw)
	}
	return fmt.Sprintf("%s... (+%d)", strconv.Quote(string(runes[:clip])), len(runes)-clip)
}
