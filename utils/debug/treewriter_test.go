package debug

import (
	"testing"
)

func TestTreeWriter_Line(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{"no depth", 0, "test", nil, "test\n"},
		{"depth 1", 1, "indented", nil, "  indented\n"},
		{"depth 2", 2, "double indent", nil, "    double indent\n"},
		{"with formatting", 1, "value: %d", []any{42}, "  value: 42\n"},
		{"multiple args", 0, "%s = %d", []any{"count", 5}, "count = 5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Line(tt.depth, tt.format, tt.args...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_TextBlock(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		clip  int
		value string
		want  string
	}{
		{"empty value", 0, 0, "", "text: \n"},
		{"plain", 0, 0, "hello world", "text: \"hello world\"\n"},
		{"nested", 2, 0, "data", "    text: \"data\"\n"},
		{"with newline", 0, 0, "line1\nline2", "text: \"line1\\nline2\"\n"},
		{"under clip", 1, 5, "short", "  text: \"short\"\n"},
		{"clipped", 1, 5, "longer text", "  text: \"longe\"... (+6)\n"},
		{"clipped runes", 0, 2, "ёжик", "text: \"ёж\"... (+2)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter().Clip(tt.clip)
			tw.TextBlock(tt.depth, "text", tt.value)
			if got := tw.String(); got != tt.want {
				t.Errorf("TextBlock() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_Sequence(t *testing.T) {
	tw := NewTreeWriter()
	tw.Line(0, "root")
	tw.Line(1, "child %d", 1)
	tw.TextBlock(2, "content", "x")

	want := "root\n  child 1\n    content: \"x\"\n"
	if got := tw.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestEncodeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty string", "", ""},
		{"simple text", "hello", `"hello"`},
		{"with quotes", `say "hi"`, `"say \"hi\""`},
		{"with tab", "col1\tcol2", `"col1\tcol2"`},
		{"with backslash", `path\to\file`, `"path\\to\\file"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := encodeText(tt.input, 0); got != tt.want {
				t.Errorf("encodeText() = %q, want %q", got, tt.want)
			}
		})
	}
}
