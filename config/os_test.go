package config

import "testing"

func TestSafeFileName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Moby Dick", "Moby Dick.sqlite"},
		{"trimmed", "  Moby Dick  ", "Moby Dick.sqlite"},
		{"separator", "part/one", "part_one.sqlite"},
		{"hidden", "..book", "book.sqlite"},
		{"empty", "", "document.sqlite"},
		{"only separators", "//", "document.sqlite"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeFileName(tt.in, ".sqlite"); got != tt.want {
				t.Errorf("SafeFileName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
