package textsrc

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		data  []byte
		force string
		want  string
		enc   string
	}{
		{name: "utf-8", data: []byte("Hello, мир"), want: "Hello, мир", enc: "utf-8"},
		{name: "utf-8 with BOM and CRLF", data: []byte("\xEF\xBB\xBFline1\r\nline2"), want: "line1\nline2", enc: "utf-8"},
		{name: "decomposed is composed", data: []byte("cafe\u0301"), want: "caf\u00e9", enc: "utf-8"},
		{name: "forced windows-1251", data: []byte{0xcf, 0xf0, 0xe8, 0xe2, 0xe5, 0xf2}, force: "windows-1251", want: "Привет", enc: "windows-1251"},
		{name: "latin-1 fallback", data: []byte{'c', 'a', 'f', 0xe9}, want: "caf\u00e9", enc: "windows-1252"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.data, tt.force)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if got.Content != tt.want {
				t.Errorf("Decode() = %q, want %q", got.Content, tt.want)
			}
			if got.Encoding != tt.enc {
				t.Errorf("Decode() encoding = %q, want %q", got.Encoding, tt.enc)
			}
		})
	}
}

func TestDecode_RejectsBinary(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatal(err)
	}
	if _, err := Decode(buf.Bytes(), ""); err == nil {
		t.Error("Decode() accepted PNG image")
	}
}

func TestDecode_UnknownCharset(t *testing.T) {
	if _, err := Decode([]byte("x"), "no-such-charset"); err == nil {
		t.Error("Decode() accepted unknown charset")
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chapter.txt")
	if err := os.WriteFile(path, []byte("Chapter one\r\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFile(path, "")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if got.Content != "Chapter one\n" {
		t.Errorf("ReadFile() = %q", got.Content)
	}
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt"), ""); err == nil {
		t.Error("ReadFile() of missing file should fail")
	}
}
