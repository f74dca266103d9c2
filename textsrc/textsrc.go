// Package textsrc loads plain text from files for placing into frames.
package textsrc

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/h2non/filetype"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/unicode/norm"
)

// Text is decoded content together with detected encoding name.
type Text struct {
	Content  string
	Encoding string
	Certain  bool
}

// ReadFile reads text file, see Decode.
func ReadFile(path, forceEncoding string) (Text, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Text{}, fmt.Errorf("unable to read text file: %w", err)
	}
	t, err := Decode(data, forceEncoding)
	if err != nil {
		return Text{}, fmt.Errorf("unable to decode %q: %w", path, err)
	}
	return t, nil
}

// Decode converts raw bytes to NFC normalized UTF-8 text with "\n" line
// endings. Encoding is detected from BOM or content unless forceEncoding is
// specified (IANA name). Content recognized as binary (images, archives,
// office documents...) is rejected.
func Decode(data []byte, forceEncoding string) (Text, error) {
	if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown {
		return Text{}, fmt.Errorf("not a plain text, detected %s (%s)", kind.Extension, kind.MIME.Value)
	}

	var t Text
	if len(forceEncoding) > 0 {
		enc, name := charset.Lookup(forceEncoding)
		if enc == nil {
			return Text{}, fmt.Errorf("unknown character set %q", forceEncoding)
		}
		decoded, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			return Text{}, fmt.Errorf("unable to decode as %s: %w", name, err)
		}
		t = Text{Content: string(decoded), Encoding: name, Certain: true}
	} else if utf8.Valid(data) {
		t = Text{Content: string(data), Encoding: "utf-8", Certain: true}
	} else {
		enc, name, certain := charset.DetermineEncoding(data, "text/plain")
		decoded, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			return Text{}, fmt.Errorf("unable to decode as %s: %w", name, err)
		}
		t = Text{Content: string(decoded), Encoding: name, Certain: certain}
	}

	t.Content = strings.TrimPrefix(t.Content, "\ufeff")
	t.Content = strings.ReplaceAll(t.Content, "\r\n", "\n")
	t.Content = norm.NFC.String(t.Content)
	return t, nil
}
