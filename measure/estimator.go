// Package measure provides reference text measurement: frame capacity is
// estimated from frame size, font size, leading and average glyph width.
// Real glyph layout is not performed.
package measure

import (
	"fmt"
	"math"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"ftc/frames"
	"ftc/geometry"
)

const (
	DefaultFontSize      = 12.0
	DefaultLeadingFactor = 1.2
	DefaultCharWidth     = 0.5
)

// Estimator implements frames.Oracle.
type Estimator struct {
	// FontSize in points.
	FontSize float64
	// Leading is line distance in points, when zero DefaultLeadingFactor of
	// font size is used.
	Leading float64
	// CharWidth is average glyph width as a fraction of font size.
	CharWidth float64
	// Inset is text inset applied on every side of the frame.
	Inset float64
}

// NewEstimator returns estimator with default metrics for given font size.
func NewEstimator(fontSize float64) Estimator {
	return Estimator{FontSize: fontSize, CharWidth: DefaultCharWidth}
}

func (e Estimator) fontSize() float64 {
	if e.FontSize <= 0 {
		return DefaultFontSize
	}
	return e.FontSize
}

func (e Estimator) leading() float64 {
	if e.Leading <= 0 {
		return e.fontSize() * DefaultLeadingFactor
	}
	return e.Leading
}

func (e Estimator) charWidth() float64 {
	if e.CharWidth <= 0 {
		return e.fontSize() * DefaultCharWidth
	}
	return e.fontSize() * e.CharWidth
}

// CharsPerLine for frame of given bounds.
func (e Estimator) CharsPerLine(b geometry.Bounds) int {
	in := b.Inset(e.Inset)
	if in.Area() == 0 {
		return 0
	}
	return int(math.Floor(in.Width() / e.charWidth()))
}

// Lines which fit into bounds.
func (e Estimator) Lines(b geometry.Bounds) int {
	in := b.Inset(e.Inset)
	if in.Area() == 0 {
		return 0
	}
	return int(math.Floor(in.Height() / e.leading()))
}

// Capacity is number of characters frame with given bounds can show.
func (e Estimator) Capacity(b geometry.Bounds) int {
	return e.CharsPerLine(b) * e.Lines(b)
}

// Length counts characters of text the way estimator does: composed runes.
func Length(text string) int {
	return utf8.RuneCountInString(norm.NFC.String(text))
}

// Measure pours text of the whole chain into frames in order. Each frame
// shows as much as its capacity allows, the rest flows further.
func (e Estimator) Measure(chain []frames.FlowFrame, at int) (frames.Measurement, error) {
	if at < 0 || at >= len(chain) {
		return frames.Measurement{}, fmt.Errorf("frame position %d is outside of chain of %d frame(s)", at, len(chain))
	}
	remaining := 0
	for _, f := range chain {
		remaining += Length(f.Content)
	}
	for i, f := range chain[:at+1] {
		visible := min(e.Capacity(f.Bounds), remaining)
		if i == at {
			return frames.Measurement{Total: remaining, Visible: visible}, nil
		}
		remaining -= visible
	}
	// unreachable, loop always returns on at
	return frames.Measurement{}, nil
}
