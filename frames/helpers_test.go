package frames

import (
	"testing"
	"unicode/utf8"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"ftc/geometry"
)

var letter = geometry.PageSize{Width: 612, Height: 792}

func newTestDocument(t *testing.T, pages int, options ...Option) *Document {
	t.Helper()
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller()))
	opts := append([]Option{WithLogger(logger), WithName("Test Book"), WithOracle(heightOracle{})}, options...)
	d, err := NewUniform(pages, letter, opts...)
	if err != nil {
		t.Fatalf("NewUniform() error = %v", err)
	}
	return d
}

func mustCreate(t *testing.T, d *Document, page int, b geometry.Bounds) Ref {
	t.Helper()
	ref, err := d.CreateFrame(page, b)
	if err != nil {
		t.Fatalf("CreateFrame(%d, %v) error = %v", page, b, err)
	}
	return ref
}

func mustLink(t *testing.T, d *Document, src, dst Loc) {
	t.Helper()
	if err := d.Link(src, dst); err != nil {
		t.Fatalf("Link(%v, %v) error = %v", src, dst, err)
	}
}

func box(top, left, bottom, right float64) geometry.Bounds {
	return geometry.Bounds{Top: top, Left: left, Bottom: bottom, Right: right}
}

// heightOracle lets every frame hold one character per point of height.
// Text of the whole chain fills frames in order.
type heightOracle struct{}

func (heightOracle) Measure(chain []FlowFrame, at int) (Measurement, error) {
	remaining := 0
	for _, f := range chain {
		remaining += utf8.RuneCountInString(f.Content)
	}
	for i, f := range chain {
		capacity := int(f.Bounds.Height())
		visible := min(capacity, remaining)
		if i == at {
			return Measurement{Total: remaining, Visible: visible}, nil
		}
		remaining -= visible
	}
	return Measurement{}, nil
}
