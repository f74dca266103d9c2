package measure

import (
	"strings"
	"testing"

	"ftc/frames"
	"ftc/geometry"
)

func TestCapacity(t *testing.T) {
	e := NewEstimator(10)
	// 6pt wide glyphs would be 5pt, 12pt lines
	b := geometry.Bounds{Top: 0, Left: 0, Bottom: 120, Right: 100}
	if got := e.CharsPerLine(b); got != 20 {
		t.Errorf("CharsPerLine() = %d, want 20", got)
	}
	if got := e.Lines(b); got != 10 {
		t.Errorf("Lines() = %d, want 10", got)
	}
	if got := e.Capacity(b); got != 200 {
		t.Errorf("Capacity() = %d, want 200", got)
	}

	e.Inset = 10
	if got := e.Capacity(b); got != 16*8 {
		t.Errorf("Capacity() with inset = %d, want %d", got, 16*8)
	}
	e.Inset = 60
	if got := e.Capacity(b); got != 0 {
		t.Errorf("Capacity() of collapsed frame = %d, want 0", got)
	}
}

func TestLength(t *testing.T) {
	// decomposed e + combining acute is a single composed character
	if got := Length("cafe\u0301"); got != 4 {
		t.Errorf("Length() = %d, want 4", got)
	}
}

func TestMeasure(t *testing.T) {
	e := NewEstimator(10)
	b := geometry.Bounds{Top: 0, Left: 0, Bottom: 120, Right: 100} // 200 characters
	chain := []frames.FlowFrame{
		{Bounds: b, Content: strings.Repeat("a", 300)},
		{Bounds: b, Content: strings.Repeat("b", 150)},
		{Bounds: b},
	}

	tests := []struct {
		at   int
		want frames.Measurement
	}{
		{0, frames.Measurement{Total: 450, Visible: 200}},
		{1, frames.Measurement{Total: 250, Visible: 200}},
		{2, frames.Measurement{Total: 50, Visible: 50}},
	}
	for _, tt := range tests {
		got, err := e.Measure(chain, tt.at)
		if err != nil {
			t.Fatalf("Measure(%d) error = %v", tt.at, err)
		}
		if got != tt.want {
			t.Errorf("Measure(%d) = %+v, want %+v", tt.at, got, tt.want)
		}
	}

	if _, err := e.Measure(chain, 3); err == nil {
		t.Error("Measure() outside of chain should fail")
	}
}

func TestEstimatorAsOracle(t *testing.T) {
	d, err := frames.NewUniform(1, geometry.PageSize{Width: 432, Height: 648}, frames.WithOracle(NewEstimator(10)))
	if err != nil {
		t.Fatal(err)
	}
	ref, err := d.CreateFrame(0, geometry.Bounds{Top: 0, Left: 0, Bottom: 120, Right: 100})
	if err != nil {
		t.Fatal(err)
	}
	if err := d.SetContent(ref.Loc, strings.Repeat("z", 210)); err != nil {
		t.Fatal(err)
	}
	o, err := d.DetectOverflow(ref.Loc)
	if err != nil {
		t.Fatal(err)
	}
	if !o.HasOverflow || o.Count != 10 {
		t.Errorf("DetectOverflow() = %+v, want 10 characters overflow", o)
	}
}
