package frames

import (
	"errors"
	"strings"
	"testing"
)

func TestDetectOverflow_Fits(t *testing.T) {
	d := newTestDocument(t, 1, WithOracle(OracleFunc(func(chain []FlowFrame, at int) (Measurement, error) {
		return Measurement{Total: 42, Visible: 42}, nil
	})))
	ref := mustCreate(t, d, 0, box(0, 0, 100, 100))

	o, err := d.DetectOverflow(ref.Loc)
	if err != nil {
		t.Fatalf("DetectOverflow() error = %v", err)
	}
	if o.HasOverflow || o.Count != 0 {
		t.Errorf("DetectOverflow() = %+v, want no overflow", o)
	}
}

func TestDetectOverflow_Chain(t *testing.T) {
	d := newTestDocument(t, 2)
	// each frame holds 50 characters
	a := mustCreate(t, d, 0, box(0, 0, 50, 100))
	b := mustCreate(t, d, 1, box(0, 0, 50, 100))
	if err := d.SetContent(a.Loc, strings.Repeat("x", 120)); err != nil {
		t.Fatal(err)
	}

	o, err := d.DetectOverflow(a.Loc)
	if err != nil {
		t.Fatalf("DetectOverflow() error = %v", err)
	}
	if !o.HasOverflow || o.Count != 70 || o.Threaded || !o.Lost() {
		t.Errorf("unthreaded DetectOverflow() = %+v, want 70 lost characters", o)
	}

	mustLink(t, d, a.Loc, b.Loc)

	// overflow is never cached - linking changes the answer
	o, _ = d.DetectOverflow(a.Loc)
	if o.Count != 70 || !o.Threaded || o.Lost() {
		t.Errorf("threaded head DetectOverflow() = %+v, want 70 threaded characters", o)
	}
	o, _ = d.DetectOverflow(b.Loc)
	if o.Total != 70 || o.Visible != 50 || o.Count != 20 || !o.Lost() {
		t.Errorf("tail DetectOverflow() = %+v, want 20 lost characters", o)
	}
	if o.Suggestion == "" {
		t.Error("expected suggestion for lost text")
	}

	if err := d.SetContent(a.Loc, strings.Repeat("x", 100)); err != nil {
		t.Fatal(err)
	}
	o, _ = d.DetectOverflow(b.Loc)
	if o.HasOverflow {
		t.Errorf("DetectOverflow() after shortening = %+v, want no overflow", o)
	}
}

func TestDetectOverflow_Errors(t *testing.T) {
	d, err := NewUniform(1, letter)
	if err != nil {
		t.Fatal(err)
	}
	ref := mustCreate(t, d, 0, box(0, 0, 50, 100))
	if _, err := d.DetectOverflow(ref.Loc); !errors.Is(err, ErrNoOracle) {
		t.Errorf("DetectOverflow() without oracle error = %v", err)
	}
	// FrameInfo still works without oracle
	info, err := d.FrameInfo(ref.Loc)
	if err != nil || info.Overflow != nil {
		t.Errorf("FrameInfo() = %+v, %v", info, err)
	}

	boom := errors.New("boom")
	d = newTestDocument(t, 1, WithOracle(OracleFunc(func([]FlowFrame, int) (Measurement, error) {
		return Measurement{}, boom
	})))
	ref = mustCreate(t, d, 0, box(0, 0, 50, 100))
	if _, err := d.DetectOverflow(ref.Loc); !errors.Is(err, boom) {
		t.Errorf("DetectOverflow() error = %v, want oracle error", err)
	}

	d = newTestDocument(t, 1, WithOracle(OracleFunc(func([]FlowFrame, int) (Measurement, error) {
		return Measurement{Total: -1}, nil
	})))
	ref = mustCreate(t, d, 0, box(0, 0, 50, 100))
	if _, err := d.DetectOverflow(ref.Loc); err == nil {
		t.Error("DetectOverflow() accepted negative measurement")
	}
}

func TestDetectOverflow_OracleSeesWholeChain(t *testing.T) {
	var (
		seen []FlowFrame
		pos  int
	)
	d := newTestDocument(t, 3, WithOracle(OracleFunc(func(chain []FlowFrame, at int) (Measurement, error) {
		seen, pos = chain, at
		return Measurement{}, nil
	})))
	th, err := d.CreateThreadedChain(0, 2, box(0, 0, 50, 100))
	if err != nil {
		t.Fatal(err)
	}
	for i, r := range th.Created {
		_ = d.SetContent(r.Loc, strings.Repeat("y", i+1))
	}
	if _, err := d.DetectOverflow(th.Created[1].Loc); err != nil {
		t.Fatal(err)
	}
	if len(seen) != 3 || pos != 1 {
		t.Fatalf("oracle saw %d frames at %d, want 3 at 1", len(seen), pos)
	}
	for i, f := range seen {
		if len(f.Content) != i+1 {
			t.Errorf("oracle frame %d content %q", i, f.Content)
		}
	}
}
