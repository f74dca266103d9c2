package frames

import (
	"errors"
	"sync"
	"testing"

	"ftc/geometry"
)

func TestCreateThreadedChain(t *testing.T) {
	d := newTestDocument(t, 5)
	b := box(54, 54, 594, 378)

	th, err := d.CreateThreadedChain(0, 4, b)
	if err != nil {
		t.Fatalf("CreateThreadedChain() error = %v", err)
	}
	if th.ChainLength != 5 || len(th.Created) != 5 {
		t.Fatalf("CreateThreadedChain() = %+v, want 5 frames", th)
	}

	visited := make(map[Handle]bool)
	cur := th.Created[0].Handle
	for steps := 0; cur != 0; steps++ {
		if steps > 5 {
			t.Fatal("following next does not terminate")
		}
		if visited[cur] {
			t.Fatalf("frame %s visited twice", cur)
		}
		visited[cur] = true
		loc, ok := d.Locate(cur)
		if !ok {
			t.Fatalf("frame %s does not exist", cur)
		}
		f, _ := d.Frame(loc)
		if f.Next == 0 && loc.Page != 4 {
			t.Errorf("chain ends on page %d, want 4", loc.Page)
		}
		cur = f.Next
	}
	if len(visited) != 5 {
		t.Errorf("visited %d frames, want 5", len(visited))
	}
	for i, r := range th.Created {
		if r.Page != i || r.Index != 0 {
			t.Errorf("created[%d] at %v", i, r.Loc)
		}
	}
}

func TestCreateThreadedChain_InvalidRange(t *testing.T) {
	d := newTestDocument(t, 5)
	if _, err := d.CreateThreadedChain(3, 1, box(0, 0, 10, 10)); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("CreateThreadedChain(3, 1) error = %v, want ErrInvalidRange", err)
	}
	if got := d.Snapshot().FrameCount(); got != 0 {
		t.Errorf("%d frames created", got)
	}
}

func TestCreateThreadedChain_PartialFailure(t *testing.T) {
	sizes := []geometry.PageSize{letter, letter, {Width: 200, Height: 200}, letter}
	d, err := New(sizes, WithOracle(heightOracle{}))
	if err != nil {
		t.Fatal(err)
	}

	_, err = d.CreateThreadedChain(0, 3, box(54, 54, 594, 378))
	if !errors.Is(err, geometry.ErrOutOfBounds) {
		t.Fatalf("CreateThreadedChain() error = %v, want ErrOutOfBounds", err)
	}
	var te *ThreadError
	if !errors.As(err, &te) {
		t.Fatalf("error type %T, want *ThreadError", err)
	}
	if te.Page != 2 || len(te.Created) != 2 {
		t.Fatalf("ThreadError page %d created %d, want page 2 and 2 frames", te.Page, len(te.Created))
	}

	// created prefix stays, linked together
	ch, err := d.Chain(te.Created[0].Loc)
	if err != nil || len(ch.Frames) != 2 {
		t.Errorf("partial chain = %+v, %v", ch, err)
	}
	if frames, _ := d.Frames(3); len(frames) != 0 {
		t.Error("pages after failing page were touched")
	}

	if n := d.Discard(te.Created); n != 2 {
		t.Errorf("Discard() = %d, want 2", n)
	}
	s := d.Snapshot()
	if s.FrameCount() != 0 || len(s.Links) != 0 {
		t.Errorf("after Discard() document has %d frames and %d links", s.FrameCount(), len(s.Links))
	}
	// discarding again is harmless
	if n := d.Discard(te.Created); n != 0 {
		t.Errorf("second Discard() = %d", n)
	}
}

func TestCreateThreadedChain_MissingPage(t *testing.T) {
	d := newTestDocument(t, 2)
	_, err := d.CreateThreadedChain(1, 2, box(0, 0, 10, 10))
	if !errors.Is(err, ErrInvalidPage) {
		t.Fatalf("error = %v, want ErrInvalidPage", err)
	}
	var te *ThreadError
	if errors.As(err, &te) && len(te.Created) != 1 {
		t.Errorf("created %d frames before failure, want 1", len(te.Created))
	}
}

func TestConcurrentAccess(t *testing.T) {
	d := newTestDocument(t, 4)
	var wg sync.WaitGroup
	for pg := range 4 {
		wg.Go(func() {
			for range 20 {
				ref, err := d.CreateFrame(pg, box(0, 0, 10, 10))
				if err != nil {
					t.Error(err)
					return
				}
				_ = d.AppendContent(ref.Loc, "a")
				_, _ = d.Reconcile(pg)
			}
		})
		wg.Go(func() {
			for range 20 {
				_, _ = d.Frames(pg)
				_ = d.Snapshot()
				_, _ = d.DetectOverflow(Loc{Page: pg, Index: 0})
			}
		})
	}
	wg.Wait()

	for pg := range 4 {
		frames, _ := d.Frames(pg)
		if len(frames) != 1 {
			t.Errorf("page %d has %d frames after reconciliation, want 1", pg, len(frames))
		}
	}
}
