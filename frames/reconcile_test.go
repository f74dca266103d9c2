package frames

import (
	"errors"
	"testing"
)

func TestReconcile_EmptyDuplicateRemoved(t *testing.T) {
	d := newTestDocument(t, 1)
	empty := mustCreate(t, d, 0, box(10, 10, 50, 50))
	full := mustCreate(t, d, 0, box(10, 10, 50, 50))
	if err := d.SetContent(full.Loc, "hello"); err != nil {
		t.Fatal(err)
	}

	res, err := d.Reconcile(0)
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}
	if len(res.Removed) != 1 || res.Removed[0].Handle != empty.Handle || !res.Removed[0].Empty {
		t.Errorf("Removed = %+v, want the empty frame", res.Removed)
	}
	if len(res.Kept) != 1 || res.Kept[0].Handle != full.Handle || res.Kept[0].Index != 0 {
		t.Errorf("Kept = %+v, want the frame with content at index 0", res.Kept)
	}

	f, err := d.Frame(Loc{Page: 0, Index: 0})
	if err != nil || f.Content != "hello" {
		t.Errorf("Frame(0:0) = %+v, %v", f, err)
	}
}

func TestReconcile_Policy(t *testing.T) {
	tests := []struct {
		name     string
		contents []string
		// which of the frames with identical bounds survive
		kept []int
	}{
		{name: "both empty keeps first", contents: []string{"", ""}, kept: []int{0}},
		{name: "both full keeps first", contents: []string{"a", "b"}, kept: []int{0}},
		{name: "empty after full is removed", contents: []string{"a", ""}, kept: []int{0}},
		{name: "full replaces empty", contents: []string{"", "a"}, kept: []int{1}},
		{name: "only first full survives", contents: []string{"", "", "a", "b", ""}, kept: []int{2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDocument(t, 1)
			var refs []Ref
			for _, c := range tt.contents {
				r := mustCreate(t, d, 0, box(10, 10, 50, 50))
				if err := d.SetContent(r.Loc, c); err != nil {
					t.Fatal(err)
				}
				refs = append(refs, r)
			}
			// unrelated frame with other bounds is never touched
			other := mustCreate(t, d, 0, box(60, 10, 90, 50))

			res, err := d.Reconcile(0)
			if err != nil {
				t.Fatalf("Reconcile() error = %v", err)
			}
			if got, want := len(res.Removed), len(tt.contents)-len(tt.kept); got != want {
				t.Errorf("removed %d frames, want %d", got, want)
			}
			keptHandles := make(map[Handle]bool)
			for _, k := range res.Kept {
				keptHandles[k.Handle] = true
			}
			for _, i := range tt.kept {
				if !keptHandles[refs[i].Handle] {
					t.Errorf("frame %d was not kept", i)
				}
			}
			if !keptHandles[other.Handle] {
				t.Error("frame with different bounds was not kept")
			}
		})
	}
}

func TestReconcile_Idempotent(t *testing.T) {
	d := newTestDocument(t, 1)
	for _, c := range []string{"", "x", "", "y"} {
		r := mustCreate(t, d, 0, box(10, 10, 50, 50))
		_ = d.SetContent(r.Loc, c)
		mustCreate(t, d, 0, box(0, 0, 20, 20))
	}
	first, err := d.Reconcile(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(first.Removed) == 0 {
		t.Fatal("first Reconcile() removed nothing")
	}
	second, err := d.Reconcile(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(second.Removed) != 0 {
		t.Errorf("second Reconcile() removed %+v", second.Removed)
	}
	if len(second.Kept) != len(first.Kept) {
		t.Errorf("kept %d then %d", len(first.Kept), len(second.Kept))
	}
}

func TestReconcile_JoinsChainAroundRemovedFrame(t *testing.T) {
	d := newTestDocument(t, 3)
	th, err := d.CreateThreadedChain(0, 2, box(10, 10, 50, 50))
	if err != nil {
		t.Fatal(err)
	}
	// phantom duplicate on page 1 ends up in the chain, real frame is the
	// one holding text
	real := mustCreate(t, d, 1, box(10, 10, 50, 50))
	_ = d.SetContent(real.Loc, "text")

	res, err := d.Reconcile(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Removed) != 1 || res.Removed[0].Handle != th.Created[1].Handle {
		t.Fatalf("Removed = %+v, want threaded empty frame", res.Removed)
	}

	ch, _ := d.Chain(th.Created[0].Loc)
	if len(ch.Frames) != 2 || ch.Frames[1].Handle != th.Created[2].Handle || ch.Broken {
		t.Errorf("chain after reconciliation = %+v, want page 0 frame joined with page 2 frame", ch)
	}
}

func TestReconcileAll(t *testing.T) {
	d := newTestDocument(t, 3)
	for pg := range 3 {
		for range pg + 1 {
			mustCreate(t, d, pg, box(10, 10, 50, 50))
		}
	}
	res := d.ReconcileAll()
	if len(res) != 3 {
		t.Fatalf("ReconcileAll() returned %d pages", len(res))
	}
	for pg, r := range res {
		if r.Page != pg || len(r.Removed) != pg || len(r.Kept) != 1 {
			t.Errorf("page %d: removed %d kept %d", pg, len(r.Removed), len(r.Kept))
		}
	}
	if _, err := d.Reconcile(3); !errors.Is(err, ErrInvalidPage) {
		t.Errorf("Reconcile() on missing page error = %v", err)
	}
}
