package frames

import (
	"slices"

	"go.uber.org/zap"

	"ftc/geometry"
)

// Removed describes frame deleted by reconciliation. Index is the frame
// position before reconciliation started.
type Removed struct {
	Handle Handle          `yaml:"handle"`
	Index  int             `yaml:"index"`
	Bounds geometry.Bounds `yaml:"bounds"`
	Label  string          `yaml:"label"`
	Empty  bool            `yaml:"empty"`
}

// Reconciliation is the result of duplicate/empty frame cleanup on a page.
type Reconciliation struct {
	Page    int       `yaml:"page"`
	Removed []Removed `yaml:"removed"`
	Kept    []Ref     `yaml:"kept"`
}

// Reconcile removes frames which duplicate bounds of earlier frames on the
// same page. Frames are examined in page order, from frames sharing identical
// bounds the first non-empty one survives, or the first one when all are
// empty. Running it again on the same page removes nothing.
//
// Unlike RemoveFrame, which leaves links of the removed frame dangling,
// Reconcile takes every removed frame out of its chain first and joins its
// previous and next frames, so cleanup never produces broken links.
func (d *Document) Reconcile(pageIdx int) (Reconciliation, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	p, err := d.pageAt(pageIdx)
	if err != nil {
		return Reconciliation{}, err
	}
	res := d.reconcile(pageIdx, p)
	if len(res.Removed) > 0 {
		d.log.Info("Duplicate frames removed", zap.Int("page", pageIdx), zap.Int("removed", len(res.Removed)), zap.Int("kept", len(res.Kept)))
	}
	return res, nil
}

// ReconcileAll reconciles every page of the document.
func (d *Document) ReconcileAll() []Reconciliation {
	d.mu.Lock()
	defer d.mu.Unlock()

	res := make([]Reconciliation, 0, len(d.pages))
	total := 0
	for i, p := range d.pages {
		r := d.reconcile(i, p)
		total += len(r.Removed)
		res = append(res, r)
	}
	d.log.Info("Document reconciled", zap.Int("pages", len(d.pages)), zap.Int("removed", total))
	return res
}

func (d *Document) reconcile(pageIdx int, p *page) Reconciliation {
	var (
		kept   []Handle
		marked = make(map[Handle]bool)
	)
	for _, h := range p.frames {
		f := d.arena[h]
		i := slices.IndexFunc(kept, func(k Handle) bool { return d.arena[k].bounds == f.bounds })
		switch {
		case i < 0:
			kept = append(kept, h)
		case len(f.content) > 0 && len(d.arena[kept[i]].content) == 0:
			marked[kept[i]] = true
			kept = append(slices.Delete(kept, i, i+1), h)
		default:
			marked[h] = true
		}
	}

	res := Reconciliation{Page: pageIdx, Removed: []Removed{}, Kept: []Ref{}}
	for i, h := range p.frames {
		if !marked[h] {
			continue
		}
		f := d.arena[h]
		res.Removed = append(res.Removed, Removed{
			Handle: h,
			Index:  i,
			Bounds: f.bounds,
			Label:  f.label,
			Empty:  len(f.content) == 0,
		})
	}
	for _, r := range res.Removed {
		d.detach(r.Handle)
		d.removeFrame(r.Handle)
		d.log.Debug("Frame reconciled away", zap.Int("page", pageIdx), zap.Int("index", r.Index), zap.Stringer("handle", r.Handle), zap.Bool("empty", r.Empty))
	}
	for i, h := range p.frames {
		res.Kept = append(res.Kept, Ref{Loc: Loc{Page: pageIdx, Index: i}, Handle: h})
	}
	return res
}
