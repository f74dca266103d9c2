package frames

import (
	"fmt"
	"iter"

	"go.uber.org/zap"
)

// Link threads src into dst, so that content flowing out of src continues in
// dst. src must not be reachable from dst (ErrCircularLink, checked first),
// dst must not have previous frame and src must not have next frame
// (ErrAlreadyLinked). Nothing is changed when link fails.
func (d *Document) Link(src, dst Loc) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	hs, err := d.resolve(src)
	if err != nil {
		return fmt.Errorf("link source: %w", err)
	}
	hd, err := d.resolve(dst)
	if err != nil {
		return fmt.Errorf("link target: %w", err)
	}
	if err := d.link(hs, hd); err != nil {
		return fmt.Errorf("unable to link %s to %s: %w", src, dst, err)
	}
	d.log.Debug("Frames linked", zap.Stringer("from", src), zap.Stringer("to", dst))
	return nil
}

// link expects both handles to be live and lock to be held.
func (d *Document) link(src, dst Handle) error {
	if src == dst {
		return fmt.Errorf("%w: frame %s cannot follow itself", ErrCircularLink, src)
	}
	// loop is reported first, even when src is in the middle of a chain
	for h := range d.walkNext(dst) {
		if h == src {
			return fmt.Errorf("%w: frame %s is reachable from %s", ErrCircularLink, src, dst)
		}
	}
	if p, ok := d.livePrev(dst); ok {
		return fmt.Errorf("%w: frame %s already follows %s", ErrAlreadyLinked, dst, p)
	}
	if n, ok := d.liveNext(src); ok {
		return fmt.Errorf("%w: frame %s already continues into %s", ErrAlreadyLinked, src, n)
	}

	// drop broken relations which are going to be replaced
	if old, ok := d.prev[dst]; ok && d.next[old] == dst {
		delete(d.next, old)
	}
	if old, ok := d.next[src]; ok && d.prev[old] == src {
		delete(d.prev, old)
	}
	d.next[src] = dst
	d.prev[dst] = src
	return nil
}

// Unlink breaks the link from frame to its next frame. Content of both frames
// is left intact. Unlinking frame without next is not an error.
func (d *Document) Unlink(loc Loc) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	h, err := d.resolve(loc)
	if err != nil {
		return err
	}
	if n, ok := d.unlinkNext(h); ok {
		d.log.Debug("Frames unlinked", zap.Stringer("from", loc), zap.Stringer("handle", h), zap.Stringer("next", n))
	}
	return nil
}

func (d *Document) unlinkNext(h Handle) (Handle, bool) {
	n, ok := d.next[h]
	if !ok {
		return 0, false
	}
	delete(d.next, h)
	if d.prev[n] == h {
		delete(d.prev, n)
	}
	return n, true
}

func (d *Document) unlinkPrev(h Handle) {
	p, ok := d.prev[h]
	if !ok {
		return
	}
	delete(d.prev, h)
	if d.next[p] == h {
		delete(d.next, p)
	}
}

// detach removes frame from its chain joining its neighbours when both are
// alive.
func (d *Document) detach(h Handle) {
	p, hasPrev := d.livePrev(h)
	n, hasNext := d.liveNext(h)
	d.unlinkPrev(h)
	d.unlinkNext(h)
	if hasPrev && hasNext {
		d.next[p] = n
		d.prev[n] = p
	}
}

func (d *Document) liveNext(h Handle) (Handle, bool) {
	n, ok := d.next[h]
	if !ok {
		return 0, false
	}
	_, live := d.arena[n]
	return n, live
}

func (d *Document) livePrev(h Handle) (Handle, bool) {
	p, ok := d.prev[h]
	if !ok {
		return 0, false
	}
	_, live := d.arena[p]
	return p, live
}

// walkNext yields h and all live frames following it. Guard against loops
// is not needed as long as link is the only way to create relations.
func (d *Document) walkNext(h Handle) iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		for cur, ok := h, true; ok; cur, ok = d.liveNext(cur) {
			if !yield(cur) {
				return
			}
		}
	}
}

// head returns first live frame of the chain h belongs to.
func (d *Document) head(h Handle) Handle {
	for {
		p, ok := d.livePrev(h)
		if !ok {
			return h
		}
		h = p
	}
}

// broken reports whether h has a relation to frame which does not exist.
func (d *Document) broken(h Handle) bool {
	if n, ok := d.next[h]; ok {
		if _, live := d.arena[n]; !live {
			return true
		}
	}
	if p, ok := d.prev[h]; ok {
		if _, live := d.arena[p]; !live {
			return true
		}
	}
	return false
}
