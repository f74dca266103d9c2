package frames

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"ftc/geometry"
)

// Threading is the result of bulk threading.
type Threading struct {
	Created     []Ref `yaml:"created"`
	ChainLength int   `yaml:"chain_length"`
}

// CreateThreadedChain creates frame with the same bounds on every page from
// start to end inclusive and links them into one chain in page order. The
// whole operation runs under single document lock.
//
// On failure *ThreadError is returned. Frames created before the failing
// page are not removed, see Discard.
func (d *Document) CreateThreadedChain(start, end int, b geometry.Bounds) (Threading, error) {
	if start > end {
		return Threading{}, fmt.Errorf("%w: start page %d is after end page %d", ErrInvalidRange, start, end)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	var created []Ref
	for pg := start; pg <= end; pg++ {
		ref, err := d.createFrame(pg, b)
		if err == nil && len(created) > 0 {
			err = d.link(created[len(created)-1].Handle, ref.Handle)
		}
		if err != nil {
			d.log.Warn("Threading stopped", zap.Int("page", pg), zap.Int("created", len(created)), zap.Error(err))
			return Threading{}, &ThreadError{Page: pg, Created: created, Err: err}
		}
		created = append(created, ref)
	}

	d.log.Info("Threaded frames created", zap.Int("start", start), zap.Int("end", end), zap.Int("frames", len(created)))
	return Threading{Created: created, ChainLength: len(created)}, nil
}

// Discard unlinks and removes frames referenced by handle, frames which do
// not exist anymore are skipped. It is intended for cleaning up after failed
// bulk threading. Returns number of frames removed.
func (d *Document) Discard(refs []Ref) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	count := 0
	for _, r := range slices.Backward(refs) {
		if _, ok := d.arena[r.Handle]; !ok {
			continue
		}
		d.unlinkPrev(r.Handle)
		d.unlinkNext(r.Handle)
		d.removeFrame(r.Handle)
		count++
	}
	d.log.Debug("Frames discarded", zap.Int("requested", len(refs)), zap.Int("removed", count))
	return count
}
