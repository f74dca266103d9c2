package frames

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"ftc/geometry"
)

// Frame is a read-only copy of frame state. Next and Prev are zero when
// frame is not linked, they may refer to removed frames (broken links).
type Frame struct {
	Ref     `yaml:",inline"`
	Bounds  geometry.Bounds `yaml:"bounds"`
	Content string          `yaml:"content,omitempty"`
	Label   string          `yaml:"label"`
	Next    Handle          `yaml:"next,omitempty"`
	Prev    Handle          `yaml:"prev,omitempty"`
}

// Empty reports whether frame holds no content.
func (f Frame) Empty() bool {
	return len(f.Content) == 0
}

// Length is number of characters (runes) of frame's own content.
func (f Frame) Length() int {
	return utf8.RuneCountInString(f.Content)
}

// Paragraphs counts non-blank runs of text separated by line breaks.
func (f Frame) Paragraphs() int {
	n := 0
	for _, p := range strings.FieldsFunc(f.Content, func(r rune) bool { return r == '\n' || r == '\r' }) {
		if len(strings.TrimSpace(p)) > 0 {
			n++
		}
	}
	return n
}

// CreateFrame validates bounds against the page and appends new frame at the
// end of page frame list.
func (d *Document) CreateFrame(pageIdx int, b geometry.Bounds) (Ref, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.createFrame(pageIdx, b)
}

func (d *Document) createFrame(pageIdx int, b geometry.Bounds) (Ref, error) {
	p, err := d.pageAt(pageIdx)
	if err != nil {
		return Ref{}, err
	}
	if err := geometry.Validate(b, p.size); err != nil {
		return Ref{}, fmt.Errorf("unable to create frame on page %d: %w", pageIdx, err)
	}

	d.lastHandle++
	h := d.lastHandle
	d.arena[h] = &frame{page: p, bounds: b, label: d.nextLabel()}
	p.frames = append(p.frames, h)

	ref := Ref{Loc: Loc{Page: pageIdx, Index: len(p.frames) - 1}, Handle: h}
	d.log.Debug("Frame created", zap.Stringer("at", ref.Loc), zap.Stringer("handle", h), zap.Stringer("bounds", b))
	return ref, nil
}

// Frame returns frame at location.
func (d *Document) Frame(loc Loc) (Frame, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	h, err := d.resolve(loc)
	if err != nil {
		return Frame{}, err
	}
	return d.frameView(h, loc), nil
}

// Frames returns all frames of the page in page order.
func (d *Document) Frames(pageIdx int) ([]Frame, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	p, err := d.pageAt(pageIdx)
	if err != nil {
		return nil, err
	}
	res := make([]Frame, 0, len(p.frames))
	for i, h := range p.frames {
		res = append(res, d.frameView(h, Loc{Page: pageIdx, Index: i}))
	}
	return res, nil
}

// RemoveFrame deletes frame, later frames on the same page move one index
// down. Links pointing to removed frame are left in place and will be
// reported as broken, unlink frame first to avoid that.
func (d *Document) RemoveFrame(loc Loc) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	h, err := d.resolve(loc)
	if err != nil {
		return err
	}
	d.removeFrame(h)
	d.log.Debug("Frame removed", zap.Stringer("at", loc), zap.Stringer("handle", h))
	return nil
}

func (d *Document) removeFrame(h Handle) {
	f, ok := d.arena[h]
	if !ok {
		return
	}
	f.page.frames = slices.DeleteFunc(f.page.frames, func(x Handle) bool { return x == h })
	delete(d.arena, h)
}

// Locate returns current location of the frame, false if frame does not
// exist anymore.
func (d *Document) Locate(h Handle) (Loc, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.locate(h)
}

func (d *Document) locate(h Handle) (Loc, bool) {
	f, ok := d.arena[h]
	if !ok {
		return Loc{}, false
	}
	return Loc{Page: slices.Index(d.pages, f.page), Index: slices.Index(f.page.frames, h)}, true
}

// Resolve returns handle of the frame at location.
func (d *Document) Resolve(loc Loc) (Handle, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.resolve(loc)
}

func (d *Document) resolve(loc Loc) (Handle, error) {
	p, err := d.pageAt(loc.Page)
	if err != nil {
		return 0, err
	}
	if loc.Index < 0 || loc.Index >= len(p.frames) {
		return 0, &FrameNotFoundError{Page: loc.Page, Index: loc.Index, Count: len(p.frames)}
	}
	return p.frames[loc.Index], nil
}

// SetContent replaces frame content.
func (d *Document) SetContent(loc Loc, text string) error {
	return d.updateContent(loc, func(string) (string, error) { return text, nil })
}

// AppendContent adds text at the end of frame content.
func (d *Document) AppendContent(loc Loc, text string) error {
	return d.updateContent(loc, func(old string) (string, error) { return old + text, nil })
}

// InsertContent puts text into frame content after at characters (runes):
// 0 inserts at the beginning, -1 at the end. Position past the end of
// content is ErrInvalidPosition.
func (d *Document) InsertContent(loc Loc, text string, at int) error {
	return d.updateContent(loc, func(old string) (string, error) {
		runes := []rune(old)
		switch {
		case at == -1:
			return old + text, nil
		case at < -1 || at > len(runes):
			return "", fmt.Errorf("%w: %d, content has %d character(s)", ErrInvalidPosition, at, len(runes))
		}
		return string(runes[:at]) + text + string(runes[at:]), nil
	})
}

func (d *Document) updateContent(loc Loc, update func(string) (string, error)) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	h, err := d.resolve(loc)
	if err != nil {
		return err
	}
	f := d.arena[h]
	content, err := update(f.content)
	if err != nil {
		return err
	}
	f.content = content
	d.log.Debug("Frame content changed", zap.Stringer("at", loc), zap.Int("length", utf8.RuneCountInString(f.content)))
	return nil
}

// SetLabel changes informational frame label.
func (d *Document) SetLabel(loc Loc, label string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	h, err := d.resolve(loc)
	if err != nil {
		return err
	}
	d.arena[h].label = label
	return nil
}

func (d *Document) frameView(h Handle, loc Loc) Frame {
	f := d.arena[h]
	return Frame{
		Ref:     Ref{Loc: loc, Handle: h},
		Bounds:  f.bounds,
		Content: f.content,
		Label:   f.label,
		Next:    d.next[h],
		Prev:    d.prev[h],
	}
}
