package frames

import (
	"errors"
	"maps"
	"slices"
	"sort"

	"github.com/maruel/natural"

	"ftc/geometry"
	"ftc/utils/debug"
)

// Info is detailed frame description.
type Info struct {
	Frame         `yaml:",inline"`
	Length        int       `yaml:"length"`
	Paragraphs    int       `yaml:"paragraphs"`
	PrevFrame     *Loc      `yaml:"previous_frame,omitempty"`
	NextFrame     *Loc      `yaml:"next_frame,omitempty"`
	BrokenLink    bool      `yaml:"broken_link,omitempty"`
	ChainPosition int       `yaml:"chain_position"`
	ChainLength   int       `yaml:"chain_length"`
	StoryLength   int       `yaml:"story_length"`
	Overflow      *Overflow `yaml:"overflow,omitempty"`
}

// FrameInfo returns frame together with its chain and overflow state.
// Overflow is omitted when document has no oracle.
func (d *Document) FrameInfo(loc Loc) (Info, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	h, err := d.resolve(loc)
	if err != nil {
		return Info{}, err
	}
	fv := d.frameView(h, loc)
	c := d.chain(h)
	info := Info{
		Frame:         fv,
		Length:        fv.Length(),
		Paragraphs:    fv.Paragraphs(),
		BrokenLink:    d.broken(h),
		ChainPosition: c.Position,
		ChainLength:   len(c.Frames),
		StoryLength:   c.StoryLength,
	}
	if p, ok := d.livePrev(h); ok {
		l, _ := d.locate(p)
		info.PrevFrame = &l
	}
	if n, ok := d.liveNext(h); ok {
		l, _ := d.locate(n)
		info.NextFrame = &l
	}
	o, err := d.overflow(h, loc)
	switch {
	case err == nil:
		info.Overflow = &o
	case !errors.Is(err, ErrNoOracle):
		return Info{}, err
	}
	return info, nil
}

// Link is a single next relation, To may be a removed frame.
type Link struct {
	From Handle `yaml:"from"`
	To   Handle `yaml:"to"`
}

// PageSnapshot is a copy of page state.
type PageSnapshot struct {
	Size   geometry.PageSize `yaml:"size"`
	Frames []Frame           `yaml:"frames"`
}

// Snapshot is a deep copy of document state. Two snapshots of unchanged
// document are equal.
type Snapshot struct {
	ID    string         `yaml:"id"`
	Name  string         `yaml:"name"`
	Pages []PageSnapshot `yaml:"pages"`
	Links []Link         `yaml:"links"`
}

// Snapshot copies current document state.
func (d *Document) Snapshot() Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()

	s := Snapshot{ID: d.id.String(), Name: d.name, Pages: make([]PageSnapshot, 0, len(d.pages)), Links: []Link{}}
	for pi, p := range d.pages {
		ps := PageSnapshot{Size: p.size, Frames: make([]Frame, 0, len(p.frames))}
		for fi, h := range p.frames {
			ps.Frames = append(ps.Frames, d.frameView(h, Loc{Page: pi, Index: fi}))
		}
		s.Pages = append(s.Pages, ps)
	}
	for _, from := range slices.Sorted(maps.Keys(d.next)) {
		s.Links = append(s.Links, Link{From: from, To: d.next[from]})
	}
	return s
}

// FrameCount returns number of frames in snapshot.
func (s Snapshot) FrameCount() int {
	n := 0
	for _, p := range s.Pages {
		n += len(p.Frames)
	}
	return n
}

// String returns a readable tree of the document for manual inspection.
func (d *Document) String() string {
	if d == nil {
		return "<nil Document>"
	}
	return d.Snapshot().Tree(0)
}

// Tree renders snapshot as indented tree with frame content clipped to clip
// runes (zero keeps everything).
func (s Snapshot) Tree(clip int) string {
	tw := debug.NewTreeWriter().Clip(clip)
	tw.Line(0, "Document %q id=%s pages=%d frames=%d links=%d", s.Name, s.ID, len(s.Pages), s.FrameCount(), len(s.Links))

	labels := make(map[string]Frame)
	for pi, p := range s.Pages {
		tw.Line(1, "Page[%d] size=%s frames=%d", pi, p.Size, len(p.Frames))
		for _, f := range p.Frames {
			tw.Line(2, "Frame[%d] handle=%s label=%q bounds=%s length=%d", f.Index, f.Handle, f.Label, f.Bounds, f.Length())
			if f.Prev != 0 {
				tw.Line(3, "prev=%s", f.Prev)
			}
			if f.Next != 0 {
				tw.Line(3, "next=%s", f.Next)
			}
			if !f.Empty() {
				tw.TextBlock(3, "content", f.Content)
			}
			labels[f.Label] = f
		}
	}

	if len(labels) > 0 {
		keys := slices.Collect(maps.Keys(labels))
		sort.Sort(natural.StringSlice(keys))
		tw.Line(1, "Labels (%d entries)", len(keys))
		for _, k := range keys {
			tw.Line(2, "%q => %s (handle %s)", k, labels[k].Loc, labels[k].Handle)
		}
	}
	return tw.String()
}
