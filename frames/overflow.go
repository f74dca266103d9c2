package frames

import (
	"fmt"
	"unicode/utf8"

	"ftc/geometry"
)

// FlowFrame is a frame as seen by content oracle.
type FlowFrame struct {
	Bounds  geometry.Bounds
	Content string
}

// Measurement is reported by oracle for a single frame of a chain. Total is
// number of characters flowing into the frame, Visible is how many of them
// are rendered inside frame bounds.
type Measurement struct {
	Total   int
	Visible int
}

// Oracle measures text. Engine never lays text out itself.
type Oracle interface {
	// Measure is called with all frames of a chain in flow order and position
	// of the frame being measured.
	Measure(chain []FlowFrame, at int) (Measurement, error)
}

// OracleFunc adapts function to Oracle.
type OracleFunc func(chain []FlowFrame, at int) (Measurement, error)

func (f OracleFunc) Measure(chain []FlowFrame, at int) (Measurement, error) {
	return f(chain, at)
}

// Overflow describes text which does not fit into frame bounds.
type Overflow struct {
	Loc         Loc    `yaml:"at"`
	HasOverflow bool   `yaml:"has_overflow"`
	Count       int    `yaml:"overflow_count"`
	Total       int    `yaml:"total"`
	Visible     int    `yaml:"visible"`
	Threaded    bool   `yaml:"threaded"`
	Suggestion  string `yaml:"suggestion,omitempty"`
}

// Lost reports overflowing text which has no frame to continue in.
func (o Overflow) Lost() bool {
	return o.HasOverflow && !o.Threaded
}

// Chain is ordered list of frames connected by next links.
type Chain struct {
	Frames      []Ref `yaml:"frames"`
	Position    int   `yaml:"position"`
	StoryLength int   `yaml:"story_length"`
	Broken      bool  `yaml:"broken,omitempty"`
}

// Chain returns the whole chain frame at loc belongs to, from head to tail.
func (d *Document) Chain(loc Loc) (Chain, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	h, err := d.resolve(loc)
	if err != nil {
		return Chain{}, err
	}
	return d.chain(h), nil
}

func (d *Document) chain(h Handle) Chain {
	var c Chain
	for cur := range d.walkNext(d.head(h)) {
		if cur == h {
			c.Position = len(c.Frames)
		}
		l, _ := d.locate(cur)
		c.Frames = append(c.Frames, Ref{Loc: l, Handle: cur})
		c.StoryLength += utf8.RuneCountInString(d.arena[cur].content)
		c.Broken = c.Broken || d.broken(cur)
	}
	return c
}

// DetectOverflow asks oracle how much of the text flowing into frame is not
// visible in it. Result is computed on every call.
func (d *Document) DetectOverflow(loc Loc) (Overflow, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	h, err := d.resolve(loc)
	if err != nil {
		return Overflow{}, err
	}
	return d.overflow(h, loc)
}

func (d *Document) overflow(h Handle, loc Loc) (Overflow, error) {
	if d.oracle == nil {
		return Overflow{}, ErrNoOracle
	}

	var (
		flow []FlowFrame
		at   int
	)
	for cur := range d.walkNext(d.head(h)) {
		if cur == h {
			at = len(flow)
		}
		f := d.arena[cur]
		flow = append(flow, FlowFrame{Bounds: f.bounds, Content: f.content})
	}

	m, err := d.oracle.Measure(flow, at)
	if err != nil {
		return Overflow{}, fmt.Errorf("unable to measure frame %s: %w", loc, err)
	}
	if m.Total < 0 || m.Visible < 0 {
		return Overflow{}, fmt.Errorf("unable to measure frame %s: oracle returned negative length (total %d, visible %d)", loc, m.Total, m.Visible)
	}

	_, threaded := d.liveNext(h)
	o := Overflow{
		Loc:      loc,
		Count:    max(0, m.Total-m.Visible),
		Total:    m.Total,
		Visible:  m.Visible,
		Threaded: threaded,
	}
	o.HasOverflow = o.Count > 0
	switch {
	case o.Lost():
		o.Suggestion = fmt.Sprintf("%d character(s) do not fit: enlarge frame or link it to another frame", o.Count)
	case o.HasOverflow:
		o.Suggestion = fmt.Sprintf("%d character(s) continue in the next frame", o.Count)
	}
	return o, nil
}
