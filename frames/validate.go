package frames

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Finding is a single document health problem.
type Finding struct {
	At      *Loc   `yaml:"at,omitempty"`
	Message string `yaml:"message"`
}

func (f Finding) Error() string {
	if f.At == nil {
		return f.Message
	}
	return fmt.Sprintf("frame %s: %s", f.At, f.Message)
}

// Health is the result of document validation. Errors are problems which
// damage the document (text which cannot be seen, chains pointing to removed
// frames), warnings are suspicious but harmless.
type Health struct {
	PagesChecked  int       `yaml:"pages_checked"`
	FramesChecked int       `yaml:"frames_checked"`
	OverflowFound int       `yaml:"overflow_found"`
	Errors        []Finding `yaml:"errors,omitempty"`
	Warnings      []Finding `yaml:"warnings,omitempty"`
}

// Passed reports absence of errors, warnings are allowed.
func (h Health) Passed() bool {
	return len(h.Errors) == 0
}

// Err combines all errors, nil when validation passed.
func (h Health) Err() error {
	var err error
	for _, f := range h.Errors {
		err = multierr.Append(err, f)
	}
	return err
}

// Validate checks every frame of the document for lost overflow and broken
// links, and every page for frames sharing bounds.
func (d *Document) Validate() (Health, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var res Health
	if d.oracle == nil {
		res.Warnings = append(res.Warnings, Finding{Message: "no content oracle, overflow is not checked"})
	}
	for pi, p := range d.pages {
		res.PagesChecked++
		for fi, h := range p.frames {
			res.FramesChecked++
			loc := Loc{Page: pi, Index: fi}
			f := d.arena[h]

			if d.broken(h) {
				res.Errors = append(res.Errors, Finding{At: &loc, Message: "linked to frame which does not exist"})
			}
			if dup := d.firstWithBounds(p, h); dup >= 0 {
				res.Warnings = append(res.Warnings, Finding{At: &loc, Message: fmt.Sprintf("same bounds %s as frame %d", f.bounds, dup)})
			}
			_, hasNext := d.liveNext(h)
			_, hasPrev := d.livePrev(h)
			if len(f.content) == 0 && !hasNext && !hasPrev {
				res.Warnings = append(res.Warnings, Finding{At: &loc, Message: "empty frame"})
			}

			if d.oracle == nil {
				continue
			}
			o, err := d.overflow(h, loc)
			if err != nil {
				return Health{}, err
			}
			if o.HasOverflow {
				res.OverflowFound++
			}
			if o.Lost() {
				res.Errors = append(res.Errors, Finding{At: &loc, Message: fmt.Sprintf("%d character(s) overflow", o.Count)})
			}
		}
	}
	d.log.Debug("Document validated",
		zap.Int("frames", res.FramesChecked),
		zap.Int("errors", len(res.Errors)),
		zap.Int("warnings", len(res.Warnings)))
	return res, nil
}

// firstWithBounds returns index of the earlier frame on page with the same
// bounds as h, or -1.
func (d *Document) firstWithBounds(p *page, h Handle) int {
	b := d.arena[h].bounds
	for i, other := range p.frames {
		if other == h {
			return -1
		}
		if d.arena[other].bounds == b {
			return i
		}
	}
	return -1
}
