package script

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"ftc/common"
	"ftc/frames"
	"ftc/geometry"
	"ftc/textsrc"
)

// Options control how scenario is executed.
type Options struct {
	ContinueOnError bool
	OnThreadFailure common.ThreadFailurePolicy
	DefaultBounds   geometry.Bounds
	DefaultPageSize geometry.PageSize
	// TextEncoding forces encoding of imported text files, detected when empty.
	TextEncoding string
	// BaseDir is used to resolve relative text file names.
	BaseDir     string
	ShowContent bool
}

// Result is the record of a single executed step.
type Result struct {
	Step   int           `yaml:"step"`
	Op     common.StepOp `yaml:"op"`
	OK     bool          `yaml:"ok"`
	Error  string        `yaml:"error,omitempty"`
	Result any           `yaml:"result,omitempty"`
}

// Outcome is everything scenario run produced.
type Outcome struct {
	Document string   `yaml:"document"`
	ID       string   `yaml:"id"`
	Executed int      `yaml:"executed"`
	Failed   int      `yaml:"failed"`
	Steps    []Result `yaml:"steps"`
}

const clipContent = 32

// Execute runs steps in order against the document. Execution stops on the
// first failed step unless ContinueOnError is set, all step errors are
// combined in returned error. Context is checked before every step.
func Execute(ctx context.Context, doc *frames.Document, steps []Step, opts Options, log *zap.Logger) (Outcome, error) {
	out := Outcome{Document: doc.Name(), ID: doc.ID().String(), Steps: make([]Result, 0, len(steps))}
	r := &runner{doc: doc, opts: opts, log: log}

	var err error
	for i, s := range steps {
		if e := ctx.Err(); e != nil {
			return out, multierr.Append(err, e)
		}

		res := Result{Step: i + 1, Op: s.Op}
		v, e := r.exec(s)
		res.Result = v
		out.Executed++

		if e != nil {
			out.Failed++
			res.Error = e.Error()
			err = multierr.Append(err, fmt.Errorf("step %d (%s): %w", res.Step, s.Op, e))
			log.Warn("Step failed", zap.Int("step", res.Step), zap.Stringer("op", s.Op), zap.Error(e))
			out.Steps = append(out.Steps, res)
			if !opts.ContinueOnError {
				break
			}
			continue
		}

		res.OK = true
		out.Steps = append(out.Steps, res)
		if s.Op.Mutating() {
			log.Debug("Step done", zap.Int("step", res.Step), zap.Stringer("op", s.Op), zap.String("comment", s.Comment))
		}
	}
	log.Info("Scenario finished", zap.Int("executed", out.Executed), zap.Int("failed", out.Failed))
	return out, err
}

type runner struct {
	doc  *frames.Document
	opts Options
	log  *zap.Logger
}

func (r *runner) bounds(s Step) geometry.Bounds {
	if s.Bounds != nil {
		return *s.Bounds
	}
	return r.opts.DefaultBounds
}

func (r *runner) exec(s Step) (any, error) {
	if err := s.check(); err != nil {
		return nil, err
	}

	switch s.Op {
	case common.StepOpCreate:
		ref, err := r.doc.CreateFrame(*s.Page, r.bounds(s))
		if err != nil {
			return nil, err
		}
		if len(s.Label) > 0 {
			if err := r.doc.SetLabel(ref.Loc, s.Label); err != nil {
				return nil, err
			}
		}
		return ref, nil

	case common.StepOpRemove:
		return nil, r.doc.RemoveFrame(*s.At)

	case common.StepOpLink:
		return nil, r.doc.Link(*s.From, *s.To)

	case common.StepOpUnlink:
		return nil, r.doc.Unlink(*s.At)

	case common.StepOpInsert:
		return r.insert(s)

	case common.StepOpThread:
		return r.thread(s)

	case common.StepOpReconcile:
		if s.Page == nil {
			return r.doc.ReconcileAll(), nil
		}
		return r.doc.Reconcile(*s.Page)

	case common.StepOpOverflow:
		return r.doc.DetectOverflow(*s.At)

	case common.StepOpInfo:
		info, err := r.doc.FrameInfo(*s.At)
		if err != nil {
			return nil, err
		}
		info.Frame = r.clip(info.Frame)
		return info, nil

	case common.StepOpList:
		return r.list(s)

	case common.StepOpChain:
		return r.doc.Chain(*s.At)

	case common.StepOpAddPage:
		size := r.opts.DefaultPageSize
		if s.Size != nil {
			size = *s.Size
		}
		ref := 0
		if s.Reference != nil {
			ref = *s.Reference
		}
		idx, err := r.doc.AddPage(size, s.Location, ref)
		if err != nil {
			return nil, err
		}
		return map[string]int{"page": idx, "pages": r.doc.Pages()}, nil

	case common.StepOpValidate:
		h, err := r.doc.Validate()
		if err != nil {
			return nil, err
		}
		return h, h.Err()

	case common.StepOpDump:
		clip := 0
		if !r.opts.ShowContent {
			clip = clipContent
		}
		return r.doc.Snapshot().Tree(clip), nil
	}
	return nil, fmt.Errorf("unsupported operation %s", s.Op)
}

// Inserted is the result of placing text into frame.
type Inserted struct {
	Length   int              `yaml:"length"`
	Encoding string           `yaml:"encoding,omitempty"`
	Overflow *frames.Overflow `yaml:"overflow,omitempty"`
}

func (r *runner) insert(s Step) (any, error) {
	var res Inserted

	text := ""
	if s.Text != nil {
		text = *s.Text
	} else {
		path := s.File
		if !filepath.IsAbs(path) && len(r.opts.BaseDir) > 0 {
			path = filepath.Join(r.opts.BaseDir, path)
		}
		t, err := textsrc.ReadFile(path, r.opts.TextEncoding)
		if err != nil {
			return nil, err
		}
		if !t.Certain {
			r.log.Warn("Text encoding guessed", zap.String("file", path), zap.String("encoding", t.Encoding))
		}
		text, res.Encoding = t.Content, t.Encoding
	}

	var err error
	switch {
	case s.Position != nil:
		err = r.doc.InsertContent(*s.At, text, *s.Position)
	case s.Append:
		err = r.doc.AppendContent(*s.At, text)
	default:
		err = r.doc.SetContent(*s.At, text)
	}
	if err != nil {
		return nil, err
	}

	f, err := r.doc.Frame(*s.At)
	if err != nil {
		return nil, err
	}
	res.Length = f.Length()

	switch o, err := r.doc.DetectOverflow(*s.At); {
	case err == nil:
		res.Overflow = &o
	case !errors.Is(err, frames.ErrNoOracle):
		return nil, err
	}
	return res, nil
}

// Discarded is reported when threading failed and partial chain was removed.
type Discarded struct {
	Page      int `yaml:"failed_page"`
	Discarded int `yaml:"discarded"`
}

func (r *runner) thread(s Step) (any, error) {
	res, err := r.doc.CreateThreadedChain(s.Start, s.End, r.bounds(s))
	if err == nil {
		return res, nil
	}

	var te *frames.ThreadError
	if !errors.As(err, &te) {
		return nil, err
	}
	if r.opts.OnThreadFailure == common.ThreadFailurePolicyDiscard {
		n := r.doc.Discard(te.Created)
		r.log.Info("Partial chain discarded", zap.Int("page", te.Page), zap.Int("frames", n))
		return Discarded{Page: te.Page, Discarded: n}, err
	}
	return frames.Threading{Created: te.Created, ChainLength: len(te.Created)}, err
}

// PageFrames lists frames of a single page.
type PageFrames struct {
	Page   int            `yaml:"page"`
	Frames []frames.Frame `yaml:"frames"`
}

func (r *runner) list(s Step) (any, error) {
	pages := make([]int, 0, r.doc.Pages())
	if s.Page != nil {
		pages = append(pages, *s.Page)
	} else {
		for i := range r.doc.Pages() {
			pages = append(pages, i)
		}
	}

	res := make([]PageFrames, 0, len(pages))
	for _, pg := range pages {
		fs, err := r.doc.Frames(pg)
		if err != nil {
			return nil, err
		}
		for i := range fs {
			fs[i] = r.clip(fs[i])
		}
		res = append(res, PageFrames{Page: pg, Frames: fs})
	}
	return res, nil
}

func (r *runner) clip(f frames.Frame) frames.Frame {
	if r.opts.ShowContent {
		return f
	}
	if runes := []rune(f.Content); len(runes) > clipContent {
		f.Content = string(runes[:clipContent]) + "..."
	}
	return f
}
