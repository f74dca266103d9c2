// Package script runs YAML scenarios against a frame document: every step
// is one document operation and produces a result record.
package script

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/rupor-github/gencfg"
	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"

	"ftc/common"
	"ftc/frames"
	"ftc/geometry"
)

// DocumentSetup describes pages of the document scenario works on. Either
// explicit list of sizes or number of pages with the same size could be
// specified. Zero width or height means configured default.
type DocumentSetup struct {
	Name   string              `yaml:"name,omitempty"`
	Pages  int                 `yaml:"pages,omitempty" validate:"gte=0"`
	Width  float64             `yaml:"width,omitempty" validate:"gte=0"`
	Height float64             `yaml:"height,omitempty" validate:"gte=0"`
	Sizes  []geometry.PageSize `yaml:"sizes,omitempty"`
}

// Step is a single operation. Which fields are used depends on Op.
type Step struct {
	Op        common.StepOp       `yaml:"op"`
	Comment   string              `yaml:"comment,omitempty"`
	At        *frames.Loc         `yaml:"at,omitempty"`
	From      *frames.Loc         `yaml:"from,omitempty"`
	To        *frames.Loc         `yaml:"to,omitempty"`
	Page      *int                `yaml:"page,omitempty"`
	Start     int                 `yaml:"start,omitempty"`
	End       int                 `yaml:"end,omitempty"`
	Bounds    *geometry.Bounds    `yaml:"bounds,omitempty"`
	Text      *string             `yaml:"text,omitempty"`
	File      string              `yaml:"file,omitempty"`
	Append    bool                `yaml:"append,omitempty"`
	// Position inserts text after given number of characters, -1 is the end.
	Position  *int                `yaml:"position,omitempty"`
	Label     string              `yaml:"label,omitempty"`
	Location  common.PageLocation `yaml:"location,omitempty"`
	Reference *int                `yaml:"reference,omitempty"`
	Size      *geometry.PageSize  `yaml:"size,omitempty"`
}

type Scenario struct {
	Document DocumentSetup `yaml:"document"`
	Steps    []Step        `yaml:"steps" validate:"required"`
}

var errMissing = errors.New("missing required field")

// PageSizes returns sizes of the initial document pages.
func (ds DocumentSetup) PageSizes(def geometry.PageSize) []geometry.PageSize {
	if len(ds.Sizes) > 0 {
		return ds.Sizes
	}
	size := def
	if ds.Width > 0 {
		size.Width = ds.Width
	}
	if ds.Height > 0 {
		size.Height = ds.Height
	}
	sizes := make([]geometry.PageSize, ds.Pages)
	for i := range sizes {
		sizes[i] = size
	}
	return sizes
}

// check makes sure step has everything its operation needs, so that scenario
// errors are reported before document is touched.
func (s Step) check() error {
	need := func(ok bool, field string) error {
		if !ok {
			return fmt.Errorf("%w %q for %s", errMissing, field, s.Op)
		}
		return nil
	}
	switch s.Op {
	case common.StepOpCreate:
		return need(s.Page != nil, "page")
	case common.StepOpRemove, common.StepOpUnlink, common.StepOpOverflow, common.StepOpInfo, common.StepOpChain:
		return need(s.At != nil, "at")
	case common.StepOpLink:
		return multierr.Combine(need(s.From != nil, "from"), need(s.To != nil, "to"))
	case common.StepOpInsert:
		if s.Text != nil && len(s.File) > 0 {
			return fmt.Errorf("only one of \"text\" or \"file\" could be used for %s", s.Op)
		}
		if s.Append && s.Position != nil {
			return fmt.Errorf("only one of \"append\" or \"position\" could be used for %s", s.Op)
		}
		return multierr.Combine(need(s.At != nil, "at"), need(s.Text != nil || len(s.File) > 0, "text"))
	case common.StepOpAddPage:
		if s.Location.NeedsReference() {
			return need(s.Reference != nil, "reference")
		}
	case common.StepOpThread, common.StepOpReconcile, common.StepOpList, common.StepOpValidate, common.StepOpDump:
	default:
		return fmt.Errorf("unsupported operation %s", s.Op)
	}
	return nil
}

// Parse decodes scenario, unknown fields are rejected.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("failed to decode scenario: %w", err)
	}
	if err := gencfg.Validate(&sc); err != nil {
		return nil, fmt.Errorf("failed to validate scenario: %w", err)
	}
	var err error
	for i, s := range sc.Steps {
		if e := s.check(); e != nil {
			err = multierr.Append(err, fmt.Errorf("step %d: %w", i+1, e))
		}
	}
	if err != nil {
		return nil, err
	}
	return &sc, nil
}

// Load reads scenario from file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read scenario: %w", err)
	}
	return Parse(data)
}
