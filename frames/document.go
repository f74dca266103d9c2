// Package frames implements frame registry and flow threading for paged
// documents.
//
// Frames live on pages and are addressed by page relative index (Loc). Such
// indices change whenever a frame is added to or removed from the page, so
// every frame also has a stable Handle. Links between frames (next/previous)
// are kept as relations between handles and may outlive removed frames - those
// are reported as broken links when queried.
//
// Document is safe for concurrent use: mutating operations are serialized and
// queries observe consistent state.
package frames

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"ftc/common"
	"ftc/geometry"
)

// Handle is stable frame identity. Handles are never reused within a
// document, zero means "no frame".
type Handle uint64

func (h Handle) String() string {
	return "#" + strconv.FormatUint(uint64(h), 10)
}

// Loc addresses frame by page and page relative index. It is only valid until
// next mutation of that page.
type Loc struct {
	Page  int `yaml:"page"`
	Index int `yaml:"frame"`
}

func (l Loc) String() string {
	return fmt.Sprintf("%d:%d", l.Page, l.Index)
}

// Ref is a location together with stable handle of the frame.
type Ref struct {
	Loc    `yaml:",inline"`
	Handle Handle `yaml:"handle"`
}

type frame struct {
	page    *page
	bounds  geometry.Bounds
	content string
	label   string
}

type page struct {
	size   geometry.PageSize
	frames []Handle
}

// Document owns pages, frames and links between them.
type Document struct {
	mu sync.RWMutex

	id     uuid.UUID
	name   string
	log    *zap.Logger
	oracle Oracle

	pages []*page
	arena map[Handle]*frame
	next  map[Handle]Handle
	prev  map[Handle]Handle

	lastHandle Handle
	labelSeq   int
}

// Option configures Document.
type Option func(*Document)

// WithLogger sets logger for document operations.
func WithLogger(log *zap.Logger) Option {
	return func(d *Document) {
		if log != nil {
			d.log = log
		}
	}
}

// WithOracle sets content oracle used for overflow detection.
func WithOracle(o Oracle) Option {
	return func(d *Document) {
		d.oracle = o
	}
}

// WithName sets document name, it is also used as default frame label prefix.
func WithName(name string) Option {
	return func(d *Document) {
		d.name = name
	}
}

// WithID sets document ID instead of generating new one.
func WithID(id uuid.UUID) Option {
	return func(d *Document) {
		d.id = id
	}
}

// New creates document with given pages.
func New(sizes []geometry.PageSize, options ...Option) (*Document, error) {
	d := &Document{
		name:  "document",
		log:   zap.NewNop(),
		arena: make(map[Handle]*frame),
		next:  make(map[Handle]Handle),
		prev:  make(map[Handle]Handle),
	}
	for _, setOpt := range options {
		setOpt(d)
	}
	if d.id == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("unable to generate document ID: %w", err)
		}
		d.id = id
	}
	for i, size := range sizes {
		if err := checkPageSize(size); err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}
		d.pages = append(d.pages, &page{size: size})
	}
	d.log = d.log.With(zap.Stringer("doc", d.id))
	d.log.Debug("Document created", zap.String("name", d.name), zap.Int("pages", len(d.pages)))
	return d, nil
}

// NewUniform creates document with count pages of the same size.
func NewUniform(count int, size geometry.PageSize, options ...Option) (*Document, error) {
	if count < 0 {
		return nil, fmt.Errorf("negative page count %d", count)
	}
	sizes := make([]geometry.PageSize, count)
	for i := range sizes {
		sizes[i] = size
	}
	return New(sizes, options...)
}

func checkPageSize(size geometry.PageSize) error {
	if !size.Valid() {
		return fmt.Errorf("%w: page size %s must be positive finite", ErrInvalidPage, size)
	}
	return nil
}

func (d *Document) ID() uuid.UUID {
	return d.id
}

func (d *Document) Name() string {
	return d.name
}

// Pages returns number of pages in the document.
func (d *Document) Pages() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.pages)
}

// PageSize returns size of the page.
func (d *Document) PageSize(pageIdx int) (geometry.PageSize, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	p, err := d.pageAt(pageIdx)
	if err != nil {
		return geometry.PageSize{}, err
	}
	return p.size, nil
}

// AddPage inserts new page and returns its index. ref is only used for
// "after" and "before" locations. Existing pages may shift, frame handles
// are not affected.
func (d *Document) AddPage(size geometry.PageSize, where common.PageLocation, ref int) (int, error) {
	if err := checkPageSize(size); err != nil {
		return 0, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	var pos int
	switch where {
	case common.PageLocationAtEnd:
		pos = len(d.pages)
	case common.PageLocationAtBeginning:
		pos = 0
	case common.PageLocationAfter, common.PageLocationBefore:
		if _, err := d.pageAt(ref); err != nil {
			return 0, err
		}
		pos = ref
		if where == common.PageLocationAfter {
			pos++
		}
	default:
		return 0, fmt.Errorf("unsupported page location %s", where)
	}

	d.pages = append(d.pages, nil)
	copy(d.pages[pos+1:], d.pages[pos:])
	d.pages[pos] = &page{size: size}

	d.log.Debug("Page added", zap.Int("page", pos), zap.Stringer("size", size), zap.Stringer("location", where))
	return pos, nil
}

// pageAt expects lock to be held.
func (d *Document) pageAt(pageIdx int) (*page, error) {
	if pageIdx < 0 || pageIdx >= len(d.pages) {
		return nil, invalidPage(pageIdx, len(d.pages))
	}
	return d.pages[pageIdx], nil
}

func (d *Document) nextLabel() string {
	d.labelSeq++
	prefix := slug.Make(d.name)
	if len(prefix) == 0 {
		prefix = "frame"
	}
	return prefix + "-" + strconv.Itoa(d.labelSeq)
}
