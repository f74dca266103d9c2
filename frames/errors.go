package frames

import (
	"errors"
	"fmt"

	"ftc/geometry"
)

var (
	// ErrInvalidPage is returned when page index does not exist in the document.
	ErrInvalidPage = errors.New("invalid page")
	// ErrInvalidBounds is matched by every bounds validation failure, see geometry.BoundsError.
	ErrInvalidBounds = geometry.ErrInvalidBounds
	// ErrFrameNotFound is returned when frame index is out of range for its page.
	ErrFrameNotFound = errors.New("frame not found")
	// ErrAlreadyLinked is returned when link would replace an existing link.
	ErrAlreadyLinked = errors.New("frame already linked")
	// ErrCircularLink is returned when link would close a loop in a chain.
	ErrCircularLink = errors.New("circular link")
	// ErrInvalidRange is returned when bulk threading range is reversed.
	ErrInvalidRange = errors.New("invalid page range")
	// ErrInvalidPosition is returned when text insertion point is outside of
	// frame content.
	ErrInvalidPosition = errors.New("invalid insertion point")
	// ErrNoOracle is returned by queries which need text measurements when
	// document was created without content oracle.
	ErrNoOracle = errors.New("no content oracle")
)

// FrameNotFoundError reports requested index together with what is
// currently valid on the page.
type FrameNotFoundError struct {
	Page  int
	Index int
	Count int
}

func (e *FrameNotFoundError) Error() string {
	if e.Count == 0 {
		return fmt.Sprintf("frame not found: index %d on page %d, page has no frames", e.Index, e.Page)
	}
	return fmt.Sprintf("frame not found: index %d on page %d, valid range 0..%d (%d frames on page)",
		e.Index, e.Page, e.Count-1, e.Count)
}

func (e *FrameNotFoundError) Is(target error) bool {
	return target == ErrFrameNotFound
}

// ThreadError is returned when bulk threading stops on some page. Frames
// created before the failure stay in the document (linked to each other) and
// are listed in Created, so caller could discard them or continue from Page.
type ThreadError struct {
	Page    int
	Created []Ref
	Err     error
}

func (e *ThreadError) Error() string {
	return fmt.Sprintf("threading stopped on page %d after creating %d frame(s): %v", e.Page, len(e.Created), e.Err)
}

func (e *ThreadError) Unwrap() error {
	return e.Err
}

func invalidPage(page, count int) error {
	if count == 0 {
		return fmt.Errorf("%w: page %d, document has no pages", ErrInvalidPage, page)
	}
	return fmt.Errorf("%w: page %d, valid range 0..%d", ErrInvalidPage, page, count-1)
}
