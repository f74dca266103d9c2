package geometry

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidBounds is matched by every bounds validation failure.
	ErrInvalidBounds = errors.New("invalid bounds")
	// ErrNegativeOrigin is returned when left or top is below zero.
	ErrNegativeOrigin = errors.New("negative origin")
	// ErrNonPositiveDimensions is returned when width or height is not positive.
	ErrNonPositiveDimensions = errors.New("non-positive dimensions")
	// ErrOutOfBounds is returned when the frame extends past the page edge.
	ErrOutOfBounds = errors.New("out of page bounds")
)

// BoundsError describes why bounds were rejected. It matches both
// ErrInvalidBounds and its Kind with errors.Is.
type BoundsError struct {
	Kind   error
	Bounds Bounds
	Page   PageSize
	Detail string
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s: bounds %s on page %s: %s", e.Kind, e.Bounds, e.Page, e.Detail)
}

func (e *BoundsError) Unwrap() []error {
	return []error{ErrInvalidBounds, e.Kind}
}

// Validate checks frame bounds against page size. Checks are performed in
// fixed order: origin, dimensions, page extent - first failure wins. NaN or
// infinite values make no rectangle and are reported as ErrNonPositiveDimensions.
func Validate(b Bounds, page PageSize) error {
	fail := func(kind error, format string, args ...any) error {
		return &BoundsError{Kind: kind, Bounds: b, Page: page, Detail: fmt.Sprintf(format, args...)}
	}
	for _, v := range b.Slice() {
		if !finite(v) {
			return fail(ErrNonPositiveDimensions, "value %g is not a finite number", v)
		}
	}
	if !page.Valid() {
		return fail(ErrOutOfBounds, "page size is not positive finite")
	}
	switch {
	case b.Left < 0:
		return fail(ErrNegativeOrigin, "left (%g) < 0", b.Left)
	case b.Top < 0:
		return fail(ErrNegativeOrigin, "top (%g) < 0", b.Top)
	}
	switch {
	case b.Right <= b.Left:
		return fail(ErrNonPositiveDimensions, "right (%g) <= left (%g)", b.Right, b.Left)
	case b.Bottom <= b.Top:
		return fail(ErrNonPositiveDimensions, "bottom (%g) <= top (%g)", b.Bottom, b.Top)
	}
	switch {
	case b.Right > page.Width:
		return fail(ErrOutOfBounds, "right (%g) > page width (%g)", b.Right, page.Width)
	case b.Bottom > page.Height:
		return fail(ErrOutOfBounds, "bottom (%g) > page height (%g)", b.Bottom, page.Height)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Valid reports whether both page dimensions are positive finite numbers.
func (s PageSize) Valid() bool {
	return finite(s.Width) && finite(s.Height) && s.Width > 0 && s.Height > 0
}
