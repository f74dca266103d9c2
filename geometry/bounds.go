// Package geometry describes frame rectangles and checks them against the page
// they are placed on. All values are in points measured from the top-left
// corner of the page.
package geometry

import (
	"fmt"
	"strconv"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// Bounds is a frame rectangle in page coordinates. The order of fields
// follows the usual geometric bounds notation: top, left, bottom, right.
type Bounds struct {
	Top    float64
	Left   float64
	Bottom float64
	Right  float64
}

// PageSize is the fixed extent of a page.
type PageSize struct {
	Width  float64
	Height float64
}

func (b Bounds) Width() float64 {
	return b.Right - b.Left
}

func (b Bounds) Height() float64 {
	return b.Bottom - b.Top
}

// Area of the rectangle, zero for degenerate bounds.
func (b Bounds) Area() float64 {
	if b.Width() <= 0 || b.Height() <= 0 {
		return 0
	}
	return b.Width() * b.Height()
}

// Inset shrinks bounds by d on every side. Result may be degenerate.
func (b Bounds) Inset(d float64) Bounds {
	return Bounds{Top: b.Top + d, Left: b.Left + d, Bottom: b.Bottom - d, Right: b.Right - d}
}

// Slice returns bounds as [top, left, bottom, right].
func (b Bounds) Slice() []float64 {
	return []float64{b.Top, b.Left, b.Bottom, b.Right}
}

func (b Bounds) String() string {
	parts := make([]string, 0, 4)
	for _, v := range b.Slice() {
		parts = append(parts, strconv.FormatFloat(v, 'f', -1, 64))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// FromSlice converts [top, left, bottom, right] into Bounds.
func FromSlice(v []float64) (Bounds, error) {
	if len(v) != 4 {
		return Bounds{}, fmt.Errorf("bounds must have exactly 4 values [top, left, bottom, right], got %d", len(v))
	}
	return Bounds{Top: v[0], Left: v[1], Bottom: v[2], Right: v[3]}, nil
}

// MarshalYAML writes bounds as [top, left, bottom, right] flow sequence.
func (b Bounds) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range b.Slice() {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: strconv.FormatFloat(v, 'f', -1, 64)})
	}
	return n, nil
}

func (b *Bounds) UnmarshalYAML(value *yaml.Node) error {
	var v []float64
	if err := value.Decode(&v); err != nil {
		return err
	}
	nb, err := FromSlice(v)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*b = nb
	return nil
}

func (s PageSize) String() string {
	return strconv.FormatFloat(s.Width, 'f', -1, 64) + "x" + strconv.FormatFloat(s.Height, 'f', -1, 64)
}

// Bounds returns rectangle covering the whole page.
func (s PageSize) Bounds() Bounds {
	return Bounds{Bottom: s.Height, Right: s.Width}
}
