package measure

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"ftc/geometry"
)

// PointsPerInch is used to convert user supplied inches.
const PointsPerInch = 72.0

// Common page sizes in points.
var PageSizes = map[string]geometry.PageSize{
	"letter": {Width: 612, Height: 792},
	"legal":  {Width: 612, Height: 1008},
	"6x9":    {Width: 432, Height: 648},
	"5x8":    {Width: 360, Height: 576},
	"a4":     {Width: 595, Height: 842},
	"a5":     {Width: 420, Height: 595},
}

// Margins in points.
type Margins struct {
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
}

// ParsePageSize accepts named size (letter, 6x9, a4...) or WxH in inches.
func ParsePageSize(s string) (geometry.PageSize, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if size, ok := PageSizes[s]; ok {
		return size, nil
	}
	if w, h, ok := strings.Cut(s, "x"); ok {
		wv, errW := strconv.ParseFloat(w, 64)
		hv, errH := strconv.ParseFloat(h, 64)
		if errW == nil && errH == nil && wv > 0 && hv > 0 {
			return geometry.PageSize{Width: wv * PointsPerInch, Height: hv * PointsPerInch}, nil
		}
	}
	return geometry.PageSize{}, fmt.Errorf("invalid page size %q: use named size (letter, 6x9, ...) or WxH in inches", s)
}

// ParseMargins accepts one value (all sides), two values (top/bottom,
// left/right) or four values (top, bottom, left, right), all in inches.
func ParseMargins(s string) (Margins, error) {
	var v []float64
	for part := range strings.SplitSeq(s, ",") {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return Margins{}, fmt.Errorf("invalid margin value %q: %w", part, err)
		}
		if f < 0 {
			return Margins{}, fmt.Errorf("negative margin value %q", part)
		}
		v = append(v, f*PointsPerInch)
	}
	switch len(v) {
	case 1:
		return Margins{Top: v[0], Bottom: v[0], Left: v[0], Right: v[0]}, nil
	case 2:
		return Margins{Top: v[0], Bottom: v[0], Left: v[1], Right: v[1]}, nil
	case 4:
		return Margins{Top: v[0], Bottom: v[1], Left: v[2], Right: v[3]}, nil
	default:
		return Margins{}, fmt.Errorf("invalid margins %q: use single value, two values (TB,LR) or four values (T,B,L,R)", s)
	}
}

// TextArea returns page area inside margins.
func (m Margins) TextArea(size geometry.PageSize) geometry.Bounds {
	return geometry.Bounds{Top: m.Top, Left: m.Left, Bottom: size.Height - m.Bottom, Right: size.Width - m.Right}
}

// PageEstimate is the result of page count estimation.
type PageEstimate struct {
	Pages        int      `yaml:"estimated_pages"`
	Words        int      `yaml:"word_count"`
	Characters   int      `yaml:"character_count"`
	CharsPerPage int      `yaml:"chars_per_page"`
	Confidence   string   `yaml:"confidence"`
	Assumptions  []string `yaml:"assumptions"`
}

// EstimatePages estimates how many pages text occupies when poured into the
// text area of pages of the given size. named tells whether page size was one
// of the well known sizes, which affects confidence only.
func (e Estimator) EstimatePages(text string, size geometry.PageSize, margins Margins, named bool) (PageEstimate, error) {
	area := margins.TextArea(size)
	if area.Area() == 0 {
		return PageEstimate{}, fmt.Errorf("margins leave no text area on page %s", size)
	}
	perPage := e.Capacity(area)
	if perPage == 0 {
		return PageEstimate{}, fmt.Errorf("no characters fit on page %s with font size %gpt", size, e.fontSize())
	}

	est := PageEstimate{
		Words:        len(strings.Fields(text)),
		Characters:   Length(text),
		CharsPerPage: perPage,
		Assumptions: []string{
			fmt.Sprintf("Font size: %gpt", e.fontSize()),
			fmt.Sprintf("Leading: %.1fpt", e.leading()),
			fmt.Sprintf("Average char width: %.1fpt", e.charWidth()),
			"Assumes standard paragraph spacing",
		},
	}
	est.Pages = max(1, int(math.Ceil(float64(est.Characters)/float64(perPage))))

	switch {
	case e.fontSize() < 10 || e.fontSize() > 14:
		est.Confidence = "medium"
		est.Assumptions = append(est.Assumptions, "Unusual font size may affect accuracy")
	case !named:
		est.Confidence = "medium"
		est.Assumptions = append(est.Assumptions, "Custom page size may affect accuracy")
	default:
		est.Confidence = "high"
	}
	return est, nil
}
