package config

import (
	"errors"

	validator "github.com/go-playground/validator/v10"

	"ftc/geometry"
)

// checkFrameBounds makes sure default frame fits default page. Individual
// values are checked by field tags.
func checkFrameBounds(sl validator.StructLevel) {
	cfg, ok := sl.Current().Interface().(Config)
	if !ok {
		return
	}
	b, err := cfg.Document.Bounds()
	if err != nil {
		// reported by len tag
		return
	}
	if err := geometry.Validate(b, cfg.Document.PageSize()); err != nil {
		param := b.String()
		var be *geometry.BoundsError
		if errors.As(err, &be) {
			param = be.Kind.Error()
		}
		sl.ReportError(cfg.Document.FrameBounds, "FrameBounds", "frame_bounds", "fits_page", param)
	}
}
