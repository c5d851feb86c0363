package jigsaw

import (
	"image"
	"image/color"
)

// Option configures a Cutter during creation.
//
// Example:
//
//	// Pieces placed relative to a view at (120, 40), extraction on 4 workers
//	c := jigsaw.NewCutter(jigsaw.WithOrigin(120, 40), jigsaw.WithWorkers(4))
type Option func(*options)

// options holds optional configuration for a Cutter.
type options struct {
	rasterizer Rasterizer
	origin     image.Point
	inset      image.Point
	background color.NRGBA
	ink        color.NRGBA
	claim      color.NRGBA
	workers    int
}

// DefaultInset is the placement inset applied when WithInset is not given.
// It compensates for the border and padding of the original display surface.
var DefaultInset = image.Pt(4, 7)

// defaultOptions returns the default cutter options.
func defaultOptions() options {
	return options{
		rasterizer: nil, // Falls back to the registered rasterizer
		inset:      DefaultInset,
		background: White,
		ink:        Black,
		claim:      Green,
		workers:    1,
	}
}

// WithRasterizer sets the rasterizer that turns cut-line descriptions into
// masks, overriding the registered one.
func WithRasterizer(r Rasterizer) Option {
	return func(o *options) {
		o.rasterizer = r
	}
}

// WithOrigin sets the display origin added to every piece placement.
func WithOrigin(x, y int) Option {
	return func(o *options) {
		o.origin = image.Pt(x, y)
	}
}

// WithInset sets the fixed visual inset added to every piece placement.
func WithInset(x, y int) Option {
	return func(o *options) {
		o.inset = image.Pt(x, y)
	}
}

// WithColors sets the mask colors: background is passable, ink is what the
// rasterizer draws cut lines with, claim marks pixels a fill has taken.
// claim must differ from both others.
func WithColors(background, ink, claim color.NRGBA) Option {
	return func(o *options) {
		o.background = background
		o.ink = ink
		o.claim = claim
	}
}

// WithWorkers sets the number of goroutines extracting piece bitmaps.
// Fills always run sequentially in row-major order; only the copying out of
// the source image is spread over workers. The default of 1 keeps
// everything on the calling goroutine; 0 or less means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}
