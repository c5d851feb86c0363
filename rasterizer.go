package jigsaw

import (
	"image/color"
	"sync"
)

// Rasterizer turns a vector cut-line description into a mask pixmap.
//
// The result must be exactly width x height, every pixel either exactly bg
// or exactly ink. Intermediate shades at the edge of a cut line let a fill
// leak across it. A description that cannot be parsed is reported as an
// error, which Cut returns unchanged.
type Rasterizer interface {
	Rasterize(outline []byte, width, height int, bg, ink color.NRGBA) (*Pixmap, error)
}

// RasterizerFunc adapts a function to the Rasterizer interface.
type RasterizerFunc func(outline []byte, width, height int, bg, ink color.NRGBA) (*Pixmap, error)

// Rasterize calls f.
func (f RasterizerFunc) Rasterize(outline []byte, width, height int, bg, ink color.NRGBA) (*Pixmap, error) {
	return f(outline, width, height, bg, ink)
}

var (
	rasterizerMu sync.RWMutex
	rasterizer   Rasterizer
)

// RegisterRasterizer sets the rasterizer used by Cutters created without
// WithRasterizer.
//
// Only one rasterizer can be registered. Subsequent calls replace the
// previous one. Typical usage via blank import:
//
//	import _ "github.com/gogpu/jigsaw/outline" // SVG cut lines
func RegisterRasterizer(r Rasterizer) {
	rasterizerMu.Lock()
	rasterizer = r
	rasterizerMu.Unlock()
}

// GetRasterizer returns the registered Rasterizer, or nil if none.
func GetRasterizer() Rasterizer {
	rasterizerMu.RLock()
	r := rasterizer
	rasterizerMu.RUnlock()
	return r
}
