package outline

import (
	"image/color"
	"math"

	"github.com/gogpu/jigsaw"
	"github.com/gogpu/jigsaw/internal/path"
	"github.com/gogpu/jigsaw/internal/raster"
)

// Rasterizer draws SVG cut lines into a mask. It implements
// jigsaw.Rasterizer.
//
// The document's viewBox is stretched over the mask. Without one, document
// units are pixels. Every path is stroked,
// never filled, in the exact ink color without anti-aliasing; strokes
// thinner than two pixels are widened to two.
type Rasterizer struct {
	// StrokeWidth, when positive, replaces the stroke width of every path.
	// It is in mask pixels.
	StrokeWidth float64
}

// Rasterize implements jigsaw.Rasterizer.
func (r *Rasterizer) Rasterize(outline []byte, width, height int, bg, ink color.NRGBA) (*jigsaw.Pixmap, error) {
	d, err := parse(outline)
	if err != nil {
		return nil, err
	}

	m := path.Identity()
	if d.hasViewBox {
		vb := d.viewBox
		m = path.Scale(float64(width)/vb[2], float64(height)/vb[3]).
			Multiply(path.Translate(-vb[0], -vb[1]))
	}
	// Stroke widths scale with the geometric mean of the axis scales.
	unit := math.Sqrt(math.Abs(m.A * m.E))

	pm := jigsaw.NewPixmap(width, height)
	pm.Clear(bg)

	rz := raster.NewRasterizer()
	strokes := 0
	for _, s := range d.strokes {
		w := s.width * unit
		if r.StrokeWidth > 0 {
			w = r.StrokeWidth
		}
		m.Transform(s.polylines)
		for _, line := range s.polylines {
			rz.Stroke(pm, line, w, ink)
			strokes++
		}
	}

	jigsaw.Logger().Debug("outline: rasterized",
		"width", width,
		"height", height,
		"polylines", strokes,
		"ink", pm.Count(ink),
	)
	return pm, nil
}
