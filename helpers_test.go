package jigsaw

import (
	"image"
	"image/color"
)

// gradient returns an opaque image whose pixels are all distinct for sizes
// up to 256x256: R is x and G is y.
func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: uint8((x + y) / 2), A: 255}) //nolint:gosec // test sizes stay below 256
		}
	}
	return img
}

// lines returns a rasterizer drawing one-pixel cut lines at the given
// columns and rows.
func lines(cols, rows []int) Rasterizer {
	return RasterizerFunc(func(_ []byte, w, h int, bg, ink color.NRGBA) (*Pixmap, error) {
		pm := NewPixmap(w, h)
		pm.Clear(bg)
		for _, x := range cols {
			for y := range h {
				pm.SetPixel(x, y, ink)
			}
		}
		for _, y := range rows {
			pm.FillSpan(0, w, y, ink)
		}
		return pm, nil
	})
}

// newMask rasterizes lines into a fresh mask with the default colors.
func newMask(w, h int, cols, rows []int) *Mask {
	pm, _ := lines(cols, rows).Rasterize(nil, w, h, White, Black)
	m, err := NewMask(pm, White, Green)
	if err != nil {
		panic(err)
	}
	return m
}

// pointsOf returns the source coordinates of the opaque pixels of p.
func pointsOf(p Piece) []image.Point {
	var pts []image.Point
	if p.Degenerate {
		return pts
	}
	b := p.Image.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if p.Image.NRGBAAt(x, y).A != 0 {
				pts = append(pts, image.Pt(x+p.Bounds.Min.X, y+p.Bounds.Min.Y))
			}
		}
	}
	return pts
}
