package image

import (
	"image"
	"image/color"
	"strconv"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/jigsaw"
)

// GuideAlpha is the opacity of the source image under the cut lines in a
// guide image.
const GuideAlpha = 70

// Guide renders the faded source image with the cut lines of mask on top:
// the picture a player assembles the pieces over. Pixels of mask equal to
// ink are drawn in ink.
func Guide(src image.Image, mask *jigsaw.Pixmap, ink color.NRGBA) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.DrawMask(dst, dst.Bounds(), src, b.Min, image.NewUniform(color.Alpha{A: GuideAlpha}), image.Point{}, draw.Over)

	for y := 0; y < min(mask.Height(), b.Dy()); y++ {
		for x := 0; x < min(mask.Width(), b.Dx()); x++ {
			if mask.GetPixel(x, y) == ink {
				dst.SetNRGBA(x, y, ink)
			}
		}
	}
	return dst
}

// Assemble draws every piece at its bounds into an image of the given size,
// which puts the source image back together. Degenerate pieces are skipped.
func Assemble(pieces []jigsaw.Piece, size image.Point) *image.NRGBA {
	dst := image.NewNRGBA(image.Rectangle{Max: size})
	for _, p := range pieces {
		if p.Degenerate {
			continue
		}
		draw.Draw(dst, p.Bounds, p.Image, image.Point{}, draw.Over)
	}
	return dst
}

// sheetLabelHeight is the space above each piece for its index.
const sheetLabelHeight = 16

// Sheet lays pieces out in a grid of cols columns, separated by gap pixels,
// each labelled with its index, on an opaque background.
func Sheet(pieces []jigsaw.Piece, cols, gap int, background color.NRGBA) *image.NRGBA {
	if len(pieces) == 0 || cols < 1 {
		return image.NewNRGBA(image.Rect(0, 0, 1, 1))
	}

	var cell image.Point
	for _, p := range pieces {
		s := p.Image.Bounds().Size()
		cell.X = max(cell.X, s.X)
		cell.Y = max(cell.Y, s.Y)
	}
	cell.X = max(cell.X, 7*len(strconv.Itoa(len(pieces)))) // basicfont glyphs are 7 pixels wide
	cell.Y += sheetLabelHeight

	rows := (len(pieces) + cols - 1) / cols
	dst := image.NewNRGBA(image.Rect(0, 0, gap+cols*(cell.X+gap), gap+rows*(cell.Y+gap)))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
	}

	for i, p := range pieces {
		x := gap + (i%cols)*(cell.X+gap)
		y := gap + (i/cols)*(cell.Y+gap)

		d.Dot = fixed.P(x, y+basicfont.Face7x13.Ascent)
		d.DrawString(strconv.Itoa(p.Index))

		r := p.Image.Bounds().Add(image.Pt(x, y+sheetLabelHeight))
		draw.Draw(dst, r, p.Image, image.Point{}, draw.Over)
	}
	return dst
}
