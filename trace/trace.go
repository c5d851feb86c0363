// Package trace converts piece bitmaps into vector outlines.
//
// The outline follows the opaque pixels of a piece and is suitable for hit
// testing or drawing a piece border at any scale.
package trace

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gotranspile/gotrace"

	"github.com/gogpu/jigsaw"
)

// ErrEmptyPiece is returned when a piece has no pixels to trace.
var ErrEmptyPiece = errors.New("trace: piece has no pixels")

// Coverage returns a grayscale image of the piece: black where the piece has
// a pixel, white elsewhere. Region pixels copied from a fully transparent
// source pixel count as outside.
func Coverage(p jigsaw.Piece) *image.Gray {
	b := p.Image.Bounds()
	g := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if p.Image.NRGBAAt(x, y).A == 0 {
				g.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return g
}

// Outline traces the piece into an SVG document the size of the piece
// image, in piece-local coordinates.
func Outline(p jigsaw.Piece) ([]byte, error) {
	if p.Degenerate || p.Area == 0 {
		return nil, fmt.Errorf("%w: piece %d", ErrEmptyPiece, p.Index)
	}

	mask := Coverage(p)
	bm := gotrace.BitmapFromGray(mask, nil)

	paths, err := gotrace.Trace(bm, nil)
	if err != nil {
		return nil, fmt.Errorf("trace: piece %d: %w", p.Index, err)
	}
	if paths == nil {
		return nil, fmt.Errorf("%w: piece %d", ErrEmptyPiece, p.Index)
	}

	var buf bytes.Buffer
	sz := mask.Bounds().Size()
	if err := gotrace.Render("svg", nil, &buf, paths, sz.X, sz.Y); err != nil {
		return nil, fmt.Errorf("trace: piece %d: %w", p.Index, err)
	}

	n := 0
	for q := paths; q != nil; q = q.Next {
		n++
	}
	jigsaw.Logger().Debug("trace: outlined piece", "index", p.Index, "paths", n)
	return buf.Bytes(), nil
}
