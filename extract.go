package jigsaw

import "image"

// Extract copies the pixels of r out of src into a bitmap the size of the
// region's bounding box. Pixels of the box outside the region stay
// transparent; region pixels are copied byte for byte.
//
// The placement is the box minimum plus origin plus inset. An empty region
// yields a degenerate piece: a 1x1 transparent image with zero extents,
// placed at origin plus inset.
//
// Row, Col and Index are left for the caller to fill in.
func Extract(r Region, src *Pixmap, origin, inset image.Point) Piece {
	if r.Empty() {
		return Piece{
			Image:      image.NewNRGBA(image.Rect(0, 0, 1, 1)),
			Placement:  origin.Add(inset),
			Seed:       r.Seed,
			Degenerate: true,
		}
	}

	b := r.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for _, p := range r.Points {
		if !src.inBounds(p.X, p.Y) {
			continue
		}
		si := (p.Y*src.width + p.X) * 4
		di := img.PixOffset(p.X-b.Min.X, p.Y-b.Min.Y)
		copy(img.Pix[di:di+4], src.data[si:si+4])
	}

	return Piece{
		Image:     img,
		Width:     b.Dx() - 1,
		Height:    b.Dy() - 1,
		Placement: b.Min.Add(origin).Add(inset),
		Bounds:    b,
		Area:      len(r.Points),
		Seed:      r.Seed,
	}
}
