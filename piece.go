package jigsaw

import "image"

// Piece is one cut-out jigsaw piece.
type Piece struct {
	// Image holds the piece pixels. It is Bounds-sized, anchored at (0, 0);
	// pixels outside the region are transparent.
	Image *image.NRGBA

	// Width and Height are the extents of the region, maxX-minX and
	// maxY-minY. They are one less than the image dimensions.
	Width, Height int

	// Placement is the absolute position to draw the piece at: the bounding
	// box minimum plus the display origin and inset.
	Placement image.Point

	// Bounds is the region's bounding box in source image coordinates.
	Bounds image.Rectangle

	// Area is the number of source pixels the piece holds.
	Area int

	// Row and Col identify the grid cell; Index is Row*cols+Col.
	Row, Col, Index int

	// Seed is where the cell's fill started.
	Seed image.Point

	// Degenerate is set when the seed was not on background, so the fill
	// claimed nothing. Image is then a single transparent pixel.
	Degenerate bool
}
