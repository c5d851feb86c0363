// Package jigsaw cuts an image into irregular jigsaw pieces.
//
// # Overview
//
// The piece boundaries come from a vector cut-line drawing (SVG), not from
// straight grid lines. The drawing is rasterized into a mask, one flood fill
// is grown per grid cell from the cell center, and each filled region is
// copied out of the source image into its own bounding-box bitmap.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/jigsaw"
//	    "github.com/gogpu/jigsaw/outline"
//	)
//
//	svg, _ := outline.Generate(outline.Config{Width: 800, Height: 600, Rows: 3, Cols: 4})
//	pieces, err := jigsaw.NewCutter().Cut(img, 3, 4, svg)
//
// Importing the outline package registers its SVG rasterizer. Use
// [WithRasterizer] to supply a different one.
//
// # Ordering
//
// Cells are processed in row-major order: all columns of row 0, then row 1,
// and so on. Fills share one mask, so when a cut line leaks, pixels belong to
// the first cell in that order whose fill reaches them. Pieces are returned
// and delivered to a [Sink] in the same order.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left of the source image
//   - X increases right
//   - Y increases down
//
// # Degenerate pieces
//
// A cell whose seed lands on a cut line yields a [Piece] with Degenerate set
// and a 1x1 transparent image. Such pieces are logged at warn level.
package jigsaw

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
