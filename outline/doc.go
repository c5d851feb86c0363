// Package outline reads and writes jigsaw cut-line drawings in SVG.
//
// Importing the package registers [Rasterizer] with jigsaw, so a Cutter
// created without jigsaw.WithRasterizer accepts SVG cut lines:
//
//	import _ "github.com/gogpu/jigsaw/outline"
//
// [Generate] produces the classic tab-and-blank cut lines for a grid.
package outline

import "github.com/gogpu/jigsaw"

func init() {
	jigsaw.RegisterRasterizer(&Rasterizer{})
}
