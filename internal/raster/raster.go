// Package raster draws cut lines into a mask without anti-aliasing.
//
// A pixel is either painted with the exact ink color or left untouched: it
// is painted when its center lies inside the shape. Nothing is blended, so
// the mask holds exactly two colors.
package raster

import (
	"image/color"
	"math"

	"github.com/gogpu/jigsaw/internal/path"
)

// MinStrokeWidth is the thinnest stroke Stroke draws. At two pixels or more
// every row and every column crossed by a segment shares at least one
// painted pixel with its neighbor, so the stroke is 4-connected at any
// slope and a 4-connected fill cannot slip through it diagonally.
const MinStrokeWidth = 2.0

// Pixmap is an interface for writing pixels.
type Pixmap interface {
	Width() int
	Height() int
	SetPixel(x, y int, c color.NRGBA)
}

// SpanFiller is an optional interface that pixmaps can implement for optimized span filling.
type SpanFiller interface {
	FillSpan(x1, x2, y int, c color.NRGBA)
}

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// Rasterizer performs scanline rasterization.
type Rasterizer struct {
	aet   *ActiveEdgeTable
	edges []Edge
}

// NewRasterizer creates a new rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{aet: NewActiveEdgeTable()}
}

// Fill paints the closed polygon through points. The polygon is closed
// implicitly from the last point back to the first.
func (r *Rasterizer) Fill(pixmap Pixmap, points []path.Point, fillRule FillRule, c color.NRGBA) {
	if len(points) < 3 {
		return
	}

	r.edges = r.edges[:0]
	for i := range points {
		p0 := points[i]
		p1 := points[(i+1)%len(points)]
		// Horizontal edges never cross a scanline.
		if p0.Y == p1.Y {
			continue
		}
		r.edges = append(r.edges, NewEdge(p0, p1))
	}
	if len(r.edges) == 0 {
		return
	}

	yMin := math.MaxFloat64
	yMax := -math.MaxFloat64
	for _, e := range r.edges {
		yMin = math.Min(yMin, e.y0)
		yMax = math.Max(yMax, e.y1)
	}

	// Rows whose center lies in [yMin, yMax), clamped to the pixmap.
	yStart := int(math.Max(math.Ceil(yMin-0.5), 0))
	yEnd := int(math.Min(math.Ceil(yMax-0.5), float64(pixmap.Height())))

	for y := yStart; y < yEnd; y++ {
		r.scanline(pixmap, float64(y)+0.5, y, fillRule, c)
	}
}

// scanline processes a single scanline.
func (r *Rasterizer) scanline(pixmap Pixmap, scanY float64, y int, fillRule FillRule, c color.NRGBA) {
	r.aet.Clear()
	for _, edge := range r.edges {
		if edge.Crosses(scanY) {
			r.aet.AddAtY(edge, scanY)
		}
	}
	if len(r.aet.Edges()) == 0 {
		return
	}
	r.aet.Sort()

	if fillRule == FillRuleNonZero {
		r.fillNonZero(pixmap, r.aet.Edges(), y, c)
	} else {
		r.fillEvenOdd(pixmap, r.aet.Edges(), y, c)
	}
}

// fillNonZero fills using the non-zero winding rule.
func (r *Rasterizer) fillNonZero(pixmap Pixmap, edges []ActiveEdge, y int, c color.NRGBA) {
	winding := 0
	var x1 float64
	for _, edge := range edges {
		if winding == 0 {
			x1 = edge.x
		}
		winding += edge.dir
		if winding == 0 {
			fillSpan(pixmap, x1, edge.x, y, c)
		}
	}
}

// fillEvenOdd fills using the even-odd rule.
func (r *Rasterizer) fillEvenOdd(pixmap Pixmap, edges []ActiveEdge, y int, c color.NRGBA) {
	for i := 0; i+1 < len(edges); i += 2 {
		fillSpan(pixmap, edges[i].x, edges[i+1].x, y, c)
	}
}

// fillSpan paints the pixels of row y whose centers lie in [x1, x2).
func fillSpan(pixmap Pixmap, x1, x2 float64, y int, c color.NRGBA) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	start := int(math.Max(math.Ceil(x1-0.5), 0))
	end := int(math.Min(math.Ceil(x2-0.5), float64(pixmap.Width())))
	if start >= end {
		return
	}

	if spanFiller, ok := pixmap.(SpanFiller); ok {
		spanFiller.FillSpan(start, end, y, c)
		return
	}
	for x := start; x < end; x++ {
		pixmap.SetPixel(x, y, c)
	}
}

// Stroke paints a polyline of the given width: one quad per segment and a
// square at every vertex, which serves as both join and cap. Widths below
// MinStrokeWidth are raised to it.
func (r *Rasterizer) Stroke(pixmap Pixmap, points []path.Point, lineWidth float64, c color.NRGBA) {
	if len(points) == 0 {
		return
	}
	lineWidth = math.Max(lineWidth, MinStrokeWidth)

	for i := 0; i+1 < len(points); i++ {
		r.strokeLine(pixmap, points[i], points[i+1], lineWidth, c)
	}
	for _, p := range points {
		r.dot(pixmap, p, lineWidth, c)
	}
}

// strokeLine draws a thick line as a quad around the segment.
func (r *Rasterizer) strokeLine(pixmap Pixmap, p0, p1 path.Point, width float64, c color.NRGBA) {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	length := math.Sqrt(dx*dx + dy*dy)
	if length < 0.001 {
		return
	}

	// Perpendicular offset of half the width.
	nx := -dy / length * width / 2
	ny := dx / length * width / 2

	quad := []path.Point{
		{X: p0.X + nx, Y: p0.Y + ny},
		{X: p0.X - nx, Y: p0.Y - ny},
		{X: p1.X - nx, Y: p1.Y - ny},
		{X: p1.X + nx, Y: p1.Y + ny},
	}
	r.Fill(pixmap, quad, FillRuleNonZero, c)
}

// dot draws an axis-aligned square of side width centered on p.
func (r *Rasterizer) dot(pixmap Pixmap, p path.Point, width float64, c color.NRGBA) {
	h := width / 2
	square := []path.Point{
		{X: p.X - h, Y: p.Y - h},
		{X: p.X + h, Y: p.Y - h},
		{X: p.X + h, Y: p.Y + h},
		{X: p.X - h, Y: p.Y + h},
	}
	r.Fill(pixmap, square, FillRuleNonZero, c)
}
