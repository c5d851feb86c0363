package jigsaw

import "image"

// Region is the connected set of mask pixels one fill claimed, together
// with the seed it started from. Points are unique and 4-connected to Seed.
type Region struct {
	Seed   image.Point
	Points []image.Point
}

// Empty reports whether the region claimed no pixels.
func (r Region) Empty() bool {
	return len(r.Points) == 0
}

// Bounds returns the smallest rectangle containing every point: Min is
// (minX, minY) and Max is (maxX+1, maxY+1). An empty region has empty bounds.
func (r Region) Bounds() image.Rectangle {
	if len(r.Points) == 0 {
		return image.Rectangle{}
	}
	b := image.Rectangle{Min: r.Points[0], Max: r.Points[0]}
	for _, p := range r.Points[1:] {
		b.Min.X = min(b.Min.X, p.X)
		b.Min.Y = min(b.Min.Y, p.Y)
		b.Max.X = max(b.Max.X, p.X)
		b.Max.Y = max(b.Max.Y, p.Y)
	}
	b.Max = b.Max.Add(image.Pt(1, 1))
	return b
}
