package jigsaw

import (
	"image"
	"testing"
)

func TestRegionBounds(t *testing.T) {
	tests := []struct {
		name   string
		points []image.Point
		want   image.Rectangle
	}{
		{"empty", nil, image.Rectangle{}},
		{"single", []image.Point{{3, 4}}, image.Rect(3, 4, 4, 5)},
		{"spread", []image.Point{{5, 2}, {1, 7}, {3, 3}}, image.Rect(1, 2, 6, 8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Region{Points: tt.points}
			if got := r.Bounds(); got != tt.want {
				t.Errorf("Bounds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	src := FromImage(gradient(20, 20))
	// An L shape: a column and a row sharing the corner (2, 3).
	var pts []image.Point
	for y := 3; y <= 9; y++ {
		pts = append(pts, image.Pt(2, y))
	}
	for x := 3; x <= 6; x++ {
		pts = append(pts, image.Pt(x, 9))
	}
	r := Region{Seed: image.Pt(2, 3), Points: pts}

	p := Extract(r, src, image.Pt(100, 200), image.Pt(4, 7))

	if p.Degenerate {
		t.Fatal("piece is degenerate")
	}
	if got, want := p.Image.Bounds(), image.Rect(0, 0, 5, 7); got != want {
		t.Errorf("image bounds = %v, want %v", got, want)
	}
	if p.Width != 4 || p.Height != 6 {
		t.Errorf("extents = %dx%d, want 4x6", p.Width, p.Height)
	}
	if want := image.Pt(2+100+4, 3+200+7); p.Placement != want {
		t.Errorf("Placement = %v, want %v", p.Placement, want)
	}
	if want := image.Rect(2, 3, 7, 10); p.Bounds != want {
		t.Errorf("Bounds = %v, want %v", p.Bounds, want)
	}
	if p.Area != len(pts) {
		t.Errorf("Area = %d, want %d", p.Area, len(pts))
	}

	// Region pixels are copied exactly, everything else is transparent.
	in := make(map[image.Point]bool)
	for _, q := range pts {
		in[q] = true
	}
	for y := range 7 {
		for x := range 5 {
			s := image.Pt(x+2, y+3)
			got := p.Image.NRGBAAt(x, y)
			if in[s] {
				if want := src.GetPixel(s.X, s.Y); got != want {
					t.Errorf("pixel %v = %v, want %v", s, got, want)
				}
			} else if got != Transparent {
				t.Errorf("pixel %v outside the region = %v, want transparent", s, got)
			}
		}
	}
}

func TestExtract_Tight(t *testing.T) {
	src := FromImage(gradient(30, 30))
	r := Region{Points: []image.Point{{10, 12}, {11, 12}, {11, 13}}}
	p := Extract(r, src, image.Point{}, image.Point{})

	b := p.Image.Bounds()
	hasOpaque := func(x0, y0, x1, y1 int) bool {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				if p.Image.NRGBAAt(x, y).A != 0 {
					return true
				}
			}
		}
		return false
	}
	if !hasOpaque(0, 0, 1, b.Dy()) || !hasOpaque(b.Dx()-1, 0, b.Dx(), b.Dy()) {
		t.Error("left or right column of the box is empty")
	}
	if !hasOpaque(0, 0, b.Dx(), 1) || !hasOpaque(0, b.Dy()-1, b.Dx(), b.Dy()) {
		t.Error("top or bottom row of the box is empty")
	}
}

func TestExtract_Degenerate(t *testing.T) {
	src := FromImage(gradient(10, 10))
	p := Extract(Region{Seed: image.Pt(15, 3)}, src, image.Pt(10, 20), DefaultInset)

	if !p.Degenerate {
		t.Error("Degenerate = false, want true")
	}
	if got := p.Image.Bounds(); got != image.Rect(0, 0, 1, 1) {
		t.Errorf("image bounds = %v, want 1x1", got)
	}
	if p.Image.NRGBAAt(0, 0) != Transparent {
		t.Error("degenerate image is not transparent")
	}
	if p.Width != 0 || p.Height != 0 || p.Area != 0 {
		t.Errorf("extents = %dx%d area %d, want zeros", p.Width, p.Height, p.Area)
	}
	if want := image.Pt(14, 27); p.Placement != want {
		t.Errorf("Placement = %v, want %v", p.Placement, want)
	}
	if p.Seed != image.Pt(15, 3) {
		t.Errorf("Seed = %v, want (15,3)", p.Seed)
	}
}
