package path

import (
	"math"
	"testing"
)

func TestFlatten_Lines(t *testing.T) {
	tests := []struct {
		name     string
		elements []Element
		want     [][]Point
	}{
		{
			name: "open polyline",
			elements: []Element{
				MoveTo{Point{0, 0}}, LineTo{Point{10, 0}}, LineTo{Point{10, 10}},
			},
			want: [][]Point{{{0, 0}, {10, 0}, {10, 10}}},
		},
		{
			name: "closed",
			elements: []Element{
				MoveTo{Point{1, 1}}, LineTo{Point{5, 1}}, LineTo{Point{5, 5}}, Close{},
			},
			want: [][]Point{{{1, 1}, {5, 1}, {5, 5}, {1, 1}}},
		},
		{
			name: "two subpaths",
			elements: []Element{
				MoveTo{Point{0, 0}}, LineTo{Point{1, 0}},
				MoveTo{Point{0, 5}}, LineTo{Point{1, 5}},
			},
			want: [][]Point{{{0, 0}, {1, 0}}, {{0, 5}, {1, 5}}},
		},
		{
			name:     "lone move",
			elements: []Element{MoveTo{Point{3, 4}}},
			want:     [][]Point{{{3, 4}}},
		},
		{
			name:     "line without move starts at origin",
			elements: []Element{LineTo{Point{2, 2}}},
			want:     [][]Point{{{0, 0}, {2, 2}}},
		},
		{
			name: "line after close continues from start",
			elements: []Element{
				MoveTo{Point{1, 1}}, LineTo{Point{4, 1}}, Close{}, LineTo{Point{1, 6}},
			},
			want: [][]Point{{{1, 1}, {4, 1}, {1, 1}}, {{1, 1}, {1, 6}}},
		},
		{
			name:     "empty",
			elements: nil,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Flatten(tt.elements)
			if len(got) != len(tt.want) {
				t.Fatalf("Flatten() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if len(got[i]) != len(tt.want[i]) {
					t.Fatalf("polyline %d = %v, want %v", i, got[i], tt.want[i])
				}
				for j := range got[i] {
					if got[i][j] != tt.want[i][j] {
						t.Errorf("polyline %d point %d = %v, want %v", i, j, got[i][j], tt.want[i][j])
					}
				}
			}
		})
	}
}

func TestFlatten_Curves(t *testing.T) {
	p0, c1, c2, p3 := Point{0, 0}, Point{0, 40}, Point{60, 40}, Point{60, 0}
	cubic := func(t float64) Point {
		u := 1 - t
		return Point{
			X: u*u*u*p0.X + 3*u*u*t*c1.X + 3*u*t*t*c2.X + t*t*t*p3.X,
			Y: u*u*u*p0.Y + 3*u*u*t*c1.Y + 3*u*t*t*c2.Y + t*t*t*p3.Y,
		}
	}

	tests := []struct {
		name     string
		elements []Element
		end      Point
	}{
		{"quadratic", []Element{MoveTo{p0}, QuadTo{Point{30, 60}, p3}}, p3},
		{"cubic", []Element{MoveTo{p0}, CubicTo{c1, c2, p3}}, p3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := Flatten(tt.elements)
			if len(lines) != 1 {
				t.Fatalf("got %d polylines, want 1", len(lines))
			}
			pts := lines[0]
			if len(pts) < 8 {
				t.Errorf("curve flattened to %d points, want a finer polyline", len(pts))
			}
			if pts[0] != p0 || pts[len(pts)-1] != tt.end {
				t.Errorf("endpoints = %v, %v, want %v, %v", pts[0], pts[len(pts)-1], p0, tt.end)
			}
		})
	}

	// Every cubic sample lies close to the flattened polyline.
	pts := Flatten([]Element{MoveTo{p0}, CubicTo{c1, c2, p3}})[0]
	for i := 0; i <= 20; i++ {
		s := cubic(float64(i) / 20)
		best := math.Inf(1)
		for j := 0; j+1 < len(pts); j++ {
			best = math.Min(best, distanceToLine(s, pts[j], pts[j+1]))
		}
		if best > 0.5 {
			t.Errorf("sample %v is %.3f from the polyline", s, best)
		}
	}
}

func TestPointIsFinite(t *testing.T) {
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{1, 2}, true},
		{Point{math.NaN(), 0}, false},
		{Point{0, math.Inf(-1)}, false},
	}
	for _, tt := range tests {
		if got := tt.p.IsFinite(); got != tt.want {
			t.Errorf("%v.IsFinite() = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestMatrix(t *testing.T) {
	// Translate first, then scale.
	m := Scale(2, 3).Multiply(Translate(1, -1))

	tests := []struct {
		in, want Point
	}{
		{Point{0, 0}, Point{2, -3}},
		{Point{1, 1}, Point{4, 0}},
	}
	for _, tt := range tests {
		if got := m.TransformPoint(tt.in); got != tt.want {
			t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if got := Identity().TransformPoint(Point{5, 7}); got != (Point{5, 7}) {
		t.Errorf("Identity moved a point to %v", got)
	}

	lines := [][]Point{{{0, 0}, {1, 1}}, {{2, 0}}}
	Translate(10, 20).Transform(lines)
	want := [][]Point{{{10, 20}, {11, 21}}, {{12, 20}}}
	for i := range lines {
		for j := range lines[i] {
			if lines[i][j] != want[i][j] {
				t.Errorf("Transform: point [%d][%d] = %v, want %v", i, j, lines[i][j], want[i][j])
			}
		}
	}
}
