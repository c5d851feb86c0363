package image

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/jigsaw"
)

var (
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.NRGBA{A: 255}
)

// testImage returns an opaque image with distinct pixels.
func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 5), G: uint8(y * 7), B: 90, A: 255}) //nolint:gosec // small test sizes
		}
	}
	return img
}

// cutLines returns a rasterizer drawing one vertical cut line at x.
func cutLines(x int) jigsaw.Rasterizer {
	return jigsaw.RasterizerFunc(func(_ []byte, w, h int, bg, ink color.NRGBA) (*jigsaw.Pixmap, error) {
		pm := jigsaw.NewPixmap(w, h)
		pm.Clear(bg)
		for y := range h {
			pm.SetPixel(x, y, ink)
		}
		return pm, nil
	})
}

func TestAssemble(t *testing.T) {
	src := testImage(40, 30)
	pieces, err := jigsaw.NewCutter(jigsaw.WithRasterizer(cutLines(20))).Cut(src, 1, 2, nil)
	if err != nil {
		t.Fatalf("Cut() = %v", err)
	}

	got := Assemble(pieces, image.Pt(40, 30))
	for y := range 30 {
		for x := range 40 {
			want := src.NRGBAAt(x, y)
			if x == 20 {
				// The cut line belongs to no piece.
				want = color.NRGBA{}
			}
			if c := got.NRGBAAt(x, y); c != want {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, c, want)
			}
		}
	}
}

func TestAssemble_SkipsDegenerate(t *testing.T) {
	p := jigsaw.Piece{Image: image.NewNRGBA(image.Rect(0, 0, 1, 1)), Degenerate: true}
	p.Image.SetNRGBA(0, 0, black)

	got := Assemble([]jigsaw.Piece{p}, image.Pt(4, 4))
	if got.NRGBAAt(0, 0) != (color.NRGBA{}) {
		t.Error("degenerate piece was drawn")
	}
}

func TestGuide(t *testing.T) {
	src := testImage(10, 10)
	mask := jigsaw.NewPixmap(10, 10)
	mask.Clear(white)
	mask.SetPixel(4, 4, black)

	g := Guide(src, mask, black)

	if g.Bounds() != image.Rect(0, 0, 10, 10) {
		t.Fatalf("Bounds() = %v", g.Bounds())
	}
	if got := g.NRGBAAt(4, 4); got != black {
		t.Errorf("cut line pixel = %v, want ink", got)
	}
	c := g.NRGBAAt(1, 1)
	if c.A == 0 || c.A >= 255 {
		t.Errorf("image pixel alpha = %d, want faded", c.A)
	}
}

func TestSheet(t *testing.T) {
	src := testImage(40, 30)
	pieces, err := jigsaw.NewCutter(jigsaw.WithRasterizer(cutLines(20))).Cut(src, 1, 2, nil)
	if err != nil {
		t.Fatalf("Cut() = %v", err)
	}

	bg := color.NRGBA{R: 30, G: 30, B: 30, A: 255}
	sheet := Sheet(pieces, 2, 4, bg)

	// Cells are as large as the largest piece plus the label row.
	cellW, cellH := 20, 30+sheetLabelHeight
	want := image.Rect(0, 0, 4+2*(cellW+4), 4+(cellH+4))
	if sheet.Bounds() != want {
		t.Errorf("Bounds() = %v, want %v", sheet.Bounds(), want)
	}
	if got := sheet.NRGBAAt(0, 0); got != bg {
		t.Errorf("corner = %v, want background", got)
	}
	// The first piece's top-left pixel sits below its label.
	if got, want := sheet.NRGBAAt(4, 4+sheetLabelHeight), src.NRGBAAt(0, 0); got != want {
		t.Errorf("first piece pixel = %v, want %v", got, want)
	}

	if empty := Sheet(nil, 3, 4, bg); empty.Bounds().Dx() != 1 {
		t.Errorf("empty sheet bounds = %v, want 1x1", empty.Bounds())
	}
}

func TestLoadBytes(t *testing.T) {
	if _, err := LoadBytes(nil); !errors.Is(err, ErrEmptyData) {
		t.Errorf("LoadBytes(nil) = %v, want ErrEmptyData", err)
	}
	if _, err := LoadBytes([]byte("not an image")); err == nil {
		t.Error("LoadBytes(garbage) = nil error")
	}

	var buf bytes.Buffer
	src := testImage(6, 4)
	if err := EncodePNG(&buf, src); err != nil {
		t.Fatalf("EncodePNG() = %v", err)
	}
	img, err := LoadBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("LoadBytes() = %v", err)
	}
	if img.Bounds() != src.Bounds() {
		t.Errorf("Bounds() = %v, want %v", img.Bounds(), src.Bounds())
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.png")
	if err := os.WriteFile(empty, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(empty); !errors.Is(err, ErrEmptyData) {
		t.Errorf("Load(empty file) = %v, want ErrEmptyData", err)
	}
	if _, err := Load(filepath.Join(dir, "missing.png")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing file) = %v, want os.ErrNotExist", err)
	}
}

func TestSavePNG(t *testing.T) {
	path := t.TempDir() + "/piece.png"
	if err := SavePNG(path, testImage(3, 3)); err != nil {
		t.Fatalf("SavePNG() = %v", err)
	}
	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if img.Bounds().Dx() != 3 {
		t.Errorf("loaded width = %d, want 3", img.Bounds().Dx())
	}
}
