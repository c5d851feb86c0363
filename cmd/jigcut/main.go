// Command jigcut cuts an image into jigsaw pieces.
//
// Usage:
//
//	jigcut -image photo.jpg -rows 4 -cols 6 -out pieces/
//
// Without -outline, cut lines are generated from -seed, -tab and -jitter.
// Each piece is written as piece_<row>_<col>.png next to a pieces.json
// manifest of piece geometry.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gogpu/jigsaw"
	imgio "github.com/gogpu/jigsaw/internal/image"
	"github.com/gogpu/jigsaw/outline"
	"github.com/gogpu/jigsaw/trace"
)

func main() {
	var (
		imagePath      = flag.String("image", "", "source image (PNG, JPEG, GIF, BMP, TIFF, WebP)")
		rows           = flag.Int("rows", 3, "piece rows")
		cols           = flag.Int("cols", 4, "piece columns")
		outlinePath    = flag.String("outline", "", "SVG cut lines; generated when empty")
		seed           = flag.Int64("seed", 1, "random seed for generated cut lines")
		tab            = flag.Float64("tab", 20, "tab size in percent of a piece edge")
		jitter         = flag.Float64("jitter", 4, "jitter in percent of a piece edge")
		stroke         = flag.Float64("stroke", 0, "cut-line width in pixels (0 keeps the drawing's width)")
		outDir         = flag.String("out", "pieces", "output directory")
		origin         = flag.String("origin", "0,0", "display origin x,y added to placements")
		inset          = flag.String("inset", "4,7", "visual inset x,y added to placements")
		background     = flag.String("background", "#ffffff", "mask background color")
		ink            = flag.String("ink", "#000000", "cut-line color")
		workers        = flag.Int("workers", 1, "extraction workers (0 = GOMAXPROCS)")
		writeSVG       = flag.Bool("svg", false, "also write traced piece outlines as SVG")
		writeSheet     = flag.Bool("sheet", false, "also write a labelled contact sheet")
		writeGuide     = flag.Bool("guide", false, "also write the faded image with the cut lines")
		writeMask      = flag.Bool("mask", false, "also write the rasterized mask")
		writeAssembled = flag.Bool("assembled", false, "also write the pieces put back together, to check the cut")
		verbose        = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *imagePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	jigsaw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ox, oy, err := parsePair(*origin)
	if err != nil {
		log.Fatalf("-origin: %v", err)
	}
	ix, iy, err := parsePair(*inset)
	if err != nil {
		log.Fatalf("-inset: %v", err)
	}

	start := time.Now()
	src, err := imgio.Load(*imagePath)
	if err != nil {
		log.Fatalf("Failed to load image: %v", err)
	}
	size := src.Bounds().Size()

	svgData, err := loadOutline(*outlinePath, outline.Config{
		Width:   size.X,
		Height:  size.Y,
		Rows:    *rows,
		Cols:    *cols,
		Seed:    *seed,
		TabSize: *tab,
		Jitter:  jitterFlag(*jitter),
	})
	if err != nil {
		log.Fatalf("Failed to prepare cut lines: %v", err)
	}

	bg, inkColor := jigsaw.Hex(*background), jigsaw.Hex(*ink)
	claim := jigsaw.Green
	if claim == bg || claim == inkColor {
		claim = jigsaw.Hex("#ff00ff")
	}
	rz := &outline.Rasterizer{StrokeWidth: *stroke}

	cutter := jigsaw.NewCutter(
		jigsaw.WithRasterizer(rz),
		jigsaw.WithOrigin(ox, oy),
		jigsaw.WithInset(ix, iy),
		jigsaw.WithColors(bg, inkColor, claim),
		jigsaw.WithWorkers(*workers),
	)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	w := &pieceWriter{dir: *outDir, svg: *writeSVG}
	if err := cutter.CutInto(src, *rows, *cols, svgData, w); err != nil {
		log.Fatalf("Failed to cut: %v", err)
	}
	if err := writeManifest(filepath.Join(*outDir, "pieces.json"), size, *rows, *cols, w.pieces); err != nil {
		log.Fatalf("Failed to write manifest: %v", err)
	}

	if *writeSheet {
		sheet := imgio.Sheet(w.pieces, *cols, 8, jigsaw.White)
		if err := imgio.SavePNG(filepath.Join(*outDir, "sheet.png"), sheet); err != nil {
			log.Fatalf("Failed to write sheet: %v", err)
		}
	}

	if *writeAssembled {
		if err := imgio.SavePNG(filepath.Join(*outDir, "assembled.png"), imgio.Assemble(w.pieces, size)); err != nil {
			log.Fatalf("Failed to write assembled image: %v", err)
		}
	}

	if *writeGuide || *writeMask {
		mask, err := rz.Rasterize(svgData, size.X, size.Y, bg, inkColor)
		if err != nil {
			log.Fatalf("Failed to rasterize cut lines: %v", err)
		}
		if *writeMask {
			if err := mask.SavePNG(filepath.Join(*outDir, "mask.png")); err != nil {
				log.Fatalf("Failed to write mask: %v", err)
			}
		}
		if *writeGuide {
			if err := imgio.SavePNG(filepath.Join(*outDir, "guide.png"), imgio.Guide(src, mask, inkColor)); err != nil {
				log.Fatalf("Failed to write guide: %v", err)
			}
		}
	}

	if *outlinePath == "" {
		if err := os.WriteFile(filepath.Join(*outDir, "outline.svg"), svgData, 0o644); err != nil { //nolint:gosec // output is meant to be readable
			log.Fatalf("Failed to write outline: %v", err)
		}
	}

	fmt.Println(summary(w.pieces, size, *rows, *cols, time.Since(start)))
}

// loadOutline reads the cut lines from path, or generates them when path is
// empty.
func loadOutline(path string, cfg outline.Config) ([]byte, error) {
	if path != "" {
		return os.ReadFile(filepath.Clean(path))
	}
	return outline.Generate(cfg)
}

// jitterFlag maps the flag value to outline.Config, where zero means the
// default and negative means none.
func jitterFlag(v float64) float64 {
	if v == 0 {
		return -1
	}
	return v
}

// parsePair parses "x,y".
func parsePair(s string) (int, int, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return 0, 0, err
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// pieceName is the file name stem of a piece.
func pieceName(p jigsaw.Piece) string {
	return fmt.Sprintf("piece_%d_%d", p.Row, p.Col)
}

// pieceWriter is a jigsaw.Sink writing each piece to disk as it arrives.
type pieceWriter struct {
	dir    string
	svg    bool
	pieces []jigsaw.Piece
}

func (w *pieceWriter) Receive(p jigsaw.Piece) error {
	if err := imgio.SavePNG(filepath.Join(w.dir, pieceName(p)+".png"), p.Image); err != nil {
		return err
	}
	if w.svg && !p.Degenerate {
		data, err := trace.Outline(p)
		switch {
		case errors.Is(err, trace.ErrEmptyPiece):
			// Every source pixel under the piece is transparent.
			jigsaw.Logger().Warn("jigcut: nothing to trace", "piece", p.Index, "row", p.Row, "col", p.Col)
		case err != nil:
			return err
		default:
			if err := os.WriteFile(filepath.Join(w.dir, pieceName(p)+".svg"), data, 0o644); err != nil { //nolint:gosec // output is meant to be readable
				return err
			}
		}
	}
	w.pieces = append(w.pieces, p)
	return nil
}
