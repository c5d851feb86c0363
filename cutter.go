package jigsaw

import (
	"fmt"
	"image"
	"time"

	"github.com/gogpu/jigsaw/internal/parallel"
)

// Cutter cuts images into jigsaw pieces.
//
// A Cutter holds only configuration; every call builds its own mask, so one
// Cutter may be used from several goroutines.
type Cutter struct {
	opts options
}

// NewCutter creates a Cutter with the given options.
func NewCutter(opts ...Option) *Cutter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Cutter{opts: o}
}

// Cut segments src into rows x cols pieces bounded by the cut lines in
// outline and returns them in row-major order.
//
// Errors from the rasterizer are returned unchanged and no pieces are
// produced. A cell whose seed misses the background still produces a piece,
// with Degenerate set.
func (c *Cutter) Cut(src image.Image, rows, cols int, outline []byte) ([]Piece, error) {
	b := src.Bounds()
	if err := ValidateGrid(b.Dx(), b.Dy(), rows, cols); err != nil {
		return nil, err
	}
	slots := make(Slots, rows*cols)
	if err := c.CutInto(src, rows, cols, outline, slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// CutInto is like Cut but hands each piece to sink as soon as it is ready.
//
// Cells are visited in row-major order and the fills share one mask, so a
// pixel reachable from several seeds belongs to the first of them in that
// order. The sink sees pieces in the same order.
func (c *Cutter) CutInto(src image.Image, rows, cols int, outline []byte, sink Sink) error {
	start := time.Now()
	log := Logger()

	b := src.Bounds()
	width, height := b.Dx(), b.Dy()
	if err := ValidateGrid(width, height, rows, cols); err != nil {
		return err
	}
	if c.opts.claim == c.opts.ink {
		return fmt.Errorf("%w: claim and ink are both %v", ErrClaimColor, c.opts.claim)
	}

	r := c.opts.rasterizer
	if r == nil {
		r = GetRasterizer()
	}
	if r == nil {
		return ErrNoRasterizer
	}

	pm, err := r.Rasterize(outline, width, height, c.opts.background, c.opts.ink)
	if err != nil {
		return err
	}
	if pm.Width() != width || pm.Height() != height {
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrMaskSize, pm.Width(), pm.Height(), width, height)
	}
	mask, err := NewMask(pm, c.opts.background, c.opts.claim)
	if err != nil {
		return err
	}
	rasterized := time.Now()

	source := FromImage(src)
	seeds := PlanSeeds(width, height, rows, cols)

	if c.opts.workers == 1 {
		err = c.cutSequential(mask, source, seeds, sink)
	} else {
		err = c.cutParallel(mask, source, seeds, sink)
	}
	if err != nil {
		return err
	}

	log.Debug("jigsaw: cut complete",
		"width", width,
		"height", height,
		"rows", rows,
		"cols", cols,
		"rasterize", rasterized.Sub(start),
		"total", time.Since(start),
		"unclaimed", mask.Unclaimed(),
	)
	return nil
}

// fillCell runs the fill for one cell and reports a degenerate result.
func fillCell(mask *Mask, seed image.Point, row, col int) Region {
	region, ok := mask.Fill(seed)
	if !ok {
		Logger().Warn("jigsaw: degenerate piece, seed is not on background",
			"row", row, "col", col, "x", seed.X, "y", seed.Y)
	}
	return region
}

func (c *Cutter) cutSequential(mask *Mask, source *Pixmap, seeds [][]image.Point, sink Sink) error {
	cols := len(seeds[0])
	for row, line := range seeds {
		for col, seed := range line {
			p := Extract(fillCell(mask, seed, row, col), source, c.opts.origin, c.opts.inset)
			p.Row, p.Col, p.Index = row, col, row*cols+col
			if err := sink.Receive(p); err != nil {
				return fmt.Errorf("jigsaw: piece %d: %w", p.Index, err)
			}
		}
	}
	return nil
}

// cutParallel fills every cell first, in row-major order, then extracts the
// regions on a worker pool. Extraction only reads source.
func (c *Cutter) cutParallel(mask *Mask, source *Pixmap, seeds [][]image.Point, sink Sink) error {
	cols := len(seeds[0])
	regions := make([]Region, 0, len(seeds)*cols)
	for row, line := range seeds {
		for col, seed := range line {
			regions = append(regions, fillCell(mask, seed, row, col))
		}
	}

	pieces := make([]Piece, len(regions))
	work := make([]func(), len(regions))
	for i := range regions {
		work[i] = func() {
			p := Extract(regions[i], source, c.opts.origin, c.opts.inset)
			p.Row, p.Col, p.Index = i/cols, i%cols, i
			pieces[i] = p
		}
	}

	pool := parallel.NewWorkerPool(c.opts.workers)
	Logger().Debug("jigsaw: extracting pieces", "pieces", len(work), "workers", pool.Workers())
	pool.ExecuteAll(work)
	pool.Close()

	for _, p := range pieces {
		if err := sink.Receive(p); err != nil {
			return fmt.Errorf("jigsaw: piece %d: %w", p.Index, err)
		}
	}
	return nil
}
