package outline

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rustyoz/svg"

	"github.com/gogpu/jigsaw/internal/path"
)

// ErrMalformedOutline is returned when a cut-line description cannot be
// rasterized.
var ErrMalformedOutline = errors.New("outline: malformed cut-line drawing")

// defaultStrokeWidth is the stroke width in document units when a path sets
// none.
const defaultStrokeWidth = 1.0

// kappa places cubic control points to approximate a quarter circle.
const kappa = 0.5522847498

// stroke is one stroked element of a drawing, in document units.
type stroke struct {
	polylines [][]path.Point
	width     float64
}

// drawing is a parsed cut-line document.
type drawing struct {
	strokes []stroke

	// viewBox is the document coordinate system. hasViewBox is false when
	// the document has no usable viewBox.
	viewBox    [4]float64
	hasViewBox bool
}

// parse reads an SVG document into strokes. A well-formed document without
// any path is a drawing with no cut lines.
func parse(data []byte) (*drawing, error) {
	doc, err := svg.ParseSvg(string(data), "outline", 1.0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutline, err)
	}

	if err := normalizePaths(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutline, err)
	}

	d := &drawing{}
	d.viewBox, d.hasViewBox = documentBox(doc)

	var pending []path.Element
	flush := func(width float64) error {
		if len(pending) == 0 {
			return nil
		}
		lines := path.Flatten(pending)
		pending = nil
		for _, line := range lines {
			for _, p := range line {
				if !p.IsFinite() {
					return fmt.Errorf("%w: non-finite coordinate", ErrMalformedOutline)
				}
			}
		}
		d.strokes = append(d.strokes, stroke{polylines: lines, width: width})
		return nil
	}

	instructions, errs := doc.ParseDrawingInstructions()

	// Both channels are read until closed: the producers block on a full
	// channel and would never exit otherwise. Only the first error counts.
	var first error
	fail := func(err error) {
		if first == nil {
			first = err
		}
	}
	for instructions != nil {
		select {
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			fail(fmt.Errorf("%w: %v", ErrMalformedOutline, err))
		case ins, ok := <-instructions:
			if !ok {
				instructions = nil
				continue
			}
			if first != nil {
				continue
			}
			switch ins.Kind {
			case svg.MoveInstruction:
				pending = append(pending, path.MoveTo{Point: tuple(ins.M)})
			case svg.LineInstruction:
				pending = append(pending, path.LineTo{Point: tuple(ins.M)})
			case svg.CurveInstruction:
				cp := ins.CurvePoints
				if cp == nil {
					fail(fmt.Errorf("%w: curve without control points", ErrMalformedOutline))
					continue
				}
				pending = append(pending, path.CubicTo{
					Control1: tuple(cp.C1),
					Control2: tuple(cp.C2),
					Point:    tuple(cp.T),
				})
			case svg.CloseInstruction:
				pending = append(pending, path.Close{})
			case svg.CircleInstruction:
				if ins.Radius != nil {
					pending = append(pending, circle(tuple(ins.M), *ins.Radius)...)
				}
			case svg.PaintInstruction:
				width := defaultStrokeWidth
				if ins.StrokeWidth != nil && *ins.StrokeWidth > 0 {
					width = *ins.StrokeWidth
				}
				if err := flush(width); err != nil {
					fail(err)
				}
			}
		}
	}
	if errs != nil {
		for err := range errs {
			fail(fmt.Errorf("%w: %v", ErrMalformedOutline, err))
		}
	}
	if first != nil {
		return nil, first
	}

	if err := flush(defaultStrokeWidth); err != nil {
		return nil, err
	}
	return d, nil
}

// tuple converts a parsed coordinate; a missing one reads as NaN so the
// finiteness check rejects it.
func tuple(t *svg.Tuple) path.Point {
	if t == nil {
		return path.Point{X: math.NaN(), Y: math.NaN()}
	}
	return path.Point{X: t[0], Y: t[1]}
}

// circle approximates a circle with four cubic arcs.
func circle(c path.Point, r float64) []path.Element {
	k := r * kappa
	return []path.Element{
		path.MoveTo{Point: path.Point{X: c.X + r, Y: c.Y}},
		path.CubicTo{Control1: path.Point{X: c.X + r, Y: c.Y + k}, Control2: path.Point{X: c.X + k, Y: c.Y + r}, Point: path.Point{X: c.X, Y: c.Y + r}},
		path.CubicTo{Control1: path.Point{X: c.X - k, Y: c.Y + r}, Control2: path.Point{X: c.X - r, Y: c.Y + k}, Point: path.Point{X: c.X - r, Y: c.Y}},
		path.CubicTo{Control1: path.Point{X: c.X - r, Y: c.Y - k}, Control2: path.Point{X: c.X - k, Y: c.Y - r}, Point: path.Point{X: c.X, Y: c.Y - r}},
		path.CubicTo{Control1: path.Point{X: c.X + k, Y: c.Y - r}, Control2: path.Point{X: c.X + r, Y: c.Y - k}, Point: path.Point{X: c.X + r, Y: c.Y}},
		path.Close{},
	}
}

// documentBox returns the document's viewBox when it is valid.
func documentBox(doc *svg.Svg) ([4]float64, bool) {
	var box [4]float64

	fields := strings.FieldsFunc(doc.ViewBox, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
	if len(fields) != 4 {
		return box, false
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return box, false
		}
		box[i] = v
	}
	return box, box[2] > 0 && box[3] > 0
}
