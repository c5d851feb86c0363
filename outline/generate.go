package outline

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// ErrInvalidConfig is returned by Generate for a configuration it cannot draw.
var ErrInvalidConfig = errors.New("outline: invalid generator config")

// maxReach is how far, as a fraction of a cell, a tab may bulge into the
// neighboring cell. Beyond it a tab can cover the neighbor's center seed.
const maxReach = 0.4

// Config describes the cut lines Generate draws.
type Config struct {
	// Width and Height are the drawing size, normally the image size.
	Width, Height int

	// Rows and Cols are the number of pieces down and across.
	Rows, Cols int

	// Seed selects the random tab layout. Equal configs give equal output.
	Seed int64

	// TabSize is the tab size in percent of a piece edge, 10 to 30.
	// Zero means 20.
	TabSize float64

	// Jitter is the random displacement in percent of a piece edge, 0 to 13.
	// Zero means 4; use a negative value for no jitter at all.
	//
	// A tab bulges 1.5*TabSize+Jitter percent into the neighbor cell, which
	// must stay within 40 percent.
	Jitter float64

	// StrokeWidth is the stroke width written into the document.
	// Zero means 2.
	StrokeWidth float64

	// Border also draws the outer frame.
	Border bool
}

func (c Config) withDefaults() Config {
	if c.TabSize == 0 {
		c.TabSize = 20
	}
	switch {
	case c.Jitter == 0:
		c.Jitter = 4
	case c.Jitter < 0:
		c.Jitter = 0
	}
	if c.StrokeWidth == 0 {
		c.StrokeWidth = 2
	}
	return c
}

func (c Config) validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Rows < 1 || c.Cols < 1 || c.Width < c.Cols || c.Height < c.Rows:
		return fmt.Errorf("%w: grid %dx%d for size %dx%d", ErrInvalidConfig, c.Rows, c.Cols, c.Width, c.Height)
	case c.TabSize < 10 || c.TabSize > 30:
		return fmt.Errorf("%w: tab size %v%% not in [10, 30]", ErrInvalidConfig, c.TabSize)
	case c.Jitter > 13:
		return fmt.Errorf("%w: jitter %v%% not in [0, 13]", ErrInvalidConfig, c.Jitter)
	case 3*c.TabSize/200+c.Jitter/100 > maxReach:
		return fmt.Errorf("%w: tab size %v%% with jitter %v%% reaches past the cell center",
			ErrInvalidConfig, c.TabSize, c.Jitter)
	case c.StrokeWidth < 0:
		return fmt.Errorf("%w: stroke width %v", ErrInvalidConfig, c.StrokeWidth)
	}
	return nil
}

// Generate draws jigsaw cut lines for a Rows x Cols grid as an SVG document
// whose viewBox matches Width x Height.
//
// Every interior edge between two cells is a chain of three cubic curves
// forming a tab that bulges into one of the two cells, chosen at random.
// Edges lie on the integer cell boundaries the cutter seeds from, and tabs
// reach at most 40 percent of a cell into the neighbor, so cell centers
// stay inside their own piece for any image size.
func Generate(cfg Config) ([]byte, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	g := &tabber{
		rng:        rand.New(rand.NewSource(cfg.Seed)), //nolint:gosec // layout randomness, not security
		t:          cfg.TabSize / 200,
		j:          cfg.Jitter / 100,
		width:      float64(cfg.Width),
		height:     float64(cfg.Height),
		cellWidth:  float64(cfg.Width / cfg.Cols),
		cellHeight: float64(cfg.Height / cfg.Rows),
		rows:       cfg.Rows,
		cols:       cfg.Cols,
	}

	style := "fill:none;stroke:black;stroke-width:" + strconv.FormatFloat(cfg.StrokeWidth, 'f', -1, 64)

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startview(cfg.Width, cfg.Height, 0, 0, cfg.Width, cfg.Height)
	if d := g.horizontal(); d != "" {
		canvas.Path(d, style)
	}
	if d := g.vertical(); d != "" {
		canvas.Path(d, style)
	}
	if cfg.Border {
		canvas.Path(fmt.Sprintf("M 0 0 L %d 0 L %d %d L 0 %d Z",
			cfg.Width, cfg.Width, cfg.Height, cfg.Height), style)
	}
	canvas.End()

	return buf.Bytes(), nil
}

// tabber generates the tab curves. Positions along an edge are "l" and
// positions across it "w", both as fractions of a cell.
type tabber struct {
	rng *rand.Rand
	t   float64 // half tab size
	j   float64 // jitter

	width, height         float64
	cellWidth, cellHeight float64
	rows, cols            int

	// Per-tab random state.
	flip          bool
	a, b, c, d, e float64

	vert   bool
	xi, yi int
}

func (g *tabber) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// first starts a new edge.
func (g *tabber) first() {
	g.e = g.uniform(-g.j, g.j)
	g.next()
}

// next draws the random shape of the next tab. The start offset a matches
// the previous tab's end offset e, so consecutive tabs join smoothly.
func (g *tabber) next() {
	flipOld := g.flip
	g.flip = g.rng.Float64() > 0.5
	if g.flip == flipOld {
		g.a = -g.e
	} else {
		g.a = g.e
	}
	g.b = g.uniform(-g.j, g.j)
	g.c = g.uniform(-g.j, g.j)
	g.d = g.uniform(-g.j, g.j)
	g.e = g.uniform(-g.j, g.j)
}

// l maps v, a fraction of the current cell along the edge, to document
// units. Cells are width/cols by height/rows pixels in integer division, as
// the cutter plans its seeds, so the last cell along an edge also spans the
// remainder strip.
func (g *tabber) l(v float64) float64 {
	i, n, cell, total := g.xi, g.cols, g.cellWidth, g.width
	if g.vert {
		i, n, cell, total = g.yi, g.rows, g.cellHeight, g.height
	}
	start := float64(i) * cell
	length := cell
	if i == n-1 {
		length = total - start
	}
	return start + length*v
}

// w maps v, a fraction of a cell across the edge, to document units.
func (g *tabber) w(v float64) float64 {
	i, cell := g.yi, g.cellHeight
	if g.vert {
		i, cell = g.xi, g.cellWidth
	}
	if g.flip {
		v = -v
	}
	return cell * (float64(i) + v)
}

// point formats the point (l(lv), w(wv)) as "x y".
func (g *tabber) point(lv, wv float64) string {
	x, y := g.l(lv), g.w(wv)
	if g.vert {
		x, y = y, x
	}
	return strconv.FormatFloat(x, 'f', 2, 64) + " " + strconv.FormatFloat(y, 'f', 2, 64)
}

// tab writes the three cubic curves of the current tab.
func (g *tabber) tab(sb *strings.Builder) {
	t, b, c, d := g.t, g.b, g.c, g.d
	fmt.Fprintf(sb, "C %s %s %s ", g.point(0.2, g.a), g.point(0.5+b+d, -t+c), g.point(0.5-t+b, t+c))
	fmt.Fprintf(sb, "C %s %s %s ", g.point(0.5-2*t+b-d, 3*t+c), g.point(0.5+2*t+b-d, 3*t+c), g.point(0.5+t+b, t+c))
	fmt.Fprintf(sb, "C %s %s %s ", g.point(0.5+b+d, -t+c), g.point(0.8, g.e), g.point(1.0, 0))
}

// horizontal returns the path data of the edges between rows.
func (g *tabber) horizontal() string {
	var sb strings.Builder
	g.vert = false
	for g.yi = 1; g.yi < g.rows; g.yi++ {
		g.xi = 0
		g.first()
		fmt.Fprintf(&sb, "M %s ", g.point(0, 0))
		for ; g.xi < g.cols; g.xi++ {
			g.tab(&sb)
			g.next()
		}
	}
	return strings.TrimSpace(sb.String())
}

// vertical returns the path data of the edges between columns.
func (g *tabber) vertical() string {
	var sb strings.Builder
	g.vert = true
	for g.xi = 1; g.xi < g.cols; g.xi++ {
		g.yi = 0
		g.first()
		fmt.Fprintf(&sb, "M %s ", g.point(0, 0))
		for ; g.yi < g.rows; g.yi++ {
			g.tab(&sb)
			g.next()
		}
	}
	return strings.TrimSpace(sb.String())
}
