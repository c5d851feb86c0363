package jigsaw

import (
	"fmt"
	"image/color"
)

// Mask is the rasterized cut-line drawing a segmentation run consumes.
//
// Pixels equal to the background color are passable. Every other pixel is a
// cut line, except pixels equal to the claim color, which a fill has already
// taken. A Mask belongs to a single run: fills mutate it in place and later
// fills observe earlier claims.
type Mask struct {
	pm         *Pixmap
	background color.NRGBA
	claim      color.NRGBA
}

// NewMask wraps pm as a mask. The pixmap is used in place, not copied.
// Returns ErrClaimColor if claim equals background.
func NewMask(pm *Pixmap, background, claim color.NRGBA) (*Mask, error) {
	if background == claim {
		return nil, fmt.Errorf("%w: both are %v", ErrClaimColor, claim)
	}
	return &Mask{pm: pm, background: background, claim: claim}, nil
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.pm.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.pm.height }

// Pixmap returns the underlying pixmap, including the claims made so far.
func (m *Mask) Pixmap() *Pixmap { return m.pm }

// Background returns the passable color.
func (m *Mask) Background() color.NRGBA { return m.background }

// ClaimColor returns the color written over claimed pixels.
func (m *Mask) ClaimColor() color.NRGBA { return m.claim }

// is reports whether the pixel at (x, y) is exactly c.
// Coordinates outside the mask report false.
func (m *Mask) is(x, y int, c color.NRGBA) bool {
	if !m.pm.inBounds(x, y) {
		return false
	}
	d := m.pm.data[(y*m.pm.width+x)*4:]
	return d[0] == c.R && d[1] == c.G && d[2] == c.B && d[3] == c.A
}

// IsBackground reports whether (x, y) is inside the mask and still passable.
func (m *Mask) IsBackground(x, y int) bool {
	return m.is(x, y, m.background)
}

// Claimed reports whether (x, y) has been taken by a fill.
func (m *Mask) Claimed(x, y int) bool {
	return m.is(x, y, m.claim)
}

// Unclaimed returns the number of background pixels no fill has reached.
func (m *Mask) Unclaimed() int {
	return m.pm.Count(m.background)
}

// claimPixel overwrites (x, y) with the claim color. The caller has already
// checked bounds.
func (m *Mask) claimPixel(x, y int) {
	d := m.pm.data[(y*m.pm.width+x)*4:]
	d[0], d[1], d[2], d[3] = m.claim.R, m.claim.G, m.claim.B, m.claim.A
}
