package jigsaw

import "errors"

var (
	// ErrInvalidGrid is returned when rows or cols is below one, or when the
	// image is too small for every cell to be at least one pixel wide and tall.
	ErrInvalidGrid = errors.New("jigsaw: invalid grid")

	// ErrNoRasterizer is returned when no Rasterizer is configured or registered.
	ErrNoRasterizer = errors.New("jigsaw: no rasterizer")

	// ErrMaskSize is returned when a Rasterizer produces a mask whose size
	// differs from the source image.
	ErrMaskSize = errors.New("jigsaw: mask size mismatch")

	// ErrClaimColor is returned when the claim color is not distinct from the
	// background or ink color.
	ErrClaimColor = errors.New("jigsaw: claim color must differ from background and ink")

	// ErrSlotRange is returned by Slots when a piece index does not fit.
	ErrSlotRange = errors.New("jigsaw: piece index out of slot range")
)
