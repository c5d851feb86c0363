package main

import (
	"encoding/json"
	"image"
	"os"
	"path/filepath"

	"github.com/gogpu/jigsaw"
)

// manifest describes a cut for a rendering layer.
type manifest struct {
	Width  int             `json:"width"`
	Height int             `json:"height"`
	Rows   int             `json:"rows"`
	Cols   int             `json:"cols"`
	Pieces []manifestPiece `json:"pieces"`
}

type manifestPiece struct {
	Index      int    `json:"index"`
	Row        int    `json:"row"`
	Col        int    `json:"col"`
	File       string `json:"file"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Bounds     [4]int `json:"bounds"`
	Size       [2]int `json:"size"`
	Area       int    `json:"area"`
	Degenerate bool   `json:"degenerate,omitempty"`
}

func newManifest(size image.Point, rows, cols int, pieces []jigsaw.Piece) manifest {
	m := manifest{
		Width:  size.X,
		Height: size.Y,
		Rows:   rows,
		Cols:   cols,
		Pieces: make([]manifestPiece, 0, len(pieces)),
	}
	for _, p := range pieces {
		b := p.Bounds
		m.Pieces = append(m.Pieces, manifestPiece{
			Index:      p.Index,
			Row:        p.Row,
			Col:        p.Col,
			File:       pieceName(p) + ".png",
			Width:      p.Width,
			Height:     p.Height,
			X:          p.Placement.X,
			Y:          p.Placement.Y,
			Bounds:     [4]int{b.Min.X, b.Min.Y, b.Max.X, b.Max.Y},
			Size:       [2]int{p.Image.Bounds().Dx(), p.Image.Bounds().Dy()},
			Area:       p.Area,
			Degenerate: p.Degenerate,
		})
	}
	return m
}

func writeManifest(path string, size image.Point, rows, cols int, pieces []jigsaw.Piece) error {
	data, err := json.MarshalIndent(newManifest(size, rows, cols, pieces), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Clean(path), data, 0o644) //nolint:gosec // output is meant to be readable
}
