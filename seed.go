package jigsaw

import (
	"fmt"
	"image"
)

// ValidateGrid checks that a width x height image can be divided into
// rows x cols cells of at least one pixel each.
func ValidateGrid(width, height, rows, cols int) error {
	switch {
	case rows < 1 || cols < 1:
		return fmt.Errorf("%w: %dx%d cells", ErrInvalidGrid, rows, cols)
	case width < cols || height < rows:
		return fmt.Errorf("%w: %dx%d image is too small for %dx%d cells",
			ErrInvalidGrid, width, height, rows, cols)
	}
	return nil
}

// PlanSeeds returns one seed per cell, indexed [row][col]. The seed is the
// center of the cell when the image is divided into cells of width/cols by
// height/rows pixels, using integer division throughout. When the division
// leaves a remainder, the rightmost columns and bottom rows of pixels lie
// outside every cell; fills reach them from the neighboring cells.
//
// PlanSeeds does not validate its input; see ValidateGrid.
func PlanSeeds(width, height, rows, cols int) [][]image.Point {
	cellWidth := width / cols
	cellHeight := height / rows

	seeds := make([][]image.Point, rows)
	for i := range rows {
		seeds[i] = make([]image.Point, cols)
		for j := range cols {
			seeds[i][j] = image.Point{
				X: j*cellWidth + cellWidth/2,
				Y: i*cellHeight + cellHeight/2,
			}
		}
	}
	return seeds
}
