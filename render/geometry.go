// Package render turns a grid.Maze and its solution grid.Path into drawable
// output: pixel-space line segments, ASCII text, and PNG/SVG images.
//
// Two drawing conventions exist:
//
//   - ConventionReference draws a line along every side whose passage bit is
//     SET. This is the classic lab picture and stays bit-for-bit stable,
//     even though it marks open sides rather than walls.
//   - ConventionWalls draws the conventional picture: closed sides only, with
//     each shared wall drawn once and the outer border included.
//
// The solution is drawn as one polyline joining cell centres.
// All pixel coordinates have their origin at the top-left corner, y growing down.
package render

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lab/grid"
)

// ErrCellSize indicates a non-positive cell size.
var ErrCellSize = errors.New("render: cell size must be positive")

// Vec is a pixel-space position.
type Vec struct {
	X, Y float64
}

// Segment is a straight line from A to B.
type Segment struct {
	A, B Vec
}

func seg(x0, y0, x1, y1 int) Segment {
	return Segment{A: Vec{X: float64(x0), Y: float64(y0)}, B: Vec{X: float64(x1), Y: float64(y1)}}
}

func checkCellSize(cellSize int) error {
	if cellSize <= 0 {
		return fmt.Errorf("%w: %d", ErrCellSize, cellSize)
	}
	return nil
}

// Segments returns the reference-convention lines: for every cell and every
// set passage bit, one cell side. The side chosen per bit is fixed:
//
//	East  → top edge      West  → left edge
//	South → bottom edge   North → right edge
//
// Cells are scanned row by row, bits in East, West, South, North order.
func Segments(m *grid.Maze, cellSize int) ([]Segment, error) {
	if err := checkCellSize(cellSize); err != nil {
		return nil, err
	}
	c := cellSize
	out := make([]Segment, 0, 2*m.PassageCount())
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			mask := m.Mask(x, y)
			if mask.Has(grid.East) {
				out = append(out, seg(x*c, y*c, (x+1)*c, y*c))
			}
			if mask.Has(grid.West) {
				out = append(out, seg(x*c, y*c, x*c, (y+1)*c))
			}
			if mask.Has(grid.South) {
				out = append(out, seg(x*c, (y+1)*c, (x+1)*c, (y+1)*c))
			}
			if mask.Has(grid.North) {
				out = append(out, seg((x+1)*c, y*c, (x+1)*c, (y+1)*c))
			}
		}
	}
	return out, nil
}

// Walls returns the closed sides of every cell. The top and left borders
// come first, then each cell's East and South walls in row-major order.
func Walls(m *grid.Maze, cellSize int) ([]Segment, error) {
	if err := checkCellSize(cellSize); err != nil {
		return nil, err
	}
	c := cellSize
	w, h := m.Width(), m.Height()
	out := make([]Segment, 0, w+h+2*w*h)
	for x := 0; x < w; x++ {
		out = append(out, seg(x*c, 0, (x+1)*c, 0))
	}
	for y := 0; y < h; y++ {
		out = append(out, seg(0, y*c, 0, (y+1)*c))
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			mask := m.Mask(x, y)
			if !mask.Has(grid.East) {
				out = append(out, seg((x+1)*c, y*c, (x+1)*c, (y+1)*c))
			}
			if !mask.Has(grid.South) {
				out = append(out, seg(x*c, (y+1)*c, (x+1)*c, (y+1)*c))
			}
		}
	}
	return out, nil
}

// PathLine returns the centre of every path cell, (x·c + c/2, y·c + c/2)
// with integer halving of c. An empty path yields an empty line.
func PathLine(p grid.Path, cellSize int) ([]Vec, error) {
	if err := checkCellSize(cellSize); err != nil {
		return nil, err
	}
	half := cellSize / 2
	out := make([]Vec, len(p))
	for i, pt := range p {
		out[i] = Vec{X: float64(pt.X*cellSize + half), Y: float64(pt.Y*cellSize + half)}
	}
	return out, nil
}
