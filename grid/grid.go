package grid

import (
	"fmt"
	"strings"
)

// ValidateDimensions returns ErrInvalidDimension unless width ≥ 1 and height ≥ 1.
// Complexity: O(1).
func ValidateDimensions(width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, width, height)
	}
	return nil
}

// FromMasks builds a Maze from row-major cell masks.
// It deep-copies masks and rejects any input that breaks the data model:
// bad dimensions, a wrong mask count, stray bits, passages leaving the grid,
// or passages open on one side only.
// Complexity: O(W×H) time and memory.
func FromMasks(width, height int, masks []Mask) (*Maze, error) {
	if err := ValidateDimensions(width, height); err != nil {
		return nil, err
	}
	if len(masks) != width*height {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrMaskCount, len(masks), width*height)
	}
	cells := make([]Mask, len(masks))
	copy(cells, masks)
	m := &Maze{width: width, height: height, cells: cells}

	for idx, c := range cells {
		x, y := m.Coordinate(idx)
		if c&^MaskAll != 0 {
			return nil, fmt.Errorf("%w: cell (%d,%d) = %#x", ErrInvalidMask, x, y, uint8(c))
		}
		for _, d := range Directions {
			if !c.Has(d) {
				continue
			}
			n := Point{X: x, Y: y}.Step(d)
			if !m.InBounds(n.X, n.Y) {
				return nil, fmt.Errorf("%w: cell (%d,%d) toward %v", ErrOutOfBounds, x, y, d)
			}
			if !cells[m.Index(n.X, n.Y)].Has(d.Opposite()) {
				return nil, fmt.Errorf("%w: (%d,%d) %v to %v", ErrAsymmetricPassage, x, y, d, n)
			}
		}
	}

	return m, nil
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// InBounds reports whether (x,y) lies within the grid.
// Complexity: O(1).
func (m *Maze) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Index maps (x,y) to its row-major index y*Width + x.
// The caller must ensure (x,y) is in bounds.
func (m *Maze) Index(x, y int) int {
	return y*m.width + x
}

// Coordinate converts a row-major index back to (x,y).
func (m *Maze) Coordinate(idx int) (x, y int) {
	return idx % m.width, idx / m.width
}

// Mask returns the passage mask of cell (x,y), or 0 when out of bounds.
func (m *Maze) Mask(x, y int) Mask {
	if !m.InBounds(x, y) {
		return 0
	}
	return m.cells[m.Index(x, y)]
}

// HasPassage reports whether the passage from p toward d is open.
func (m *Maze) HasPassage(p Point, d Direction) bool {
	return m.Mask(p.X, p.Y).Has(d)
}

// Neighbors returns the cells reachable from p through one open passage,
// in East, West, South, North order.
func (m *Maze) Neighbors(p Point) []Point {
	mask := m.Mask(p.X, p.Y)
	out := make([]Point, 0, mask.Count())
	for _, d := range Directions {
		if mask.Has(d) {
			out = append(out, p.Step(d))
		}
	}
	return out
}

// PassageCount returns the number of open passages between cell pairs.
// Each passage is counted once even though both cells carry its bit.
// Complexity: O(W×H).
func (m *Maze) PassageCount() int {
	total := 0
	for _, c := range m.cells {
		total += c.Count()
	}
	return total / 2
}

// Entrance returns the top-left cell (0,0).
func (m *Maze) Entrance() Point { return Point{} }

// Exit returns the bottom-right cell (Width-1, Height-1).
func (m *Maze) Exit() Point { return Point{X: m.width - 1, Y: m.height - 1} }

// Masks returns a row-major copy of every cell mask.
func (m *Maze) Masks() []Mask {
	out := make([]Mask, len(m.cells))
	copy(out, m.cells)
	return out
}

// String dumps the masks as one hex digit per cell, one line per row.
func (m *Maze) String() string {
	const hex = "0123456789abcdef"
	var sb strings.Builder
	sb.Grow((m.width + 1) * m.height)
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			sb.WriteByte(hex[m.cells[m.Index(x, y)]&MaskAll])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
