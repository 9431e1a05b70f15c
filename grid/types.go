package grid

import (
	"fmt"
	"math/bits"
)

// Direction is one of the four cardinal moves between adjacent cells.
// Declaration order East, West, South, North is also the solver's priority order.
type Direction uint8

const (
	// East moves to (x+1, y).
	East Direction = iota
	// West moves to (x-1, y).
	West
	// South moves to (x, y+1).
	South
	// North moves to (x, y-1).
	North
)

// Directions lists every direction in priority order.
var Directions = [4]Direction{East, West, South, North}

var (
	dirOpposite = [4]Direction{West, East, North, South}
	dirDelta    = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	dirName     = [4]string{"East", "West", "South", "North"}
)

// Bit returns the mask bit for d: East=1, West=2, South=4, North=8.
func (d Direction) Bit() Mask {
	return Mask(1) << d
}

// Opposite returns the direction pointing back from the neighbor.
func (d Direction) Opposite() Direction {
	return dirOpposite[d&3]
}

// Delta returns the coordinate offset of one step in direction d.
func (d Direction) Delta() (dx, dy int) {
	return dirDelta[d&3][0], dirDelta[d&3][1]
}

// Valid reports whether d is one of the four defined directions.
func (d Direction) Valid() bool {
	return d <= North
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return dirName[d]
}

// Mask is a cell's passage bitmask. A set bit means the passage in that
// direction is open; a clear bit means a wall.
type Mask uint8

// MaskAll has every direction bit set.
const MaskAll Mask = 0x0F

// Has reports whether the passage toward d is open.
func (m Mask) Has(d Direction) bool {
	return m&d.Bit() != 0
}

// With returns m with the passage toward d opened.
func (m Mask) With(d Direction) Mask {
	return m | d.Bit()
}

// Count returns the number of open passages in m.
func (m Mask) Count() int {
	return bits.OnesCount8(uint8(m & MaskAll))
}

// Point addresses a cell by column X and row Y.
type Point struct {
	X, Y int
}

// Step returns the neighbor of p in direction d. The result may lie outside the grid.
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Path is an ordered walk of cells from the entrance to the exit.
// An empty Path means no route was found.
type Path []Point

// Len returns the number of cells on the path.
func (p Path) Len() int { return len(p) }

// Empty reports whether the path holds no cells.
func (p Path) Empty() bool { return len(p) == 0 }

// Start returns the first cell. ok is false for an empty path.
func (p Path) Start() (pt Point, ok bool) {
	if len(p) == 0 {
		return Point{}, false
	}
	return p[0], true
}

// End returns the last cell. ok is false for an empty path.
func (p Path) End() (pt Point, ok bool) {
	if len(p) == 0 {
		return Point{}, false
	}
	return p[len(p)-1], true
}

// Maze is an immutable width×height grid of passage masks.
// cells holds masks in row-major order: index = y*width + x.
// Build one with FromMasks; the zero value is not usable.
type Maze struct {
	width, height int
	cells         []Mask
}
