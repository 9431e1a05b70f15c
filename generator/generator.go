package generator

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lab/grid"
)

// frame is one level of the backtracking stack: the cell being expanded,
// its shuffled direction order and the next direction to try.
type frame struct {
	cell grid.Point
	dirs [4]grid.Direction
	next int
}

// carver holds the mutable state of a single Generate call.
type carver struct {
	width, height int
	masks         []grid.Mask
	visited       []bool
	rng           *rand.Rand
	onCarve       CarveFunc
}

// Generate carves a perfect maze of width×height cells.
// Dimensions are validated before any RNG draw. The result always passes
// (*grid.Maze).Verify.
func Generate(width, height int, opts ...Option) (*grid.Maze, error) {
	if err := grid.ValidateDimensions(width, height); err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}
	cfg := newConfig(opts...)

	var start grid.Point
	if cfg.start != nil {
		start = *cfg.start
		if start.X < 0 || start.X >= width || start.Y < 0 || start.Y >= height {
			return nil, fmt.Errorf("%w: %v in %dx%d", ErrStartOutOfBounds, start, width, height)
		}
	} else {
		start.X = cfg.rng.Intn(width)
		start.Y = cfg.rng.Intn(height)
	}

	c := &carver{
		width:   width,
		height:  height,
		masks:   make([]grid.Mask, width*height),
		visited: make([]bool, width*height),
		rng:     cfg.rng,
		onCarve: cfg.onCarve,
	}
	c.carve(start)

	return grid.FromMasks(width, height, c.masks)
}

func (c *carver) index(p grid.Point) int {
	return p.Y*c.width + p.X
}

func (c *carver) open(p grid.Point) bool {
	return p.X >= 0 && p.X < c.width && p.Y >= 0 && p.Y < c.height && !c.visited[c.index(p)]
}

// enter marks p visited and returns its frame. Directions are shuffled here,
// on entry, which is the point where a recursive carver would shuffle.
func (c *carver) enter(p grid.Point) frame {
	c.visited[c.index(p)] = true
	return frame{cell: p, dirs: shuffledDirections(c.rng)}
}

// carve runs the backtracker from start until every reachable cell is visited.
func (c *carver) carve(start grid.Point) {
	stack := make([]frame, 0, 64)
	stack = append(stack, c.enter(start))

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}
		d := top.dirs[top.next]
		top.next++

		from := top.cell
		to := from.Step(d)
		if !c.open(to) {
			continue
		}
		c.masks[c.index(from)] = c.masks[c.index(from)].With(d)
		c.masks[c.index(to)] = c.masks[c.index(to)].With(d.Opposite())
		if c.onCarve != nil {
			c.onCarve(from, to, d)
		}
		stack = append(stack, c.enter(to))
	}
}
