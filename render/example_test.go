// File: render/example_test.go
package render_test

import (
	"fmt"

	"github.com/katalvlaran/lab/grid"
	"github.com/katalvlaran/lab/render"
	"github.com/katalvlaran/lab/solver"
)

// ExampleASCII prints a small hand-carved maze with its solution.
func ExampleASCII() {
	m, _ := grid.FromMasks(3, 2, []grid.Mask{5, 2, 4, 9, 3, 10})
	p, _ := solver.Solve(m)
	fmt.Print(render.ASCII(m, p))

	// Output:
	// +---+---+---+
	// | *     |   |
	// +   +---+   +
	// | *   *   * |
	// +---+---+---+
}

// ExampleSegments lists the reference-convention lines of a two-cell maze.
func ExampleSegments() {
	m, _ := grid.FromMasks(2, 1, []grid.Mask{grid.East.Bit(), grid.West.Bit()})
	segs, _ := render.Segments(m, 20)
	for _, s := range segs {
		fmt.Printf("(%g,%g)-(%g,%g)\n", s.A.X, s.A.Y, s.B.X, s.B.Y)
	}

	// Output:
	// (0,0)-(20,0)
	// (20,0)-(20,20)
}
