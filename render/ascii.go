package render

import (
	"strings"

	"github.com/katalvlaran/lab/grid"
)

// ASCII draws the maze with the conventional wall picture and marks every
// path cell with '*'. p may be empty.
//
//	+---+---+
//	| *   * |
//	+---+   +
//	|     * |
//	+---+---+
func ASCII(m *grid.Maze, p grid.Path) string {
	onPath := make(map[grid.Point]struct{}, len(p))
	for _, pt := range p {
		onPath[pt] = struct{}{}
	}

	var sb strings.Builder
	sb.WriteString("+" + strings.Repeat("---+", m.Width()) + "\n")
	for y := 0; y < m.Height(); y++ {
		sb.WriteByte('|')
		for x := 0; x < m.Width(); x++ {
			if _, ok := onPath[grid.Point{X: x, Y: y}]; ok {
				sb.WriteString(" * ")
			} else {
				sb.WriteString("   ")
			}
			if m.Mask(x, y).Has(grid.East) {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte('|')
			}
		}
		sb.WriteString("\n+")
		for x := 0; x < m.Width(); x++ {
			if m.Mask(x, y).Has(grid.South) {
				sb.WriteString("   +")
			} else {
				sb.WriteString("---+")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
