package grid

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// ToGraph converts the maze into an undirected gonum graph.
// Each cell becomes a node whose ID is its row-major index; each open
// passage becomes one edge.
// Complexity: O(W×H) time and memory.
func (m *Maze) ToGraph() *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for idx := range m.cells {
		g.AddNode(simple.Node(idx))
	}
	// East and South only, so every passage is added once.
	for idx, c := range m.cells {
		x, y := m.Coordinate(idx)
		if c.Has(East) {
			g.SetEdge(simple.Edge{F: simple.Node(idx), T: simple.Node(m.Index(x+1, y))})
		}
		if c.Has(South) {
			g.SetEdge(simple.Edge{F: simple.Node(idx), T: simple.Node(m.Index(x, y+1))})
		}
	}
	return g
}

// Verify checks that the passage graph is a spanning tree of the grid:
// a single connected component with exactly W·H−1 passages.
// Returns ErrDisconnected or ErrCycle otherwise.
// Complexity: O(W×H).
func (m *Maze) Verify() error {
	comps := topo.ConnectedComponents(m.ToGraph())
	if len(comps) != 1 {
		return fmt.Errorf("%w: %d components", ErrDisconnected, len(comps))
	}
	// A connected graph on V nodes has at least V-1 edges; any extra edge closes a loop.
	if want, got := len(m.cells)-1, m.PassageCount(); got != want {
		return fmt.Errorf("%w: %d passages, want %d", ErrCycle, got, want)
	}
	return nil
}

// ValidatePath reports whether p starts at the entrance, ends at the exit,
// and moves between grid-adjacent cells joined by open passages.
// The returned error wraps ErrInvalidPath.
func (m *Maze) ValidatePath(p Path) error {
	if p.Empty() {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	if p[0] != m.Entrance() {
		return fmt.Errorf("%w: starts at %v, want %v", ErrInvalidPath, p[0], m.Entrance())
	}
	if last := p[len(p)-1]; last != m.Exit() {
		return fmt.Errorf("%w: ends at %v, want %v", ErrInvalidPath, last, m.Exit())
	}
	for i := 1; i < len(p); i++ {
		from, to := p[i-1], p[i]
		if !m.InBounds(from.X, from.Y) || !m.InBounds(to.X, to.Y) {
			return fmt.Errorf("%w: step %d leaves the grid", ErrInvalidPath, i)
		}
		joined := false
		for _, d := range Directions {
			if from.Step(d) == to {
				joined = m.HasPassage(from, d)
				break
			}
		}
		if !joined {
			return fmt.Errorf("%w: no passage %v -> %v", ErrInvalidPath, from, to)
		}
	}
	return nil
}
