package grid

// ConnectedComponents groups cells that can reach each other through open
// passages. Each component is a slice of row-major indices in BFS order;
// components are ordered by their lowest index.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (m *Maze) ConnectedComponents() [][]int {
	seen := make([]bool, len(m.cells))
	var comps [][]int

	for i0 := range m.cells {
		if seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			ux, uy := m.Coordinate(u)
			for _, d := range Directions {
				if !m.cells[u].Has(d) {
					continue
				}
				n := Point{X: ux, Y: uy}.Step(d)
				vi := m.Index(n.X, n.Y)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}
