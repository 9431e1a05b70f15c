package grid_test

import (
	"testing"

	"github.com/katalvlaran/lab/generator"
)

// BenchmarkVerify measures spanning-tree verification on a 500×500 maze.
// Complexity: O(W×H)
func BenchmarkVerify(b *testing.B) {
	m, err := generator.Generate(500, 500, generator.WithSeed(42))
	if err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = m.Verify(); err != nil {
			b.Fatalf("Verify failed: %v", err)
		}
	}
}

// BenchmarkConnectedComponents measures the BFS component scan on the same grid.
func BenchmarkConnectedComponents(b *testing.B) {
	m, err := generator.Generate(500, 500, generator.WithSeed(42))
	if err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.ConnectedComponents()
	}
}
