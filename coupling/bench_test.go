package coupling_test

import (
	"testing"

	"github.com/hardy369/qubit-mapping/coupling"
)

// gridEdges emits the edge list of a rows×cols lattice, row-major.
func gridEdges(rows, cols int) [][2]int {
	edges := make([][2]int, 0, 2*rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := r*cols + c
			if c+1 < cols {
				edges = append(edges, [2]int{id, id + 1})
			}
			if r+1 < rows {
				edges = append(edges, [2]int{id, id + cols})
			}
		}
	}

	return edges
}

// BenchmarkNew_Grid16x16 measures the all-pairs BFS construction cost for a
// 256-qubit lattice.
func BenchmarkNew_Grid16x16(b *testing.B) {
	edges := gridEdges(16, 16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := coupling.New(256, edges); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDistance measures the cached-matrix lookup path.
func BenchmarkDistance(b *testing.B) {
	g, err := coupling.New(256, gridEdges(16, 16))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.Distance(i%256, (i*7)%256); err != nil {
			b.Fatal(err)
		}
	}
}
