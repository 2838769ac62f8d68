// Package topology ships deterministic coupling-map presets so tests and
// callers can target standard hardware shapes without hand-writing edge
// lists.
package topology

import (
	"errors"
	"fmt"

	"github.com/hardy369/qubit-mapping/coupling"
)

// ErrTooFewQubits indicates a size parameter below the constructor's minimum.
var ErrTooFewQubits = errors.New("topology: parameter too small")

// Minimum sizes per constructor.
const (
	minLineQubits = 2
	minRingQubits = 3
	minGridDim    = 1
	minGridCells  = 2
	minStarQubits = 2
)

// tokyoQubits is the size of the fixed 20-qubit reference map.
const tokyoQubits = 20

// Line builds a path 0–1–…–(n-1). Edges are emitted in ascending order.
func Line(n int) (*coupling.Graph, error) {
	if n < minLineQubits {
		return nil, fmt.Errorf("Line: n=%d < min=%d: %w", n, minLineQubits, ErrTooFewQubits)
	}
	edges := make([][2]int, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, [2]int{i - 1, i})
	}

	return coupling.New(n, edges)
}

// Ring builds a cycle 0–1–…–(n-1)–0. Edges are emitted in ascending order,
// closing edge last.
func Ring(n int) (*coupling.Graph, error) {
	if n < minRingQubits {
		return nil, fmt.Errorf("Ring: n=%d < min=%d: %w", n, minRingQubits, ErrTooFewQubits)
	}
	edges := make([][2]int, 0, n)
	for i := 1; i < n; i++ {
		edges = append(edges, [2]int{i - 1, i})
	}
	edges = append(edges, [2]int{0, n - 1})

	return coupling.New(n, edges)
}

// Grid builds a rows×cols orthogonal lattice with 4-neighborhood. Qubit ids
// are row-major (id = r·cols + c); for each cell the right edge is emitted
// before the bottom edge. At least two cells are required.
func Grid(rows, cols int) (*coupling.Graph, error) {
	if rows < minGridDim || cols < minGridDim || rows*cols < minGridCells {
		return nil, fmt.Errorf("Grid: rows=%d, cols=%d: %w", rows, cols, ErrTooFewQubits)
	}
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

	return coupling.New(rows*cols, edges)
}

// Star builds a hub-and-spoke map: qubit 0 couples to every other qubit.
func Star(n int) (*coupling.Graph, error) {
	if n < minStarQubits {
		return nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarQubits, ErrTooFewQubits)
	}
	edges := make([][2]int, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, [2]int{0, i})
	}

	return coupling.New(n, edges)
}

// Tokyo builds the fixed 20-qubit coupling map of the reference hardware
// target, a 5×4 lattice with diagonal couplings.
func Tokyo() (*coupling.Graph, error) {
	edges := [][2]int{
		{0, 1}, {0, 5},
		{1, 2}, {1, 6}, {1, 7},
		{2, 3}, {2, 6}, {2, 7},
		{3, 4}, {3, 8}, {3, 9},
		{4, 8}, {4, 9},
		{5, 6}, {5, 10}, {5, 11},
		{6, 7}, {6, 10}, {6, 11},
		{7, 8}, {7, 12}, {7, 13},
		{8, 9}, {8, 12}, {8, 13},
		{9, 14},
		{10, 11}, {10, 15},
		{11, 12}, {11, 16}, {11, 17},
		{12, 13}, {12, 16}, {12, 17},
		{13, 14}, {13, 18}, {13, 19},
		{14, 18}, {14, 19},
		{15, 16},
		{16, 17},
		{17, 18},
		{18, 19},
	}

	return coupling.New(tokyoQubits, edges)
}
