// Package coupling models a fixed hardware topology of physical qubits:
// adjacency, per-qubit degree, all-pairs shortest-path distances, and the
// graph center used to seed an initial mapping.
package coupling

import "fmt"

// Graph is the immutable coupling model of a hardware target.
//
// It is built once from an explicit adjacency description and never mutated;
// the full distance matrix is computed at construction (one unweighted BFS
// per qubit) so that Distance, Eccentricity and Diameter are O(1) lookups.
// A Graph is safe for concurrent readers and may be shared across any number
// of mapping sessions without synchronization.
type Graph struct {
	n      int     // number of physical qubits
	adj    [][]int // neighbor lists, each sorted ascending
	dist   [][]int // dist[p][q] = shortest-path length in edges
	ecc    []int   // ecc[p] = max over q of dist[p][q]
	center int     // qubit minimizing eccentricity (degree, then id, on ties)
	diam   int     // max over p of ecc[p]
}

// New builds a coupling Graph from numQubits and an undirected edge list.
// Edge endpoints must lie in [0, numQubits); self-loops and duplicate edges
// (in either orientation) are rejected with ErrBadEdge. The topology must be
// connected: mapping quality assumes a finite distance between every pair,
// so an unreachable qubit fails construction with ErrDisconnected.
//
// Complexity: O(N·(N+E)) for the all-pairs BFS; O(N²) memory for the matrix.
func New(numQubits int, edges [][2]int) (*Graph, error) {
	if numQubits < 1 {
		return nil, fmt.Errorf("numQubits=%d: %w", numQubits, ErrNoQubits)
	}

	g := &Graph{
		n:   numQubits,
		adj: make([][]int, numQubits),
	}

	// Fold the edge list into sorted neighbor lists, rejecting malformed input.
	seen := make(map[[2]int]struct{}, len(edges))
	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= numQubits || v < 0 || v >= numQubits {
			return nil, fmt.Errorf("edge (%d,%d): %w", u, v, ErrQubitRange)
		}
		if u == v {
			return nil, fmt.Errorf("self-loop on qubit %d: %w", u, ErrBadEdge)
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("duplicate edge (%d,%d): %w", u, v, ErrBadEdge)
		}
		seen[key] = struct{}{}
		g.adj[u] = insertSorted(g.adj[u], v)
		g.adj[v] = insertSorted(g.adj[v], u)
	}

	if err := g.computeDistances(); err != nil {
		return nil, err
	}
	g.computeCenter()

	return g, nil
}

// insertSorted inserts v into the ascending slice s, preserving order.
// Neighbor lists are tiny (hardware degree is bounded), so linear insertion
// beats a sort pass per node.
func insertSorted(s []int, v int) []int {
	i := len(s)
	for i > 0 && s[i-1] > v {
		i--
	}
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v

	return s
}

// computeDistances runs one unweighted BFS per qubit, filling the distance
// matrix and per-qubit eccentricities. Returns ErrDisconnected if any pair is
// unreachable.
func (g *Graph) computeDistances() error {
	g.dist = make([][]int, g.n)
	g.ecc = make([]int, g.n)
	queue := make([]int, 0, g.n)

	for src := 0; src < g.n; src++ {
		row := make([]int, g.n)
		for i := range row {
			row[i] = -1
		}
		row[src] = 0
		queue = append(queue[:0], src)

		reached := 1
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, v := range g.adj[u] {
				if row[v] < 0 {
					row[v] = row[u] + 1
					queue = append(queue, v)
					reached++
				}
			}
		}
		if reached < g.n {
			return fmt.Errorf("qubit unreachable from %d: %w", src, ErrDisconnected)
		}

		ecc := 0
		for _, d := range row {
			if d > ecc {
				ecc = d
			}
		}
		g.dist[src] = row
		g.ecc[src] = ecc
	}

	return nil
}

// computeCenter selects the qubit with minimal eccentricity; ties prefer the
// larger degree (a structurally flexible seed), then the smaller id.
func (g *Graph) computeCenter() {
	best := 0
	for p := 1; p < g.n; p++ {
		switch {
		case g.ecc[p] < g.ecc[best]:
			best = p
		case g.ecc[p] == g.ecc[best] && len(g.adj[p]) > len(g.adj[best]):
			best = p
		}
	}
	g.center = best
	g.diam = g.ecc[best]
	for p := 0; p < g.n; p++ {
		if g.ecc[p] > g.diam {
			g.diam = g.ecc[p]
		}
	}
}

// NumQubits reports the number of physical qubits in the topology.
func (g *Graph) NumQubits() int { return g.n }

// Degree reports the neighbor count of p.
func (g *Graph) Degree(p int) (int, error) {
	if p < 0 || p >= g.n {
		return 0, fmt.Errorf("qubit %d: %w", p, ErrQubitRange)
	}

	return len(g.adj[p]), nil
}

// Neighbors returns the qubits adjacent to p, in ascending order.
// The returned slice is a copy; callers may retain or modify it freely.
func (g *Graph) Neighbors(p int) ([]int, error) {
	if p < 0 || p >= g.n {
		return nil, fmt.Errorf("qubit %d: %w", p, ErrQubitRange)
	}
	out := make([]int, len(g.adj[p]))
	copy(out, g.adj[p])

	return out, nil
}

// Distance reports the unweighted shortest-path length between p and q.
// Distance(p, p) = 0; the matrix is symmetric and satisfies the triangle
// inequality by construction.
func (g *Graph) Distance(p, q int) (int, error) {
	if p < 0 || p >= g.n || q < 0 || q >= g.n {
		return 0, fmt.Errorf("qubits (%d,%d): %w", p, q, ErrQubitRange)
	}

	return g.dist[p][q], nil
}

// Eccentricity reports the maximum distance from p to any other qubit.
func (g *Graph) Eccentricity(p int) (int, error) {
	if p < 0 || p >= g.n {
		return 0, fmt.Errorf("qubit %d: %w", p, ErrQubitRange)
	}

	return g.ecc[p], nil
}

// Diameter reports the maximum eccentricity over all qubits.
func (g *Graph) Diameter() int { return g.diam }

// Center reports the physical qubit minimizing eccentricity.
// Ties prefer the larger degree, then the smaller numeric id, so the result
// is fully deterministic for a given topology.
func (g *Graph) Center() int { return g.center }
