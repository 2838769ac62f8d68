// Package interaction builds the weighted logical-qubit interaction graph
// from a circuit's dependency list and answers the structural queries the
// mapper needs: edge weights, centers, connected components.
package interaction

import (
	"fmt"
	"sort"

	"github.com/hardy369/qubit-mapping/circuit"
)

// Graph is the immutable interaction model of one circuit.
//
// Nodes are logical qubits 0..NumQubits()-1; an edge {u,v} exists iff u and v
// share at least one two-qubit gate, and carries the weight accumulated over
// all such gates under the decay function. Connectivity (not weight) defines
// distances for center finding; weight drives tie-breaking and the mapper's
// candidate scoring.
type Graph struct {
	n        int                // max qubit id + 1 over all dependencies
	adj      [][]int            // neighbor lists, sorted ascending
	weight   map[[2]int]float64 // normalized pair -> accumulated weight
	count    map[[2]int]int     // normalized pair -> interaction count
	incident []float64          // per-qubit total incident weight
	comps    []Component        // by decreasing total weight
	isolated []int              // degree-0 qubits, ascending
}

// Build folds a dependency list into an interaction Graph.
//
// For each (position t, u, v) in order: the edge {u,v} gains W(t), where W is
// the decay function (DefaultDecay unless WithDecay overrides it). Positions
// must be strictly increasing and non-negative; endpoints must be distinct
// non-negative ids. The node count is the maximum id plus one, so qubits the
// circuit declares but never entangles appear as isolated nodes.
//
// Complexity: O(D) to fold D dependencies, plus O(N·(N+E)) for per-component
// center analysis.
func Build(deps []circuit.Dependency, opts ...Option) (*Graph, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(deps) == 0 {
		return nil, ErrNoInteractions
	}

	g := &Graph{
		weight: make(map[[2]int]float64, len(deps)),
		count:  make(map[[2]int]int, len(deps)),
	}

	lastPos := -1
	for _, d := range deps {
		if d.Position <= lastPos {
			return nil, fmt.Errorf("position %d after %d: %w", d.Position, lastPos, ErrBadDependency)
		}
		lastPos = d.Position
		u, v := d.U, d.V
		if u < 0 || v < 0 {
			return nil, fmt.Errorf("dependency %d: qubits (%d,%d): %w", d.Position, u, v, ErrBadDependency)
		}
		if u == v {
			return nil, fmt.Errorf("dependency %d: qubit %d: %w", d.Position, u, ErrBadDependency)
		}
		if u > v {
			u, v = v, u
		}
		if v >= g.n {
			g.n = v + 1
		}

		w := o.decay(d.Position)
		if w <= 0 {
			return nil, fmt.Errorf("W(%d)=%v: %w", d.Position, w, ErrBadDecay)
		}
		key := [2]int{u, v}
		g.weight[key] += w
		g.count[key]++
	}

	g.buildAdjacency()
	g.buildComponents()

	return g, nil
}

// buildAdjacency materializes sorted neighbor lists and incident weights
// from the folded edge map.
func (g *Graph) buildAdjacency() {
	g.adj = make([][]int, g.n)
	g.incident = make([]float64, g.n)
	for key, w := range g.weight {
		u, v := key[0], key[1]
		g.adj[u] = append(g.adj[u], v)
		g.adj[v] = append(g.adj[v], u)
		g.incident[u] += w
		g.incident[v] += w
	}
	for u := range g.adj {
		sort.Ints(g.adj[u])
		if len(g.adj[u]) == 0 {
			g.isolated = append(g.isolated, u)
		}
	}
}

// buildComponents discovers connected components over the edge set, computes
// each component's center, and orders components by decreasing total weight
// (ties: smaller minimum member id first).
func (g *Graph) buildComponents() {
	seen := make([]bool, g.n)
	for u := 0; u < g.n; u++ {
		if seen[u] || len(g.adj[u]) == 0 {
			continue
		}
		// BFS to collect the component of u.
		members := []int{u}
		seen[u] = true
		for qi := 0; qi < len(members); qi++ {
			for _, v := range g.adj[members[qi]] {
				if !seen[v] {
					seen[v] = true
					members = append(members, v)
				}
			}
		}
		sort.Ints(members)

		total := 0.0
		for _, m := range members {
			total += g.incident[m]
		}
		total /= 2 // each edge counted from both endpoints

		g.comps = append(g.comps, Component{
			Members: members,
			Center:  g.componentCenter(members),
			Weight:  total,
		})
	}

	sort.SliceStable(g.comps, func(i, j int) bool {
		if g.comps[i].Weight != g.comps[j].Weight {
			return g.comps[i].Weight > g.comps[j].Weight
		}

		return g.comps[i].Members[0] < g.comps[j].Members[0]
	})
}

// componentCenter finds the eccentricity-minimizing member over unweighted
// shortest paths within the component. Ties prefer the larger total incident
// weight, then the smaller id; members ascend, so the scan order settles the
// final tie.
func (g *Graph) componentCenter(members []int) int {
	dist := make([]int, g.n)
	queue := make([]int, 0, len(members))

	best, bestEcc := members[0], -1
	for _, src := range members {
		for _, m := range members {
			dist[m] = -1
		}
		dist[src] = 0
		queue = append(queue[:0], src)
		ecc := 0
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, v := range g.adj[u] {
				if dist[v] < 0 {
					dist[v] = dist[u] + 1
					if dist[v] > ecc {
						ecc = dist[v]
					}
					queue = append(queue, v)
				}
			}
		}
		if bestEcc < 0 || ecc < bestEcc ||
			(ecc == bestEcc && g.incident[src] > g.incident[best]) {
			best, bestEcc = src, ecc
		}
	}

	return best
}

// NumQubits reports the logical qubit count (maximum id + 1 over all
// dependencies). Qubits never entangled still count and appear in Isolated.
func (g *Graph) NumQubits() int { return g.n }

// Weight reports the accumulated weight of edge {u,v}, or 0 when the qubits
// never interacted (an existing edge always has weight > 0).
func (g *Graph) Weight(u, v int) float64 {
	if u > v {
		u, v = v, u
	}

	return g.weight[[2]int{u, v}]
}

// InteractionCount reports how many two-qubit gates act on {u,v}.
func (g *Graph) InteractionCount(u, v int) int {
	if u > v {
		u, v = v, u
	}

	return g.count[[2]int{u, v}]
}

// Degree reports the number of distinct interaction partners of u.
func (g *Graph) Degree(u int) (int, error) {
	if u < 0 || u >= g.n {
		return 0, fmt.Errorf("qubit %d: %w", u, ErrQubitRange)
	}

	return len(g.adj[u]), nil
}

// Neighbors returns the interaction partners of u in ascending order.
// The returned slice is a copy; callers may retain or modify it freely.
func (g *Graph) Neighbors(u int) ([]int, error) {
	if u < 0 || u >= g.n {
		return nil, fmt.Errorf("qubit %d: %w", u, ErrQubitRange)
	}
	out := make([]int, len(g.adj[u]))
	copy(out, g.adj[u])

	return out, nil
}

// IncidentWeight reports the total weight of all edges incident to u.
func (g *Graph) IncidentWeight(u int) (float64, error) {
	if u < 0 || u >= g.n {
		return 0, fmt.Errorf("qubit %d: %w", u, ErrQubitRange)
	}

	return g.incident[u], nil
}

// Center reports the center of the heaviest component, the qubit the mapper
// seeds onto the coupling center.
func (g *Graph) Center() int { return g.comps[0].Center }

// Components returns the connected components in decreasing total-weight
// order, each with its own center. The result is a deep copy.
func (g *Graph) Components() []Component {
	out := make([]Component, len(g.comps))
	for i, c := range g.comps {
		members := make([]int, len(c.Members))
		copy(members, c.Members)
		out[i] = Component{Members: members, Center: c.Center, Weight: c.Weight}
	}

	return out
}

// Isolated returns the logical qubits with no interactions, ascending.
// The mapper places them in a fallback pass after all BFS-ordered qubits.
func (g *Graph) Isolated() []int {
	out := make([]int, len(g.isolated))
	copy(out, g.isolated)

	return out
}
