package mapper

import (
	"fmt"
	"sort"

	"github.com/hardy369/qubit-mapping/interaction"
)

// frontierItem pairs a newly discovered qubit with the weight of the edge to
// the visited qubit that discovered it.
type frontierItem struct {
	id     int
	weight float64
}

// Order computes the visitation order the assignment loop follows: a
// breadth-first traversal of each interaction component from its center,
// components in decreasing total-weight order. Within one BFS level, qubits
// discovered earlier-and-heavier come first: the frontier sorts by descending
// discovering-edge weight, then ascending id. Isolated qubits never appear;
// the fallback pass places them.
//
// Complexity: O(N + E log E) over the interaction graph.
func Order(ig *interaction.Graph) ([]int, error) {
	if ig == nil {
		return nil, ErrNilInteraction
	}

	order := make([]int, 0, ig.NumQubits())
	visited := make([]bool, ig.NumQubits())
	for _, comp := range ig.Components() {
		part, err := componentOrder(ig, comp.Center, visited)
		if err != nil {
			return nil, err
		}
		order = append(order, part...)
	}

	return order, nil
}

// componentOrder runs one level-synchronous BFS from center. Levels are
// expanded in sorted order, so the first qubit adjacent to an undiscovered
// neighbor is its discoverer and fixes the neighbor's frontier weight.
func componentOrder(ig *interaction.Graph, center int, visited []bool) ([]int, error) {
	var out []int
	level := []frontierItem{{id: center}}
	visited[center] = true

	for len(level) > 0 {
		var next []frontierItem
		for _, item := range level {
			out = append(out, item.id)
			neighbors, err := ig.Neighbors(item.id)
			if err != nil {
				return nil, fmt.Errorf("neighbors of %d: %w", item.id, err)
			}
			for _, nbr := range neighbors {
				if !visited[nbr] {
					visited[nbr] = true
					next = append(next, frontierItem{id: nbr, weight: ig.Weight(item.id, nbr)})
				}
			}
		}
		sort.Slice(next, func(i, j int) bool {
			if next[i].weight != next[j].weight {
				return next[i].weight > next[j].weight
			}

			return next[i].id < next[j].id
		})
		level = next
	}

	return out, nil
}
