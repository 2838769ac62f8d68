// Package mapper implements the heuristic initial-mapping algorithm: seed
// the two graph centers onto each other, walk the interaction graph in a
// weighted BFS order, and greedily commit each logical qubit to the unused
// physical qubit closest to its already-placed neighbors.
package mapper

import (
	"fmt"

	"github.com/hardy369/qubit-mapping/coupling"
	"github.com/hardy369/qubit-mapping/interaction"
)

// unassigned marks a π slot not yet committed.
const unassigned = -1

// session holds the mutable state of one mapping run. It is created by Map,
// owned exclusively by that call, and discarded on return; no partial π is
// ever observable.
type session struct {
	ig   *interaction.Graph
	cg   *coupling.Graph
	opts mapOptions
	pi   Mapping
	used []bool // physical qubit already committed
}

// reference is an already-placed interaction neighbor of the qubit being
// assigned: its physical location and the connecting edge weight.
type reference struct {
	physical int
	weight   float64
}

// Map computes an initial placement of ig's logical qubits onto cg's
// physical qubits.
//
// The session seeds π(interaction center) = coupling center, then assigns
// every remaining BFS-ordered qubit the unused physical qubit minimizing
// Σ weight(q,n)·distance(c, π(n)) over q's already-placed neighbors n, with
// score ties resolved by the configured TieBreak. Isolated logical qubits are
// placed last, highest coupling degree first. The result is total, injective,
// and identical across runs for identical inputs.
//
// Returns ErrInfeasible when ig needs more qubits than cg offers; the check
// happens before any assignment.
//
// Complexity: O(L·P·d) time for L logical and P physical qubits with maximum
// interaction degree d; O(P) session memory beyond the two shared graphs.
func Map(ig *interaction.Graph, cg *coupling.Graph, opts ...Option) (Mapping, error) {
	if ig == nil {
		return nil, ErrNilInteraction
	}
	if cg == nil {
		return nil, ErrNilCoupling
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	numLogical, numPhysical := ig.NumQubits(), cg.NumQubits()
	if numLogical > numPhysical {
		return nil, fmt.Errorf("%d logical, %d physical: %w", numLogical, numPhysical, ErrInfeasible)
	}

	order, err := Order(ig)
	if err != nil {
		return nil, err
	}

	s := &session{
		ig:   ig,
		cg:   cg,
		opts: o,
		pi:   make(Mapping, numLogical),
		used: make([]bool, numPhysical),
	}
	for l := range s.pi {
		s.pi[l] = unassigned
	}

	// Seed: the heaviest component's center lands on the coupling center.
	s.commit(order[0], cg.Center())

	for _, q := range order[1:] {
		c, err := s.selectCandidate(q)
		if err != nil {
			return nil, err
		}
		s.commit(q, c)
	}

	// Fallback pass: isolated qubits have no placed neighbors, so the scoring
	// loop degenerates to the pure tie-break (degree, then id).
	for _, q := range ig.Isolated() {
		c, err := s.selectCandidate(q)
		if err != nil {
			return nil, err
		}
		s.commit(q, c)
	}

	return s.pi, nil
}

// commit finalizes π(logical) = physical and fires the OnAssign hook.
// A committed qubit is never reassigned.
func (s *session) commit(logical, physical int) {
	s.pi[logical] = physical
	s.used[physical] = true
	s.opts.onAssign(logical, physical)
}

// selectCandidate scores every unused physical qubit against q's already
// placed interaction neighbors and returns the winner: minimal
// Σ weight·distance, ties by the configured TieBreak. With no placed
// neighbors every candidate scores 0 and the tie-break decides alone.
func (s *session) selectCandidate(q int) (int, error) {
	refs, err := s.references(q)
	if err != nil {
		return 0, err
	}

	best, bestScore := unassigned, 0.0
	for c := 0; c < len(s.used); c++ {
		if s.used[c] {
			continue
		}
		score := 0.0
		for _, ref := range refs {
			d, derr := s.cg.Distance(c, ref.physical)
			if derr != nil {
				return 0, derr
			}
			score += ref.weight * float64(d)
		}
		take := best == unassigned || score < bestScore
		if !take && score == bestScore && s.opts.tieBreak == PreferDegree {
			degC, derr := s.cg.Degree(c)
			if derr != nil {
				return 0, derr
			}
			degBest, derr := s.cg.Degree(best)
			if derr != nil {
				return 0, derr
			}
			take = degC > degBest
		}
		if take {
			best, bestScore = c, score
		}
	}
	if best == unassigned {
		return 0, ErrInfeasible
	}

	return best, nil
}

// references collects q's interaction neighbors that already hold a physical
// qubit, with the connecting edge weights.
func (s *session) references(q int) ([]reference, error) {
	neighbors, err := s.ig.Neighbors(q)
	if err != nil {
		return nil, fmt.Errorf("neighbors of %d: %w", q, err)
	}
	refs := make([]reference, 0, len(neighbors))
	for _, n := range neighbors {
		if s.pi[n] != unassigned {
			refs = append(refs, reference{physical: s.pi[n], weight: s.ig.Weight(q, n)})
		}
	}

	return refs, nil
}
