// Package mapper produces the initial placement π: logical → physical qubit
// that a downstream routing pass starts from, minimizing the expected number
// of SWAP insertions under hardware adjacency constraints.
//
// What
//
//   - Map(ig, cg, opts...) runs one mapping session over an interaction
//     graph and a coupling graph and returns a total, injective Mapping.
//   - The session seeds π(interaction center) = coupling center, walks the
//     interaction graph in the Order traversal (per-component BFS, frontier
//     ties by descending discovering-edge weight then id), and for each qubit
//     commits the unused physical qubit minimizing
//     Σ weight(q,n)·distance(c, π(n)) over already-placed neighbors n.
//   - Score ties resolve by the configured TieBreak (PreferDegree default:
//     larger coupling degree, then smaller id).
//   - Isolated logical qubits are placed by a fallback pass, smallest id
//     first, onto the unused qubit of highest degree.
//   - WithOnAssign observes each commit; there is no getter for a partially
//     built mapping: a session either completes or fails.
//
// Why
//
//	Placing heavily-and-early interacting qubits adjacently up front saves
//	routing SWAPs later; the heuristic is intentionally greedy with no
//	backtracking, so its tie-break rules are part of the output contract.
//
// Determinism
//
//	The visitation order, the candidate scan (ascending physical id), and
//	every tie-break are total orders, so identical inputs always yield an
//	identical π. The two input graphs are read-only throughout; many
//	sessions may share them concurrently.
//
// Complexity (L = logical, P = physical qubits, d = max interaction degree)
//
//   - Time: O(L·P·d) for the assignment loop (distance lookups are O(1)).
//   - Memory: O(P) per session beyond the shared graphs.
//
// Errors
//
//   - ErrNilInteraction / ErrNilCoupling for nil inputs.
//   - ErrInfeasible when L > P, checked before any assignment.
//   - ErrOptionViolation for an invalid TieBreak value.
package mapper
