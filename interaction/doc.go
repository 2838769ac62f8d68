// Package interaction folds a circuit's dependency list into a weighted,
// undirected graph over logical qubits and analyzes its structure for the
// mapper: centers, connected components, isolated qubits.
//
// What
//
//   - Build(deps, opts...) accumulates one edge per interacting qubit pair;
//     each occurrence at gate position t contributes W(t), strictly
//     decreasing in t (DefaultDecay is 1/(t+1), WithDecay overrides it).
//   - Weight(u, v), InteractionCount(u, v), Degree(u), Neighbors(u),
//     IncidentWeight(u) query the folded graph.
//   - Center() and Components() drive the mapper's visitation order:
//     centers minimize eccentricity over unweighted shortest paths
//     (connectivity only; weight is a tie-breaker, not a distance), with
//     ties resolved by larger incident weight, then smaller id.
//   - Isolated() lists qubits with no two-qubit gates; the mapper places
//     them in its fallback pass.
//
// Why
//
//	Earlier gates should dominate an initial placement: by the time later
//	gates execute, routing may already have moved their operands. Folding the
//	whole dependency list up front, instead of mutating a graph mid-run,
//	yields an immutable model that any number of mapping sessions can share.
//
// Determinism
//
//	Neighbor lists are sorted, component membership ascends, components order
//	by decreasing total weight (then smallest member id), and every tie-break
//	is total. Identical dependency lists always produce identical analyses.
//
// Complexity (D = dependencies, N = qubits, E = distinct pairs)
//
//   - Build: O(D + N·(N+E)) time (fold + per-component center BFS),
//     O(N + E) memory.
//   - Queries: O(1), except Neighbors/Components/Isolated which copy.
//
// Errors
//
//   - ErrNoInteractions  for an empty dependency list.
//   - ErrBadDependency   for malformed triples (order, range, self-pairs).
//   - ErrQubitRange      for out-of-range query ids.
//   - ErrOptionViolation for a nil decay function.
//   - ErrBadDecay        when the decay function yields a non-positive weight.
package interaction
