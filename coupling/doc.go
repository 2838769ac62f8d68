// Package coupling provides the static hardware model consumed by the mapper:
// an immutable, connected, undirected graph over physical qubits with a
// precomputed all-pairs distance matrix.
//
// What
//
//   - Build a Graph once per hardware target from (numQubits, edge list).
//   - Query Distance(p, q), Degree(p), Neighbors(p), Eccentricity(p),
//     Diameter() and Center() in O(1) (O(deg) for Neighbors).
//   - Center() is the eccentricity-minimizing qubit; ties prefer the larger
//     degree, then the smaller id.
//
// Why
//
//   - Every assignment decision during mapping is a distance lookup; caching
//     the full matrix up front turns the hot loop into array indexing.
//   - A build-once immutable model is trivially shareable: many circuits can
//     be mapped against the same hardware target concurrently with no locks.
//
// Determinism
//
//	Neighbor lists are kept sorted ascending and the center tie-break is
//	total (eccentricity, then degree, then id), so every query is fully
//	reproducible for a given topology.
//
// Complexity (N = qubits, E = couplings)
//
//   - Construction: O(N·(N+E)) time, O(N²) memory (distance matrix).
//   - Queries: O(1), except Neighbors at O(deg).
//
// Errors
//
//   - ErrNoQubits      if numQubits < 1.
//   - ErrQubitRange    if an edge endpoint or query id is out of range.
//   - ErrBadEdge       for self-loops or duplicate edges.
//   - ErrDisconnected  if any qubit pair is unreachable (raised at New, not
//     discovered later by the mapper).
package coupling
