// Package qubitmapping computes an initial placement of a quantum circuit's
// logical qubits onto the physical qubits of a fixed hardware topology,
// minimizing the routing (SWAP) work a downstream pass will need.
//
// The pipeline, leaves first:
//
//	gate stream ──circuit.Extract──▶ dependency list
//	dependency list ──interaction.Build──▶ weighted interaction graph + center
//	hardware adjacency ──coupling.New──▶ distance matrix + center
//	both graphs ──mapper.Map──▶ π : logical → physical
//
// Everything is organized under five subpackages:
//
//	circuit/     — gate-stream glue: ordered two-qubit dependency extraction
//	coupling/    — immutable hardware model: distances, degrees, center
//	interaction/ — weighted logical-qubit graph: decay, components, center
//	mapper/      — the greedy center-seeded assignment session producing π
//	topology/    — deterministic coupling-map presets (Line, Grid, Tokyo, …)
//
// Quick ASCII example, a chain circuit on a line target:
//
//	logical  0──1──2──3   (cx gates 0·1, 1·2, 2·3, earliest heaviest)
//	physical 0──1──2──3   (hardware couplings)
//
// mapper.Map seeds the two graph centers onto each other and grows the
// placement outward, so the chain lands on the line with its heavy early
// edges adjacent.
//
// The whole core is deterministic: identical inputs always produce an
// identical π, and both graph models are immutable after construction, so
// one hardware target can serve arbitrarily many concurrent mapping
// sessions. Out of scope by design: circuit parsing, SWAP insertion,
// scheduling, rendering, and any CLI or persistence surface.
package qubitmapping
