// Package circuit is the thin glue between an external circuit front-end and
// the mapping core: it reduces an ordered gate stream to the dependency list
// (position, u, v) that the interaction model folds into a weighted graph.
//
// What
//
//   - Gate: a front-end operation reduced to the logical qubits it touches.
//   - Dependency: one two-qubit interaction, endpoints normalized U < V,
//     positions dense from 0 over the kept gates.
//   - Extract: keeps two-qubit gates in program order, discards single-qubit
//     gates, validates ids.
//
// Why
//
//	Parsing and compiling circuits is out of scope for this module; whatever
//	representation the front-end uses, it only has to produce an ordered
//	[]Gate. The dependency list is the sole channel by which circuit
//	structure enters the core.
//
// Errors
//
//   - ErrEmptyCircuit     if no two-qubit gate survives extraction.
//   - ErrBadGate          for gates acting on zero or three-plus qubits.
//   - ErrSelfInteraction  for a two-qubit gate with coinciding endpoints.
//   - ErrQubitRange       for negative qubit ids.
package circuit
