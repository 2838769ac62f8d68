// Package coupling defines sentinel errors for the coupling subpackage
// of github.com/hardy369/qubit-mapping.
package coupling

import "errors"

// Sentinel errors for coupling graph construction and queries.
var (
	// ErrNoQubits indicates the topology declares fewer than one physical qubit.
	ErrNoQubits = errors.New("coupling: topology must have at least one qubit")

	// ErrQubitRange indicates a qubit id outside [0, NumQubits).
	ErrQubitRange = errors.New("coupling: qubit id out of range")

	// ErrBadEdge indicates a self-loop or a duplicate edge in the adjacency input.
	ErrBadEdge = errors.New("coupling: invalid edge in topology")

	// ErrDisconnected indicates the coupling graph is not fully connected.
	ErrDisconnected = errors.New("coupling: topology is disconnected")
)
