// Package circuit defines the gate-stream types and the dependency
// extraction step that feeds the interaction model.
package circuit

import (
	"errors"
	"fmt"
)

// Sentinel errors for dependency extraction.
var (
	// ErrEmptyCircuit indicates the gate stream contains no two-qubit operation.
	ErrEmptyCircuit = errors.New("circuit: no two-qubit operations")

	// ErrQubitRange indicates a negative logical qubit id.
	ErrQubitRange = errors.New("circuit: qubit id out of range")

	// ErrSelfInteraction indicates a two-qubit gate acting twice on one qubit.
	ErrSelfInteraction = errors.New("circuit: gate interacts a qubit with itself")

	// ErrBadGate indicates a gate with an unsupported qubit arity.
	ErrBadGate = errors.New("circuit: gate must act on one or two qubits")
)

// Gate is a single operation from the upstream circuit front-end, reduced to
// what dependency extraction needs: the logical qubits it acts on. Name is an
// opaque caller label (e.g. "cx") and is never interpreted here.
type Gate struct {
	Name   string
	Qubits []int
}

// CX builds a two-qubit gate acting on (control, target).
func CX(control, target int) Gate {
	return Gate{Name: "cx", Qubits: []int{control, target}}
}

// Single builds a one-qubit gate; extraction discards it.
func Single(q int) Gate {
	return Gate{Qubits: []int{q}}
}

// Dependency is one two-qubit interaction in program order.
// Position is a dense index over the kept two-qubit gates, starting at 0.
// Endpoints are normalized so that U < V.
type Dependency struct {
	Position int
	U, V     int
}

// Extract folds an ordered gate stream into the dependency list consumed by
// the interaction model: two-qubit gates are kept in order and re-numbered
// densely from 0, single-qubit gates are discarded. No weighting or graph
// logic lives here.
//
// Returns ErrEmptyCircuit when no two-qubit gate survives, ErrBadGate for
// unsupported arities, ErrSelfInteraction when both endpoints coincide, and
// ErrQubitRange for negative ids.
//
// Complexity: O(G) over the gate count.
func Extract(gates []Gate) ([]Dependency, error) {
	deps := make([]Dependency, 0, len(gates))
	for i, gate := range gates {
		switch len(gate.Qubits) {
		case 1:
			if gate.Qubits[0] < 0 {
				return nil, fmt.Errorf("gate %d: qubit %d: %w", i, gate.Qubits[0], ErrQubitRange)
			}
			// single-qubit gates never constrain placement
			continue
		case 2:
			u, v := gate.Qubits[0], gate.Qubits[1]
			if u < 0 || v < 0 {
				return nil, fmt.Errorf("gate %d: qubits (%d,%d): %w", i, u, v, ErrQubitRange)
			}
			if u == v {
				return nil, fmt.Errorf("gate %d: qubit %d: %w", i, u, ErrSelfInteraction)
			}
			if u > v {
				u, v = v, u
			}
			deps = append(deps, Dependency{Position: len(deps), U: u, V: v})
		default:
			return nil, fmt.Errorf("gate %d acts on %d qubits: %w", i, len(gate.Qubits), ErrBadGate)
		}
	}
	if len(deps) == 0 {
		return nil, ErrEmptyCircuit
	}

	return deps, nil
}
