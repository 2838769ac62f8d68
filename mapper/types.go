// Package mapper defines the mapping result type, tunable options, and
// sentinel errors for the mapper subpackage of
// github.com/hardy369/qubit-mapping.
package mapper

import (
	"errors"
	"fmt"
)

// Sentinel errors for mapping sessions.
var (
	// ErrNilInteraction is returned if a nil interaction graph is passed.
	ErrNilInteraction = errors.New("mapper: interaction graph is nil")

	// ErrNilCoupling is returned if a nil coupling graph is passed.
	ErrNilCoupling = errors.New("mapper: coupling graph is nil")

	// ErrInfeasible indicates more logical than physical qubits; checked at
	// session start, never discovered mid-run.
	ErrInfeasible = errors.New("mapper: more logical than physical qubits")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("mapper: invalid option supplied")
)

// Mapping is the produced placement π: Mapping[l] is the physical qubit
// assigned to logical qubit l. A returned Mapping is always total and
// injective; it is owned by the caller and never mutated afterwards.
type Mapping []int

// Len reports the number of logical qubits covered by π.
func (m Mapping) Len() int { return len(m) }

// Logical performs the inverse lookup: which logical qubit occupies physical
// qubit p. The second result is false when p is unoccupied.
func (m Mapping) Logical(p int) (int, bool) {
	for l, phys := range m {
		if phys == p {
			return l, true
		}
	}

	return 0, false
}

// TieBreak selects how equally-scored physical candidates are resolved.
type TieBreak int

const (
	// PreferDegree picks the candidate with the larger coupling degree,
	// then the smaller id. This is the documented default: a high-degree
	// placement stays flexible for interactions the score cannot yet see.
	PreferDegree TieBreak = iota

	// PreferLowID picks the smallest candidate id outright. On regular or
	// path-like topologies this keeps placements compact and is the variant
	// that reproduces identity-style placements for chain circuits.
	PreferLowID
)

// Option configures Map via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation when Map runs.
type Option func(*mapOptions)

type mapOptions struct {
	tieBreak TieBreak
	onAssign func(logical, physical int)
	err      error
}

func defaultOptions() mapOptions {
	return mapOptions{
		tieBreak: PreferDegree,
		onAssign: func(int, int) {},
	}
}

// WithTieBreak overrides the candidate tie-break policy.
func WithTieBreak(tb TieBreak) Option {
	return func(o *mapOptions) {
		if tb != PreferDegree && tb != PreferLowID {
			o.err = fmt.Errorf("unknown tie-break %d: %w", tb, ErrOptionViolation)
			return
		}
		o.tieBreak = tb
	}
}

// WithOnAssign registers a callback invoked after each commit π(l) = p, in
// commit order. Useful for tracing a session without a partial-mapping getter.
func WithOnAssign(fn func(logical, physical int)) Option {
	return func(o *mapOptions) {
		if fn != nil {
			o.onAssign = fn
		}
	}
}
