// Package interaction defines sentinel errors, tunable options, and the
// component type for the interaction subpackage of
// github.com/hardy369/qubit-mapping.
package interaction

import "errors"

// Sentinel errors for interaction graph construction and queries.
var (
	// ErrNoInteractions indicates an empty dependency list.
	ErrNoInteractions = errors.New("interaction: dependency list is empty")

	// ErrBadDependency indicates a malformed dependency triple
	// (non-increasing position, negative id, or coinciding endpoints).
	ErrBadDependency = errors.New("interaction: invalid dependency")

	// ErrQubitRange indicates a logical qubit id outside [0, NumQubits).
	ErrQubitRange = errors.New("interaction: qubit id out of range")

	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("interaction: invalid option supplied")

	// ErrBadDecay indicates the decay function produced a non-positive weight.
	ErrBadDecay = errors.New("interaction: decay weight must be positive")
)

// DecayFunc maps a gate position (0-based, program order) to the weight one
// occurrence at that position contributes to its edge. It must be strictly
// positive everywhere; for the placement heuristic to favor early gates it
// should also be strictly decreasing, which is the caller's contract when a
// custom function is supplied.
type DecayFunc func(position int) float64

// DefaultDecay is the documented default, W(t) = 1/(t+1): the first gate
// contributes weight 1, later gates strictly less. Later interactions matter
// less for an initial placement because intervening SWAPs may already have
// been inserted for them.
func DefaultDecay(position int) float64 {
	return 1 / float64(position+1)
}

// Option configures Build via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation when Build runs.
type Option func(*buildOptions)

type buildOptions struct {
	decay DecayFunc
	err   error
}

func defaultOptions() buildOptions {
	return buildOptions{decay: DefaultDecay}
}

// WithDecay replaces the positional weight function. A nil function is an
// option violation.
func WithDecay(fn DecayFunc) Option {
	return func(o *buildOptions) {
		if fn == nil {
			o.err = ErrOptionViolation
			return
		}
		o.decay = fn
	}
}

// Component is one connected component of the interaction graph.
//
// Members are ascending logical qubit ids; Center is the member minimizing
// eccentricity within the component (ties: larger total incident weight,
// then smaller id); Weight is the total accumulated edge weight inside the
// component. Components() returns components in decreasing Weight order.
type Component struct {
	Members []int
	Center  int
	Weight  float64
}
