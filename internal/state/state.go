// Package state implements a two-phase machine as a closed enumeration with a
// transition function. Each request produces an output line and advances the
// machine to the other phase; there is no terminal phase.
package state

import "errors"

// Phase enumerates the machine's states. The zero value is deliberately not a
// valid phase so an unconfigured machine is detectable.
type Phase int

const (
	phaseUnset Phase = iota
	StateOne
	StateTwo
)

// ErrNoState is returned when a machine is asked to handle a request before a
// valid initial state was supplied.
var ErrNoState = errors.New("no state configured")

// transition maps the current phase to its output line and successor.
func transition(p Phase) (next Phase, output string) {
	switch p {
	case StateOne:
		return StateTwo, "State 1 action."
	case StateTwo:
		return StateOne, "State 2 action."
	default:
		return phaseUnset, ""
	}
}

// Machine holds the current phase and delegates each request to the
// transition table.
type Machine struct {
	current Phase
}

// NewMachine returns a machine starting in the given phase.
func NewMachine(initial Phase) *Machine {
	return &Machine{current: initial}
}

// Current reports the machine's current phase.
func (m *Machine) Current() Phase {
	return m.current
}

// Request handles one event: it returns the current phase's output and moves
// the machine to the other phase.
func (m *Machine) Request() (string, error) {
	next, output := transition(m.current)
	if next == phaseUnset {
		return "", ErrNoState
	}
	m.current = next
	return output, nil
}
