package fsa

import (
	"maps"
	"slices"
)

// DFADescription The in-memory form of a deterministic automaton over {0, 1}. The declared states are the
// keys of Transitions; every declared state should map both Zero and One to a declared state.
type DFADescription struct {
	Transitions map[State]map[Symbol]State
	Start       State
	Accept      []State
}

// Clone Returns a deep copy.
func (d DFADescription) Clone() DFADescription {
	transitions := make(map[State]map[Symbol]State, len(d.Transitions))
	for state, edges := range d.Transitions {
		transitions[state] = maps.Clone(edges)
	}
	return DFADescription{
		Transitions: transitions,
		Start:       d.Start,
		Accept:      slices.Clone(d.Accept),
	}
}

// NFADescription The in-memory form of a nondeterministic automaton over {0, 1, ε}. An absent
// (state, symbol) entry means there is no such move.
type NFADescription struct {
	Transitions map[State]map[Symbol][]State
	Start       State
	Accept      []State
}

// Clone Returns a deep copy.
func (d NFADescription) Clone() NFADescription {
	transitions := make(map[State]map[Symbol][]State, len(d.Transitions))
	for state, edges := range d.Transitions {
		cloned := make(map[Symbol][]State, len(edges))
		for sym, targets := range edges {
			cloned[sym] = slices.Clone(targets)
		}
		transitions[state] = cloned
	}
	return NFADescription{
		Transitions: transitions,
		Start:       d.Start,
		Accept:      slices.Clone(d.Accept),
	}
}

// sortedKeys returns the map keys in ascending order.
func sortedKeys[V any](m map[State]V) []State {
	return slices.Sorted(maps.Keys(m))
}
