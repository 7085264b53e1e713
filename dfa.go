package fsa

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// DFA A deterministic automaton over {0, 1}, compiled from a DFADescription. States are indexed in
// ascending name order. A DFA is immutable once built and safe for concurrent use.
type DFA struct {
	desc DFADescription

	// Index to name, sorted.
	states []State

	// Name to index.
	index map[State]int

	// Holds the destination of (state, symbol) at alphabetSize*state+symbol, or -1 if the entry is missing.
	transitions []int

	start int

	isAccept *bitset.BitSet

	// Original states merged into each state; nil unless this DFA came out of Minimize.
	members map[State][]State
}

// NewDFA Builds a DFA from a description. The description is copied; later changes by the caller
// are not seen. Missing (state, symbol) entries are tolerated here and reported when referenced.
func NewDFA(desc DFADescription) (*DFA, error) {
	desc = desc.Clone()
	states := sortedKeys(desc.Transitions)
	numStates := len(states)

	index := make(map[State]int, numStates)
	for i, s := range states {
		index[s] = i
	}

	a := &DFA{
		desc:        desc,
		states:      states,
		index:       index,
		transitions: make([]int, alphabetSize*numStates),
		isAccept:    bitset.New(uint(numStates)),
	}

	start, ok := index[desc.Start]
	if !ok {
		return nil, NewMalformedStateError(desc.Start, "start state is not declared")
	}
	a.start = start

	for _, s := range desc.Accept {
		i, ok := index[s]
		if !ok {
			return nil, NewMalformedStateError(s, "accept state is not declared")
		}
		a.isAccept.Set(uint(i))
	}

	for i := range a.transitions {
		a.transitions[i] = -1
	}
	for i, s := range states {
		for sym, dest := range desc.Transitions[s] {
			if !sym.consuming() {
				return nil, NewMalformedTransitionError(s, sym, "symbol is not in the DFA alphabet")
			}
			d, ok := index[dest]
			if !ok {
				return nil, NewMalformedTransitionError(s, sym, "target state "+dest+" is not declared")
			}
			a.transitions[alphabetSize*i+int(sym)] = d
		}
	}

	return a, nil
}

// step Performs lookup in transitions. Returns -1 if the entry is missing.
func (a *DFA) step(state, label int) int {
	return a.transitions[alphabetSize*state+label]
}

// Transition Returns the state reached from state on sym.
func (a *DFA) Transition(state State, sym Symbol) (State, error) {
	i, ok := a.index[state]
	if !ok {
		return "", NewMalformedStateError(state, "state is not declared")
	}
	if !sym.consuming() {
		return "", NewMalformedTransitionError(state, sym, "symbol is not in the DFA alphabet")
	}
	dest := a.step(i, int(sym))
	if dest == -1 {
		return "", NewMalformedTransitionError(state, sym, "no transition defined")
	}
	return a.states[dest], nil
}

// Accepts Returns true if the automaton accepts input, a string of '0' and '1'.
func (a *DFA) Accepts(input string) (bool, error) {
	symbols, err := ParseInput(input)
	if err != nil {
		return false, err
	}
	return a.AcceptsSymbols(symbols)
}

// AcceptsSymbols Returns true if the automaton accepts the symbol sequence. The empty sequence is
// accepted iff the start state is an accept state.
func (a *DFA) AcceptsSymbols(input []Symbol) (bool, error) {
	state := a.start
	for pos, sym := range input {
		if !sym.consuming() {
			return false, NewInvalidSymbolError(sym.written(), pos)
		}
		next := a.step(state, int(sym))
		if next == -1 {
			return false, NewMalformedTransitionError(a.states[state], sym, "no transition defined")
		}
		state = next
	}
	return a.isAccept.Test(uint(state)), nil
}

// Description Returns a copy of the description this DFA was built from.
func (a *DFA) Description() DFADescription {
	return a.desc.Clone()
}

// States Returns the declared states in ascending order.
func (a *DFA) States() []State {
	return slices.Clone(a.states)
}

// NumStates How many states this automaton has.
func (a *DFA) NumStates() int {
	return len(a.states)
}

func (a *DFA) Start() State {
	return a.states[a.start]
}

// IsAccept Returns true if state is a declared accept state.
func (a *DFA) IsAccept(state State) bool {
	i, ok := a.index[state]
	return ok && a.isAccept.Test(uint(i))
}

// Members Returns the states of the source automaton that were merged into state by Minimize. For a
// DFA that was not produced by Minimize, every state is its own only member. Returns nil for an
// undeclared state.
func (a *DFA) Members(state State) []State {
	if a.members != nil {
		return slices.Clone(a.members[state])
	}
	if _, ok := a.index[state]; ok {
		return []State{state}
	}
	return nil
}
