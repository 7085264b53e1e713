package fsa

import (
	"maps"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// nfaAlphabetSize Zero, One and Epsilon.
const nfaAlphabetSize = 3

// NFA A nondeterministic automaton over {0, 1, ε}. The declared states are the transition keys together
// with every target, the start state and the accept states. Immutable and safe for concurrent use.
type NFA struct {
	desc   NFADescription
	states []State
	index  map[State]int

	// Destinations of (state, symbol) at nfaAlphabetSize*state+symbol, deduplicated, in description order.
	edges [][]int

	start    int
	isAccept *bitset.BitSet
}

// NewNFA Builds an NFA from a description. The description is copied. Fails only if a transition
// uses a symbol outside {Zero, One, Epsilon}.
func NewNFA(desc NFADescription) (*NFA, error) {
	desc = desc.Clone()

	declared := make(map[State]struct{}, len(desc.Transitions))
	declared[desc.Start] = struct{}{}
	for _, s := range desc.Accept {
		declared[s] = struct{}{}
	}
	for s, edges := range desc.Transitions {
		declared[s] = struct{}{}
		for sym, targets := range edges {
			if sym != Zero && sym != One && sym != Epsilon {
				return nil, NewMalformedTransitionError(s, sym, "symbol is not in the NFA alphabet")
			}
			for _, t := range targets {
				declared[t] = struct{}{}
			}
		}
	}

	states := slices.Sorted(maps.Keys(declared))
	index := make(map[State]int, len(states))
	for i, s := range states {
		index[s] = i
	}

	a := &NFA{
		desc:     desc,
		states:   states,
		index:    index,
		edges:    make([][]int, nfaAlphabetSize*len(states)),
		start:    index[desc.Start],
		isAccept: bitset.New(uint(len(states))),
	}
	for _, s := range desc.Accept {
		a.isAccept.Set(uint(index[s]))
	}
	for s, edges := range desc.Transitions {
		i := index[s]
		for sym, targets := range edges {
			dests := make([]int, 0, len(targets))
			for _, t := range targets {
				if d := index[t]; !slices.Contains(dests, d) {
					dests = append(dests, d)
				}
			}
			a.edges[nfaAlphabetSize*i+int(sym)] = dests
		}
	}
	return a, nil
}

func (a *NFA) names(indexes []int) []State {
	result := make([]State, 0, len(indexes))
	for _, i := range indexes {
		result = append(result, a.states[i])
	}
	return result
}

// Transition Returns the states reachable from state by a single sym edge. Absent edges, unknown
// states and unknown symbols all give an empty result.
func (a *NFA) Transition(state State, sym Symbol) []State {
	i, ok := a.index[state]
	if !ok || sym < Zero || sym > Epsilon {
		return []State{}
	}
	return a.names(a.edges[nfaAlphabetSize*i+int(sym)])
}

// EpsilonClosure Returns, in ascending order, every state reachable from state by zero or more
// epsilon edges, state itself included. Returns an empty result for an undeclared state.
func (a *NFA) EpsilonClosure(state State) []State {
	i, ok := a.index[state]
	if !ok {
		return []State{}
	}
	closure := a.closure(i)
	result := make([]State, 0, closure.Count())
	for s, ok := closure.NextSet(0); ok; s, ok = closure.NextSet(s + 1) {
		result = append(result, a.states[s])
	}
	return result
}

func (a *NFA) closure(state int) *bitset.BitSet {
	seen := bitset.New(uint(len(a.states)))
	seen.Set(uint(state))
	stack := []int{state}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range a.edges[nfaAlphabetSize*s+int(Epsilon)] {
			if !seen.Test(uint(d)) {
				seen.Set(uint(d))
				stack = append(stack, d)
			}
		}
	}
	return seen
}

// Accepts Returns true if some path, with epsilon moves anywhere, consumes all of input and ends in an
// accept state.
func (a *NFA) Accepts(input string) (bool, error) {
	symbols, err := ParseInput(input)
	if err != nil {
		return false, err
	}
	return a.AcceptsSymbols(symbols)
}

// configuration A search node: a state and how much of the input has been consumed.
type configuration struct {
	state int
	pos   int
}

// AcceptsSymbols Like Accepts, over a symbol sequence that must not contain Epsilon.
func (a *NFA) AcceptsSymbols(input []Symbol) (bool, error) {
	for pos, sym := range input {
		if !sym.consuming() {
			return false, NewInvalidSymbolError(sym.written(), pos)
		}
	}

	// Every (state, pos) pair is pushed at most once, which bounds the search under epsilon cycles.
	numStates := len(a.states)
	visited := bitset.New(uint(numStates * (len(input) + 1)))
	stack := make([]configuration, 0, numStates)
	push := func(state, pos int) {
		key := uint(pos*numStates + state)
		if !visited.Test(key) {
			visited.Set(key)
			stack = append(stack, configuration{state: state, pos: pos})
		}
	}

	push(a.start, 0)
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if c.pos == len(input) && a.isAccept.Test(uint(c.state)) {
			return true, nil
		}
		for _, d := range a.edges[nfaAlphabetSize*c.state+int(Epsilon)] {
			push(d, c.pos)
		}
		if c.pos < len(input) {
			for _, d := range a.edges[nfaAlphabetSize*c.state+int(input[c.pos])] {
				push(d, c.pos+1)
			}
		}
	}
	return false, nil
}

// Description Returns a copy of the description this NFA was built from.
func (a *NFA) Description() NFADescription {
	return a.desc.Clone()
}

// States Returns the declared states in ascending order.
func (a *NFA) States() []State {
	return slices.Clone(a.states)
}

func (a *NFA) Start() State {
	return a.states[a.start]
}

// IsAccept Returns true if state is an accept state.
func (a *NFA) IsAccept(state State) bool {
	i, ok := a.index[state]
	return ok && a.isAccept.Test(uint(i))
}
