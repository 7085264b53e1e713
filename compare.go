package fsa

import (
	"maps"
	"slices"
	"strconv"

	"github.com/bits-and-blooms/bitset"
)

// IsEmpty
// Returns true if the given automaton accepts no strings.
func IsEmpty(a *DFA) bool {
	if a.isAccept.Test(uint(a.start)) {
		// Common case: it accepts the empty string
		return false
	}

	seen := bitset.New(uint(a.NumStates()))
	workList := []int{a.start}
	seen.Set(uint(a.start))

	for len(workList) > 0 {
		state := workList[0]
		workList = workList[1:]

		if a.isAccept.Test(uint(state)) {
			return false
		}
		for label := 0; label < alphabetSize; label++ {
			dest := a.step(state, label)
			if dest != -1 && !seen.Test(uint(dest)) {
				workList = append(workList, dest)
				seen.Set(uint(dest))
			}
		}
	}
	return true
}

// Canonical
// Returns the reachable part of the automaton with states renamed "0", "1", ... in breadth-first
// discovery order from the start state, visiting Zero before One. Two automata with the same reachable
// structure get equal canonical forms however their states are named.
func Canonical(a *DFA) DFADescription {
	order := make([]int, a.NumStates())
	seen := bitset.New(uint(a.NumStates()))
	workList := []int{a.start}
	seen.Set(uint(a.start))
	order[a.start] = 0
	discovered := 1

	desc := DFADescription{
		Transitions: make(map[State]map[Symbol]State),
		Start:       "0",
	}
	for len(workList) > 0 {
		state := workList[0]
		workList = workList[1:]

		name := strconv.Itoa(order[state])
		edges := make(map[Symbol]State, alphabetSize)
		for label := 0; label < alphabetSize; label++ {
			dest := a.step(state, label)
			if dest == -1 {
				continue
			}
			if !seen.Test(uint(dest)) {
				seen.Set(uint(dest))
				order[dest] = discovered
				discovered++
				workList = append(workList, dest)
			}
			edges[Symbol(label)] = strconv.Itoa(order[dest])
		}
		desc.Transitions[name] = edges
		if a.isAccept.Test(uint(state)) {
			desc.Accept = append(desc.Accept, name)
		}
	}
	return desc
}

// Isomorphic Returns true if a and b have the same number of states and their canonical forms are equal.
func Isomorphic(a, b *DFA) bool {
	if a.NumStates() != b.NumStates() {
		return false
	}
	ca, cb := Canonical(a), Canonical(b)
	return ca.Start == cb.Start &&
		slices.Equal(ca.Accept, cb.Accept) &&
		maps.EqualFunc(ca.Transitions, cb.Transitions, func(x, y map[Symbol]State) bool {
			return maps.Equal(x, y)
		})
}

// Equivalent
// Returns true if a and b accept the same language. Walks the product automaton from the pair of start
// states and stops at the first reachable pair that disagrees on acceptance.
func Equivalent(a, b *DFA) (bool, error) {
	nb := b.NumStates()
	seen := bitset.New(uint(a.NumStates() * nb))

	type pair struct{ sa, sb int }
	workList := []pair{{a.start, b.start}}
	seen.Set(uint(a.start*nb + b.start))

	for len(workList) > 0 {
		p := workList[0]
		workList = workList[1:]

		if a.isAccept.Test(uint(p.sa)) != b.isAccept.Test(uint(p.sb)) {
			return false, nil
		}
		for label := 0; label < alphabetSize; label++ {
			da := a.step(p.sa, label)
			if da == -1 {
				return false, NewMalformedTransitionError(a.states[p.sa], Symbol(label), "no transition defined")
			}
			db := b.step(p.sb, label)
			if db == -1 {
				return false, NewMalformedTransitionError(b.states[p.sb], Symbol(label), "no transition defined")
			}
			key := uint(da*nb + db)
			if !seen.Test(key) {
				seen.Set(key)
				workList = append(workList, pair{da, db})
			}
		}
	}
	return true, nil
}
