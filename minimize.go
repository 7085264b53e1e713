package fsa

import (
	"fmt"
	"slices"
)

// Minimize
// Returns an equivalent DFA with the fewest states, using Moore's partition refinement (k-equivalence).
// The receiver is left untouched. Indistinguishable states are merged whether reachable or not;
// unreachable states are not pruned. The transition function must be total.
func (a *DFA) Minimize(opts ...Option) (*DFA, error) {
	o := newOptions(opts...)

	numStates := a.NumStates()
	for s := 0; s < numStates; s++ {
		for label := 0; label < alphabetSize; label++ {
			if a.step(s, label) == -1 {
				return nil, NewMalformedTransitionError(a.states[s], Symbol(label), "transition function is not total")
			}
		}
	}

	p := a.initialPartition()
	// Each round either splits a class or confirms the fixpoint, so at most numStates rounds run.
	for round := 1; ; round++ {
		next := a.refine(p)
		o.logger.Debug("refinement round", "round", round, "classes", len(next.classes))
		if next.equals(p) {
			break
		}
		p = next
	}

	return a.project(p, o.namer)
}

// partition A grouping of state indexes into disjoint classes covering every state exactly once.
// Classes are ordered by their smallest member.
type partition struct {
	classes []*ClassSet

	// State index to class index.
	classOf []int
}

func newPartition(numStates int, sets []*StateSet) *partition {
	p := &partition{
		classes: make([]*ClassSet, 0, len(sets)),
		classOf: make([]int, numStates),
	}
	for _, set := range sets {
		if set.Size() == 0 {
			continue
		}
		p.classes = append(p.classes, set.Freeze())
	}
	slices.SortFunc(p.classes, func(x, y *ClassSet) int {
		return x.Min() - y.Min()
	})
	for i, class := range p.classes {
		for _, s := range class.GetArray() {
			p.classOf[s] = i
		}
	}
	return p
}

// equals Compares the two partitions as sets of member sets; the class count alone is not enough.
func (p *partition) equals(other *partition) bool {
	if len(p.classes) != len(other.classes) {
		return false
	}
	seen := newHashMap[struct{}](withCapacity(len(other.classes)))
	for _, class := range other.classes {
		seen.Set(class, struct{}{})
	}
	for _, class := range p.classes {
		if _, ok := seen.Get(class); !ok {
			return false
		}
	}
	return true
}

// P₀ = {accept, non-accept}; an empty side is dropped, leaving a single class.
func (a *DFA) initialPartition() *partition {
	numStates := a.NumStates()
	accept := NewStateSet(numStates)
	nonAccept := NewStateSet(numStates)
	for s := 0; s < numStates; s++ {
		if a.isAccept.Test(uint(s)) {
			accept.Add(s)
		} else {
			nonAccept.Add(s)
		}
	}
	return newPartition(numStates, []*StateSet{accept, nonAccept})
}

// signature The refinement key of a state: its current class followed by the class of each successor.
// Leading with the current class keeps states that were already split apart from merging again.
type signature [1 + alphabetSize]int

func (s signature) Hash() uint64 {
	return mixPhi(s[:]...)
}

func (s signature) Equals(other Hashable) bool {
	o, ok := other.(signature)
	return ok && s == o
}

// refine Runs one round: states stay together only if they shared a class and their successors do.
func (a *DFA) refine(p *partition) *partition {
	numStates := a.NumStates()
	groups := newHashMap[int](withCapacity(2 * len(p.classes)))
	sets := make([]*StateSet, 0, len(p.classes))

	for s := 0; s < numStates; s++ {
		var sig signature
		sig[0] = p.classOf[s]
		for label := 0; label < alphabetSize; label++ {
			sig[1+label] = p.classOf[a.step(s, label)]
		}

		idx, found := groups.GetOrSet(sig, len(sets))
		if !found {
			sets = append(sets, NewStateSet(numStates))
		}
		sets[idx].Add(s)
	}

	return newPartition(numStates, sets)
}

// project Builds the quotient automaton: one state per class, transitions read from the smallest
// member, accepting iff the class holds an accept state.
func (a *DFA) project(p *partition, namer Namer) (*DFA, error) {
	names := make([]State, len(p.classes))
	members := make(map[State][]State, len(p.classes))
	for i, class := range p.classes {
		m := make([]State, 0, class.Size())
		for _, s := range class.GetArray() {
			m = append(m, a.states[s])
		}
		name := namer(i, m)
		if _, dup := members[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrNameCollision, name)
		}
		names[i] = name
		members[name] = m
	}

	desc := DFADescription{
		Transitions: make(map[State]map[Symbol]State, len(p.classes)),
		Start:       names[p.classOf[a.start]],
	}
	for i, class := range p.classes {
		rep := class.Min()
		edges := make(map[Symbol]State, alphabetSize)
		for label := 0; label < alphabetSize; label++ {
			edges[Symbol(label)] = names[p.classOf[a.step(rep, label)]]
		}
		desc.Transitions[names[i]] = edges

		for _, s := range class.GetArray() {
			if a.isAccept.Test(uint(s)) {
				desc.Accept = append(desc.Accept, names[i])
				break
			}
		}
	}

	m, err := NewDFA(desc)
	if err != nil {
		return nil, err
	}
	m.members = members
	return m, nil
}
