// Package fsa answers membership queries for finite automata over the binary alphabet and minimizes
// deterministic ones.
//
// A DFA is built from a DFADescription, a total transition table over {0, 1} with a start state and a
// set of accept states. DFA.Minimize merges indistinguishable states with Moore's partition refinement
// and returns a new DFA; the source automaton is never modified.
//
// An NFA is built from an NFADescription whose transitions may lead to zero, one or many states and may
// include epsilon moves. NFA.Accepts searches every path, so epsilon cycles are allowed.
//
// Both engines are immutable after construction and safe for concurrent use.
package fsa
