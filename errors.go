package fsa

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedAutomaton = errors.New("malformed automaton")
	ErrInvalidSymbol      = errors.New("invalid input symbol")
	ErrNameCollision      = errors.New("state namer produced duplicate names")
)

// MalformedAutomatonError A DFA description that cannot be simulated: an undeclared start or accept
// state, a transition to an undeclared state, or a missing (state, symbol) entry that was referenced.
type MalformedAutomatonError struct {
	State  State
	Symbol Symbol
	Reason string
}

func (e *MalformedAutomatonError) Error() string {
	if e.Symbol < 0 {
		return fmt.Sprintf("malformed automaton: state %q: %s", e.State, e.Reason)
	}
	return fmt.Sprintf("malformed automaton: state %q on %s: %s", e.State, e.Symbol, e.Reason)
}

func (e *MalformedAutomatonError) Unwrap() error {
	return ErrMalformedAutomaton
}

// NewMalformedStateError reports a problem with a state as a whole.
func NewMalformedStateError(state State, reason string) *MalformedAutomatonError {
	return &MalformedAutomatonError{State: state, Symbol: -1, Reason: reason}
}

// NewMalformedTransitionError reports a problem with a single (state, symbol) entry.
func NewMalformedTransitionError(state State, sym Symbol, reason string) *MalformedAutomatonError {
	return &MalformedAutomatonError{State: state, Symbol: sym, Reason: reason}
}

// InvalidSymbolError An input rune outside the alphabet {'0', '1'}.
type InvalidSymbolError struct {
	Rune     rune
	Position int
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid input symbol %q at position %d", e.Rune, e.Position)
}

func (e *InvalidSymbolError) Unwrap() error {
	return ErrInvalidSymbol
}

func NewInvalidSymbolError(r rune, pos int) *InvalidSymbolError {
	return &InvalidSymbolError{Rune: r, Position: pos}
}

func IsMalformedAutomatonError(err error) bool {
	var e *MalformedAutomatonError
	return errors.As(err, &e)
}

func IsInvalidSymbolError(err error) bool {
	var e *InvalidSymbolError
	return errors.As(err, &e)
}
