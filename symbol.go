package fsa

// State An opaque state identifier. States carry no ordering beyond the one used for canonical naming.
type State = string

// Symbol An element of the input alphabet. DFAs read Zero and One; NFAs may also move on Epsilon.
type Symbol int

const (
	Zero    = Symbol(iota) // The input symbol '0'
	One                    // The input symbol '1'
	Epsilon                // A move that consumes no input
)

// alphabetSize number of consuming symbols.
const alphabetSize = 2

func (s Symbol) String() string {
	return string(s.written())
}

// written Returns the rune used to print s.
func (s Symbol) written() rune {
	switch s {
	case Zero:
		return '0'
	case One:
		return '1'
	case Epsilon:
		return 'ε'
	default:
		return '?'
	}
}

// consuming reports whether s is one of Zero or One.
func (s Symbol) consuming() bool {
	return s == Zero || s == One
}

// ParseSymbol Returns the input symbol written as r. Epsilon has no written form.
func ParseSymbol(r rune) (Symbol, bool) {
	switch r {
	case '0':
		return Zero, true
	case '1':
		return One, true
	}
	return -1, false
}

// ParseInput Converts a string of '0' and '1' runes into symbols.
func ParseInput(input string) ([]Symbol, error) {
	symbols := make([]Symbol, 0, len(input))
	pos := 0
	for _, r := range input {
		sym, ok := ParseSymbol(r)
		if !ok {
			return nil, NewInvalidSymbolError(r, pos)
		}
		symbols = append(symbols, sym)
		pos++
	}
	return symbols, nil
}
