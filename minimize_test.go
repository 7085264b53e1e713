package fsa

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimize(t *testing.T) {
	for _, m := range dfaMachines {
		t.Run(m.name, func(t *testing.T) {
			a := mustDFA(t, m.description)
			got, err := a.Minimize()
			require.NoError(t, err)

			want := mustDFA(t, m.minimized)
			assert.True(t, Isomorphic(want, got), "got %v", got.Description())
			assert.Equal(t, want.NumStates(), got.NumStates())

			for _, s := range m.accepted {
				ok, err := got.Accepts(s)
				assert.Nil(t, err)
				assert.True(t, ok, "%q should be accepted", s)
			}
			for _, s := range m.rejected {
				ok, err := got.Accepts(s)
				assert.Nil(t, err)
				assert.False(t, ok, "%q should be rejected", s)
			}
		})
	}
}

func TestMinimizeAlreadyMinimal(t *testing.T) {
	for _, desc := range []DFADescription{startsWith0, divisibleBy3} {
		a := mustDFA(t, desc)
		got, err := a.Minimize()
		require.NoError(t, err)
		assert.Equal(t, a.States(), got.States())
		assert.Equal(t, desc, got.Description())
	}
}

func TestMinimizeMergesSinks(t *testing.T) {
	a := mustDFA(t, dfaMachines[3].description)
	require.Equal(t, 5, a.NumStates())

	got, err := a.Minimize()
	require.NoError(t, err)

	assert.Equal(t, 4, got.NumStates())
	assert.Equal(t, []State{"A", "B", "CD", "S"}, got.States())
	assert.Equal(t, []State{"C", "D"}, got.Members("CD"))
	assert.Equal(t, []State{"S"}, got.Members("S"))
	assert.True(t, got.IsAccept("CD"))
	assert.Equal(t, "S", got.Start())

	next, err := got.Transition("A", One)
	require.NoError(t, err)
	assert.Equal(t, "CD", next)
}

func TestMinimizePreservesLanguage(t *testing.T) {
	inputs := binaryStrings(10)
	for _, m := range dfaMachines {
		t.Run(m.name, func(t *testing.T) {
			a := mustDFA(t, m.description)
			got, err := a.Minimize()
			require.NoError(t, err)

			for _, s := range inputs {
				want, err := a.Accepts(s)
				require.NoError(t, err)
				have, err := got.Accepts(s)
				require.NoError(t, err)
				if !assert.Equal(t, want, have, "input %q", s) {
					return
				}
			}

			equivalent, err := Equivalent(a, got)
			require.NoError(t, err)
			assert.True(t, equivalent)
		})
	}
}

func TestMinimizeIdempotent(t *testing.T) {
	for _, m := range dfaMachines {
		once, err := mustDFA(t, m.description).Minimize()
		require.NoError(t, err)
		twice, err := once.Minimize()
		require.NoError(t, err)

		assert.Equal(t, once.NumStates(), twice.NumStates(), m.name)
		assert.True(t, Isomorphic(once, twice), m.name)
	}
}

func TestMinimizeLeavesSourceUntouched(t *testing.T) {
	m := dfaMachines[2]
	a := mustDFA(t, m.description)
	before := a.Description()

	_, err := a.Minimize()
	require.NoError(t, err)

	assert.Equal(t, before, a.Description())
	assert.Equal(t, 6, a.NumStates())
	assert.Equal(t, []State{"E"}, a.Members("E"))
}

func TestMinimizeDegenerate(t *testing.T) {
	t.Run("single state", func(t *testing.T) {
		a := mustDFA(t, DFADescription{
			Transitions: map[State]map[Symbol]State{"A": edges01("A", "A")},
			Start:       "A",
		})
		got, err := a.Minimize()
		require.NoError(t, err)
		assert.Equal(t, []State{"A"}, got.States())
		assert.True(t, IsEmpty(got))
	})

	t.Run("no accept states", func(t *testing.T) {
		a := mustDFA(t, DFADescription{
			Transitions: map[State]map[Symbol]State{
				"A": edges01("B", "C"),
				"B": edges01("C", "A"),
				"C": edges01("A", "B"),
			},
			Start: "A",
		})
		got, err := a.Minimize()
		require.NoError(t, err)
		assert.Equal(t, []State{"ABC"}, got.States())
		ok, err := got.Accepts("0110")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("all accept states", func(t *testing.T) {
		a := mustDFA(t, DFADescription{
			Transitions: map[State]map[Symbol]State{
				"A": edges01("B", "B"),
				"B": edges01("A", "A"),
			},
			Start:  "A",
			Accept: []State{"A", "B"},
		})
		got, err := a.Minimize()
		require.NoError(t, err)
		assert.Equal(t, 1, got.NumStates())
		assert.True(t, got.IsAccept("AB"))
	})
}

func TestMinimizeKeepsUnreachable(t *testing.T) {
	a := mustDFA(t, DFADescription{
		Transitions: map[State]map[Symbol]State{
			"S": edges01("S", "S"),
			"U": edges01("U", "U"),
			"V": edges01("V", "U"),
		},
		Start:  "S",
		Accept: []State{"S"},
	})

	got, err := a.Minimize()
	require.NoError(t, err)
	assert.Equal(t, []State{"S", "UV"}, got.States())
}

func TestMinimizeNotTotal(t *testing.T) {
	a := mustDFA(t, DFADescription{
		Transitions: map[State]map[Symbol]State{
			"A": {Zero: "A"},
		},
		Start: "A",
	})

	got, err := a.Minimize()
	assert.Nil(t, got)
	var malformed *MalformedAutomatonError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, One, malformed.Symbol)
}

func TestMinimizeNamers(t *testing.T) {
	// {A, BC} and {AB, C} both concatenate to "ABC".
	a := mustDFA(t, DFADescription{
		Transitions: map[State]map[Symbol]State{
			"A":  edges01("A", "A"),
			"BC": edges01("A", "A"),
			"AB": edges01("C", "C"),
			"C":  edges01("C", "C"),
		},
		Start:  "AB",
		Accept: []State{"A", "BC"},
	})

	_, err := a.Minimize()
	assert.True(t, errors.Is(err, ErrNameCollision))

	got, err := a.Minimize(WithNamer(SequentialNamer))
	require.NoError(t, err)
	assert.Equal(t, []State{"q0", "q1"}, got.States())
	assert.Equal(t, []State{"A", "BC"}, got.Members("q0"))
	assert.Equal(t, []State{"AB", "C"}, got.Members("q1"))
	assert.Equal(t, "q1", got.Start())
	assert.True(t, got.IsAccept("q0"))

	for _, m := range dfaMachines {
		concat, err := mustDFA(t, m.description).Minimize(WithNamer(ConcatNamer))
		require.NoError(t, err)
		sequential, err := mustDFA(t, m.description).Minimize(WithNamer(SequentialNamer))
		require.NoError(t, err)
		assert.True(t, Isomorphic(concat, sequential), m.name)
	}
}

func TestMinimizeLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := mustDFA(t, dfaMachines[2].description).Minimize(WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "refinement round")
	assert.Contains(t, buf.String(), "classes=5")
}

func TestPartitionEquals(t *testing.T) {
	set := func(n int, members ...int) *StateSet {
		s := NewStateSet(n)
		for _, m := range members {
			s.Add(m)
		}
		return s
	}

	p := newPartition(4, []*StateSet{set(4, 0, 1), set(4, 2, 3)})
	same := newPartition(4, []*StateSet{set(4, 3, 2), set(4, 1, 0)})
	regrouped := newPartition(4, []*StateSet{set(4, 0, 2), set(4, 1, 3)})
	finer := newPartition(4, []*StateSet{set(4, 0), set(4, 1), set(4, 2, 3), set(4)})

	assert.True(t, p.equals(same))
	assert.False(t, p.equals(regrouped), "same class count, different grouping")
	assert.False(t, p.equals(finer))
	assert.Len(t, finer.classes, 3)
	assert.Equal(t, []int{0, 1, 2, 2}, finer.classOf)
}
