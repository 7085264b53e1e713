package fsa

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// StateSet A mutable set of state indexes.
type StateSet struct {
	bits *bitset.BitSet
}

func NewStateSet(numStates int) *StateSet {
	return &StateSet{
		bits: bitset.New(uint(numStates)),
	}
}

func (s *StateSet) Add(state int) {
	s.bits.Set(uint(state))
}

func (s *StateSet) Size() int {
	return int(s.bits.Count())
}

// GetArray Returns the members in ascending order.
func (s *StateSet) GetArray() []int {
	keys := make([]int, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		keys = append(keys, int(i))
	}
	return keys
}

// Freeze Returns an immutable snapshot of the current members.
func (s *StateSet) Freeze() *ClassSet {
	return NewClassSet(s.GetArray())
}

var _ Hashable = &ClassSet{}

// ClassSet An immutable, sorted set of state indexes; the members of one equivalence class.
type ClassSet struct {
	values   []int
	hashCode uint64
}

// NewClassSet values must be sorted ascending and free of duplicates.
func NewClassSet(values []int) *ClassSet {
	hashCode := uint64(len(values))
	for _, v := range values {
		hashCode += mix32(v)
	}
	return &ClassSet{values: values, hashCode: hashCode}
}

func (c *ClassSet) Hash() uint64 {
	return c.hashCode
}

func (c *ClassSet) Equals(other Hashable) bool {
	o, ok := other.(*ClassSet)
	if !ok {
		return false
	}
	if c == nil || o == nil {
		return c == o
	}
	return c.hashCode == o.hashCode && slices.Equal(c.values, o.values)
}

func (c *ClassSet) GetArray() []int {
	return c.values
}

func (c *ClassSet) Size() int {
	return len(c.values)
}

// Min Returns the smallest member, or -1 for an empty class.
func (c *ClassSet) Min() int {
	if len(c.values) == 0 {
		return -1
	}
	return c.values[0]
}
