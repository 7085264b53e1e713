package fsa

import (
	"strconv"
	"strings"
)

// Namer Names the state that replaces one equivalence class. members is sorted ascending and never
// empty; index is the position of the class when classes are ordered by their smallest member.
type Namer func(index int, members []State) State

// ConcatNamer Joins the sorted member names, so a class of one state keeps its name. Not injective in
// general ("A"+"BC" and "AB"+"C"); Minimize reports ErrNameCollision when that happens.
func ConcatNamer(_ int, members []State) State {
	return strings.Join(members, "")
}

// SequentialNamer Names classes q0, q1, ... Always collision free; use Members for the membership table.
func SequentialNamer(index int, _ []State) State {
	return "q" + strconv.Itoa(index)
}
