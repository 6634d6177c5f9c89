// Copyright (c) 2024 Neomantra Corp

package sentence

import "fmt"

// atom is an unanalyzed propositional symbol, identified by its label.
type atom struct {
	label string
}

// Atom constructs an atomic sentence with the given label.
func Atom(label string) Sentence {
	return atom{label: label}
}

func (a atom) Evaluate(facts BaseFacts) (bool, error) {
	v, ok := facts[a.label]
	if !ok {
		return false, missingBaseFactError(a.label)
	}
	return v, nil
}

func (a atom) Atoms() AtomSet {
	return NewAtomSet(a.label)
}

func (a atom) Key() string {
	return fmt.Sprintf("atom(%s)", a.label)
}

func (a atom) String() string {
	return a.label
}
