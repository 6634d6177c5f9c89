// Copyright (c) 2024 Neomantra Corp

// Package sentence implements the propositional-sentence algebra used for
// observations in the logical inductor: atoms joined by negation,
// disjunction, conjunction, implication, and iff.
//
// Sentences are immutable value objects. Two sentences built with the same
// shape and the same sub-sentences compare equal via Key, regardless of
// where or when they were constructed.
package sentence

import "fmt"

// BaseFacts is a truth assignment over atom labels.
type BaseFacts map[string]bool

// Sentence is a propositional sentence: an atom or a connective applied to
// sub-sentences. Evaluate is total whenever facts supplies every label in
// Atoms(). Implementations must be immutable and must produce a stable Key
// for structurally-identical sentences.
type Sentence interface {
	// Evaluate computes the truth value of the sentence under facts.
	// It returns ErrMissingBaseFact if an Atom's label is absent from facts.
	Evaluate(facts BaseFacts) (bool, error)

	// Atoms returns the transitive set of atom labels the sentence depends on.
	Atoms() AtomSet

	// Key returns a canonical string uniquely identifying this sentence's
	// shape, used to dedupe structurally-identical sentences in Set and Map.
	Key() string

	// String renders the sentence for diagnostics.
	String() string
}

func missingBaseFactError(label string) error {
	return fmt.Errorf("%w: %q", ErrMissingBaseFact, label)
}

// parenthesize wraps s in parentheses unless it is an atom, matching the
// reference pretty-printer's convention of only parenthesizing compounds.
func parenthesize(s Sentence) string {
	if _, ok := s.(atom); ok {
		return s.String()
	}
	return "(" + s.String() + ")"
}
