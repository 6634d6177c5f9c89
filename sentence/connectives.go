// Copyright (c) 2024 Neomantra Corp

package sentence

import "strings"

// negation is true iff its inner sentence is false.
type negation struct {
	inner Sentence
}

// Not constructs the negation of inner.
func Not(inner Sentence) Sentence {
	return negation{inner: inner}
}

func (n negation) Evaluate(facts BaseFacts) (bool, error) {
	v, err := n.inner.Evaluate(facts)
	if err != nil {
		return false, err
	}
	return !v, nil
}

func (n negation) Atoms() AtomSet { return n.inner.Atoms() }
func (n negation) Key() string    { return "not(" + n.inner.Key() + ")" }
func (n negation) String() string { return "¬" + parenthesize(n.inner) }

///////////////////////////////////////////////////////////////////////////

// disjunction is true iff any of its terms are true.
type disjunction struct {
	terms []Sentence
}

// Or constructs the disjunction of terms.
func Or(terms ...Sentence) Sentence {
	return disjunction{terms: append([]Sentence(nil), terms...)}
}

func (d disjunction) Evaluate(facts BaseFacts) (bool, error) {
	for _, term := range d.terms {
		v, err := term.Evaluate(facts)
		if err != nil {
			return false, err
		}
		if v {
			return true, nil
		}
	}
	return false, nil
}

func (d disjunction) Atoms() AtomSet { return unionAtoms(d.terms) }
func (d disjunction) Key() string    { return "or(" + joinKeys(d.terms) + ")" }
func (d disjunction) String() string { return joinStrings(d.terms, " | ") }

///////////////////////////////////////////////////////////////////////////

// conjunction is true iff all of its terms are true.
type conjunction struct {
	terms []Sentence
}

// And constructs the conjunction of terms.
func And(terms ...Sentence) Sentence {
	return conjunction{terms: append([]Sentence(nil), terms...)}
}

func (c conjunction) Evaluate(facts BaseFacts) (bool, error) {
	for _, term := range c.terms {
		v, err := term.Evaluate(facts)
		if err != nil {
			return false, err
		}
		if !v {
			return false, nil
		}
	}
	return true, nil
}

func (c conjunction) Atoms() AtomSet { return unionAtoms(c.terms) }
func (c conjunction) Key() string    { return "and(" + joinKeys(c.terms) + ")" }
func (c conjunction) String() string { return joinStrings(c.terms, " & ") }

///////////////////////////////////////////////////////////////////////////

// implication is true unless its antecedent is true and consequent is false.
type implication struct {
	antecedent Sentence
	consequent Sentence
}

// Implies constructs antecedent -> consequent.
func Implies(antecedent, consequent Sentence) Sentence {
	return implication{antecedent: antecedent, consequent: consequent}
}

func (i implication) Evaluate(facts BaseFacts) (bool, error) {
	a, err := i.antecedent.Evaluate(facts)
	if err != nil {
		return false, err
	}
	if !a {
		return true, nil
	}
	return i.consequent.Evaluate(facts)
}

func (i implication) Atoms() AtomSet {
	return Union(i.antecedent.Atoms(), i.consequent.Atoms())
}
func (i implication) Key() string {
	return "implies(" + i.antecedent.Key() + "," + i.consequent.Key() + ")"
}
func (i implication) String() string {
	return parenthesize(i.antecedent) + " → " + parenthesize(i.consequent)
}

///////////////////////////////////////////////////////////////////////////

// iff is true iff its left and right sides have the same truth value.
type iff struct {
	left  Sentence
	right Sentence
}

// Iff constructs left <-> right.
func Iff(left, right Sentence) Sentence {
	return iff{left: left, right: right}
}

func (x iff) Evaluate(facts BaseFacts) (bool, error) {
	l, err := x.left.Evaluate(facts)
	if err != nil {
		return false, err
	}
	r, err := x.right.Evaluate(facts)
	if err != nil {
		return false, err
	}
	return l == r, nil
}

func (x iff) Atoms() AtomSet {
	return Union(x.left.Atoms(), x.right.Atoms())
}
func (x iff) Key() string {
	return "iff(" + x.left.Key() + "," + x.right.Key() + ")"
}
func (x iff) String() string {
	return parenthesize(x.left) + " ⟷ " + parenthesize(x.right)
}

///////////////////////////////////////////////////////////////////////////

func unionAtoms(terms []Sentence) AtomSet {
	sets := make([]AtomSet, len(terms))
	for i, t := range terms {
		sets[i] = t.Atoms()
	}
	return Union(sets...)
}

func joinKeys(terms []Sentence) string {
	keys := make([]string, len(terms))
	for i, t := range terms {
		keys[i] = t.Key()
	}
	return strings.Join(keys, ",")
}

func joinStrings(terms []Sentence, sep string) string {
	if len(terms) == 1 {
		return terms[0].String()
	}
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = parenthesize(t)
	}
	return strings.Join(parts, sep)
}
