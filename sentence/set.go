// Copyright (c) 2024 Neomantra Corp

package sentence

import "sort"

// Set is a deduplicated collection of Sentence values, keyed by structural
// identity (Sentence.Key). It is the Go-idiomatic stand-in for "set of
// Sentence" used throughout the trading-formula algebra and market maker,
// since Sentence implementations may embed slices and so are not
// comparable with Go's built-in == operator.
type Set struct {
	byKey map[string]Sentence
}

// NewSet builds a Set containing the given sentences.
func NewSet(items ...Sentence) *Set {
	s := &Set{byKey: make(map[string]Sentence, len(items))}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add inserts s into the set and returns the receiver.
func (set *Set) Add(s Sentence) *Set {
	if set.byKey == nil {
		set.byKey = make(map[string]Sentence)
	}
	set.byKey[s.Key()] = s
	return set
}

// UnionSets returns a new Set containing every sentence in every argument.
func UnionSets(sets ...*Set) *Set {
	out := NewSet()
	for _, s := range sets {
		if s == nil {
			continue
		}
		for key, sentence := range s.byKey {
			out.byKey[key] = sentence
		}
	}
	return out
}

// Contains reports whether s is a member of the set.
func (set *Set) Contains(s Sentence) bool {
	if set == nil {
		return false
	}
	_, ok := set.byKey[s.Key()]
	return ok
}

// Len returns the number of sentences in the set.
func (set *Set) Len() int {
	if set == nil {
		return 0
	}
	return len(set.byKey)
}

// Slice returns the set's members in deterministic ascending Key order.
func (set *Set) Slice() []Sentence {
	if set == nil {
		return nil
	}
	keys := make([]string, 0, len(set.byKey))
	for k := range set.byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Sentence, len(keys))
	for i, k := range keys {
		out[i] = set.byKey[k]
	}
	return out
}
