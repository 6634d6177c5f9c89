// Copyright (c) 2024 Neomantra Corp

package sentence

import "sort"

// Map is an ordered, deduplicated mapping keyed by Sentence structural
// identity. It backs belief states, worlds, and trading policies, each
// of which is a mapping from Sentence to some value type V.
type Map[V any] struct {
	keys map[string]Sentence
	vals map[string]V
}

// NewMap builds an empty Map.
func NewMap[V any]() *Map[V] {
	return &Map[V]{
		keys: make(map[string]Sentence),
		vals: make(map[string]V),
	}
}

// Set associates v with s, replacing any prior value.
func (m *Map[V]) Set(s Sentence, v V) {
	key := s.Key()
	m.keys[key] = s
	m.vals[key] = v
}

// Get returns the value associated with s, if any.
func (m *Map[V]) Get(s Sentence) (V, bool) {
	var zero V
	if m == nil {
		return zero, false
	}
	v, ok := m.vals[s.Key()]
	if !ok {
		return zero, false
	}
	return v, true
}

// GetOr returns the value associated with s, or fallback if absent.
func (m *Map[V]) GetOr(s Sentence, fallback V) V {
	if v, ok := m.Get(s); ok {
		return v
	}
	return fallback
}

// Len returns the number of entries in the map.
func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.vals)
}

// Keys returns the map's sentences in deterministic ascending Key order.
func (m *Map[V]) Keys() []Sentence {
	if m == nil {
		return nil
	}
	keys := make([]string, 0, len(m.keys))
	for k := range m.keys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Sentence, len(keys))
	for i, k := range keys {
		out[i] = m.keys[k]
	}
	return out
}

// Range calls f for every entry in deterministic key order, stopping early
// if f returns false.
func (m *Map[V]) Range(f func(Sentence, V) bool) {
	for _, s := range m.Keys() {
		v, _ := m.Get(s)
		if !f(s, v) {
			return
		}
	}
}
