// Copyright (c) 2024 Neomantra Corp

// Package history implements the credence history: a persistent, ordered
// sequence of belief states with 1-based day lookup.
package history

import (
	"fmt"
	"math/big"

	"github.com/NimbleMarkets/logind-go/sentence"
)

// BeliefState maps a sentence to its credence (an exact rational in [0,1]).
type BeliefState = *sentence.Map[*big.Rat]

// NewBeliefState returns an empty belief state.
func NewBeliefState() BeliefState {
	return sentence.NewMap[*big.Rat]()
}

// History is an ordered, 1-indexed sequence of belief states. It is
// persistent: WithNextUpdate returns a new History sharing the receiver's
// prefix; the receiver is never mutated.
type History struct {
	updates []BeliefState
}

// New returns an empty History.
func New() *History {
	return &History{}
}

// Len returns the number of belief states recorded so far.
func (h *History) Len() int {
	if h == nil {
		return 0
	}
	return len(h.updates)
}

// Lookup returns the credence assigned to s on the given 1-based day. It
// returns ErrOutOfRange if day is not in [1, Len()]. A sentence absent from
// the belief state on that day has credence zero.
func (h *History) Lookup(s sentence.Sentence, day int) (*big.Rat, error) {
	n := h.Len()
	if day < 1 || day > n {
		return nil, fmt.Errorf("%w: day %d not in [1, %d]", ErrOutOfRange, day, n)
	}
	return h.updates[day-1].GetOr(s, new(big.Rat)), nil
}

// StateAt returns the belief state committed on the given 1-based day, as a
// read-only handle: the caller must not mutate the returned map through
// Set. It returns ErrOutOfRange if day is not in [1, Len()].
func (h *History) StateAt(day int) (BeliefState, error) {
	n := h.Len()
	if day < 1 || day > n {
		return nil, fmt.Errorf("%w: day %d not in [1, %d]", ErrOutOfRange, day, n)
	}
	return h.updates[day-1], nil
}

// Price returns the credence assigned to s on the most recent day, or zero
// if the history is empty.
func (h *History) Price(s sentence.Sentence) *big.Rat {
	if h.Len() == 0 {
		return new(big.Rat)
	}
	return h.updates[h.Len()-1].GetOr(s, new(big.Rat))
}

// WithNextUpdate returns a new History with state appended as the next
// belief state. The receiver is left unchanged.
func (h *History) WithNextUpdate(state BeliefState) *History {
	next := make([]BeliefState, h.Len(), h.Len()+1)
	copy(next, h.updates)
	next = append(next, state)
	return &History{updates: next}
}
