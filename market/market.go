// Copyright (c) 2024 Neomantra Corp

// Package market implements the market maker: the routine that, given a
// trading policy and a credence history, evaluates a trader's value of
// holdings in a given world and searches for a next set of credences that
// no world lets the trader exploit by more than a tolerance.
package market

import (
	"math/big"

	"github.com/NimbleMarkets/logind-go/enumerator"
	"github.com/NimbleMarkets/logind-go/formula"
	"github.com/NimbleMarkets/logind-go/history"
	"github.com/NimbleMarkets/logind-go/internal/trace"
	"github.com/NimbleMarkets/logind-go/sentence"
	"github.com/NimbleMarkets/logind-go/worlds"
)

// TradingPolicy maps a sentence to the trading formula governing how many
// tokens of it to buy on the next update.
type TradingPolicy = *sentence.Map[formula.Formula]

// NewTradingPolicy returns an empty trading policy.
func NewTradingPolicy() TradingPolicy {
	return sentence.NewMap[formula.Formula]()
}

// Evaluate computes the value of the trades executed by policy, given a
// credence history and one hypothetical outcome (world) for each sentence
// in policy's support.
func Evaluate(policy TradingPolicy, h *history.History, world worlds.World) (*big.Rat, error) {
	total := new(big.Rat)
	for _, s := range policy.Keys() {
		f, _ := policy.Get(s)
		quantity, err := f.Evaluate(h)
		if err != nil {
			return nil, err
		}
		price := h.Price(s)

		payout := new(big.Rat)
		if v, ok := world.Get(s); ok && v {
			payout.SetInt64(1)
		}

		delta := new(big.Rat).Sub(payout, price)
		total.Add(total, new(big.Rat).Mul(quantity, delta))
	}
	return total, nil
}

// allAssignments enumerates every possible truth assignment directly to the
// sentences in support -- a hypothetical market outcome, not a
// propositionally-derived one, so it does not go through worlds.ConsistentWith
// (which evaluates sentence structure over atoms instead).
func allAssignments(support []sentence.Sentence) []worlds.World {
	n := len(support)
	total := 1 << uint(n)
	out := make([]worlds.World, 0, total)
	for mask := 0; mask < total; mask++ {
		w := sentence.NewMap[bool]()
		for j, s := range support {
			w.Set(s, (mask>>uint(j))&1 == 1)
		}
		out = append(out, w)
	}
	return out
}

// SearchOrder produces a lazy sequence of candidate belief states over the
// given search domain.
type SearchOrder func(domain []sentence.Sentence) enumerator.Gen[history.BeliefState]

// DefaultSearchOrder enumerates every rational-valued credence assignment
// over domain, in the lexicographically-first order of the product of
// enumerator.RationalsBetween(0, 1).
func DefaultSearchOrder(domain []sentence.Sentence) enumerator.Gen[history.BeliefState] {
	tuples := enumerator.Product(enumerator.RationalsBetween(big.NewRat(0, 1), big.NewRat(1, 1)), len(domain))
	return func() (history.BeliefState, bool) {
		tuple, ok := tuples()
		if !ok {
			return nil, false
		}
		state := history.NewBeliefState()
		for i, s := range domain {
			state.Set(s, tuple[i])
		}
		return state, true
	}
}

// FindCredences searches for a belief state such that, appended to h, the
// value of holdings of policy's trades is at most tolerance in every
// possible outcome over policy's support. If searchOrder is nil,
// DefaultSearchOrder is used. tracer may be nil.
func FindCredences(policy TradingPolicy, h *history.History, tolerance *big.Rat, searchOrder SearchOrder, tracer *trace.Tracer) (history.BeliefState, error) {
	if searchOrder == nil {
		searchOrder = DefaultSearchOrder
	}

	support := policy.Keys()

	domainSet := sentence.NewSet(support...)
	for _, s := range support {
		f, _ := policy.Get(s)
		domainSet = sentence.UnionSets(domainSet, f.Domain())
	}
	domain := domainSet.Slice()

	worldsToCheck := allAssignments(support)

	candidates := searchOrder(domain)
	for index := 0; ; index++ {
		candidate, ok := candidates()
		if !ok {
			return nil, ErrSearchExhausted
		}

		h2 := h.WithNextUpdate(candidate)

		satisfied := true
		for _, w := range worldsToCheck {
			value, err := Evaluate(policy, h2, w)
			if err != nil {
				return nil, err
			}
			// profits above tolerance are disallowed; losses are fine, so
			// there is no absolute value here.
			if value.Cmp(tolerance) > 0 {
				satisfied = false
				tracer.WorldRejected(value, tolerance)
				break
			}
		}
		tracer.Candidate(index, len(domain), satisfied)
		if satisfied {
			return candidate, nil
		}
	}
}
