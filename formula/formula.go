// Copyright (c) 2024 Neomantra Corp

// Package formula implements the trading-formula algebra: a small symbolic
// expression tree over exact rational credences and prices, used to build
// trading policies and to reason about their worst-case value without
// having to run them.
package formula

import (
	"math/big"

	"github.com/NimbleMarkets/logind-go/history"
	"github.com/NimbleMarkets/logind-go/sentence"
)

// Formula is a trading formula: a symbolic expression that evaluates to a
// quantity of tokens to buy as a function of a credence history.
type Formula interface {
	// Evaluate computes the formula's value given a credence history.
	Evaluate(h *history.History) (*big.Rat, error)

	// Bound returns an upper bound on the absolute value of Evaluate's
	// result for any credence history whose prices lie in [0,1].
	Bound() *big.Rat

	// Domain returns the sentences whose price this formula depends on.
	Domain() *sentence.Set

	// String renders the formula for diagnostics.
	String() string
}

func absRat(x *big.Rat) *big.Rat {
	return new(big.Rat).Abs(x)
}

func maxRat(a, b *big.Rat) *big.Rat {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

func domainUnion(terms []Formula) *sentence.Set {
	sets := make([]*sentence.Set, len(terms))
	for i, t := range terms {
		sets[i] = t.Domain()
	}
	return sentence.UnionSets(sets...)
}
