// Copyright (c) 2024 Neomantra Corp

// Package ensemble implements the trading firm: the combinator that merges
// every trading algorithm admitted so far into a single trading policy for
// the next update, via a double-geometric weighting over algorithm index
// and per-algorithm loss budget.
package ensemble

import (
	"fmt"
	"math/big"

	"github.com/NimbleMarkets/logind-go/budget"
	"github.com/NimbleMarkets/logind-go/formula"
	"github.com/NimbleMarkets/logind-go/history"
	"github.com/NimbleMarkets/logind-go/internal/trace"
	"github.com/NimbleMarkets/logind-go/market"
	"github.com/NimbleMarkets/logind-go/sentence"
)

// Combine merges the trading histories of every admitted algorithm into a
// single TradingPolicy for update n = credenceHistory.Len()+1. tracer may
// be nil.
//
// tradingHistories holds one row per admitted algorithm, each of length n;
// observationHistory has length n; credenceHistory has length n-1.
func Combine(
	tradingHistories [][]market.TradingPolicy,
	observationHistory []sentence.Sentence,
	credenceHistory *history.History,
	tracer *trace.Tracer,
) (market.TradingPolicy, error) {
	n := credenceHistory.Len() + 1
	if len(observationHistory) != n {
		return nil, fmt.Errorf("%w: observationHistory has length %d, want %d", ErrLengthMismatch, len(observationHistory), n)
	}
	for k, row := range tradingHistories {
		if len(row) != n {
			return nil, fmt.Errorf("%w: tradingHistories[%d] has length %d, want %d", ErrLengthMismatch, k, len(row), n)
		}
	}

	termsBySentence := make(map[string][]formula.Formula)
	sentenceByKey := make(map[string]sentence.Sentence)

	addTerm := func(s sentence.Sentence, f formula.Formula) {
		key := s.Key()
		sentenceByKey[key] = s
		termsBySentence[key] = append(termsBySentence[key], f)
	}

	for k, row := range tradingHistories {
		clipped := make([]market.TradingPolicy, n)
		for i, policy := range row {
			if i < k {
				clipped[i] = market.NewTradingPolicy()
			} else {
				clipped[i] = policy
			}
		}

		netValueBound := ceilRatToInt(netValueBoundOf(clipped))
		tracer.AlgorithmAdmitted(k, netValueBound)

		for b := 1; b <= netValueBound; b++ {
			tracer.BudgetRound(k, b)
			bf, err := budget.Compute(
				big.NewRat(int64(b), 1),
				observationHistory[:n-1],
				observationHistory[n-1],
				clipped[:n-1],
				clipped[n-1],
				credenceHistory)
			if err != nil {
				return nil, err
			}

			weight := negativePowerOfTwo(k + 1 + b)
			for _, s := range clipped[n-1].Keys() {
				expr, _ := clipped[n-1].Get(s)
				addTerm(s, formula.Product(formula.Constant(weight), bf, expr))
			}
		}

		// the tail term outside the budgeted series, which absorbs
		// whatever magnitude the budget loop did not already cover.
		tailWeight := negativePowerOfTwo(k + 1 + netValueBound)
		for _, s := range clipped[n-1].Keys() {
			expr, _ := clipped[n-1].Get(s)
			addTerm(s, formula.Product(formula.Constant(tailWeight), expr))
		}
	}

	policy := market.NewTradingPolicy()
	for key, terms := range termsBySentence {
		policy.Set(sentenceByKey[key], formula.Sum(terms...))
	}
	return policy, nil
}

// netValueBoundOf computes 2 * sum of expr.Bound() over every (sentence,
// expr) pair across every update in a clipped trading history: a
// conservative bound on the net value a trader could realize across all of
// its trades, since each trade might cost up to Bound() and later be worth
// up to Bound() more.
func netValueBoundOf(clipped []market.TradingPolicy) *big.Rat {
	total := new(big.Rat)
	for _, policy := range clipped {
		for _, s := range policy.Keys() {
			expr, _ := policy.Get(s)
			total.Add(total, expr.Bound())
		}
	}
	return total.Mul(total, big.NewRat(2, 1))
}

// ceilRatToInt rounds a nonnegative rational up to the nearest integer.
func ceilRatToInt(r *big.Rat) int {
	num := r.Num()
	den := r.Denom()
	q := new(big.Int).Div(num, den)
	if new(big.Int).Mul(q, den).Cmp(num) != 0 {
		q.Add(q, big.NewInt(1))
	}
	return int(q.Int64())
}

// negativePowerOfTwo returns 2^-e as an exact rational.
func negativePowerOfTwo(e int) *big.Rat {
	denom := new(big.Int).Lsh(big.NewInt(1), uint(e))
	return new(big.Rat).SetFrac(big.NewInt(1), denom)
}
