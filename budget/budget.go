// Copyright (c) 2024 Neomantra Corp

// Package budget builds the symbolic budget factor: a trading formula that,
// used as a multiplier on every entry of a trading policy, guarantees the
// trader's cumulative value of holdings never falls below a prescribed
// loss bound in any world propositionally consistent with the observations
// seen so far.
package budget

import (
	"fmt"
	"math/big"

	"github.com/NimbleMarkets/logind-go/formula"
	"github.com/NimbleMarkets/logind-go/history"
	"github.com/NimbleMarkets/logind-go/market"
	"github.com/NimbleMarkets/logind-go/sentence"
	"github.com/NimbleMarkets/logind-go/worlds"
)

// bankruptcySlack is the small slack added to -budget when checking
// whether a trader has already exhausted its budget on a past update; it
// absorbs the rounding a floating-point reference implementation would
// otherwise need, even though this implementation is exact.
var bankruptcySlack = big.NewRat(1, 10000000)

// Compute builds the budget factor for the given loss budget.
//
// observationHistory, tradingHistory, and credenceHistory must all have the
// same length n. nextObservation and nextTradingPolicy describe the update
// about to happen; the credences the inductor will assign on that update
// are not yet known, which is why the returned formula refers to them
// symbolically via formula.Price rather than a concrete number.
func Compute(
	budget *big.Rat,
	observationHistory []sentence.Sentence,
	nextObservation sentence.Sentence,
	tradingHistory []market.TradingPolicy,
	nextTradingPolicy market.TradingPolicy,
	credenceHistory *history.History,
) (formula.Formula, error) {
	if budget.Sign() <= 0 {
		return nil, fmt.Errorf("%w: budget must be positive, got %s", ErrInvariant, budget.RatString())
	}
	n := len(observationHistory)

	support := sentence.NewSet()
	for _, policy := range tradingHistory {
		support = sentence.UnionSets(support, sentence.NewSet(policy.Keys()...))
	}

	bankrupt, err := alreadyBankrupt(budget, n, observationHistory, support, tradingHistory, credenceHistory)
	if err != nil {
		return nil, err
	}
	if bankrupt {
		return formula.Constant(new(big.Rat)), nil
	}

	observations := make([]sentence.Sentence, 0, n+1)
	observations = append(observations, observationHistory...)
	observations = append(observations, nextObservation)

	extendedSupport := sentence.UnionSets(support, sentence.NewSet(nextTradingPolicy.Keys()...))

	var divisors []formula.Formula
	worldGen := worlds.ConsistentWith(observations, extendedSupport.Slice())
	for {
		w, ok := worldGen()
		if !ok {
			break
		}

		accumulated := new(big.Rat)
		for _, policy := range tradingHistory {
			v, err := market.Evaluate(policy, credenceHistory, w)
			if err != nil {
				return nil, err
			}
			accumulated.Add(accumulated, v)
		}

		// the money left to trade is the original budget, plus (resp.
		// minus) any money made (resp. lost) since the beginning of time.
		remaining := new(big.Rat).Add(budget, accumulated)
		if remaining.Sign() <= 0 {
			return nil, fmt.Errorf("%w: remaining budget %s is non-positive after the bankruptcy check passed", ErrInvariant, remaining.RatString())
		}
		remainingRecip := new(big.Rat).Inv(remaining)

		var terms []formula.Formula
		for _, s := range nextTradingPolicy.Keys() {
			tradingFormula, _ := nextTradingPolicy.Get(s)

			price := formula.Price(s, n+1)

			payout := new(big.Rat)
			if v, _ := w.Get(s); v {
				payout.SetInt64(1)
			}

			value := formula.Sum(
				formula.Constant(payout),
				formula.Product(formula.ConstantInt(-1), price))

			terms = append(terms, formula.Product(tradingFormula, value))
		}
		valueOfHoldings := formula.Sum(terms...)
		negValueOfHoldings := formula.Product(formula.ConstantInt(-1), valueOfHoldings)
		divisorInWorld := formula.Product(formula.Constant(remainingRecip), negValueOfHoldings)

		divisors = append(divisors, divisorInWorld)
	}

	if len(divisors) == 0 {
		// no world is consistent with the observations, so there is
		// nothing the budget factor needs to guard against.
		return formula.ConstantInt(1), nil
	}

	budgetDivisor := formula.Max(divisors...)

	// SafeReciprocal turns the divisor into a multiplicative factor and
	// clips it to 1, so the budget factor only ever scales a trader down.
	return formula.SafeReciprocal(budgetDivisor), nil
}

// alreadyBankrupt evaluates the prefix check: if, in any world consistent
// with the first i observations, the trader's accumulated value through
// update i already fell below -budget (plus a small slack), no further
// trading is permitted.
func alreadyBankrupt(
	budget *big.Rat,
	n int,
	observationHistory []sentence.Sentence,
	support *sentence.Set,
	tradingHistory []market.TradingPolicy,
	credenceHistory *history.History,
) (bool, error) {
	threshold := new(big.Rat).Neg(budget)
	threshold.Add(threshold, bankruptcySlack)

	for i := 1; i <= n; i++ {
		worldGen := worlds.ConsistentWith(observationHistory[:i], support.Slice())
		for {
			w, ok := worldGen()
			if !ok {
				break
			}

			accumulated := new(big.Rat)
			for j := 0; j < i; j++ {
				v, err := market.Evaluate(tradingHistory[j], credenceHistory, w)
				if err != nil {
					return false, err
				}
				accumulated.Add(accumulated, v)
				if accumulated.Cmp(threshold) < 0 {
					return true, nil
				}
			}
		}
	}
	return false, nil
}
