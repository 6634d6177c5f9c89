// Copyright (c) 2024 Neomantra Corp

// Package inductor implements the driver: the stateful loop that, on every
// update, admits a new trading algorithm, draws the next policy from every
// algorithm admitted so far, combines them into one ensemble policy, and
// asks the market maker for the next belief state.
package inductor

import (
	"fmt"
	"math/big"

	"github.com/NimbleMarkets/logind-go/ensemble"
	"github.com/NimbleMarkets/logind-go/enumerator"
	"github.com/NimbleMarkets/logind-go/history"
	"github.com/NimbleMarkets/logind-go/internal/trace"
	"github.com/NimbleMarkets/logind-go/market"
	"github.com/NimbleMarkets/logind-go/sentence"
)

// TradingAlgorithm is a lazy, potentially infinite sequence of
// TradingPolicy: the k-th draw is the policy for update k. It is a Gen,
// not a restartable sequence -- the Inductor advances it monotonically,
// once per update, and never rewinds it.
type TradingAlgorithm = enumerator.Gen[market.TradingPolicy]

// Inductor holds everything that must persist across updates: observations,
// admitted algorithms, the trading history drawn from each, and the
// credence history committed so far.
type Inductor struct {
	observations     []sentence.Sentence
	algorithms       []TradingAlgorithm
	tradingHistories [][]market.TradingPolicy
	credences        *history.History
}

// New returns an Inductor with no observations, no admitted algorithms, and
// an empty credence history.
func New() *Inductor {
	return &Inductor{credences: history.New()}
}

// Credences returns the committed credence history.
func (ind *Inductor) Credences() *history.History {
	return ind.credences
}

// Observations returns the observations committed so far, in order.
func (ind *Inductor) Observations() []sentence.Sentence {
	out := make([]sentence.Sentence, len(ind.observations))
	copy(out, ind.observations)
	return out
}

// Update admits algorithm as a new trader, draws the next policy from every
// previously admitted algorithm, combines all of them into one ensemble
// policy via ensemble.Combine, and finds the next belief state via
// market.FindCredences. If searchOrder is nil, market.DefaultSearchOrder is
// used. tracer may be nil; when set, it observes both Combine's admission
// loop and FindCredences's candidate search.
//
// On any error the Inductor's state is left exactly as it was before the
// call: nothing is committed until find_credences succeeds. The one
// exception, permitted by design, is that trading algorithms are advanced
// monotonically as they are drawn from, even on a call that ultimately
// fails -- a TradingAlgorithm cannot be rewound once it has yielded a
// policy.
func (ind *Inductor) Update(observation sentence.Sentence, algorithm TradingAlgorithm, searchOrder market.SearchOrder, tracer *trace.Tracer) (history.BeliefState, error) {
	newObservations := append(append([]sentence.Sentence{}, ind.observations...), observation)
	n := len(newObservations)

	newTradingHistories := make([][]market.TradingPolicy, len(ind.tradingHistories), len(ind.tradingHistories)+1)
	for i, row := range ind.tradingHistories {
		policy, ok := ind.algorithms[i]()
		if !ok {
			return nil, fmt.Errorf("%w: algorithm %d produced no policy for update %d", ErrExhausted, i, n)
		}
		newTradingHistories[i] = append(append([]market.TradingPolicy{}, row...), policy)
	}

	newRow := make([]market.TradingPolicy, 0, n)
	for j := 0; j < n; j++ {
		policy, ok := algorithm()
		if !ok {
			return nil, fmt.Errorf("%w: newly admitted algorithm produced only %d of %d required policies", ErrExhausted, j, n)
		}
		newRow = append(newRow, policy)
	}
	newTradingHistories = append(newTradingHistories, newRow)

	newAlgorithms := append(append([]TradingAlgorithm{}, ind.algorithms...), algorithm)

	ensemblePolicy, err := ensemble.Combine(newTradingHistories, newObservations, ind.credences, tracer)
	if err != nil {
		return nil, err
	}

	tolerance := negativePowerOfTwo(n)

	credencesNext, err := market.FindCredences(ensemblePolicy, ind.credences, tolerance, searchOrder, tracer)
	if err != nil {
		return nil, err
	}

	ind.observations = newObservations
	ind.algorithms = newAlgorithms
	ind.tradingHistories = newTradingHistories
	ind.credences = ind.credences.WithNextUpdate(credencesNext)

	return credencesNext, nil
}

// negativePowerOfTwo returns 2^-e as an exact rational.
func negativePowerOfTwo(e int) *big.Rat {
	denom := new(big.Int).Lsh(big.NewInt(1), uint(e))
	return new(big.Rat).SetFrac(big.NewInt(1), denom)
}
