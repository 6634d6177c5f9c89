// Copyright (c) 2024 Neomantra Corp

package budget_test

import (
	"math/big"
	"testing"

	"github.com/NimbleMarkets/logind-go/budget"
	"github.com/NimbleMarkets/logind-go/formula"
	"github.com/NimbleMarkets/logind-go/history"
	"github.com/NimbleMarkets/logind-go/market"
	"github.com/NimbleMarkets/logind-go/sentence"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestBudget(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "budget suite")
}

func rat(n, d int64) *big.Rat { return big.NewRat(n, d) }

// historyWithPhi builds a one-update credence history assigning p to phi.
func historyWithPhi(phi sentence.Sentence, p *big.Rat) *history.History {
	state := history.NewBeliefState()
	state.Set(phi, p)
	return history.New().WithNextUpdate(state)
}

var _ = Describe("Compute", func() {
	phi := sentence.Atom("ϕ")
	psi := sentence.Atom("ψ")

	It("evaluates to exactly 1 in the trivial single-sentence case (scenario 4)", func() {
		policy := market.NewTradingPolicy()
		policy.Set(phi, formula.ConstantInt(10))

		bf, err := budget.Compute(rat(2, 1), nil, phi, nil, policy, history.New())
		Expect(err).To(BeNil())

		for _, p := range []*big.Rat{rat(0, 1), rat(2, 10), rat(6, 10), rat(1, 1)} {
			v, err := bf.Evaluate(historyWithPhi(phi, p))
			Expect(err).To(BeNil())
			Expect(v.Cmp(rat(1, 1))).To(Equal(0))
		}
	})

	It("scales down proportionally under a disjunction observation (scenario 5)", func() {
		policy := market.NewTradingPolicy()
		policy.Set(phi, formula.ConstantInt(10))

		bf, err := budget.Compute(rat(2, 1), nil, sentence.Or(phi, psi), nil, policy, history.New())
		Expect(err).To(BeNil())

		cases := []struct {
			p        *big.Rat
			expected *big.Rat
		}{
			{rat(10, 10), rat(2, 10)},
			{rat(4, 10), rat(5, 10)},
			{rat(2, 10), rat(1, 1)},
			{rat(0, 1), rat(1, 1)},
		}
		for _, c := range cases {
			v, err := bf.Evaluate(historyWithPhi(phi, c.p))
			Expect(err).To(BeNil())
			Expect(v.Cmp(c.expected)).To(Equal(0))
		}
	})

	It("returns Constant(0) once a trader is already bankrupt (scenario 6)", func() {
		pastCredences := history.NewBeliefState()
		pastCredences.Set(phi, rat(6, 10))
		pastCredences.Set(psi, rat(7, 10))
		credenceHistory := history.New().WithNextUpdate(pastCredences)

		pastPolicy := market.NewTradingPolicy()
		pastPolicy.Set(psi, formula.ConstantInt(10))

		nextPolicy := market.NewTradingPolicy()
		nextPolicy.Set(phi, formula.ConstantInt(10))

		bf, err := budget.Compute(
			rat(2, 1),
			[]sentence.Sentence{sentence.Or(phi, psi)},
			sentence.Or(phi, psi),
			[]market.TradingPolicy{pastPolicy},
			nextPolicy,
			credenceHistory)
		Expect(err).To(BeNil())

		v, err := bf.Evaluate(history.New())
		Expect(err).To(BeNil())
		Expect(v.Sign()).To(Equal(0))
	})

	It("rejects a non-positive budget", func() {
		policy := market.NewTradingPolicy()
		_, err := budget.Compute(rat(0, 1), nil, phi, nil, policy, history.New())
		Expect(err).To(MatchError(budget.ErrInvariant))
	})
})
