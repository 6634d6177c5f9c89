// Copyright (c) 2024 Neomantra Corp

package ensemble_test

import (
	"testing"

	"github.com/NimbleMarkets/logind-go/ensemble"
	"github.com/NimbleMarkets/logind-go/formula"
	"github.com/NimbleMarkets/logind-go/history"
	"github.com/NimbleMarkets/logind-go/market"
	"github.com/NimbleMarkets/logind-go/sentence"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestEnsemble(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "ensemble suite")
}

var _ = Describe("Combine", func() {
	phi := sentence.Atom("ϕ")

	It("rejects an observation history of the wrong length", func() {
		credenceHistory := history.New()
		row := []market.TradingPolicy{market.NewTradingPolicy()}
		_, err := ensemble.Combine([][]market.TradingPolicy{row}, nil, credenceHistory, nil)
		Expect(err).To(MatchError(ensemble.ErrLengthMismatch))
	})

	It("gives algorithm k no authority over updates before its admission", func() {
		credenceHistory := history.New().WithNextUpdate(history.NewBeliefState())
		observationHistory := []sentence.Sentence{phi, phi}

		algo0Row := []market.TradingPolicy{market.NewTradingPolicy(), market.NewTradingPolicy()}
		algo0Row[0].Set(phi, formula.ConstantInt(1))
		algo0Row[1].Set(phi, formula.ConstantInt(1))

		// algorithm admitted at index 1 -- its update-0 entry must be
		// clipped away entirely, so the combined policy is identical
		// whether that entry trades a large quantity or nothing at all.
		withLargeEntry := []market.TradingPolicy{market.NewTradingPolicy(), market.NewTradingPolicy()}
		withLargeEntry[0].Set(phi, formula.ConstantInt(999))
		withLargeEntry[1].Set(phi, formula.ConstantInt(4))

		withEmptyEntry := []market.TradingPolicy{market.NewTradingPolicy(), market.NewTradingPolicy()}
		withEmptyEntry[1].Set(phi, formula.ConstantInt(4))

		combinedLarge, err := ensemble.Combine(
			[][]market.TradingPolicy{algo0Row, withLargeEntry},
			observationHistory,
			credenceHistory, nil)
		Expect(err).To(BeNil())

		combinedEmpty, err := ensemble.Combine(
			[][]market.TradingPolicy{algo0Row, withEmptyEntry},
			observationHistory,
			credenceHistory, nil)
		Expect(err).To(BeNil())

		exprLarge, ok := combinedLarge.Get(phi)
		Expect(ok).To(BeTrue())
		exprEmpty, ok := combinedEmpty.Get(phi)
		Expect(ok).To(BeTrue())
		Expect(exprLarge.String()).To(Equal(exprEmpty.String()))
	})

	It("produces a policy whose only support is the union of admitted algorithms' support", func() {
		credenceHistory := history.New().WithNextUpdate(history.NewBeliefState())
		psi := sentence.Atom("ψ")

		rowA := []market.TradingPolicy{market.NewTradingPolicy(), market.NewTradingPolicy()}
		rowA[0].Set(phi, formula.ConstantInt(1))
		rowA[1].Set(phi, formula.ConstantInt(1))

		// algorithm 1 is admitted on the second update, so only its
		// second policy counts.
		rowB := []market.TradingPolicy{market.NewTradingPolicy(), market.NewTradingPolicy()}
		rowB[1].Set(psi, formula.ConstantInt(1))

		combined, err := ensemble.Combine(
			[][]market.TradingPolicy{rowA, rowB},
			[]sentence.Sentence{phi, phi},
			credenceHistory, nil)
		Expect(err).To(BeNil())

		Expect(combined.Len()).To(Equal(2))
		_, hasPhi := combined.Get(phi)
		_, hasPsi := combined.Get(psi)
		Expect(hasPhi).To(BeTrue())
		Expect(hasPsi).To(BeTrue())
	})

	It("scales every term by a strictly positive weight, never zeroing out a contributing algorithm", func() {
		credenceHistory := history.New()

		policyRow0 := market.NewTradingPolicy()
		policyRow0.Set(phi, formula.ConstantInt(2))

		combined, err := ensemble.Combine(
			[][]market.TradingPolicy{{policyRow0}},
			[]sentence.Sentence{phi},
			credenceHistory, nil)
		Expect(err).To(BeNil())

		expr, ok := combined.Get(phi)
		Expect(ok).To(BeTrue())
		Expect(expr.Bound().Sign()).To(Equal(1))
	})
})
