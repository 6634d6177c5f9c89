// Copyright (c) 2024 Neomantra Corp

package inductor_test

import (
	"testing"

	"github.com/NimbleMarkets/logind-go/inductor"
	"github.com/NimbleMarkets/logind-go/market"
	"github.com/NimbleMarkets/logind-go/sentence"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestInductor(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "inductor suite")
}

// emptyAlgorithm yields the empty trading policy forever.
func emptyAlgorithm() inductor.TradingAlgorithm {
	return func() (market.TradingPolicy, bool) {
		return market.NewTradingPolicy(), true
	}
}

// exhaustedAlgorithm yields nothing at all.
func exhaustedAlgorithm() inductor.TradingAlgorithm {
	return func() (market.TradingPolicy, bool) {
		return nil, false
	}
}

var _ = Describe("Update", func() {
	phi := sentence.Atom("ϕ")

	It("commits a new belief state for a trivially-empty algorithm", func() {
		ind := inductor.New()

		belief, err := ind.Update(phi, emptyAlgorithm(), nil, nil)
		Expect(err).To(BeNil())
		Expect(belief).NotTo(BeNil())

		Expect(ind.Credences().Len()).To(Equal(1))
		Expect(ind.Observations()).To(HaveLen(1))
	})

	It("supports several sequential updates, each admitting a new algorithm", func() {
		ind := inductor.New()
		psi := sentence.Atom("ψ")

		_, err := ind.Update(phi, emptyAlgorithm(), nil, nil)
		Expect(err).To(BeNil())

		_, err = ind.Update(psi, emptyAlgorithm(), nil, nil)
		Expect(err).To(BeNil())

		Expect(ind.Credences().Len()).To(Equal(2))
		Expect(ind.Observations()).To(HaveLen(2))
	})

	It("leaves state unchanged and reports ErrExhausted when the new algorithm yields nothing", func() {
		ind := inductor.New()

		_, err := ind.Update(phi, exhaustedAlgorithm(), nil, nil)
		Expect(err).To(MatchError(inductor.ErrExhausted))

		Expect(ind.Credences().Len()).To(Equal(0))
		Expect(ind.Observations()).To(HaveLen(0))
	})

	It("reports ErrExhausted from a previously admitted algorithm that runs dry on a later update", func() {
		ind := inductor.New()
		psi := sentence.Atom("ψ")

		calls := 0
		onceThenExhausted := func() (market.TradingPolicy, bool) {
			calls++
			if calls > 1 {
				return nil, false
			}
			return market.NewTradingPolicy(), true
		}

		_, err := ind.Update(phi, onceThenExhausted, nil, nil)
		Expect(err).To(BeNil())

		_, err = ind.Update(psi, emptyAlgorithm(), nil, nil)
		Expect(err).To(MatchError(inductor.ErrExhausted))

		// the failed second update must not have been committed.
		Expect(ind.Credences().Len()).To(Equal(1))
		Expect(ind.Observations()).To(HaveLen(1))
	})
})
