// Copyright (c) 2024 Neomantra Corp

package formula_test

import (
	"math/big"
	"testing"

	"github.com/NimbleMarkets/logind-go/formula"
	"github.com/NimbleMarkets/logind-go/history"
	"github.com/NimbleMarkets/logind-go/sentence"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestFormula(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "formula suite")
}

func rat(n, d int64) *big.Rat { return big.NewRat(n, d) }

var _ = Describe("Formula", func() {
	s1 := sentence.Atom("1")

	Context("Constant", func() {
		It("evaluates to its constant regardless of history", func() {
			f := formula.Constant(rat(-3, 2))
			v, err := f.Evaluate(history.New())
			Expect(err).To(BeNil())
			Expect(v.Cmp(rat(-3, 2))).To(Equal(0))
		})

		It("bounds to its absolute value", func() {
			Expect(formula.Constant(rat(-3, 2)).Bound().Cmp(rat(3, 2))).To(Equal(0))
		})

		It("has an empty domain", func() {
			Expect(formula.Constant(rat(1, 1)).Domain().Len()).To(Equal(0))
		})
	})

	Context("Price", func() {
		h := history.New()
		state := history.NewBeliefState()
		state.Set(s1, rat(3, 5))
		h = h.WithNextUpdate(state)

		It("looks up the credence on the given day", func() {
			v, err := formula.Price(s1, 1).Evaluate(h)
			Expect(err).To(BeNil())
			Expect(v.Cmp(rat(3, 5))).To(Equal(0))
		})

		It("bounds to 1", func() {
			Expect(formula.Price(s1, 1).Bound().Cmp(rat(1, 1))).To(Equal(0))
		})

		It("has the sentence as its domain", func() {
			d := formula.Price(s1, 1).Domain()
			Expect(d.Contains(s1)).To(BeTrue())
			Expect(d.Len()).To(Equal(1))
		})
	})

	Context("Sum and Product", func() {
		It("evaluates 1 - 3*price as expected", func() {
			h := history.New()
			state := history.NewBeliefState()
			state.Set(s1, rat(1, 3))
			h = h.WithNextUpdate(state)

			f := formula.Sum(
				formula.ConstantInt(1),
				formula.Product(formula.ConstantInt(-3), formula.Price(s1, 1)))

			v, err := f.Evaluate(h)
			Expect(err).To(BeNil())
			Expect(v.Sign()).To(Equal(0))
		})

		It("bounds Sum to the sum of term bounds", func() {
			f := formula.Sum(formula.ConstantInt(2), formula.Price(s1, 1))
			Expect(f.Bound().Cmp(rat(3, 1))).To(Equal(0))
		})

		It("bounds Product to the product of term bounds", func() {
			f := formula.Product(formula.ConstantInt(2), formula.Price(s1, 1))
			Expect(f.Bound().Cmp(rat(2, 1))).To(Equal(0))
		})
	})

	Context("Max and Min", func() {
		a := formula.ConstantInt(1)
		b := formula.ConstantInt(3)

		It("Max evaluates to the largest term", func() {
			v, _ := formula.Max(a, b).Evaluate(history.New())
			Expect(v.Cmp(rat(3, 1))).To(Equal(0))
		})

		It("Min evaluates to the smallest term", func() {
			v, _ := formula.Min(a, b).Evaluate(history.New())
			Expect(v.Cmp(rat(1, 1))).To(Equal(0))
		})

		It("Max bounds to the max of term bounds, not the sum", func() {
			Expect(formula.Max(a, b).Bound().Cmp(rat(3, 1))).To(Equal(0))
		})
	})

	Context("SafeReciprocal", func() {
		It("clips to 1 when the inner value is below 1", func() {
			v, err := formula.SafeReciprocal(formula.ConstantInt(0)).Evaluate(history.New())
			Expect(err).To(BeNil())
			Expect(v.Cmp(rat(1, 1))).To(Equal(0))
		})

		It("is the exact reciprocal when the inner value exceeds 1", func() {
			v, err := formula.SafeReciprocal(formula.ConstantInt(4)).Evaluate(history.New())
			Expect(err).To(BeNil())
			Expect(v.Cmp(rat(1, 4))).To(Equal(0))
		})

		It("always bounds to 1", func() {
			Expect(formula.SafeReciprocal(formula.ConstantInt(100)).Bound().Cmp(rat(1, 1))).To(Equal(0))
		})
	})

	Context("bound invariant", func() {
		It("never exceeds its bound when all referenced prices lie in [0,1]", func() {
			h := history.New()
			state := history.NewBeliefState()
			state.Set(s1, rat(4, 5))
			h = h.WithNextUpdate(state)

			f := formula.Sum(
				formula.Product(formula.ConstantInt(2), formula.Price(s1, 1)),
				formula.ConstantInt(-1))

			v, err := f.Evaluate(h)
			Expect(err).To(BeNil())

			abs := new(big.Rat).Abs(v)
			Expect(abs.Cmp(f.Bound()) <= 0).To(BeTrue())
		})
	})
})
