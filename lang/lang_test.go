// Copyright (c) 2024 Neomantra Corp

package lang_test

import (
	"math/big"
	"testing"

	"github.com/NimbleMarkets/logind-go/history"
	"github.com/NimbleMarkets/logind-go/lang"
	"github.com/NimbleMarkets/logind-go/sentence"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestLang(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "lang suite")
}

var _ = Describe("ParseSentence", func() {
	It("parses a bare atom", func() {
		s, err := lang.ParseSentence("rain")
		Expect(err).To(BeNil())
		Expect(s.Key()).To(Equal(sentence.Atom("rain").Key()))
	})

	It("parses connectives with the expected precedence", func() {
		s, err := lang.ParseSentence("a & b | !c -> d <-> e")
		Expect(err).To(BeNil())
		expected := sentence.Iff(
			sentence.Or(
				sentence.And(sentence.Atom("a"), sentence.Atom("b")),
				sentence.Implies(sentence.Not(sentence.Atom("c")), sentence.Atom("d"))),
			sentence.Atom("e"))
		Expect(s.Key()).To(Equal(expected.Key()))
	})

	It("honors explicit parentheses", func() {
		s, err := lang.ParseSentence("!(a & b)")
		Expect(err).To(BeNil())
		expected := sentence.Not(sentence.And(sentence.Atom("a"), sentence.Atom("b")))
		Expect(s.Key()).To(Equal(expected.Key()))
	})

	It("rejects trailing garbage", func() {
		_, err := lang.ParseSentence("a )")
		Expect(err).To(MatchError(lang.ErrSyntax))
	})
})

var _ = Describe("ParseFormula", func() {
	It("parses a rational constant", func() {
		f, err := lang.ParseFormula("1/3")
		Expect(err).To(BeNil())
		v, err := f.Evaluate(history.New())
		Expect(err).To(BeNil())
		Expect(v.Cmp(big.NewRat(1, 3))).To(Equal(0))
	})

	It("parses price() with a nested sentence expression", func() {
		f, err := lang.ParseFormula("price(a & b, 1)")
		Expect(err).To(BeNil())

		phi := sentence.And(sentence.Atom("a"), sentence.Atom("b"))
		state := history.NewBeliefState()
		state.Set(phi, big.NewRat(3, 4))
		h := history.New().WithNextUpdate(state)

		v, err := f.Evaluate(h)
		Expect(err).To(BeNil())
		Expect(v.Cmp(big.NewRat(3, 4))).To(Equal(0))
	})

	It("parses nested sum/product/safe_reciprocal", func() {
		f, err := lang.ParseFormula("safe_reciprocal(product(2, sum(1/2, 1/2)))")
		Expect(err).To(BeNil())
		v, err := f.Evaluate(history.New())
		Expect(err).To(BeNil())
		Expect(v.Cmp(big.NewRat(1, 2))).To(Equal(0))
	})

	It("rejects a price() day below 1", func() {
		_, err := lang.ParseFormula("price(a, 0)")
		Expect(err).To(MatchError(lang.ErrSyntax))
	})
})
