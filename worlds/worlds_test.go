// Copyright (c) 2024 Neomantra Corp

package worlds_test

import (
	"testing"

	"github.com/NimbleMarkets/logind-go/enumerator"
	"github.com/NimbleMarkets/logind-go/sentence"
	"github.com/NimbleMarkets/logind-go/worlds"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestWorlds(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "worlds suite")
}

func drainAll(g enumerator.Gen[worlds.World]) []worlds.World {
	var out []worlds.World
	for {
		w, ok := g()
		if !ok {
			return out
		}
		out = append(out, w)
	}
}

var _ = Describe("ConsistentWith", func() {
	p := sentence.Atom("p")
	q := sentence.Atom("q")

	It("yields exactly the worlds where every observation is true", func() {
		observations := []sentence.Sentence{sentence.Or(p, q)}
		domain := []sentence.Sentence{p, q}

		all := drainAll(worlds.ConsistentWith(observations, domain))

		Expect(all).To(HaveLen(3)) // every assignment except p=false,q=false

		for _, w := range all {
			pv, _ := w.Get(p)
			qv, _ := w.Get(q)
			Expect(pv || qv).To(BeTrue())
		}
	})

	It("yields all 2^n worlds when there are no observations", func() {
		domain := []sentence.Sentence{p, q}
		all := drainAll(worlds.ConsistentWith(nil, domain))
		Expect(all).To(HaveLen(4))
	})

	It("yields one empty-ish world when there are no atoms", func() {
		all := drainAll(worlds.ConsistentWith(nil, nil))
		Expect(all).To(HaveLen(1))
	})

	It("induces the sentence's own truth value for a domain sentence matching an observation", func() {
		observations := []sentence.Sentence{p}
		domain := []sentence.Sentence{p}
		all := drainAll(worlds.ConsistentWith(observations, domain))
		Expect(all).To(HaveLen(1))
		v, ok := all[0].Get(p)
		Expect(ok).To(BeTrue())
		Expect(v).To(BeTrue())
	})
})
