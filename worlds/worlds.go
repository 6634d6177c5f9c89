// Copyright (c) 2024 Neomantra Corp

// Package worlds enumerates truth assignments ("worlds") consistent with a
// set of observed sentences, over a given domain of sentences of interest.
package worlds

import (
	"github.com/NimbleMarkets/logind-go/enumerator"
	"github.com/NimbleMarkets/logind-go/sentence"
)

// World is a truth assignment to a set of sentences, built by evaluating
// each sentence in a domain against one assignment of base facts.
type World = *sentence.Map[bool]

// ConsistentWith returns a lazy sequence of every World over domain that is
// consistent with observations: for each assignment of truth values to the
// atoms appearing in observations or domain, it keeps the assignment iff
// every observation evaluates true under it, then emits the induced
// truth value for every sentence in domain.
//
// The underlying 2^|atoms| assignments are visited in a fixed, deterministic
// order (atoms sorted ascending, enumerated as a binary counter with the
// first atom the most significant bit and true preceding false), so the
// indexing of worlds is reproducible across runs.
func ConsistentWith(observations, domain []sentence.Sentence) enumerator.Gen[World] {
	atomSets := make([]sentence.AtomSet, 0, len(observations)+len(domain))
	for _, s := range observations {
		atomSets = append(atomSets, s.Atoms())
	}
	for _, s := range domain {
		atomSets = append(atomSets, s.Atoms())
	}
	atoms := sentence.Union(atomSets...).Sorted()
	n := len(atoms)

	var total uint64 = 1 << uint(n)
	var mask uint64 = 0

	return func() (World, bool) {
		for mask < total {
			facts := make(sentence.BaseFacts, n)
			for j, label := range atoms {
				bit := (mask >> uint(n-1-j)) & 1
				facts[label] = bit == 0
			}
			mask++

			consistent := true
			for _, obs := range observations {
				v, err := obs.Evaluate(facts)
				if err != nil || !v {
					consistent = false
					break
				}
			}
			if !consistent {
				continue
			}

			world := sentence.NewMap[bool]()
			for _, s := range domain {
				v, err := s.Evaluate(facts)
				if err != nil {
					consistent = false
					break
				}
				world.Set(s, v)
			}
			if !consistent {
				continue
			}
			return world, true
		}
		return nil, false
	}
}
