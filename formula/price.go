// Copyright (c) 2024 Neomantra Corp

package formula

import (
	"fmt"
	"math/big"

	"github.com/NimbleMarkets/logind-go/history"
	"github.com/NimbleMarkets/logind-go/sentence"
)

// price looks up the credence for a sentence on a given update.
type price struct {
	sentence sentence.Sentence
	day      int
}

// Price constructs a trading formula that looks up sentence's credence on
// the given 1-based update day.
func Price(s sentence.Sentence, day int) Formula {
	if day < 1 {
		panic("formula.Price: day must be >= 1")
	}
	return price{sentence: s, day: day}
}

func (p price) Evaluate(h *history.History) (*big.Rat, error) {
	return h.Lookup(p.sentence, p.day)
}

func (p price) Bound() *big.Rat {
	return big.NewRat(1, 1)
}

func (p price) Domain() *sentence.Set {
	return sentence.NewSet(p.sentence)
}

func (p price) String() string {
	return fmt.Sprintf("price(%s, %d)", p.sentence, p.day)
}
