// Copyright (c) 2024 Neomantra Corp

package formula

import (
	"math/big"

	"github.com/NimbleMarkets/logind-go/history"
	"github.com/NimbleMarkets/logind-go/sentence"
)

// constant is a trading formula whose value never depends on the history.
type constant struct {
	k *big.Rat
}

// Constant constructs a trading formula that always evaluates to k.
func Constant(k *big.Rat) Formula {
	return constant{k: new(big.Rat).Set(k)}
}

// ConstantInt constructs a Constant trading formula from an integer.
func ConstantInt(k int64) Formula {
	return Constant(big.NewRat(k, 1))
}

func (c constant) Evaluate(h *history.History) (*big.Rat, error) {
	return new(big.Rat).Set(c.k), nil
}

func (c constant) Bound() *big.Rat {
	return absRat(c.k)
}

func (c constant) Domain() *sentence.Set {
	return sentence.NewSet()
}

func (c constant) String() string {
	return c.k.RatString()
}
