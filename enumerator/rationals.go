// Copyright (c) 2024 Neomantra Corp

package enumerator

import "math/big"

// RationalsBetween enumerates a + (b-a)*p/q for q=1,2,... and 0<=p<=q, so
// every rational in [a,b] eventually appears.
func RationalsBetween(a, b *big.Rat) Gen[*big.Rat] {
	span := new(big.Rat).Sub(b, a)
	denom := int64(1)
	numer := int64(0)
	return func() (*big.Rat, bool) {
		frac := big.NewRat(numer, denom)
		v := new(big.Rat).Mul(span, frac)
		v.Add(v, a)

		numer++
		if numer > denom {
			denom++
			numer = 0
		}
		return v, true
	}
}

// NonnegativeRationals enumerates every nonnegative rational, starting with
// zero, then diagonally sweeping p/q for q>=1. Fractions are not reduced, so
// a value such as 1 appears more than once (as 1/1, 2/2, ...).
func NonnegativeRationals() Gen[*big.Rat] {
	yieldedZero := false
	n := int64(1)
	denom := int64(1)
	return func() (*big.Rat, bool) {
		if !yieldedZero {
			yieldedZero = true
			return big.NewRat(0, 1), true
		}
		for denom >= n {
			n++
			denom = 1
		}
		v := big.NewRat(n-denom, denom)
		denom++
		return v, true
	}
}
