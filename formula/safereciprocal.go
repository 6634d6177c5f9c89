// Copyright (c) 2024 Neomantra Corp

package formula

import (
	"fmt"
	"math/big"

	"github.com/NimbleMarkets/logind-go/history"
	"github.com/NimbleMarkets/logind-go/sentence"
)

// safeReciprocal evaluates to 1 / max(1, x). The denominator is always >= 1,
// so the result always lies in (0, 1]: this is what makes it safe to use as
// a scale factor that only ever shrinks a trader, never grows it.
type safeReciprocal struct {
	x Formula
}

// SafeReciprocal constructs 1 / max(1, x).
func SafeReciprocal(x Formula) Formula {
	return safeReciprocal{x: x}
}

func (r safeReciprocal) Evaluate(h *history.History) (*big.Rat, error) {
	v, err := r.x.Evaluate(h)
	if err != nil {
		return nil, err
	}
	denom := maxRat(big.NewRat(1, 1), v)
	return new(big.Rat).Inv(denom), nil
}

func (r safeReciprocal) Bound() *big.Rat {
	// the denominator is always >= 1, so the result is always <= 1.
	return big.NewRat(1, 1)
}

func (r safeReciprocal) Domain() *sentence.Set {
	return r.x.Domain()
}

func (r safeReciprocal) String() string {
	return fmt.Sprintf("safe_reciprocal(%s)", r.x)
}
