// Copyright (c) 2024 Neomantra Corp

package formula

import (
	"math/big"
	"strings"

	"github.com/NimbleMarkets/logind-go/history"
	"github.com/NimbleMarkets/logind-go/sentence"
)

///////////////////////////////////////////////////////////////////////////

// sum evaluates to the sum of its terms.
type sum struct {
	terms []Formula
}

// Sum constructs a trading formula that sums its terms.
func Sum(terms ...Formula) Formula {
	return sum{terms: append([]Formula(nil), terms...)}
}

func (s sum) Evaluate(h *history.History) (*big.Rat, error) {
	total := new(big.Rat)
	for _, term := range s.terms {
		v, err := term.Evaluate(h)
		if err != nil {
			return nil, err
		}
		total.Add(total, v)
	}
	return total, nil
}

func (s sum) Bound() *big.Rat {
	total := new(big.Rat)
	for _, term := range s.terms {
		total.Add(total, term.Bound())
	}
	return total
}

func (s sum) Domain() *sentence.Set { return domainUnion(s.terms) }
func (s sum) String() string        { return joinFormulas(s.terms, " + ") }

///////////////////////////////////////////////////////////////////////////

// product evaluates to the product of its terms.
type product struct {
	terms []Formula
}

// Product constructs a trading formula that multiplies its terms.
func Product(terms ...Formula) Formula {
	return product{terms: append([]Formula(nil), terms...)}
}

func (p product) Evaluate(h *history.History) (*big.Rat, error) {
	total := big.NewRat(1, 1)
	for _, term := range p.terms {
		v, err := term.Evaluate(h)
		if err != nil {
			return nil, err
		}
		total.Mul(total, v)
	}
	return total, nil
}

func (p product) Bound() *big.Rat {
	// bounds are always >= 0, so multiplying them is safe.
	total := big.NewRat(1, 1)
	for _, term := range p.terms {
		total.Mul(total, term.Bound())
	}
	return total
}

func (p product) Domain() *sentence.Set { return domainUnion(p.terms) }
func (p product) String() string        { return joinFormulas(p.terms, " * ") }

///////////////////////////////////////////////////////////////////////////

// max evaluates to the maximum of its terms.
type maxFormula struct {
	terms []Formula
}

// Max constructs a trading formula that evaluates to the max of its terms.
func Max(terms ...Formula) Formula {
	return maxFormula{terms: append([]Formula(nil), terms...)}
}

func (m maxFormula) Evaluate(h *history.History) (*big.Rat, error) {
	var best *big.Rat
	for _, term := range m.terms {
		v, err := term.Evaluate(h)
		if err != nil {
			return nil, err
		}
		if best == nil || v.Cmp(best) > 0 {
			best = v
		}
	}
	return best, nil
}

func (m maxFormula) Bound() *big.Rat {
	var best *big.Rat
	for _, term := range m.terms {
		b := term.Bound()
		if best == nil || b.Cmp(best) > 0 {
			best = b
		}
	}
	return best
}

func (m maxFormula) Domain() *sentence.Set { return domainUnion(m.terms) }
func (m maxFormula) String() string {
	return "max(" + strings.Join(stringify(m.terms), ", ") + ")"
}

///////////////////////////////////////////////////////////////////////////

// min evaluates to the minimum of its terms.
type minFormula struct {
	terms []Formula
}

// Min constructs a trading formula that evaluates to the min of its terms.
func Min(terms ...Formula) Formula {
	return minFormula{terms: append([]Formula(nil), terms...)}
}

func (m minFormula) Evaluate(h *history.History) (*big.Rat, error) {
	var best *big.Rat
	for _, term := range m.terms {
		v, err := term.Evaluate(h)
		if err != nil {
			return nil, err
		}
		if best == nil || v.Cmp(best) < 0 {
			best = v
		}
	}
	return best, nil
}

func (m minFormula) Bound() *big.Rat {
	var best *big.Rat
	for _, term := range m.terms {
		b := term.Bound()
		if best == nil || b.Cmp(best) < 0 {
			best = b
		}
	}
	return best
}

func (m minFormula) Domain() *sentence.Set { return domainUnion(m.terms) }
func (m minFormula) String() string {
	return "min(" + strings.Join(stringify(m.terms), ", ") + ")"
}

///////////////////////////////////////////////////////////////////////////

func stringify(terms []Formula) []string {
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = t.String()
	}
	return out
}

func joinFormulas(terms []Formula, sep string) string {
	if len(terms) == 1 {
		return terms[0].String()
	}
	parts := make([]string, len(terms))
	for i, t := range terms {
		switch t.(type) {
		case sum, product:
			parts[i] = "(" + t.String() + ")"
		default:
			parts[i] = t.String()
		}
	}
	return strings.Join(parts, sep)
}
