// Copyright (c) 2024 Neomantra Corp

package lang

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode"

	"github.com/NimbleMarkets/logind-go/formula"
)

// Formula grammar:
//
//	formula := rational
//	         | "price(" sentence "," integer ")"
//	         | "sum(" formula ("," formula)* ")"
//	         | "product(" formula ("," formula)* ")"
//	         | "max(" formula ("," formula)* ")"
//	         | "min(" formula ("," formula)* ")"
//	         | "safe_reciprocal(" formula ")"
//	rational := ["-"] digits ["/" digits]
type formulaParser struct {
	input string
	pos   int
}

// ParseFormula parses s per the grammar above and returns its AST.
func ParseFormula(s string) (formula.Formula, error) {
	p := &formulaParser{input: s}
	result, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return nil, fmt.Errorf("%w: unexpected trailing input %q", ErrSyntax, p.input[p.pos:])
	}
	return result, nil
}

func (p *formulaParser) parseFormula() (formula.Formula, error) {
	p.skipSpace()
	switch {
	case p.consumeWord("price"):
		return p.parsePrice()
	case p.consumeWord("sum"):
		return p.parseVariadic(formula.Sum)
	case p.consumeWord("product"):
		return p.parseVariadic(formula.Product)
	case p.consumeWord("max"):
		return p.parseVariadic(formula.Max)
	case p.consumeWord("min"):
		return p.parseVariadic(formula.Min)
	case p.consumeWord("safe_reciprocal"):
		return p.parseUnaryCall(formula.SafeReciprocal)
	default:
		return p.parseRational()
	}
}

func (p *formulaParser) parsePrice() (formula.Formula, error) {
	if !p.consumeToken("(") {
		return nil, fmt.Errorf("%w: expected '(' after price", ErrSyntax)
	}
	sp := &sentenceParser{input: p.input, pos: p.pos}
	s, err := sp.parseIff()
	if err != nil {
		return nil, err
	}
	p.pos = sp.pos

	if !p.consumeToken(",") {
		return nil, fmt.Errorf("%w: expected ',' after price's sentence argument", ErrSyntax)
	}
	day, err := p.parseInt()
	if err != nil {
		return nil, err
	}
	if !p.consumeToken(")") {
		return nil, fmt.Errorf("%w: expected ')' to close price(...)", ErrSyntax)
	}
	if day < 1 {
		return nil, fmt.Errorf("%w: price's day argument must be >= 1, got %d", ErrSyntax, day)
	}
	return formula.Price(s, day), nil
}

func (p *formulaParser) parseVariadic(constructor func(...formula.Formula) formula.Formula) (formula.Formula, error) {
	if !p.consumeToken("(") {
		return nil, fmt.Errorf("%w: expected '(' to open argument list", ErrSyntax)
	}
	var terms []formula.Formula
	for {
		term, err := p.parseFormula()
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
		if p.consumeToken(",") {
			continue
		}
		break
	}
	if !p.consumeToken(")") {
		return nil, fmt.Errorf("%w: expected ')' to close argument list", ErrSyntax)
	}
	return constructor(terms...), nil
}

func (p *formulaParser) parseUnaryCall(constructor func(formula.Formula) formula.Formula) (formula.Formula, error) {
	if !p.consumeToken("(") {
		return nil, fmt.Errorf("%w: expected '('", ErrSyntax)
	}
	inner, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	if !p.consumeToken(")") {
		return nil, fmt.Errorf("%w: expected ')'", ErrSyntax)
	}
	return constructor(inner), nil
}

func (p *formulaParser) parseRational() (formula.Formula, error) {
	p.skipSpace()
	start := p.pos
	if p.pos < len(p.input) && p.input[p.pos] == '-' {
		p.pos++
	}
	for p.pos < len(p.input) && unicode.IsDigit(rune(p.input[p.pos])) {
		p.pos++
	}
	if p.pos < len(p.input) && p.input[p.pos] == '/' {
		p.pos++
		for p.pos < len(p.input) && unicode.IsDigit(rune(p.input[p.pos])) {
			p.pos++
		}
	}
	if p.pos == start {
		return nil, fmt.Errorf("%w: expected a number or a formula keyword at position %d", ErrSyntax, start)
	}
	r, ok := new(big.Rat).SetString(p.input[start:p.pos])
	if !ok {
		return nil, fmt.Errorf("%w: invalid rational literal %q", ErrSyntax, p.input[start:p.pos])
	}
	return formula.Constant(r), nil
}

func (p *formulaParser) parseInt() (int, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.input) && unicode.IsDigit(rune(p.input[p.pos])) {
		p.pos++
	}
	if p.pos == start {
		return 0, fmt.Errorf("%w: expected an integer at position %d", ErrSyntax, start)
	}
	return strconv.Atoi(p.input[start:p.pos])
}

func (p *formulaParser) skipSpace() {
	for p.pos < len(p.input) && unicode.IsSpace(rune(p.input[p.pos])) {
		p.pos++
	}
}

func (p *formulaParser) consumeToken(tok string) bool {
	p.skipSpace()
	if strings.HasPrefix(p.input[p.pos:], tok) {
		p.pos += len(tok)
		return true
	}
	return false
}

// consumeWord consumes word only if it is followed by '(' (after optional
// whitespace), so it never mistakes an atom like "summer" for the "sum"
// keyword.
func (p *formulaParser) consumeWord(word string) bool {
	p.skipSpace()
	if !strings.HasPrefix(p.input[p.pos:], word) {
		return false
	}
	rest := p.input[p.pos+len(word):]
	trimmed := strings.TrimLeft(rest, " \t\n")
	if !strings.HasPrefix(trimmed, "(") {
		return false
	}
	p.pos += len(word)
	return true
}
