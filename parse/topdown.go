package parse

import "github.com/dhamidi/cnf/grammar"

// TopDown runs recursive descent backed by a memo table, so each
// (nonterminal, span) is computed at most once.
func (p *Parser) TopDown(input []rune, start grammar.NonterminalID) (Result, error) {
	if err := p.check(start); err != nil {
		return Result{}, err
	}
	if err := p.checkDepth(input); err != nil {
		return Result{}, err
	}

	res := Result{Algorithm: TopDown}
	n := len(input)
	if n == 0 {
		return p.done(res, 0), nil
	}

	d := &descent{
		grammar: p.grammar,
		input:   input,
		memo:    NewTable(p.grammar.NonterminalCount(), n),
	}
	res.Matched = d.derive(start, 0, n)
	res.Operations = d.ops
	return p.done(res, n), nil
}
