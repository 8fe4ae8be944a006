package parse

import "github.com/dhamidi/cnf/grammar"

// descent is the state of one recursive run. A nil memo gives the naive
// algorithm; a non-nil memo gives the top-down one.
type descent struct {
	grammar *grammar.Grammar
	input   []rune
	memo    *Table
	ops     uint64
}

// derive reports whether a derives input[i:j]. The counter is bumped once
// per base case and once per (rule, split) pair examined. Memo hits are
// free.
func (d *descent) derive(a grammar.NonterminalID, i, j int) bool {
	if d.memo != nil {
		if c := d.memo.Get(a, i, j); c != Unknown {
			return c == True
		}
	}

	matched := false
	if j-i == 1 {
		d.ops++
		matched = d.grammar.Produces(a, d.input[i])
	} else {
	rules:
		for _, rule := range d.grammar.BinaryRules(a) {
			for k := i + 1; k < j; k++ {
				d.ops++
				if d.derive(rule.Left, i, k) && d.derive(rule.Right, k, j) {
					matched = true
					break rules
				}
			}
		}
	}

	if d.memo != nil {
		d.memo.Set(a, i, j, cellOf(matched))
	}
	return matched
}

// Naive runs exponential recursive descent without reusing any subresult.
func (p *Parser) Naive(input []rune, start grammar.NonterminalID) (Result, error) {
	if err := p.check(start); err != nil {
		return Result{}, err
	}
	if err := p.checkDepth(input); err != nil {
		return Result{}, err
	}

	res := Result{Algorithm: Naive}
	if len(input) == 0 {
		return p.done(res, 0), nil
	}

	d := &descent{grammar: p.grammar, input: input}
	res.Matched = d.derive(start, 0, len(input))
	res.Operations = d.ops
	return p.done(res, len(input)), nil
}
