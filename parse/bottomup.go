package parse

import "github.com/dhamidi/cnf/grammar"

// BottomUp runs the CYK algorithm. The counter is bumped once per
// (nonterminal, rule, split) examined; the first rule that covers a span
// ends the scan of that nonterminal's rules for the current split.
func (p *Parser) BottomUp(input []rune, start grammar.NonterminalID) (Result, error) {
	if err := p.check(start); err != nil {
		return Result{}, err
	}

	res := Result{Algorithm: BottomUp}
	n := len(input)
	if n == 0 {
		return p.done(res, 0), nil
	}

	g := p.grammar
	nts := g.NonterminalCount()
	table := NewTable(nts, n)

	for s, terminal := range input {
		for _, a := range g.TerminalProducers(terminal) {
			table.Set(a, s, s+1, True)
		}
	}

	// spans ascend so every cell of a shorter span is final before it is read
	for span := 2; span <= n; span++ {
		for begin := 0; begin+span <= n; begin++ {
			end := begin + span
			for k := begin + 1; k < end; k++ {
				for a := range nts {
					id := grammar.NonterminalID(a)
					for _, rule := range g.BinaryRules(id) {
						res.Operations++
						if table.Get(rule.Left, begin, k) == True && table.Get(rule.Right, k, end) == True {
							table.Set(id, begin, end, True)
							break
						}
					}
				}
			}
		}
	}

	res.Matched = table.Get(start, 0, n) == True
	return p.done(res, n), nil
}
