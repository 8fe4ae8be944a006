// Package grammar holds context-free grammars in Chomsky normal form, laid
// out for fast rule lookup during parsing: terminal rules are indexed by
// terminal symbol and binary rules by dense nonterminal id.
package grammar

import (
	"slices"
)

// NonterminalID is a dense index in [0, NonterminalCount()).
type NonterminalID int

// Pair is the right-hand side of a binary rule A -> Left Right.
type Pair struct {
	Left  NonterminalID
	Right NonterminalID
}

// Grammar is an immutable CNF grammar. The zero value is not usable; build
// one with a Builder or load one with Parse.
type Grammar struct {
	symbols   []rune
	ids       map[rune]NonterminalID
	producers map[rune][]NonterminalID // ascending, no duplicates
	rules     [][]Pair
	start     NonterminalID
}

// NonterminalCount returns the number of distinct nonterminals.
func (g *Grammar) NonterminalCount() int {
	return len(g.symbols)
}

// ID returns the id assigned to a nonterminal symbol.
func (g *Grammar) ID(sym rune) (NonterminalID, error) {
	id, ok := g.ids[sym]
	if !ok {
		return 0, &UnknownSymbolError{Symbol: sym}
	}
	return id, nil
}

// Symbol returns the nonterminal symbol for an id.
func (g *Grammar) Symbol(id NonterminalID) (rune, error) {
	if !g.valid(id) {
		return 0, &UnknownSymbolError{ID: id}
	}
	return g.symbols[id], nil
}

// Start returns the start symbol's id.
func (g *Grammar) Start() NonterminalID {
	return g.start
}

// TerminalProducers returns the nonterminals with a rule A -> terminal, in
// ascending id order. The result is empty for terminals nothing produces.
func (g *Grammar) TerminalProducers(terminal rune) []NonterminalID {
	return slices.Clone(g.producers[terminal])
}

// Produces reports whether id has the terminal rule id -> terminal.
func (g *Grammar) Produces(id NonterminalID, terminal rune) bool {
	_, found := slices.BinarySearch(g.producers[terminal], id)
	return found
}

// BinaryRules returns the right-hand sides of id's binary rules in
// declaration order. The slice is shared and must not be modified.
func (g *Grammar) BinaryRules(id NonterminalID) []Pair {
	if !g.valid(id) {
		return nil
	}
	return g.rules[id]
}

// RuleCount returns the total number of binary rules.
func (g *Grammar) RuleCount() int {
	n := 0
	for _, rs := range g.rules {
		n += len(rs)
	}
	return n
}

// Terminals returns every terminal that some nonterminal produces, sorted.
func (g *Grammar) Terminals() []rune {
	ts := make([]rune, 0, len(g.producers))
	for t := range g.producers {
		ts = append(ts, t)
	}
	slices.Sort(ts)
	return ts
}

// Reachable returns, indexed by id, whether each nonterminal can appear in a
// derivation from the start symbol.
func (g *Grammar) Reachable() []bool {
	seen := make([]bool, len(g.symbols))
	if len(seen) == 0 {
		return seen
	}
	stack := []NonterminalID{g.start}
	seen[g.start] = true
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range g.rules[id] {
			for _, next := range [2]NonterminalID{p.Left, p.Right} {
				if !seen[next] {
					seen[next] = true
					stack = append(stack, next)
				}
			}
		}
	}
	return seen
}

func (g *Grammar) valid(id NonterminalID) bool {
	return id >= 0 && int(id) < len(g.symbols)
}
