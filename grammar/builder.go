package grammar

import (
	"fmt"
	"slices"
	"unicode"

	"github.com/tliron/commonlog"
)

// logger logs with key 'cnf.grammar'.
func logger() commonlog.Logger {
	return commonlog.GetLogger("cnf.grammar")
}

// Builder accumulates validated rules and hands out an immutable Grammar
// once every rule has been accepted. The first rejected call poisons the
// builder: Build reports that error instead of a partial grammar.
type Builder struct {
	symbols   []rune
	ids       map[rune]NonterminalID
	producers map[rune][]NonterminalID
	rules     [][]Pair
	start     NonterminalID
	count     int
	err       error
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		ids:       make(map[rune]NonterminalID),
		producers: make(map[rune][]NonterminalID),
	}
}

// Declare registers sym as a nonterminal and returns its id. Ids are handed
// out in order of first declaration; declaring a symbol twice returns the
// existing id. The first declared symbol is the start symbol unless SetStart
// says otherwise.
func (b *Builder) Declare(sym rune) (NonterminalID, error) {
	if id, ok := b.ids[sym]; ok {
		return id, nil
	}
	if !IsNonterminal(sym) {
		return 0, b.fail(fmt.Sprintf("invalid nonterminal %q: want a single uppercase letter", sym))
	}
	id := NonterminalID(len(b.symbols))
	b.symbols = append(b.symbols, sym)
	b.rules = append(b.rules, nil)
	b.ids[sym] = id
	return id, nil
}

// SetStart selects a declared nonterminal as the start symbol.
func (b *Builder) SetStart(sym rune) error {
	id, ok := b.ids[sym]
	if !ok {
		return b.fail(fmt.Sprintf("start symbol %q is not declared", sym))
	}
	b.start = id
	return nil
}

// AddTerminalRule records nonterminal -> terminal.
func (b *Builder) AddTerminalRule(nonterminal, terminal rune) error {
	id, ok := b.ids[nonterminal]
	if !ok {
		return b.fail(fmt.Sprintf("undeclared nonterminal %q", nonterminal))
	}
	if !IsTerminal(terminal) {
		return b.fail(fmt.Sprintf("invalid terminal %q", terminal))
	}
	ps := b.producers[terminal]
	if i, found := slices.BinarySearch(ps, id); !found {
		b.producers[terminal] = slices.Insert(ps, i, id)
	}
	b.count++
	return nil
}

// AddNonterminalRule appends nonterminal -> rhs1 rhs2 to the nonterminal's
// rule list. Declaration order is preserved.
func (b *Builder) AddNonterminalRule(nonterminal, rhs1, rhs2 rune) error {
	lhs, ok := b.ids[nonterminal]
	if !ok {
		return b.fail(fmt.Sprintf("undeclared nonterminal %q", nonterminal))
	}
	left, ok := b.ids[rhs1]
	if !ok {
		return b.fail(fmt.Sprintf("unknown nonterminal %q on right-hand side", rhs1))
	}
	right, ok := b.ids[rhs2]
	if !ok {
		return b.fail(fmt.Sprintf("unknown nonterminal %q on right-hand side", rhs2))
	}
	b.rules[lhs] = append(b.rules[lhs], Pair{Left: left, Right: right})
	b.count++
	return nil
}

// Build returns the finished grammar, or the first error any earlier call
// reported. The grammar does not share memory with the builder.
func (b *Builder) Build() (*Grammar, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.count == 0 {
		return nil, ErrNoRules
	}

	g := &Grammar{
		symbols:   slices.Clone(b.symbols),
		ids:       make(map[rune]NonterminalID, len(b.ids)),
		producers: make(map[rune][]NonterminalID, len(b.producers)),
		rules:     make([][]Pair, len(b.rules)),
		start:     b.start,
	}
	for sym, id := range b.ids {
		g.ids[sym] = id
	}
	for t, ps := range b.producers {
		g.producers[t] = slices.Clone(ps)
	}
	for id, rs := range b.rules {
		g.rules[id] = slices.Clone(rs)
	}

	logger().Debugf("built grammar: %d nonterminals, %d terminals, %d binary rules",
		g.NonterminalCount(), len(g.producers), g.RuleCount())
	return g, nil
}

func (b *Builder) fail(reason string) error {
	err := &FormatError{Reason: reason}
	if b.err == nil {
		b.err = err
	}
	return err
}

// IsNonterminal reports whether r can name a nonterminal.
func IsNonterminal(r rune) bool {
	return unicode.IsUpper(r)
}

// IsTerminal reports whether r can appear as a terminal.
func IsTerminal(r rune) bool {
	return r != 0 && r != unicode.ReplacementChar && !unicode.IsUpper(r)
}
