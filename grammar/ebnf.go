package grammar

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/ebnf"
)

// WriteEBNF renders g as EBNF productions, one per nonterminal, starting
// with the start symbol:
//
//	S = A B | S S | "a" .
func WriteEBNF(w io.Writer, g *Grammar) error {
	terminals := make([][]rune, g.NonterminalCount())
	for _, t := range g.Terminals() {
		for _, id := range g.producers[t] {
			terminals[id] = append(terminals[id], t)
		}
	}

	order := make([]NonterminalID, 0, g.NonterminalCount())
	order = append(order, g.start)
	for id := range g.NonterminalCount() {
		if NonterminalID(id) != g.start {
			order = append(order, NonterminalID(id))
		}
	}

	for _, id := range order {
		var alts []string
		for _, p := range g.rules[id] {
			alts = append(alts, string(g.symbols[p.Left])+" "+string(g.symbols[p.Right]))
		}
		for _, t := range terminals[id] {
			alts = append(alts, strconv.Quote(string(t)))
		}
		if _, err := fmt.Fprintf(w, "%c = %s .\n", g.symbols[id], strings.Join(alts, " | ")); err != nil {
			return err
		}
	}
	return nil
}

// VerifyEBNF checks the EBNF rendering of g with golang.org/x/exp/ebnf,
// starting from the start symbol. Nonterminals that no derivation from the
// start symbol can reach are reported as errors.
func VerifyEBNF(g *Grammar) error {
	var buf bytes.Buffer
	if err := WriteEBNF(&buf, g); err != nil {
		return err
	}

	eg, err := ebnf.Parse("grammar.ebnf", &buf)
	if err != nil {
		return fmt.Errorf("parse ebnf: %w", err)
	}
	return ebnf.Verify(eg, string(g.symbols[g.start]))
}
