package grammar

import (
	"errors"
	"fmt"
)

// ErrNoRules is returned when a grammar source declares no rules at all.
var ErrNoRules = errors.New("grammar has no rules")

// Position represents a location in a grammar source.
type Position struct {
	Filename string
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// FormatError reports a rule declaration that is not in Chomsky normal form
// or that refers to a nonterminal nobody defines.
type FormatError struct {
	Position Position
	Line     string // offending source line, empty for builder calls
	Reason   string
}

func (e *FormatError) Error() string {
	if e.Position.Line == 0 {
		return "grammar format: " + e.Reason
	}
	if e.Line == "" {
		return fmt.Sprintf("%s: %s", e.Position, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %q", e.Position, e.Reason, e.Line)
}

// UnknownSymbolError reports a lookup of a nonterminal symbol or id that was
// never declared. Symbol is zero when the lookup was by id.
type UnknownSymbolError struct {
	Symbol rune
	ID     NonterminalID
}

func (e *UnknownSymbolError) Error() string {
	if e.Symbol != 0 {
		return fmt.Sprintf("unknown nonterminal %q", e.Symbol)
	}
	return fmt.Sprintf("unknown nonterminal id %d", e.ID)
}
