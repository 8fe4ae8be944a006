package lsp

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dhamidi/cnf/grammar"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const diagnosticSource = "cnf"

// Diagnose parses a grammar document and returns the problems found in it:
// the first malformed line as an error, or one warning per nonterminal that
// cannot be reached from the start symbol.
func Diagnose(path, text string) []protocol.Diagnostic {
	diags := []protocol.Diagnostic{}
	lines := strings.Split(text, "\n")

	g, err := grammar.Parse(path, strings.NewReader(text))
	var fe *grammar.FormatError
	switch {
	case errors.As(err, &fe):
		line := fe.Position.Line - 1
		return append(diags, diagnostic(protocol.DiagnosticSeverityError, fe.Reason,
			line, max(fe.Position.Column-1, 0), lineLength(lines, line)))
	case errors.Is(err, grammar.ErrNoRules):
		return append(diags, diagnostic(protocol.DiagnosticSeverityWarning, "grammar has no rules", 0, 0, 0))
	case err != nil:
		return append(diags, diagnostic(protocol.DiagnosticSeverityError, err.Error(), 0, 0, 0))
	}

	for id, reachable := range g.Reachable() {
		if reachable {
			continue
		}
		sym, _ := g.Symbol(grammar.NonterminalID(id))
		line := definitionLine(lines, sym)
		msg := fmt.Sprintf("nonterminal %c is unreachable from the start symbol", sym)
		diags = append(diags, diagnostic(protocol.DiagnosticSeverityWarning, msg, line, 0, lineLength(lines, line)))
	}
	return diags
}

func diagnostic(severity protocol.DiagnosticSeverity, msg string, line, start, end int) protocol.Diagnostic {
	source := diagnosticSource
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(start)},
			End:   protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(max(start, end))},
		},
		Severity: &severity,
		Source:   &source,
		Message:  msg,
	}
}

// definitionLine returns the 0-based line of sym's first rule.
func definitionLine(lines []string, sym rune) int {
	for i, l := range lines {
		lhs, _, found := strings.Cut(l, "->")
		if found && strings.TrimSpace(lhs) == string(sym) {
			return i
		}
	}
	return 0
}

func lineLength(lines []string, i int) int {
	if i < 0 || i >= len(lines) {
		return 0
	}
	return utf8.RuneCountInString(strings.TrimRight(lines[i], "\r"))
}
