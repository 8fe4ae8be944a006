package grammar

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

const arrow = "->"

// declaration is one validated rule line awaiting symbol resolution.
type declaration struct {
	pos  Position
	text string
	lhs  rune
	rhs  []rune
}

// LoadFile reads a grammar from a file. The path must name an existing
// regular file.
func LoadFile(path string) (*Grammar, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("no grammar file given")
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat grammar: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("grammar %s is not a regular file", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	return Parse(path, f)
}

// Parse reads one rule per line in the form "X -> a" or "X -> YZ". Blank
// lines and lines starting with '#' are ignored. The left-hand side of the
// first rule is the start symbol. Right-hand nonterminals may be defined
// further down, but each must appear on some left-hand side.
func Parse(filename string, r io.Reader) (*Grammar, error) {
	var decls []declaration

	sc := bufio.NewScanner(r)
	for lineNumber := 1; sc.Scan(); lineNumber++ {
		text := sc.Text()
		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		decl, err := parseLine(Position{Filename: filename, Line: lineNumber}, text)
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read grammar: %w", err)
	}
	if len(decls) == 0 {
		return nil, ErrNoRules
	}

	b := NewBuilder()
	for _, d := range decls {
		if _, err := b.Declare(d.lhs); err != nil {
			return nil, d.wrap(err)
		}
	}
	for _, d := range decls {
		var err error
		if len(d.rhs) == 1 {
			err = b.AddTerminalRule(d.lhs, d.rhs[0])
		} else {
			err = b.AddNonterminalRule(d.lhs, d.rhs[0], d.rhs[1])
		}
		if err != nil {
			return nil, d.wrap(err)
		}
	}

	return b.Build()
}

func parseLine(pos Position, text string) (declaration, error) {
	fail := func(col int, reason string) (declaration, error) {
		pos.Column = col
		return declaration{}, &FormatError{Position: pos, Line: text, Reason: reason}
	}

	before, after, found := strings.Cut(text, arrow)
	if !found {
		return fail(1, "expected \"<LHS> -> <RHS>\"")
	}

	lhs := strings.TrimSpace(before)
	lhsCol := columnOf(text, 0, before)
	if utf8.RuneCountInString(lhs) != 1 {
		return fail(lhsCol, "left-hand side must be a single uppercase letter")
	}
	l, _ := utf8.DecodeRuneInString(lhs)
	if !IsNonterminal(l) {
		return fail(lhsCol, "left-hand side must be a single uppercase letter")
	}

	rhs := []rune(strings.TrimSpace(after))
	rhsCol := columnOf(text, len(before)+len(arrow), after)
	switch {
	case len(rhs) == 1 && IsTerminal(rhs[0]):
	case len(rhs) == 2 && IsNonterminal(rhs[0]) && IsNonterminal(rhs[1]):
	default:
		return fail(rhsCol, "right-hand side must be one terminal or two uppercase nonterminals")
	}

	pos.Column = lhsCol
	return declaration{pos: pos, text: text, lhs: l, rhs: rhs}, nil
}

// columnOf returns the 1-based column of the first non-blank character of
// part, which starts at byte offset off within text.
func columnOf(text string, off int, part string) int {
	skipped := len(part) - len(strings.TrimLeft(part, " \t"))
	return utf8.RuneCountInString(text[:off+skipped]) + 1
}

func (d declaration) wrap(err error) error {
	var fe *FormatError
	if errors.As(err, &fe) {
		return &FormatError{Position: d.pos, Line: d.text, Reason: fe.Reason}
	}
	return err
}
