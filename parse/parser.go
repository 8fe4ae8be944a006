// Package parse decides membership of symbol sequences in the language of a
// CNF grammar. Three algorithms are provided over the same grammar: naive
// recursive descent, bottom-up CYK, and memoized top-down descent. Each run
// reports an operation count so that their costs can be compared.
package parse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dhamidi/cnf/grammar"
	"github.com/tliron/commonlog"
)

// logger logs with key 'cnf.parse'.
func logger() commonlog.Logger {
	return commonlog.GetLogger("cnf.parse")
}

// DefaultMaxDepth bounds the input length accepted by the recursive
// algorithms. Their recursion depth never exceeds the input length.
const DefaultMaxDepth = 4096

// ErrInputTooLong is returned when a recursive algorithm is asked to parse
// an input longer than the parser's depth bound.
var ErrInputTooLong = errors.New("input exceeds recursion depth bound")

// Algorithm selects one of the membership algorithms.
type Algorithm int

const (
	Naive Algorithm = iota
	BottomUp
	TopDown
)

var algorithmNames = [...]string{
	Naive:    "naive",
	BottomUp: "bu",
	TopDown:  "td",
}

func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// Algorithms lists every algorithm in a fixed order.
func Algorithms() []Algorithm {
	return []Algorithm{Naive, BottomUp, TopDown}
}

// ParseAlgorithm accepts the short names ("naive", "bu", "td") as well as
// "bottom-up", "cyk", "top-down" and "memo".
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "naive":
		return Naive, nil
	case "bu", "bottom-up", "bottomup", "cyk":
		return BottomUp, nil
	case "td", "top-down", "topdown", "memo":
		return TopDown, nil
	}
	return 0, fmt.Errorf("unknown algorithm %q (expected naive, bu, or td)", name)
}

// Result is the verdict of one algorithm run and the work it counted.
type Result struct {
	Algorithm  Algorithm
	Matched    bool
	Operations uint64
}

type Option func(*Parser)

// WithMaxDepth sets the longest input the recursive algorithms accept.
// Zero removes the bound.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		p.maxDepth = n
	}
}

// Parser runs membership algorithms against one grammar. It holds no
// per-run state and may be used from several goroutines at once.
type Parser struct {
	grammar  *grammar.Grammar
	maxDepth int
}

// New returns a parser bound to g.
func New(g *grammar.Grammar, opts ...Option) *Parser {
	p := &Parser{
		grammar:  g,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Grammar returns the grammar the parser was created with.
func (p *Parser) Grammar() *grammar.Grammar {
	return p.grammar
}

// Run dispatches to the algorithm selected by alg.
func (p *Parser) Run(alg Algorithm, input []rune, start grammar.NonterminalID) (Result, error) {
	switch alg {
	case Naive:
		return p.Naive(input, start)
	case BottomUp:
		return p.BottomUp(input, start)
	case TopDown:
		return p.TopDown(input, start)
	}
	return Result{}, fmt.Errorf("unknown algorithm %s", alg)
}

// Recognize runs every algorithm on input from the grammar's start symbol
// and returns the results in Algorithms order.
func (p *Parser) Recognize(input string) ([]Result, error) {
	symbols := []rune(input)
	var results []Result
	for _, alg := range Algorithms() {
		res, err := p.Run(alg, symbols, p.grammar.Start())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", alg, err)
		}
		results = append(results, res)
	}
	return results, nil
}

func (p *Parser) check(start grammar.NonterminalID) error {
	if _, err := p.grammar.Symbol(start); err != nil {
		return err
	}
	return nil
}

func (p *Parser) checkDepth(input []rune) error {
	if p.maxDepth > 0 && len(input) > p.maxDepth {
		return fmt.Errorf("%w: length %d, bound %d", ErrInputTooLong, len(input), p.maxDepth)
	}
	return nil
}

func (p *Parser) done(res Result, n int) Result {
	logger().Debugf("%s: length=%d matched=%t operations=%d", res.Algorithm, n, res.Matched, res.Operations)
	return res
}
