// Package bench runs membership algorithms over families of growing inputs
// and records verdicts, operation counts and wall-clock time per run.
package bench

import (
	"errors"
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/dhamidi/cnf/grammar"
	"github.com/dhamidi/cnf/parse"
	"github.com/tliron/commonlog"
)

// logger logs with key 'cnf.bench'.
func logger() commonlog.Logger {
	return commonlog.GetLogger("cnf.bench")
}

// ErrDisagreement is wrapped by DisagreementError.
var ErrDisagreement = errors.New("algorithms disagree")

// DisagreementError reports an input on which two algorithms returned
// different verdicts.
type DisagreementError struct {
	Input string
	Rows  []Row
}

func (e *DisagreementError) Error() string {
	var verdicts []string
	for _, r := range e.Rows {
		if !r.Skipped {
			verdicts = append(verdicts, fmt.Sprintf("%s=%t", r.Algorithm, r.Matched))
		}
	}
	return fmt.Sprintf("%s on %q: %s", ErrDisagreement, e.Input, strings.Join(verdicts, " "))
}

func (e *DisagreementError) Unwrap() error {
	return ErrDisagreement
}

// Row is the outcome of one algorithm on one input.
type Row struct {
	Input      string
	Length     int
	Algorithm  parse.Algorithm
	Matched    bool
	Operations uint64
	Duration   time.Duration
	Skipped    bool // the algorithm was not run on this input
}

// Runner runs a fixed set of algorithms on each input.
type Runner struct {
	Parser     *parse.Parser
	Start      grammar.NonterminalID
	Algorithms []parse.Algorithm

	// NaiveMaxLength skips the naive algorithm on longer inputs. Zero
	// means no limit.
	NaiveMaxLength int
}

// NewRunner returns a runner for every algorithm, starting from the
// grammar's start symbol.
func NewRunner(p *parse.Parser) *Runner {
	return &Runner{
		Parser:     p,
		Start:      p.Grammar().Start(),
		Algorithms: parse.Algorithms(),
	}
}

// Run runs every input in order and stops at the first error.
func (r *Runner) Run(inputs iter.Seq[string]) ([]Row, error) {
	var rows []Row
	for input := range inputs {
		rs, err := r.RunOne(input)
		if err != nil {
			return rows, err
		}
		rows = append(rows, rs...)
	}
	return rows, nil
}

// RunOne runs the configured algorithms on a single input and checks that
// their verdicts agree.
func (r *Runner) RunOne(input string) ([]Row, error) {
	symbols := []rune(input)
	rows := make([]Row, 0, len(r.Algorithms))

	for _, alg := range r.Algorithms {
		row := Row{Input: input, Length: len(symbols), Algorithm: alg}
		if alg == parse.Naive && r.NaiveMaxLength > 0 && len(symbols) > r.NaiveMaxLength {
			logger().Warningf("skipping naive on length %d (limit %d)", len(symbols), r.NaiveMaxLength)
			row.Skipped = true
			rows = append(rows, row)
			continue
		}

		started := time.Now()
		res, err := r.Parser.Run(alg, symbols, r.Start)
		row.Duration = time.Since(started)
		if err != nil {
			return nil, fmt.Errorf("%s on length %d: %w", alg, len(symbols), err)
		}
		row.Matched = res.Matched
		row.Operations = res.Operations
		rows = append(rows, row)

		logger().Debugf("%s length=%d matched=%t operations=%d time=%s",
			alg, row.Length, row.Matched, row.Operations, row.Duration)
	}

	if !agree(rows) {
		return rows, &DisagreementError{Input: input, Rows: rows}
	}
	return rows, nil
}

func agree(rows []Row) bool {
	first := -1
	for i, r := range rows {
		if r.Skipped {
			continue
		}
		if first < 0 {
			first = i
			continue
		}
		if r.Matched != rows[first].Matched {
			return false
		}
	}
	return true
}
