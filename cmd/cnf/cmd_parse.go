package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/cnf/bench"
	"github.com/dhamidi/cnf/format"
	"github.com/dhamidi/cnf/grammar"
	"github.com/dhamidi/cnf/parse"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var input string
	var start string
	var algorithms []string
	var outputFormat string
	var maxDepth int

	cmd := &cobra.Command{
		Use:   "parse <grammar>",
		Short: "Decide whether a string belongs to the language of a CNF grammar",
		Long: `Decide whether a string belongs to the language of a CNF grammar.

The string is taken from --input, or else read as one line from standard
input. A blank string is ignored. Every selected algorithm runs on the same
string and the command fails if their verdicts differ.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grammar.LoadFile(args[0])
			if err != nil {
				return fmt.Errorf("load grammar: %w", err)
			}

			if !cmd.Flags().Changed("input") {
				input, err = readLine(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read input: %w", err)
				}
			}
			input = strings.TrimSpace(input)
			if input == "" {
				return nil
			}

			runner := bench.NewRunner(parse.New(g, parse.WithMaxDepth(maxDepth)))
			if start != "" {
				if runner.Start, err = startID(g, start); err != nil {
					return err
				}
			}
			if runner.Algorithms, err = parseAlgorithms(algorithms); err != nil {
				return err
			}

			enc, err := format.NewEncoder(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			rows, runErr := runner.RunOne(input)
			var disagreement *bench.DisagreementError
			if runErr != nil && !errors.As(runErr, &disagreement) {
				return runErr
			}
			if err := enc.Encode(rows); err != nil {
				return fmt.Errorf("encode %s: %w", outputFormat, err)
			}
			return runErr
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "string to parse (read from stdin if not given)")
	cmd.Flags().StringVarP(&start, "start", "s", "", "start nonterminal (default: left-hand side of the first rule)")
	cmd.Flags().StringSliceVarP(&algorithms, "algorithms", "a", []string{"naive", "bu", "td"}, "algorithms to run (naive, bu, td)")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, line, json, table)")
	cmd.Flags().IntVar(&maxDepth, "max-depth", parse.DefaultMaxDepth, "longest input the recursive algorithms accept (0 for no limit)")

	return cmd
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func startID(g *grammar.Grammar, name string) (grammar.NonterminalID, error) {
	runes := []rune(name)
	if len(runes) != 1 {
		return 0, fmt.Errorf("start symbol %q must be a single nonterminal", name)
	}
	return g.ID(runes[0])
}

func parseAlgorithms(names []string) ([]parse.Algorithm, error) {
	if len(names) == 0 {
		return parse.Algorithms(), nil
	}
	algs := make([]parse.Algorithm, 0, len(names))
	for _, name := range names {
		alg, err := parse.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		algs = append(algs, alg)
	}
	return algs, nil
}
