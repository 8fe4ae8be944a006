package main

import (
	"errors"
	"fmt"

	"github.com/dhamidi/cnf/grammar"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check <grammar>",
		Short: "Validate a CNF grammar file and summarize it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grammar.LoadFile(args[0])
			if err != nil {
				return fmt.Errorf("load grammar: %w", err)
			}

			out := cmd.OutOrStdout()
			start, _ := g.Symbol(g.Start())
			fmt.Fprintf(out, "start %c: %d nonterminals, %d terminals, %d binary rules\n",
				start, g.NonterminalCount(), len(g.Terminals()), g.RuleCount())
			for id := range g.NonterminalCount() {
				nt := grammar.NonterminalID(id)
				sym, _ := g.Symbol(nt)
				fmt.Fprintf(out, "%d\t%c\t%d rules\n", id, sym, len(g.BinaryRules(nt)))
			}

			if err := grammar.VerifyEBNF(g); err != nil {
				printErrors(out, err)
				if strict {
					return errors.New("grammar has unreachable nonterminals")
				}
				return nil
			}
			fmt.Fprintln(out, successColorFG.Sprint("ok"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail when a nonterminal is unreachable from the start symbol")

	return cmd
}
