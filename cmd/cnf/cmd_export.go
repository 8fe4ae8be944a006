package main

import (
	"fmt"

	"github.com/dhamidi/cnf/grammar"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "export <grammar>",
		Short: "Print a CNF grammar as EBNF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grammar.LoadFile(args[0])
			if err != nil {
				return fmt.Errorf("load grammar: %w", err)
			}

			if err := grammar.WriteEBNF(cmd.OutOrStdout(), g); err != nil {
				return fmt.Errorf("write ebnf: %w", err)
			}

			if verify {
				if err := grammar.VerifyEBNF(g); err != nil {
					printErrors(cmd.ErrOrStderr(), err)
					return fmt.Errorf("verify ebnf: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "verify the EBNF from the start symbol")

	return cmd
}
