package main

import (
	"fmt"

	"github.com/dhamidi/cnf/bench"
	"github.com/dhamidi/cnf/format"
	"github.com/spf13/cobra"
)

func newBenchCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "bench <experiment.toml>",
		Short: "Run the algorithms over a growing family of inputs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exp, err := bench.LoadExperiment(args[0])
			if err != nil {
				return err
			}

			runner, err := exp.Runner()
			if err != nil {
				return err
			}

			enc, err := format.NewEncoder(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			rows, runErr := runner.Run(exp.Inputs())
			if len(rows) > 0 {
				if err := enc.Encode(rows); err != nil {
					return fmt.Errorf("encode %s: %w", outputFormat, err)
				}
			}
			return runErr
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "table", "output format (text, line, json, table)")

	return cmd
}
