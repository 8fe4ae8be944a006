package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

func main() {
	var verbose int

	rootCmd := &cobra.Command{
		Use:           "cnf",
		Short:         "Membership testing for grammars in Chomsky normal form",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbose, nil)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity (repeatable)")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newBenchCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}
