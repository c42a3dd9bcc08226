package main

import (
	"os"

	"github.com/spf13/cobra"

	"lox/internal"
)

// getAstCmd returns the command that prints the syntax tree of a script.
func (r *rootEnv) getAstCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ast <script>",
		Short: "Print the parenthesized syntax tree of a script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(args[0])
			if err != nil {
				r.exitCode = exitNoInput
				return err
			}
			state := internal.PrintTree(os.Stdout, source)
			if state.PrintErrors(r.printer, os.Stderr) {
				r.exitCode = exitDataErr
			}
			return nil
		},
	}
}
