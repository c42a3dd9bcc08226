package main

import (
	"os"

	"github.com/spf13/cobra"

	"lox/internal"
)

// tokensEnv holds the flags of the tokens command.
type tokensEnv struct {
	flagDump bool
}

// getTokensCmd returns the command that lists the tokens of a script.
func (r *rootEnv) getTokensCmd() *cobra.Command {
	env := &tokensEnv{}
	ret := &cobra.Command{
		Use:   "tokens <script>",
		Short: "List the tokens of a script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(args[0])
			if err != nil {
				r.exitCode = exitNoInput
				return err
			}
			state := internal.DumpTokens(os.Stdout, source, env.flagDump)
			if state.PrintErrors(r.printer, os.Stderr) {
				r.exitCode = exitDataErr
			}
			return nil
		},
	}
	ret.Flags().BoolVarP(&env.flagDump, "dump", "d", false, "Dump every field of every token")
	return ret
}
