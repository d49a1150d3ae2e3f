package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/groovy/groovy/grammar"
)

func newGrammarCmd() *cobra.Command {
	var productions bool
	var terminals bool

	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print the EBNF grammar of the supported Groovy subset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !productions && !terminals {
				_, err := out.Write(grammar.Source())
				return err
			}
			g, err := grammar.Load()
			if err != nil {
				return fmt.Errorf("load grammar: %w", err)
			}
			var names []string
			if productions {
				names = grammar.Productions(g)
			} else {
				names = grammar.Terminals(g)
			}
			for _, name := range names {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&productions, "productions", false, "list production names")
	cmd.Flags().BoolVar(&terminals, "terminals", false, "list literal tokens of syntactic productions")
	cmd.MarkFlagsMutuallyExclusive("productions", "terminals")

	cmd.AddCommand(newGrammarCheckCmd())

	return cmd
}

func newGrammarCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Parse and verify an EBNF grammar file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			f, err := os.Open(filename)
			if err != nil {
				return fmt.Errorf("open file: %w", err)
			}
			defer f.Close()

			if _, err := grammar.Parse(filename, f, startProduction); err != nil {
				for _, msg := range grammar.Errors(err) {
					fmt.Fprintln(cmd.OutOrStdout(), msg)
				}
				return errSyntax
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start production for verification (if empty, only checks syntax)")

	return cmd
}
