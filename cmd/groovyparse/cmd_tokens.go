package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/groovy/format"
	"github.com/dhamidi/groovy/groovy/lexer"
)

func newTokensCmd() *cobra.Command {
	var trivia bool

	cmd := &cobra.Command{
		Use:   "tokens <file|->",
		Short: "Print the token stream of a Groovy file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			enc := format.NewLineEncoder(cmd.OutOrStdout(), trivia)
			if err := enc.Encode(lexer.Tokenize(data, args[0])); err != nil {
				return fmt.Errorf("encode tokens: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&trivia, "trivia", false, "include whitespace, newlines and comments")

	return cmd
}
