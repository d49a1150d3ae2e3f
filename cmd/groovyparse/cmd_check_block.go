package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/groovy/format"
	"github.com/dhamidi/groovy/groovy/parser"
)

func newCheckBlockCmd() *cobra.Command {
	var expand bool
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "check-block <file|->",
		Short: "Check whether a brace block can be reparsed on its own",
		Long: "Reports whether the input is a balanced brace block that a lazy\n" +
			"block leaf could be expanded from. With --expand the block is parsed\n" +
			"and its tree printed.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if !expand {
				if !parser.IsBlockParseable(data) {
					fmt.Fprintln(out, "not parseable")
					return errSyntax
				}
				fmt.Fprintln(out, "parseable")
				return nil
			}

			enc, err := format.NewTreeEncoder(outputFormat, out, false)
			if err != nil {
				return err
			}
			root, err := parser.ExpandLazyBlock(data, parser.WithFile(args[0]))
			if err != nil {
				return fmt.Errorf("expand %s: %w", args[0], err)
			}
			diags := parser.CollectDiagnostics(root)
			if err := enc.Encode(root, diags); err != nil {
				return fmt.Errorf("encode %s: %w", outputFormat, err)
			}
			if len(diags) > 0 {
				return errSyntax
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&expand, "expand", false, "parse the block and print its tree")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "sexp", "output format for --expand (json, text, sexp)")

	return cmd
}
