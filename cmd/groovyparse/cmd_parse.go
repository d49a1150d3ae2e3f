package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dhamidi/groovy/format"
	"github.com/dhamidi/groovy/groovy/parser"
)

type parseFlags struct {
	format     string
	deep       bool
	positions  bool
	expression bool
}

func (f *parseFlags) register(flags *pflag.FlagSet) {
	flags.StringVarP(&f.format, "format", "f", "sexp", "output format (json, text, sexp)")
	flags.BoolVar(&f.deep, "deep", false, "parse block bodies instead of collapsing them")
	flags.BoolVar(&f.positions, "positions", false, "include token positions in text output")
	flags.BoolVarP(&f.expression, "expression", "e", false, "parse the input as a single expression")
}

func (f *parseFlags) options(filename string) []parser.Option {
	opts := []parser.Option{parser.WithFile(filename)}
	if f.deep {
		opts = append(opts, parser.WithDeepParsing())
	}
	return opts
}

func newParseCmd() *cobra.Command {
	var flags parseFlags

	cmd := &cobra.Command{
		Use:   "parse <file|->",
		Short: "Parse a Groovy file and dump the tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			data, err := readInput(cmd, filename)
			if err != nil {
				return err
			}

			enc, err := format.NewTreeEncoder(flags.format, cmd.OutOrStdout(), flags.positions)
			if err != nil {
				return err
			}

			var p *parser.Parser
			if flags.expression {
				p = parser.ParseExpression(bytes.NewReader(data), flags.options(filename)...)
			} else {
				p = parser.ParseFile(bytes.NewReader(data), flags.options(filename)...)
			}
			root, err := p.Finish()
			if err != nil {
				return fmt.Errorf("parse %s: %w", filename, err)
			}

			diags := p.Diagnostics()
			if err := enc.Encode(root, diags); err != nil {
				return fmt.Errorf("encode %s: %w", flags.format, err)
			}
			if len(diags) > 0 {
				return errSyntax
			}
			return nil
		},
	}

	flags.register(cmd.Flags())

	return cmd
}
