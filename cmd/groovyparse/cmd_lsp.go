package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/groovy/groovy/lsp"
	"github.com/dhamidi/groovy/groovy/parser"
)

func newLSPCmd() *cobra.Command {
	var deep bool

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []parser.Option
			if deep {
				opts = append(opts, parser.WithDeepParsing())
			}
			return lsp.NewServer(version, opts...).RunStdio()
		},
	}

	cmd.Flags().BoolVar(&deep, "deep", false, "parse block bodies instead of collapsing them")

	return cmd
}
