package main

import (
	"github.com/spf13/cobra"

	"ry/internal/diagfmt"
)

func (a *app) newGraphvizCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graphviz <file.ry>",
		Short: "Print the AST of a ry source file as a Graphviz digraph",
		Long:  "Graphviz parses a file and prints its AST in DOT; pipe it to `dot -Tsvg`.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.parseFile(cmd.Context(), args[0], diagfmt.ASTFormatDot)
		},
	}
}
