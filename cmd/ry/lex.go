package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"ry/internal/diag"
	"ry/internal/diagfmt"
	"ry/internal/driver"
	"ry/internal/source"
	"ry/internal/trace"
)

func (a *app) newLexCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "lex [flags] <file.ry>",
		Short: "Print the token stream of a ry source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runLex(cmd.Context(), args[0], format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "pretty", "output format (pretty|json)")
	return cmd
}

func (a *app) runLex(ctx context.Context, path, format string) error {
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	result, err := driver.Tokenize(ctx, path, a.settings.maxDiagnostics)
	if err != nil {
		return a.readFailure(ctx, err)
	}

	// лексические ошибки видны и в потоке токенов, поэтому команда не падает
	a.printDiagnostics(result.Bag, result.FileSet)
	if format == "json" {
		return diagfmt.FormatTokensJSON(a.stdout, result.Tokens)
	}
	return diagfmt.FormatTokensPretty(a.stdout, result.Tokens)
}

// readFailure traces the real cause and returns the generic error.
func (a *app) readFailure(ctx context.Context, err error) error {
	trace.Point(ctx, trace.ScopeDriver, "read_failed", err.Error())
	return errCannotRead
}

func (a *app) printDiagnostics(bag *diag.Bag, fs *source.FileSet) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	bag.Sort()
	switch a.settings.diagFormat {
	case "short":
		fmt.Fprintln(a.stderr, diag.FormatShortDiagnostics(bag.Items(), fs, true))
	case "json":
		if err := diagfmt.JSON(a.stderr, bag, fs, diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true}); err != nil {
			fmt.Fprintf(a.stderr, "diagnostics: %v\n", err)
		}
	default:
		diagfmt.Pretty(a.stderr, bag, fs, diagfmt.PrettyOpts{
			Color:     a.settings.colorFor(a.stderr),
			Context:   2,
			ShowNotes: true,
		})
	}
}
