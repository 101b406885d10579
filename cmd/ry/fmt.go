package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ry/internal/driver"
	"ry/internal/format"
)

type fmtOptions struct {
	check   bool
	stdout  bool
	output  string
	useTabs bool
	indent  int
}

func (a *app) newFmtCmd() *cobra.Command {
	var opts fmtOptions
	cmd := &cobra.Command{
		Use:   "fmt [flags] <path> [path...]",
		Short: "Format ry source files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFmt(cmd.Context(), args, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.check, "check", false, "report unformatted files and verify the print/parse round trip")
	cmd.Flags().BoolVar(&opts.stdout, "stdout", false, "print formatted code to stdout instead of rewriting files")
	cmd.Flags().StringVar(&opts.output, "format", "text", "output format (text|json)")
	cmd.Flags().BoolVar(&opts.useTabs, "tabs", false, "indent with tabs")
	cmd.Flags().IntVar(&opts.indent, "indent", 4, "spaces per indentation level")
	return cmd
}

func (a *app) runFmt(ctx context.Context, paths []string, opts fmtOptions) error {
	if opts.stdout && opts.check {
		return errors.New("fmt: --stdout cannot be used with --check")
	}
	if opts.output != "text" && opts.output != "json" {
		return fmt.Errorf("fmt: unsupported output format %q", opts.output)
	}
	if opts.stdout && opts.output != "text" {
		return errors.New("fmt: --stdout is only supported with text output")
	}

	results, err := driver.FormatPaths(ctx, paths, driver.FormatOptions{
		Check:          opts.check,
		Stdout:         opts.stdout,
		MaxDiagnostics: a.settings.maxDiagnostics,
		Options:        format.Options{IndentWidth: opts.indent, UseTabs: opts.useTabs},
	})
	if errors.Is(err, os.ErrNotExist) {
		return a.readFailure(ctx, err)
	}
	if err != nil {
		return err
	}

	var hasErrors, hasChanges bool
	for _, res := range results {
		switch {
		case res.Bag != nil && res.Bag.HasErrors():
			hasErrors = true
			a.printDiagnostics(res.Bag, res.FileSet)
		case res.Err != nil:
			hasErrors = true
			fmt.Fprintf(a.stderr, "fmt: %s: %v\n", res.Path, res.Err)
		}
		hasChanges = hasChanges || res.Changed
	}

	if opts.output == "json" {
		if err := a.writeFmtJSON(results, opts.check); err != nil {
			return err
		}
	} else {
		a.writeFmtText(results, opts)
	}

	if hasErrors {
		return errPrevious
	}
	if opts.check && hasChanges {
		return errors.New("fmt: formatting changes required")
	}
	return nil
}

func (a *app) writeFmtText(results []driver.FormatResult, opts fmtOptions) {
	for _, res := range results {
		switch {
		case res.Err != nil:
		case opts.stdout:
			_, _ = a.stdout.Write(res.Formatted)
		case a.settings.quiet || !res.Changed:
		case opts.check:
			fmt.Fprintln(a.stdout, res.Path)
		default:
			fmt.Fprintf(a.stdout, "reformatted %s\n", res.Path)
		}
	}
}

func (a *app) writeFmtJSON(results []driver.FormatResult, check bool) error {
	type jsonResult struct {
		Path     string `json:"path"`
		Changed  bool   `json:"changed"`
		Error    string `json:"error,omitempty"`
		CheckRun bool   `json:"check"`
	}

	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{Path: res.Path, Changed: res.Changed, CheckRun: check}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(a.stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
