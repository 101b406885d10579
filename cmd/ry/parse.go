package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"ry/internal/diagfmt"
	"ry/internal/driver"
)

const watchDebounce = 150 * time.Millisecond

type parseOptions struct {
	format string
	jobs   int
	ui     string
	watch  bool
}

func (a *app) newParseCmd() *cobra.Command {
	var opts parseOptions
	cmd := &cobra.Command{
		Use:   "parse [flags] <file.ry|directory>",
		Short: "Parse a ry source file or directory and print the AST",
		Long:  `Parse analyzes a ry source file or all *.ry files in a directory and prints their syntax trees`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runParse(cmd.Context(), args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.format, "format", "tree", "output format (tree|json|msgpack)")
	cmd.Flags().IntVar(&opts.jobs, "jobs", 0, "max parallel workers for directory processing (0=auto)")
	cmd.Flags().StringVar(&opts.ui, "ui", "off", "progress view for directories (auto|on|off)")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "re-parse whenever a .ry file changes")
	return cmd
}

func (a *app) runParse(ctx context.Context, path string, opts parseOptions) error {
	format, ok := diagfmt.ParseASTFormat(opts.format)
	if !ok {
		return fmt.Errorf("unknown format: %s", opts.format)
	}
	mode, err := readUIMode(opts.ui)
	if err != nil {
		return err
	}

	once := func(ctx context.Context) error {
		info, err := os.Stat(path)
		if err != nil {
			return a.readFailure(ctx, err)
		}
		if !info.IsDir() {
			return a.parseFile(ctx, path, format)
		}
		return a.parseDir(ctx, path, format, opts.jobs, mode)
	}
	if !opts.watch {
		return once(ctx)
	}

	onErr := func(err error) {
		diagfmt.GlobalError(a.stderr, err.Error(), a.settings.colorFor(a.stderr))
	}
	return driver.Watch(ctx, []string{path}, watchDebounce, once, onErr)
}

// parseFile parses a single file and prints its AST in the given format.
func (a *app) parseFile(ctx context.Context, path string, format diagfmt.ASTFormat) error {
	result, err := driver.Parse(ctx, path, a.settings.maxDiagnostics)
	if err != nil {
		return a.readFailure(ctx, err)
	}
	if !result.OK() {
		a.printDiagnostics(result.Bag, result.FileSet)
		return errPrevious
	}
	return diagfmt.FormatAST(a.stdout, result.Builder, result.Unit, result.FileSet, format)
}

func (a *app) parseDir(ctx context.Context, dir string, format diagfmt.ASTFormat, jobs int, mode uiMode) error {
	dirOpts := driver.DirOptions{MaxDiagnostics: a.settings.maxDiagnostics, Jobs: jobs}

	var (
		results []driver.ParseDirResult
		err     error
	)
	if shouldUseTUI(mode, a.stderr) {
		results, err = a.parseDirWithUI(ctx, dir, dirOpts)
	} else {
		_, results, err = driver.ParseDir(ctx, dir, dirOpts)
	}
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	failed := false
	for _, r := range results {
		switch {
		case r.Builder == nil:
			failed = true
			diagfmt.GlobalError(a.stderr, fmt.Sprintf("%s: %s", r.Path, errCannotRead), a.settings.colorFor(a.stderr))
		case !r.OK():
			failed = true
			a.printDiagnostics(r.Bag, r.FileSet)
		}
	}

	if format == diagfmt.ASTFormatJSON {
		if err := a.writeDirJSON(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if !r.OK() {
				continue
			}
			if format != diagfmt.ASTFormatMsgpack && !a.settings.quiet {
				fmt.Fprintf(a.stdout, "== %s ==\n", displayPath(r))
			}
			if err := diagfmt.FormatAST(a.stdout, r.Builder, r.Unit, r.FileSet, format); err != nil {
				return err
			}
		}
	}

	if failed {
		return errPrevious
	}
	return nil
}

// writeDirJSON prints one object keyed by file path; failed files map to null.
func (a *app) writeDirJSON(results []driver.ParseDirResult) error {
	output := make(map[string]*diagfmt.ASTNodeOutput, len(results))
	for _, r := range results {
		key := displayPath(r)
		if !r.OK() {
			output[key] = nil
			continue
		}
		node, err := diagfmt.BuildUnitNode(r.Builder, r.Unit)
		if err != nil {
			return err
		}
		output[key] = &node
	}
	encoder := json.NewEncoder(a.stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func displayPath(r driver.ParseDirResult) string {
	if r.Builder == nil {
		return r.Path
	}
	return r.FileSet.Get(r.FileID).FormatPath("relative", r.FileSet.BaseDir())
}
