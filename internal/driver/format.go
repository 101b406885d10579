package driver

import (
	"bytes"
	"context"
	"errors"
	"os"

	"ry/internal/diag"
	"ry/internal/format"
	"ry/internal/source"
	"ry/internal/trace"
)

var errNoSources = errors.New("format: no source files found")

type FormatOptions struct {
	Check          bool // only report; also verifies the round trip
	Stdout         bool // return output in FormatResult.Formatted instead of writing
	MaxDiagnostics int
	Options        format.Options
}

// FormatResult describes one file. Err covers I/O, parse and round-trip
// failures; diagnostics of a failed parse are in Bag.
type FormatResult struct {
	Path      string
	Changed   bool
	Err       error
	Formatted []byte
	FileSet   *source.FileSet
	Bag       *diag.Bag
}

// FormatPaths formats the given files and directories one by one, in path
// order. It stops early only when ctx is cancelled.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	files, err := collectSourceFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errNoSources
	}

	ctx, span := trace.Start(ctx, trace.ScopePass, "fmt")
	defer span.End("")

	results := make([]FormatResult, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res := FormatResult{Path: path}
		res.Err = formatSingleFile(ctx, &res, opts)
		results = append(results, res)
	}
	return results, nil
}

func formatSingleFile(ctx context.Context, res *FormatResult, opts FormatOptions) error {
	res.FileSet = source.NewFileSet()
	id, err := res.FileSet.Load(res.Path)
	if err != nil {
		return err
	}
	sf := res.FileSet.Get(id)
	res.Bag = diag.NewBag(opts.MaxDiagnostics)

	out, err := format.FormatFile(ctx, sf, opts.Options, res.Bag)
	if err != nil {
		return err
	}
	res.Changed = !bytes.Equal(sf.Content, out)

	if opts.Check {
		if ok, msg := format.CheckRoundTrip(ctx, sf, opts.Options, opts.MaxDiagnostics); !ok {
			return errors.New(msg)
		}
		return nil
	}
	if opts.Stdout {
		res.Formatted = out
		return nil
	}
	if !res.Changed {
		return nil
	}
	perm := os.FileMode(0o644)
	if info, statErr := os.Stat(res.Path); statErr == nil {
		perm = info.Mode().Perm()
	}
	return os.WriteFile(res.Path, out, perm)
}
