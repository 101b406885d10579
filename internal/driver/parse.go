package driver

import (
	"context"

	"ry/internal/ast"
	"ry/internal/diag"
	"ry/internal/lexer"
	"ry/internal/parser"
	"ry/internal/source"
	"ry/internal/trace"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	Unit    ast.UnitID
	Bag     *diag.Bag
	// Err is the first syntax or scanning error; its diagnostic is in Bag.
	Err error
}

// OK reports whether the file parsed without errors.
func (r *ParseResult) OK() bool {
	return r != nil && r.Err == nil && !r.Bag.HasErrors()
}

// Parse loads and parses one file. The returned error is only for I/O.
func Parse(ctx context.Context, filePath string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, err
	}
	return parseLoaded(ctx, fs, fs.Get(fileID), maxDiagnostics), nil
}

func parseLoaded(ctx context.Context, fs *source.FileSet, file *source.File, maxDiagnostics int) *ParseResult {
	ctx, span := trace.Start(ctx, trace.ScopePass, "parse")
	defer span.End("")

	bag := diag.NewBag(maxDiagnostics)
	// лексер и парсер могут сообщить об одном и том же токене
	reporter := diag.NewDedupReporter(diag.BagReporter{Bag: bag})
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(ast.Hints{})

	res, err := parser.ParseFile(ctx, lx, builder, parser.Options{Reporter: reporter})
	if err != nil {
		span.WithExtra("error", err.Error())
	}
	return &ParseResult{
		FileSet: fs,
		File:    file,
		Builder: builder,
		Unit:    res.Unit,
		Bag:     bag,
		Err:     err,
	}
}
