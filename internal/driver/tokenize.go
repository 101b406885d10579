package driver

import (
	"context"
	"strconv"

	"ry/internal/diag"
	"ry/internal/lexer"
	"ry/internal/source"
	"ry/internal/token"
	"ry/internal/trace"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token // включая завершающий EOF
	Bag     *diag.Bag
}

// Tokenize loads path and lexes it to the end. The error is only for I/O;
// lexical errors are Invalid tokens plus diagnostics in Bag.
func Tokenize(ctx context.Context, path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  lexFile(ctx, file, bag),
		Bag:     bag,
	}, nil
}

func lexFile(ctx context.Context, file *source.File, bag *diag.Bag) []token.Token {
	_, span := trace.Start(ctx, trace.ScopePass, "lex")
	span.WithExtra("path", file.Path)

	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	span.WithExtra("tokens", strconv.Itoa(len(tokens))).End("")
	return tokens
}
