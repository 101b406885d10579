package format

import (
	"context"
	"errors"
	"fmt"

	"ry/internal/ast"
	"ry/internal/diag"
	"ry/internal/diagfmt"
	"ry/internal/lexer"
	"ry/internal/parser"
	"ry/internal/source"
)

type Options struct {
	IndentWidth int
	UseTabs     bool
}

func (o Options) withDefaults() Options {
	if o.IndentWidth == 0 {
		o.IndentWidth = 4
	}
	return o
}

type printer struct {
	builder *ast.Builder
	writer  *Writer
	opt     Options
}

// FormatUnit renders an already parsed unit.
func FormatUnit(b *ast.Builder, unitID ast.UnitID, opt Options) ([]byte, error) {
	if b == nil {
		return nil, errors.New("format: nil builder")
	}
	if !unitID.IsValid() {
		return nil, errors.New("format: invalid unit id")
	}
	unit := b.Units.Get(unitID)
	if unit == nil {
		return nil, errors.New("format: missing ast unit")
	}

	opt = opt.withDefaults()
	pr := printer{
		builder: b,
		writer:  NewWriter(opt, int(unit.Span.Len())),
		opt:     opt,
	}
	pr.printUnit(unit)
	return pr.writer.Bytes(), nil
}

// FormatFile parses sf and renders it. Diagnostics go to bag; a parse
// failure is returned as the parser's error.
func FormatFile(ctx context.Context, sf *source.File, opt Options, bag *diag.Bag) ([]byte, error) {
	if sf == nil {
		return nil, errors.New("format: nil source file")
	}
	builder, unitID, err := parseOnce(ctx, sf, bag)
	if err != nil {
		return nil, err
	}
	return FormatUnit(builder, unitID, opt)
}

func (p *printer) printUnit(unit *ast.Unit) {
	for _, id := range unit.Imports {
		p.printItem(id)
	}
	for i, id := range unit.Items {
		if i > 0 || len(unit.Imports) > 0 {
			p.writer.BlankLine()
		}
		p.printItem(id)
	}
	p.writer.Newline()
}

func (p *printer) printItem(id ast.ItemID) {
	item := p.builder.Items.Get(id)
	if item == nil {
		return
	}
	switch item.Kind {
	case ast.ItemImport:
		if imp, ok := p.builder.Items.Import(id); ok {
			p.printImportItem(imp)
		}
	case ast.ItemFun:
		if fun, ok := p.builder.Items.Fun(id); ok {
			p.printFunItem(fun)
		}
	}
}

// CheckRoundTrip formats the file and re-parses the output, ensuring that the
// two trees are structurally equal.
func CheckRoundTrip(ctx context.Context, sf *source.File, opt Options, maxDiag int) (ok bool, msg string) {
	origBuilder, origUnit, err := parseOnce(ctx, sf, diag.NewBag(maxDiag))
	if err != nil {
		return false, "fmt-check: initial parse failed: " + err.Error()
	}

	formatted, err := FormatUnit(origBuilder, origUnit, opt)
	if err != nil {
		return false, "fmt-check: formatter failed: " + err.Error()
	}

	fs2 := source.NewFileSetWithBase("")
	fid := fs2.AddVirtual(sf.Path, formatted)
	newBuilder, newUnit, err := parseOnce(ctx, fs2.Get(fid), diag.NewBag(maxDiag))
	if err != nil {
		return false, "fmt-check: reparse failed: " + err.Error()
	}

	before, err := diagfmt.BuildUnitNode(origBuilder, origUnit)
	if err != nil {
		return false, "fmt-check: " + err.Error()
	}
	after, err := diagfmt.BuildUnitNode(newBuilder, newUnit)
	if err != nil {
		return false, "fmt-check: " + err.Error()
	}
	if !diagfmt.EqualIgnoringSpans(before, after) {
		return false, "fmt-check: tree differs after round-trip"
	}
	return true, "fmt-check: OK"
}

func parseOnce(ctx context.Context, sf *source.File, bag *diag.Bag) (*ast.Builder, ast.UnitID, error) {
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(sf, lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(ast.Hints{})
	res, err := parser.ParseFile(ctx, lx, builder, parser.Options{Reporter: reporter})
	if err != nil {
		return nil, ast.NoUnitID, fmt.Errorf("%s: %w", sf.Path, err)
	}
	return builder, res.Unit, nil
}
