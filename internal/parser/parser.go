package parser

import (
	"context"

	"ry/internal/ast"
	"ry/internal/diag"
	"ry/internal/lexer"
	"ry/internal/source"
	"ry/internal/token"
	"ry/internal/trace"
)

type Options struct {
	Reporter diag.Reporter // получает первую синтаксическую ошибку; может быть nil
}

type Result struct {
	Unit ast.UnitID
}

// Parser: состояние парсера на один файл. Разбор останавливается на первой
// ошибке, частичное дерево не возвращается.
type Parser struct {
	lx       *lexer.Lexer // поток токенов
	arenas   *ast.Builder // построитель аренных узлов
	opts     Options
	previous token.Token // последний съеденный токен
	current  token.Token // токен под курсором
}

// newParser primes the cursor with the first significant token.
func newParser(lx *lexer.Lexer, arenas *ast.Builder, opts Options) (*Parser, error) {
	p := &Parser{
		lx:     lx,
		arenas: arenas,
		opts:   opts,
	}
	if err := p.advance(); err != nil {
		return nil, p.fail(err)
	}
	return p, nil
}

// ParseFile: входная точка для разбора одного файла.
// Требует уже созданный lexer (на основе source.File).
func ParseFile(ctx context.Context, lx *lexer.Lexer, arenas *ast.Builder, opts Options) (Result, error) {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, "parse_file", trace.CurrentSpan(ctx).SpanID)
	defer span.End("")
	if lx.File() != nil {
		span.WithExtra("path", lx.File().Path)
	}

	p, err := newParser(lx, arenas, opts)
	if err != nil {
		return Result{}, err
	}
	unit, err := p.parseUnit()
	if err != nil {
		return Result{}, p.fail(err)
	}
	return Result{Unit: unit}, nil
}

// ParseExpression parses a single expression that must span the whole input.
func ParseExpression(lx *lexer.Lexer, arenas *ast.Builder, opts Options) (ast.ExprID, error) {
	return parseWhole(lx, arenas, opts, func(p *Parser) (ast.ExprID, error) {
		return p.parseExpression(precLowest)
	})
}

// ParseType parses a single type that must span the whole input.
func ParseType(lx *lexer.Lexer, arenas *ast.Builder, opts Options) (ast.TypeID, error) {
	return parseWhole(lx, arenas, opts, func(p *Parser) (ast.TypeID, error) {
		return p.parseType()
	})
}

// ParseBlock parses `{ ... }` that must span the whole input.
func ParseBlock(lx *lexer.Lexer, arenas *ast.Builder, opts Options) (ast.Block, error) {
	return parseWhole(lx, arenas, opts, func(p *Parser) (ast.Block, error) {
		return p.parseStatementsBlock()
	})
}

func parseWhole[T any](lx *lexer.Lexer, arenas *ast.Builder, opts Options, parse func(*Parser) (T, error)) (T, error) {
	var zero T
	p, err := newParser(lx, arenas, opts)
	if err != nil {
		return zero, err
	}
	v, err := parse(p)
	if err == nil && !p.at(token.EOF) {
		err = p.unexpected("end of file", "")
	}
	if err != nil {
		return zero, p.fail(err)
	}
	return v, nil
}

// parseUnit: основной цикл верхнего уровня: пока не EOF, parseItem.
func (p *Parser) parseUnit() (ast.UnitID, error) {
	start := p.current.Span
	unit := p.arenas.NewUnit(start)
	for !p.at(token.EOF) {
		item, err := p.parseItem()
		if err != nil {
			return ast.NoUnitID, err
		}
		p.arenas.PushItem(unit, item)
	}
	p.arenas.Units.Get(unit).Span = start.Cover(p.current.Span)
	return unit, nil
}

// fail отправляет синтаксическую ошибку в Reporter. Лексические ошибки
// лексер уже сообщил сам, их повторно не репортим.
func (p *Parser) fail(err error) error {
	perr, ok := AsError(err)
	if !ok || perr.Kind != ErrUnexpectedToken || p.opts.Reporter == nil {
		return err
	}
	rb := diag.ReportError(p.opts.Reporter, perr.Code(), perr.Token.Span, perr.Error())
	if perr.Suggestion != "" {
		rb.WithNote(perr.Token.Span, perr.Suggestion)
	}
	rb.Emit()
	return err
}

func (p *Parser) at(k token.Kind) bool {
	return p.current.Kind == k
}

// spanFrom covers everything from start up to the previous token.
func (p *Parser) spanFrom(start source.Span) source.Span {
	return start.Cover(p.previous.Span)
}
